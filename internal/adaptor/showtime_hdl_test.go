package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-tickets/internal/dto/response"
	"cinema-tickets/internal/usecase"
	svcmocks "cinema-tickets/internal/usecase/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupShowtimeRouter(svc usecase.ShowtimeService) *chi.Mux {
	h := NewShowtimeHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/showtimes", func(r chi.Router) {
		r.Get("/", h.GetShowtimes)
		r.Get("/available", h.GetAvailableShowtimes)
		r.Get("/{id}", h.GetShowtimeByID)
	})
	return r
}

func TestShowtimeHandler_GetShowtimes(t *testing.T) {
	svc := new(svcmocks.MockShowtimeService)
	router := setupShowtimeRouter(svc)

	showtimes := []response.ShowtimeResponse{
		{ID: uuid.New().String(), MovieTitle: "The Matrix", Hall: "Hall A", AvailableSeats: 10},
		{ID: uuid.New().String(), MovieTitle: "Inception", Hall: "Hall B", AvailableSeats: 0},
	}
	svc.On("GetAllShowtimes", mock.Anything).Return(showtimes, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/showtimes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []response.ShowtimeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "The Matrix", body[0].MovieTitle)
}

func TestShowtimeHandler_GetAvailableShowtimes(t *testing.T) {
	svc := new(svcmocks.MockShowtimeService)
	router := setupShowtimeRouter(svc)

	svc.On("GetAvailableShowtimes", mock.Anything).
		Return([]response.ShowtimeResponse{{ID: uuid.New().String(), AvailableSeats: 3}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/showtimes/available", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// "available" must not be swallowed by the {id} route.
	svc.AssertCalled(t, "GetAvailableShowtimes", mock.Anything)
	svc.AssertNotCalled(t, "GetShowtimeByID", mock.Anything, mock.Anything)
}

func TestShowtimeHandler_GetShowtimeByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(svcmocks.MockShowtimeService)
		router := setupShowtimeRouter(svc)
		id := uuid.New().String()

		svc.On("GetShowtimeByID", mock.Anything, id).
			Return(&response.ShowtimeResponse{ID: id, MovieTitle: "The Matrix"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/showtimes/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body response.ShowtimeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id, body.ID)
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(svcmocks.MockShowtimeService)
		router := setupShowtimeRouter(svc)
		id := uuid.New().String()

		svc.On("GetShowtimeByID", mock.Anything, id).
			Return(nil, fmt.Errorf("showtime %s: %w", id, usecase.ErrNotFound))

		req := httptest.NewRequest(http.MethodGet, "/api/showtimes/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		svc := new(svcmocks.MockShowtimeService)
		router := setupShowtimeRouter(svc)
		id := uuid.New().String()

		svc.On("GetShowtimeByID", mock.Anything, id).Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/showtimes/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
