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

func setupMovieRouter(svc usecase.MovieService) *chi.Mux {
	h := NewMovieHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/movies", h.GetMovies)
	r.Get("/api/movies/{id}", h.GetMovieByID)
	return r
}

func TestMovieHandler_GetMovies(t *testing.T) {
	svc := new(svcmocks.MockMovieService)
	router := setupMovieRouter(svc)

	movies := []response.MovieResponse{
		{ID: uuid.New().String(), Title: "Inception"},
		{ID: uuid.New().String(), Title: "The Matrix"},
	}
	svc.On("GetAllMovies", mock.Anything).Return(movies, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []response.MovieResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Inception", body[0].Title)
}

func TestMovieHandler_GetMovieByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(svcmocks.MockMovieService)
		router := setupMovieRouter(svc)
		id := uuid.New().String()

		svc.On("GetMovieByID", mock.Anything, id).
			Return(&response.MovieResponse{ID: id, Title: "The Matrix"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/movies/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(svcmocks.MockMovieService)
		router := setupMovieRouter(svc)
		id := uuid.New().String()

		svc.On("GetMovieByID", mock.Anything, id).
			Return(nil, fmt.Errorf("movie %s: %w", id, usecase.ErrNotFound))

		req := httptest.NewRequest(http.MethodGet, "/api/movies/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
