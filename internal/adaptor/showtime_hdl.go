package adaptor

import (
	"errors"
	"net/http"

	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimes handles GET /api/showtimes
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetAllShowtimes(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, showtimes)
}

// GetAvailableShowtimes handles GET /api/showtimes/available
func (h *ShowtimeHandler) GetAvailableShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetAvailableShowtimes(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get available showtimes")
		return
	}

	utils.ResponseSuccess(w, showtimes)
}

// GetShowtimeByID handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		h.handleServiceError(w, err, "get showtime by ID")
		return
	}

	utils.ResponseSuccess(w, showtime)
}

func (h *ShowtimeHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
