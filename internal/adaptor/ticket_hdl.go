package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTickets handles GET /api/tickets
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.GetAllTickets(r.Context())
	if err != nil {
		// The full listing has no not-found case; any failure here is internal.
		h.log.Error("Failed to get tickets", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, tickets)
}

// GetTicketByID handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	ticket, err := h.service.GetTicketByID(r.Context(), ticketID)
	if err != nil {
		h.handleServiceError(w, err, "get ticket by ID", http.StatusNotFound)
		return
	}

	utils.ResponseSuccess(w, ticket)
}

// GetTicketsByShowtime handles GET /api/tickets/showtime/{showtimeId}
func (h *TicketHandler) GetTicketsByShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "showtimeId")

	tickets, err := h.service.GetTicketsByShowtime(r.Context(), showtimeID)
	if err != nil {
		h.handleServiceError(w, err, "get tickets by showtime", http.StatusNotFound)
		return
	}

	utils.ResponseSuccess(w, tickets)
}

// CreateTicket handles POST /api/tickets. Every precondition failure answers
// 400 with the reason, a missing showtime included.
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create ticket", http.StatusBadRequest)
		return
	}

	utils.ResponseCreated(w, "/api/tickets/"+ticket.ID, ticket)
}

// UpdateTicket handles PUT /api/tickets/{id}
func (h *TicketHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	var req request.UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.UpdateTicket(r.Context(), ticketID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update ticket", http.StatusNotFound)
		return
	}

	utils.ResponseSuccess(w, ticket)
}

// DeleteTicket handles DELETE /api/tickets/{id}
func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	deleted, err := h.service.DeleteTicket(r.Context(), ticketID)
	if err != nil {
		h.handleServiceError(w, err, "delete ticket", http.StatusNotFound)
		return
	}

	if !deleted {
		utils.ResponseNotFound(w, "Ticket not found")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps the domain error kinds to status codes.
// notFoundCode varies per operation: creating reports a missing showtime as
// a bad request, the other operations answer 404.
func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string, notFoundCode int) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		if notFoundCode == http.StatusBadRequest {
			utils.ResponseBadRequest(w, err.Error(), nil)
		} else {
			utils.ResponseNotFound(w, err.Error())
		}

	case errors.Is(err, usecase.ErrConflict):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
