package handlers

import (
	"net/http"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/services"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(es services.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

// CreateHandler обрабатывает POST /competitions/{competitionID}/events
func (h *EventHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var event models.Event
	if err := readJSON(w, r, &event); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	event.CompetitionID = competitionID

	created, err := h.eventService.Create(r.Context(), &event)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"event": created}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler обрабатывает GET /events/{eventID}
func (h *EventHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.eventService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByCompetitionHandler обрабатывает GET /competitions/{competitionID}/events
func (h *EventHandler) ListByCompetitionHandler(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	events, err := h.eventService.ListByCompetition(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler обрабатывает DELETE /events/{eventID}
func (h *EventHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
