package handlers

import (
	"net/http"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/services"
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
}

func NewRegistrationHandler(rs services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: rs}
}

// CreateHandler обрабатывает POST /events/{eventID}/registrations
func (h *RegistrationHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := idParam(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var registration models.Registration
	if err := readJSON(w, r, &registration); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	registration.EventID = eventID

	created, err := h.registrationService.Register(r.Context(), &registration)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"registration": created}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByEventHandler обрабатывает GET /events/{eventID}/registrations
func (h *RegistrationHandler) ListByEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := idParam(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	registrations, err := h.registrationService.ListByEvent(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"registrations": registrations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler обрабатывает DELETE /registrations/{registrationID}
func (h *RegistrationHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "registrationID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.registrationService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
