package handlers

import (
	"net/http"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/services"
)

type AssignmentHandler struct {
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(as services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: as}
}

// AssignHandler обрабатывает POST /events/{eventID}/heats
func (h *AssignmentHandler) AssignHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := idParam(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.AssignHeatsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	heats, err := h.assignmentService.AssignHeats(r.Context(), eventID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"heats": heats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler обрабатывает GET /events/{eventID}/heats?round=FINAL
func (h *AssignmentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := idParam(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round := models.EventRound(r.URL.Query().Get("round"))

	heats, err := h.assignmentService.ListHeats(r.Context(), eventID, round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"heats": heats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
