package handlers

import (
	"net/http"

	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/services"
)

type AthleteHandler struct {
	athleteService services.AthleteService
}

func NewAthleteHandler(as services.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: as}
}

// CreateHandler обрабатывает POST /athletes
func (h *AthleteHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var athlete models.Athlete
	if err := readJSON(w, r, &athlete); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	created, err := h.athleteService.Create(r.Context(), &athlete)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"athlete": created}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler обрабатывает GET /athletes/{athleteID}
func (h *AthleteHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "athleteID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	athlete, err := h.athleteService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"athlete": athlete}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler обрабатывает GET /athletes
func (h *AthleteHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := paginationParams(r, 50)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	athletes, err := h.athleteService.List(r.Context(), limit, offset)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"athletes": athletes}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
