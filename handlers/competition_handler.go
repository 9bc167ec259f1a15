package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dosada05/athletics-system/middleware"
	"github.com/Dosada05/athletics-system/models"
	"github.com/Dosada05/athletics-system/services"
)

type CompetitionHandler struct {
	competitionService services.CompetitionService
}

func NewCompetitionHandler(cs services.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitionService: cs}
}

// CreateHandler обрабатывает POST /competitions
func (h *CompetitionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required to create competition")
		return
	}

	var competition models.Competition
	if err := readJSON(w, r, &competition); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	created, err := h.competitionService.Create(r.Context(), currentUserID, &competition)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"competition": created}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler обрабатывает GET /competitions/{competitionID}
func (h *CompetitionHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competition, err := h.competitionService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler обрабатывает GET /competitions
func (h *CompetitionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := paginationParams(r, 20)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competitions, err := h.competitionService.List(r.Context(), limit, offset)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitions": competitions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateHandler обрабатывает PUT /competitions/{competitionID}
func (h *CompetitionHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required to update competition")
		return
	}

	var competition models.Competition
	if err := readJSON(w, r, &competition); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	competition.ID = id

	updated, err := h.competitionService.Update(r.Context(), currentUserID, &competition)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competition": updated}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler обрабатывает DELETE /competitions/{competitionID}
func (h *CompetitionHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required to delete competition")
		return
	}

	if err := h.competitionService.Delete(r.Context(), currentUserID, id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadLogoHandler обрабатывает POST /competitions/{competitionID}/logo
func (h *CompetitionHandler) UploadLogoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user for logo upload")
		return
	}

	err = r.ParseMultipartForm(32 << 20)
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get logo file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for logo"))
		return
	}

	competition, err := h.competitionService.UploadLogo(r.Context(), currentUserID, id, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// paginationParams разбирает limit/offset из query с дефолтным лимитом.
func paginationParams(r *http.Request, defaultLimit int) (int, int, error) {
	limit := defaultLimit
	offset := 0
	query := r.URL.Query()

	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return 0, 0, errors.New("invalid limit query parameter")
		}
		limit = parsed
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("invalid offset query parameter")
		}
		offset = parsed
	}
	return limit, offset, nil
}
