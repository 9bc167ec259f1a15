package handlers

import (
	"net/http"

	"github.com/Dosada05/athletics-system/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// GenerateHandler обрабатывает POST /competitions/{competitionID}/schedules
func (h *ScheduleHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GenerateScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	schedule, err := h.scheduleService.GenerateSchedule(r.Context(), competitionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler обрабатывает GET /competitions/{competitionID}/schedules
func (h *ScheduleHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	schedules, err := h.scheduleService.ListSchedules(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedules": schedules}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MinuteProgramHandler обрабатывает GET /competitions/{competitionID}/minute-program
func (h *ScheduleHandler) MinuteProgramHandler(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	program, err := h.scheduleService.GenerateMinuteProgram(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"minute_program": program}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportHandler обрабатывает POST /competitions/{competitionID}/minute-program/export
func (h *ScheduleHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	url, err := h.scheduleService.ExportMinuteProgram(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"url": url}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
