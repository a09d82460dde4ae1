package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"daylog/internal/activity"
	"daylog/internal/auth"

	"github.com/go-chi/chi/v5"
)

// ActivityHandler owns the write half of the activity surface; reads live
// in ActivityReadHandler.
type ActivityHandler struct {
	Svc *activity.Service
}

type createActivityReq struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	StartTime       string  `json:"start_time"` // RFC3339
	StartLocation   *string `json:"start_location"`
	IsFixedSchedule bool    `json:"is_fixed_schedule"`
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createActivityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.StartTime) == "" {
		writeError(w, http.StatusBadRequest, "title and start time are required")
		return
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_time (RFC3339)")
		return
	}

	a, err := h.Svc.Create(r.Context(), uid, activity.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		StartTime:       startTime,
		StartLocation:   req.StartLocation,
		IsFixedSchedule: req.IsFixedSchedule,
	})
	if err != nil {
		if errors.Is(err, activity.ErrValidation) {
			writeError(w, http.StatusBadRequest, "title and start time are required")
			return
		}
		log.Printf("create activity: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusCreated, "activity started successfully", a)
}

type detailReq struct {
	Mood                   *string  `json:"mood"`
	EnergyLevel            *string  `json:"energy_level"`
	EnvironmentDescription *string  `json:"environment_description"`
	RelatedPeople          []string `json:"related_people"`
	PersonalFeeling        *string  `json:"personal_feeling"`
}

func (d detailReq) toInput() activity.DetailInput {
	return activity.DetailInput{
		Mood:                   d.Mood,
		EnergyLevel:            d.EnergyLevel,
		EnvironmentDescription: d.EnvironmentDescription,
		RelatedPeople:          d.RelatedPeople,
		PersonalFeeling:        d.PersonalFeeling,
	}
}

type completeActivityReq struct {
	EndTime     string  `json:"end_time"` // RFC3339
	EndLocation *string `json:"end_location"`
	detailReq
}

func (h *ActivityHandler) Complete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := uintParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	var req completeActivityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if strings.TrimSpace(req.EndTime) == "" {
		writeError(w, http.StatusBadRequest, "end time is required")
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_time (RFC3339)")
		return
	}

	err = h.Svc.Complete(r.Context(), id, uid, activity.CompleteInput{
		EndTime:     endTime,
		EndLocation: req.EndLocation,
		Detail:      req.toInput(),
	})
	switch {
	case errors.Is(err, activity.ErrNotFound):
		writeError(w, http.StatusNotFound, "activity not found or unauthorized")
	case errors.Is(err, activity.ErrValidation):
		writeError(w, http.StatusBadRequest, "end time must not precede start time")
	case err != nil:
		log.Printf("complete activity: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeJSON(w, http.StatusOK, "activity ended and details recorded successfully", nil)
	}
}

type updateActivityReq struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	IsFixedSchedule bool    `json:"is_fixed_schedule"`
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := uintParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	var req updateActivityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	err := h.Svc.UpdateBasicInfo(r.Context(), id, uid, req.Title, req.Description, req.IsFixedSchedule)
	switch {
	case errors.Is(err, activity.ErrNotFound):
		writeError(w, http.StatusNotFound, "activity not found or unauthorized")
	case errors.Is(err, activity.ErrValidation):
		writeError(w, http.StatusBadRequest, "title is required")
	case err != nil:
		log.Printf("update activity: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeJSON(w, http.StatusOK, "activity updated successfully", nil)
	}
}

func (h *ActivityHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := uintParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}
	detailID, ok := uintParam(r, "detailId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid detail id")
		return
	}

	var req detailReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	err := h.Svc.UpdateDetail(r.Context(), detailID, id, uid, req.toInput())
	switch {
	case errors.Is(err, activity.ErrNotFound):
		writeError(w, http.StatusNotFound, "activity detail not found or unauthorized")
	case err != nil:
		log.Printf("update activity detail: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeJSON(w, http.StatusOK, "activity details updated successfully", nil)
	}
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := uintParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	err := h.Svc.Delete(r.Context(), id, uid)
	switch {
	case errors.Is(err, activity.ErrNotFound):
		writeError(w, http.StatusNotFound, "activity not found or unauthorized")
	case err != nil:
		log.Printf("delete activity: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeJSON(w, http.StatusOK, "activity deleted successfully", nil)
	}
}

func uintParam(r *http.Request, name string) (uint64, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
