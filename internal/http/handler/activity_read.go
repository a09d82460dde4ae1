package handler

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"daylog/internal/activity"
	"daylog/internal/auth"
)

type ActivityReadHandler struct {
	Svc *activity.Service
}

func (h *ActivityReadHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	limit, offset := parsePage(r.URL.Query())

	acts, err := h.Svc.ListByOwner(r.Context(), uid, limit, offset)
	if err != nil {
		log.Printf("list activities: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, "activities fetched successfully", acts)
}

func (h *ActivityReadHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := uintParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	a, err := h.Svc.GetByID(r.Context(), id, uid)
	switch {
	case errors.Is(err, activity.ErrNotFound):
		writeError(w, http.StatusNotFound, "activity not found or unauthorized")
	case err != nil:
		log.Printf("get activity: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeJSON(w, http.StatusOK, "activity fetched successfully", a)
	}
}

func (h *ActivityReadHandler) Today(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	today := time.Now().Format("2006-01-02")

	acts, err := h.Svc.ListForDate(r.Context(), uid, today)
	if err != nil {
		log.Printf("today activities: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, "today's activities fetched successfully", acts)
}

func (h *ActivityReadHandler) Fixed(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	acts, err := h.Svc.ListFixedSchedules(r.Context(), uid)
	if err != nil {
		log.Printf("fixed schedules: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, "fixed schedules fetched successfully", acts)
}

func (h *ActivityReadHandler) Search(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	q := r.URL.Query()

	f := activity.Filter{
		Title:           strQuery(q, "title"),
		Description:     strQuery(q, "description"),
		StartLocation:   strQuery(q, "start_location"),
		EndLocation:     strQuery(q, "end_location"),
		RelatedPeople:   strQuery(q, "related_people"),
		PersonalFeeling: strQuery(q, "personal_feeling"),
	}
	f.Limit, f.Offset = parsePage(q)

	var err error
	for key, dst := range map[string]**int{
		"year":  &f.Year,
		"month": &f.Month,
		"day":   &f.Day,
		"hour":  &f.Hour,
	} {
		if *dst, err = intQuery(q, key); err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+key+" parameter")
			return
		}
	}

	acts, err := h.Svc.Search(r.Context(), uid, f)
	if err != nil {
		log.Printf("search activities: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, "activities fetched successfully", acts)
}

// parsePage reads limit/offset, falling back to the defaults when a value
// is missing, non-numeric, or negative. Values are always bound parameters
// downstream, never interpolated.
func parsePage(q url.Values) (limit, offset int) {
	limit, offset = activity.DefaultLimit, activity.DefaultOffset
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := strings.TrimSpace(q.Get("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// intQuery distinguishes an absent parameter (nil) from an explicit zero.
func intQuery(q url.Values, key string) (*int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func strQuery(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}
