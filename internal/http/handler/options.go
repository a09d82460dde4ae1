package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"daylog/internal/auth"
	"daylog/internal/option"
)

type OptionHandler struct {
	Svc *option.Service
}

func (h *OptionHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	opts, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		log.Printf("list custom options: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, "custom options fetched successfully", opts)
}

type addOptionReq struct {
	OptionType string `json:"option_type"`
	Value      string `json:"value"`
}

func (h *OptionHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req addOptionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	req.OptionType = strings.TrimSpace(req.OptionType)
	req.Value = strings.TrimSpace(req.Value)
	if req.OptionType == "" || req.Value == "" {
		writeError(w, http.StatusBadRequest, "option type and value are required")
		return
	}

	opt, err := h.Svc.Add(r.Context(), uid, req.OptionType, req.Value)
	switch {
	case errors.Is(err, option.ErrConflict):
		writeError(w, http.StatusConflict, "option already exists for this type and user")
	case errors.Is(err, option.ErrValidation):
		writeError(w, http.StatusBadRequest, "option type and value are required")
	case err != nil:
		log.Printf("add custom option: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeJSON(w, http.StatusCreated, "custom option added successfully", opt)
	}
}

func (h *OptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := uintParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid option id")
		return
	}

	err := h.Svc.Delete(r.Context(), id, uid)
	switch {
	case errors.Is(err, option.ErrNotFound):
		writeError(w, http.StatusNotFound, "custom option not found or unauthorized")
	case err != nil:
		log.Printf("delete custom option: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeJSON(w, http.StatusOK, "custom option deleted successfully", nil)
	}
}
