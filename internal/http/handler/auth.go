package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"daylog/internal/auth"

	"gorm.io/gorm"
)

type AuthHandler struct {
	DB         *gorm.DB
	JWT        *auth.JWT
	BcryptCost int
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResp struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		log.Printf("register: hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	u := auth.User{Username: req.Username, PasswordHash: hash}
	if err := h.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			writeError(w, http.StatusConflict, "user already exists")
			return
		}
		log.Printf("register: create user: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		log.Printf("register: sign token: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusCreated, "user registered successfully", sessionResp{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	// Absent user and wrong password answer identically.
	var u auth.User
	if err := h.DB.Where("username = ?", req.Username).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("login: lookup user: %v", err)
			writeError(w, http.StatusInternalServerError, "server error")
			return
		}
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !auth.ComparePassword(u.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		log.Printf("login: sign token: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, "logged in successfully", sessionResp{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
	})
}
