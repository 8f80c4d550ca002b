package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkale/skillforge/internal/store"
)

type registerRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password    string   `json:"password" validate:"required,min=8,max=72"`
	DisplayName string   `json:"display_name" validate:"max=64"`
	Skills      []string `json:"skills" validate:"max=20,dive,min=1,max=50"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if existing, err := s.profiles.ByUsername(r.Context(), req.Username); err != nil {
		s.log.Error("register lookup failed", "err", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	} else if existing != nil {
		writeError(w, http.StatusConflict, "username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("password hash failed", "err", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	rec := &store.ProfileRecord{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Skills:       req.Skills,
		CreatedAt:    time.Now(),
		LastSeen:     time.Now(),
	}
	if err := s.profiles.Create(r.Context(), rec); err != nil {
		s.log.Error("profile create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := SignToken(rec.UserID, rec.Username, TokenTTL)
	if err != nil {
		s.log.Error("token sign failed", "err", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Token:       token,
		UserID:      rec.UserID,
		Username:    rec.Username,
		DisplayName: rec.DisplayName,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.profiles.ByUsername(r.Context(), req.Username)
	if err != nil {
		s.log.Error("login lookup failed", "err", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	// Same response for unknown user and wrong password.
	if rec == nil || bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := s.profiles.TouchLastSeen(r.Context(), rec.UserID); err != nil {
		s.log.Warn("last-seen update failed", "err", err)
	}

	token, err := SignToken(rec.UserID, rec.Username, TokenTTL)
	if err != nil {
		s.log.Error("token sign failed", "err", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:       token,
		UserID:      rec.UserID,
		Username:    rec.Username,
		DisplayName: rec.DisplayName,
	})
}
