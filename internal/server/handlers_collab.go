package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkale/skillforge/internal/collab"
)

type createSessionRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Language string `json:"language" validate:"max=50"`
}

type sessionResponse struct {
	ID         string    `json:"id"`
	HostUserID string    `json:"host_user_id"`
	Title      string    `json:"title"`
	Language   string    `json:"language"`
	RelayURL   string    `json:"relay_url,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.collab.ActiveSessions(r.Context())
	if err != nil {
		s.log.Error("session list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "listing sessions failed")
		return
	}

	out := make([]sessionResponse, len(sessions))
	for i, sess := range sessions {
		out[i] = sessionResponse{
			ID:         sess.SessionID,
			HostUserID: sess.HostUserID,
			Title:      sess.Title,
			Language:   sess.Language,
			RelayURL:   sess.RelayURL,
			Active:     sess.Active,
			CreatedAt:  sess.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req createSessionRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.collab.CreateSession(r.Context(), userID, collab.CreateSessionInput{
		Title:    req.Title,
		Language: req.Language,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		ID:         sess.SessionID,
		HostUserID: sess.HostUserID,
		Title:      sess.Title,
		Language:   sess.Language,
		Active:     sess.Active,
		CreatedAt:  sess.CreatedAt,
	})
}

func (s *Server) handleJoinSession(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	if err := s.collab.Join(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLeaveSession(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	if err := s.collab.Leave(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	if err := s.collab.End(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, http.StatusForbidden, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
