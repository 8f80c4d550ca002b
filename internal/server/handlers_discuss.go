package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkale/skillforge/internal/discuss"
	"github.com/mkale/skillforge/internal/store"
)

const defaultListLimit = 50

type createThreadRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Body     string `json:"body" validate:"required,max=10000"`
	SkillTag string `json:"skill_tag" validate:"required,max=50"`
}

type threadResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	SkillTag  string    `json:"skill_tag"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type postMessageRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type messageResponse struct {
	ID           string    `json:"id"`
	DiscussionID string    `json:"discussion_id"`
	UserID       string    `json:"user_id"`
	Body         string    `json:"body"`
	Sequence     int64     `json:"sequence"`
	Timestamp    time.Time `json:"timestamp"`
}

type voteRequest struct {
	TargetType string `json:"target_type" validate:"required,oneof=discussion message"`
	TargetID   string `json:"target_id" validate:"required"`
	Value      int    `json:"value" validate:"required,oneof=-1 1"`
}

func threadToResponse(t discuss.Thread) threadResponse {
	return threadResponse{
		ID:        t.DiscussionID,
		UserID:    t.UserID,
		Title:     t.Title,
		Body:      t.Body,
		SkillTag:  t.SkillTag,
		Score:     t.Score,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func messageToResponse(m store.MessageRecord) messageResponse {
	return messageResponse{
		ID:           m.MessageID,
		DiscussionID: m.DiscussionID,
		UserID:       m.UserID,
		Body:         m.Body,
		Sequence:     m.Sequence,
		Timestamp:    m.Timestamp,
	}
}

func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultListLimit)
	threads, err := s.discuss.Threads(r.Context(), r.URL.Query().Get("skill"), limit)
	if err != nil {
		s.log.Error("thread list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "listing threads failed")
		return
	}

	out := make([]threadResponse, len(threads))
	for i, t := range threads {
		out[i] = threadToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateThread(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req createThreadRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.discuss.CreateThread(r.Context(), userID, discuss.CreateThreadInput{
		Title:    req.Title,
		Body:     req.Body,
		SkillTag: req.SkillTag,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, threadToResponse(discuss.Thread{DiscussionRecord: *rec}))
}

func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := s.discuss.Thread(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error("thread get failed", "err", err)
		writeError(w, http.StatusInternalServerError, "loading thread failed")
		return
	}
	if thread == nil {
		writeError(w, http.StatusNotFound, "thread not found")
		return
	}
	writeJSON(w, http.StatusOK, threadToResponse(*thread))
}

// handlePollMessages returns messages with sequence greater than the
// "after" query parameter. Clients poll with their last seen sequence.
func (s *Server) handlePollMessages(w http.ResponseWriter, r *http.Request) {
	after, _ := strconv.ParseInt(r.URL.Query().Get("after"), 10, 64)
	limit := queryInt(r, "limit", defaultListLimit)

	msgs, err := s.discuss.MessagesAfter(r.Context(), chi.URLParam(r, "id"), after, limit)
	if err != nil {
		s.log.Error("message poll failed", "err", err)
		writeError(w, http.StatusInternalServerError, "loading messages failed")
		return
	}

	out := make([]messageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = messageToResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req postMessageRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := s.discuss.PostMessage(r.Context(), userID, discuss.PostMessageInput{
		DiscussionID: chi.URLParam(r, "id"),
		Body:         req.Body,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, messageToResponse(*msg))
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req voteRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.discuss.Vote(r.Context(), userID, discuss.VoteInput{
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Value:      req.Value,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
