package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkale/skillforge/internal/collab"
	"github.com/mkale/skillforge/internal/discuss"
	"github.com/mkale/skillforge/internal/leaderboard"
	"github.com/mkale/skillforge/internal/ledger"
)

type nopDialer struct{}

type nopConn struct{}

func (nopConn) Endpoint() string { return "relay-test" }
func (nopConn) Close() error     { return nil }

func (nopDialer) Dial(_ context.Context, _ string) (collab.Conn, error) { return nopConn{}, nil }

func newTestServer() *Server {
	mem := newMemStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(
		log,
		mem,
		ledger.NewService(mem, mem, mem),
		discuss.NewService(mem),
		leaderboard.NewService(mem, mem),
		collab.NewService(mem, nopDialer{}, []string{"relay-test"}),
	)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

// registerUser registers a user and returns their token.
func registerUser(t *testing.T, h http.Handler, username string) authResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", "", map[string]any{
		"username": username,
		"password": "hunter2hunter2",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", username, rec.Code, rec.Body.String())
	}
	return decodeBody[authResponse](t, rec)
}

func TestHealthz(t *testing.T) {
	h := newTestServer().Router()
	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody[map[string]string](t, rec)
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestRegisterAndLogin(t *testing.T) {
	h := newTestServer().Router()

	auth := registerUser(t, h, "alice")
	if auth.Token == "" || auth.UserID == "" {
		t.Fatalf("incomplete auth response: %+v", auth)
	}

	// Duplicate username is a conflict.
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", "", map[string]any{
		"username": "alice", "password": "hunter2hunter2",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", rec.Code)
	}

	// Wrong password is rejected.
	rec = doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"username": "alice", "password": "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", rec.Code)
	}

	// Correct password logs in.
	rec = doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"username": "alice", "password": "hunter2hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d body %s", rec.Code, rec.Body.String())
	}
	login := decodeBody[authResponse](t, rec)
	if login.UserID != auth.UserID {
		t.Errorf("login uid = %s, want %s", login.UserID, auth.UserID)
	}
}

func TestRegister_Validation(t *testing.T) {
	h := newTestServer().Router()

	cases := []map[string]any{
		{"username": "ab", "password": "hunter2hunter2"},   // short username
		{"username": "alice", "password": "short"},          // short password
		{"username": "bad name", "password": "hunter2okay"}, // non-alphanum
		{"password": "hunter2hunter2"},                      // missing username
	}
	for i, body := range cases {
		rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", "", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, rec.Code)
		}
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	h := newTestServer().Router()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/discussions"},
		{http.MethodGet, "/v1/leaderboard"},
		{http.MethodGet, "/v1/stats"},
		{http.MethodGet, "/v1/sessions"},
	}
	for _, p := range paths {
		rec := doJSON(t, h, p.method, p.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", p.method, p.path, rec.Code)
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/v1/stats", "not-a-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", rec.Code)
	}
}

func TestDiscussionFlow(t *testing.T) {
	h := newTestServer().Router()
	alice := registerUser(t, h, "alice")
	bob := registerUser(t, h, "bob")

	rec := doJSON(t, h, http.MethodPost, "/v1/discussions", alice.Token, map[string]any{
		"title": "Generics in practice", "body": "Where do they shine?", "skill_tag": "go",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create thread status = %d body %s", rec.Code, rec.Body.String())
	}
	thread := decodeBody[threadResponse](t, rec)

	// Bob posts two messages.
	rec = doJSON(t, h, http.MethodPost, "/v1/discussions/"+thread.ID+"/messages", bob.Token, map[string]any{"body": "Container types."})
	if rec.Code != http.StatusCreated {
		t.Fatalf("post message status = %d body %s", rec.Code, rec.Body.String())
	}
	first := decodeBody[messageResponse](t, rec)
	rec = doJSON(t, h, http.MethodPost, "/v1/discussions/"+thread.ID+"/messages", bob.Token, map[string]any{"body": "And constraints on funcs."})
	if rec.Code != http.StatusCreated {
		t.Fatal(rec.Body.String())
	}

	// Polling after the first message yields only the second.
	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/v1/discussions/%s/messages?after=%d", thread.ID, first.Sequence), alice.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatal(rec.Body.String())
	}
	newer := decodeBody[[]messageResponse](t, rec)
	if len(newer) != 1 || newer[0].Body != "And constraints on funcs." {
		t.Errorf("poll = %+v, want only the second message", newer)
	}

	// Vote on the thread and read the score back.
	rec = doJSON(t, h, http.MethodPost, "/v1/votes", bob.Token, map[string]any{
		"target_type": "discussion", "target_id": thread.ID, "value": 1,
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("vote status = %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/discussions/"+thread.ID, alice.Token, nil)
	got := decodeBody[threadResponse](t, rec)
	if got.Score != 1 {
		t.Errorf("thread score = %d, want 1", got.Score)
	}

	// Invalid vote value is rejected by DTO validation.
	rec = doJSON(t, h, http.MethodPost, "/v1/votes", bob.Token, map[string]any{
		"target_type": "discussion", "target_id": thread.ID, "value": 5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid vote status = %d, want 400", rec.Code)
	}
}

func TestGetThread_NotFound(t *testing.T) {
	h := newTestServer().Router()
	alice := registerUser(t, h, "alice")

	rec := doJSON(t, h, http.MethodGet, "/v1/discussions/nope", alice.Token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCompletionAndStats(t *testing.T) {
	h := newTestServer().Router()
	alice := registerUser(t, h, "alice")

	rec := doJSON(t, h, http.MethodPost, "/v1/completions", alice.Token, map[string]any{
		"challenge_name":  "Go Fundamentals",
		"score":           90,
		"difficulty":      "hard",
		"skills":          []string{"go"},
		"elapsed_seconds": 95,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("completion status = %d body %s", rec.Code, rec.Body.String())
	}
	completion := decodeBody[completionResponse](t, rec)
	if completion.XPEarned != 210 {
		t.Errorf("xp = %d, want 210", completion.XPEarned)
	}
	if completion.Badge == "" {
		t.Error("expected a badge for a 90% hard run")
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/stats", alice.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatal(rec.Body.String())
	}
	stats := decodeBody[statsResponse](t, rec)
	if stats.TotalXP != 210 || stats.Level != 1 || stats.CurrentStreak != 1 {
		t.Errorf("stats = %+v, want 210 XP level 1 streak 1", stats)
	}

	// Bad difficulty is rejected before touching the ledger.
	rec = doJSON(t, h, http.MethodPost, "/v1/completions", alice.Token, map[string]any{
		"challenge_name": "x", "score": 50, "difficulty": "brutal", "skills": []string{"go"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad difficulty status = %d, want 400", rec.Code)
	}
}

func TestLeaderboard(t *testing.T) {
	h := newTestServer().Router()
	alice := registerUser(t, h, "alice")
	bob := registerUser(t, h, "bob")

	complete := func(token string, score int) {
		t.Helper()
		rec := doJSON(t, h, http.MethodPost, "/v1/completions", token, map[string]any{
			"challenge_name": "q", "score": score, "difficulty": "medium", "skills": []string{"go"},
		})
		if rec.Code != http.StatusCreated {
			t.Fatal(rec.Body.String())
		}
	}
	complete(alice.Token, 100) // 200 XP
	complete(bob.Token, 50)    // 100 XP

	rec := doJSON(t, h, http.MethodGet, "/v1/leaderboard?period=alltime", alice.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatal(rec.Body.String())
	}
	board := decodeBody[leaderboardResponse](t, rec)
	if len(board.Entries) != 2 || board.Entries[0].UserID != alice.UserID {
		t.Errorf("board = %+v, want alice first", board.Entries)
	}
	if board.You == nil || board.You.Rank != 1 {
		t.Errorf("you = %+v, want rank 1", board.You)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/leaderboard?period=weekly", alice.Token, nil)
	weekly := decodeBody[leaderboardResponse](t, rec)
	if len(weekly.Entries) != 2 || weekly.Entries[0].UserID != alice.UserID {
		t.Errorf("weekly = %+v, want alice first", weekly.Entries)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/leaderboard?period=century", alice.Token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad period status = %d, want 400", rec.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	h := newTestServer().Router()
	alice := registerUser(t, h, "alice")
	bob := registerUser(t, h, "bob")

	rec := doJSON(t, h, http.MethodPost, "/v1/sessions", alice.Token, map[string]any{
		"title": "Pairing on parsers", "language": "go",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d body %s", rec.Code, rec.Body.String())
	}
	sess := decodeBody[sessionResponse](t, rec)

	rec = doJSON(t, h, http.MethodPost, "/v1/sessions/"+sess.ID+"/join", bob.Token, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("join status = %d", rec.Code)
	}

	// Only the host can end it.
	rec = doJSON(t, h, http.MethodPost, "/v1/sessions/"+sess.ID+"/end", bob.Token, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("guest end status = %d, want 403", rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, "/v1/sessions/"+sess.ID+"/end", alice.Token, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("host end status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/sessions", alice.Token, nil)
	sessions := decodeBody[[]sessionResponse](t, rec)
	if len(sessions) != 0 {
		t.Errorf("active sessions = %d, want 0", len(sessions))
	}
}
