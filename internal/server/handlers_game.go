package server

import (
	"net/http"
	"time"

	"github.com/mkale/skillforge/internal/badges"
	"github.com/mkale/skillforge/internal/leaderboard"
	"github.com/mkale/skillforge/internal/ledger"
)

type recordCompletionRequest struct {
	ChallengeName string   `json:"challenge_name" validate:"required,max=200"`
	Score         int      `json:"score" validate:"min=0,max=100"`
	Difficulty    string   `json:"difficulty" validate:"required,oneof=easy medium hard expert"`
	Skills        []string `json:"skills" validate:"required,min=1,dive,min=1,max=50"`
	ElapsedSecs   int      `json:"elapsed_seconds" validate:"min=0"`
}

type completionResponse struct {
	ID       string   `json:"id"`
	XPEarned int      `json:"xp_earned"`
	Badge    string   `json:"badge,omitempty"`
	Badges   []string `json:"badges,omitempty"`
}

type statsResponse struct {
	TotalXP             int     `json:"total_xp"`
	DailyXP             int     `json:"daily_xp"`
	WeeklyXP            int     `json:"weekly_xp"`
	Level               int     `json:"level"`
	XPToNextLevel       int     `json:"xp_to_next_level"`
	ProgressToNextLevel float64 `json:"progress_to_next_level"`
	TotalCompleted      int     `json:"total_completed"`
	DailyCompleted      int     `json:"daily_completed"`
	WeeklyCompleted     int     `json:"weekly_completed"`
	AverageScore        int     `json:"average_score"`
	CurrentStreak       int     `json:"current_streak"`
	Karma               int     `json:"karma"`
}

type leaderboardResponse struct {
	Period  string             `json:"period"`
	Entries []leaderboardEntry `json:"entries"`
	You     *leaderboardEntry  `json:"you,omitempty"`
}

type leaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"user_id"`
	XP     int    `json:"xp"`
	Level  int    `json:"level,omitempty"`
}

func (s *Server) handleRecordCompletion(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req recordCompletionRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome := badges.Outcome{
		Score:      req.Score,
		Difficulty: ledger.Difficulty(req.Difficulty),
	}
	if req.ElapsedSecs > 0 {
		outcome.Elapsed = time.Duration(req.ElapsedSecs) * time.Second
	}
	earned := badges.Derive(outcome)

	completion, err := s.ledger.RecordCompletion(r.Context(), userID, ledger.RecordInput{
		ChallengeName: req.ChallengeName,
		Score:         req.Score,
		Difficulty:    ledger.Difficulty(req.Difficulty),
		Skills:        req.Skills,
		Badge:         badges.Primary(outcome),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := completionResponse{
		ID:       completion.ID,
		XPEarned: completion.XPEarned,
		Badge:    completion.Badge,
	}
	for _, b := range earned {
		resp.Badges = append(resp.Badges, b.Name)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	ctx := r.Context()

	xp, err := s.ledger.XpStats(ctx, userID)
	if err != nil {
		s.log.Error("xp stats failed", "err", err)
		writeError(w, http.StatusInternalServerError, "loading stats failed")
		return
	}
	challenges, err := s.ledger.Stats(ctx, userID)
	if err != nil {
		s.log.Error("challenge stats failed", "err", err)
		writeError(w, http.StatusInternalServerError, "loading stats failed")
		return
	}
	karma, err := s.discuss.Karma(ctx, userID)
	if err != nil {
		s.log.Error("karma failed", "err", err)
		writeError(w, http.StatusInternalServerError, "loading stats failed")
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalXP:             xp.TotalXP,
		DailyXP:             xp.DailyXP,
		WeeklyXP:            xp.WeeklyXP,
		Level:               xp.Level,
		XPToNextLevel:       xp.XPToNextLevel,
		ProgressToNextLevel: xp.ProgressToNextLevel,
		TotalCompleted:      challenges.TotalCompleted,
		DailyCompleted:      challenges.DailyCompleted,
		WeeklyCompleted:     challenges.WeeklyCompleted,
		AverageScore:        challenges.AverageScore,
		CurrentStreak:       challenges.CurrentStreak,
		Karma:               karma,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	limit := queryInt(r, "limit", 20)
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "alltime"
	}

	var (
		raw []leaderboard.Entry
		err error
	)
	switch period {
	case "alltime":
		raw, err = s.board.AllTime(r.Context(), limit)
	case "weekly":
		raw, err = s.board.Weekly(r.Context(), limit)
	default:
		writeError(w, http.StatusBadRequest, "period must be alltime or weekly")
		return
	}
	if err != nil {
		s.log.Error("leaderboard failed", "err", err, "period", period)
		writeError(w, http.StatusInternalServerError, "loading leaderboard failed")
		return
	}

	entries := make([]leaderboardEntry, len(raw))
	for i, e := range raw {
		entries[i] = leaderboardEntry{Rank: e.Rank, UserID: e.UserID, XP: e.XP, Level: e.Level}
	}

	resp := leaderboardResponse{Period: period, Entries: entries}
	if period == "alltime" {
		if you, err := s.board.RankForUser(r.Context(), userID); err == nil && you != nil {
			resp.You = &leaderboardEntry{Rank: you.Rank, UserID: you.UserID, XP: you.XP, Level: you.Level}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
