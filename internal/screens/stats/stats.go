// Package stats shows the user's XP, level, streak, and recent activity.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/router"
	"github.com/mkale/skillforge/internal/screen"
	"github.com/mkale/skillforge/internal/store"
	"github.com/mkale/skillforge/internal/ui/components"
	"github.com/mkale/skillforge/internal/ui/layout"
	"github.com/mkale/skillforge/internal/ui/theme"
)

const recentLimit = 10

type statsLoadedMsg struct {
	XP          *ledger.XpStats
	Challenge   *ledger.ChallengeStats
	Completions []store.CompletionRecord
	Activity    []store.ActivityRecord
	Err         error
}

// StatsScreen displays the ledger-derived statistics for one user.
type StatsScreen struct {
	ledgerSvc *ledger.Service
	userID    string

	xp          *ledger.XpStats
	challenge   *ledger.ChallengeStats
	completions []store.CompletionRecord
	activity    []store.ActivityRecord
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen.
func New(ledgerSvc *ledger.Service, userID string) *StatsScreen {
	return &StatsScreen{ledgerSvc: ledgerSvc, userID: userID}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		xp, err := s.ledgerSvc.XpStats(ctx, s.userID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		challenge, err := s.ledgerSvc.Stats(ctx, s.userID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		completions, err := s.ledgerSvc.Completions(ctx, s.userID, recentLimit)
		if err != nil {
			return statsLoadedMsg{XP: xp, Challenge: challenge, Err: nil}
		}
		activity, _ := s.ledgerSvc.RecentActivity(ctx, s.userID, recentLimit)

		return statsLoadedMsg{
			XP:          xp,
			Challenge:   challenge,
			Completions: completions,
			Activity:    activity,
		}
	}
}

func (s *StatsScreen) Title() string {
	return "My Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.xp = msg.XP
		s.challenge = msg.Challenge
		s.completions = msg.Completions
		s.activity = msg.Activity
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Level and XP.
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("Level %d", s.xp.Level)),
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%d XP total", s.xp.TotalXP))))

	bar := components.NewProgressBar("  ", s.xp.ProgressToNextLevel/100, true, min(width-8, 60))
	b.WriteString(bar.View() + "\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d XP to level %d", s.xp.XPToNextLevel, s.xp.Level+1)) + "\n\n")

	// Period counters.
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Today: %d XP (%d challenges)   This week: %d XP (%d challenges)",
			s.xp.DailyXP, s.challenge.DailyCompleted,
			s.xp.WeeklyXP, s.challenge.WeeklyCompleted)) + "\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Completed: %d   Average score: %d%%   Streak: ★ %d day",
			s.challenge.TotalCompleted, s.challenge.AverageScore,
			s.challenge.CurrentStreak)) + "\n\n")

	// Recent challenges.
	if len(s.completions) > 0 {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Recent challenges") + "\n")
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Border).
			Render(strings.Repeat("─", min(width-8, 60))) + "\n")
		for _, rec := range s.completions {
			badge := ""
			if rec.Badge != "" {
				badge = "   ★ " + rec.Badge
			}
			line := fmt.Sprintf("  %s  %-28s  %3d%%  +%d XP%s",
				rec.Timestamp.Format("Jan 02"),
				truncate(rec.ChallengeName, 28),
				rec.Score, rec.XPEarned, badge)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	// Activity feed.
	if len(s.activity) > 0 {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Activity") + "\n")
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Border).
			Render(strings.Repeat("─", min(width-8, 60))) + "\n")
		for _, act := range s.activity {
			line := fmt.Sprintf("  %s  %s",
				act.Timestamp.Format("Jan 02 15:04"),
				truncate(act.Detail, width-30))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n")
		}
	}

	if s.challenge.TotalCompleted == 0 {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No challenges yet. Start one from the home screen!") + "\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
