package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/quizgen"
	"github.com/mkale/skillforge/internal/router"
	"github.com/mkale/skillforge/internal/screen"
	"github.com/mkale/skillforge/internal/screens/setup"
	"github.com/mkale/skillforge/internal/screens/stats"
	"github.com/mkale/skillforge/internal/store"
	"github.com/mkale/skillforge/internal/ui/components"
	"github.com/mkale/skillforge/internal/ui/theme"
)

// statsLoadedMsg carries the ledger snapshot shown on the stats bar.
type statsLoadedMsg struct {
	XP        *ledger.XpStats
	Challenge *ledger.ChallengeStats
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	ledgerSvc *ledger.Service
	userID    string
	username  string

	menu       components.Menu
	menuLabels []string
	xp         *ledger.XpStats
	challenge  *ledger.ChallengeStats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. A nil source means challenges come from the
// built-in question bank only.
func New(source *quizgen.Source, ledgerSvc *ledger.Service, profiles store.ProfileRepo, userID, username string, skills []string) *HomeScreen {
	menuLabels := []string{"START CHALLENGE", "MY STATS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(source, ledgerSvc, profiles, userID, skills),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(ledgerSvc, userID)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ledgerSvc:  ledgerSvc,
		userID:     userID,
		username:   username,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		xp, err := h.ledgerSvc.XpStats(ctx, h.userID)
		if err != nil {
			return statsLoadedMsg{}
		}
		challenge, err := h.ledgerSvc.Stats(ctx, h.userID)
		if err != nil {
			return statsLoadedMsg{XP: xp}
		}
		return statsLoadedMsg{XP: xp, Challenge: challenge}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.xp = msg.XP
		h.challenge = msg.Challenge
		return h, nil

	case router.ScreenResumedMsg:
		// A quiz may have just been recorded; refresh the stats bar.
		return h, h.loadStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, h.renderStatsBar(cw))
	sections = append(sections, h.renderMenu(cw))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderTitle(cw int) string {
	banner := strings.Join([]string{
		"╔═╗╦╔═╦╦  ╦  ╔═╗╔═╗╦═╗╔═╗╔═╗",
		"╚═╗╠╩╗║║  ║  ╠╣ ║ ║╠╦╝║ ╦║╣ ",
		"╚═╝╩ ╩╩╩═╝╩═╝╚  ╚═╝╩╚═╚═╝╚═╝",
	}, "\n")

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Width(cw).
		Render(banner)

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Width(cw).
		Render("forge your skills, one challenge at a time")

	return title + "\n" + tagline
}

func (h *HomeScreen) renderStatsBar(cw int) string {
	if h.xp == nil {
		return components.ArcadeCard(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."), cw)
	}

	streak := 0
	if h.challenge != nil {
		streak = h.challenge.CurrentStreak
	}

	stats := fmt.Sprintf("Level %d   %d XP   ★ %d day streak",
		h.xp.Level, h.xp.TotalXP, streak)

	bar := components.NewProgressBar("", h.xp.ProgressToNextLevel/100, false, cw-12)

	inner := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(stats) +
		"\n" + bar.View() +
		"\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d XP to level %d", h.xp.XPToNextLevel, h.xp.Level+1))

	return components.ArcadeCard(inner, cw)
}

func (h *HomeScreen) renderMenu(cw int) string {
	var b strings.Builder
	buttonWidth := cw - 10
	for i, label := range h.menuLabels {
		b.WriteString(components.ArcadeButton(label, i == h.menu.Selected, buttonWidth))
		if i < len(h.menuLabels)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
