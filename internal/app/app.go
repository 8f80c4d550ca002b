package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/quizgen"
	"github.com/mkale/skillforge/internal/router"
	"github.com/mkale/skillforge/internal/screen"
	"github.com/mkale/skillforge/internal/screens/home"
	"github.com/mkale/skillforge/internal/store"
	"github.com/mkale/skillforge/internal/ui/layout"
)

// Options carries the services the TUI needs. Source may be nil, in which
// case challenges come from the built-in question bank.
type Options struct {
	Source   *quizgen.Source
	Ledger   *ledger.Service
	Profiles store.ProfileRepo
	UserID   string
	Username string
	Skills   []string
}

// headerStatsMsg refreshes the level/streak shown in the header bar.
type headerStatsMsg struct {
	Level  int
	Streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
	level  int
	streak int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Source, opts.Ledger, opts.Profiles, opts.UserID, opts.Username, opts.Skills)
	return AppModel{
		opts:   opts,
		router: router.New(homeScreen),
		level:  1,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadHeaderStats())
}

// loadHeaderStats refreshes the header's level and streak from the ledger.
func (m AppModel) loadHeaderStats() tea.Cmd {
	svc := m.opts.Ledger
	userID := m.opts.UserID
	return func() tea.Msg {
		ctx := context.Background()
		xp, err := svc.XpStats(ctx, userID)
		if err != nil {
			return headerStatsMsg{Level: 1}
		}
		challenge, err := svc.Stats(ctx, userID)
		if err != nil {
			return headerStatsMsg{Level: xp.Level}
		}
		return headerStatsMsg{Level: xp.Level, Streak: challenge.CurrentStreak}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.level = msg.Level
		m.streak = msg.Streak
		return m, nil

	case router.PopScreenMsg:
		// A screen just closed; the ledger may have new XP.
		return m, tea.Batch(m.router.Update(msg), m.loadHeaderStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.level, m.streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
