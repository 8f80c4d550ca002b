// Package setup is the challenge form: pick skills, a difficulty, and an
// optional challenge name before starting a quiz.
package setup

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/quizgen"
	"github.com/mkale/skillforge/internal/router"
	"github.com/mkale/skillforge/internal/screen"
	"github.com/mkale/skillforge/internal/screens/challenge"
	"github.com/mkale/skillforge/internal/store"
	"github.com/mkale/skillforge/internal/ui/components"
	"github.com/mkale/skillforge/internal/ui/layout"
	"github.com/mkale/skillforge/internal/ui/theme"
)

// Form field focus order.
const (
	focusSkills = iota
	focusDifficulty
	focusName
	focusStart
	focusCount
)

// SetupScreen collects the challenge parameters.
type SetupScreen struct {
	source    *quizgen.Source
	ledgerSvc *ledger.Service
	profiles  store.ProfileRepo
	userID    string

	skillsInput  components.TextInput
	nameInput    components.TextInput
	difficulties []ledger.Difficulty
	diffIndex    int
	focus        int
	errMsg       string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen, pre-filling skills from the user's profile.
func New(source *quizgen.Source, ledgerSvc *ledger.Service, profiles store.ProfileRepo, userID string, skills []string) *SetupScreen {
	skillsInput := components.NewTextInput("go, sql, algorithms", false, 120)
	if len(skills) > 0 {
		skillsInput.Model.SetValue(strings.Join(skills, ", "))
	}

	nameInput := components.NewTextInput("optional", false, 80)
	nameInput.Model.Blur()

	return &SetupScreen{
		source:       source,
		ledgerSvc:    ledgerSvc,
		profiles:     profiles,
		userID:       userID,
		skillsInput:  skillsInput,
		nameInput:    nameInput,
		difficulties: ledger.AllDifficulties(),
		diffIndex:    1, // medium
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.skillsInput.Init()
}

func (s *SetupScreen) Title() string {
	return "New Challenge"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "enter":
			if s.focus == focusStart {
				return s, s.start()
			}
			return s, s.setFocus(s.focus + 1)
		case "left":
			if s.focus == focusDifficulty && s.diffIndex > 0 {
				s.diffIndex--
				return s, nil
			}
		case "right":
			if s.focus == focusDifficulty && s.diffIndex < len(s.difficulties)-1 {
				s.diffIndex++
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusSkills:
		s.skillsInput, cmd = s.skillsInput.Update(msg)
	case focusName:
		s.nameInput, cmd = s.nameInput.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.skillsInput.Model.Blur()
	s.nameInput.Model.Blur()
	switch f {
	case focusSkills:
		return s.skillsInput.Model.Focus()
	case focusName:
		return s.nameInput.Model.Focus()
	}
	return nil
}

// start validates the form and replaces this screen with the quiz.
func (s *SetupScreen) start() tea.Cmd {
	skills := parseSkills(s.skillsInput.Value())
	if len(skills) == 0 {
		s.errMsg = "Enter at least one skill"
		return s.setFocus(focusSkills)
	}
	s.errMsg = ""

	input := quizgen.GenerateInput{
		Skills:        skills,
		Difficulty:    s.difficulties[s.diffIndex],
		ChallengeName: strings.TrimSpace(s.nameInput.Value()),
	}

	// Remember the skill list for the next session.
	if s.profiles != nil && s.userID != "" {
		if err := s.profiles.UpdateSkills(context.Background(), s.userID, skills); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save skills: %v\n", err)
		}
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: challenge.New(s.source, s.ledgerSvc, s.userID, input),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + label("Skills (comma separated)", s.focus == focusSkills) + "\n")
	b.WriteString("  " + s.skillsInput.View() + "\n\n")

	b.WriteString("  " + label("Difficulty", s.focus == focusDifficulty) + "\n")
	b.WriteString("  " + s.renderDifficulties() + "\n\n")

	b.WriteString("  " + label("Challenge name", s.focus == focusName) + "\n")
	b.WriteString("  " + s.nameInput.View() + "\n\n")

	button := components.NewButton("START", s.focus == focusStart, nil)
	b.WriteString("  " + button.View() + "\n")

	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *SetupScreen) renderDifficulties() string {
	parts := make([]string, 0, len(s.difficulties))
	for i, d := range s.difficulties {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		text := "  " + d.DisplayName() + "  "
		if i == s.diffIndex {
			style = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true)
		}
		parts = append(parts, style.Render(text))
	}
	return strings.Join(parts, " ")
}

// parseSkills splits a comma-separated skill list, dropping empty entries.
func parseSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
