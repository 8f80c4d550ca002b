package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mkale/skillforge/internal/quiz"
	"github.com/mkale/skillforge/internal/ui/components"
	"github.com/mkale/skillforge/internal/ui/theme"
)

func (c *ChallengeScreen) View(width, height int) string {
	if c.runner == nil {
		return c.viewLoading(width)
	}
	if c.runner.Phase() == quiz.PhaseResults {
		return c.viewResults(width)
	}
	return c.viewQuiz(width)
}

func (c *ChallengeScreen) viewLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Forging your challenge...")
}

func (c *ChallengeScreen) viewQuiz(width int) string {
	r := c.runner
	q := r.Quiz()
	question := r.Current()
	total := len(q.Questions)

	var b strings.Builder
	b.WriteString("\n")

	// Status line: position, difficulty, elapsed.
	elapsed := r.Elapsed()
	status := fmt.Sprintf("Question %d/%d   %s   %d:%02d",
		r.Index()+1, total,
		question.Difficulty.DisplayName(),
		int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(status))

	if q.Fallback {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).
			Render("(offline question bank)"))
	}
	b.WriteString("\n\n")

	// Answered-question dots for jumping context.
	b.WriteString("  " + c.renderDots() + "\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 4).
		PaddingLeft(2).
		Render(question.Text))
	b.WriteString("\n\n")

	// Options.
	labels := []string{"A", "B", "C", "D"}
	answered := r.Answer(r.Index())
	for i, opt := range question.Options {
		prefix := "    "
		if i == c.cursor {
			prefix = "  ▸ "
		}
		marker := " "
		if i == answered {
			marker = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, labels[i], opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else if i == answered {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line) + "\n")
	}

	// Progress.
	b.WriteString("\n")
	bar := components.NewProgressBar(
		fmt.Sprintf("  Answered %d/%d", r.Answered(), total),
		float64(r.Answered())/float64(total), false, width-8)
	b.WriteString(bar.View() + "\n")

	if c.allAnswered() {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Success).
			Render("All answered — press F to finish"))
	}

	return b.String()
}

func (c *ChallengeScreen) viewResults(width int) string {
	r := c.runner
	total := len(r.Quiz().Questions)

	center := func(s string, style lipgloss.Style) string {
		return style.Width(width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center("Challenge complete!",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if r.Score() < 70 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	b.WriteString(center(fmt.Sprintf("%d%%", r.Score()), scoreStyle))
	b.WriteString("\n")

	elapsed := r.Elapsed()
	b.WriteString(center(
		fmt.Sprintf("%d/%d correct in %d:%02d",
			r.CorrectCount(), total,
			int(elapsed.Minutes()), int(elapsed.Seconds())%60),
		lipgloss.NewStyle().Foreground(theme.Text)))
	b.WriteString("\n\n")

	switch {
	case c.recordErr != "":
		b.WriteString(center("Could not save: "+c.recordErr,
			lipgloss.NewStyle().Foreground(theme.Error)))
		b.WriteString("\n")
	case c.completion != nil:
		b.WriteString(center(fmt.Sprintf("+%d XP", c.completion.XPEarned),
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)))
		b.WriteString("\n")
		if c.xp != nil {
			b.WriteString(center(
				fmt.Sprintf("Level %d   %d XP to next", c.xp.Level, c.xp.XPToNextLevel),
				lipgloss.NewStyle().Foreground(theme.TextDim)))
			b.WriteString("\n")
			bar := components.NewProgressBar("", c.xp.ProgressToNextLevel/100, true, min(width-20, 50))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
	default:
		b.WriteString(center("Saving...",
			lipgloss.NewStyle().Foreground(theme.TextDim)))
		b.WriteString("\n")
	}

	if len(c.earned) > 0 {
		b.WriteString("\n")
		b.WriteString(center("Badges",
			lipgloss.NewStyle().Foreground(theme.TextDim)))
		b.WriteString("\n")
		for _, badge := range c.earned {
			line := fmt.Sprintf("★ %s — %s", badge.Name, badge.Description)
			b.WriteString(center(line,
				lipgloss.NewStyle().Foreground(theme.Primary)))
			b.WriteString("\n")
		}
	}

	// Per-question review.
	b.WriteString("\n")
	for i, question := range r.Quiz().Questions {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if r.Answer(i) != question.CorrectIndex {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		text := question.Text
		if len(text) > width-12 && width > 15 {
			text = text[:width-15] + "..."
		}
		b.WriteString(fmt.Sprintf("  %s %2d. %s\n", mark, i+1,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)))
	}

	return b.String()
}

// renderDots draws one dot per question: filled when answered, highlighted
// at the cursor.
func (c *ChallengeScreen) renderDots() string {
	r := c.runner
	parts := make([]string, 0, len(r.Quiz().Questions))
	for i := range r.Quiz().Questions {
		dot := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if r.Answer(i) != quiz.Unanswered {
			dot = "●"
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == r.Index() {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		parts = append(parts, style.Render(dot))
	}
	return strings.Join(parts, " ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
