// Package challenge runs one quiz attempt end to end: generation, question
// answering, and the results view with XP and badges.
package challenge

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mkale/skillforge/internal/badges"
	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/quiz"
	"github.com/mkale/skillforge/internal/quizgen"
	"github.com/mkale/skillforge/internal/router"
	"github.com/mkale/skillforge/internal/screen"
	"github.com/mkale/skillforge/internal/ui/layout"
)

type quizReadyMsg struct {
	Quiz *quizgen.Quiz
}

type tickMsg time.Time

type recordedMsg struct {
	Completion *ledger.Completion
	XP         *ledger.XpStats
	Err        error
}

// ChallengeScreen drives a quiz.Runner from generation through results.
type ChallengeScreen struct {
	source    *quizgen.Source
	ledgerSvc *ledger.Service
	userID    string
	input     quizgen.GenerateInput

	runner *quiz.Runner
	cursor int // highlighted option on the current question

	completion *ledger.Completion
	xp         *ledger.XpStats
	earned     []badges.Badge
	recordErr  string
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// New creates a challenge screen that generates its quiz on Init.
func New(source *quizgen.Source, ledgerSvc *ledger.Service, userID string, input quizgen.GenerateInput) *ChallengeScreen {
	return &ChallengeScreen{
		source:    source,
		ledgerSvc: ledgerSvc,
		userID:    userID,
		input:     input,
	}
}

func (c *ChallengeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		q := c.source.Challenge(context.Background(), c.input)
		return quizReadyMsg{Quiz: q}
	}
}

func (c *ChallengeScreen) Title() string {
	if c.runner != nil {
		return c.runner.Quiz().ChallengeName
	}
	return "Challenge"
}

func (c *ChallengeScreen) KeyHints() []layout.KeyHint {
	switch {
	case c.runner == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case c.runner.Phase() == quiz.PhaseResults:
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "←→", Description: "Question"},
			{Key: "Enter", Description: "Answer"},
			{Key: "F", Description: "Finish"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

func (c *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		c.runner = quiz.NewRunner(msg.Quiz)
		c.cursor = 0
		return c, tick()

	case tickMsg:
		if c.runner == nil || c.runner.Phase() != quiz.PhaseQuiz {
			return c, nil
		}
		return c, tick()

	case recordedMsg:
		if msg.Err != nil {
			c.recordErr = msg.Err.Error()
			return c, nil
		}
		c.completion = msg.Completion
		c.xp = msg.XP
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}
	return c, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (c *ChallengeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.runner == nil {
		return c, nil
	}

	if c.runner.Phase() == quiz.PhaseResults {
		switch msg.String() {
		case "r":
			c.retake()
			return c, tick()
		case "enter":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return c, nil
	}

	switch msg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.runner.Current().Options)-1 {
			c.cursor++
		}
	case "left", "h":
		c.runner.Prev()
		c.syncCursor()
	case "right", "l":
		c.runner.Next()
		c.syncCursor()
	case "enter":
		if err := c.runner.Select(c.cursor); err != nil {
			return c, nil
		}
		if c.allAnswered() && c.runner.Index() == len(c.runner.Quiz().Questions)-1 {
			return c, c.finish()
		}
		c.runner.Next()
		c.syncCursor()
	case "f":
		if c.allAnswered() {
			return c, c.finish()
		}
	}
	return c, nil
}

// syncCursor moves the option cursor to the recorded answer, if any.
func (c *ChallengeScreen) syncCursor() {
	if a := c.runner.Answer(c.runner.Index()); a != quiz.Unanswered {
		c.cursor = a
	} else {
		c.cursor = 0
	}
}

func (c *ChallengeScreen) allAnswered() bool {
	return c.runner.Answered() == len(c.runner.Quiz().Questions)
}

// finish submits the attempt and records the completion.
func (c *ChallengeScreen) finish() tea.Cmd {
	c.runner.Finish()

	q := c.runner.Quiz()
	outcome := badges.Outcome{
		Score:      c.runner.Score(),
		Difficulty: q.Difficulty,
		Elapsed:    c.runner.Elapsed(),
	}
	c.earned = badges.Derive(outcome)

	score := c.runner.Score()
	primary := badges.Primary(outcome)
	userID := c.userID
	svc := c.ledgerSvc

	return func() tea.Msg {
		ctx := context.Background()
		completion, err := svc.RecordCompletion(ctx, userID, ledger.RecordInput{
			ChallengeName: q.ChallengeName,
			Score:         score,
			Difficulty:    q.Difficulty,
			Skills:        q.Skills,
			Badge:         primary,
		})
		if err != nil {
			return recordedMsg{Err: fmt.Errorf("record completion: %w", err)}
		}
		xp, err := svc.XpStats(ctx, userID)
		if err != nil {
			return recordedMsg{Completion: completion, Err: nil}
		}
		return recordedMsg{Completion: completion, XP: xp}
	}
}

// retake restarts the same quiz and clears the recorded results.
func (c *ChallengeScreen) retake() {
	c.runner.Retake()
	c.cursor = 0
	c.completion = nil
	c.xp = nil
	c.earned = nil
	c.recordErr = ""
}
