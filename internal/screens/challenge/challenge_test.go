package challenge

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/quiz"
	"github.com/mkale/skillforge/internal/quizgen"
	"github.com/mkale/skillforge/internal/store"
)

// fakeCompletionLog implements store.CompletionLog in memory.
type fakeCompletionLog struct {
	records []store.CompletionRecord
}

func (f *fakeCompletionLog) AppendCompletion(_ context.Context, data store.CompletionEventData) error {
	f.records = append(f.records, store.CompletionRecord{
		CompletionID:  data.CompletionID,
		UserID:        data.UserID,
		ChallengeName: data.ChallengeName,
		Score:         data.Score,
		Difficulty:    data.Difficulty,
		Skills:        data.Skills,
		XPEarned:      data.XPEarned,
		Badge:         data.Badge,
		Timestamp:     time.Now(),
	})
	return nil
}

func (f *fakeCompletionLog) CompletionsByUser(_ context.Context, userID string, _ store.QueryOpts) ([]store.CompletionRecord, error) {
	var out []store.CompletionRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeCompletionLog) CompletionXPSince(_ context.Context, _ time.Time) (map[string]int, error) {
	return nil, nil
}

type fakeActivityLog struct{}

func (fakeActivityLog) AppendActivity(context.Context, store.ActivityEventData) error {
	return nil
}
func (fakeActivityLog) RecentActivity(context.Context, string, int) ([]store.ActivityRecord, error) {
	return nil, nil
}

type fakeLedgerRepo struct {
	records map[string]store.LedgerRecord
}

func (f *fakeLedgerRepo) Get(_ context.Context, userID string) (*store.LedgerRecord, error) {
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeLedgerRepo) Save(_ context.Context, rec *store.LedgerRecord) error {
	if f.records == nil {
		f.records = make(map[string]store.LedgerRecord)
	}
	f.records[rec.UserID] = *rec
	return nil
}

func (f *fakeLedgerRepo) Totals(context.Context, int) ([]store.LedgerTotal, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) (*ChallengeScreen, *fakeCompletionLog, *fakeLedgerRepo) {
	t.Helper()

	completions := &fakeCompletionLog{}
	ledgers := &fakeLedgerRepo{}
	svc := ledger.NewService(completions, fakeActivityLog{}, ledgers)

	source := quizgen.NewSource(nil) // built-in bank only
	input := quizgen.GenerateInput{
		Skills:     []string{"go"},
		Difficulty: ledger.DifficultyMedium,
	}

	c := New(source, svc, "user-1", input)

	// Run Init synchronously to load the quiz.
	msg := c.Init()()
	ready, ok := msg.(quizReadyMsg)
	if !ok {
		t.Fatalf("expected quizReadyMsg, got %T", msg)
	}
	c.Update(ready)
	return c, completions, ledgers
}

func TestLoadsQuizOnInit(t *testing.T) {
	c, _, _ := testScreen(t)

	if c.runner == nil {
		t.Fatal("expected runner after quizReadyMsg")
	}
	if got := len(c.runner.Quiz().Questions); got != quizgen.QuizSize {
		t.Errorf("expected %d questions, got %d", quizgen.QuizSize, got)
	}
	if c.runner.Phase() != quiz.PhaseQuiz {
		t.Errorf("expected quiz phase, got %v", c.runner.Phase())
	}
}

func TestAnswerAndAdvance(t *testing.T) {
	c, _, _ := testScreen(t)

	// Move the cursor to option 1 and answer.
	c.Update(specialKey(tea.KeyDown))
	c.Update(specialKey(tea.KeyEnter))

	if got := c.runner.Answer(0); got != 1 {
		t.Errorf("expected answer 1 recorded, got %d", got)
	}
	if c.runner.Index() != 1 {
		t.Errorf("expected cursor advanced to question 1, got %d", c.runner.Index())
	}
}

func TestNavigationRestoresCursor(t *testing.T) {
	c, _, _ := testScreen(t)

	c.Update(specialKey(tea.KeyDown))
	c.Update(specialKey(tea.KeyDown))
	c.Update(specialKey(tea.KeyEnter)) // answer option 2, advance

	c.Update(specialKey(tea.KeyLeft)) // back to question 0
	if c.cursor != 2 {
		t.Errorf("expected cursor restored to recorded answer 2, got %d", c.cursor)
	}
	if got := c.runner.Answer(0); got != 2 {
		t.Errorf("expected answer preserved, got %d", got)
	}
}

func TestFinishRequiresAllAnswered(t *testing.T) {
	c, _, _ := testScreen(t)

	c.Update(specialKey(tea.KeyEnter)) // one answer only
	c.Update(keyPress('f'))

	if c.runner.Phase() != quiz.PhaseQuiz {
		t.Error("expected finish to be ignored with unanswered questions")
	}
}

func TestFullFlowRecordsCompletion(t *testing.T) {
	c, completions, ledgers := testScreen(t)

	// Answer every question with the first option; the final enter
	// submits because all questions are answered.
	var cmd tea.Cmd
	for i := 0; i < quizgen.QuizSize; i++ {
		_, cmd = c.Update(specialKey(tea.KeyEnter))
	}

	if c.runner.Phase() != quiz.PhaseResults {
		t.Fatal("expected results phase after answering all questions")
	}
	if cmd == nil {
		t.Fatal("expected a record command from the final answer")
	}

	recorded, ok := cmd().(recordedMsg)
	if !ok {
		t.Fatalf("expected recordedMsg, got %T", cmd())
	}
	if recorded.Err != nil {
		t.Fatalf("unexpected record error: %v", recorded.Err)
	}
	c.Update(recorded)

	if c.completion == nil {
		t.Fatal("expected completion on screen")
	}
	if c.completion.Score != c.runner.Score() {
		t.Errorf("completion score %d != runner score %d", c.completion.Score, c.runner.Score())
	}
	if len(completions.records) != 1 {
		t.Fatalf("expected 1 completion record, got %d", len(completions.records))
	}
	if rec := ledgers.records["user-1"]; rec.TotalXP != c.completion.XPEarned {
		t.Errorf("ledger XP %d != earned %d", rec.TotalXP, c.completion.XPEarned)
	}
}

func TestRetakeClearsState(t *testing.T) {
	c, _, _ := testScreen(t)

	var cmd tea.Cmd
	for i := 0; i < quizgen.QuizSize; i++ {
		_, cmd = c.Update(specialKey(tea.KeyEnter))
	}
	c.Update(cmd().(recordedMsg))

	c.Update(keyPress('r'))

	if c.runner.Phase() != quiz.PhaseQuiz {
		t.Error("expected quiz phase after retake")
	}
	if c.runner.Answered() != 0 {
		t.Errorf("expected no answers after retake, got %d", c.runner.Answered())
	}
	if c.completion != nil || len(c.earned) != 0 {
		t.Error("expected results cleared after retake")
	}
}
