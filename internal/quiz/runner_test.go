package quiz

import (
	"testing"
	"time"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/quizgen"
)

func testQuiz() *quizgen.Quiz {
	return quizgen.FallbackQuiz(quizgen.GenerateInput{
		Skills:     []string{"go"},
		Difficulty: ledger.DifficultyMedium,
	})
}

func TestNewRunner_StartsUnanswered(t *testing.T) {
	r := NewRunner(testQuiz())

	if r.Phase() != PhaseQuiz {
		t.Errorf("phase = %v, want PhaseQuiz", r.Phase())
	}
	if r.Index() != 0 {
		t.Errorf("index = %d, want 0", r.Index())
	}
	if r.Answered() != 0 {
		t.Errorf("answered = %d, want 0", r.Answered())
	}
	for i := range r.Quiz().Questions {
		if r.Answer(i) != Unanswered {
			t.Errorf("question %d: answer = %d, want sentinel", i, r.Answer(i))
		}
	}
}

func TestNavigation_PreservesAnswers(t *testing.T) {
	r := NewRunner(testQuiz())

	if err := r.Select(2); err != nil {
		t.Fatal(err)
	}
	r.Next()
	if err := r.Select(1); err != nil {
		t.Fatal(err)
	}
	r.Prev()

	if r.Answer(0) != 2 {
		t.Errorf("answer 0 = %d, want 2 after navigating away and back", r.Answer(0))
	}
	if r.Answer(1) != 1 {
		t.Errorf("answer 1 = %d, want 1", r.Answer(1))
	}
}

func TestNavigation_ClampsAtEnds(t *testing.T) {
	r := NewRunner(testQuiz())

	r.Prev()
	if r.Index() != 0 {
		t.Errorf("Prev at start moved index to %d", r.Index())
	}

	r.Jump(len(r.Quiz().Questions) - 1)
	r.Next()
	if r.Index() != len(r.Quiz().Questions)-1 {
		t.Errorf("Next at end moved index to %d", r.Index())
	}

	r.Jump(99)
	if r.Index() != len(r.Quiz().Questions)-1 {
		t.Errorf("out-of-range Jump moved index to %d", r.Index())
	}
}

func TestSelect_OverwritesAndValidates(t *testing.T) {
	r := NewRunner(testQuiz())

	if err := r.Select(0); err != nil {
		t.Fatal(err)
	}
	if err := r.Select(3); err != nil {
		t.Fatal(err)
	}
	if r.Answer(0) != 3 {
		t.Errorf("answer = %d, want 3 after reselect", r.Answer(0))
	}

	if err := r.Select(4); err == nil {
		t.Error("expected error for out-of-range option")
	}
	if err := r.Select(-1); err == nil {
		t.Error("expected error for negative option")
	}
}

func TestFinish_ScoresUnansweredAsWrong(t *testing.T) {
	r := NewRunner(testQuiz())

	// Answer the first 5 questions correctly, leave the rest blank.
	for i := 0; i < 5; i++ {
		r.Jump(i)
		if err := r.Select(r.Current().CorrectIndex); err != nil {
			t.Fatal(err)
		}
	}
	r.Finish()

	if r.Phase() != PhaseResults {
		t.Errorf("phase = %v, want PhaseResults", r.Phase())
	}
	if r.CorrectCount() != 5 {
		t.Errorf("correct = %d, want 5", r.CorrectCount())
	}
	if r.Score() != 50 {
		t.Errorf("score = %d, want 50", r.Score())
	}
}

func TestFinish_AfterResultsLocksSelection(t *testing.T) {
	r := NewRunner(testQuiz())
	r.Finish()

	if err := r.Select(0); err == nil {
		t.Error("expected error selecting after submit")
	}
}

func TestScore_AllCorrect(t *testing.T) {
	r := NewRunner(testQuiz())
	for i := range r.Quiz().Questions {
		r.Jump(i)
		if err := r.Select(r.Current().CorrectIndex); err != nil {
			t.Fatal(err)
		}
	}
	r.Finish()

	if r.Score() != 100 {
		t.Errorf("score = %d, want 100", r.Score())
	}
}

func TestRetake_ResetsEverything(t *testing.T) {
	r := NewRunner(testQuiz())
	if err := r.Select(1); err != nil {
		t.Fatal(err)
	}
	r.Next()
	r.Finish()

	r.Retake()

	if r.Phase() != PhaseQuiz {
		t.Errorf("phase = %v, want PhaseQuiz after retake", r.Phase())
	}
	if r.Index() != 0 {
		t.Errorf("index = %d, want 0 after retake", r.Index())
	}
	if r.Answered() != 0 {
		t.Errorf("answered = %d, want 0 after retake", r.Answered())
	}
}

func TestElapsed_FreezesAtSubmit(t *testing.T) {
	r := NewRunner(testQuiz())
	base := time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)
	current := base
	r.now = func() time.Time { return current }
	r.started = base

	current = base.Add(42 * time.Second)
	if r.Elapsed() != 42*time.Second {
		t.Errorf("live elapsed = %s, want 42s", r.Elapsed())
	}

	r.Finish()
	current = base.Add(5 * time.Minute)
	if r.Elapsed() != 42*time.Second {
		t.Errorf("frozen elapsed = %s, want 42s", r.Elapsed())
	}
}
