package quiz

import (
	"fmt"
	"time"

	"github.com/mkale/skillforge/internal/quizgen"
)

// Unanswered is the sentinel answer value for questions not yet answered.
const Unanswered = -1

// Phase is the runner's position in the challenge flow.
type Phase int

const (
	// PhaseQuiz is active question answering.
	PhaseQuiz Phase = iota

	// PhaseResults is the post-submit review.
	PhaseResults
)

// Runner drives one quiz attempt: answer selection, navigation, and
// scoring. It is a plain state machine; the UI layer renders it.
type Runner struct {
	quiz    *quizgen.Quiz
	answers []int
	index   int
	phase   Phase
	started time.Time
	elapsed time.Duration

	now func() time.Time
}

// NewRunner starts a fresh attempt at the given quiz.
func NewRunner(q *quizgen.Quiz) *Runner {
	r := &Runner{quiz: q, now: time.Now}
	r.reset()
	return r
}

func (r *Runner) reset() {
	r.answers = make([]int, len(r.quiz.Questions))
	for i := range r.answers {
		r.answers[i] = Unanswered
	}
	r.index = 0
	r.phase = PhaseQuiz
	r.started = r.now()
	r.elapsed = 0
}

// Quiz returns the quiz being run.
func (r *Runner) Quiz() *quizgen.Quiz { return r.quiz }

// Phase returns the current phase.
func (r *Runner) Phase() Phase { return r.phase }

// Index returns the current question index.
func (r *Runner) Index() int { return r.index }

// Current returns the question at the cursor.
func (r *Runner) Current() quizgen.Question {
	return r.quiz.Questions[r.index]
}

// Answer returns the selected option for question i, or Unanswered.
func (r *Runner) Answer(i int) int {
	if i < 0 || i >= len(r.answers) {
		return Unanswered
	}
	return r.answers[i]
}

// Select records an option choice for the current question.
// Selecting again overwrites the previous choice.
func (r *Runner) Select(option int) error {
	if r.phase != PhaseQuiz {
		return fmt.Errorf("quiz already submitted")
	}
	if option < 0 || option >= len(r.Current().Options) {
		return fmt.Errorf("option %d out of range", option)
	}
	r.answers[r.index] = option
	return nil
}

// Next advances the cursor. Stops at the last question.
func (r *Runner) Next() {
	if r.index < len(r.quiz.Questions)-1 {
		r.index++
	}
}

// Prev moves the cursor back. Stops at the first question.
func (r *Runner) Prev() {
	if r.index > 0 {
		r.index--
	}
}

// Jump moves the cursor to question i. Out-of-range values are ignored.
func (r *Runner) Jump(i int) {
	if i >= 0 && i < len(r.quiz.Questions) {
		r.index = i
	}
}

// Answered returns how many questions have a recorded answer.
func (r *Runner) Answered() int {
	n := 0
	for _, a := range r.answers {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// Finish submits the attempt and moves to the results phase.
// Unanswered questions count as wrong.
func (r *Runner) Finish() {
	if r.phase == PhaseResults {
		return
	}
	r.elapsed = r.now().Sub(r.started)
	r.phase = PhaseResults
}

// CorrectCount returns the number of correctly answered questions.
func (r *Runner) CorrectCount() int {
	n := 0
	for i, q := range r.quiz.Questions {
		if r.answers[i] == q.CorrectIndex {
			n++
		}
	}
	return n
}

// Score returns the percentage score, 0-100.
func (r *Runner) Score() int {
	if len(r.quiz.Questions) == 0 {
		return 0
	}
	return r.CorrectCount() * 100 / len(r.quiz.Questions)
}

// Elapsed returns the attempt duration. Live during the quiz phase,
// frozen at submit time afterward.
func (r *Runner) Elapsed() time.Duration {
	if r.phase == PhaseQuiz {
		return r.now().Sub(r.started)
	}
	return r.elapsed
}

// Retake discards all answers and restarts the same quiz.
func (r *Runner) Retake() {
	r.reset()
}
