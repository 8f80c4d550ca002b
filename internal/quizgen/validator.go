package quizgen

import (
	"fmt"

	"github.com/mkale/skillforge/internal/ledger"
)

// Validator checks a generated quiz for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the quiz passes the check.
	Validate(q *Quiz, input GenerateInput) *ValidationError
}

// ValidationError describes why a quiz failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks question count, option count, and index bounds.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Quiz, _ GenerateInput) *ValidationError {
	if len(q.Questions) != QuizSize {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("quiz has %d questions, want %d", len(q.Questions), QuizSize),
		}
	}
	for i, question := range q.Questions {
		if question.Text == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d: empty text", i),
			}
		}
		if len(question.Options) != OptionCount {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d: %d options, want %d", i, len(question.Options), OptionCount),
			}
		}
		for j, opt := range question.Options {
			if opt == "" {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("question %d: option %d is empty", i, j),
				}
			}
		}
		if question.CorrectIndex < 0 || question.CorrectIndex >= OptionCount {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d: correct_index %d out of range", i, question.CorrectIndex),
			}
		}
	}
	return nil
}

// MixValidator checks the per-question difficulty distribution.
type MixValidator struct{}

func (v *MixValidator) Name() string { return "difficulty-mix" }

func (v *MixValidator) Validate(q *Quiz, _ GenerateInput) *ValidationError {
	counts := make(map[ledger.Difficulty]int)
	for i, question := range q.Questions {
		if _, ok := DifficultyMix[question.Difficulty]; !ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d: unknown difficulty %q", i, question.Difficulty),
			}
		}
		counts[question.Difficulty]++
	}
	for d, want := range DifficultyMix {
		if counts[d] != want {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%d %s questions, want %d", counts[d], d, want),
			}
		}
	}
	return nil
}
