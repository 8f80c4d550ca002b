package quizgen

import (
	"context"
	"fmt"
	"os"
)

// Source produces quizzes from a Generator, falling back to the built-in
// bank when generation fails for any reason. Challenge never errors: the
// user always gets a playable quiz.
type Source struct {
	gen Generator
}

// NewSource creates a Source over the given generator. A nil generator
// means every challenge comes from the fallback bank.
func NewSource(gen Generator) *Source {
	return &Source{gen: gen}
}

// Challenge returns a quiz for the given input.
func (s *Source) Challenge(ctx context.Context, input GenerateInput) *Quiz {
	if s.gen == nil {
		return FallbackQuiz(input)
	}

	quiz, err := s.gen.Generate(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: quiz generation failed, using built-in questions: %v\n", err)
		return FallbackQuiz(input)
	}
	return quiz
}
