package quizgen

import "context"

// Generator produces challenge quizzes.
type Generator interface {
	// Generate produces a full quiz for the given input.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Quiz, error)
}
