package quizgen

// Config holds quiz generation settings.
type Config struct {
	// MaxTokens is the response token budget for a full quiz.
	MaxTokens int

	// Temperature for generation. Quizzes benefit from some variety.
	Temperature float64

	// Validators run in order against every generated quiz.
	Validators []Validator
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
		Validators: []Validator{
			&StructuralValidator{},
			&MixValidator{},
		},
	}
}
