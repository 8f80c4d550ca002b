package quizgen

import "github.com/mkale/skillforge/internal/ledger"

// QuizSize is the number of questions in every challenge quiz.
const QuizSize = 10

// OptionCount is the number of answer options per question.
const OptionCount = 4

// DifficultyMix is the required per-question difficulty distribution
// within a quiz.
var DifficultyMix = map[ledger.Difficulty]int{
	ledger.DifficultyEasy:   3,
	ledger.DifficultyMedium: 4,
	ledger.DifficultyHard:   3,
}

// Question is one multiple-choice question ready for display.
type Question struct {
	// Text is the question prompt shown to the user. Plain text.
	Text string

	// Options holds exactly 4 answer options.
	Options []string

	// CorrectIndex is the index into Options of the correct answer (0-3).
	CorrectIndex int

	// Difficulty is this question's difficulty within the quiz mix.
	// One of easy, medium, hard.
	Difficulty ledger.Difficulty

	// Skill is the skill this question exercises.
	Skill string

	// Explanation is a brief note shown after the quiz. May be empty.
	Explanation string
}

// Quiz is a complete generated challenge.
type Quiz struct {
	ChallengeName string
	Difficulty    ledger.Difficulty
	Skills        []string
	Questions     []Question

	// Fallback reports whether this quiz came from the built-in bank
	// rather than the LLM.
	Fallback bool
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Skills are the skills the quiz should cover. At least one.
	Skills []string

	// Difficulty is the user-selected overall challenge difficulty.
	// Calibrates question depth; the per-question mix stays fixed.
	Difficulty ledger.Difficulty

	// ChallengeName is an optional user-supplied title. When empty a
	// name is derived from the skills.
	ChallengeName string
}
