package ledger

import "time"

// Difficulty is a challenge difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

// Valid reports whether d is one of the four difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyExpert:
		return "Expert"
	default:
		return string(d)
	}
}

// Completion is one finished quiz challenge. Completions are immutable
// once recorded.
type Completion struct {
	ID            string
	ChallengeName string
	Score         int
	Difficulty    Difficulty
	Skills        []string
	CompletedAt   time.Time
	XPEarned      int
	Badge         string
}

// ChallengeStats summarizes a user's completion history.
type ChallengeStats struct {
	TotalCompleted  int
	DailyCompleted  int
	WeeklyCompleted int
	AverageScore    int
	CurrentStreak   int
}

// XpStats is the derived XP/level view of a user's ledger.
type XpStats struct {
	TotalXP             int
	DailyXP             int
	WeeklyXP            int
	Level               int
	XPToNextLevel       int
	ProgressToNextLevel float64 // percent, 0-100
}
