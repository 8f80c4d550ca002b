package ledger

import "testing"

func TestXPForScore(t *testing.T) {
	tests := []struct {
		score      int
		difficulty Difficulty
		want       int
	}{
		{0, DifficultyEasy, 25},
		{100, DifficultyEasy, 75},
		{80, DifficultyMedium, 130},
		{50, DifficultyMedium, 100},
		{90, DifficultyHard, 210},
		{0, DifficultyHard, 75},
		{100, DifficultyExpert, 300},
		{73, DifficultyExpert, 246},
		{33, DifficultyEasy, 42}, // round(50 * 0.83) = 41.5 -> 42
	}

	for _, tt := range tests {
		got := XPForScore(tt.score, tt.difficulty)
		if got != tt.want {
			t.Errorf("XPForScore(%d, %s) = %d, want %d", tt.score, tt.difficulty, got, tt.want)
		}
	}
}

func TestXPForScore_UnknownDifficultyScoresAsEasy(t *testing.T) {
	if got := XPForScore(100, Difficulty("nightmare")); got != 75 {
		t.Errorf("XPForScore(100, nightmare) = %d, want 75", got)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		level   int
		toNext  int
	}{
		{0, 1, 1000},
		{999, 1, 1},
		{1000, 2, 1000},
		{2350, 3, 650},
		{10000, 11, 1000},
	}

	for _, tt := range tests {
		if got := Level(tt.totalXP); got != tt.level {
			t.Errorf("Level(%d) = %d, want %d", tt.totalXP, got, tt.level)
		}
		if got := XPToNextLevel(tt.totalXP); got != tt.toNext {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tt.totalXP, got, tt.toNext)
		}
	}
}

func TestProgressToNextLevel(t *testing.T) {
	if got := ProgressToNextLevel(2350); got != 35.0 {
		t.Errorf("ProgressToNextLevel(2350) = %f, want 35.0", got)
	}
	if got := ProgressToNextLevel(0); got != 0.0 {
		t.Errorf("ProgressToNextLevel(0) = %f, want 0.0", got)
	}
}
