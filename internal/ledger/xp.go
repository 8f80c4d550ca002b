package ledger

import "math"

// LevelSize is the XP span of one level.
const LevelSize = 1000

// baseXP is the base XP award per difficulty.
var baseXP = map[Difficulty]int{
	DifficultyEasy:   50,
	DifficultyMedium: 100,
	DifficultyHard:   150,
	DifficultyExpert: 200,
}

// BaseXP returns the base XP award for a difficulty. Unknown difficulties
// score as easy.
func BaseXP(d Difficulty) int {
	if xp, ok := baseXP[d]; ok {
		return xp
	}
	return baseXP[DifficultyEasy]
}

// XPForScore converts a quiz score (0-100) and difficulty into earned XP:
// round(base * (0.5 + score/100)). A perfect score earns 1.5x base, a zero
// score still earns half base.
func XPForScore(score int, d Difficulty) int {
	return int(math.Round(float64(BaseXP(d)) * (0.5 + float64(score)/100)))
}

// Level returns the level for a lifetime XP total: floor(totalXP/1000) + 1.
func Level(totalXP int) int {
	return totalXP/LevelSize + 1
}

// XPToNextLevel returns the XP remaining until the next level boundary.
func XPToNextLevel(totalXP int) int {
	return LevelSize - totalXP%LevelSize
}

// ProgressToNextLevel returns the percent progress through the current level.
func ProgressToNextLevel(totalXP int) float64 {
	return float64(totalXP%LevelSize) / LevelSize * 100
}
