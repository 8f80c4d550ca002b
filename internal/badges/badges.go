// Package badges derives display badges from a quiz outcome.
//
// Badges are ephemeral: they are recomputed from the latest attempt only
// and never accumulated into an inventory.
package badges

import (
	"time"

	"github.com/mkale/skillforge/internal/ledger"
)

// Badge is a display-only award for a single quiz attempt.
type Badge struct {
	ID          string
	Name        string
	Description string
}

// Outcome is the finished-quiz summary badges derive from.
type Outcome struct {
	Score      int // 0-100
	Difficulty ledger.Difficulty
	Elapsed    time.Duration
}

// speedLimit is the elapsed-time threshold for the speed badge.
const speedLimit = 2 * time.Minute

// Derive returns all badges earned by the outcome, best first.
func Derive(o Outcome) []Badge {
	var out []Badge

	if o.Score == 100 {
		out = append(out, Badge{
			ID:          "flawless",
			Name:        "Flawless",
			Description: "Answered every question correctly",
		})
	} else if o.Score >= 90 {
		out = append(out, Badge{
			ID:          "sharp",
			Name:        "Sharp",
			Description: "Scored 90% or higher",
		})
	}

	if o.Score >= 70 {
		switch o.Difficulty {
		case ledger.DifficultyExpert:
			out = append(out, Badge{
				ID:          "expert-tier",
				Name:        "Expert Tier",
				Description: "Passed an expert challenge",
			})
		case ledger.DifficultyHard:
			out = append(out, Badge{
				ID:          "heavyweight",
				Name:        "Heavyweight",
				Description: "Passed a hard challenge",
			})
		}
	}

	if o.Score >= 70 && o.Elapsed > 0 && o.Elapsed < speedLimit {
		out = append(out, Badge{
			ID:          "quick-thinker",
			Name:        "Quick Thinker",
			Description: "Passed in under two minutes",
		})
	}

	return out
}

// Primary returns the name of the best badge for the outcome, or "" when
// none was earned. Stored on the completion record for display in history.
func Primary(o Outcome) string {
	earned := Derive(o)
	if len(earned) == 0 {
		return ""
	}
	return earned[0].Name
}
