package badges

import (
	"testing"
	"time"

	"github.com/mkale/skillforge/internal/ledger"
)

func hasBadge(earned []Badge, id string) bool {
	for _, b := range earned {
		if b.ID == id {
			return true
		}
	}
	return false
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    []string
		exclude []string
	}{
		{
			name:    "perfect expert run",
			outcome: Outcome{Score: 100, Difficulty: ledger.DifficultyExpert, Elapsed: 90 * time.Second},
			want:    []string{"flawless", "expert-tier", "quick-thinker"},
			exclude: []string{"sharp"},
		},
		{
			name:    "high accuracy hard",
			outcome: Outcome{Score: 90, Difficulty: ledger.DifficultyHard, Elapsed: 5 * time.Minute},
			want:    []string{"sharp", "heavyweight"},
			exclude: []string{"flawless", "quick-thinker"},
		},
		{
			name:    "passing easy is unremarkable",
			outcome: Outcome{Score: 80, Difficulty: ledger.DifficultyEasy, Elapsed: 5 * time.Minute},
			exclude: []string{"flawless", "sharp", "expert-tier", "heavyweight"},
		},
		{
			name:    "fast but failing earns nothing",
			outcome: Outcome{Score: 40, Difficulty: ledger.DifficultyExpert, Elapsed: 30 * time.Second},
			exclude: []string{"quick-thinker", "expert-tier"},
		},
		{
			name:    "zero elapsed never counts as fast",
			outcome: Outcome{Score: 100, Difficulty: ledger.DifficultyEasy, Elapsed: 0},
			want:    []string{"flawless"},
			exclude: []string{"quick-thinker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earned := Derive(tt.outcome)
			for _, id := range tt.want {
				if !hasBadge(earned, id) {
					t.Errorf("missing badge %q in %+v", id, earned)
				}
			}
			for _, id := range tt.exclude {
				if hasBadge(earned, id) {
					t.Errorf("unexpected badge %q in %+v", id, earned)
				}
			}
		})
	}
}

func TestDerive_IsPureRederivation(t *testing.T) {
	o := Outcome{Score: 100, Difficulty: ledger.DifficultyHard, Elapsed: time.Minute}
	a := Derive(o)
	b := Derive(o)
	if len(a) != len(b) {
		t.Fatalf("repeated derivation differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("badge %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPrimary(t *testing.T) {
	got := Primary(Outcome{Score: 100, Difficulty: ledger.DifficultyExpert, Elapsed: time.Minute})
	if got != "Flawless" {
		t.Errorf("Primary = %q, want Flawless", got)
	}
	if got := Primary(Outcome{Score: 10, Difficulty: ledger.DifficultyEasy}); got != "" {
		t.Errorf("Primary for weak outcome = %q, want empty", got)
	}
}
