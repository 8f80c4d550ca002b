package ledger

import (
	"testing"
	"time"
)

func TestStreakFromDays(t *testing.T) {
	now := date(2024, time.March, 15)

	tests := []struct {
		name    string
		offsets []int // days before now with a completion
		want    int
	}{
		{"empty", nil, 0},
		{"today only", []int{0}, 1},
		{"breaks at gap", []int{0, 1, 2, 5}, 3},
		{"no completion today", []int{1, 2, 3}, 0},
		{"full week", []int{0, 1, 2, 3, 4, 5, 6}, 7},
		{"duplicates on one day count once", []int{0, 0, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := make([]time.Time, len(tt.offsets))
			for i, off := range tt.offsets {
				times[i] = now.AddDate(0, 0, -off)
			}
			got := StreakFromDays(completionDays(times), now)
			if got != tt.want {
				t.Errorf("streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakFromDays_CrossesMonthBoundary(t *testing.T) {
	now := date(2024, time.March, 1)
	times := []time.Time{
		now,
		now.AddDate(0, 0, -1), // Feb 29 (leap)
		now.AddDate(0, 0, -2), // Feb 28
	}
	if got := StreakFromDays(completionDays(times), now); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}
