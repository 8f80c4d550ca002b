package ledger

import "time"

// StreakFromDays counts consecutive calendar days with at least one
// completion, walking backward from now and breaking at the first gap.
// days holds DayKey strings for every day that has a completion.
func StreakFromDays(days map[string]bool, now time.Time) int {
	streak := 0
	d := now
	for days[DayKey(d)] {
		streak++
		d = d.AddDate(0, 0, -1)
	}
	return streak
}

// completionDays builds the day-key set for a completion list.
func completionDays(times []time.Time) map[string]bool {
	days := make(map[string]bool, len(times))
	for _, t := range times {
		days[DayKey(t)] = true
	}
	return days
}
