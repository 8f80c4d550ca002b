package ledger

import "time"

// DayKey formats a time as its calendar-day watermark (YYYY-MM-DD, local).
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekStart returns midnight of the Sunday starting t's week. The week
// boundary uses explicit day-of-week arithmetic so it never depends on
// locale settings.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekKey formats a time as its week watermark: the day key of the week's
// Sunday.
func WeekKey(t time.Time) string {
	return DayKey(WeekStart(t))
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
