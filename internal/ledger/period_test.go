package ledger

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestWeekStart_StartsSunday(t *testing.T) {
	tests := []struct {
		day  time.Time
		want string
	}{
		{date(2024, time.March, 10), "2024-03-10"}, // a Sunday maps to itself
		{date(2024, time.March, 11), "2024-03-10"}, // Monday
		{date(2024, time.March, 16), "2024-03-10"}, // Saturday
		{date(2024, time.March, 17), "2024-03-17"}, // next Sunday
		{date(2024, time.January, 1), "2023-12-31"}, // year boundary
	}

	for _, tt := range tests {
		got := WeekStart(tt.day)
		if DayKey(got) != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", DayKey(tt.day), DayKey(got), tt.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("WeekStart(%s) not at midnight: %s", DayKey(tt.day), got)
		}
	}
}

func TestWeekKey_StableAcrossWeek(t *testing.T) {
	sunday := date(2024, time.March, 10)
	for i := 0; i < 7; i++ {
		d := sunday.AddDate(0, 0, i)
		if WeekKey(d) != "2024-03-10" {
			t.Errorf("WeekKey(%s) = %s, want 2024-03-10", DayKey(d), WeekKey(d))
		}
	}
	if WeekKey(sunday.AddDate(0, 0, 7)) == "2024-03-10" {
		t.Error("WeekKey did not advance at the next Sunday")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.March, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day for times within one calendar day")
	}
	if SameDay(b, c) {
		t.Error("expected different days across midnight")
	}
}
