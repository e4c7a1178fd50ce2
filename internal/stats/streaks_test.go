package stats

import (
	"testing"
	"time"

	"benkyo-engine/internal/calendar"
)

func day(y, m, d int) calendar.StudyDay {
	return calendar.NewStudyDay(y, time.Month(m), d)
}

func TestComputeStreaks(t *testing.T) {
	feb := func(d int) calendar.StudyDay { return calendar.NewStudyDay(2026, 2, d) }
	run := []calendar.StudyDay{feb(8), feb(9), feb(10)}

	tests := []struct {
		name    string
		days    []calendar.StudyDay
		asOf    calendar.StudyDay
		current int
		longest int
	}{
		{"run ending today", run, feb(10), 3, 3},
		{"grace day keeps streak", run, feb(11), 3, 3},
		{"two days idle breaks streak", run, feb(12), 0, 3},
		{"asOf before the run", run, feb(7), 0, 3},
		{"empty input", nil, feb(10), 0, 0},
		{"single day today", []calendar.StudyDay{feb(10)}, feb(10), 1, 1},
		{"single day under grace", []calendar.StudyDay{feb(9)}, feb(10), 1, 1},
		{
			"gap splits runs",
			[]calendar.StudyDay{feb(1), feb(2), feb(3), feb(4), feb(9), feb(10)},
			feb(10), 2, 4,
		},
		{
			"duplicates collapse",
			[]calendar.StudyDay{feb(9), feb(9), feb(10), feb(10)},
			feb(10), 2, 2,
		},
		{
			"run across month boundary",
			[]calendar.StudyDay{day(2026, 1, 30), day(2026, 1, 31), feb(1)},
			feb(1), 3, 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStreaks(tc.days, tc.asOf)
			if got.Current != tc.current {
				t.Errorf("current: expected %d, got %d", tc.current, got.Current)
			}
			if got.Longest != tc.longest {
				t.Errorf("longest: expected %d, got %d", tc.longest, got.Longest)
			}
		})
	}
}

func TestComputeStreaksFutureDaysDoNotExtendCurrent(t *testing.T) {
	// A day logged after asOf (clock skew in the caller) must not join the
	// current streak walking backwards from asOf.
	days := []calendar.StudyDay{day(2026, 2, 9), day(2026, 2, 10), day(2026, 2, 12)}
	got := ComputeStreaks(days, day(2026, 2, 10))
	if got.Current != 2 {
		t.Fatalf("expected current 2, got %d", got.Current)
	}
}
