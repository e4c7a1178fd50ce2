// Package stats turns study-day-keyed session data into the numbers the
// dashboard shows: streaks, daily totals for the heatmap, per-subject
// totals. Everything here is pure; "today" always arrives as a parameter.
package stats

import (
	"sort"

	"benkyo-engine/internal/calendar"
)

// Streaks is the pair the dashboard renders.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreaks counts consecutive study days. Current is the run ending
// at asOf, with a one-day grace: a run ending at asOf-1 still counts as
// active, so logging nothing yet "today" does not zero the streak. Longest
// is the longest consecutive run anywhere in days. Duplicates in days are
// collapsed.
func ComputeStreaks(days []calendar.StudyDay, asOf calendar.StudyDay) Streaks {
	present := make(map[calendar.StudyDay]struct{}, len(days))
	for _, d := range days {
		present[d] = struct{}{}
	}

	var s Streaks

	// Current: anchor on asOf, or asOf-1 under grace.
	anchor := asOf
	if _, ok := present[anchor]; !ok {
		anchor = asOf.Prev()
	}
	for {
		if _, ok := present[anchor]; !ok {
			break
		}
		s.Current++
		anchor = anchor.Prev()
	}

	// Longest: sort the distinct days and scan for gaps.
	distinct := make([]calendar.StudyDay, 0, len(present))
	for d := range present {
		distinct = append(distinct, d)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].Before(distinct[j]) })

	run := 0
	for i, d := range distinct {
		if i == 0 || distinct[i-1].DaysUntil(d) > 1 {
			run = 1
		} else {
			run++
		}
		if run > s.Longest {
			s.Longest = run
		}
	}

	return s
}
