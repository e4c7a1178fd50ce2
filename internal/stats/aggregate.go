package stats

import (
	"fmt"
	"sort"
	"time"

	"benkyo-engine/internal/calendar"
	"benkyo-engine/internal/models"
)

// DayTotal is one bar of the daily chart.
type DayTotal struct {
	Day     calendar.StudyDay `json:"day"`
	Minutes int               `json:"minutes"`
}

// SubjectTotal is one row of the per-subject breakdown.
type SubjectTotal struct {
	Subject string `json:"subject"`
	Minutes int    `json:"minutes"`
}

// DailyAggregate sums session minutes per study day over the trailing
// windowDays days ending at rule.DayOf(now) inclusive. The result covers
// the window exactly, oldest day first, with zero entries for days without
// sessions. Sessions outside the window are ignored.
func DailyAggregate(rule calendar.DayRule, sessions []models.StudySession, windowDays int, now time.Time) ([]DayTotal, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("stats: window of %d days: %w", windowDays, ErrInvalidWindow)
	}

	today := rule.DayOf(now)
	first := today.AddDays(-(windowDays - 1))

	totals := make(map[calendar.StudyDay]int, windowDays)
	for _, s := range sessions {
		day := rule.DayOf(s.StartedAt)
		if day.Before(first) || day.After(today) {
			continue
		}
		totals[day] += s.DurationMinutes
	}

	out := make([]DayTotal, 0, windowDays)
	for day := first; !day.After(today); day = day.Next() {
		out = append(out, DayTotal{Day: day, Minutes: totals[day]})
	}
	return out, nil
}

// SubjectAggregate sums minutes per subject, ordered by total descending.
// Subjects with equal totals keep the order in which they first appear in
// sessions.
func SubjectAggregate(sessions []models.StudySession) []SubjectTotal {
	index := make(map[string]int, len(sessions))
	out := make([]SubjectTotal, 0)
	for _, s := range sessions {
		i, ok := index[s.Subject]
		if !ok {
			i = len(out)
			index[s.Subject] = i
			out = append(out, SubjectTotal{Subject: s.Subject})
		}
		out[i].Minutes += s.DurationMinutes
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Minutes > out[j].Minutes })
	return out
}
