// Package calendar maps absolute instants onto the product's study-day
// calendar.
//
// The product counts a "day" from a fixed civil hour rather than midnight:
// a session logged at 01:30 belongs to the previous study day. The mapping
// lives in exactly one place, DayRule.DayOf, and is implemented as offset
// arithmetic on absolute time. Building a local calendar date first and then
// attaching an hour to it reintroduces the host timezone and is the defect
// this package exists to prevent.
package calendar

import (
	"fmt"
	"time"
)

const (
	// DefaultDayStartHour is the civil hour at which a study day begins.
	DefaultDayStartHour = 3
	// DefaultOffsetMinutes is the reporting timezone, JST, as minutes from UTC.
	DefaultOffsetMinutes = 9 * 60
)

// DayRule cuts absolute time into study days: everything from dayStartHour
// (in the civil timezone given by offsetMinutes) up to, but excluding, the
// next dayStartHour belongs to one StudyDay.
type DayRule struct {
	dayStartHour  int
	offsetMinutes int
}

// NewDayRule validates and builds a rule. dayStartHour must be in [0,23]
// and offsetMinutes within a day of UTC in either direction. Out-of-range
// values are rejected, never clamped.
func NewDayRule(dayStartHour, offsetMinutes int) (DayRule, error) {
	if dayStartHour < 0 || dayStartHour > 23 {
		return DayRule{}, fmt.Errorf("calendar: day start hour %d: %w", dayStartHour, ErrInvalidDayStartHour)
	}
	if offsetMinutes <= -24*60 || offsetMinutes >= 24*60 {
		return DayRule{}, fmt.Errorf("calendar: civil offset %d minutes: %w", offsetMinutes, ErrInvalidOffset)
	}
	return DayRule{dayStartHour: dayStartHour, offsetMinutes: offsetMinutes}, nil
}

// DefaultRule is the product configuration: days start at 03:00 JST.
func DefaultRule() DayRule {
	return DayRule{dayStartHour: DefaultDayStartHour, offsetMinutes: DefaultOffsetMinutes}
}

func (r DayRule) DayStartHour() int { return r.dayStartHour }

func (r DayRule) OffsetMinutes() int { return r.offsetMinutes }

// DayOf maps an absolute instant to its study day.
//
// The instant is shifted by the civil offset minus the day-start hour and
// the UTC calendar date of the shifted instant is the answer. The shift
// places the day-start boundary exactly on a UTC midnight, so truncation to
// a date cannot stray across it: the first instant of the day-start hour
// opens the new day, the instant before it closes the old one.
// Monotonically non-decreasing in t.
func (r DayRule) DayOf(t time.Time) StudyDay {
	shift := time.Duration(r.offsetMinutes-r.dayStartHour*60) * time.Minute
	y, m, d := t.Add(shift).UTC().Date()
	return StudyDay{Year: y, Month: m, Day: d}
}

// Range returns the half-open instant interval [start, end) that DayOf maps
// to day. end is exactly start plus 24 hours; end itself belongs to the
// following day.
func (r DayRule) Range(day StudyDay) (start, end time.Time) {
	start = time.Date(day.Year, day.Month, day.Day, r.dayStartHour, 0, 0, 0, time.UTC).
		Add(-time.Duration(r.offsetMinutes) * time.Minute)
	return start, start.Add(24 * time.Hour)
}

// Contains reports whether t falls inside day under this rule.
func (r DayRule) Contains(day StudyDay, t time.Time) bool {
	start, end := r.Range(day)
	return !t.Before(start) && t.Before(end)
}
