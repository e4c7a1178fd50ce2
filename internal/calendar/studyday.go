package calendar

import (
	"fmt"
	"time"
)

// StudyDay identifies one calendar day in the product's reporting timezone,
// as cut by the non-midnight day-start rule (see DayRule). It is a plain
// value: comparable with ==, usable as a map key.
type StudyDay struct {
	Year  int
	Month time.Month
	Day   int
}

// NewStudyDay normalizes out-of-range components the way time.Date does,
// so NewStudyDay(2026, time.February, 29) is 2026-03-01.
func NewStudyDay(year int, month time.Month, day int) StudyDay {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return StudyDay{Year: y, Month: m, Day: d}
}

// ParseStudyDay parses the "2026-02-11" form produced by String.
func ParseStudyDay(s string) (StudyDay, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return StudyDay{}, fmt.Errorf("calendar: parse study day %q: %w", s, err)
	}
	y, m, d := t.Date()
	return StudyDay{Year: y, Month: m, Day: d}, nil
}

func (d StudyDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d StudyDay) IsZero() bool {
	return d == StudyDay{}
}

// midnight is the UTC midnight anchor used for day arithmetic. It is an
// internal coordinate only and carries no day-boundary meaning.
func (d StudyDay) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the study day n calendar days after d (n may be negative).
func (d StudyDay) AddDays(n int) StudyDay {
	return NewStudyDay(d.Year, d.Month, d.Day+n)
}

func (d StudyDay) Next() StudyDay { return d.AddDays(1) }

func (d StudyDay) Prev() StudyDay { return d.AddDays(-1) }

// DaysUntil returns the signed number of calendar days from d to o,
// positive when o is later.
func (d StudyDay) DaysUntil(o StudyDay) int {
	return int(o.midnight().Sub(d.midnight()) / (24 * time.Hour))
}

// Compare returns -1, 0 or 1 ordering d against o chronologically.
func (d StudyDay) Compare(o StudyDay) int {
	switch {
	case d == o:
		return 0
	case d.Before(o):
		return -1
	default:
		return 1
	}
}

func (d StudyDay) Before(o StudyDay) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d StudyDay) After(o StudyDay) bool {
	return o.Before(d)
}

// MarshalText renders the day as "2026-02-11", so StudyDay fields embed in
// JSON records as date strings rather than nested objects.
func (d StudyDay) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *StudyDay) UnmarshalText(b []byte) error {
	parsed, err := ParseStudyDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
