package calendar

import "errors"

// Sentinel errors; check with errors.Is.
var (
	ErrInvalidDayStartHour = errors.New("day start hour outside [0,23]")
	ErrInvalidOffset       = errors.New("civil offset outside (-24h, 24h)")
)
