package review

import "errors"

// Sentinel errors; check with errors.Is.
var (
	ErrInvalidIntervals = errors.New("interval ladder must be positive and strictly increasing")
	ErrNegativeDuration = errors.New("session duration is negative")
)
