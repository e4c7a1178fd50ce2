package stats

import "errors"

var ErrInvalidWindow = errors.New("aggregate window must be positive")
