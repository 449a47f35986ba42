package domain

import "errors"

// ErrInvalidDuration is returned when a session duration is out of range.
var ErrInvalidDuration = errors.New("invalid duration")
