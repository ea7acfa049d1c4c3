package apperror

import "errors"

var (
	ErrInvalidDivisor     = errors.New("divisor must be positive")
	ErrEmptyRingRemoval   = errors.New("cannot remove the only marble in the circle")
	ErrReleasedNode       = errors.New("marble was already removed from the circle")
	ErrInvalidPlayerCount = errors.New("player count must be positive")
	ErrInvalidLastMarble  = errors.New("last marble value must not be negative")
	ErrInvalidInput       = errors.New("invalid puzzle input")
)
