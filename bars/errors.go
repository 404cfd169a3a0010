package bars

import "errors"

var (
	ErrTooFewObservations = errors.New("need at least 2 observations")
	ErrAlphaOutOfRange    = errors.New("alpha must be in (0, 1]")
	ErrBadValue           = errors.New("field is not a finite number")
	ErrNegativeVolume     = errors.New("volume must be >= 0")
	ErrNonMonotonicTime   = errors.New("timestamps must be strictly increasing")
)
