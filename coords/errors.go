package coords

import "errors"

// ErrInvalidConfig is returned when grid parameters are rejected
var ErrInvalidConfig = errors.New("invalid grid config")
