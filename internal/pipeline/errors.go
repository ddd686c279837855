package pipeline

import "errors"

// Sentinel kinds for build run errors.
var (
	ErrBadConfig = errors.New("invalid build configuration")
)
