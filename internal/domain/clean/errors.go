package clean

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrMissingColumn means a table lacks a required heading.
	ErrMissingColumn = errors.New("required column missing")

	// ErrUnknownStanding means a standing value is non-numeric but not in
	// the known drop list. It signals an unmodeled source format and must
	// be surfaced, not silently dropped.
	ErrUnknownStanding = errors.New("unrecognized standing value")
)
