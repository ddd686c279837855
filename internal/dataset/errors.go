package dataset

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrBadArtifact means the dataset file is malformed or has an
	// unexpected header.
	ErrBadArtifact = errors.New("malformed dataset artifact")
)
