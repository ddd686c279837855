package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrBadCompDivision = errors.New("unknown competitive division")
	ErrLoadDataset     = errors.New("failed to load dataset")
)
