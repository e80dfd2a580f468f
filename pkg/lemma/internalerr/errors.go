package internalerr

import "errors"

// Sentinel errors for boundary classification
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEngineUnavailable = errors.New("morphological engine unavailable")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
