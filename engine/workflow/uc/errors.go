package uc

import "errors"

// Sentinel errors used to classify declined operations. Handlers translate
// them into problem responses; nothing in this layer panics.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("node not found")
	ErrConflict          = errors.New("conflicting node id")
	ErrInvalidTransition = errors.New("invalid status transition")
)
