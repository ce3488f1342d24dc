package deploy

import "errors"

// Chain traversal errors
var (
	// ErrEmptyChain is returned when advancing past the terminal marker.
	// Callers must check for Empty before requesting the next option.
	ErrEmptyChain = errors.New("end of deployment chain")
)
