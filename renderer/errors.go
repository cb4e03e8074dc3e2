package renderer

import (
	"errors"
	"strings"
)

// ErrNoRenderer is matched by every exhaustion error returned by Detect.
var ErrNoRenderer = errors.New("renderer: no usable renderer")

// FailureSeparator joins entries of a failure chain.
const FailureSeparator = " -> "

// ExhaustedError is returned when every attempt from the start index failed.
type ExhaustedError struct {
	// Failures holds one "{label}: {error}" entry per failed attempt, in
	// the order they were tried.
	Failures []string
}

func (e *ExhaustedError) Error() string {
	if len(e.Failures) == 0 {
		return "no renderer attempts were made"
	}
	return strings.Join(e.Failures, FailureSeparator)
}

// Unwrap returns ErrNoRenderer.
func (e *ExhaustedError) Unwrap() error {
	return ErrNoRenderer
}

// ChainFailure appends next to an existing failure chain.
func ChainFailure(existing, next string) string {
	switch {
	case existing == "":
		return next
	case next == "":
		return existing
	default:
		return existing + FailureSeparator + next
	}
}
