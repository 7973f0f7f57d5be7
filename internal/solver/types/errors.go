package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput — a required field (image, depth) was absent or invalid.
	ErrMissingInput = errors.New("missing required input")

	// ErrMissingCredential — no API key was supplied; raised before any
	// network call is made.
	ErrMissingCredential = errors.New("missing API key")
)

// UpstreamError — the provider call failed or returned a non-success
// response. Body is truncated to keep the user-visible message short.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s upstream: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s upstream %d: %s", e.Provider, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
