package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the user triggered a fetch with blank input.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrInvalidInput indicates the input is neither a bare thread ID nor
	// a thread URL with a recognizable identifier segment.
	ErrInvalidInput = errors.New("input is not a thread ID or thread URL")
)

// FetchFailedError indicates the API answered the request with a
// non-success status. Transport-level failures (DNS, refused connections,
// malformed payloads) are deliberately not represented here; anything
// that is not a FetchFailedError or an input error counts as a network
// failure to the user.
type FetchFailedError struct {
	StatusCode int
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("fetch failed with HTTP %d", e.StatusCode)
}
