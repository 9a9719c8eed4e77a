package questions

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed matches any network or non-2xx failure.
	ErrFetchFailed = errors.New("fetch questions failed")
	// ErrInvalidPayload matches an undecodable or schema-invalid body.
	ErrInvalidPayload = errors.New("invalid questions payload")
)

// FetchError is returned when the request fails or the endpoint answers
// with a non-success status. StatusCode is 0 for transport errors.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// PayloadError is returned when the body cannot be decoded or fails
// validation.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid questions payload: %v", e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

func (e *PayloadError) Is(target error) bool { return target == ErrInvalidPayload }
