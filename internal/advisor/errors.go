package advisor

import "errors"

var (
	// ErrUnavailable indicates the recommendation service is unreachable.
	ErrUnavailable = errors.New("recommendation service unavailable")

	// ErrTimeout indicates the submission exceeded the configured timeout.
	ErrTimeout = errors.New("recommendation request timed out")

	// ErrBadResponse indicates the service answered with a non-success
	// status or a body that could not be parsed into a result set.
	ErrBadResponse = errors.New("invalid recommendation response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("recommendation retry attempts exhausted")
)
