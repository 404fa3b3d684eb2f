package domain

import "fmt"

// QueryFailedError indicates the query service reached a terminal state other
// than SUCCEEDED. The service responded; the answer was negative.
type QueryFailedError struct {
	State QueryState
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("query failed with state: %s", e.State)
}

// PollTimeoutError indicates the polling attempt budget was exhausted without
// the query reaching any terminal state. Distinct from QueryFailedError: the
// service did not respond in time rather than responding negatively.
type PollTimeoutError struct {
	Attempts int
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("query still not terminal after %d polling attempts", e.Attempts)
}

// ValidationError indicates invalid input or configuration.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrQueryFailed creates a QueryFailedError for the given terminal state.
func ErrQueryFailed(state QueryState) *QueryFailedError {
	return &QueryFailedError{State: state}
}

// ErrPollTimeout creates a PollTimeoutError after the given attempt count.
func ErrPollTimeout(attempts int) *PollTimeoutError {
	return &PollTimeoutError{Attempts: attempts}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
