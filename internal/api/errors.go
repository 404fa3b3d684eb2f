package api

import (
	"errors"
	"net/http"

	"facility-pipeline/internal/domain"
)

// httpStatusFromError maps domain errors to HTTP status codes.
func httpStatusFromError(err error) int {
	var queryFailed *domain.QueryFailedError
	var pollTimeout *domain.PollTimeoutError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &queryFailed):
		return http.StatusBadGateway
	case errors.As(err, &pollTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
