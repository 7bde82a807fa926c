package http

import (
	"errors"
	"net/http"

	"notice-calendar/internal/notice"
)

// mapErrorStatus translates domain errors into HTTP status codes. Partial
// results (events created before an abort) still travel in the error payload.
func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, notice.ErrEmptyImage),
		errors.Is(err, notice.ErrNoTextRecognized):
		return http.StatusBadRequest
	case errors.Is(err, notice.ErrAuthorizationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, notice.ErrAnalysisFailed),
		errors.Is(err, notice.ErrEventCreateFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
