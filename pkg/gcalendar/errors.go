package gcalendar

import "errors"

var (
	// ErrAuthorizationRequired means the credential is missing, expired, or
	// rejected by Google (HTTP 401/403). The caller must re-authorize before
	// retrying.
	ErrAuthorizationRequired = errors.New("google calendar authorization required")
)
