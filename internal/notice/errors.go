package notice

import "errors"

// Domain-specific errors for the notice package.
var (
	// ErrNoTextRecognized means OCR produced nothing usable. Terminal for
	// the run; there is no retry.
	ErrNoTextRecognized = errors.New("no text recognized from image")

	// ErrAnalysisFailed means the language model call failed or its response
	// could not be decoded into an event record.
	ErrAnalysisFailed = errors.New("failed to analyze recognized text")

	// ErrAuthorizationRequired means the calendar credential is missing or
	// was rejected. The extracted record stays valid for a later retry.
	ErrAuthorizationRequired = errors.New("calendar authorization required")

	// ErrEventCreateFailed means the calendar provider rejected an event
	// submission for a reason other than authorization.
	ErrEventCreateFailed = errors.New("failed to create calendar event")

	// ErrEmptyImage means the upload carried no image bytes.
	ErrEmptyImage = errors.New("image is empty")
)
