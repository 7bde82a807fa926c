package notice

import "context"

// UseCase defines the business logic interface for the notice domain.
type UseCase interface {
	// Convert runs the full pipeline: OCR the image, extract event fields,
	// and create one calendar event per extracted date. When scheduling
	// fails with ErrAuthorizationRequired the extracted record is still
	// returned so the caller can retry via Schedule after re-authorizing.
	Convert(ctx context.Context, input ConvertInput) (ConvertOutput, error)

	// Analyze extracts a structured event record from already-recognized
	// text. No calendar side effects.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Schedule creates calendar events for an existing record, one per date
	// entry, in order.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
