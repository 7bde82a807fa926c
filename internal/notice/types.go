package notice

import "notice-calendar/internal/model"

// ConvertInput carries one uploaded notice image.
type ConvertInput struct {
	Image []byte
}

// ConvertOutput is the result of a full pipeline run. Events is ordered the
// same as Record.Dates. Record is populated even when scheduling aborted with
// an authorization error.
type ConvertOutput struct {
	RecognizedText string
	Record         model.EventRecord
	Events         []model.CreatedEvent
}

// AnalyzeInput carries recognized text for field extraction.
type AnalyzeInput struct {
	Text string
}

// AnalyzeOutput is the extracted event record.
type AnalyzeOutput struct {
	Record model.EventRecord
}

// ScheduleInput carries an event record to materialize.
type ScheduleInput struct {
	Record model.EventRecord
}

// ScheduleOutput is the ordered list of created calendar events.
type ScheduleOutput struct {
	Events []model.CreatedEvent
}
