package usecase

import (
	"notice-calendar/internal/notice"
	"notice-calendar/pkg/gcalendar"
	"notice-calendar/pkg/kdate"
	"notice-calendar/pkg/llm"
	pkgLog "notice-calendar/pkg/log"
	"notice-calendar/pkg/ocr"
)

type implUseCase struct {
	l          pkgLog.Logger
	ocr        ocr.Recognizer
	llm        *llm.Manager
	calendar   gcalendar.ICalendar
	resolver   *kdate.Resolver
	schema     notice.ExtractionSchema
	calendarID string
	timezone   string
}

// New creates a new notice UseCase instance. calendar may be nil when no
// credential is configured; Schedule then reports authorization required.
func New(
	l pkgLog.Logger,
	ocrClient ocr.Recognizer,
	llmManager *llm.Manager,
	calendar gcalendar.ICalendar,
	resolver *kdate.Resolver,
	schema notice.ExtractionSchema,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		ocr:        ocrClient,
		llm:        llmManager,
		calendar:   calendar,
		resolver:   resolver,
		schema:     schema,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
