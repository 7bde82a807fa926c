package usecase

import (
	"context"
	"fmt"
	"time"

	"notice-calendar/internal/notice"
	"notice-calendar/pkg/llm"
)

// Analyze sends recognized text to the language model and decodes the
// response into an event record.
func (uc *implUseCase) Analyze(ctx context.Context, input notice.AnalyzeInput) (notice.AnalyzeOutput, error) {
	year := time.Now().In(uc.resolver.Location()).Year()

	raw, err := uc.llm.Complete(ctx, llm.Request{
		SystemInstruction: uc.schema.SystemInstruction(year),
		UserText:          input.Text,
		Temperature:       0.2, // low temperature for deterministic JSON output
		MaxTokens:         2048,
	})
	if err != nil {
		return notice.AnalyzeOutput{}, fmt.Errorf("%w: %v", notice.ErrAnalysisFailed, err)
	}

	cleaned := normalizeModelResponse(raw)

	record, err := parseEventRecord(cleaned)
	if err != nil {
		uc.l.Errorf(ctx, "analyze: undecodable model response. raw=%q cleaned=%q: %v", raw, cleaned, err)
		return notice.AnalyzeOutput{}, fmt.Errorf("%w: %v", notice.ErrAnalysisFailed, err)
	}

	uc.l.Infof(ctx, "analyze: subject=%q dates=%d reminder=%q", record.Subject, len(record.Dates), record.ReminderTag)
	return notice.AnalyzeOutput{Record: record}, nil
}
