package usecase

import (
	"context"
	"fmt"
	"strings"

	"notice-calendar/internal/notice"
)

// Convert runs the full pipeline: recognize text, extract the event record,
// then materialize one calendar event per date. Each stage short-circuits
// the run when it produces nothing usable.
func (uc *implUseCase) Convert(ctx context.Context, input notice.ConvertInput) (notice.ConvertOutput, error) {
	if len(input.Image) == 0 {
		return notice.ConvertOutput{}, notice.ErrEmptyImage
	}

	uc.l.Infof(ctx, "convert: image_bytes=%d", len(input.Image))

	text, err := uc.ocr.RecognizeText(ctx, input.Image)
	if err != nil {
		return notice.ConvertOutput{}, fmt.Errorf("%w: %v", notice.ErrNoTextRecognized, err)
	}
	if strings.TrimSpace(text) == "" {
		return notice.ConvertOutput{}, notice.ErrNoTextRecognized
	}

	out := notice.ConvertOutput{RecognizedText: text}

	analyzed, err := uc.Analyze(ctx, notice.AnalyzeInput{Text: text})
	if err != nil {
		return out, err
	}
	out.Record = analyzed.Record

	scheduled, err := uc.Schedule(ctx, notice.ScheduleInput{Record: analyzed.Record})
	out.Events = scheduled.Events
	if err != nil {
		// The record stays in the output: on an authorization failure the
		// caller can re-auth and retry Schedule without re-running OCR.
		return out, err
	}

	uc.l.Infof(ctx, "convert: created %d event(s) for subject=%q", len(out.Events), out.Record.Subject)
	return out, nil
}
