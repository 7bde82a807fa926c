package usecase_test

import (
	"context"
	"errors"
	"testing"

	"notice-calendar/internal/notice"
	"notice-calendar/internal/notice/usecase"
	"notice-calendar/pkg/gcalendar"
	"notice-calendar/pkg/kdate"
	"notice-calendar/pkg/llm"
)

const modelResponse = "```json\n" + `{
  "주제": "정기 소독 안내",
  "일시": ["2024년 03월 15일 10:00"],
  "위치": "아파트 전 세대",
  "설명": "월간 정기 소독을 실시합니다.",
  "알림_설정": "이벤트 2일 전"
}` + "\n```"

func newConvertUseCase(t *testing.T, ocrText string, ocrErr error, manager *llm.Manager, calendar gcalendar.ICalendar) notice.UseCase {
	t.Helper()

	resolver, err := kdate.NewResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return usecase.New(
		&mockLogger{},
		&mockRecognizer{text: ocrText, err: ocrErr},
		manager,
		calendar,
		resolver,
		notice.DefaultExtractionSchema(),
		"primary",
		"Asia/Seoul",
	)
}

func TestConvertFullPipeline(t *testing.T) {
	cal := &mockCalendar{}
	uc := newConvertUseCase(t, "정기 소독 안내문", nil, newStubManager(modelResponse, nil), cal)

	out, err := uc.Convert(context.Background(), notice.ConvertInput{Image: []byte("png-bytes")})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if out.RecognizedText != "정기 소독 안내문" {
		t.Errorf("recognized text = %q", out.RecognizedText)
	}
	if out.Record.Subject != "정기 소독 안내" {
		t.Errorf("subject = %q", out.Record.Subject)
	}
	if len(out.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(out.Events))
	}
	if out.Events[0].HtmlLink == "" {
		t.Error("expected event link")
	}
	if len(cal.requests) != 1 || cal.requests[0].Location != "아파트 전 세대" {
		t.Errorf("unexpected create requests: %+v", cal.requests)
	}
}

func TestConvertEmptyImage(t *testing.T) {
	uc := newConvertUseCase(t, "", nil, newStubManager(modelResponse, nil), &mockCalendar{})

	_, err := uc.Convert(context.Background(), notice.ConvertInput{})
	if !errors.Is(err, notice.ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
}

func TestConvertOCRFailure(t *testing.T) {
	uc := newConvertUseCase(t, "", errors.New("engine down"), newStubManager(modelResponse, nil), &mockCalendar{})

	_, err := uc.Convert(context.Background(), notice.ConvertInput{Image: []byte("x")})
	if !errors.Is(err, notice.ErrNoTextRecognized) {
		t.Fatalf("expected ErrNoTextRecognized, got %v", err)
	}
}

func TestConvertOCREmptyText(t *testing.T) {
	uc := newConvertUseCase(t, "   \n", nil, newStubManager(modelResponse, nil), &mockCalendar{})

	_, err := uc.Convert(context.Background(), notice.ConvertInput{Image: []byte("x")})
	if !errors.Is(err, notice.ErrNoTextRecognized) {
		t.Fatalf("expected ErrNoTextRecognized, got %v", err)
	}
}

func TestConvertAnalysisFailure(t *testing.T) {
	cal := &mockCalendar{}
	uc := newConvertUseCase(t, "안내문", nil, newStubManager("", errors.New("quota exceeded")), cal)

	out, err := uc.Convert(context.Background(), notice.ConvertInput{Image: []byte("x")})
	if !errors.Is(err, notice.ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
	if out.RecognizedText != "안내문" {
		t.Errorf("recognized text should survive analysis failure, got %q", out.RecognizedText)
	}
	if len(cal.requests) != 0 {
		t.Errorf("no events should be created, got %d calls", len(cal.requests))
	}
}

func TestConvertMalformedModelResponse(t *testing.T) {
	uc := newConvertUseCase(t, "안내문", nil, newStubManager("죄송합니다, 추출할 수 없습니다.", nil), &mockCalendar{})

	_, err := uc.Convert(context.Background(), notice.ConvertInput{Image: []byte("x")})
	if !errors.Is(err, notice.ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestConvertKeepsRecordOnAuthFailure(t *testing.T) {
	uc := newConvertUseCase(t, "안내문", nil, newStubManager(modelResponse, nil), nil)

	out, err := uc.Convert(context.Background(), notice.ConvertInput{Image: []byte("x")})
	if !errors.Is(err, notice.ErrAuthorizationRequired) {
		t.Fatalf("expected ErrAuthorizationRequired, got %v", err)
	}
	if out.Record.Subject != "정기 소독 안내" {
		t.Errorf("record should survive auth failure, got %+v", out.Record)
	}
	if len(out.Events) != 0 {
		t.Errorf("expected no events, got %d", len(out.Events))
	}
}
