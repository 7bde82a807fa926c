package usecase_test

import (
	"context"
	"errors"

	"notice-calendar/pkg/gcalendar"
	"notice-calendar/pkg/llm"
)

// mock logger

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mock OCR recognizer

type mockRecognizer struct {
	text string
	err  error
}

func (m *mockRecognizer) RecognizeText(ctx context.Context, image []byte) (string, error) {
	return m.text, m.err
}

// stub LLM provider wrapped in a real manager

type stubProvider struct {
	response string
	err      error
}

func (p *stubProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	return p.response, p.err
}

func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-model" }

func newStubManager(response string, err error) *llm.Manager {
	return llm.NewManager(
		[]llm.Provider{&stubProvider{response: response, err: err}},
		&llm.ManagerConfig{FallbackEnabled: false, RetryAttempts: 1},
		&mockLogger{},
	)
}

// mock calendar

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	failAt   int // 1-based index of the request to fail, 0 = never
	failErr  error
	nextID   int
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.failAt > 0 && len(m.requests) == m.failAt {
		if m.failErr != nil {
			return nil, m.failErr
		}
		return nil, errors.New("insert failed")
	}
	m.nextID++
	id := m.nextID
	return &gcalendar.Event{
		ID:        eventID(id),
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event?eid=" + eventID(id),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func eventID(n int) string {
	return string(rune('a'+n-1)) + "-evt"
}
