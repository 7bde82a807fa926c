package llm_test

import (
	"context"
	"errors"
	"testing"

	"notice-calendar/pkg/llm"
)

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

type mockProvider struct {
	name     string
	text     string
	err      error
	failN    int // fail this many calls before succeeding
	attempts int
}

func (p *mockProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	p.attempts++
	if p.failN > 0 && p.attempts <= p.failN {
		return "", errors.New("transient failure")
	}
	if p.err != nil {
		return "", p.err
	}
	return p.text, nil
}

func (p *mockProvider) Name() string  { return p.name }
func (p *mockProvider) Model() string { return p.name + "-model" }

func TestManagerFirstProviderSucceeds(t *testing.T) {
	primary := &mockProvider{name: "gemini", text: `{"주제":"x"}`}
	secondary := &mockProvider{name: "deepseek", text: "unused"}

	m := llm.NewManager([]llm.Provider{primary, secondary}, &llm.ManagerConfig{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}, &mockLogger{})

	text, err := m.Complete(context.Background(), llm.Request{UserText: "notice"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != `{"주제":"x"}` {
		t.Errorf("text = %q", text)
	}
	if secondary.attempts != 0 {
		t.Errorf("secondary provider used when primary succeeded")
	}
}

func TestManagerFallsBackToNextProvider(t *testing.T) {
	primary := &mockProvider{name: "gemini", err: errors.New("quota exceeded")}
	secondary := &mockProvider{name: "deepseek", text: "fallback response"}

	m := llm.NewManager([]llm.Provider{primary, secondary}, &llm.ManagerConfig{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}, &mockLogger{})

	text, err := m.Complete(context.Background(), llm.Request{UserText: "notice"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "fallback response" {
		t.Errorf("text = %q, want fallback response", text)
	}
}

func TestManagerFallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "gemini", err: errors.New("down")}
	secondary := &mockProvider{name: "deepseek", text: "unused"}

	m := llm.NewManager([]llm.Provider{primary, secondary}, &llm.ManagerConfig{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})

	_, err := m.Complete(context.Background(), llm.Request{UserText: "notice"})
	if !errors.Is(err, llm.ErrAllProvidersFailed) {
		t.Fatalf("error = %v, want ErrAllProvidersFailed", err)
	}
	if secondary.attempts != 0 {
		t.Errorf("secondary provider used with fallback disabled")
	}
}

func TestManagerRetriesBeforeFallback(t *testing.T) {
	flaky := &mockProvider{name: "gemini", text: "ok after retry", failN: 2}

	m := llm.NewManager([]llm.Provider{flaky}, &llm.ManagerConfig{
		FallbackEnabled: true,
		RetryAttempts:   3,
	}, &mockLogger{})

	text, err := m.Complete(context.Background(), llm.Request{UserText: "notice"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "ok after retry" {
		t.Errorf("text = %q", text)
	}
	if flaky.attempts != 3 {
		t.Errorf("attempts = %d, want 3", flaky.attempts)
	}
}

func TestManagerNoProviders(t *testing.T) {
	m := llm.NewManager(nil, &llm.ManagerConfig{RetryAttempts: 1}, &mockLogger{})
	if _, err := m.Complete(context.Background(), llm.Request{}); !errors.Is(err, llm.ErrNoProvidersConfigured) {
		t.Fatalf("error = %v, want ErrNoProvidersConfigured", err)
	}
}
