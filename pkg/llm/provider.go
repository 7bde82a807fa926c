package llm

import "context"

// Provider is the language-model collaborator interface. The pipeline only
// needs single-turn text completion: a fixed system instruction plus the
// recognized text, answered with one string.
type Provider interface {
	// Complete sends one completion request and returns the raw response text.
	Complete(ctx context.Context, req Request) (string, error)

	// Name returns the provider name (e.g. "gemini", "deepseek").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request is a normalized completion request.
type Request struct {
	SystemInstruction string
	UserText          string
	Temperature       float64
	MaxTokens         int
}
