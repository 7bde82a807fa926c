package ocr

import "context"

// Recognizer is the OCR collaborator interface: image bytes in, recognized
// text out. An empty string means the engine found no text.
type Recognizer interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}

// New creates a new OCR client with the given configuration.
func New(cfg Config) (Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
