package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP client timeout. OCR on a full-page
// notice image can take tens of seconds on CPU.
const DefaultTimeout = 60 * time.Second

// Config configures the OCR client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks required config fields and fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("ocr: base URL is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// client is the HTTP wrapper for the OCR sidecar REST API.
type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(cfg Config) *client {
	return &client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

type recognizeRequest struct {
	ImageB64 string   `json:"image_b64"`
	Langs    []string `json:"langs,omitempty"`
}

type recognizeResponse struct {
	Text string `json:"text"`
}

// RecognizeText sends the image to POST /recognize and returns the joined
// recognized text.
func (c *client) RecognizeText(ctx context.Context, image []byte) (string, error) {
	url := fmt.Sprintf("%s/recognize", c.baseURL)

	body, err := json.Marshal(recognizeRequest{
		ImageB64: base64.StdEncoding.EncodeToString(image),
		Langs:    []string{"ko", "en"},
	})
	if err != nil {
		return "", fmt.Errorf("ocr: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("ocr: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ocr: failed to call recognize API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ocr: recognize API error %d: %s", resp.StatusCode, string(raw))
	}

	var result recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("ocr: failed to decode recognize response: %w", err)
	}

	return strings.TrimSpace(result.Text), nil
}
