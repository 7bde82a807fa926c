package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultDeepSeekModel is the default DeepSeek model.
	DefaultDeepSeekModel = "deepseek-chat"

	// DefaultDeepSeekBaseURL is the default DeepSeek API endpoint.
	DefaultDeepSeekBaseURL = "https://api.deepseek.com"
)

// DeepSeekConfig configures the DeepSeek provider.
type DeepSeekConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type deepseekProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewDeepSeek creates a DeepSeek-backed Provider.
func NewDeepSeek(cfg DeepSeekConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("deepseek: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultDeepSeekModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultDeepSeekBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &deepseekProvider{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

// DeepSeek API wire types (OpenAI chat completions shape).
type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepseekMessage `json:"messages"`
	Temperature float64           `json:"temperature,omitempty"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
}

type deepseekResponse struct {
	Choices []struct {
		Message deepseekMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a chat completion request to the DeepSeek API.
func (d *deepseekProvider) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]deepseekMessage, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, deepseekMessage{Role: "system", Content: req.SystemInstruction})
	}
	messages = append(messages, deepseekMessage{Role: "user", Content: req.UserText})

	body, err := json.Marshal(deepseekRequest{
		Model:       d.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("deepseek: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("deepseek: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("deepseek: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("deepseek: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result deepseekResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("deepseek: failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("deepseek: %w", ErrEmptyResponse)
	}

	return result.Choices[0].Message.Content, nil
}

func (d *deepseekProvider) Name() string {
	return "deepseek"
}

func (d *deepseekProvider) Model() string {
	return d.model
}
