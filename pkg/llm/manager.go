package llm

import (
	"context"
	"fmt"
	"time"

	"notice-calendar/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
// Providers are tried in order; each gets RetryAttempts tries with linear
// backoff before the next provider is consulted.
type Manager struct {
	providers []Provider
	config    *ManagerConfig
	logger    log.Logger
}

// ManagerConfig defines configuration for the provider Manager.
type ManagerConfig struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the whole fallback chain
}

// NewManager creates a new provider Manager.
func NewManager(providers []Provider, config *ManagerConfig, logger log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Complete iterates through providers in priority order with fallback logic.
func (m *Manager) Complete(ctx context.Context, req Request) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("global timeout exceeded in provider chain: %w", ctx.Err())
		default:
		}

		text, err := m.completeWithRetry(ctx, provider, req)
		if err == nil {
			m.logger.Infof(ctx, "llm: completion ok provider=%s model=%s", provider.Name(), provider.Model())
			return text, nil
		}

		m.logger.Warnf(ctx, "llm: completion failed provider=%s model=%s: %v", provider.Name(), provider.Model(), err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return "", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// completeWithRetry retries one provider with linear backoff.
func (m *Manager) completeWithRetry(ctx context.Context, provider Provider, req Request) (string, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := provider.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	return "", lastErr
}
