package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-planner/pkg/log"
)

// Manager orchestrates provider selection and optional fallback.
// Each provider is called at most once per request; there are no retries.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	MaxTotalTimeout time.Duration // bounds the whole provider chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateText calls providers in priority order. Without fallback only the
// first provider is tried.
func (m *Manager) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: timeout exceeded after trying %d provider(s): %v",
				ErrAllProvidersFailed, tried, ctx.Err())
		default:
		}

		tried++
		resp, err := provider.GenerateText(ctx, req)
		if err == nil && strings.TrimSpace(resp.Text) == "" {
			err = ErrEmptyResponse
		}
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// Primary returns the first provider in priority order.
func (m *Manager) Primary() Provider {
	if len(m.providers) == 0 {
		return nil
	}
	return m.providers[0]
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
	if resp.Truncated {
		m.logger.Warnf(ctx, "pkg.llmprovider.Manager: %s stopped at the output cap, plan text may be cut short", provider.Name())
	}
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
