package llm

import (
	"context"
	"fmt"

	"pathx/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, requestLog store.RequestLogRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → deadline → logging → base.
	// The deadline sits inside the retry loop so every attempt gets a
	// fresh window.
	logged := WithLogging(base, cfg.Provider, requestLog)
	deadlined := WithDeadline(logged, cfg.Timeout)
	retried := WithRetry(deadlined, cfg.Retry)

	return retried, nil
}

// unconfiguredProvider fails every call with the configuration problem that
// prevented a real provider from being built.
type unconfiguredProvider struct {
	reason string
}

// NewUnconfiguredProvider returns a Provider whose calls fail with
// ErrConfig carrying the given reason.
func NewUnconfiguredProvider(reason string) Provider {
	return &unconfiguredProvider{reason: reason}
}

func (u *unconfiguredProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrConfig{Reason: u.reason}
}

func (u *unconfiguredProvider) ModelID() string { return "unconfigured" }
