package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"pathx/internal/store"
)

// LoggingProvider is a decorator that records every LLM call in the
// request log.
type LoggingProvider struct {
	inner      Provider
	provider   string
	requestLog store.RequestLogRepo
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, providerName string, repo store.RequestLogRepo) Provider {
	return &LoggingProvider{inner: p, provider: providerName, requestLog: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the call but don't fail the request if logging fails.
	if logErr := l.requestLog.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
