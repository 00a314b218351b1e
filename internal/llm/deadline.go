package llm

import (
	"context"
	"errors"
	"time"
)

// DeadlineProvider bounds each Generate call with a fixed wall-clock
// deadline. Its own expiry surfaces as ErrTimeout so the retry layer can
// tell a slow attempt from a cancelled caller.
type DeadlineProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithDeadline wraps a Provider with a per-call deadline.
func WithDeadline(p Provider, timeout time.Duration) Provider {
	return &DeadlineProvider{inner: p, timeout: timeout}
}

func (d *DeadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := GenerateWithDeadline(ctx, d.inner, req, d.timeout)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, &ErrTimeout{After: d.timeout}
	}
	return resp, err
}

func (d *DeadlineProvider) ModelID() string {
	return d.inner.ModelID()
}

// GenerateWithDeadline runs Generate against a wall-clock deadline. When the
// deadline passes, the call returns context.DeadlineExceeded immediately and
// the in-flight request is abandoned: it keeps running on its own goroutine
// until the provider notices the cancelled context, and its eventual result
// is discarded. The caller never blocks on provider teardown.
func GenerateWithDeadline(ctx context.Context, p Provider, req Request, timeout time.Duration) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)

	type result struct {
		resp *Response
		err  error
	}
	done := make(chan result, 1)

	go func() {
		defer cancel()
		resp, err := p.Generate(ctx, req)
		done <- result{resp, err}
	}()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
