package loading

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pathx/internal/llm"
	"pathx/internal/report"
)

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", &llm.ErrConfig{Reason: "no API key"}, "GEMINI_API_KEY"},
		{"timeout", &llm.ErrTimeout{After: 45 * time.Second}, "thời gian"},
		{"caller deadline", context.DeadlineExceeded, "thời gian"},
		{"rate limit", &llm.ErrRateLimit{Err: errors.New("429")}, "đang bận"},
		{"malformed", &llm.ErrMalformedResponse{Raw: "no json"}, "format"},
		{"schema", &report.ErrSchema{Field: "funFacts", Reason: "is missing"}, "format"},
		{"unavailable", &llm.ErrProviderUnavailable{}, "kết nối"},
		{"no prompt", report.ErrNoPrompt, "trắc nghiệm"},
		{"unknown", errors.New("boom"), "lỗi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := friendlyError(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("friendlyError(%v) = %q, want substring %q", tt.err, got, tt.want)
			}
		})
	}
}
