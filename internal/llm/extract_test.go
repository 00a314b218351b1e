package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestExtractJSON_DirectObject(t *testing.T) {
	raw, err := ExtractJSON(`{"userResults":{"iqScore":85}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"userResults":{"iqScore":85}}` {
		t.Fatalf("unexpected content: %s", raw)
	}
}

func TestExtractJSON_ProseWrapped(t *testing.T) {
	input := "Here is your report:\n```json\n{\"a\": {\"b\": 1}}\n```\nHope this helps!"
	raw, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("extracted span is not valid JSON: %v", err)
	}
	if _, ok := parsed["a"]; !ok {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	input := `Note: {"text": "dấu } trong chuỗi {", "n": 2} trailing prose`
	raw, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var parsed struct {
		Text string `json:"text"`
		N    int    `json:"n"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.N != 2 {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON("Sorry, I cannot help with that.")
	if err == nil {
		t.Fatal("expected error")
	}
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got: %T", err)
	}
}

func TestExtractJSON_UnbalancedBraces(t *testing.T) {
	_, err := ExtractJSON(`{"truncated": "resp`)
	if err == nil {
		t.Fatal("expected error for truncated object")
	}
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got: %T", err)
	}
}

func TestExtractJSON_TopLevelArrayRejected(t *testing.T) {
	_, err := ExtractJSON(`[1, 2, 3]`)
	if err == nil {
		t.Fatal("expected error for non-object JSON")
	}
}

func TestGenerateWithDeadline_CompletesInTime(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)

	resp, err := GenerateWithDeadline(t.Context(), mock, Request{}, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestGenerateWithDeadline_AbandonsSlowCall(t *testing.T) {
	slow := &slowProvider{delay: 200 * time.Millisecond}

	start := time.Now()
	_, err := GenerateWithDeadline(t.Context(), slow, Request{}, 10*time.Millisecond)
	elapsed := time.Since(start)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got: %v", err)
	}
	// The caller must return at the deadline, not after the slow call.
	if elapsed > 100*time.Millisecond {
		t.Fatalf("deadline did not cut the wait short: %s", elapsed)
	}
}

type slowProvider struct {
	delay time.Duration
}

func (s *slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	select {
	case <-time.After(s.delay):
		return &Response{Content: json.RawMessage(`{}`)}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *slowProvider) ModelID() string { return "slow" }
