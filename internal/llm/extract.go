package llm

import (
	"encoding/json"
	"fmt"
)

// ExtractJSON recovers a JSON object from model output. Direct parsing is
// tried first; if the text is prose-wrapped (markdown fences, commentary),
// the first balanced top-level {...} span is extracted and parsed instead.
// Returns *ErrMalformedResponse when no object can be recovered.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := []byte(raw)
	if json.Valid(trimmed) && looksLikeObject(trimmed) {
		return json.RawMessage(trimmed), nil
	}

	span, ok := firstObjectSpan(raw)
	if !ok {
		return nil, &ErrMalformedResponse{
			Raw: raw,
			Err: fmt.Errorf("no JSON object found in response"),
		}
	}
	if !json.Valid([]byte(span)) {
		return nil, &ErrMalformedResponse{
			Raw: raw,
			Err: fmt.Errorf("extracted span is not valid JSON"),
		}
	}
	return json.RawMessage(span), nil
}

func looksLikeObject(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// firstObjectSpan scans for the first balanced top-level object, tracking
// string literals and escapes so braces inside values don't miscount.
func firstObjectSpan(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
