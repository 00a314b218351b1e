package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRecords_PutGetRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.Records()

	type blob struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := repo.Put("k1", blob{Name: "a", Count: 3}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got blob
	if err := repo.Get("k1", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "a" || got.Count != 3 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestRecords_PutOverwrites(t *testing.T) {
	st := openTestStore(t)
	repo := st.Records()

	if err := repo.Put("k", map[string]int{"v": 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put("k", map[string]int{"v": 2}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	var got map[string]int
	if err := repo.Get("k", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["v"] != 2 {
		t.Fatalf("expected overwritten value 2, got %d", got["v"])
	}
}

func TestRecords_GetMissing(t *testing.T) {
	st := openTestStore(t)

	var out map[string]any
	err := st.Records().Get("nope", &out)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecords_DeleteIsIdempotent(t *testing.T) {
	st := openTestStore(t)
	repo := st.Records()

	if err := repo.Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete("k"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := repo.GetRaw("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestKeys(t *testing.T) {
	if SessionKey() != "session_pathx" {
		t.Errorf("unexpected session key: %s", SessionKey())
	}
	if PromptKey("abc") != "prompt_abc" {
		t.Errorf("unexpected prompt key: %s", PromptKey("abc"))
	}
	if ResultKey("abc") != "result_abc" {
		t.Errorf("unexpected result key: %s", ResultKey("abc"))
	}
}

func TestRequestLog_Append(t *testing.T) {
	st := openTestStore(t)
	log := st.RequestLog()
	ctx := context.Background()

	err := log.Append(ctx, LLMRequestData{
		Provider:  "gemini",
		Model:     "gemini-2.5-flash-lite",
		Purpose:   "report",
		LatencyMs: 1200,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := log.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 logged request, got %d", n)
	}
}
