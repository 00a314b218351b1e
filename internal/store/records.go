package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Record keys. The session record is a singleton; prompt and result records
// are keyed by session id so old reports stay retrievable after a reset.
const sessionKey = "session_pathx"

// SessionKey returns the storage key for the active session blob.
func SessionKey() string { return sessionKey }

// PromptKey returns the storage key for a session's stored prompt record.
func PromptKey(sessionID string) string { return "prompt_" + sessionID }

// ResultKey returns the storage key for a session's final report.
func ResultKey(sessionID string) string { return "result_" + sessionID }

// ErrNotFound is returned when no record exists under the requested key.
var ErrNotFound = errors.New("record not found")

// RecordRepo is scoped key/value access to opaque JSON blobs. Each write is a
// single-row upsert, so a record is always either its old or new value.
type RecordRepo interface {
	// Get unmarshals the record stored under key into out.
	// Returns ErrNotFound if the key is absent.
	Get(key string, out any) error

	// GetRaw returns the raw JSON stored under key.
	GetRaw(key string) (json.RawMessage, error)

	// Put marshals value and stores it under key, replacing any previous value.
	Put(key string, value any) error

	// Delete removes the record under key. Deleting a missing key is a no-op.
	Delete(key string) error
}

type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) Get(key string, out any) error {
	raw, err := r.GetRaw(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) GetRaw(key string) (json.RawMessage, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query record %q: %w", key, err)
	}
	return json.RawMessage(value), nil
}

func (r *recordRepo) Put(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}
	_, err = r.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(b), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
