package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestData captures the data for a single LLM request.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LogEntry is one row of the LLM request log.
type LogEntry struct {
	ID        int
	Timestamp time.Time
	LLMRequestData
}

// ModelUsage aggregates logged requests per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// RequestLogRepo provides access to the LLM request log.
type RequestLogRepo interface {
	// Append records an LLM API call.
	Append(ctx context.Context, data LLMRequestData) error

	// Count returns the total number of logged requests.
	Count(ctx context.Context) (int, error)

	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]LogEntry, error)

	// UsageByModel aggregates token usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

type requestLogRepo struct {
	db *sql.DB
}

func (r *requestLogRepo) Append(ctx context.Context, data LLMRequestData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

func (r *requestLogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM llm_requests").Scan(&n); err != nil {
		return 0, fmt.Errorf("count llm requests: %w", err)
	}
	return n, nil
}

func (r *requestLogRepo) List(ctx context.Context, limit int) ([]LogEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, purpose,
		        input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm requests: %w", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *requestLogRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens),
		        CAST(AVG(latency_ms) AS INTEGER)
		 FROM llm_requests GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}
	defer rows.Close()

	var usage []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}
