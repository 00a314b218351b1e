package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pathx/internal/llm"
	"pathx/internal/scoring"
	"pathx/internal/store"
)

// Generation parameters. High temperature keeps the reports varied; the
// token budget covers the roadmap section, which dominates output size.
const (
	maxOutputTokens = 8192
	temperature     = 0.8
)

// ErrNoPrompt is returned by Generate when no prompt was submitted for the
// session.
var ErrNoPrompt = errors.New("no prompt submitted for session")

// Orchestrator drives the report pipeline: persist the prompt, call the
// model, validate, persist the result. Prompt and result live under
// session-scoped keys so a crash between steps resumes from storage.
type Orchestrator struct {
	records  store.RecordRepo
	provider llm.Provider
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(records store.RecordRepo, provider llm.Provider) *Orchestrator {
	return &Orchestrator{records: records, provider: provider}
}

// Submit builds the prompt from a scored profile and persists it together
// with the inputs it was built from. It runs before any network call: once
// Submit returns, the prompt survives a crash and Generate can be re-run
// against it.
func (o *Orchestrator) Submit(sessionID string, profile scoring.Profile, answers scoring.Answers) (PromptRecord, error) {
	rec := PromptRecord{
		SessionID: sessionID,
		Prompt:    BuildPrompt(profile),
		Scores:    profile,
		Answers:   answers,
		CreatedAt: time.Now().UTC(),
	}
	if err := o.records.Put(store.PromptKey(sessionID), rec); err != nil {
		return PromptRecord{}, fmt.Errorf("persist prompt: %w", err)
	}
	return rec, nil
}

// Generate runs one generation pass for the session's stored prompt. The
// response is reduced to a JSON object, validated against the report
// contract, and persisted before being returned. Transport retries and
// per-attempt deadlines happen inside the provider chain; malformed or
// invalid reports surface here without another model call.
func (o *Orchestrator) Generate(ctx context.Context, sessionID string) (ResultRecord, error) {
	var prompt PromptRecord
	if err := o.records.Get(store.PromptKey(sessionID), &prompt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ResultRecord{}, ErrNoPrompt
		}
		return ResultRecord{}, fmt.Errorf("load prompt: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "career-report")
	req := llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt.Prompt}},
		Schema:      Schema(),
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return ResultRecord{}, err
	}

	raw, err := llm.ExtractJSON(string(resp.Content))
	if err != nil {
		return ResultRecord{}, err
	}
	if err := Validate(raw); err != nil {
		return ResultRecord{}, err
	}

	return o.persist(sessionID, SourceAI, raw)
}

// UseFallback stores the demo report for the session so the result screen
// renders it like any other report.
func (o *Orchestrator) UseFallback(sessionID string) (ResultRecord, error) {
	return o.persist(sessionID, SourceFallback, FallbackJSON())
}

// Result returns the stored report for a session. store.ErrNotFound is
// passed through when none exists.
func (o *Orchestrator) Result(sessionID string) (ResultRecord, error) {
	var rec ResultRecord
	if err := o.records.Get(store.ResultKey(sessionID), &rec); err != nil {
		return ResultRecord{}, err
	}
	return rec, nil
}

// HasResult reports whether a report is stored for the session.
func (o *Orchestrator) HasResult(sessionID string) bool {
	_, err := o.Result(sessionID)
	return err == nil
}

func (o *Orchestrator) persist(sessionID, source string, raw []byte) (ResultRecord, error) {
	rec := ResultRecord{
		SessionID:   sessionID,
		Source:      source,
		Raw:         raw,
		GeneratedAt: time.Now().UTC(),
	}
	if err := o.records.Put(store.ResultKey(sessionID), rec); err != nil {
		return ResultRecord{}, fmt.Errorf("persist result: %w", err)
	}
	return rec, nil
}
