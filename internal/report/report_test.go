package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"pathx/internal/llm"
	"pathx/internal/quiz"
	"pathx/internal/scoring"
	"pathx/internal/store"
)

type memRepo struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

func newMemRepo() *memRepo {
	return &memRepo{data: make(map[string]json.RawMessage)}
}

func (r *memRepo) Get(key string, out any) error {
	raw, err := r.GetRaw(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (r *memRepo) GetRaw(key string) (json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return raw, nil
}

func (r *memRepo) Put(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = b
	return nil
}

func (r *memRepo) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func sampleAnswers() scoring.Answers {
	return scoring.Answers{
		quiz.ModulePersonality: {
			"pe_001": quiz.Number(5),
			"pe_002": quiz.Number(4),
		},
		quiz.ModuleIQ: {
			"iq_001": quiz.Choice("64"),
			"iq_002": quiz.Choice("14"),
		},
		quiz.ModuleBehavior: {
			"bh_001": quiz.Choice("intuition"),
		},
		quiz.ModuleIkigai: {
			"ik_001": quiz.MultiChoice("tech", "creative"),
		},
		quiz.ModulePersonal: {
			"ps_001": quiz.Text("Minh Anh"),
			"ps_002": quiz.Text("15/03/2008"),
		},
	}
}

func sampleProfile() scoring.Profile {
	return scoring.Build(sampleAnswers())
}

func TestValidate_FallbackPasses(t *testing.T) {
	if err := Validate(FallbackJSON()); err != nil {
		t.Fatalf("fallback report must satisfy the validator: %v", err)
	}
}

func TestValidate_MissingSection(t *testing.T) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(FallbackJSON(), &doc); err != nil {
		t.Fatal(err)
	}
	delete(doc, "numerology")
	raw, _ := json.Marshal(doc)

	err := Validate(raw)
	var schemaErr *ErrSchema
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected ErrSchema, got: %v", err)
	}
	if schemaErr.Field != "numerology" {
		t.Errorf("expected field numerology, got %q", schemaErr.Field)
	}
}

func TestValidate_ReportsFirstMissingInOrder(t *testing.T) {
	// Both sections missing; the earlier one in the contract order wins.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(FallbackJSON(), &doc); err != nil {
		t.Fatal(err)
	}
	delete(doc, "personality")
	delete(doc, "funFacts")
	raw, _ := json.Marshal(doc)

	var schemaErr *ErrSchema
	if !errors.As(Validate(raw), &schemaErr) {
		t.Fatal("expected ErrSchema")
	}
	if schemaErr.Field != "personality" {
		t.Errorf("expected personality first, got %q", schemaErr.Field)
	}
}

func TestValidate_EmptyArraySection(t *testing.T) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(FallbackJSON(), &doc); err != nil {
		t.Fatal(err)
	}
	doc["careerRecommendations"] = json.RawMessage(`[]`)
	raw, _ := json.Marshal(doc)

	var schemaErr *ErrSchema
	if !errors.As(Validate(raw), &schemaErr) {
		t.Fatal("expected ErrSchema")
	}
	if schemaErr.Field != "careerRecommendations" {
		t.Errorf("got field %q", schemaErr.Field)
	}
}

func TestValidate_NullSection(t *testing.T) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(FallbackJSON(), &doc); err != nil {
		t.Fatal(err)
	}
	doc["learningRoadmap"] = json.RawMessage(`null`)
	raw, _ := json.Marshal(doc)

	if Validate(raw) == nil {
		t.Fatal("null section should fail validation")
	}
}

func TestValidate_NonObjectRoot(t *testing.T) {
	if Validate(json.RawMessage(`[1,2]`)) == nil {
		t.Fatal("array root should fail validation")
	}
}

func TestFallback_ParsesAsReport(t *testing.T) {
	rec := ResultRecord{Raw: FallbackJSON()}
	rep, err := rec.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rep.Personality.Title == "" {
		t.Error("fallback personality title missing")
	}
	if len(rep.CareerRecommendations) == 0 {
		t.Error("fallback has no careers")
	}
	if len(rep.LearningRoadmap) != len(rep.CareerRecommendations) {
		t.Errorf("roadmap entries (%d) should match careers (%d)",
			len(rep.LearningRoadmap), len(rep.CareerRecommendations))
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	p := sampleProfile()
	if BuildPrompt(p) != BuildPrompt(p) {
		t.Fatal("same profile must yield identical prompts")
	}
}

func TestBuildPrompt_Content(t *testing.T) {
	prompt := BuildPrompt(sampleProfile())

	for _, want := range []string{
		"Điểm IQ: 2/12",
		"Cởi mở với cái mới: 5.0/5",
		"Làm theo cảm giác",       // bh_001 option label, not the raw value
		"Công nghệ, Sáng tạo, thiết kế", // multi-select labels joined
		"Minh Anh",
		"15/03/2008",
		`"careerRecommendations"`,
		`"funFacts"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Unanswered modules contribute nothing.
	if strings.Contains(prompt, "Tự nhận thức") {
		t.Error("unanswered EQ trait should not appear")
	}
}

func newTestOrchestrator(repo *memRepo, responses ...llm.MockResponse) *Orchestrator {
	return NewOrchestrator(repo, llm.NewMockProvider(responses...))
}

func TestOrchestrator_SubmitPersistsPrompt(t *testing.T) {
	repo := newMemRepo()
	o := newTestOrchestrator(repo)

	rec, err := o.Submit("sess-1", sampleProfile(), sampleAnswers())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Prompt == "" {
		t.Fatal("empty prompt")
	}

	var stored PromptRecord
	if err := repo.Get(store.PromptKey("sess-1"), &stored); err != nil {
		t.Fatalf("prompt not persisted: %v", err)
	}
	if stored.Prompt != rec.Prompt {
		t.Error("stored prompt differs from returned prompt")
	}
}

func TestOrchestrator_SubmitRecordsScoresAndAnswers(t *testing.T) {
	repo := newMemRepo()
	o := newTestOrchestrator(repo)

	if _, err := o.Submit("sess-1", sampleProfile(), sampleAnswers()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	raw, err := repo.GetRaw(store.PromptKey("sess-1"))
	if err != nil {
		t.Fatalf("prompt not persisted: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"sessionId", "prompt", "scores", "answers", "timestamp"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("stored prompt record missing %q", key)
		}
	}

	var stored PromptRecord
	if err := repo.Get(store.PromptKey("sess-1"), &stored); err != nil {
		t.Fatal(err)
	}
	if stored.Scores.IQ.Correct != 2 {
		t.Errorf("stored scores lost IQ tally: %+v", stored.Scores.IQ)
	}
	if stored.Answers[quiz.ModulePersonal]["ps_001"].AsText() != "Minh Anh" {
		t.Error("stored answers lost free-text value")
	}
}

func TestOrchestrator_GenerateHappyPath(t *testing.T) {
	repo := newMemRepo()
	o := newTestOrchestrator(repo, llm.MockResponse{Content: FallbackJSON()})
	if _, err := o.Submit("sess-1", sampleProfile(), sampleAnswers()); err != nil {
		t.Fatal(err)
	}

	rec, err := o.Generate(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if rec.Source != SourceAI {
		t.Errorf("expected source %q, got %q", SourceAI, rec.Source)
	}

	got, err := o.Result("sess-1")
	if err != nil {
		t.Fatalf("result not persisted: %v", err)
	}
	if _, err := got.Parse(); err != nil {
		t.Fatalf("persisted result does not parse: %v", err)
	}
}

func TestOrchestrator_GenerateExtractsProseWrappedJSON(t *testing.T) {
	repo := newMemRepo()
	wrapped := "Đây là báo cáo của bạn:\n```json\n" + string(FallbackJSON()) + "\n```"
	o := newTestOrchestrator(repo, llm.MockResponse{Content: json.RawMessage(wrapped)})
	if _, err := o.Submit("sess-1", sampleProfile(), sampleAnswers()); err != nil {
		t.Fatal(err)
	}

	rec, err := o.Generate(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := Validate(rec.Raw); err != nil {
		t.Fatalf("extracted report invalid: %v", err)
	}
}

func TestOrchestrator_GenerateRejectsIncompleteReport(t *testing.T) {
	repo := newMemRepo()
	o := newTestOrchestrator(repo, llm.MockResponse{Content: json.RawMessage(`{"userResults":{}}`)})
	if _, err := o.Submit("sess-1", sampleProfile(), sampleAnswers()); err != nil {
		t.Fatal(err)
	}

	_, err := o.Generate(context.Background(), "sess-1")
	var schemaErr *ErrSchema
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected ErrSchema, got: %v", err)
	}
	// A rejected report must not be persisted.
	if o.HasResult("sess-1") {
		t.Error("invalid report was persisted")
	}
}

func TestOrchestrator_GenerateMalformedResponse(t *testing.T) {
	repo := newMemRepo()
	o := newTestOrchestrator(repo, llm.MockResponse{Content: json.RawMessage(`"xin lỗi, không thể giúp"`)})
	if _, err := o.Submit("sess-1", sampleProfile(), sampleAnswers()); err != nil {
		t.Fatal(err)
	}

	_, err := o.Generate(context.Background(), "sess-1")
	var malformed *llm.ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got: %v", err)
	}
}

func TestOrchestrator_GenerateWithoutPrompt(t *testing.T) {
	o := newTestOrchestrator(newMemRepo())
	_, err := o.Generate(context.Background(), "sess-1")
	if !errors.Is(err, ErrNoPrompt) {
		t.Fatalf("expected ErrNoPrompt, got: %v", err)
	}
}

func TestOrchestrator_UseFallback(t *testing.T) {
	repo := newMemRepo()
	o := newTestOrchestrator(repo)

	rec, err := o.UseFallback("sess-1")
	if err != nil {
		t.Fatalf("use fallback: %v", err)
	}
	if rec.Source != SourceFallback {
		t.Errorf("expected source %q, got %q", SourceFallback, rec.Source)
	}

	got, err := o.Result("sess-1")
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if err := Validate(got.Raw); err != nil {
		t.Fatalf("stored fallback invalid: %v", err)
	}
}

func TestOrchestrator_ResultNotFound(t *testing.T) {
	o := newTestOrchestrator(newMemRepo())
	if _, err := o.Result("nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound, got: %v", err)
	}
	if o.HasResult("nope") {
		t.Error("HasResult should be false")
	}
}
