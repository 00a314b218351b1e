package scoring

import (
	"testing"

	"pathx/internal/quiz"
)

func TestBuild_EmptyAnswers(t *testing.T) {
	p := Build(Answers{})

	if p.IQ.Correct != 0 {
		t.Errorf("expected 0 correct, got %d", p.IQ.Correct)
	}
	if p.IQ.Total != 12 {
		t.Errorf("expected total to reflect the bank, got %d", p.IQ.Total)
	}
	if p.IQ.Percent() != 0 {
		t.Errorf("expected 0%%, got %d", p.IQ.Percent())
	}
	if len(p.Traits) != 0 || len(p.Selections) != 0 {
		t.Errorf("empty answers should produce empty aggregates: %+v", p)
	}
}

func TestBuild_IQKeyMatch(t *testing.T) {
	answers := Answers{
		quiz.ModuleIQ: {
			"iq_001": quiz.Choice("64"),  // right
			"iq_002": quiz.Choice("3"),   // wrong
			"iq_010": quiz.Choice("13"),  // right
			"iq_012": quiz.Choice("180"), // wrong
		},
	}

	p := Build(answers)
	if p.IQ.Correct != 2 {
		t.Errorf("expected 2 correct, got %d", p.IQ.Correct)
	}
	if p.IQ.Total != 12 {
		t.Errorf("expected 12 total, got %d", p.IQ.Total)
	}
	if p.IQ.Percent() != 17 {
		t.Errorf("expected 17%%, got %d", p.IQ.Percent())
	}
}

func TestBuild_TraitMeans(t *testing.T) {
	answers := Answers{
		quiz.ModulePersonality: {
			"pe_001": quiz.Number(5), // openness
			"pe_005": quiz.Number(2), // openness
			"pe_002": quiz.Number(4), // creativity
		},
		quiz.ModuleEQ: {
			"eq_001": quiz.Number(3), // selfAwareness
			"eq_002": quiz.Number(4), // selfAwareness
		},
	}

	p := Build(answers)
	if got := p.Trait(quiz.ModulePersonality, "openness"); got != 3.5 {
		t.Errorf("openness mean: got %v, want 3.5", got)
	}
	if got := p.Trait(quiz.ModulePersonality, "creativity"); got != 4 {
		t.Errorf("creativity mean: got %v, want 4", got)
	}
	if got := p.Trait(quiz.ModuleEQ, "selfAwareness"); got != 3.5 {
		t.Errorf("selfAwareness mean: got %v, want 3.5", got)
	}
	if got := p.Trait(quiz.ModuleEQ, "empathy"); got != 0 {
		t.Errorf("unanswered trait should score 0, got %v", got)
	}
}

func TestBuild_TraitMeanRounding(t *testing.T) {
	// 3 + 4 + 5 over three openness-style answers is not representable
	// exactly; the mean must come back rounded to one decimal.
	answers := Answers{
		quiz.ModuleEQ: {
			"eq_001": quiz.Number(3), // selfAwareness
			"eq_002": quiz.Number(4), // selfAwareness
		},
		quiz.ModulePersonality: {
			"pe_001": quiz.Number(3),
			"pe_005": quiz.Number(4),
		},
	}
	answers[quiz.ModulePersonality]["pe_001"] = quiz.Number(2)
	answers[quiz.ModulePersonality]["pe_005"] = quiz.Number(5)

	p := Build(answers)
	if got := p.Trait(quiz.ModulePersonality, "openness"); got != 3.5 {
		t.Errorf("got %v, want 3.5", got)
	}
}

func TestBuild_SelectionsPassThrough(t *testing.T) {
	answers := Answers{
		quiz.ModuleBehavior: {
			"bh_001": quiz.Choice("intuition"),
		},
		quiz.ModuleIkigai: {
			"ik_001": quiz.MultiChoice("tech", "creative"),
		},
		quiz.ModulePersonal: {
			"ps_001": quiz.Text("Minh Anh"),
		},
	}

	p := Build(answers)
	if v, ok := p.Selection(quiz.ModuleBehavior, "decisionStyle"); !ok || v.AsText() != "intuition" {
		t.Errorf("decisionStyle: got %+v (ok=%v)", v, ok)
	}
	if v, ok := p.Selection(quiz.ModuleIkigai, "careerInterests"); !ok || len(v.AsChoices()) != 2 {
		t.Errorf("careerInterests: got %+v (ok=%v)", v, ok)
	}
	if v, ok := p.Selection(quiz.ModulePersonal, "name"); !ok || v.AsText() != "Minh Anh" {
		t.Errorf("name: got %+v (ok=%v)", v, ok)
	}
	if _, ok := p.Selection(quiz.ModuleBehavior, "teamRole"); ok {
		t.Error("unanswered selection should be absent")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	answers := Answers{
		quiz.ModuleIQ:          {"iq_001": quiz.Choice("64")},
		quiz.ModulePersonality: {"pe_001": quiz.Number(4)},
		quiz.ModuleBehavior:    {"bh_002": quiz.Choice("visual")},
	}

	a, b := Build(answers), Build(answers)
	if a.IQ != b.IQ {
		t.Errorf("iq differs across runs: %+v vs %+v", a.IQ, b.IQ)
	}
	if a.Trait(quiz.ModulePersonality, "openness") != b.Trait(quiz.ModulePersonality, "openness") {
		t.Error("trait mean differs across runs")
	}
}
