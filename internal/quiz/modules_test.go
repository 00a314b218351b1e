package quiz

import "testing"

func TestModuleSequence(t *testing.T) {
	want := []string{
		ModulePersonality, ModuleBehavior, ModuleIQ, ModuleEQ,
		ModuleIkigai, ModuleCareer, ModulePersonal,
	}

	mods := Modules()
	if len(mods) != len(want) {
		t.Fatalf("expected %d modules, got %d", len(want), len(mods))
	}
	for i, id := range want {
		if mods[i].ID != id {
			t.Errorf("module %d: expected %q, got %q", i, id, mods[i].ID)
		}
	}

	if FirstModuleID() != ModulePersonality {
		t.Errorf("expected first module %q, got %q", ModulePersonality, FirstModuleID())
	}
}

func TestModuleLookup(t *testing.T) {
	mod, ok := ModuleByID(ModuleIQ)
	if !ok {
		t.Fatal("expected to find iq module")
	}
	if mod.Name == "" || mod.Icon == "" {
		t.Error("module missing name or icon")
	}
	if idx := ModuleIndex(ModuleIQ); idx != 2 {
		t.Errorf("expected iq at index 2, got %d", idx)
	}

	if _, ok := ModuleByID("nope"); ok {
		t.Error("expected lookup miss for unknown id")
	}
	if idx := ModuleIndex("nope"); idx != -1 {
		t.Errorf("expected -1 for unknown id, got %d", idx)
	}
}

func TestTotalQuestions(t *testing.T) {
	sum := 0
	for _, m := range Modules() {
		sum += m.QuestionCount()
	}
	if TotalQuestions() != sum {
		t.Errorf("TotalQuestions %d != sum %d", TotalQuestions(), sum)
	}
	if sum == 0 {
		t.Fatal("question bank is empty")
	}
}

func TestQuestionBankIntegrity(t *testing.T) {
	seen := make(map[string]bool)

	for _, m := range Modules() {
		for _, q := range m.Questions {
			if q.ID == "" {
				t.Fatalf("module %s has a question with no id", m.ID)
			}
			if seen[q.ID] {
				t.Errorf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true

			if q.Text == "" {
				t.Errorf("question %s has no text", q.ID)
			}

			switch q.Type {
			case TypeScale:
				if len(q.Options) != 5 {
					t.Errorf("scale question %s has %d options, want 5", q.ID, len(q.Options))
				}
				if q.Trait == "" {
					t.Errorf("scale question %s has no trait", q.ID)
				}
			case TypeChoice:
				if len(q.Options) < 2 {
					t.Errorf("choice question %s has %d options", q.ID, len(q.Options))
				}
			case TypeMulti:
				if q.MaxSelect <= 0 || q.MaxSelect > len(q.Options) {
					t.Errorf("multi question %s has bad MaxSelect %d for %d options",
						q.ID, q.MaxSelect, len(q.Options))
				}
			case TypeText:
				if len(q.Options) != 0 {
					t.Errorf("text question %s should have no options", q.ID)
				}
				if q.Trait == "" {
					t.Errorf("text question %s has no trait", q.ID)
				}
			}
		}
	}
}

// Every objective question's answer key must name one of its own options.
func TestAnswerKeysResolvable(t *testing.T) {
	mod, _ := ModuleByID(ModuleIQ)
	for _, q := range mod.Questions {
		if q.Answer == "" {
			t.Errorf("iq question %s has no answer key", q.ID)
			continue
		}
		found := false
		for _, opt := range q.Options {
			if opt.Value == q.Answer {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("question %s: answer %q is not an option value", q.ID, q.Answer)
		}
	}

	// The answer key is exclusive to the IQ module.
	for _, m := range Modules() {
		if m.ID == ModuleIQ {
			continue
		}
		for _, q := range m.Questions {
			if q.Answer != "" {
				t.Errorf("question %s in module %s has an unexpected answer key", q.ID, m.ID)
			}
		}
	}
}
