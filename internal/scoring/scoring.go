// Package scoring turns raw questionnaire answers into the aggregated
// profile fed to the report prompt.
package scoring

import (
	"math"

	"pathx/internal/quiz"
)

// IQScore is the objective-question tally.
type IQScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percent returns the rounded score percentage, 0 when nothing was asked.
func (s IQScore) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(float64(s.Correct)/float64(s.Total)*100 + 0.5)
}

// Profile is the scored summary of a questionnaire pass. It is derived
// purely from the answer map and the static question bank, so the same
// answers always produce the same profile.
type Profile struct {
	// Traits holds per-module Likert means keyed moduleID then trait,
	// rounded to one decimal. Only scale questions contribute.
	Traits map[string]map[string]float64 `json:"traits"`

	// IQ counts answers matching the objective answer keys.
	IQ IQScore `json:"iq"`

	// Selections holds the non-numeric answers keyed moduleID then trait:
	// single choices, multi-selects and free text, passed through verbatim.
	Selections map[string]map[string]quiz.AnswerValue `json:"selections"`
}

// Answers is the nested answer map as the session stores it:
// moduleID -> questionID -> value.
type Answers map[string]map[string]quiz.AnswerValue

// Build scores the answers against the static question bank. Unanswered
// questions are skipped; answers for unknown question ids are ignored. An
// empty map yields a zero profile with IQ total still reflecting the bank.
func Build(answers Answers) Profile {
	p := Profile{
		Traits:     make(map[string]map[string]float64),
		Selections: make(map[string]map[string]quiz.AnswerValue),
	}

	for _, mod := range quiz.Modules() {
		modAnswers := answers[mod.ID]

		sums := make(map[string]float64)
		counts := make(map[string]int)

		for _, q := range mod.Questions {
			if q.Answer != "" {
				p.IQ.Total++
			}

			val, ok := modAnswers[q.ID]
			if !ok {
				continue
			}

			switch {
			case q.Answer != "":
				if val.AsText() == q.Answer {
					p.IQ.Correct++
				}
			case q.Type == quiz.TypeScale:
				sums[q.Trait] += val.AsNumber()
				counts[q.Trait]++
			default:
				if p.Selections[mod.ID] == nil {
					p.Selections[mod.ID] = make(map[string]quiz.AnswerValue)
				}
				p.Selections[mod.ID][q.Trait] = val
			}
		}

		if len(counts) > 0 {
			means := make(map[string]float64, len(counts))
			for trait, n := range counts {
				means[trait] = round1(sums[trait] / float64(n))
			}
			p.Traits[mod.ID] = means
		}
	}

	return p
}

// Trait returns a scored mean, or 0 when the trait has no answers.
func (p Profile) Trait(moduleID, trait string) float64 {
	return p.Traits[moduleID][trait]
}

// Selection returns a pass-through answer for a module trait.
func (p Profile) Selection(moduleID, trait string) (quiz.AnswerValue, bool) {
	v, ok := p.Selections[moduleID][trait]
	return v, ok
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
