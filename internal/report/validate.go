package report

import (
	"encoding/json"
	"fmt"
)

// requiredKeys are the top-level report sections, checked in this order so
// the first missing section is the one reported.
var requiredKeys = []string{
	"userResults",
	"personality",
	"objectiveAssessment",
	"careerRecommendations",
	"numerology",
	"learningRoadmap",
	"funFacts",
}

// arrayKeys are the sections that must be non-empty arrays. A report with no
// careers, no roadmap or no facts renders as an empty page, so it is rejected
// even though it parses.
var arrayKeys = []string{
	"careerRecommendations",
	"learningRoadmap",
	"funFacts",
}

// ErrSchema reports a structurally invalid report.
type ErrSchema struct {
	Field  string
	Reason string
}

func (e *ErrSchema) Error() string {
	return fmt.Sprintf("invalid report: field %q %s", e.Field, e.Reason)
}

// Validate checks a candidate report document: it must be a JSON object
// carrying every required section, and the list sections must be non-empty
// arrays. Content beyond that is left to the model.
func Validate(raw json.RawMessage) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrSchema{Field: "(root)", Reason: "is not a JSON object"}
	}

	for _, key := range requiredKeys {
		val, ok := doc[key]
		if !ok || isNull(val) {
			return &ErrSchema{Field: key, Reason: "is missing"}
		}
	}

	for _, key := range arrayKeys {
		var arr []json.RawMessage
		if err := json.Unmarshal(doc[key], &arr); err != nil {
			return &ErrSchema{Field: key, Reason: "is not an array"}
		}
		if len(arr) == 0 {
			return &ErrSchema{Field: key, Reason: "is empty"}
		}
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
