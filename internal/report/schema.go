package report

import "pathx/internal/llm"

// Schema returns the structured-output schema for the career report. It pins
// the section layout; prose quality inside each section is the model's job.
func Schema() *llm.Schema {
	return &llm.Schema{
		Name:        "career-report",
		Description: "Personalized career orientation report for a Vietnamese student",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"userResults": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"iqScore":         map[string]any{"type": "integer"},
						"iqOutOf":         map[string]any{"type": "integer"},
						"iqLevel":         map[string]any{"type": "string"},
						"eqLevel":         map[string]any{"type": "string"},
						"workStyle":       map[string]any{"type": "string"},
						"workEnvironment": map[string]any{"type": "string"},
					},
				},
				"personality": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":          map[string]any{"type": "string"},
						"emoji":          map[string]any{"type": "string"},
						"summary":        map[string]any{"type": "string"},
						"strengths":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"growthAreas":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"funDescription": map[string]any{"type": "string"},
					},
					"required": []any{"title", "summary"},
				},
				"objectiveAssessment": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"iqAnalysis":     map[string]any{"type": "string"},
						"eqAnalysis":     map[string]any{"type": "string"},
						"careerFit":      map[string]any{"type": "string"},
						"overallProfile": map[string]any{"type": "string"},
					},
				},
				"careerRecommendations": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title":        map[string]any{"type": "string"},
							"emoji":        map[string]any{"type": "string"},
							"matchPercent": map[string]any{"type": "integer"},
							"reason":       map[string]any{"type": "string"},
							"salaryRange":  map[string]any{"type": "string"},
							"demandLevel":  map[string]any{"type": "string"},
							"skills":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []any{"title", "reason"},
					},
				},
				"numerology": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"lifePathNumber":     map[string]any{"type": "integer"},
						"lifePathMeaning":    map[string]any{"type": "string"},
						"personalityNumber":  map[string]any{"type": "integer"},
						"personalityMeaning": map[string]any{"type": "string"},
						"careerAlignment":    map[string]any{"type": "string"},
					},
				},
				"learningRoadmap": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"career": map[string]any{"type": "string"},
							"phases": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"phase":     map[string]any{"type": "string"},
										"tasks":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
										"resources": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
									},
								},
							},
						},
						"required": []any{"career", "phases"},
					},
				},
				"funFacts": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"emoji": map[string]any{"type": "string"},
							"fact":  map[string]any{"type": "string"},
						},
						"required": []any{"fact"},
					},
				},
			},
			"required": []any{
				"userResults", "personality", "objectiveAssessment",
				"careerRecommendations", "numerology", "learningRoadmap", "funFacts",
			},
		},
	}
}
