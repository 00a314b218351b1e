// Package report builds the career-report prompt, drives generation, and
// validates and persists the result.
package report

import (
	"encoding/json"
	"time"

	"pathx/internal/scoring"
)

// EQScores breaks the EQ assessment down by trait. ConflictStyle is the
// chosen conflict-handling option rather than a number.
type EQScores struct {
	SelfAwareness    float64 `json:"selfAwareness"`
	EmotionalControl float64 `json:"emotionalControl"`
	Empathy          float64 `json:"empathy"`
	ConflictStyle    string  `json:"conflictStyle"`
}

// UserResults echoes the scored questionnaire back in the report.
type UserResults struct {
	IQScore         int      `json:"iqScore"`
	IQOutOf         int      `json:"iqOutOf"`
	IQLevel         string   `json:"iqLevel"`
	EQScores        EQScores `json:"eqScores"`
	EQLevel         string   `json:"eqLevel"`
	CareerInterests []string `json:"careerInterests"`
	WorkStyle       string   `json:"workStyle"`
	PassionVsMoney  float64  `json:"passionVsMoney"`
	WorkEnvironment string   `json:"workEnvironment"`
	CoreValues      []string `json:"coreValues"`
}

// Personality is the archetype section of the report.
type Personality struct {
	Title          string   `json:"title"`
	Emoji          string   `json:"emoji"`
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	GrowthAreas    []string `json:"growthAreas"`
	FunDescription string   `json:"funDescription"`
}

// Assessment is the narrative analysis of the objective scores.
type Assessment struct {
	IQAnalysis     string `json:"iqAnalysis"`
	EQAnalysis     string `json:"eqAnalysis"`
	CareerFit      string `json:"careerFit"`
	OverallProfile string `json:"overallProfile"`
}

// Career is one recommended career with market context.
type Career struct {
	Title        string   `json:"title"`
	Emoji        string   `json:"emoji"`
	MatchPercent int      `json:"matchPercent"`
	Reason       string   `json:"reason"`
	SalaryRange  string   `json:"salaryRange"`
	DemandLevel  string   `json:"demandLevel"`
	Skills       []string `json:"skills"`
}

// Numerology is the birth-date numerology section.
type Numerology struct {
	LifePathNumber     int    `json:"lifePathNumber"`
	LifePathMeaning    string `json:"lifePathMeaning"`
	PersonalityNumber  int    `json:"personalityNumber"`
	PersonalityMeaning string `json:"personalityMeaning"`
	CareerAlignment    string `json:"careerAlignment"`
}

// RoadmapPhase is one stage of a learning roadmap.
type RoadmapPhase struct {
	Phase     string   `json:"phase"`
	Tasks     []string `json:"tasks"`
	Resources []string `json:"resources"`
}

// Roadmap is the phased learning plan for one recommended career.
type Roadmap struct {
	Career string         `json:"career"`
	Phases []RoadmapPhase `json:"phases"`
}

// FunFact is one shareable fact in the report.
type FunFact struct {
	Emoji string `json:"emoji"`
	Fact  string `json:"fact"`
}

// Report is the full AI-generated career report.
type Report struct {
	UserResults           UserResults `json:"userResults"`
	Personality           Personality `json:"personality"`
	ObjectiveAssessment   Assessment  `json:"objectiveAssessment"`
	CareerRecommendations []Career    `json:"careerRecommendations"`
	Numerology            Numerology  `json:"numerology"`
	LearningRoadmap       []Roadmap   `json:"learningRoadmap"`
	FunFacts              []FunFact   `json:"funFacts"`
}

// Source identifies where a stored report came from.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// PromptRecord is the persisted prompt for a session, written before any
// network call so a crash mid-generation can resume from storage. Scores
// and Answers freeze the inputs the prompt was built from.
type PromptRecord struct {
	SessionID string          `json:"sessionId"`
	Prompt    string          `json:"prompt"`
	Scores    scoring.Profile `json:"scores"`
	Answers   scoring.Answers `json:"answers"`
	CreatedAt time.Time       `json:"timestamp"`
}

// ResultRecord is the persisted report for a session. Raw holds the exact
// validated JSON so re-rendering never depends on Go-side struct drift.
type ResultRecord struct {
	SessionID   string          `json:"sessionId"`
	Source      string          `json:"source"`
	Raw         json.RawMessage `json:"raw"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// Parse decodes the stored raw JSON into a Report.
func (r ResultRecord) Parse() (Report, error) {
	var rep Report
	err := json.Unmarshal(r.Raw, &rep)
	return rep, err
}
