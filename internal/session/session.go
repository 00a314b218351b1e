package session

import (
	"time"

	"pathx/internal/quiz"
)

// Progress tracks how far the learner is through the questionnaire.
// AnsweredQuestions is monotonically non-decreasing for the lifetime of a
// session: it increments only on the first answer to a question id, and is
// zeroed only by a full reset.
type Progress struct {
	CompletedModules  []string `json:"completedModules"`
	TotalModules      int      `json:"totalModules"`
	AnsweredQuestions int      `json:"answeredQuestions"`
	TotalQuestions    int      `json:"totalQuestions"`
}

// Session is the full persisted state of one pass through the questionnaire.
// The wire format matches the original persisted blob: answers are nested
// moduleId → questionId → plain JSON value.
type Session struct {
	SessionID      string                                   `json:"sessionId"`
	CurrentModule  string                                   `json:"currentModule"`
	Answers        map[string]map[string]quiz.AnswerValue   `json:"answers"`
	Progress       Progress                                 `json:"progress"`
	ModuleProgress map[string]int                           `json:"moduleProgress"`
	LastUpdated    time.Time                                `json:"lastUpdated"`
}

// State is the position of the session in the module traversal.
type State int

const (
	// StateNotStarted means Initialize has not run yet.
	StateNotStarted State = iota
	// StateInModule means the learner is inside the module sequence.
	StateInModule
	// StateAllComplete means every module is done and the session hands
	// off to the report pipeline.
	StateAllComplete
)

// Step describes what happened after an answer advanced the cursor.
type Step struct {
	// Module is the module the session is now in (unchanged unless the
	// answered question was the module's last).
	Module string
	// QuestionIndex is the new cursor within Module.
	QuestionIndex int
	// ModuleDone is true when the answered question closed its module.
	ModuleDone bool
	// AllDone is true when the closed module was the last one.
	AllDone bool
}

// newSession creates a fresh session positioned at the first module.
func newSession(id string) Session {
	return Session{
		SessionID:      id,
		CurrentModule:  quiz.FirstModuleID(),
		Answers:        make(map[string]map[string]quiz.AnswerValue),
		ModuleProgress: make(map[string]int),
		Progress: Progress{
			CompletedModules: []string{},
			TotalModules:     len(quiz.Modules()),
			TotalQuestions:   quiz.TotalQuestions(),
		},
	}
}

// normalize repairs a rehydrated session so later operations never hit nil
// maps or an unknown current module.
func normalize(s *Session) {
	if s.Answers == nil {
		s.Answers = make(map[string]map[string]quiz.AnswerValue)
	}
	if s.ModuleProgress == nil {
		s.ModuleProgress = make(map[string]int)
	}
	if s.Progress.CompletedModules == nil {
		s.Progress.CompletedModules = []string{}
	}
	s.Progress.TotalModules = len(quiz.Modules())
	s.Progress.TotalQuestions = quiz.TotalQuestions()
	if quiz.ModuleIndex(s.CurrentModule) < 0 {
		s.CurrentModule = quiz.FirstModuleID()
	}
}
