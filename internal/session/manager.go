package session

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"pathx/internal/quiz"
	"pathx/internal/store"
)

// DefaultDebounce is the quiet period before a mutated session is written out.
const DefaultDebounce = 100 * time.Millisecond

// Manager is the sole owner of Session mutation and the only writer of the
// session record. All mutating methods are safe for the single-UI-goroutine
// model; the internal mutex exists only because the debounced write fires on
// a timer goroutine.
type Manager struct {
	records  store.RecordRepo
	debounce time.Duration

	mu          sync.Mutex
	sess        Session
	state       State
	timer       *time.Timer
	initialized bool
}

// NewManager creates a Manager over the given record repo.
func NewManager(records store.RecordRepo) *Manager {
	return &Manager{records: records, debounce: DefaultDebounce}
}

// Initialize loads the persisted session, or creates a fresh one when no
// blob exists or the stored blob cannot be parsed. Corrupt data degrades to
// "start fresh"; Initialize never fails.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var s Session
	err := m.records.Get(store.SessionKey(), &s)
	switch {
	case err == nil && s.SessionID != "":
		normalize(&s)
		m.sess = s
	case err != nil && !errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(os.Stderr, "warning: session blob unreadable, starting fresh: %v\n", err)
		fallthrough
	default:
		m.sess = newSession(uuid.NewString())
	}

	m.state = StateInModule
	if len(m.sess.Progress.CompletedModules) >= m.sess.Progress.TotalModules {
		m.state = StateAllComplete
	}
	// Writes are armed only after initialization so a freshly loaded
	// session is never clobbered by an empty one.
	m.initialized = true
}

// Snapshot returns a copy of the current session for reads. Nested maps are
// cloned so callers cannot mutate manager-owned state.
func (m *Manager) Snapshot() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneSession(m.sess)
}

// SessionID returns the current session id.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess.SessionID
}

// CurrentModule returns the id of the module the session is positioned at.
func (m *Manager) CurrentModule() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess.CurrentModule
}

// State returns the traversal state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SaveAnswer records the answer for a question, overwriting any previous
// value. The answered-question counter increments only on the first answer
// to a given question id, so re-answering never inflates progress.
func (m *Manager) SaveAnswer(moduleID, questionID string, value quiz.AnswerValue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	moduleAnswers := m.sess.Answers[moduleID]
	if moduleAnswers == nil {
		moduleAnswers = make(map[string]quiz.AnswerValue)
		m.sess.Answers[moduleID] = moduleAnswers
	}

	_, answered := moduleAnswers[questionID]
	moduleAnswers[questionID] = value
	if !answered {
		m.sess.Progress.AnsweredQuestions++
	}

	m.scheduleSaveLocked()
}

// CompleteModule marks a module finished. Idempotent: completing an already
// completed module does not append a duplicate.
func (m *Manager) CompleteModule(moduleID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completeModuleLocked(moduleID)
	m.scheduleSaveLocked()
}

func (m *Manager) completeModuleLocked(moduleID string) {
	for _, id := range m.sess.Progress.CompletedModules {
		if id == moduleID {
			return
		}
	}
	m.sess.Progress.CompletedModules = append(m.sess.Progress.CompletedModules, moduleID)
}

// IsModuleCompleted reports whether moduleID has been completed.
func (m *Manager) IsModuleCompleted(moduleID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.sess.Progress.CompletedModules {
		if id == moduleID {
			return true
		}
	}
	return false
}

// AdvanceModule moves to the next module in the static sequence. Advancing
// past the last module transitions to StateAllComplete instead of wrapping;
// the returned flag is true exactly in that case.
func (m *Manager) AdvanceModule() (next string, allDone bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := quiz.ModuleIndex(m.sess.CurrentModule)
	mods := quiz.Modules()
	if idx < 0 || idx >= len(mods)-1 {
		m.state = StateAllComplete
		m.scheduleSaveLocked()
		return m.sess.CurrentModule, true
	}

	m.sess.CurrentModule = mods[idx+1].ID
	m.scheduleSaveLocked()
	return m.sess.CurrentModule, false
}

// RetreatModule moves to the previous module. At the first module it stays
// put and reports moved=false.
func (m *Manager) RetreatModule() (prev string, moved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := quiz.ModuleIndex(m.sess.CurrentModule)
	if idx <= 0 {
		return m.sess.CurrentModule, false
	}

	m.sess.CurrentModule = quiz.Modules()[idx-1].ID
	m.state = StateInModule
	m.scheduleSaveLocked()
	return m.sess.CurrentModule, true
}

// AdvanceQuestion moves the cursor forward after an answer to the given
// module. When the cursor passes the module's last question the module is
// completed and the session advances to the next module (or to
// StateAllComplete if it was the last).
func (m *Manager) AdvanceQuestion(moduleID string) Step {
	m.mu.Lock()
	mod, ok := quiz.ModuleByID(moduleID)
	if !ok {
		m.mu.Unlock()
		return Step{Module: m.sess.CurrentModule}
	}

	next := m.sess.ModuleProgress[moduleID] + 1
	if next < mod.QuestionCount() {
		m.sess.ModuleProgress[moduleID] = next
		m.scheduleSaveLocked()
		step := Step{Module: moduleID, QuestionIndex: next}
		m.mu.Unlock()
		return step
	}

	// Module finished.
	m.sess.ModuleProgress[moduleID] = mod.QuestionCount() - 1
	m.completeModuleLocked(moduleID)
	m.mu.Unlock()

	nextModule, allDone := m.AdvanceModule()
	return Step{
		Module:     nextModule,
		ModuleDone: true,
		AllDone:    allDone,
	}
}

// SetQuestionIndex stores the resume cursor for a module.
func (m *Manager) SetQuestionIndex(moduleID string, index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess.ModuleProgress[moduleID] = index
	m.scheduleSaveLocked()
}

// QuestionIndex returns the resume cursor for a module (0 if unset).
func (m *Manager) QuestionIndex(moduleID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess.ModuleProgress[moduleID]
}

// ProgressPercent returns the overall completion percentage, rounded.
func (m *Manager) ProgressPercent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess.Progress.TotalQuestions == 0 {
		return 0
	}
	pct := float64(m.sess.Progress.AnsweredQuestions) / float64(m.sess.Progress.TotalQuestions) * 100
	return int(pct + 0.5)
}

// Reset clears the persisted session and starts over with a fresh id. Stored
// prompt and result records for the old session id are left in place so old
// reports remain retrievable.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelPendingLocked()
	if err := m.records.Delete(store.SessionKey()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clear session: %v\n", err)
	}
	m.sess = newSession(uuid.NewString())
	m.state = StateInModule
	m.scheduleSaveLocked()
}

// Flush cancels any pending debounced write and persists immediately.
// Call on shutdown.
func (m *Manager) Flush() {
	m.mu.Lock()
	m.cancelPendingLocked()
	snap := cloneSession(m.sess)
	initialized := m.initialized
	m.mu.Unlock()

	if initialized {
		m.write(snap)
	}
}

func cloneSession(s Session) Session {
	out := s
	out.Answers = make(map[string]map[string]quiz.AnswerValue, len(s.Answers))
	for mod, qs := range s.Answers {
		qc := make(map[string]quiz.AnswerValue, len(qs))
		for q, v := range qs {
			qc[q] = v
		}
		out.Answers[mod] = qc
	}
	out.ModuleProgress = make(map[string]int, len(s.ModuleProgress))
	for k, v := range s.ModuleProgress {
		out.ModuleProgress[k] = v
	}
	out.Progress.CompletedModules = append([]string{}, s.Progress.CompletedModules...)
	return out
}
