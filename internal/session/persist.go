package session

import (
	"fmt"
	"os"
	"time"

	"pathx/internal/store"
)

// scheduleSaveLocked arms (or re-arms) the debounced write. Rapid sequential
// mutations coalesce into a single write after the quiet period. Writes are
// suppressed until Initialize has run.
//
// Caller must hold m.mu.
func (m *Manager) scheduleSaveLocked() {
	if !m.initialized {
		return
	}
	m.sess.LastUpdated = time.Now().UTC()

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.debounce, func() {
		m.mu.Lock()
		snap := cloneSession(m.sess)
		m.mu.Unlock()
		m.write(snap)
	})
}

// cancelPendingLocked stops a pending debounced write, if any.
//
// Caller must hold m.mu.
func (m *Manager) cancelPendingLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// write persists a session snapshot as a single-key atomic write. A failed
// write is reported but never propagated; the in-memory session stays
// authoritative and the next mutation retries.
func (m *Manager) write(snap Session) {
	if err := m.records.Put(store.SessionKey(), snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save session: %v\n", err)
	}
}
