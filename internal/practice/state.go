// Package practice orchestrates one guided-lesson session: per turn it
// resolves the dialogue branch, scores the attempt, classifies feedback,
// updates the spaced-repetition schedule, and accumulates XP; at session end
// it finalizes totals and evaluates badge unlocks. The engine components
// stay pure; this package owns the session state they refuse to.
package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/awasilew/mowa/internal/dialogue"
)

// revealAfterLows is the number of consecutive low-tier attempts on one
// phrase that triggers an answer reveal.
const revealAfterLows = 2

// SessionState is the caller-owned mutable state of one practice session.
type SessionState struct {
	SessionID     string
	UserID        string
	Lesson        *dialogue.Lesson
	CurrentNodeID string
	StartedAt     time.Time

	XPFromPhrases  int
	TotalAttempted int
	TotalCorrect   int

	// lowStreaks counts consecutive low tiers per phrase; a non-low attempt
	// resets the phrase's counter.
	lowStreaks map[string]int

	finalized bool
}

// NewSession starts a session at the lesson's start node.
func NewSession(userID string, lesson *dialogue.Lesson, now time.Time) *SessionState {
	return &SessionState{
		SessionID:     uuid.NewString(),
		UserID:        userID,
		Lesson:        lesson,
		CurrentNodeID: lesson.StartNodeID,
		StartedAt:     now,
		lowStreaks:    make(map[string]int),
	}
}

// CurrentNode returns the node the session is waiting on, or nil if the
// session has walked off the lesson graph.
func (st *SessionState) CurrentNode() *dialogue.Node {
	return st.Lesson.Node(st.CurrentNodeID)
}

// Done reports whether the session has reached a terminal node.
func (st *SessionState) Done() bool {
	node := st.CurrentNode()
	return node == nil || node.IsTerminal()
}
