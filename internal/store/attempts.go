package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/awasilew/mowa/internal/feedback"
)

// Attempt is one persisted user submission together with its score. The
// engine produced the score and tier; this row is the audit trail.
type Attempt struct {
	ID        string
	UserID    string
	PhraseID  string
	RawText   string
	Score     float64
	Tier      feedback.Tier
	CreatedAt time.Time
}

// AppendAttempt inserts one attempt row, assigning an ID if absent.
func (s *Store) AppendAttempt(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (id, user_id, phrase_id, raw_text, score, tier, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.PhraseID, a.RawText, a.Score, string(a.Tier),
		a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// AttemptCount returns the number of attempts recorded for a user.
func (s *Store) AttemptCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attempts WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
