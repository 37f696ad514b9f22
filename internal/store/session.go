package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/awasilew/mowa/internal/stats"
)

// GetUserStats returns the cumulative stats for a user, or nil if the user
// has no history yet.
func (s *Store) GetUserStats(ctx context.Context, userID string) (*stats.UserStats, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT total_xp, streak, total_sessions, last_practice_day
		FROM user_stats WHERE user_id = ?`, userID)

	us := &stats.UserStats{UserID: userID}
	var lastDay string
	err := row.Scan(&us.TotalXP, &us.Streak, &us.TotalSessions, &lastDay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user stats: %w", err)
	}

	if lastDay != "" {
		us.LastPracticeDay, err = time.ParseInLocation(dayFormat, lastDay, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse last_practice_day %q: %w", lastDay, err)
		}
	}
	return us, nil
}

// ApplySessionEnd writes a finalized session's effects in one transaction:
// the updated cumulative stats and the newly unlocked badges. The unique
// (user, badge) key backs up the engine's idempotency check; a code that
// somehow already exists is ignored rather than duplicated.
func (s *Store) ApplySessionEnd(ctx context.Context, us *stats.UserStats, newCodes []string, now time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, total_xp, streak, total_sessions, last_practice_day)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			total_xp = excluded.total_xp,
			streak = excluded.streak,
			total_sessions = excluded.total_sessions,
			last_practice_day = excluded.last_practice_day`,
		us.UserID, us.TotalXP, us.Streak, us.TotalSessions,
		us.LastPracticeDay.UTC().Format(dayFormat))
	if err != nil {
		return fmt.Errorf("upsert user stats: %w", err)
	}

	for _, code := range newCodes {
		_, err = tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO badge_unlocks (user_id, badge_code, unlocked_at)
			VALUES (?, ?, ?)`,
			us.UserID, code, now.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("insert badge unlock %s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session tx: %w", err)
	}
	return nil
}

// ResetUser deletes all rows for a user across every table.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"attempts", "srs_records", "badge_unlocks", "user_stats"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", table), userID); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return tx.Commit()
}
