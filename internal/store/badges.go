package store

import (
	"context"
	"fmt"
	"time"
)

// UnlockedCodes returns the set of badge codes already unlocked by a user.
func (s *Store) UnlockedCodes(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT badge_code FROM badge_unlocks WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("query badge unlocks: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan badge code: %w", err)
		}
		codes[code] = true
	}
	return codes, rows.Err()
}

// UnlockedCodesOrdered returns unlocked codes with their unlock times,
// oldest first, for display.
func (s *Store) UnlockedCodesOrdered(ctx context.Context, userID string) ([]BadgeUnlock, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT badge_code, unlocked_at FROM badge_unlocks
		WHERE user_id = ? ORDER BY unlocked_at ASC, badge_code ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query badge unlocks: %w", err)
	}
	defer rows.Close()

	var unlocks []BadgeUnlock
	for rows.Next() {
		var u BadgeUnlock
		var at string
		if err := rows.Scan(&u.BadgeCode, &at); err != nil {
			return nil, fmt.Errorf("scan badge unlock: %w", err)
		}
		u.UserID = userID
		u.UnlockedAt, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parse unlocked_at %q: %w", at, err)
		}
		unlocks = append(unlocks, u)
	}
	return unlocks, rows.Err()
}

// BadgeUnlock is one (user, badge) unlock row, unique per pair.
type BadgeUnlock struct {
	UserID     string
	BadgeCode  string
	UnlockedAt time.Time
}
