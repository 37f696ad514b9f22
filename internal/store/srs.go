package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/awasilew/mowa/internal/srs"
)

// dayFormat stores calendar days without a time component.
const dayFormat = "2006-01-02"

// GetSrsRecord returns the record for a (user, phrase) pair, or nil if the
// phrase has never been reviewed.
func (s *Store) GetSrsRecord(ctx context.Context, userID, phraseID string) (*srs.Record, error) {
	return getSrsRecord(ctx, s.db, userID, phraseID)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getSrsRecord(ctx context.Context, q querier, userID, phraseID string) (*srs.Record, error) {
	row := q.QueryRowContext(ctx, `
		SELECT ease_factor, interval_days, next_review, review_count
		FROM srs_records WHERE user_id = ? AND phrase_id = ?`,
		userID, phraseID)

	var rec srs.Record
	var nextReview string
	err := row.Scan(&rec.EaseFactor, &rec.IntervalDays, &nextReview, &rec.ReviewCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query srs record: %w", err)
	}

	rec.UserID = userID
	rec.PhraseID = phraseID
	rec.NextReview, err = time.ParseInLocation(dayFormat, nextReview, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse next_review %q: %w", nextReview, err)
	}
	return &rec, nil
}

// ReviewTx runs one review as a serialized read-modify-write: it reads the
// authoritative prior record inside a transaction, hands it to fn (the
// scheduler), and upserts whatever fn returns. Two concurrent reviews of
// the same pair cannot both see the old record.
func (s *Store) ReviewTx(ctx context.Context, userID, phraseID string, fn func(prev *srs.Record) (*srs.Record, error)) (*srs.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin review tx: %w", err)
	}
	defer tx.Rollback()

	prev, err := getSrsRecord(ctx, tx, userID, phraseID)
	if err != nil {
		return nil, err
	}

	next, err := fn(prev)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO srs_records (user_id, phrase_id, ease_factor, interval_days, next_review, review_count, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, phrase_id) DO UPDATE SET
			ease_factor = excluded.ease_factor,
			interval_days = excluded.interval_days,
			next_review = excluded.next_review,
			review_count = excluded.review_count,
			updated_at = excluded.updated_at`,
		next.UserID, next.PhraseID, next.EaseFactor, next.IntervalDays,
		next.NextReview.UTC().Format(dayFormat), next.ReviewCount,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("upsert srs record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit review tx: %w", err)
	}
	return next, nil
}

// DueRecords lists a user's records due on or before today, most overdue
// first, then hardest (lowest ease factor) first.
func (s *Store) DueRecords(ctx context.Context, userID string, today time.Time, limit int) ([]*srs.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT phrase_id, ease_factor, interval_days, next_review, review_count
		FROM srs_records
		WHERE user_id = ? AND next_review <= ?
		ORDER BY next_review ASC, ease_factor ASC
		LIMIT ?`,
		userID, today.UTC().Format(dayFormat), limit)
	if err != nil {
		return nil, fmt.Errorf("query due records: %w", err)
	}
	defer rows.Close()

	var due []*srs.Record
	for rows.Next() {
		rec := &srs.Record{UserID: userID}
		var nextReview string
		if err := rows.Scan(&rec.PhraseID, &rec.EaseFactor, &rec.IntervalDays, &nextReview, &rec.ReviewCount); err != nil {
			return nil, fmt.Errorf("scan due record: %w", err)
		}
		rec.NextReview, err = time.ParseInLocation(dayFormat, nextReview, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse next_review %q: %w", nextReview, err)
		}
		due = append(due, rec)
	}
	return due, rows.Err()
}
