// Package srs schedules phrase reviews with an SM-2 variant: an ease factor
// adjusted by review quality, an expanding interval, and a learner-confidence
// modifier. Scheduling is a pure function over the prior record; persistence
// and the serialization of concurrent reviews belong to the caller.
package srs

import "time"

// Record holds the spaced-repetition state for one (user, phrase) pair.
// Created on the first review, mutated exactly once per review by Schedule
// (which returns a fresh record rather than touching the prior one).
type Record struct {
	UserID       string
	PhraseID     string
	EaseFactor   float64
	IntervalDays int
	NextReview   time.Time
	ReviewCount  int
}

// IsDue reports whether the phrase is due for review on the given day.
func (r *Record) IsDue(today time.Time) bool {
	return !dateOf(today).Before(dateOf(r.NextReview))
}

// OverdueDays returns how many days past due the phrase is. Returns 0 if
// not yet due.
func (r *Record) OverdueDays(today time.Time) int {
	t, n := dateOf(today), dateOf(r.NextReview)
	if t.Before(n) {
		return 0
	}
	return int(t.Sub(n).Hours() / 24)
}

// dateOf truncates a time to its calendar day in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
