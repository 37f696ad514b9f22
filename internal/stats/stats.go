// Package stats tracks cumulative per-user learning totals and the calendar
// arithmetic behind daily-streak continuity. The reward calculator receives
// the continuity booleans from here instead of reading a clock.
package stats

import "time"

// UserStats is the cumulative aggregate for one learner. LastPracticeDay is
// the zero time for a learner with no history.
type UserStats struct {
	UserID          string
	TotalXP         int
	Streak          int
	TotalSessions   int
	LastPracticeDay time.Time
}

// Continuity classifies today against the learner's last practice day.
// consecutive means the last practice was exactly yesterday (this session
// extends the streak); practicedToday means a session already closed today
// (the streak neither grows nor resets).
func Continuity(lastPracticeDay, today time.Time) (consecutive, practicedToday bool) {
	if lastPracticeDay.IsZero() {
		return false, false
	}
	last := dateOf(lastPracticeDay)
	now := dateOf(today)

	if last.Equal(now) {
		return false, true
	}
	if last.AddDate(0, 0, 1).Equal(now) {
		return true, false
	}
	return false, false
}

// dateOf truncates a time to its calendar day in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
