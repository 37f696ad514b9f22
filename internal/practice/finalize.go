package practice

import (
	"context"
	"fmt"
	"time"

	"github.com/awasilew/mowa/internal/badges"
	"github.com/awasilew/mowa/internal/reward"
	"github.com/awasilew/mowa/internal/stats"
)

// SessionResult is the finalized outcome of one session: the reward totals,
// the updated cumulative stats, and any badges unlocked by them.
type SessionResult struct {
	Totals         reward.SessionTotals
	Stats          stats.UserStats
	UnlockedBadges []string
}

// FinalizeSession closes the session: computes totals from the accumulated
// turns, rolls them into the user's cumulative stats, evaluates badge
// conditions, and persists everything in one transaction. A session
// finalizes at most once.
func (e *Engine) FinalizeSession(ctx context.Context, st *SessionState, today time.Time) (*SessionResult, error) {
	if st.finalized {
		return nil, fmt.Errorf("session %s already finalized", st.SessionID)
	}

	prior, err := e.store.GetUserStats(ctx, st.UserID)
	if err != nil {
		return nil, err
	}

	streakBefore := 0
	var lastPractice time.Time
	if prior != nil {
		streakBefore = prior.Streak
		lastPractice = prior.LastPracticeDay
	}
	consecutive, practicedToday := stats.Continuity(lastPractice, today)

	totals := reward.FinalizeSession(reward.SessionInput{
		XPFromPhrases:    st.XPFromPhrases,
		CorrectPhrases:   st.TotalCorrect,
		TotalPhrases:     st.TotalAttempted,
		StreakBefore:     streakBefore,
		TodayConsecutive: consecutive,
		PracticedToday:   practicedToday,
	})

	updated := stats.UserStats{
		UserID:          st.UserID,
		Streak:          totals.StreakAfter,
		TotalSessions:   1,
		TotalXP:         totals.TotalXP,
		LastPracticeDay: today,
	}
	if prior != nil {
		updated.TotalXP = prior.TotalXP + totals.TotalXP
		updated.TotalSessions = prior.TotalSessions + 1
	}

	already, err := e.store.UnlockedCodes(ctx, st.UserID)
	if err != nil {
		return nil, err
	}

	newCodes := badges.Check(badges.Stats{
		TotalXP:       updated.TotalXP,
		Streak:        updated.Streak,
		TotalSessions: updated.TotalSessions,
		PerfectDay:    totals.PerfectDay,
	}, already)

	if err := e.store.ApplySessionEnd(ctx, &updated, newCodes, today); err != nil {
		return nil, err
	}

	st.finalized = true
	return &SessionResult{
		Totals:         totals,
		Stats:          updated,
		UnlockedBadges: newCodes,
	}, nil
}
