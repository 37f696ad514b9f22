package practice

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awasilew/mowa/internal/dialogue"
	"github.com/awasilew/mowa/internal/feedback"
	"github.com/awasilew/mowa/internal/stats"
	"github.com/awasilew/mowa/internal/store"
)

var (
	today     = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	yesterday = today.AddDate(0, 0, -1)
)

// coffeeLesson chains five identical ordering turns so a clean run earns
// 50 XP from phrases.
func coffeeLesson() *dialogue.Lesson {
	lesson := &dialogue.Lesson{
		ID:          "coffee-drill",
		StartNodeID: "n1",
		Phrases: []dialogue.Phrase{
			{
				ID:              "p-kawa",
				Text:            "kawę poproszę",
				ExpectedAnswers: []string{"kawę", "kawę poproszę"},
				Length:          utf8.RuneCountInString("kawę poproszę"),
			},
		},
		Nodes: []dialogue.Node{
			{ID: "n1", TutorText: "Raz", PhraseID: "p-kawa", Options: []dialogue.Option{{MatchText: "kawę", NextNodeID: "n2", IsDefault: true}}},
			{ID: "n2", TutorText: "Dwa", PhraseID: "p-kawa", Options: []dialogue.Option{{MatchText: "kawę", NextNodeID: "n3", IsDefault: true}}},
			{ID: "n3", TutorText: "Trzy", PhraseID: "p-kawa", Options: []dialogue.Option{{MatchText: "kawę", NextNodeID: "n4", IsDefault: true}}},
			{ID: "n4", TutorText: "Cztery", PhraseID: "p-kawa", Options: []dialogue.Option{{MatchText: "kawę", NextNodeID: "n5", IsDefault: true}}},
			{ID: "n5", TutorText: "Pięć", PhraseID: "p-kawa", Options: []dialogue.Option{{MatchText: "kawę", NextNodeID: "end", IsDefault: true}}},
			{ID: "end", TutorText: "Koniec"},
		},
	}
	return lesson
}

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewEngine(s), s
}

func TestHandleTurn_PerfectAttempt(t *testing.T) {
	engine, _ := newTestEngine(t)
	st := NewSession("u1", coffeeLesson(), today)

	res, err := engine.HandleTurn(context.Background(), st, TurnInput{RawText: "kawę", Today: today})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Score, 0.0001)
	assert.Equal(t, feedback.TierHigh, res.Tier)
	assert.True(t, res.Correct)
	assert.Equal(t, "n2", res.NextNodeID)
	assert.Equal(t, 10, res.TurnXP)

	// First review at derived quality 5, neutral confidence.
	require.NotNil(t, res.SrsRecord)
	assert.InDelta(t, 2.6, res.SrsRecord.EaseFactor, 0.0001)
	assert.Equal(t, 1, res.SrsRecord.IntervalDays)
	assert.Equal(t, 1, res.SrsRecord.ReviewCount)

	assert.Equal(t, "n2", st.CurrentNodeID)
	assert.Equal(t, 10, st.XPFromPhrases)
	assert.Equal(t, 1, st.TotalAttempted)
	assert.Equal(t, 1, st.TotalCorrect)
}

func TestHandleTurn_ExplicitReviewInput(t *testing.T) {
	engine, _ := newTestEngine(t)
	st := NewSession("u1", coffeeLesson(), today)

	quality, confidence := 3, 5
	res, err := engine.HandleTurn(context.Background(), st, TurnInput{
		RawText: "kawę", Quality: &quality, Confidence: &confidence, Today: today,
	})
	require.NoError(t, err)

	// First review interval is 1 regardless of confidence; EF took the
	// quality-3 delta.
	assert.InDelta(t, 2.36, res.SrsRecord.EaseFactor, 0.0001)
	assert.Equal(t, 1, res.SrsRecord.IntervalDays)
}

func TestHandleTurn_OutOfRangeQualityRejected(t *testing.T) {
	engine, _ := newTestEngine(t)
	st := NewSession("u1", coffeeLesson(), today)

	bad := 7
	_, err := engine.HandleTurn(context.Background(), st, TurnInput{RawText: "kawę", Quality: &bad, Today: today})
	require.Error(t, err)
	// The turn failed before any state moved.
	assert.Equal(t, 0, st.TotalAttempted)
	assert.Equal(t, "n1", st.CurrentNodeID)
}

func TestHandleTurn_RevealAfterTwoLows(t *testing.T) {
	engine, _ := newTestEngine(t)
	st := NewSession("u1", coffeeLesson(), today)

	first, err := engine.HandleTurn(context.Background(), st, TurnInput{RawText: "zupa", Today: today})
	require.NoError(t, err)
	assert.Equal(t, feedback.TierLow, first.Tier)
	assert.False(t, first.Reveal)

	second, err := engine.HandleTurn(context.Background(), st, TurnInput{RawText: "pierogi", Today: today})
	require.NoError(t, err)
	assert.Equal(t, feedback.TierLow, second.Tier)
	assert.True(t, second.Reveal)
	assert.Equal(t, "kawę poproszę", second.RevealAnswer)

	// The counter reset after the reveal.
	third, err := engine.HandleTurn(context.Background(), st, TurnInput{RawText: "zupa", Today: today})
	require.NoError(t, err)
	assert.False(t, third.Reveal)
}

func TestHandleTurn_HighTierResetsLowStreak(t *testing.T) {
	engine, _ := newTestEngine(t)
	st := NewSession("u1", coffeeLesson(), today)

	ctx := context.Background()
	_, err := engine.HandleTurn(ctx, st, TurnInput{RawText: "zupa", Today: today})
	require.NoError(t, err)
	_, err = engine.HandleTurn(ctx, st, TurnInput{RawText: "kawę", Today: today})
	require.NoError(t, err)
	res, err := engine.HandleTurn(ctx, st, TurnInput{RawText: "zupa", Today: today})
	require.NoError(t, err)
	assert.False(t, res.Reveal, "one low after a high must not reveal")
}

func TestHandleTurn_FinishedSession(t *testing.T) {
	engine, _ := newTestEngine(t)
	st := NewSession("u1", coffeeLesson(), today)
	st.CurrentNodeID = "end"

	require.True(t, st.Done())
	_, err := engine.HandleTurn(context.Background(), st, TurnInput{RawText: "kawę", Today: today})
	require.Error(t, err)
}

func TestEndToEndSession(t *testing.T) {
	engine, s := newTestEngine(t)
	ctx := context.Background()

	// Prior history: streak 2, practiced yesterday.
	require.NoError(t, s.ApplySessionEnd(ctx, &stats.UserStats{
		UserID: "u1", Streak: 2, LastPracticeDay: yesterday,
	}, nil, yesterday))

	st := NewSession("u1", coffeeLesson(), today)
	for i := 0; i < 5; i++ {
		res, err := engine.HandleTurn(ctx, st, TurnInput{RawText: "kawę", Today: today})
		require.NoError(t, err)
		require.Equal(t, feedback.TierHigh, res.Tier)
	}
	require.True(t, st.Done())
	assert.Equal(t, 50, st.XPFromPhrases)

	result, err := engine.FinalizeSession(ctx, st, today)
	require.NoError(t, err)

	assert.Equal(t, 50, result.Totals.XPFromPhrases)
	assert.Equal(t, 3, result.Totals.StreakAfter)
	assert.Equal(t, 10, result.Totals.XPStreakBonus)
	assert.Equal(t, 60, result.Totals.TotalXP)
	assert.True(t, result.Totals.PerfectDay)

	assert.Equal(t, 60, result.Stats.TotalXP)
	assert.Equal(t, 1, result.Stats.TotalSessions)
	assert.Equal(t, []string{"STREAK_3", "PERFECT_DAY"}, result.UnlockedBadges)

	// Finalization is once per session.
	_, err = engine.FinalizeSession(ctx, st, today)
	require.Error(t, err)
}

func TestFinalizeSession_BadgeIdempotencyAcrossSessions(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	first := NewSession("u1", coffeeLesson(), today)
	for i := 0; i < 5; i++ {
		_, err := engine.HandleTurn(ctx, first, TurnInput{RawText: "kawę", Today: today})
		require.NoError(t, err)
	}
	res1, err := engine.FinalizeSession(ctx, first, today)
	require.NoError(t, err)
	assert.Contains(t, res1.UnlockedBadges, "PERFECT_DAY")

	// A second perfect session the same day re-satisfies the predicate but
	// must not re-unlock the badge.
	second := NewSession("u1", coffeeLesson(), today)
	for i := 0; i < 5; i++ {
		_, err := engine.HandleTurn(ctx, second, TurnInput{RawText: "kawę", Today: today})
		require.NoError(t, err)
	}
	res2, err := engine.FinalizeSession(ctx, second, today)
	require.NoError(t, err)
	assert.NotContains(t, res2.UnlockedBadges, "PERFECT_DAY")

	// Same-day repeat also left the streak alone.
	assert.Equal(t, res1.Stats.Streak, res2.Stats.Streak)
}

func TestFinalizeSession_EmptySession(t *testing.T) {
	engine, _ := newTestEngine(t)
	st := NewSession("u1", coffeeLesson(), today)

	result, err := engine.FinalizeSession(context.Background(), st, today)
	require.NoError(t, err)
	assert.False(t, result.Totals.PerfectDay, "empty session is never perfect")
	assert.Equal(t, 0, result.Totals.XPFromPhrases)
	assert.Equal(t, 1, result.Totals.StreakAfter, "first ever session starts the streak")
}
