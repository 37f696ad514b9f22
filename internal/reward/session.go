package reward

// SessionInput carries everything the calculator needs to close a session.
// Streak continuity is supplied by the caller's streak tracker, which owns
// the calendar arithmetic; the calculator only applies it.
type SessionInput struct {
	XPFromPhrases    int
	CorrectPhrases   int
	TotalPhrases     int
	StreakBefore     int
	TodayConsecutive bool // practiced yesterday, first session today
	PracticedToday   bool // already closed a session today
}

// SessionTotals is the finalized outcome of one session. Built once at
// session end and never mutated afterwards.
type SessionTotals struct {
	XPFromPhrases  int
	XPSessionBonus int // reserved for future completion bonuses, currently 0
	XPStreakBonus  int
	TotalXP        int
	StreakBefore   int
	StreakAfter    int
	PerfectDay     bool
}

// FinalizeSession computes the session totals. Pure function of its input.
func FinalizeSession(in SessionInput) SessionTotals {
	streakAfter := streakAfter(in)

	sessionBonus := 0 // reserved; the field stays so downstream schemas don't change
	streakBonus := StreakBonus(streakAfter)
	totals := SessionTotals{
		XPFromPhrases:  in.XPFromPhrases,
		XPSessionBonus: sessionBonus,
		XPStreakBonus:  streakBonus,
		TotalXP:        in.XPFromPhrases + sessionBonus + streakBonus,
		StreakBefore:   in.StreakBefore,
		StreakAfter:    streakAfter,
		PerfectDay:     in.TotalPhrases > 0 && in.CorrectPhrases == in.TotalPhrases,
	}
	return totals
}

// streakAfter applies the continuity rules: consecutive days extend the
// streak, a repeat session on the same day is a no-op, and a gap resets to 1.
func streakAfter(in SessionInput) int {
	switch {
	case in.TodayConsecutive:
		return in.StreakBefore + 1
	case in.PracticedToday:
		return in.StreakBefore
	default:
		return 1
	}
}
