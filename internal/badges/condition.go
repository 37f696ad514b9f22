// Package badges evaluates unlock conditions against cumulative learner
// stats and guarantees at-most-once unlock per badge per user.
package badges

// Stats is the aggregate view the unlock conditions are evaluated against.
// Computed by the caller's stats layer, not by this package.
type Stats struct {
	TotalXP       int
	Streak        int
	TotalSessions int
	PerfectDay    bool
}

// Condition pairs a badge code with its unlock predicate. All standard
// predicates are monotonic and independent of each other.
type Condition struct {
	Code      string
	Satisfied func(Stats) bool
}

// Catalog returns the badge conditions in declaration order. Output order of
// Check follows this order so simultaneous unlocks display consistently.
func Catalog() []Condition {
	return []Condition{
		{Code: "STREAK_3", Satisfied: func(s Stats) bool { return s.Streak >= 3 }},
		{Code: "STREAK_7", Satisfied: func(s Stats) bool { return s.Streak >= 7 }},
		{Code: "STREAK_30", Satisfied: func(s Stats) bool { return s.Streak >= 30 }},
		{Code: "XP_500", Satisfied: func(s Stats) bool { return s.TotalXP >= 500 }},
		{Code: "XP_2000", Satisfied: func(s Stats) bool { return s.TotalXP >= 2000 }},
		{Code: "XP_10000", Satisfied: func(s Stats) bool { return s.TotalXP >= 10000 }},
		{Code: "SESSIONS_10", Satisfied: func(s Stats) bool { return s.TotalSessions >= 10 }},
		{Code: "SESSIONS_50", Satisfied: func(s Stats) bool { return s.TotalSessions >= 50 }},
		{Code: "SESSIONS_200", Satisfied: func(s Stats) bool { return s.TotalSessions >= 200 }},
		{Code: "PERFECT_DAY", Satisfied: func(s Stats) bool { return s.PerfectDay }},
	}
}
