// Package reward computes per-turn XP and end-of-session totals: streak
// bonuses, the perfect-day flag, and the aggregate SessionTotals value.
package reward

import "github.com/awasilew/mowa/internal/feedback"

// Per-turn XP by feedback tier.
const (
	XPHigh   = 10
	XPMedium = 5
	XPLow    = 1
)

// Streak bonus milestones, evaluated on the streak after this session.
const (
	streakBronze = 3  // 3-6 days
	streakSilver = 7  // 7-29 days
	streakGold   = 30 // 30+ days

	bonusBronze = 10
	bonusSilver = 25
	bonusGold   = 100
)

// TurnXP returns the XP earned for one attempt at the given tier.
func TurnXP(tier feedback.Tier) int {
	switch tier {
	case feedback.TierHigh:
		return XPHigh
	case feedback.TierMedium:
		return XPMedium
	default:
		return XPLow
	}
}

// StreakBonus returns the end-of-session bonus for a streak length.
func StreakBonus(streak int) int {
	switch {
	case streak >= streakGold:
		return bonusGold
	case streak >= streakSilver:
		return bonusSilver
	case streak >= streakBronze:
		return bonusBronze
	default:
		return 0
	}
}
