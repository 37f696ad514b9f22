// Package feedback maps a similarity score to a feedback tier using a
// length-adjusted threshold. Longer phrases get a more forgiving threshold;
// the classifier itself is stateless, and consecutive-low tracking belongs
// to the session that calls it.
package feedback

// Tier is the feedback classification for a single attempt.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

const (
	// BaseThreshold is the high-tier cutoff for very short phrases.
	BaseThreshold = 0.85

	// MaxLengthDiscount caps how much the threshold relaxes for long
	// phrases, putting the floor at 0.70.
	MaxLengthDiscount = 0.15

	// LengthScale is the phrase length (in characters) that would earn the
	// full discount if it were not capped.
	LengthScale = 200.0

	// MediumBand is how far below the threshold a score may fall and still
	// classify as medium rather than low.
	MediumBand = 0.25
)

// Result is the outcome of classifying one attempt. Produced fresh per
// attempt; never mutated.
type Result struct {
	Tier      Tier
	Threshold float64
}

// Threshold returns the high-tier cutoff for a phrase of the given length.
// Zero or negative lengths are treated as length 1.
func Threshold(phraseLength int) float64 {
	if phraseLength <= 0 {
		phraseLength = 1
	}
	discount := float64(phraseLength) / LengthScale
	if discount > MaxLengthDiscount {
		discount = MaxLengthDiscount
	}
	return BaseThreshold - discount
}

// Classify maps a score and phrase length to a feedback tier.
func Classify(score float64, phraseLength int) Result {
	threshold := Threshold(phraseLength)

	var tier Tier
	switch {
	case score >= threshold:
		tier = TierHigh
	case score >= threshold-MediumBand:
		tier = TierMedium
	default:
		tier = TierLow
	}

	return Result{Tier: tier, Threshold: threshold}
}
