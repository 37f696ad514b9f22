package srs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Validation errors for out-of-range review input.
var (
	ErrQualityRange    = errors.New("quality out of range [0, 5]")
	ErrConfidenceRange = errors.New("confidence out of range [1, 5]")
)

// Schedule computes the next review state for a (user, phrase) pair.
//
// prev is the authoritative prior record, or nil on the first review. The
// caller owns serializing concurrent reviews of the same pair; handed a
// stale record this produces a stale result. today is injected rather than
// read from the clock so interval boundaries are testable.
//
// A quality below 3 still advances the review count and updates the ease
// factor; re-queuing the phrase for near-term review is the caller's call.
func Schedule(userID, phraseID string, prev *Record, quality, confidence int, today time.Time) (*Record, error) {
	if quality < MinQuality || quality > MaxQuality {
		return nil, fmt.Errorf("%w: %d", ErrQualityRange, quality)
	}
	if confidence < MinConfidence || confidence > MaxConfidence {
		return nil, fmt.Errorf("%w: %d", ErrConfidenceRange, confidence)
	}

	ease := InitialEaseFactor
	prevInterval := 0
	count := 0
	if prev != nil {
		ease = prev.EaseFactor
		prevInterval = prev.IntervalDays
		count = prev.ReviewCount
	}

	ease += qualityDelta[quality]
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	count++

	// Base interval progression: the first review is always one day out;
	// after that the interval grows by the ease factor.
	base := MinIntervalDays
	if count > 1 {
		base = int(math.Round(float64(prevInterval) * ease))
		if base < MinIntervalDays {
			base = MinIntervalDays
		}
	}

	// Confidence modifier, then clamp.
	interval := int(math.Round(float64(base) * (1 + float64(confidence-NeutralConfidence)*ConfidenceStep)))
	if interval < MinIntervalDays {
		interval = MinIntervalDays
	}
	if interval > MaxIntervalDays {
		interval = MaxIntervalDays
	}

	return &Record{
		UserID:       userID,
		PhraseID:     phraseID,
		EaseFactor:   ease,
		IntervalDays: interval,
		NextReview:   dateOf(today).AddDate(0, 0, interval),
		ReviewCount:  count,
	}, nil
}
