package srs

// Ease factor bounds. The floor stops a phrase from collapsing into runaway
// short intervals no matter how many failed reviews it accumulates.
const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Interval bounds in days.
const (
	MinIntervalDays = 1
	MaxIntervalDays = 365
)

// Review quality bounds (SM-2 scale: 0 blackout through 5 perfect).
const (
	MinQuality = 0
	MaxQuality = 5
)

// Self-reported confidence bounds. NeutralConfidence leaves the base
// interval untouched; each step away shifts it by ConfidenceStep.
const (
	MinConfidence     = 1
	MaxConfidence     = 5
	NeutralConfidence = 3
	ConfidenceStep    = 0.2
)

// qualityDelta maps review quality to the ease-factor adjustment. Monotonic
// in quality.
var qualityDelta = [6]float64{-0.8, -0.54, -0.32, -0.14, 0.0, 0.1}
