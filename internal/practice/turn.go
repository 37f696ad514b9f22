package practice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/awasilew/mowa/internal/dialogue"
	"github.com/awasilew/mowa/internal/feedback"
	"github.com/awasilew/mowa/internal/reward"
	"github.com/awasilew/mowa/internal/similarity"
	"github.com/awasilew/mowa/internal/srs"
	"github.com/awasilew/mowa/internal/store"
)

// Engine wires the pure components to the persistence boundary.
type Engine struct {
	store *store.Store
}

// NewEngine creates a practice engine over the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s}
}

// TurnInput is one user submission. Quality and Confidence are optional;
// when absent, quality is derived from the score and confidence is neutral.
// PhonemeSim carries a phonetic backend's similarity when one produced it.
type TurnInput struct {
	RawText    string
	Quality    *int
	Confidence *int
	PhonemeSim *float64
	Today      time.Time
}

// TurnResult is everything a single practice turn produced, computed before
// anything was persisted or rendered.
type TurnResult struct {
	Score         float64
	Tier          feedback.Tier
	ThresholdUsed float64
	Correct       bool
	NextNodeID    string
	TurnXP        int
	SrsRecord     *srs.Record

	// Reveal is set after consecutive low attempts; RevealAnswer then holds
	// the expected phrase text.
	Reveal       bool
	RevealAnswer string
}

// HandleTurn processes one attempt against the session's current node:
// branch resolution, scoring, classification, scheduling, and XP, in that
// order. The session state and the store are updated; the returned result
// is what the caller renders.
func (e *Engine) HandleTurn(ctx context.Context, st *SessionState, in TurnInput) (*TurnResult, error) {
	node := st.CurrentNode()
	if node == nil {
		return nil, fmt.Errorf("session is at unknown node %q", st.CurrentNodeID)
	}
	if node.IsTerminal() {
		return nil, fmt.Errorf("session already finished at node %q", node.ID)
	}

	phrase := st.Lesson.Phrase(node.PhraseID)
	if phrase == nil {
		return nil, fmt.Errorf("node %q references unknown phrase %q", node.ID, node.PhraseID)
	}

	nextNodeID, err := dialogue.Resolve(node, in.RawText)
	if err != nil {
		return nil, err
	}

	score := similarity.ScoreBlended(in.RawText, phrase.ExpectedAnswers, in.PhonemeSim)
	classified := feedback.Classify(score, phrase.Length)
	correct := classified.Tier == feedback.TierHigh

	quality, err := resolveQuality(in.Quality, score)
	if err != nil {
		return nil, err
	}
	confidence := srs.NeutralConfidence
	if in.Confidence != nil {
		confidence = *in.Confidence
	}

	rec, err := e.store.ReviewTx(ctx, st.UserID, phrase.ID, func(prev *srs.Record) (*srs.Record, error) {
		return srs.Schedule(st.UserID, phrase.ID, prev, quality, confidence, in.Today)
	})
	if err != nil {
		return nil, err
	}

	if err := e.store.AppendAttempt(ctx, &store.Attempt{
		UserID:   st.UserID,
		PhraseID: phrase.ID,
		RawText:  in.RawText,
		Score:    score,
		Tier:     classified.Tier,
	}); err != nil {
		return nil, err
	}

	// Update session accumulators.
	xp := reward.TurnXP(classified.Tier)
	st.XPFromPhrases += xp
	st.TotalAttempted++
	if correct {
		st.TotalCorrect++
	}

	result := &TurnResult{
		Score:         score,
		Tier:          classified.Tier,
		ThresholdUsed: classified.Threshold,
		Correct:       correct,
		NextNodeID:    nextNodeID,
		TurnXP:        xp,
		SrsRecord:     rec,
	}

	// Reveal tracking: the classifier is stateless, so the session counts
	// consecutive lows per phrase.
	if classified.Tier == feedback.TierLow {
		st.lowStreaks[phrase.ID]++
		if st.lowStreaks[phrase.ID] >= revealAfterLows {
			result.Reveal = true
			result.RevealAnswer = phrase.Text
			st.lowStreaks[phrase.ID] = 0
		}
	} else {
		st.lowStreaks[phrase.ID] = 0
	}

	st.CurrentNodeID = nextNodeID
	return result, nil
}

// resolveQuality validates an explicit review quality or derives one from
// the similarity score.
func resolveQuality(explicit *int, score float64) (int, error) {
	if explicit != nil {
		q := *explicit
		if q < srs.MinQuality || q > srs.MaxQuality {
			return 0, fmt.Errorf("%w: %d", srs.ErrQualityRange, q)
		}
		return q, nil
	}
	return int(math.Round(score * srs.MaxQuality)), nil
}
