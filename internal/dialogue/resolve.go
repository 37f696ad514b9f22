package dialogue

import (
	"fmt"

	"github.com/agext/levenshtein"

	"github.com/awasilew/mowa/internal/similarity"
)

// FuzzyMaxEdits is the absolute edit-distance ceiling for a fuzzy option
// match. Character edits, not a similarity ratio: "herbata" still reaches
// the "herbaty" branch, "kawa" does not.
const FuzzyMaxEdits = 2

// NoDefaultBranchError reports a node whose options include no default.
// This is bad lesson data, not bad learner input: the resolver refuses to
// guess a branch and surfaces the node instead.
type NoDefaultBranchError struct {
	NodeID string
}

func (e *NoDefaultBranchError) Error() string {
	return fmt.Sprintf("dialogue node %q has no default option", e.NodeID)
}

// Resolve picks the next node for the learner's input. Strict order, first
// match wins:
//
//  1. Exact: normalized input equals a normalized option match text.
//  2. Fuzzy: edit distance to an option match text is at most FuzzyMaxEdits,
//     options checked in declaration order.
//  3. Default: the option flagged as default.
func Resolve(node *Node, userText string) (string, error) {
	input := similarity.Normalize(userText)

	for _, opt := range node.Options {
		if similarity.Normalize(opt.MatchText) == input {
			return opt.NextNodeID, nil
		}
	}

	for _, opt := range node.Options {
		if levenshtein.Distance(input, similarity.Normalize(opt.MatchText), nil) <= FuzzyMaxEdits {
			return opt.NextNodeID, nil
		}
	}

	for _, opt := range node.Options {
		if opt.IsDefault {
			return opt.NextNodeID, nil
		}
	}

	return "", &NoDefaultBranchError{NodeID: node.ID}
}
