package dialogue

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on a lesson graph. Returns a
// combined error describing every problem found, or nil if the lesson is
// valid. The resolver and the practice loop trust these invariants.
func Validate(l *Lesson) error {
	var errs []string

	if l.ID == "" {
		errs = append(errs, "lesson has no ID")
	}

	nodeIDs := make(map[string]bool, len(l.Nodes))
	phraseIDs := make(map[string]bool, len(l.Phrases))

	// Check for duplicate IDs.
	for _, p := range l.Phrases {
		if phraseIDs[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate phrase ID: %q", p.ID))
		}
		phraseIDs[p.ID] = true
		if len(p.ExpectedAnswers) == 0 {
			errs = append(errs, fmt.Sprintf("phrase %q has no expected answers", p.ID))
		}
	}
	for _, n := range l.Nodes {
		if nodeIDs[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node ID: %q", n.ID))
		}
		nodeIDs[n.ID] = true
	}

	if len(l.Nodes) == 0 {
		errs = append(errs, "lesson has no nodes")
	}
	if !nodeIDs[l.StartNodeID] {
		errs = append(errs, fmt.Sprintf("start node %q does not exist", l.StartNodeID))
	}

	// Check option targets, default counts, and phrase references.
	for _, n := range l.Nodes {
		defaults := 0
		for i, opt := range n.Options {
			if !nodeIDs[opt.NextNodeID] {
				errs = append(errs, fmt.Sprintf("node %q option %d references nonexistent node %q", n.ID, i, opt.NextNodeID))
			}
			if opt.IsDefault {
				defaults++
			}
		}
		if !n.IsTerminal() && defaults != 1 {
			errs = append(errs, fmt.Sprintf("node %q must have exactly one default option, has %d", n.ID, defaults))
		}
		if !n.IsTerminal() && n.PhraseID == "" {
			errs = append(errs, fmt.Sprintf("node %q has options but no phrase", n.ID))
		}
		if n.PhraseID != "" && !phraseIDs[n.PhraseID] {
			errs = append(errs, fmt.Sprintf("node %q references nonexistent phrase %q", n.ID, n.PhraseID))
		}
	}

	// Check every node is reachable from the start node.
	if nodeIDs[l.StartNodeID] {
		reached := make(map[string]bool, len(l.Nodes))
		queue := []string{l.StartNodeID}
		reached[l.StartNodeID] = true
		byID := make(map[string]*Node, len(l.Nodes))
		for i := range l.Nodes {
			byID[l.Nodes[i].ID] = &l.Nodes[i]
		}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			n := byID[id]
			if n == nil {
				continue
			}
			for _, opt := range n.Options {
				if !reached[opt.NextNodeID] && byID[opt.NextNodeID] != nil {
					reached[opt.NextNodeID] = true
					queue = append(queue, opt.NextNodeID)
				}
			}
		}
		for _, n := range l.Nodes {
			if !reached[n.ID] {
				errs = append(errs, fmt.Sprintf("node %q is unreachable from start node %q", n.ID, l.StartNodeID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("lesson %q validation failed:\n  %s", l.ID, strings.Join(errs, "\n  "))
	}
	return nil
}
