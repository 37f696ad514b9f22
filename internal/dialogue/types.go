// Package dialogue holds the lesson content model: phrases, dialogue nodes,
// and the branch resolver that walks a learner through a lesson graph.
package dialogue

// Phrase is an immutable content unit the learner is asked to produce.
// Length is the character (rune) count of Text, used by the feedback
// classifier's length-adjusted threshold.
type Phrase struct {
	ID              string
	Text            string
	ExpectedAnswers []string
	Length          int
}

// Option is one branch candidate on a dialogue node. Options are evaluated
// in declaration order; exactly one option per non-terminal node must be the
// default.
type Option struct {
	MatchText  string
	NextNodeID string
	IsDefault  bool
}

// Node is one tutor turn in a lesson graph. PhraseID names the phrase the
// learner should answer with; a node with no options is terminal and ends
// the lesson.
type Node struct {
	ID        string
	TutorText string
	PhraseID  string
	Options   []Option
}

// IsTerminal reports whether the node ends the lesson.
func (n *Node) IsTerminal() bool {
	return len(n.Options) == 0
}

// Lesson is a validated dialogue graph plus its phrase set.
type Lesson struct {
	ID          string
	Title       string
	StartNodeID string
	Nodes       []Node
	Phrases     []Phrase

	nodesByID   map[string]*Node
	phrasesByID map[string]*Phrase
}

// index builds the lookup maps. Called by the loader after validation.
func (l *Lesson) index() {
	l.nodesByID = make(map[string]*Node, len(l.Nodes))
	for i := range l.Nodes {
		l.nodesByID[l.Nodes[i].ID] = &l.Nodes[i]
	}
	l.phrasesByID = make(map[string]*Phrase, len(l.Phrases))
	for i := range l.Phrases {
		l.phrasesByID[l.Phrases[i].ID] = &l.Phrases[i]
	}
}

// Node returns the node with the given ID, or nil if absent.
func (l *Lesson) Node(id string) *Node {
	if l.nodesByID == nil {
		l.index()
	}
	return l.nodesByID[id]
}

// Phrase returns the phrase with the given ID, or nil if absent.
func (l *Lesson) Phrase(id string) *Phrase {
	if l.phrasesByID == nil {
		l.index()
	}
	return l.phrasesByID[id]
}
