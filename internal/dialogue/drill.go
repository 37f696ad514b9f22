package dialogue

// Drill builds a linear lesson over the given phrases: one node per phrase
// in order, each falling through to the next, closed by a terminal node.
// Used for review sessions, where the phrase set comes from the due queue
// rather than an authored graph.
func Drill(id, title string, phrases []Phrase) *Lesson {
	lesson := &Lesson{
		ID:          id,
		Title:       title,
		StartNodeID: "end",
		Phrases:     phrases,
	}

	for i, p := range phrases {
		next := "end"
		if i+1 < len(phrases) {
			next = phrases[i+1].ID
		}
		lesson.Nodes = append(lesson.Nodes, Node{
			ID:        p.ID,
			TutorText: "Powtórz: " + p.Text,
			PhraseID:  p.ID,
			Options: []Option{
				{MatchText: p.Text, NextNodeID: next, IsDefault: true},
			},
		})
	}
	lesson.Nodes = append(lesson.Nodes, Node{ID: "end", TutorText: "Powtórka skończona."})

	if len(phrases) > 0 {
		lesson.StartNodeID = phrases[0].ID
	}
	lesson.index()
	return lesson
}
