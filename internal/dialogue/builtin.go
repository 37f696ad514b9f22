package dialogue

import "unicode/utf8"

// Builtin returns the bundled café lesson so the tool works with no lesson
// packs on disk. It passes the same validation as loaded packs; see
// TestBuiltinIsValid.
func Builtin() *Lesson {
	lesson := &Lesson{
		ID:          "kawiarnia",
		Title:       "W kawiarni (At the café)",
		StartNodeID: "greet",
		Phrases: []Phrase{
			{ID: "p-greet", Text: "dzień dobry", ExpectedAnswers: []string{"dzień dobry", "dobry wieczór"}},
			{ID: "p-order", Text: "kawę poproszę", ExpectedAnswers: []string{"kawę", "kawę poproszę", "herbatę", "herbatę poproszę"}},
			{ID: "p-milk", Text: "z mlekiem", ExpectedAnswers: []string{"z mlekiem", "bez mleka", "tak", "nie"}},
			{ID: "p-thanks", Text: "dziękuję", ExpectedAnswers: []string{"dziękuję", "dziękuję bardzo"}},
		},
		Nodes: []Node{
			{
				ID:        "greet",
				TutorText: "Dzień dobry! Witamy w kawiarni. (Say hello.)",
				PhraseID:  "p-greet",
				Options: []Option{
					{MatchText: "dzień dobry", NextNodeID: "order", IsDefault: true},
				},
			},
			{
				ID:        "order",
				TutorText: "Co podać? Kawę czy herbatę? (Order a drink.)",
				PhraseID:  "p-order",
				Options: []Option{
					{MatchText: "kawę", NextNodeID: "milk"},
					{MatchText: "kawę poproszę", NextNodeID: "milk"},
					{MatchText: "herbatę", NextNodeID: "thanks"},
					{MatchText: "herbatę poproszę", NextNodeID: "thanks", IsDefault: true},
				},
			},
			{
				ID:        "milk",
				TutorText: "Z mlekiem? (With milk?)",
				PhraseID:  "p-milk",
				Options: []Option{
					{MatchText: "z mlekiem", NextNodeID: "thanks"},
					{MatchText: "bez mleka", NextNodeID: "thanks", IsDefault: true},
				},
			},
			{
				ID:        "thanks",
				TutorText: "Proszę bardzo! (Say thank you.)",
				PhraseID:  "p-thanks",
				Options: []Option{
					{MatchText: "dziękuję", NextNodeID: "end", IsDefault: true},
				},
			},
			{
				ID:        "end",
				TutorText: "Do widzenia! Świetna rozmowa.",
			},
		},
	}

	for i := range lesson.Phrases {
		lesson.Phrases[i].Length = utf8.RuneCountInString(lesson.Phrases[i].Text)
	}
	lesson.index()
	return lesson
}
