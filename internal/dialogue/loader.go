package dialogue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Wire format for lesson pack files.
type packFile struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	StartNodeID string       `json:"start_node_id"`
	Phrases     []packPhrase `json:"phrases"`
	Nodes       []packNode   `json:"nodes"`
}

type packPhrase struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	ExpectedAnswers []string `json:"expected_answers"`
}

type packNode struct {
	ID        string       `json:"id"`
	TutorText string       `json:"tutor_text"`
	PhraseID  string       `json:"phrase_id"`
	Options   []packOption `json:"options"`
}

type packOption struct {
	MatchText  string `json:"match_text"`
	NextNodeID string `json:"next_node_id"`
	IsDefault  bool   `json:"is_default"`
}

// Load reads, schema-checks, and structurally validates one lesson pack
// file. Any failure is a configuration error in the lesson content.
func Load(path string) (*Lesson, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson pack: %w", err)
	}

	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("lesson pack %s: %w", path, err)
	}

	var pack packFile
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("decode lesson pack %s: %w", path, err)
	}

	lesson := buildLesson(&pack)
	if err := Validate(lesson); err != nil {
		return nil, err
	}
	lesson.index()
	return lesson, nil
}

// LoadDir loads every .json lesson pack under dir, sorted by file name.
func LoadDir(dir string) ([]*Lesson, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read lesson dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	lessons := make([]*Lesson, 0, len(paths))
	for _, p := range paths {
		lesson, err := Load(p)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

// buildLesson converts the wire format into the domain model, computing
// phrase lengths.
func buildLesson(pack *packFile) *Lesson {
	lesson := &Lesson{
		ID:          pack.ID,
		Title:       pack.Title,
		StartNodeID: pack.StartNodeID,
	}

	for _, p := range pack.Phrases {
		lesson.Phrases = append(lesson.Phrases, Phrase{
			ID:              p.ID,
			Text:            p.Text,
			ExpectedAnswers: p.ExpectedAnswers,
			Length:          utf8.RuneCountInString(p.Text),
		})
	}

	for _, n := range pack.Nodes {
		node := Node{
			ID:        n.ID,
			TutorText: n.TutorText,
			PhraseID:  n.PhraseID,
		}
		for _, o := range n.Options {
			node.Options = append(node.Options, Option{
				MatchText:  o.MatchText,
				NextNodeID: o.NextNodeID,
				IsDefault:  o.IsDefault,
			})
		}
		lesson.Nodes = append(lesson.Nodes, node)
	}

	return lesson
}
