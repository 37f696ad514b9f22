package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/awasilew/mowa/internal/dialogue"
	"github.com/awasilew/mowa/internal/feedback"
	"github.com/awasilew/mowa/internal/practice"
	"github.com/awasilew/mowa/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [lesson-id]",
	Short: "Start a guided practice session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPractice,
}

func init() {
	practiceCmd.Flags().Bool("review", false, "Drill the phrases due for review instead of a lesson")
}

// reviewDrillLimit caps how many due phrases one review session drills.
const reviewDrillLimit = 50

func runPractice(cmd *cobra.Command, args []string) error {
	lessons, err := loadLessons(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	user := userFlag(cmd)

	var lesson *dialogue.Lesson
	if review, _ := cmd.Flags().GetBool("review"); review {
		lesson, err = buildReviewDrill(cmd, st, lessons)
		if err != nil {
			return err
		}
		if len(lesson.Phrases) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing due for review. Świetnie!")
			return nil
		}
	} else {
		lessonID := ""
		if len(args) > 0 {
			lessonID = args[0]
		}
		lesson, err = findLesson(lessons, lessonID)
		if err != nil {
			return err
		}
	}
	engine := practice.NewEngine(st)
	session := practice.NewSession(user, lesson, time.Now())
	slog.Debug("session started", "session", session.SessionID, "lesson", lesson.ID, "user", user)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "— %s —\n\n", lesson.Title)

	scanner := bufio.NewScanner(os.Stdin)
	for !session.Done() {
		node := session.CurrentNode()
		fmt.Fprintf(out, "Tutor: %s\n> ", node.TutorText)

		if !scanner.Scan() {
			fmt.Fprintln(out, "\nSession interrupted.")
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		res, err := engine.HandleTurn(ctx, session, practice.TurnInput{
			RawText: text,
			Today:   time.Now(),
		})
		if err != nil {
			return fmt.Errorf("process turn: %w", err)
		}
		printFeedback(out, res)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	result, err := engine.FinalizeSession(ctx, session, time.Now())
	if err != nil {
		return fmt.Errorf("finalize session: %w", err)
	}
	printSummary(out, result)
	return nil
}

// buildReviewDrill assembles a linear drill over the phrases due today,
// resolving phrase content from the loaded lessons. Due phrases whose
// lesson is no longer available are skipped with a warning.
func buildReviewDrill(cmd *cobra.Command, st *store.Store, lessons []*dialogue.Lesson) (*dialogue.Lesson, error) {
	user := userFlag(cmd)
	due, err := st.DueRecords(cmd.Context(), user, time.Now(), reviewDrillLimit)
	if err != nil {
		return nil, fmt.Errorf("load due reviews: %w", err)
	}

	var phrases []dialogue.Phrase
	for _, rec := range due {
		found := false
		for _, l := range lessons {
			if p := l.Phrase(rec.PhraseID); p != nil {
				phrases = append(phrases, *p)
				found = true
				break
			}
		}
		if !found {
			slog.Warn("due phrase not in any loaded lesson", "phrase", rec.PhraseID)
		}
	}
	return dialogue.Drill("review", "Powtórka (Review)", phrases), nil
}

func printFeedback(out io.Writer, res *practice.TurnResult) {
	switch res.Tier {
	case feedback.TierHigh:
		fmt.Fprintf(out, "  ✓ Great! (+%d XP)\n\n", res.TurnXP)
	case feedback.TierMedium:
		fmt.Fprintf(out, "  ~ Close. (score %.2f, +%d XP)\n\n", res.Score, res.TurnXP)
	default:
		fmt.Fprintf(out, "  ✗ Not quite. (+%d XP)\n", res.TurnXP)
		if res.Reveal {
			fmt.Fprintf(out, "  The phrase was: %q\n", res.RevealAnswer)
		}
		fmt.Fprintln(out)
	}
	if res.SrsRecord != nil {
		slog.Debug("scheduled review",
			"phrase", res.SrsRecord.PhraseID,
			"ease", res.SrsRecord.EaseFactor,
			"interval_days", res.SrsRecord.IntervalDays)
	}
}

func printSummary(out io.Writer, result *practice.SessionResult) {
	t := result.Totals
	fmt.Fprintln(out, "Session complete!")
	fmt.Fprintf(out, "  XP from phrases: %d\n", t.XPFromPhrases)
	if t.XPStreakBonus > 0 {
		fmt.Fprintf(out, "  Streak bonus:    %d\n", t.XPStreakBonus)
	}
	fmt.Fprintf(out, "  Total XP:        %d\n", t.TotalXP)
	fmt.Fprintf(out, "  Daily streak:    %d\n", t.StreakAfter)
	if t.PerfectDay {
		fmt.Fprintln(out, "  Perfect session!")
	}
	for _, code := range result.UnlockedBadges {
		fmt.Fprintf(out, "  🏅 Badge unlocked: %s\n", code)
	}
}
