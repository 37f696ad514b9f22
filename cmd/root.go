package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/awasilew/mowa/internal/dialogue"
	"github.com/awasilew/mowa/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mowa",
	Short: "Conversational language practice in the terminal",
	Long:  "Mowa — terminal tutor that drills spoken phrases through guided dialogues, with spaced-repetition review and streak rewards.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MOWA_DB env var)")
	rootCmd.PersistentFlags().String("user", "learner", "Learner profile name")
	rootCmd.PersistentFlags().String("packs", "", "Directory of lesson pack JSON files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// initLogger installs the process-wide slog logger. Debug level with
// --verbose, warnings only otherwise so session output stays clean.
func initLogger(cmd *cobra.Command) {
	level := slog.LevelWarn
	if ok, _ := cmd.Flags().GetBool("verbose"); ok {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MOWA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the resolved database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	slog.Debug("opening store", "path", dbPath)
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadLessons returns the bundled lesson plus everything in the --packs
// directory, later packs first so they can be found by ID before the
// builtin.
func loadLessons(cmd *cobra.Command) ([]*dialogue.Lesson, error) {
	lessons := []*dialogue.Lesson{}
	if dir, _ := cmd.Flags().GetString("packs"); dir != "" {
		loaded, err := dialogue.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("load lesson packs: %w", err)
		}
		slog.Debug("loaded lesson packs", "dir", dir, "count", len(loaded))
		lessons = append(lessons, loaded...)
	}
	return append(lessons, dialogue.Builtin()), nil
}

// findLesson picks a lesson by ID, or the first available when id is empty.
func findLesson(lessons []*dialogue.Lesson, id string) (*dialogue.Lesson, error) {
	if id == "" {
		return lessons[0], nil
	}
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no lesson with ID %q (try 'mowa lessons')", id)
}

func userFlag(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}
