package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// dueListLimit caps the review queue shown by stats.
const dueListLimit = 20

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		user := userFlag(cmd)
		out := cmd.OutOrStdout()

		us, err := st.GetUserStats(ctx, user)
		if err != nil {
			return err
		}
		if us == nil {
			fmt.Fprintf(out, "No practice history for %q yet. Run 'mowa practice' to start.\n", user)
			return nil
		}

		fmt.Fprintf(out, "Stats for %s\n", user)
		fmt.Fprintf(out, "  Total XP:      %d\n", us.TotalXP)
		fmt.Fprintf(out, "  Daily streak:  %d\n", us.Streak)
		fmt.Fprintf(out, "  Sessions:      %d\n", us.TotalSessions)
		if !us.LastPracticeDay.IsZero() {
			fmt.Fprintf(out, "  Last practice: %s\n", us.LastPracticeDay.Format("2006-01-02"))
		}

		today := time.Now()
		due, err := st.DueRecords(ctx, user, today, dueListLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nDue for review: %d\n", len(due))
		for _, rec := range due {
			overdue := ""
			if d := rec.OverdueDays(today); d > 0 {
				overdue = fmt.Sprintf(" (%d days overdue)", d)
			}
			fmt.Fprintf(out, "  %s  ease %.2f%s\n", rec.PhraseID, rec.EaseFactor, overdue)
		}

		unlocks, err := st.UnlockedCodesOrdered(ctx, user)
		if err != nil {
			return err
		}
		if len(unlocks) > 0 {
			fmt.Fprintln(out, "\nBadges:")
			for _, u := range unlocks {
				fmt.Fprintf(out, "  %s  (%s)\n", u.BadgeCode, u.UnlockedAt.Format("2006-01-02"))
			}
		}
		return nil
	},
}
