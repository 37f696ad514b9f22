package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List available lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessons, err := loadLessons(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, l := range lessons {
			fmt.Fprintf(out, "%-16s %s (%d nodes, %d phrases)\n",
				l.ID, l.Title, len(l.Nodes), len(l.Phrases))
		}
		return nil
	},
}
