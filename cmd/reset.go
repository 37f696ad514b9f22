package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's history, reviews, badges, and stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := userFlag(cmd)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete ALL data for %q? This cannot be undone. [y/N] ", user)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ResetUser(cmd.Context(), user); err != nil {
			return fmt.Errorf("reset user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Data for %q deleted.\n", user)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
