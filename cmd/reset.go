package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard saved answers, contact details and results",
	Long:  "Clears the in-progress assessment. Completed assessments stay in history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := openSession(cmd.Context(), st)
		if err != nil {
			return err
		}
		if err := sess.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Assessment reset.")
		return nil
	},
}
