package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adhdflow/adhdflow/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryResults(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		w := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(w, events)
		}
		_, err = fmt.Fprintln(w, renderer(w).History(events, time.Now()))
		return err
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
	historyCmd.Flags().Bool("json", false, "Print assessments as JSON")
}
