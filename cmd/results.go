package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/adhdflow/adhdflow/internal/session"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the results of the saved assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := openSession(cmd.Context(), st)
		if err != nil {
			return err
		}
		return printSummary(cmd.OutOrStdout(), sess.Snapshot(), asJSON)
	},
}

type summaryJSON struct {
	FirstName   string `json:"firstName,omitempty"`
	AnswerCount int    `json:"answerCount"`
	DurationSec int64  `json:"durationSeconds"`
	Results     any    `json:"results"`
}

func printSummary(w io.Writer, s session.State, asJSON bool) error {
	sum, err := session.BuildSummary(s)
	if errors.Is(err, session.ErrNoResults) {
		if asJSON {
			return errors.New("no completed assessment; run adhdflow to take it")
		}
		_, err := fmt.Fprintln(w, "No completed assessment yet. Run adhdflow to take it.")
		return err
	}
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(w, summaryJSON{
			FirstName:   sum.FirstName,
			AnswerCount: sum.AnswerCount,
			DurationSec: int64(sum.Duration.Seconds()),
			Results:     sum.Results,
		})
	}

	if err := writeResults(w, sum.Results, sum.FirstName, false); err != nil {
		return err
	}
	line := fmt.Sprintf("\n%d answers", sum.AnswerCount)
	if sum.Duration > 0 {
		line += fmt.Sprintf(", completed in %s", sum.Duration.Round(time.Second))
	}
	_, err = fmt.Fprintln(w, line)
	return err
}

func init() {
	resultsCmd.Flags().Bool("json", false, "Print results as JSON")
}
