package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/adhdflow/adhdflow/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		bank, err := loadBank(cmd)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		return printBank(cmd.OutOrStdout(), bank, asJSON)
	},
}

func printBank(w io.Writer, bank *quiz.Bank, asJSON bool) error {
	if asJSON {
		return writeJSON(w, bank)
	}

	fmt.Fprintf(w, "%d questions (max inattentive %d, hyperactive %d, both %d)\n\n",
		bank.Len(), bank.AxisMax.Inattentive, bank.AxisMax.Hyperactive, bank.AxisMax.Combined)
	for _, q := range bank.Questions {
		fmt.Fprintf(w, "%2d. [%s] %s\n", q.ID, q.Type, q.Text)
		for _, o := range q.Options {
			fmt.Fprintf(w, "      %-14s %d  %s\n", o.ID, o.Value, o.Text)
		}
	}
	return nil
}

func init() {
	questionsCmd.Flags().Bool("json", false, "Print the bank as JSON")
}
