package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adhdflow/adhdflow/internal/quiz"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file|-]",
	Short: "Score a JSON array of answers without touching saved state",
	Long: "Reads a JSON array of answers ({questionId, optionId, value, type}) from a " +
		"file or standard input and prints the computed results. Answers to questions " +
		"in the bank take their value and axis from the bank.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		bank, err := loadBank(cmd)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open answers: %w", err)
			}
			defer f.Close()
			in = f
		}

		res, err := scoreAnswers(bank, in)
		if err != nil {
			return err
		}
		return writeResults(cmd.OutOrStdout(), res, "", asJSON)
	},
}

// scoreAnswers decodes answers from r and scores them against bank.
func scoreAnswers(bank *quiz.Bank, r io.Reader) (quiz.Results, error) {
	var answers []quiz.Answer
	if err := json.NewDecoder(r).Decode(&answers); err != nil {
		return quiz.Results{}, fmt.Errorf("decode answers: %w", err)
	}
	return bank.Compute(resolveAnswers(bank, answers)), nil
}

// resolveAnswers fills value and axis from the bank for known options.
// Answers the bank does not know are scored as given.
func resolveAnswers(bank *quiz.Bank, answers []quiz.Answer) []quiz.Answer {
	out := make([]quiz.Answer, len(answers))
	for i, a := range answers {
		out[i] = a
		q, err := bank.Question(a.QuestionID)
		if err != nil {
			continue
		}
		out[i].Type = q.Type
		for _, o := range q.Options {
			if o.ID == a.OptionID {
				out[i].Value = o.Value
				break
			}
		}
	}
	return out
}

// writeResults prints res as indented JSON or as the rendered result card.
func writeResults(w io.Writer, res quiz.Results, name string, asJSON bool) error {
	if asJSON {
		return writeJSON(w, res)
	}
	_, err := fmt.Fprintln(w, renderer(w).Results(res, name))
	return err
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print results as JSON")
}
