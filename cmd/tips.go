package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/adhdflow/adhdflow/internal/advice"
	"github.com/adhdflow/adhdflow/internal/session"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Generate personalized strategies for the saved results",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if list, _ := cmd.Flags().GetBool("list"); list {
			return listContentTypes(w)
		}

		typeFlag, _ := cmd.Flags().GetString("type")
		ct, err := advice.ParseContentType(typeFlag)
		if err != nil {
			return fmt.Errorf("%w (see adhdflow tips --list)", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		sess, err := openSession(ctx, st)
		if err != nil {
			return err
		}
		res, err := sess.Results()
		if errors.Is(err, session.ErrNoResults) {
			return errors.New("no completed assessment; run adhdflow to take it first")
		}
		if err != nil {
			return err
		}

		logger, err := newLogger(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		client, cfg, err := newAdviceClient(ctx, st.EventRepo(), logger)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		actx, cancel := adviceContext(ctx, cfg)
		defer cancel()
		profile := advice.ProfileFromResults(res)

		var text string
		if plan, _ := cmd.Flags().GetBool("plan"); plan {
			p, err := client.ActionPlan(actx, profile)
			if err != nil {
				logger.Error("generate plan", "err", err)
				return fmt.Errorf("unable to generate an action plan: %w", err)
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(w, p)
			}
			text = p.Markdown()
		} else {
			text, err = client.Generate(actx, profile, ct)
			if err != nil {
				logger.Error("generate advice", "type", ct, "err", err)
				return fmt.Errorf("unable to generate %s content: %w", ct.Label(), err)
			}
		}

		out, err := renderer(w).Markdown(text)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	},
}

func listContentTypes(w io.Writer) error {
	for _, ct := range advice.ContentTypes() {
		if _, err := fmt.Fprintf(w, "%-24s %s\n", ct, ct.Label()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	tipsCmd.Flags().StringP("type", "t", string(advice.DailyTips), "Content type to generate")
	tipsCmd.Flags().Bool("list", false, "List the available content types")
	tipsCmd.Flags().Bool("plan", false, "Generate a structured one-day action plan instead")
	tipsCmd.Flags().Bool("json", false, "With --plan, print the plan as JSON")
}
