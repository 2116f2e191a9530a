// Package cmd holds the adhdflow command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adhdflow",
	Short: "ADHD self-assessment quiz with personalized strategies",
	Long: "ADHD Flow walks you through a short self-assessment, scores it on the " +
		"inattentive and hyperactive-impulsive axes and suggests strategies that fit " +
		"your profile. It is a self-reflection tool, not a clinical diagnosis.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADHDFLOW_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a YAML question bank (overrides ADHDFLOW_BANK env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides ADHDFLOW_LOG_LEVEL)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(tipsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
