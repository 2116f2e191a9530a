package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adhdflow/adhdflow/internal/app"
	"github.com/adhdflow/adhdflow/internal/logging"
	"github.com/adhdflow/adhdflow/internal/screen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file next to the database.
	logFile, err := logging.OpenFile(filepath.Dir(dbPath))
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(cmd, logFile)
	if err != nil {
		return err
	}

	bank, err := loadBank(cmd)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	st, err := openStoreAt(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	sess, err := openSession(ctx, st)
	if err != nil {
		return err
	}

	events := st.EventRepo()
	client, cfg, err := newAdviceClient(ctx, events, logger)
	if err != nil {
		logger.Warn("advice unavailable", "err", err)
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Personalized strategies will be unavailable.")
	}

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Services: &screen.Services{
			Session:       sess,
			Bank:          bank,
			Advice:        client,
			Events:        events,
			Logger:        logger,
			AdviceTimeout: cfg.Timeout,
		},
		SkipSplash: skipSplash,
	})
}
