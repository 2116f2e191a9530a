package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/log/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/adhdflow/adhdflow/internal/advice"
	"github.com/adhdflow/adhdflow/internal/llm"
	"github.com/adhdflow/adhdflow/internal/logging"
	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/report"
	"github.com/adhdflow/adhdflow/internal/session"
	"github.com/adhdflow/adhdflow/internal/store"
)

// resolveDBPath returns the configured database path, falling back to the
// XDG data directory.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	v, err := settings(cmd)
	if err != nil {
		return "", err
	}
	if p := v.GetString(keyDB); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	return openStoreAt(dbPath)
}

func openStoreAt(dbPath string) (*store.Store, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openSession loads the persisted quiz session. Completed quizzes are
// recorded in the event log.
func openSession(ctx context.Context, st *store.Store) (*session.Store, error) {
	sess, err := session.Open(ctx, st.StateRepo(), session.WithRecorder(st.EventRepo()))
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return sess, nil
}

// loadBank returns the configured question bank, or the embedded default.
func loadBank(cmd *cobra.Command) (*quiz.Bank, error) {
	v, err := settings(cmd)
	if err != nil {
		return nil, err
	}
	if p := v.GetString(keyBank); p != "" {
		return quiz.LoadBankFile(p)
	}
	return quiz.DefaultBank()
}

// newLogger builds a logger on w at the configured level.
func newLogger(cmd *cobra.Command, w io.Writer) (*log.Logger, error) {
	v, err := settings(cmd)
	if err != nil {
		return nil, err
	}
	return logging.New(w, v.GetString(keyLogLevel))
}

// newAdviceClient builds the advice client from the LLM environment. When no
// provider is configured the client is returned unready together with the
// reason, so callers can decide whether that is fatal.
func newAdviceClient(ctx context.Context, events store.EventRepo, logger *log.Logger) (*advice.Client, llm.Config, error) {
	provider, cfg, err := llm.NewProviderFromEnv(ctx, events, logger)
	if err != nil {
		return advice.NewClient(nil, advice.DefaultConfig()), cfg, err
	}
	return advice.NewClient(provider, advice.DefaultConfig()), cfg, nil
}

// adviceContext applies the configured request timeout.
func adviceContext(ctx context.Context, cfg llm.Config) (context.Context, context.CancelFunc) {
	if cfg.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// renderer styles output only for terminals that accept color.
func renderer(w io.Writer) report.Renderer {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return report.Renderer{}
	}
	return report.Renderer{Styled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
