package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings shared by every command. Each can come from its flag, an
// ADHDFLOW_* variable or config.yaml, in that order.
const (
	keyDB       = "db"
	keyBank     = "bank"
	keyLogLevel = "log-level"
)

// configDir is $XDG_CONFIG_HOME/adhdflow, or ~/.config/adhdflow.
func configDir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "adhdflow")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "adhdflow")
}

// settings layers cmd's flags over the environment and the optional config
// file. A fresh instance is built per call so repeated executions of the
// root command in one process never see stale values.
func settings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("ADHDFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, k := range []string{keyDB, keyBank, keyLogLevel} {
		if f := cmd.Flags().Lookup(k); f != nil {
			if err := v.BindPFlag(k, f); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", k, err)
			}
		}
	}

	if dir := configDir(); dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}
