package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/passguard/internal/config"
	seclog "github.com/nao1215/passguard/internal/log"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getConfigFlag retrieves the config path from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// loadConfig resolves defaults, config file and environment. Command
// specific flags are applied by the caller.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(getConfigFlag(cmd), config.DefaultDotenvFile)
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// setupLogger creates a logger on the command's stderr that masks
// password material.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		format, _ = cmd.Root().PersistentFlags().GetString("log-format") //nolint:errcheck // falls back to text
	}
	if format == "json" {
		return seclog.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return seclog.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// flagSetter copies a changed flag into the configuration.
type flagSetter struct {
	cmd *cobra.Command
	err error
}

func (s *flagSetter) setString(name string, dst *string) {
	if s.err != nil || !s.cmd.Flags().Changed(name) {
		return
	}
	*dst, s.err = s.cmd.Flags().GetString(name)
}

func (s *flagSetter) setBool(name string, dst *bool) {
	if s.err != nil || !s.cmd.Flags().Changed(name) {
		return
	}
	*dst, s.err = s.cmd.Flags().GetBool(name)
}

func (s *flagSetter) setInt(name string, dst *int) {
	if s.err != nil || !s.cmd.Flags().Changed(name) {
		return
	}
	*dst, s.err = s.cmd.Flags().GetInt(name)
}

func (s *flagSetter) setDuration(name string, dst *time.Duration) {
	if s.err != nil || !s.cmd.Flags().Changed(name) {
		return
	}
	*dst, s.err = s.cmd.Flags().GetDuration(name)
}

// openOutput returns the report destination: path, or the command's stdout
// when path is empty. Report files are created with owner-only permissions.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:gosec // user-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
