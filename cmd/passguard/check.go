package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nao1215/passguard/internal/audit"
	"github.com/nao1215/passguard/internal/checker"
	"github.com/nao1215/passguard/internal/config"
	"github.com/nao1215/passguard/internal/corpus"
	"github.com/nao1215/passguard/internal/model"
	"github.com/nao1215/passguard/internal/report"
	"github.com/spf13/cobra"
)

var (
	// errWeakPassword is returned with --fail-on-error when a password has
	// at least one error finding.
	errWeakPassword = errors.New("weak password found")

	// errNoPassword is returned when stdin ends before a password is read.
	errNoPassword = errors.New("no password given: pass it as an argument, on stdin, or use --file")

	// errConflictingInputs is returned when more than one input is selected.
	errConflictingInputs = errors.New("conflicting inputs: use only one of [password], --stdin and --file")
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Check passwords against weak-password rules",
		Long: `Check reports why a password is weak:
- it appears in the weak password list (with its rank)
- it is shorter than 8 characters
- it consists of digits only
- it consists of lowercase or uppercase letters only
- it combines a single letter case with digits (warning)

Reports never contain the password itself, only a label and a short
SHA3 fingerprint.

Examples:
  # Read one password from stdin (keeps it out of shell history)
  passguard check

  # Check a password given as an argument
  passguard check 'correct horse battery staple'

  # Audit a list, one password per line, as Markdown
  passguard check --file passwords.txt --markdown -o report.md

  # Fail a CI job when any password has an error finding
  passguard check --file passwords.txt --fail-on-error

  # Use a custom weak password list and Chinese finding texts
  passguard check --corpus ./weak.bin --lang zh`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	cmd.Flags().Bool("stdin", false,
		"Read one password from stdin (default when no password or --file is given)")
	cmd.Flags().StringP("file", "f", "",
		`Check every line of a file ("-" for stdin)`)
	cmd.Flags().String("corpus", config.DefaultCorpusSource,
		"Weak password list: embedded, a file path, or an http(s) URL")
	cmd.Flags().String("proxy", "",
		"SOCKS5 proxy (host:port) used to download a remote corpus")
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"Download timeout for a remote corpus")
	cmd.Flags().String("lang", config.DefaultLanguage,
		"Language of finding texts (en, zh)")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of passwords checked at once with --file")
	cmd.Flags().Bool("fail-on-error", false,
		"Exit with status 1 when any password has an error finding")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildCheckConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entries, err := readCheckInput(cmd, args, logger)
	if err != nil {
		return err
	}

	reports, err := runCheck(ctx, cfg, entries, logger)
	if err != nil {
		return err
	}

	if err := writeReports(cmd, cfg, reports); err != nil {
		return err
	}

	if cfg.FailOnError && model.Summarize(reports).Errors > 0 {
		return errWeakPassword
	}
	return nil
}

// buildCheckConfig layers the check flags over file and environment settings.
func buildCheckConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	s := &flagSetter{cmd: cmd}
	s.setString("corpus", &cfg.CorpusSource)
	s.setString("proxy", &cfg.ProxyAddress)
	s.setDuration("timeout", &cfg.Timeout)
	s.setString("lang", &cfg.Language)
	s.setInt("concurrency", &cfg.Concurrency)
	s.setBool("fail-on-error", &cfg.FailOnError)
	s.setBool("json", &cfg.JSONReport)
	s.setBool("markdown", &cfg.MarkdownReport)
	s.setString("output", &cfg.ReportFile)
	if s.err != nil {
		return nil, s.err
	}

	// an explicit format flag replaces the format from the config file
	if cmd.Flags().Changed("json") && cfg.JSONReport {
		cfg.MarkdownReport = cmd.Flags().Changed("markdown") && cfg.MarkdownReport
	}
	if cmd.Flags().Changed("markdown") && cfg.MarkdownReport {
		cfg.JSONReport = cmd.Flags().Changed("json") && cfg.JSONReport
	}

	return cfg, nil
}

// readCheckInput collects the passwords to check from exactly one input.
func readCheckInput(cmd *cobra.Command, args []string, logger *slog.Logger) ([]audit.Entry, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	useStdin, err := cmd.Flags().GetBool("stdin")
	if err != nil {
		return nil, err
	}

	inputs := 0
	for _, selected := range []bool{len(args) > 0, useStdin, file != ""} {
		if selected {
			inputs++
		}
	}
	if inputs > 1 {
		return nil, errConflictingInputs
	}

	switch {
	case file == "-":
		return audit.ReadEntries(cmd.InOrStdin())
	case file != "":
		f, err := os.Open(file) //nolint:gosec // user-provided list path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open password list: %w", err)
		}
		defer f.Close()
		return audit.ReadEntries(f)
	case len(args) > 0:
		logger.Info("password given as an argument may be kept in shell history; prefer stdin")
		return []audit.Entry{{Label: "argument", Password: args[0]}}, nil
	default:
		password, err := readLine(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return []audit.Entry{{Label: "stdin", Password: password}}, nil
	}
}

// readLine reads a single password line without its line terminator.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", errNoPassword
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// runCheck loads the corpus, waits for it, and checks every entry.
func runCheck(ctx context.Context, cfg *config.Config, entries []audit.Entry, logger *slog.Logger) ([]*model.CheckReport, error) {
	src, err := cfg.CorpusSourceOf()
	if err != nil {
		return nil, err
	}

	weak := corpus.New()
	// a failed load is logged by LoadAsync and leaves the corpus empty
	_ = <-weak.LoadAsync(ctx, src, logger)

	chk := checker.New(weak, checker.WithLanguage(cfg.LanguageTag()))

	if len(entries) == 1 {
		return []*model.CheckReport{chk.Report(entries[0].Label, entries[0].Password)}, nil
	}

	batch := audit.NewBatchChecker(chk,
		audit.WithConcurrency(cfg.Concurrency),
		audit.WithBatchLogger(logger),
	)
	return batch.CheckBatch(ctx, entries)
}

// writeReports renders reports in the configured format and destination.
func writeReports(cmd *cobra.Command, cfg *config.Config, reports []*model.CheckReport) error {
	out, closeOut, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(out)
	default:
		w = report.NewSimpleWriter(out,
			report.WithVerbose(cfg.Verbose),
			report.WithSummary(len(reports) > 1),
		)
	}

	if _, err := w.Write(reports); err != nil {
		_ = closeOut() //nolint:errcheck // the write error is more relevant
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeOut()
}
