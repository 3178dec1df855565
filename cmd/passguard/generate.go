package main

import (
	"fmt"

	"github.com/nao1215/passguard/internal/config"
	"github.com/nao1215/passguard/internal/generator"
	"github.com/spf13/cobra"
)

// localizedError shows a translated message while keeping the sentinel
// error available to errors.Is.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	defaults := generator.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generate prints random passwords built from the selected character classes:
lowercase letters, uppercase letters, digits and the special characters
"@#$%*&~.". Every selected class appears at least once. Special characters
are drawn less often than letters and digits.

The randomness is not cryptographically secure.

Examples:
  # One 16 character password with every class
  passguard generate

  # Five 24 character passwords without special characters
  passguard generate -l 24 --special=false -n 5

  # Avoid look-alike characters
  passguard generate -i "0O1lI"`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().IntP("length", "l", defaults.Length, "Password length")
	cmd.Flags().Bool("lowercase", defaults.Lowercase, "Include lowercase letters")
	cmd.Flags().Bool("uppercase", defaults.Uppercase, "Include uppercase letters")
	cmd.Flags().Bool("numbers", defaults.Numbers, "Include digits")
	cmd.Flags().Bool("special", defaults.Special, `Include special characters "@#$%*&~."`)
	cmd.Flags().StringP("ignore", "i", "", "Characters that must not appear")
	cmd.Flags().IntP("count", "n", config.DefaultCount, "Number of passwords to generate")
	cmd.Flags().String("lang", config.DefaultLanguage, "Language of error messages (en, zh)")

	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s := &flagSetter{cmd: cmd}
	s.setInt("length", &cfg.Generate.Length)
	s.setBool("lowercase", &cfg.Generate.Lowercase)
	s.setBool("uppercase", &cfg.Generate.Uppercase)
	s.setBool("numbers", &cfg.Generate.Numbers)
	s.setBool("special", &cfg.Generate.Special)
	s.setString("ignore", &cfg.Generate.Ignore)
	s.setInt("count", &cfg.Count)
	s.setString("lang", &cfg.Language)
	if s.err != nil {
		return s.err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	gen := generator.New()
	out := cmd.OutOrStdout()

	for range cfg.Count {
		password, err := gen.Generate(cfg.Generate)
		if err != nil {
			return &localizedError{msg: generator.Describe(err, cfg.LanguageTag()), err: err}
		}
		fmt.Fprintln(out, password)
	}

	logger.Debug("passwords generated",
		"count", cfg.Count,
		"length", cfg.Generate.Length,
	)
	return nil
}
