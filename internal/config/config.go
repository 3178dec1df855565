package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/passguard/internal/corpus"
	"github.com/nao1215/passguard/internal/generator"
	"github.com/nao1215/passguard/internal/i18n"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "passguard"

	// DefaultCorpusSource selects the weak-password list bundled in the binary.
	DefaultCorpusSource = "embedded"

	// DefaultLanguage is the language of finding texts.
	DefaultLanguage = "en"

	// DefaultTimeout bounds a remote corpus download.
	DefaultTimeout = corpus.DefaultHTTPTimeout

	// DefaultConcurrency is the number of passwords checked at once with --file.
	DefaultConcurrency = 4

	// DefaultCount is the number of passwords printed by generate.
	DefaultCount = 1

	// MaxCount caps generate --count.
	MaxCount = 1000

	// MaxLength caps generate --length.
	MaxLength = 4096
)

// Config holds the resolved configuration of one passguard invocation.
// It is built from defaults, then the config file, then the environment,
// then command line flags, each overriding the previous one.
type Config struct {
	// CorpusSource is "embedded", a file path, a file:// URL or an
	// http(s) URL of a zlib-compressed, newline-separated password list.
	CorpusSource string

	// Language is the BCP 47 tag for finding texts ("en", "zh").
	Language string

	// ProxyAddress is an optional SOCKS5 proxy "host:port" for remote corpora.
	ProxyAddress string

	// Timeout bounds a remote corpus download.
	Timeout time.Duration

	// Concurrency is the number of passwords checked at once with --file.
	Concurrency int

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is an explicit config file path. When empty the
	// default locations are searched.
	ConfigFilePath string

	// JSONReport and MarkdownReport select the report format. They are
	// mutually exclusive; plain text is used when both are false.
	JSONReport     bool
	MarkdownReport bool

	// ReportFile writes the report to a file instead of stdout.
	ReportFile string

	// FailOnError makes check exit non-zero when any error finding exists.
	FailOnError bool

	// Generate holds the default password generation options.
	Generate generator.Options

	// Count is the number of passwords printed by generate.
	Count int
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		CorpusSource: DefaultCorpusSource,
		Language:     DefaultLanguage,
		Timeout:      DefaultTimeout,
		Concurrency:  DefaultConcurrency,
		Generate:     generator.DefaultOptions(),
		Count:        DefaultCount,
	}
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if _, err := i18n.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLanguage, err)
	}
	if c.Count <= 0 || c.Count > MaxCount {
		return ErrInvalidCount
	}
	if c.Generate.Length > MaxLength {
		return ErrInvalidLength
	}
	return nil
}

// LanguageTag returns the matched supported language, English when
// Language cannot be parsed.
func (c *Config) LanguageTag() language.Tag {
	tag, err := i18n.ParseLanguage(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// CorpusSourceOf builds the corpus Source described by the configuration.
func (c *Config) CorpusSourceOf() (corpus.Source, error) {
	src, err := corpus.ParseSource(c.CorpusSource,
		corpus.WithTimeout(c.Timeout),
		corpus.WithProxy(c.ProxyAddress),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid corpus source: %w", err)
	}
	return src, nil
}

// XDGConfigDir returns the XDG config directory for passguard,
// e.g. ~/.config/passguard on Linux.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the config file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}
