package config

import (
	"strings"
	"time"
)

// File is the structure of the .passguard configuration file.
//
// Pointer fields distinguish "not set" from a zero value, so a file that
// only sets `special: false` leaves the other generate defaults alone.
type File struct {
	Check    CheckSection    `yaml:"check,omitempty"`
	Generate GenerateSection `yaml:"generate,omitempty"`
}

// CheckSection configures the check command.
type CheckSection struct {
	// Corpus is a corpus source, see Config.CorpusSource.
	Corpus string `yaml:"corpus,omitempty"`

	// Language is a BCP 47 tag such as "en" or "zh".
	Language string `yaml:"language,omitempty"`

	// Proxy is a SOCKS5 "host:port" used for remote corpora.
	Proxy string `yaml:"proxy,omitempty"`

	// Timeout is a Go duration such as "30s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	Concurrency int `yaml:"concurrency,omitempty"`

	// Format is "text", "json" or "markdown".
	Format string `yaml:"format,omitempty"`

	FailOnError *bool `yaml:"failOnError,omitempty"`
}

// GenerateSection configures the generate command.
type GenerateSection struct {
	Length    *int    `yaml:"length,omitempty"`
	Lowercase *bool   `yaml:"lowercase,omitempty"`
	Uppercase *bool   `yaml:"uppercase,omitempty"`
	Numbers   *bool   `yaml:"numbers,omitempty"`
	Special   *bool   `yaml:"special,omitempty"`
	Ignore    *string `yaml:"ignore,omitempty"`
	Count     *int    `yaml:"count,omitempty"`
}

// ApplyFile overrides c with every value set in f.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}

	chk := f.Check
	if chk.Corpus != "" {
		c.CorpusSource = chk.Corpus
	}
	if chk.Language != "" {
		c.Language = chk.Language
	}
	if chk.Proxy != "" {
		c.ProxyAddress = chk.Proxy
	}
	if chk.Timeout != 0 {
		c.Timeout = chk.Timeout
	}
	if chk.Concurrency != 0 {
		c.Concurrency = chk.Concurrency
	}
	if chk.FailOnError != nil {
		c.FailOnError = *chk.FailOnError
	}
	switch strings.ToLower(chk.Format) {
	case "":
	case "text":
		c.JSONReport, c.MarkdownReport = false, false
	case "json":
		c.JSONReport, c.MarkdownReport = true, false
	case "markdown", "md":
		c.JSONReport, c.MarkdownReport = false, true
	default:
		return ErrInvalidFormat
	}

	gen := f.Generate
	setIfPresent(&c.Generate.Length, gen.Length)
	setIfPresent(&c.Generate.Lowercase, gen.Lowercase)
	setIfPresent(&c.Generate.Uppercase, gen.Uppercase)
	setIfPresent(&c.Generate.Numbers, gen.Numbers)
	setIfPresent(&c.Generate.Special, gen.Special)
	setIfPresent(&c.Generate.Ignore, gen.Ignore)
	setIfPresent(&c.Count, gen.Count)

	return nil
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
