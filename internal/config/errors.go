package config

import "errors"

// Configuration errors. Validate and the loaders return these, possibly
// wrapped, so callers can branch with errors.Is.
var (
	// ErrInvalidTimeout is returned when the download timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidLanguage is returned for an unparsable language tag.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidCount is returned when generate --count is out of range.
	ErrInvalidCount = errors.New("invalid count: must be between 1 and 1000")

	// ErrInvalidLength is returned when generate --length exceeds MaxLength.
	ErrInvalidLength = errors.New("invalid length: must be at most 4096")

	// ErrInvalidFormat is returned for an unknown report format in the config file.
	ErrInvalidFormat = errors.New("invalid report format: must be text, json or markdown")

	// ErrConfigNotFound is returned when an explicitly given config file
	// does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrParsingConfig wraps YAML decoding failures.
	ErrParsingConfig = errors.New("failed to parse configuration file")

	// ErrParsingEnv wraps environment variable decoding failures.
	ErrParsingEnv = errors.New("failed to parse environment variables")
)
