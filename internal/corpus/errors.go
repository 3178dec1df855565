package corpus

import "errors"

// Corpus errors.
//
// Design decision: We use package-level sentinel errors so callers can use
// errors.Is() to tell a corrupt source from a corpus that is simply already
// populated.
var (
	// ErrAlreadyLoaded is returned when a corpus that has already been
	// populated is loaded again. The existing entries are left untouched.
	ErrAlreadyLoaded = errors.New("weak password corpus already loaded")

	// ErrCorpusTooLarge is returned when the decompressed corpus exceeds
	// MaxDecodedSize.
	ErrCorpusTooLarge = errors.New("weak password corpus exceeds maximum decoded size")

	// ErrInvalidSource is returned when a source string cannot be parsed.
	ErrInvalidSource = errors.New("invalid corpus source")

	// ErrUnexpectedStatus is returned when an HTTP source answers with a
	// non-2xx status code.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status fetching corpus")

	// ErrInvalidProxyAddress is returned when the proxy address format is invalid.
	// Expected format is "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
