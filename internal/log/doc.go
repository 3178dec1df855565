// Package log builds slog loggers that never print password material.
//
// SecureHandler wraps any slog.Handler and masks attribute values whose key
// names a password or credential, values that look like tokens, and the
// password part of URLs such as proxy addresses. Loggers log at Warn level
// by default and at Debug level in verbose mode.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("checking", "label", "line 3", "password", pw) // password=***REDACTED***
package log
