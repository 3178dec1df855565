package model

import (
	"fmt"
	"strings"
)

// Severity represents how serious a password finding is.
//
// Design decision: We use iota-based constants rather than string constants
// so that findings can be ordered and counted cheaply. The String() method
// provides the stable lowercase label used in reports.
type Severity int

const (
	// SeverityWarning indicates a password that is usable but easier to guess
	// than it should be (for example, low character diversity).
	SeverityWarning Severity = iota

	// SeverityError indicates a password that should not be used at all:
	// it is a known weak password, too short, or trivially patterned.
	SeverityError
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity label case-insensitively.
// "warn" is accepted as an alias of "warning".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityWarning, fmt.Errorf("unknown severity %q", s)
	}
}

// Finding types produced by the strength checker.
// These identifiers are stable and safe to use in machine-readable output.
const (
	FindingKnownWeak    = "known_weak"
	FindingTooShort     = "too_short"
	FindingAllNumeric   = "all_numeric"
	FindingAllLowercase = "all_lowercase"
	FindingAllUppercase = "all_uppercase"
	FindingLowDiversity = "low_diversity"
)

// findingSeverity maps finding types to their severity.
// A single table keeps the checker and the report writers in agreement.
var findingSeverity = map[string]Severity{
	FindingKnownWeak:    SeverityError,
	FindingTooShort:     SeverityError,
	FindingAllNumeric:   SeverityError,
	FindingAllLowercase: SeverityError,
	FindingAllUppercase: SeverityError,
	FindingLowDiversity: SeverityWarning,
}

// GetSeverity returns the severity level for a finding type.
// Returns SeverityWarning if the finding type is not in the mapping.
func GetSeverity(findingType string) Severity {
	if s, ok := findingSeverity[findingType]; ok {
		return s
	}
	return SeverityWarning
}
