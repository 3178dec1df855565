package model

import (
	"encoding/hex"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/sha3"
)

// fingerprintBytes is the number of SHA3-256 bytes kept in a fingerprint.
// Eight bytes are enough to tell entries of a password list apart in a report
// while being far too short to serve as a lookup key for the password itself.
const fingerprintBytes = 8

// CheckReport is the result of checking one password.
//
// Design decision: the report never stores the plaintext password. Reports
// are written to terminals, files and CI logs, so they carry a label chosen
// by the caller and a truncated fingerprint instead.
type CheckReport struct {
	// Label identifies the checked password in output, e.g. "line 12".
	Label string `json:"label"`

	// Fingerprint is a truncated SHA3-256 hex digest of the password.
	Fingerprint string `json:"fingerprint"`

	// Length is the password length in characters (runes).
	Length int `json:"length"`

	// CheckedAt is when the check was performed.
	CheckedAt time.Time `json:"checked_at"`

	// Findings contains every finding in checker order.
	Findings []Finding `json:"findings,omitempty"`

	// ErrorCount is the number of error findings.
	ErrorCount int `json:"error_count"`

	// WarningCount is the number of warning findings.
	WarningCount int `json:"warning_count"`
}

// NewCheckReport builds a report for password from the given findings.
func NewCheckReport(label, password string, findings []Finding) *CheckReport {
	r := &CheckReport{
		Label:       label,
		Fingerprint: Fingerprint(password),
		Length:      utf8.RuneCountInString(password),
		CheckedAt:   time.Now(),
		Findings:    findings,
	}
	r.countBySeverity()
	return r
}

// countBySeverity recomputes the per-severity counters.
func (r *CheckReport) countBySeverity() {
	r.ErrorCount = 0
	r.WarningCount = 0
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		}
	}
}

// HasFindings returns true if the report has any findings.
func (r *CheckReport) HasFindings() bool {
	return len(r.Findings) > 0
}

// Acceptable reports whether the password passed every heuristic.
func (r *CheckReport) Acceptable() bool {
	return !r.HasFindings()
}

// GetFindingsBySeverity returns findings filtered by severity level.
func (r *CheckReport) GetFindingsBySeverity(severity Severity) []Finding {
	var result []Finding
	for _, f := range r.Findings {
		if f.Severity == severity {
			result = append(result, f)
		}
	}
	return result
}

// Fingerprint returns a short, non-reversible identifier for password.
func Fingerprint(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:fingerprintBytes])
}

// Summary aggregates a set of reports.
type Summary struct {
	Total      int `json:"total"`
	Acceptable int `json:"acceptable"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
}

// Summarize counts findings across reports. Nil reports are skipped.
func Summarize(reports []*CheckReport) Summary {
	var s Summary
	for _, r := range reports {
		if r == nil {
			continue
		}
		s.Total++
		if r.Acceptable() {
			s.Acceptable++
		}
		s.Errors += r.ErrorCount
		s.Warnings += r.WarningCount
	}
	return s
}
