package report

import (
	"io"

	"github.com/nao1215/passguard/internal/model"
)

// Writer renders password check reports.
// Implementations never see the plaintext password, only CheckReports.
type Writer interface {
	// Write renders reports and their summary to the configured output.
	// Returns the number of bytes written and any error encountered.
	Write(reports []*model.CheckReport) (int, error)
}

// MultiWriter writes the same reports to several Writers, e.g. a terminal
// and a report file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the reports to every Writer in order and stops at the
// first error.
func (m *MultiWriter) Write(reports []*model.CheckReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(reports)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// nonNil drops nil entries, which appear when a batch was cancelled.
func nonNil(reports []*model.CheckReport) []*model.CheckReport {
	out := make([]*model.CheckReport, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// severityOrder lists severities from most to least serious.
var severityOrder = []model.Severity{model.SeverityError, model.SeverityWarning}

// findingTypeOrder lists finding types in checker order.
var findingTypeOrder = []string{
	model.FindingKnownWeak,
	model.FindingTooShort,
	model.FindingAllNumeric,
	model.FindingAllLowercase,
	model.FindingAllUppercase,
	model.FindingLowDiversity,
}

// countByType counts findings per type across reports.
func countByType(reports []*model.CheckReport) map[string]int {
	counts := make(map[string]int, len(findingTypeOrder))
	for _, r := range reports {
		for _, f := range r.Findings {
			counts[f.Type]++
		}
	}
	return counts
}
