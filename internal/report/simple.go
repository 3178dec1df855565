package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passguard/internal/model"
)

const ruleWidth = 70

// SimpleWriter outputs human-readable text for terminal display.
// Plain ASCII is used so the output can be piped into files or other tools.
type SimpleWriter struct {
	baseWriter

	// verbose adds finding type identifiers and check times.
	verbose bool

	// summary controls whether the totals block is written.
	summary bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithSummary toggles the totals block. It is on by default.
func WithSummary(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.summary = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		summary:    true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs every report followed by the summary.
func (w *SimpleWriter) Write(reports []*model.CheckReport) (int, error) {
	reports = nonNil(reports)

	var sb strings.Builder
	for _, r := range reports {
		w.writeReport(&sb, r)
	}
	if w.summary {
		w.writeSummary(&sb, model.Summarize(reports))
	}
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeReport(sb *strings.Builder, r *model.CheckReport) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "%s  (fingerprint %s, %d characters)\n", r.Label, r.Fingerprint, r.Length)
	if w.verbose {
		fmt.Fprintf(sb, "Checked at: %s\n", r.CheckedAt.Format("2006-01-02 15:04:05 MST"))
	}
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")

	if !r.HasFindings() {
		sb.WriteString("  [ok] No weaknesses found\n\n")
		return
	}

	for _, severity := range severityOrder {
		for _, f := range r.GetFindingsBySeverity(severity) {
			fmt.Fprintf(sb, "  [%s] %-7s %s\n", severityIndicator(f.Severity), f.SeverityText, f.Title)
			if f.Description != "" {
				fmt.Fprintf(sb, "       %s\n", f.Description)
			}
			if w.verbose {
				fmt.Fprintf(sb, "       type: %s\n", f.Type)
			}
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeSummary(sb *strings.Builder, s model.Summary) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  CHECKED:    %d\n", s.Total)
	fmt.Fprintf(sb, "  ACCEPTABLE: %d\n", s.Acceptable)
	fmt.Fprintf(sb, "  ERRORS:     %d\n", s.Errors)
	fmt.Fprintf(sb, "  WARNINGS:   %d\n", s.Warnings)
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// severityIndicator returns a short visual marker for the severity level.
func severityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityError:
		return "!!"
	case model.SeverityWarning:
		return "! "
	default:
		return "? "
	}
}
