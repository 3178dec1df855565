package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/passguard/internal/model"
)

// MarkdownWriter outputs an audit report in GitHub-flavored Markdown, for
// pull request comments and CI job summaries.
type MarkdownWriter struct {
	baseWriter

	// now is replaceable in tests.
	now func() time.Time
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		now:        time.Now,
	}
}

// Write outputs the summary, a finding distribution chart and one section
// per report.
func (w *MarkdownWriter) Write(reports []*model.CheckReport) (int, error) {
	reports = nonNil(reports)
	summary := model.Summarize(reports)

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeAlert(md, summary)
	if summary.Errors+summary.Warnings > 0 {
		w.writePieChart(md, reports)
	}
	w.writeReports(md, reports)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s model.Summary) {
	md.H1("Password Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", w.now().Format("2006-01-02 15:04:05 MST")},
			{"Checked", strconv.Itoa(s.Total)},
			{"Acceptable", strconv.Itoa(s.Acceptable)},
			{"Errors", strconv.Itoa(s.Errors)},
			{"Warnings", strconv.Itoa(s.Warnings)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s model.Summary) {
	switch {
	case s.Errors > 0:
		md.Cautionf("%d of %d password(s) must not be used (%d error finding(s)).",
			s.Total-s.Acceptable, s.Total, s.Errors)
	case s.Warnings > 0:
		md.Warningf("%d password(s) have low character diversity.", s.Total-s.Acceptable)
	case s.Total == 0:
		md.Note("No passwords were checked.")
	default:
		md.Tip("No weaknesses found.")
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of findings per type.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, reports []*model.CheckReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Findings by Type"),
		piechart.WithShowData(true),
	)

	counts := countByType(reports)
	for _, typ := range findingTypeOrder {
		if n := counts[typ]; n > 0 {
			chart.LabelAndIntValue(typ, uint64(n))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeReports(md *markdown.Markdown, reports []*model.CheckReport) {
	md.H2("Results")
	md.PlainText("")

	for _, r := range reports {
		md.H3(r.Label)
		md.PlainText("")
		md.PlainTextf("Fingerprint `%s`, %d characters.", r.Fingerprint, r.Length)
		md.PlainText("")

		if !r.HasFindings() {
			md.PlainText("No weaknesses found.")
			md.PlainText("")
			continue
		}

		rows := make([][]string, 0, len(r.Findings))
		for _, severity := range severityOrder {
			for _, f := range r.GetFindingsBySeverity(severity) {
				rows = append(rows, []string{severityLabel(f.Severity), f.Title, f.Description})
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Severity", "Finding", "Details"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [passguard](https://github.com/nao1215/passguard)*")
}

func severityLabel(severity model.Severity) string {
	switch severity {
	case model.SeverityError:
		return "🔴 Error"
	case model.SeverityWarning:
		return "🟡 Warning"
	default:
		return severity.String()
	}
}
