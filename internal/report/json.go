package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/passguard/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent       bool
	indentPrefix string
	indentString string

	// version is recorded in the output envelope when set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is shorthand for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the passguard version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the envelope written by JSONWriter.
type JSONReport struct {
	Version     string               `json:"version,omitempty"`
	GeneratedAt time.Time            `json:"generated_at"`
	Summary     model.Summary        `json:"summary"`
	Reports     []*model.CheckReport `json:"reports"`
}

// Write outputs the reports wrapped in a JSONReport.
func (w *JSONWriter) Write(reports []*model.CheckReport) (int, error) {
	reports = nonNil(reports)
	return w.writeJSON(JSONReport{
		Version:     w.version,
		GeneratedAt: time.Now(),
		Summary:     model.Summarize(reports),
		Reports:     reports,
	})
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
