// Package report renders password check results.
//
// Three formats are available:
//   - SimpleWriter: plain text for terminal display
//   - JSONWriter: a JSON envelope with summary and per-password reports
//   - MarkdownWriter: GitHub-flavored Markdown for CI summaries
//
// Reports identify passwords by label and fingerprint only. Writers
// implement the Writer interface and can be combined with MultiWriter.
package report
