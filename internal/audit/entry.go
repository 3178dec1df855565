package audit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize caps a single line of a password list file.
const maxLineSize = 1 << 20

// Entry is one password to check together with the label used in reports.
type Entry struct {
	Label    string
	Password string
}

// ReadEntries reads one password per line from r.
//
// Entries are labelled "line N" with N the 1-based line number in the
// input. Blank lines are skipped and a trailing carriage return is removed,
// so files written on Windows are read as expected.
func ReadEntries(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var entries []Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		entries = append(entries, Entry{
			Label:    fmt.Sprintf("line %d", lineNo),
			Password: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}
	return entries, nil
}
