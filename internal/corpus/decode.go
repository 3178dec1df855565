package corpus

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// MaxDecodedSize bounds the inflated corpus size. Public breach lists of
// the top few million passwords stay well below this.
const MaxDecodedSize = 64 << 20

// Decode inflates a zlib-compressed corpus and splits it into entries.
//
// Entries are separated by '\n' and kept verbatim, so their positions match
// the line numbers of the source list. Only the single empty entry created by
// a trailing newline is dropped; otherwise the empty password would match the
// end of every list. Invalid UTF-8 is replaced with U+FFFD.
func Decode(r io.Reader) ([]string, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open zlib stream: %w", err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(zr, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to inflate corpus: %w", err)
	}
	if n > MaxDecodedSize {
		return nil, ErrCorpusTooLarge
	}

	text := strings.ToValidUTF8(buf.String(), "\uFFFD")
	if text == "" {
		return []string{}, nil
	}

	entries := strings.Split(text, "\n")
	if entries[len(entries)-1] == "" {
		entries = entries[:len(entries)-1]
	}
	return entries, nil
}
