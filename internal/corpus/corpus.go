package corpus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// snapshot is the immutable, fully decoded content of a corpus.
type snapshot struct {
	entries []string

	// index maps each entry to the position of its first occurrence.
	index map[string]int
}

// Corpus is a list of known-weak passwords.
//
// A Corpus starts empty and is populated at most once. Until then every
// lookup behaves as if the list were empty, which is the intended state for
// "not loaded yet" rather than an error.
//
// Design decision: the decoded snapshot is published through an
// atomic.Pointer so that readers never take a lock and a load running in a
// background goroutine cannot race with concurrent IndexOf calls.
type Corpus struct {
	// mu serializes population attempts.
	mu    sync.Mutex
	state atomic.Pointer[snapshot]
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{}
}

// Load decodes r (see Decode) and populates the corpus.
// If the corpus is already populated, Load returns ErrAlreadyLoaded without
// reading r. If decoding fails the corpus stays empty.
func (c *Corpus) Load(r io.Reader) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Load() != nil {
		return ErrAlreadyLoaded
	}

	entries, err := Decode(r)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		if _, exists := index[entry]; !exists {
			index[entry] = i
		}
	}

	c.state.Store(&snapshot{entries: entries, index: index})
	return nil
}

// LoadFrom opens src and loads the corpus from it.
func (c *Corpus) LoadFrom(ctx context.Context, src Source) error {
	if c.Loaded() {
		return ErrAlreadyLoaded
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open corpus source %s: %w", src, err)
	}
	defer rc.Close()

	if err := c.Load(rc); err != nil {
		return fmt.Errorf("failed to load corpus from %s: %w", src, err)
	}
	return nil
}

// LoadAsync loads the corpus from src in a background goroutine.
//
// The returned channel receives exactly one value (nil on success) and is
// then closed. A failed load is logged and leaves the corpus permanently
// empty; callers that never wait on the channel simply see no matches.
func (c *Corpus) LoadAsync(ctx context.Context, src Source, logger *slog.Logger) <-chan error {
	if logger == nil {
		logger = slog.Default()
	}

	done := make(chan error, 1)
	go func() {
		defer close(done)

		err := c.LoadFrom(ctx, src)
		if err != nil {
			logger.Warn("weak password corpus unavailable",
				"source", src.String(),
				"error", err,
			)
		} else {
			logger.Debug("weak password corpus loaded",
				"source", src.String(),
				"entries", c.Len(),
			)
		}
		done <- err
	}()
	return done
}

// IndexOf returns the zero-based position of the first entry equal to
// password, or -1 if there is none or the corpus is not loaded.
func (c *Corpus) IndexOf(password string) int {
	s := c.state.Load()
	if s == nil {
		return -1
	}
	if i, ok := s.index[password]; ok {
		return i
	}
	return -1
}

// Len returns the number of entries, 0 before the corpus is loaded.
func (c *Corpus) Len() int {
	s := c.state.Load()
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Loaded reports whether the corpus has been populated.
func (c *Corpus) Loaded() bool {
	return c.state.Load() != nil
}
