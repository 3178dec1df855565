// Package corpus provides the list of known-weak passwords used by the
// strength checker.
//
// A corpus is a zlib-compressed, newline-separated UTF-8 text file. The
// position of an entry is meaningful: entry i is the (i+1)-th most common
// weak password, and the checker reports that rank.
//
// Sources:
//   - Embedded: a small list bundled into the binary (the default)
//   - File: a compressed list on disk
//   - HTTP: a compressed list downloaded over HTTP(S), optionally via SOCKS5
//
// # Usage
//
//	c := corpus.New()
//	done := c.LoadAsync(ctx, corpus.Embedded(), logger)
//	// ... lookups before completion see an empty corpus ...
//	if err := <-done; err != nil {
//	    // corpus stays empty; checks continue without weak-list matches
//	}
//	rank := c.IndexOf("123456") + 1
package corpus
