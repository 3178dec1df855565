// Package audit checks lists of passwords concurrently.
//
// A BatchChecker fans entries out to a bounded number of goroutines using
// errgroup and collects one report per entry. Results keep the order of the
// input so that "line N" labels stay meaningful in reports.
package audit
