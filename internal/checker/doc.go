// Package checker flags weak passwords using a known-weak list and simple
// character-pattern heuristics.
//
// This is a categorical classifier, not a strength score: every finding is
// a discrete flag with a severity of error or warning, and an empty result
// means no heuristic fired.
package checker
