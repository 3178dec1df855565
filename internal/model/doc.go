// Package model defines the core data structures used throughout passguard.
//
// This package contains the following main types:
//   - Severity: warning or error
//   - Finding: a single heuristic observation about a password
//   - CheckReport: the findings for one checked password
//   - Summary: aggregated counts over several reports
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The checker, audit and report packages all need these types,
// so centralizing them prevents import cycles.
//
// The models are serializable to JSON for report output. None of them hold a
// plaintext password.
package model
