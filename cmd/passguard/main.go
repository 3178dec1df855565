// Package main provides the entry point for the passguard CLI.
//
// passguard checks passwords against a list of known weak passwords and a
// set of pattern heuristics, and generates random passwords.
//
// Usage:
//
//	passguard check [password]
//	passguard check --file passwords.txt --markdown
//	passguard generate --length 20 --count 5
//
// See --help for all available options.
package main

func main() {
	Execute()
}
