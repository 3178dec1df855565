// Package generator creates random passwords from configurable character
// classes.
//
// Four classes are available: lowercase letters, uppercase letters, digits
// and the special characters "@#$%*&~.". Every enabled class contributes at
// least one character. The remaining positions are filled by picking a class
// at random with weights 1, 1, 0.9 and 0.3 respectively, then a character of
// that class uniformly. Characters listed in Options.Ignore never appear.
//
// Randomness comes from math/rand/v2 and is not suitable for secrets that
// must resist an attacker who can observe other outputs of the process.
package generator
