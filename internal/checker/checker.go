package checker

import (
	"regexp"
	"unicode/utf8"

	"github.com/nao1215/passguard/internal/i18n"
	"github.com/nao1215/passguard/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MinLength is the shortest password that does not trigger a length finding.
const MinLength = 8

var (
	allDigitsRegex     = regexp.MustCompile(`^[0-9]+$`)
	allLowerRegex      = regexp.MustCompile(`^[a-z]+$`)
	allUpperRegex      = regexp.MustCompile(`^[A-Z]+$`)
	lowerAlphanumRegex = regexp.MustCompile(`^[a-z0-9]+$`)
	upperAlphanumRegex = regexp.MustCompile(`^[A-Z0-9]+$`)
)

// Lookup finds a password in a weak-password list.
// *corpus.Corpus satisfies this interface.
type Lookup interface {
	// IndexOf returns the zero-based position of password, or -1.
	IndexOf(password string) int
}

// emptyLookup is used when no corpus is configured.
type emptyLookup struct{}

func (emptyLookup) IndexOf(string) int { return -1 }

// Checker evaluates passwords against a weak-password list and a fixed set
// of pattern heuristics. It is safe for concurrent use.
type Checker struct {
	lookup  Lookup
	printer *message.Printer
}

// Option configures a Checker.
type Option func(*Checker)

// WithLanguage sets the language of finding titles and descriptions.
func WithLanguage(lang language.Tag) Option {
	return func(c *Checker) {
		c.printer = i18n.NewPrinter(lang)
	}
}

// New creates a Checker backed by lookup. A nil lookup behaves as an empty
// weak-password list.
func New(lookup Lookup, opts ...Option) *Checker {
	if lookup == nil {
		lookup = emptyLookup{}
	}
	c := &Checker{
		lookup:  lookup,
		printer: i18n.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns the findings for password in a fixed order:
//  1. known weak password (cites the 1-based rank in the list)
//  2. shorter than MinLength characters
//  3. digits only
//  4. at most one composition finding: all lowercase, else all uppercase,
//     else single-case letters with digits (warning)
//
// Checks 1-3 are independent of each other. An empty result means the
// password passed every heuristic. Check never fails.
func (c *Checker) Check(password string) []model.Finding {
	findings := make([]model.Finding, 0, 4)

	if index := c.lookup.IndexOf(password); index != -1 {
		findings = append(findings, c.finding(model.FindingKnownWeak,
			c.printer.Sprintf(i18n.KnownWeakTitle, index+1),
			i18n.KnownWeakDesc))
	}

	if utf8.RuneCountInString(password) < MinLength {
		findings = append(findings, c.finding(model.FindingTooShort,
			c.printer.Sprintf(i18n.TooShortTitle),
			i18n.TooShortDesc))
	}

	if allDigitsRegex.MatchString(password) {
		findings = append(findings, c.finding(model.FindingAllNumeric,
			c.printer.Sprintf(i18n.AllNumericTitle),
			i18n.AllNumericDesc))
	}

	switch {
	case allLowerRegex.MatchString(password):
		findings = append(findings, c.finding(model.FindingAllLowercase,
			c.printer.Sprintf(i18n.AllLowercaseTitle),
			i18n.AllLowercaseDesc))
	case allUpperRegex.MatchString(password):
		findings = append(findings, c.finding(model.FindingAllUppercase,
			c.printer.Sprintf(i18n.AllUppercaseTitle),
			i18n.AllUppercaseDesc))
	case lowerAlphanumRegex.MatchString(password), upperAlphanumRegex.MatchString(password):
		findings = append(findings, c.finding(model.FindingLowDiversity,
			c.printer.Sprintf(i18n.LowDiversityTitle),
			i18n.LowDiversityDesc))
	}

	return findings
}

// Report checks password and wraps the findings in a CheckReport.
func (c *Checker) Report(label, password string) *model.CheckReport {
	return model.NewCheckReport(label, password, c.Check(password))
}

func (c *Checker) finding(findingType, title, descKey string) model.Finding {
	return model.NewFinding(findingType, title, c.printer.Sprintf(descKey))
}
