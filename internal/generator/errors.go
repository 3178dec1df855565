package generator

import (
	"errors"

	"github.com/nao1215/passguard/internal/i18n"
	"golang.org/x/text/language"
)

// Generation errors. Generate returns them (possibly wrapped) instead of a
// password, so callers branch with errors.Is rather than comparing strings.
var (
	// ErrNoClassSelected is returned when none of the character classes
	// is enabled.
	ErrNoClassSelected = errors.New("no character class selected")

	// ErrFullyExcluded is returned when every character of an enabled
	// class appears in the ignore list.
	ErrFullyExcluded = errors.New("selected character class fully excluded")
)

// Describe returns the localized, user-facing message for a generation
// error. Errors not produced by this package are returned as err.Error().
func Describe(err error, lang language.Tag) string {
	p := i18n.NewPrinter(lang)
	switch {
	case errors.Is(err, ErrNoClassSelected):
		return p.Sprintf(i18n.NoClassSelected)
	case errors.Is(err, ErrFullyExcluded):
		return p.Sprintf(i18n.ClassesFullyExcluded)
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
