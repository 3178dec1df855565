package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Keys taking arguments document them in the trailing comment.
const (
	KnownWeakTitle       = "known_weak.title" // rank (1-based)
	KnownWeakDesc        = "known_weak.desc"
	TooShortTitle        = "too_short.title"
	TooShortDesc         = "too_short.desc"
	AllNumericTitle      = "all_numeric.title"
	AllNumericDesc       = "all_numeric.desc"
	AllLowercaseTitle    = "all_lowercase.title"
	AllLowercaseDesc     = "all_lowercase.desc"
	AllUppercaseTitle    = "all_uppercase.title"
	AllUppercaseDesc     = "all_uppercase.desc"
	LowDiversityTitle    = "low_diversity.title"
	LowDiversityDesc     = "low_diversity.desc"
	NoClassSelected      = "generate.no_class"
	ClassesFullyExcluded = "generate.fully_excluded"
)

// Supported lists the languages with a full translation, default first.
var Supported = []language.Tag{language.English, language.Chinese}

var translations = map[language.Tag]map[string]string{
	language.English: {
		KnownWeakTitle:       "Known weak password #%d",
		KnownWeakDesc:        "This is a known weak password and can be cracked within seconds",
		TooShortTitle:        "Password shorter than 8 characters",
		TooShortDesc:         "A password this short can be brute-forced in a very short time",
		AllNumericTitle:      "All-numeric password",
		AllNumericDesc:       "A password like this is easy to guess",
		AllLowercaseTitle:    "All-lowercase password",
		AllLowercaseDesc:     "A password like this is easy to guess",
		AllUppercaseTitle:    "All-uppercase password",
		AllUppercaseDesc:     "A password like this is easy to guess",
		LowDiversityTitle:    "Low character diversity",
		LowDiversityDesc:     "A password like this is easy to guess",
		NoClassSelected:      "Select at least one character type",
		ClassesFullyExcluded: "Selected character types are fully excluded",
	},
	language.Chinese: {
		KnownWeakTitle:       "第%d个已知的弱密码",
		KnownWeakDesc:        "这是一个已知的弱密码，可以在几秒内被迅速爆破",
		TooShortTitle:        "密码长度小于8位",
		TooShortDesc:         "这将导致密码能在极短的时间内被破解",
		AllNumericTitle:      "纯数字密码",
		AllNumericDesc:       "这样的密码很容易被猜测",
		AllLowercaseTitle:    "纯小写字母密码",
		AllLowercaseDesc:     "这样的密码很容易被猜测",
		AllUppercaseTitle:    "纯大写字母密码",
		AllUppercaseDesc:     "这样的密码很容易被猜测",
		LowDiversityTitle:    "密码构成较为简单",
		LowDiversityDesc:     "这样的密码很容易被猜测",
		NoClassSelected:      "请至少选择一种字符类型",
		ClassesFullyExcluded: "所选字符类型已被全部排除",
	},
}

// messages is built once; catalog.Builder is safe for concurrent reads.
var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: invalid message %q for %s: %v", key, tag, err))
			}
		}
	}
	return b
}

// NewPrinter returns a printer that formats message keys in lang.
// Unsupported languages fall back to English.
func NewPrinter(lang language.Tag) *message.Printer {
	return message.NewPrinter(Match(lang), message.Catalog(messages))
}

// Match returns the supported language closest to lang.
func Match(lang language.Tag) language.Tag {
	matcher := language.NewMatcher(Supported)
	_, index, confidence := matcher.Match(lang)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}

// ParseLanguage parses a BCP 47 tag such as "en", "zh" or "zh-CN".
// An empty string selects the default language.
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Supported[0], nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0], fmt.Errorf("invalid language %q: %w", s, err)
	}
	return Match(tag), nil
}
