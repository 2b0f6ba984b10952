package fieldtype

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms keeps well known initialisms upper-cased in labels.
var acronyms = map[string]string{
	"url":  "URL",
	"uid":  "UID",
	"html": "HTML",
	"id":   "ID",
}

// Label returns a human-friendly name for t, e.g. "Light Switch".
func (t FieldType) Label() string {
	return Humanize(string(t))
}

// Humanize converts an identifier into a label. Words break at
// underscores, dashes and whitespace, at lower-to-upper transitions and
// between letters and digits.
func Humanize(name string) string {
	words := splitWords(name)
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	var (
		out  []string
		word []rune
		prev rune
	)
	flush := func() {
		if len(word) > 0 {
			out = append(out, string(word))
			word = word[:0]
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case len(word) > 0 && (unicode.IsLower(prev) && unicode.IsUpper(r) || unicode.IsDigit(prev) != unicode.IsDigit(r)):
			flush()
			word = append(word, r)
		default:
			word = append(word, r)
		}
		prev = r
	}
	flush()
	return out
}

func titleWord(word string) string {
	lower := strings.ToLower(word)
	if acronym, ok := acronyms[lower]; ok {
		return acronym
	}
	// Casers carry state and are not safe for concurrent use.
	return cases.Title(language.English).String(lower)
}
