// Package naming derives normalized identifiers from free-form display names.
//
// Every generated artifact name flows through Normalize first: the resulting
// slug is the single source of truth for file names, package directory names,
// and (via Identifier) exported class names in the generated sources.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Delimiters are the characters treated as word separators when normalizing
// a display name. The separator itself is included so Normalize is idempotent.
const Delimiters = " \t_./\\-"

var titler = cases.Title(language.English, cases.NoLower)

// Normalize lower-cases a display name and collapses any run of delimiter
// characters into a single "-". It is total over any string: an empty or
// all-delimiter input produces the empty slug, which callers reject at
// prompt-validation time.
func Normalize(display string) string {
	lower := strings.ToLower(strings.TrimSpace(display))
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return strings.ContainsRune(Delimiters, r)
	})

	return strings.Join(words, "-")
}

// Pascal converts a slug into PascalCase. Inputs that are not yet normalized
// are normalized first, so Pascal("no https") == Pascal("no-https").
func Pascal(slug string) string {
	var b strings.Builder
	for _, word := range strings.Split(Normalize(slug), "-") {
		b.WriteString(titler.String(word))
	}

	return b.String()
}

// Camel converts a slug into camelCase.
func Camel(slug string) string {
	pascal := Pascal(slug)
	if pascal == "" {
		return ""
	}

	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// Identifier derives the exported identifier for a generated artifact. When
// prefix is non-empty (multi-artifact packages) it is pascal-cased and
// prepended, guaranteeing identifiers are unique within the package.
func Identifier(slug, prefix string) string {
	return Pascal(prefix) + Pascal(slug)
}
