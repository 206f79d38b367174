// Package i18ndirectives contains print directives whose behavior depends on
// the locale of the current render. The locale arrives through the per-call
// evaluation context, never through directive state, so the same directive
// instance can serve concurrent renders with different locales.
package i18ndirectives

import (
	"strings"

	"golang.org/x/text/language"
)

// ParseLocale converts a locale identifier string into a language tag.
// Underscore-separated identifiers like "en_US" are accepted alongside
// BCP 47. Unparseable input falls back to the root locale rather than
// failing: the locale accessor is outside this core's validation boundaries.
func ParseLocale(localeString string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(localeString, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
