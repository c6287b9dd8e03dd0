// Package casing converts model and group names between the spellings
// used by the CLI and the OpenAPI document.
package casing

import (
	"strings"
	"unicode"
)

// ToKebabCase turns "SessionCreateParams" into "session-create-params".
// A capital starts a new word when it follows a lower case letter or
// begins a lower case run: "SessionLiveURLs" is "session-live-ur-ls".
func ToKebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range s {
		if r == '_' {
			b.WriteByte('-')
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(rune(s[i-1]))
			nextLower := i+1 < len(s) && unicode.IsLower(rune(s[i+1]))
			if prevLower || nextLower {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// KebabToTitleCase turns "live-urls" into "Live Urls".
func KebabToTitleCase(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
