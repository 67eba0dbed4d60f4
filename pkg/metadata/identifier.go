package metadata

import "unicode"

// IsValidAlias reports whether s is a syntactically valid extern alias.
// The grammar is the Unicode identifier rule: the first rune must be a
// letter or underscore, and every following rune must be a letter, a
// decimal digit, a combining mark, connector punctuation, or a format
// character.
func IsValidAlias(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !isAliasPart(r) {
			return false
		}
	}
	return true
}

func isAliasPart(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Cf, r)
}
