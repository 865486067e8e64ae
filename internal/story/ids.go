package story

import (
	"strings"
	"unicode"
)

// ID returns the catalog id for a story, e.g. "components-button--all-variants".
func ID(title, variant string) string {
	return Slug(title) + "--" + Slug(variant)
}

// Slug lowercases s, splits camel case and joins words with hyphens.
func Slug(s string) string {
	return strings.Join(words(s), "-")
}

// DisplayName turns an export-style name into a label, e.g. "AllVariants" -> "All Variants".
func DisplayName(name string) string {
	ws := words(name)
	for i, w := range ws {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		ws[i] = string(runes)
	}
	return strings.Join(ws, " ")
}

func words(s string) []string {
	var (
		out     []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			// Start a new word at a lower->Upper boundary or at the last capital of an acronym.
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				flush()
			}
			current = append(current, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current = append(current, r)
		default:
			flush()
		}
	}
	flush()
	return out
}
