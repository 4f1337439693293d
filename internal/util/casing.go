package util

import (
	"strings"
	"unicode"
)

// ToPascalCase converts snake_case, kebab-case, or space-separated words to
// PascalCase. Existing interior capitalization is preserved, so "my_API"
// becomes "MyAPI" and "my_api" becomes "MyApi".
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	var b strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Acronym runs stay together: "HTTPSConnection" -> "https_connection".
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				b.WriteRune('_')
			}
		}
		// Path-ish separators also become underscores so operation names
		// derived from "GET /store/order" come out as get_store_order
		switch r {
		case '-', ' ', '/', '.', '{', '}':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteRune('_')
			}
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Trim(b.String(), "_")
}

// SanitizeIdent strips any rune that cannot appear in an identifier,
// collapsing the remainder through ToSnakeCase. Used for names derived from
// URL paths.
func SanitizeIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '/' || r == ' ' || r == '{' || r == '}' {
			b.WriteRune(r)
		}
	}
	return ToSnakeCase(b.String())
}
