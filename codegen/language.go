package codegen

import "strings"

// Language identifies a target language backend.
//
// The set is closed: adding a language means adding a member here, a backend
// package under codegen/, and one arm in the dispatcher switch. The
// dispatcher test walks Languages() so a member without a backend fails CI
// instead of silently dropping requests.
type Language string

const (
	// LanguageRust generates a Rust client crate
	LanguageRust Language = "rust"
)

// Languages returns every supported target language.
func Languages() []Language {
	return []Language{LanguageRust}
}

// ParseLanguage maps user spellings of a language name to its identifier.
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rust", "rs":
		return LanguageRust, true
	default:
		return "", false
	}
}

func (l Language) String() string {
	return string(l)
}
