// Package i18n provides the dotted-key string lookup used by the
// console UI. Two languages ship with the system; unknown keys fall
// back to the key itself so a missing translation never blanks a label.
package i18n

// Supported language codes.
const (
	LangEN = "en"
	LangTH = "th"
)

// Default is the language used until the user picks one.
const Default = LangEN

// Supported reports whether lang is a language the console ships.
func Supported(lang string) bool {
	return lang == LangEN || lang == LangTH
}

// T resolves key in the given language. An unsupported language falls
// back to the default; an unknown key is returned unchanged.
func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[Default]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Table returns the full translation map for a language (the UI loads
// it in one request). Unsupported languages get the default table.
func Table(lang string) map[string]string {
	if table, ok := translations[lang]; ok {
		return table
	}
	return translations[Default]
}
