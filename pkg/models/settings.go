package models

import "fmt"

// Language selects the active catalog variant and UI copy
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
)

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageGerman
}

// ParseLanguage converts a raw string into a Language
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown language %q", s)
	}
	return l, nil
}

// Theme is the presentation color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a supported theme
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ParseTheme converts a raw string into a Theme
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return t, nil
}

// Settings is the process-wide user preference record
type Settings struct {
	Language Language `json:"language" validate:"oneof=en de"`
	Theme    Theme    `json:"theme" validate:"oneof=light dark"`
}

// DefaultSettings returns the settings used on first run
func DefaultSettings() Settings {
	return Settings{
		Language: LanguageEnglish,
		Theme:    ThemeLight,
	}
}
