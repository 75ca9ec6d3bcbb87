package utils

import (
	"halo-service/internal/pkg/constvars"
	"strings"
)

func IsSupportedLanguage(code string) bool {
	_, ok := findLanguage(code)
	return ok
}

// NormalizeLanguage maps an unknown or empty code to English.
func NormalizeLanguage(code string) string {
	language, ok := findLanguage(code)
	if !ok {
		return constvars.LanguageEnglish
	}
	return language.Code
}

func LanguageName(code string) string {
	language, ok := findLanguage(code)
	if !ok {
		return constvars.SupportedLanguages[0].Name
	}
	return language.Name
}

func findLanguage(code string) (constvars.Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, language := range constvars.SupportedLanguages {
		if language.Code == code {
			return language, true
		}
	}
	return constvars.Language{}, false
}
