package models

import "strings"

const (
	CategoryGeneral        = "general"
	CategoryCommonVerbs    = "common-verbs"
	CategoryIrregularVerbs = "irregular-verbs"
)

// SupportedLanguages lists every language the app can hold a partition for.
// "en" is the oldest one and still has a legacy single-language storage key.
var SupportedLanguages = []string{"en", "fr", "de", "es", "ja", "zh"}

var languageNames = map[string]string{
	"en": "English",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"ja": "Japanese",
	"zh": "Chinese",
}

type Example struct {
	Target                   string `json:"target"`
	NativeMeaning            string `json:"nativeMeaning"`
	NativePronunciationGuide string `json:"nativePronunciationGuide"`
}

type Word struct {
	ID                       string  `json:"id"`
	Target                   string  `json:"target"`
	NativeMeaning            string  `json:"nativeMeaning"`
	PhoneticGuide            string  `json:"phoneticGuide"`
	NativePronunciationGuide string  `json:"nativePronunciationGuide"`
	Example                  Example `json:"example"`
	LearnedAt                int64   `json:"learnedAt"`
	Mastered                 bool    `json:"mastered"`
	IsFavorite               bool    `json:"isFavorite"`
	Category                 string  `json:"category"`
}

type WordStats struct {
	TotalCount    int
	MasteredCount int
	FavoriteCount int
}

// NormalizeTarget produces the comparison key used for duplicate detection.
func NormalizeTarget(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryGeneral, CategoryCommonVerbs, CategoryIrregularVerbs:
		return true
	}
	return false
}

func SupportedLanguage(lang string) bool {
	_, ok := languageNames[lang]
	return ok
}

// LanguageName returns the display name for a language code, or the code
// itself when unknown.
func LanguageName(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return lang
}
