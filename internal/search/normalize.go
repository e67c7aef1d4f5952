package search

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// предлоги, союзы и частицы, которые не участвуют в поиске
var stopWords = map[string]struct{}{
	"и": {}, "в": {}, "во": {}, "на": {}, "с": {}, "со": {}, "к": {}, "ко": {},
	"по": {}, "из": {}, "от": {}, "до": {}, "для": {}, "за": {}, "под": {}, "над": {},
	"при": {}, "без": {}, "о": {}, "об": {}, "у": {}, "а": {}, "но": {}, "или": {}, "да": {},
}

// NormalizeSearchText: нижний регистр (русская локаль), ё→е, всё кроме букв/цифр → пробел.
func NormalizeSearchText(text string) string {
	if text == "" {
		return ""
	}
	// Caser хранит состояние, поэтому на каждый вызов свой
	s := cases.Lower(language.Russian).String(text)
	s = strings.ReplaceAll(s, "ё", "е")
	s = reNonWord.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TokenizeSearchText режет нормализованный текст на слова,
// выкидывая однобуквенные и стоп-слова. Повторы сохраняются.
func TokenizeSearchText(text string) []string {
	norm := NormalizeSearchText(text)
	if norm == "" {
		return nil
	}
	parts := strings.Split(norm, " ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if utf8.RuneCountInString(p) < 2 {
			continue
		}
		if _, stop := stopWords[p]; stop {
			continue
		}
		out = append(out, p)
	}
	return out
}
