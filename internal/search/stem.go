package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minStemLen = 4

// Порядок важен: берётся первое совпавшее окончание, а не самое длинное.
var adjectiveEndings = []string{
	"ыми", "ими", "ого", "его", "ому", "ему",
	"ая", "яя", "ое", "ее", "ые", "ие", "ый", "ий", "ой",
	"ую", "юю", "ым", "им", "ых", "их",
}

var commonEndings = []string{
	"ами", "ями", "ов", "ев", "ей", "ам", "ям", "ах", "ях", "ом", "ем", "ью",
	"а", "я", "ы", "и", "у", "ю", "е", "о", "ь",
}

const vowels = "аеиоуыэюя"

// StemRussianToken грубо отрезает русское окончание. Не кириллица — без изменений.
func StemRussianToken(token string) string {
	if !isCyrillic(token) {
		return token
	}
	if stem, ok := stripEnding(token, adjectiveEndings); ok {
		return stem
	}
	if stem, ok := stripEnding(token, commonEndings); ok {
		return stem
	}
	n := utf8.RuneCountInString(token)
	if n >= minStemLen+1 {
		last, size := utf8.DecodeLastRuneInString(token)
		if strings.ContainsRune(vowels, last) {
			return token[:len(token)-size]
		}
	}
	return token
}

func stripEnding(token string, endings []string) (string, bool) {
	n := utf8.RuneCountInString(token)
	for _, end := range endings {
		if !strings.HasSuffix(token, end) {
			continue
		}
		if n-utf8.RuneCountInString(end) >= minStemLen {
			return strings.TrimSuffix(token, end), true
		}
	}
	return "", false
}

func isCyrillic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}
	return true
}
