package search

import "strings"

const minPrefixLen = 5

// AlmostEqualByPrefix: обе строки не короче 5 символов и общий префикс
// покрывает более короткую целиком или без последнего символа.
func AlmostEqualByPrefix(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < minPrefixLen || len(rb) < minPrefixLen {
		return false
	}
	short := len(ra)
	if len(rb) < short {
		short = len(rb)
	}
	common := 0
	for common < short && ra[common] == rb[common] {
		common++
	}
	return common >= short-1
}

// TokenMatches: подстрока → равенство основ → подстрока основ → близость основ по префиксу.
func TokenMatches(queryToken, targetToken string) bool {
	if queryToken == "" || targetToken == "" {
		return false
	}
	if containsEither(queryToken, targetToken) {
		return true
	}
	qs, ts := StemRussianToken(queryToken), StemRussianToken(targetToken)
	if qs == ts {
		return true
	}
	if containsEither(qs, ts) {
		return true
	}
	return AlmostEqualByPrefix(qs, ts)
}

// MatchesSearchQuery: каждое слово запроса должно найти пару среди слов candidate.
// Пустой запрос совпадает со всем.
func MatchesSearchQuery(candidate, query string) bool {
	qTokens := TokenizeSearchText(query)
	if len(qTokens) == 0 {
		nq := NormalizeSearchText(query)
		if nq == "" {
			return true
		}
		return strings.Contains(NormalizeSearchText(candidate), nq)
	}

	cTokens := TokenizeSearchText(candidate)
	if len(cTokens) == 0 {
		return false
	}
	for _, q := range qTokens {
		if !anyTokenMatches(q, cTokens) {
			return false
		}
	}
	return true
}

// Filter оставляет из names подходящие под query, порядок сохраняется.
func Filter(names []string, query string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if MatchesSearchQuery(n, query) {
			out = append(out, n)
		}
	}
	return out
}

func anyTokenMatches(q string, targets []string) bool {
	for _, t := range targets {
		if TokenMatches(q, t) {
			return true
		}
	}
	return false
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

