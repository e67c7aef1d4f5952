package search

import (
	"sort"
	"strings"
)

// Index — триграммный индекс по нормализованным названиям для подсказок
// «возможно, вы искали».
type Index struct {
	byNorm map[string][]string           // нормализованное → исходные названия
	inv    map[string]map[string]struct{} // триграмма → множество нормализованных
}

// Suggestion — кандидат с оценкой схожести 0..1.
type Suggestion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func NewIndex(names []string) *Index {
	idx := &Index{
		byNorm: make(map[string][]string),
		inv:    make(map[string]map[string]struct{}),
	}
	for _, name := range names {
		nn := NormalizeSearchText(name)
		if nn == "" {
			continue
		}
		if _, seen := idx.byNorm[nn]; !seen {
			for g := range trigramSet(nn) {
				bucket, ok := idx.inv[g]
				if !ok {
					bucket = make(map[string]struct{})
					idx.inv[g] = bucket
				}
				bucket[nn] = struct{}{}
			}
		}
		idx.byNorm[nn] = appendUnique(idx.byNorm[nn], name)
	}
	return idx
}

// Suggest возвращает до limit названий со схожестью не ниже threshold,
// по убыванию оценки (при равенстве — по алфавиту).
func (idx *Index) Suggest(query string, limit int, threshold float64) []Suggestion {
	norm := NormalizeSearchText(query)
	if norm == "" || limit <= 0 {
		return nil
	}
	var out []Suggestion
	for _, cand := range idx.candidates(norm) {
		s := bestSimilarity(norm, cand)
		if s < threshold {
			continue
		}
		for _, name := range idx.byNorm[cand] {
			out = append(out, Suggestion{Name: name, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (idx *Index) candidates(norm string) []string {
	seen := make(map[string]struct{})
	for g := range trigramSet(norm) {
		for nn := range idx.inv[g] {
			seen[nn] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for nn := range seen {
		out = append(out, nn)
	}
	sort.Strings(out)
	return out
}

func trigramSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	if s == "" {
		return m
	}
	r := []rune(" " + s + " ")
	if len(r) < 3 {
		m[string(r)] = struct{}{}
		return m
	}
	for i := 0; i+3 <= len(r); i++ {
		m[string(r[i:i+3])] = struct{}{}
	}
	return m
}

// similarity — нормированное расстояние Дамерау–Левенштейна в [0..1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	m := max(len(ra), len(rb))
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 1 - float64(damerauLevenshtein(ra, rb))/float64(m)
}

// порядок слов не важен: "цезарь салат" ~ "салат цезарь"
func bestSimilarity(a, b string) float64 {
	return max(similarity(a, b), similarity(sortTokens(a), sortTokens(b)))
}

func sortTokens(s string) string {
	t := strings.Fields(s)
	sort.Strings(t)
	return strings.Join(t, " ")
}

func damerauLevenshtein(a, b []rune) int {
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
		dp[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		dp[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			dp[i][j] = min(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
			// транспозиция соседних
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				dp[i][j] = min(dp[i][j], dp[i-2][j-2]+1)
			}
		}
	}
	return dp[len(a)][len(b)]
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
