package menu

import (
	"errors"
	"regexp"
	"strings"

	"menu-service/internal/fileio"
)

// ErrNoNameColumn — в таблице не нашлась колонка с названием блюда.
var ErrNoNameColumn = errors.New("name column not found")

// DefaultCategory — куда попадают строки без категории.
const DefaultCategory = "Без категории"

// Columns — какие колонки таблицы считать названием и категорией.
// Допускаются альтернативы через "|": "Наименование|Блюдо".
type Columns struct {
	Name     string
	Category string
}

var DefaultColumns = Columns{
	Name:     "name|наименование|название|блюдо|позиция",
	Category: "category|категория|раздел|группа",
}

// подстроки заголовка → каноническое поле блюда
var headerAliases = []struct {
	field string
	subs  []string
}{
	{"kcal", []string{"ккал", "калор", "kcal", "calor", "энерг"}},
	{"protein", []string{"белк", "белок", "protein"}},
	{"fat", []string{"жир", "fat"}},
	{"carbs", []string{"углев", "carb"}},
	{"weight", []string{"вес", "выход", "масса", "weight", "грамм"}},
	{"price", []string{"цена", "стоимость", "price", "cost"}},
}

var reHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Import собирает из таблицы меню вида {"name", "categories":[{"name","dishes":[...]}]}.
// Категории идут в порядке первого появления.
func Import(tbl *fileio.Table, cols Columns, menuName string) (map[string]any, error) {
	if cols.Name == "" {
		cols.Name = DefaultColumns.Name
	}
	if cols.Category == "" {
		cols.Category = DefaultColumns.Category
	}
	menu := map[string]any{"name": menuName, "categories": []any{}}
	if tbl == nil || len(tbl.Headers) == 0 {
		return menu, nil
	}

	nameKey := resolveKey(tbl.Headers, cols.Name)
	if nameKey == "" {
		return nil, ErrNoNameColumn
	}
	catKey := resolveKey(tbl.Headers, cols.Category)

	var order []string
	byCat := make(map[string][]any)
	for _, rec := range tbl.Rows {
		if looksLikeHeader(rec) {
			continue
		}
		name := strings.TrimSpace(rec[nameKey])
		if name == "" {
			continue
		}
		cat := DefaultCategory
		if catKey != "" {
			if c := strings.TrimSpace(rec[catKey]); c != "" {
				cat = c
			}
		}
		if _, ok := byCat[cat]; !ok {
			order = append(order, cat)
		}
		byCat[cat] = append(byCat[cat], rowToDish(tbl.Headers, rec, nameKey, catKey))
	}

	cats := make([]any, 0, len(order))
	for _, c := range order {
		cats = append(cats, map[string]any{"name": c, "dishes": byCat[c]})
	}
	menu["categories"] = cats
	return menu, nil
}

// rowToDish: ключи — нормализованные заголовки, плюс канонические kcal/protein/... по алиасам.
func rowToDish(headers []string, rec map[string]string, nameKey, catKey string) map[string]any {
	dish := map[string]any{"name": strings.TrimSpace(rec[nameKey])}
	for _, h := range headers {
		if h == nameKey || h == catKey {
			continue
		}
		v := strings.TrimSpace(rec[h])
		if v == "" {
			continue
		}
		nk := normHeaderKey(h)
		if _, taken := dish[nk]; !taken {
			dish[nk] = v
		}
		if field := canonicalField(nk); field != "" {
			if _, taken := dish[field]; !taken {
				dish[field] = v
			}
		}
	}
	return dish
}

func canonicalField(normHeader string) string {
	for _, a := range headerAliases {
		for _, s := range a.subs {
			if strings.Contains(normHeader, s) {
				return a.field
			}
		}
	}
	return ""
}

// normHeaderKey: нижний регистр, ё→е, служебные символы → пробел.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "ё", "е")
	s = reHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey ищет заголовок по желаемому имени с альтернативами "a|b|c":
// точное совпадение, затем нормализованное, затем вхождение (самое длинное).
func resolveKey(headers []string, want string) string {
	var alts, normAlts []string
	for _, a := range strings.Split(want, "|") {
		if a = strings.TrimSpace(a); a != "" {
			alts = append(alts, a)
			normAlts = append(normAlts, normHeaderKey(a))
		}
	}
	if len(alts) == 0 {
		return ""
	}
	for _, a := range alts {
		for _, h := range headers {
			if h == a {
				return h
			}
		}
	}
	for _, n := range normAlts {
		for _, h := range headers {
			if normHeaderKey(h) == n {
				return h
			}
		}
	}
	best, bestScore := "", 0
	for _, h := range headers {
		nh := normHeaderKey(h)
		if nh == "" {
			continue
		}
		for _, n := range normAlts {
			if n != "" && strings.Contains(nh, n) && len(n) > bestScore {
				best, bestScore = h, len(n)
			}
		}
	}
	return best
}

// looksLikeHeader — повтор шапки посреди таблицы (выгрузки 1С по листам).
func looksLikeHeader(rec map[string]string) bool {
	cnt := 0
	for h, v := range rec {
		if v != "" && normHeaderKey(v) == normHeaderKey(h) {
			cnt++
		}
	}
	return cnt >= 2
}
