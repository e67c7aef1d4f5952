package nutrition

import (
	"sort"
	"strings"

	"menu-service/internal/utils"
)

// ReadNutritionValue ищет значение поля сначала по прямым путям (directPaths),
// затем в списках нутриентов по меткам (tokens). Если tokens пуст — только пути.
func ReadNutritionValue(dish map[string]any, directPaths, tokens []string) float64 {
	for _, p := range directPaths {
		v, ok := resolvePath(dish, p)
		if !ok {
			continue
		}
		if n := ParseNumber(v); !IsMissing(n) {
			return n
		}
	}
	if len(tokens) == 0 {
		return NaN
	}
	for _, c := range nutrientContainers {
		v, ok := resolvePath(dish, c)
		if !ok {
			continue
		}
		for _, entry := range containerEntries(v) {
			if n, ok := readLabeledEntry(entry, tokens); ok {
				return n
			}
		}
	}
	return NaN
}

// resolvePath спускается по ключам "a.b.c"; любой отсутствующий или не-map уровень — промах.
func resolvePath(m map[string]any, path string) (any, bool) {
	if m == nil || path == "" {
		return nil, false
	}
	var cur any = m
	for _, key := range strings.Split(path, ".") {
		node, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, x != nil
	case Dish:
		return map[string]any(x), x != nil
	default:
		return nil, false
	}
}

// containerEntries: массив как есть, у объекта — значения в порядке ключей.
func containerEntries(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []map[string]any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	}
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func readLabeledEntry(entry any, tokens []string) (float64, bool) {
	switch x := entry.(type) {
	case string:
		if !containsAny(strings.ToLower(x), tokens) {
			return 0, false
		}
		return utils.ExtractNumberRU(x)
	default:
		m, ok := asMap(entry)
		if !ok {
			// числа без метки и прочее пропускаем
			return 0, false
		}
		label := entryLabel(m)
		if label == "" || !containsAny(label, tokens) {
			return 0, false
		}
		if n := ParseNumber(m); !IsMissing(n) {
			return n, true
		}
		// "250 ккал" строгим разбором не берётся
		for _, k := range valueKeys {
			if s, ok := m[k].(string); ok {
				if n, ok := utils.ExtractNumberRU(s); ok {
					return n, true
				}
			}
		}
		return 0, false
	}
}

func entryLabel(m map[string]any) string {
	for _, k := range labelKeys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.ToLower(s)
		}
	}
	return ""
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if t != "" && strings.Contains(s, t) {
			return true
		}
	}
	return false
}
