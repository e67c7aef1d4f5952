package nutrition

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// maxProbeDepth ограничивает рекурсию по вложенным map/slice.
const maxProbeDepth = 4

// NaN — значение «нет числа». Сравнивать только через IsMissing.
var NaN = math.NaN()

// числовые подключи, которые пробуем у map по порядку
var valueKeys = []string{"value", "amount", "quantity", "qty", "number", "grams", "grammage", "val", "content"}

var reStrictNumber = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)$`)

// IsMissing сообщает, что v — не конечное число.
func IsMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ParseNumber достаёт конечное число из произвольного значения JSON-подобной записи.
// Никогда не паникует; если числа нет — NaN.
func ParseNumber(v any) float64 {
	return parseNumber(v, 0)
}

func parseNumber(v any, depth int) float64 {
	switch x := v.(type) {
	case nil:
		return NaN
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		return parseNumberString(string(x))
	case string:
		return parseNumberString(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case []any:
		if depth >= maxProbeDepth {
			return NaN
		}
		for _, item := range x {
			if n := parseNumber(item, depth+1); !IsMissing(n) {
				return n
			}
		}
		return NaN
	case []map[string]any:
		if depth >= maxProbeDepth {
			return NaN
		}
		for _, item := range x {
			if n := parseNumber(item, depth+1); !IsMissing(n) {
				return n
			}
		}
		return NaN
	case []string:
		for _, item := range x {
			if n := parseNumberString(item); !IsMissing(n) {
				return n
			}
		}
		return NaN
	case []float64:
		for _, item := range x {
			if !IsMissing(item) {
				return item
			}
		}
		return NaN
	case map[string]any:
		if depth >= maxProbeDepth {
			return NaN
		}
		for _, k := range valueKeys {
			sub, ok := x[k]
			if !ok {
				continue
			}
			if n := parseNumber(sub, depth+1); !IsMissing(n) {
				return n
			}
		}
		return NaN
	case Dish:
		return parseNumber(map[string]any(x), depth)
	default:
		return NaN
	}
}

// parseNumberString: строгий разбор, "12,5" → 12.5, "12 г" → NaN.
func parseNumberString(s string) float64 {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")
	if !reStrictNumber.MatchString(s) {
		return NaN
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NaN
	}
	return finite(f)
}

func finite(f float64) float64 {
	if IsMissing(f) {
		return NaN
	}
	return f
}
