package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// первое число в строке: "250 ккал", "Белки: 12,5 г", "1 234,50 ₽"
var rxFirstNum = regexp.MustCompile(`[-+]?\d+(?:[ \x{00A0}\x{202F}]\d{3})*(?:[.,]\d+)?`)

// ExtractNumberRU находит первое число в произвольном тексте.
// Понимает десятичную запятую и разряды через (неразрывный) пробел.
func ExtractNumberRU(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	m := rxFirstNum.FindString(s)
	if m == "" {
		return 0, false
	}
	repl := strings.NewReplacer(" ", "", "\u00A0", "", "\u202F", "", ",", ".")
	f, err := strconv.ParseFloat(repl.Replace(m), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
