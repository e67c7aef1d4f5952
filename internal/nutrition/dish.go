package nutrition

import (
	"encoding/json"
	"strings"
)

// Dish — нормализованное блюдо: исходные поля + category и шесть канонических чисел.
// Отсутствующее значение хранится как NaN.
type Dish map[string]any

// Facts — типизированный срез канонических полей.
type Facts struct {
	Kcal    float64
	Protein float64
	Fat     float64
	Carbs   float64
	Weight  float64
	Price   float64
}

// HasKcal и прочие отвечают на вопрос «показывать число или прочерк».
func (f Facts) HasKcal() bool    { return !IsMissing(f.Kcal) }
func (f Facts) HasProtein() bool { return !IsMissing(f.Protein) }
func (f Facts) HasFat() bool     { return !IsMissing(f.Fat) }
func (f Facts) HasCarbs() bool   { return !IsMissing(f.Carbs) }
func (f Facts) HasWeight() bool  { return !IsMissing(f.Weight) }
func (f Facts) HasPrice() bool   { return !IsMissing(f.Price) }

// ReadFacts вычисляет канонические поля по сырой записи.
func ReadFacts(dish map[string]any) Facts {
	return Facts{
		Kcal:    ReadNutritionValue(dish, KcalPaths, KcalTokens),
		Protein: ReadNutritionValue(dish, ProteinPaths, ProteinTokens),
		Fat:     ReadNutritionValue(dish, FatPaths, FatTokens),
		Carbs:   ReadNutritionValue(dish, CarbsPaths, CarbsTokens),
		Weight:  ReadNutritionValue(dish, WeightPaths, nil),
		Price:   ReadNutritionValue(dish, PricePaths, nil),
	}
}

// Facts возвращает уже посчитанные поля нормализованного блюда.
func (d Dish) Facts() Facts {
	return Facts{
		Kcal:    ParseNumber(d[FieldKcal]),
		Protein: ParseNumber(d[FieldProtein]),
		Fat:     ParseNumber(d[FieldFat]),
		Carbs:   ParseNumber(d[FieldCarbs]),
		Weight:  ParseNumber(d[FieldWeight]),
		Price:   ParseNumber(d[FieldPrice]),
	}
}

// Name — отображаемое имя блюда ("" если нет).
func (d Dish) Name() string {
	for _, k := range []string{"name", "title"} {
		if s, ok := d[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Category — категория, проставленная при нормализации.
func (d Dish) Category() string {
	s, _ := d[FieldCategory].(string)
	return s
}

// MarshalJSON: NaN/Inf в верхнем уровне пишутся как null.
func (d Dish) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d))
	for k, v := range d {
		if f, ok := v.(float64); ok && IsMissing(f) {
			out[k] = nil
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

// NormalizeDish возвращает поверхностную копию dish с категорией и каноническими полями.
// Вход не изменяется.
func NormalizeDish(dish map[string]any, category string) Dish {
	out := make(Dish, len(dish)+7)
	for k, v := range dish {
		out[k] = v
	}
	if category != "" || out[FieldCategory] == nil {
		out[FieldCategory] = category
	}

	f := ReadFacts(dish)
	out[FieldKcal] = f.Kcal
	out[FieldProtein] = f.Protein
	out[FieldFat] = f.Fat
	out[FieldCarbs] = f.Carbs
	out[FieldWeight] = f.Weight
	out[FieldPrice] = f.Price
	return out
}

// FlattenMenuDishes разворачивает menu.categories[].dishes[] в плоский список
// нормализованных блюд в порядке объявления.
func FlattenMenuDishes(menu map[string]any) []Dish {
	out := make([]Dish, 0)
	for _, c := range sequence(menu["categories"]) {
		cat, ok := asMap(c)
		if !ok {
			continue
		}
		name := categoryName(cat)
		for _, d := range sequence(cat["dishes"]) {
			dish, ok := asMap(d)
			if !ok {
				continue
			}
			out = append(out, NormalizeDish(dish, name))
		}
	}
	return out
}

func categoryName(cat map[string]any) string {
	for _, k := range []string{"name", "title"} {
		if s, ok := cat[k].(string); ok {
			return s
		}
	}
	return ""
}

func sequence(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []map[string]any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	case []Dish:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	default:
		return nil
	}
}
