package nutrition

// Таблицы путей и меток. Только чтение.

// Имена канонических полей в нормализованном блюде.
const (
	FieldCategory = "category"
	FieldKcal     = "kcal"
	FieldProtein  = "protein"
	FieldFat      = "fat"
	FieldCarbs    = "carbs"
	FieldWeight   = "weight"
	FieldPrice    = "price"
)

var (
	KcalPaths = []string{
		"kcal", "calories", "calorie", "energy", "energy_kcal", "energyKcal", "kcal_100g",
		"калории", "ккал", "калорийность",
		"nutrition.kcal", "nutrition.calories", "nutrition.energy", "nutrition.energy_kcal",
		"nutritionFacts.calories", "nutrition_facts.calories",
		"nutritional_value.kcal", "nutritionalValue.kcal", "nutritionalValue.calories",
		"macros.kcal", "macros.calories", "kbju.k", "kbju.kcal",
		"nutrients.kcal", "nutrients.calories", "nutrients.energy",
	}
	ProteinPaths = []string{
		"protein", "proteins", "белки", "белок",
		"nutrition.protein", "nutrition.proteins",
		"nutritionFacts.protein", "nutrition_facts.protein",
		"nutritional_value.protein", "nutritionalValue.protein", "nutritionalValue.proteins",
		"macros.protein", "macros.proteins", "kbju.b", "kbju.protein",
		"nutrients.protein", "nutrients.proteins",
	}
	FatPaths = []string{
		"fat", "fats", "жиры", "жир",
		"nutrition.fat", "nutrition.fats",
		"nutritionFacts.fat", "nutrition_facts.fat",
		"nutritional_value.fat", "nutritionalValue.fat", "nutritionalValue.fats",
		"macros.fat", "macros.fats", "kbju.zh", "kbju.fat",
		"nutrients.fat", "nutrients.fats",
	}
	CarbsPaths = []string{
		"carbs", "carbohydrates", "carbohydrate", "углеводы",
		"nutrition.carbs", "nutrition.carbohydrates",
		"nutritionFacts.carbohydrates", "nutrition_facts.carbohydrates",
		"nutritional_value.carbs", "nutritionalValue.carbs", "nutritionalValue.carbohydrates",
		"macros.carbs", "macros.carbohydrates", "kbju.u", "kbju.carbs",
		"nutrients.carbs", "nutrients.carbohydrates",
	}
	WeightPaths = []string{
		"weight", "grams", "grammage", "portion_weight", "portionWeight", "serving_size", "servingSize",
		"вес", "выход", "масса",
		"portion.weight", "portion.grams", "serving.weight", "serving.grams",
		"nutrition.weight", "measure.value",
	}
	PricePaths = []string{
		"price", "cost", "amount_price", "priceValue", "price_value", "цена", "стоимость",
		"price.value", "price.amount", "prices.default", "prices.base",
		"pricing.price", "offer.price",
	}
)

// Метки для поиска в массивах нутриентов (подстроки в нижнем регистре).
var (
	KcalTokens    = []string{"kcal", "calor", "energ", "ккал", "калор", "энерг"}
	ProteinTokens = []string{"protein", "prot", "белк", "белок"}
	FatTokens     = []string{"fat", "lipid", "жир"}
	CarbsTokens   = []string{"carb", "углев"}
)

// контейнеры, в которых встречаются списки нутриентов
var nutrientContainers = []string{
	"nutrients", "nutrition", "nutrition.items", "nutritionFacts", "nutrition_facts",
	"nutritional_values", "nutritionalValue.items", "macros", "kbju",
}

// ключи, из которых берём метку элемента списка
var labelKeys = []string{"key", "code", "name", "title", "label", "type", "slug", "short", "abbr"}
