package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Борщ Украинский", want: "борщ украинский"},
		{name: "yo folding", input: "Ёжик в тумане", want: "ежик в тумане"},
		{name: "punctuation runs", input: "  Паста —  «Карбонара»!!! ", want: "паста карбонара"},
		{name: "digits kept", input: "Пицца 30см", want: "пицца 30см"},
		{name: "mixed scripts", input: "Latte-макиато", want: "latte макиато"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "--- !!", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSearchText(tt.input))
		})
	}
}

func TestTokenizeSearchText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"салат", "цезарь", "курицей"}, TokenizeSearchText("Салат Цезарь с курицей"))
	assert.Equal(t, []string{"чай", "чай"}, TokenizeSearchText("чай и чай"))
	assert.Equal(t, []string{"суп", "дня"}, TokenizeSearchText("Суп для дня"))
	assert.Empty(t, TokenizeSearchText("в и с"))
	assert.Empty(t, TokenizeSearchText(""))
}

func TestStemRussianToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "красного", want: "красн"},
		{input: "дом", want: "дом"},
		{input: "капучино", want: "капучин"},
		{input: "капучина", want: "капучин"},
		{input: "курицей", want: "куриц"},
		{input: "курица", want: "куриц"},
		{input: "салатами", want: "салат"},
		{input: "борщ", want: "борщ"},
		{input: "latte", want: "latte"},
		{input: "сок", want: "сок"},
		// стем короче 4 — окончание не режется, идём дальше по списку
		{input: "чая", want: "чая"},
		{input: "алоэ", want: "алоэ"},
		{input: "каноэ", want: "кано"},
		{input: "рисом", want: "рисом"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StemRussianToken(tt.input))
		})
	}
}

func TestStemRussianToken_DeclaredOrderWins(t *testing.T) {
	t.Parallel()

	// "ими" даёт стем из 3 букв, поэтому срабатывает общее "и"
	assert.Equal(t, "синим", StemRussianToken("синими"))
	// окончания прилагательных проверяются раньше общих: "ие", а не "е"
	assert.Equal(t, "свеж", StemRussianToken("свежие"))
	assert.Equal(t, "горяч", StemRussianToken("горячое"))
}

func TestAlmostEqualByPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, AlmostEqualByPrefix("капучин", "капучино"))
	assert.True(t, AlmostEqualByPrefix("пельмен", "пельмеш"))
	assert.True(t, AlmostEqualByPrefix("салат", "салат"))
	assert.False(t, AlmostEqualByPrefix("салат", "сазан"))
	assert.False(t, AlmostEqualByPrefix("суп", "супы"))
	assert.False(t, AlmostEqualByPrefix("пельмени", "пельсинка"))
}

func TestTokenMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, TokenMatches("цез", "цезарь"), "raw substring")
	assert.True(t, TokenMatches("цезарь", "цез"), "raw substring reversed")
	assert.True(t, TokenMatches("курица", "курицей"), "equal stems")
	assert.True(t, TokenMatches("салатами", "салатный"), "stem substring")
	assert.False(t, TokenMatches("борщ", "паста"))
	assert.False(t, TokenMatches("", "паста"))
}

func TestMatchesSearchQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		query     string
		want      bool
	}{
		{name: "inflected single word", candidate: "Капучино", query: "капучина", want: true},
		{name: "order independent", candidate: "Салат Цезарь с курицей", query: "цезарь курица", want: true},
		{name: "no overlap", candidate: "Борщ", query: "паста", want: false},
		{name: "empty query", candidate: "Борщ", query: "", want: true},
		{name: "symbols only query", candidate: "Борщ", query: "  !!! ", want: true},
		{name: "all query tokens required", candidate: "Салат Цезарь", query: "цезарь курица", want: false},
		{name: "extra candidate tokens fine", candidate: "Суп том ям с креветками", query: "креветки", want: true},
		{name: "stop words only falls back to substring", candidate: "Чай с лимоном", query: "с", want: true},
		{name: "stop words only no substring", candidate: "Чай", query: "с", want: false},
		{name: "candidate without tokens", candidate: "и", query: "чай", want: false},
		{name: "yo in candidate", candidate: "Мёд", query: "мед", want: true},
		{name: "latin", candidate: "Coca-Cola Zero", query: "cola", want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesSearchQuery(tt.candidate, tt.query))
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	names := []string{"Борщ", "Паста карбонара", "Салат Цезарь с курицей", "Куриный суп"}
	assert.Equal(t, []string{"Паста карбонара"}, Filter(names, "пасту"))
	assert.Equal(t, names, Filter(names, ""))
}
