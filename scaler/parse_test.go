package scaler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected ParsedIngredient
	}{
		{
			name: "mixed number with unit",
			line: "1 1/2 cups flour",
			expected: ParsedIngredient{
				Original: "1 1/2 cups flour", Quantity: 1.5, HasQuantity: true,
				Unit: "cups", Ingredient: "flour",
			},
		},
		{
			name: "hyphen range",
			line: "2-3 tbsp sugar",
			expected: ParsedIngredient{
				Original: "2-3 tbsp sugar", Quantity: 2, HasQuantity: true,
				IsRange: true, RangeEnd: 3, Unit: "tbsp", Ingredient: "sugar",
			},
		},
		{
			name: "word range",
			line: "1 to 2 tablespoons olive oil",
			expected: ParsedIngredient{
				Original: "1 to 2 tablespoons olive oil", Quantity: 1, HasQuantity: true,
				IsRange: true, RangeEnd: 2, Unit: "tablespoons", Ingredient: "olive oil",
			},
		},
		{
			name: "en dash range with spaces",
			line: "2 – 3 cloves garlic",
			expected: ParsedIngredient{
				Original: "2 – 3 cloves garlic", Quantity: 2, HasQuantity: true,
				IsRange: true, RangeEnd: 3, Unit: "cloves", Ingredient: "garlic",
			},
		},
		{
			name: "range starting with a mixed number",
			line: "1 1/2-2 cups stock",
			expected: ParsedIngredient{
				Original: "1 1/2-2 cups stock", Quantity: 1.5, HasQuantity: true,
				IsRange: true, RangeEnd: 2, Unit: "cups", Ingredient: "stock",
			},
		},
		{
			name: "no quantity",
			line: "Salt to taste",
			expected: ParsedIngredient{
				Original: "Salt to taste", Ingredient: "Salt to taste",
			},
		},
		{
			name: "bare fraction",
			line: "3/4 cup milk",
			expected: ParsedIngredient{
				Original: "3/4 cup milk", Quantity: 0.75, HasQuantity: true,
				Unit: "cup", Ingredient: "milk",
			},
		},
		{
			name: "decimal keeps ingredient case",
			line: "0.5 kg Beef Mince",
			expected: ParsedIngredient{
				Original: "0.5 kg Beef Mince", Quantity: 0.5, HasQuantity: true,
				Unit: "kg", Ingredient: "Beef Mince",
			},
		},
		{
			name: "unit prefix inside a word is not a unit",
			line: "2 large eggs",
			expected: ParsedIngredient{
				Original: "2 large eggs", Quantity: 2, HasQuantity: true,
				Ingredient: "large eggs",
			},
		},
		{
			name: "word starting with to is not a range",
			line: "2 tomatoes",
			expected: ParsedIngredient{
				Original: "2 tomatoes", Quantity: 2, HasQuantity: true,
				Ingredient: "tomatoes",
			},
		},
		{
			name: "capitalized abbreviation with dot",
			line: "1 Tbsp. butter",
			expected: ParsedIngredient{
				Original: "1 Tbsp. butter", Quantity: 1, HasQuantity: true,
				Unit: "tbsp", Ingredient: "butter",
			},
		},
		{
			name: "two word unit",
			line: "1 fl oz vanilla",
			expected: ParsedIngredient{
				Original: "1 fl oz vanilla", Quantity: 1, HasQuantity: true,
				Unit: "fl oz", Ingredient: "vanilla",
			},
		},
		{
			name: "unit followed by a note",
			line: "1 can (400g) tomatoes",
			expected: ParsedIngredient{
				Original: "1 can (400g) tomatoes", Quantity: 1, HasQuantity: true,
				Unit: "can", Ingredient: "(400g) tomatoes",
			},
		},
		{
			name: "nothing after the unit falls back to the original",
			line: "2 cups",
			expected: ParsedIngredient{
				Original: "2 cups", Quantity: 2, HasQuantity: true,
				Unit: "cups", Ingredient: "2 cups",
			},
		},
		{
			name: "surrounding whitespace is trimmed",
			line: "  3 eggs  ",
			expected: ParsedIngredient{
				Original: "3 eggs", Quantity: 3, HasQuantity: true,
				Ingredient: "eggs",
			},
		},
		{
			name:     "empty line",
			line:     "",
			expected: ParsedIngredient{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			assert.Equal(t, tt.expected.Original, got.Original)
			assert.Equal(t, tt.expected.HasQuantity, got.HasQuantity)
			assert.InDelta(t, tt.expected.Quantity, got.Quantity, 1e-9)
			assert.Equal(t, tt.expected.IsRange, got.IsRange)
			assert.InDelta(t, tt.expected.RangeEnd, got.RangeEnd, 1e-9)
			assert.Equal(t, tt.expected.Unit, got.Unit)
			assert.Equal(t, tt.expected.Ingredient, got.Ingredient)
		})
	}
}

func TestParse_UnitsFromVocabulary(t *testing.T) {
	lines := []string{
		"1 cup rice", "2 Tablespoons oil", "1 tsp salt", "1 gallon milk", "1 gal milk",
		"500 ml cream", "2 lb beef", "3 lbs potatoes", "100 g butter", "1 kg flour",
		"2 c flour", "1 pkg yeast", "1 jar pesto", "2 slices bread", "1 inch ginger",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			p := Parse(line)
			assert.True(t, p.HasQuantity)
			assert.True(t, IsUnit(p.Unit), "unit %q should come from the vocabulary", p.Unit)
			assert.Equal(t, p.Unit, lowerASCII(p.Unit))
		})
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"1/2", 0.5},
		{"1/3", 1.0 / 3},
		{"15/16", 0.9375},
		{"1 1/2", 1.5},
		{"2  3/4", 2.75},
		{"3/4", 0.75},
		{"5/6", 5.0 / 6},
		{"2.25", 2.25},
		{"7", 7},
		{"abc", 0},
		{"1/0", 0},
		{"NaN", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseFraction(tt.text), 1e-9)
		})
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"1 1/2 cups", "1 1/2"},
		{"1 cup", "1"},
		{"1.5 kg", "1.5"},
		{"1. stir", "1"},
		{"3/4 cup", "3/4"},
		{"12 eggs", "12"},
		{"eggs", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in[:scanNumber(tt.in)])
		})
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("1 1/2-2 cups all-purpose flour, sifted")
	}
}
