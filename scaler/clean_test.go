package scaler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"trims whitespace", "  2 cups flour  ", "2 cups flour"},
		{"collapses double parentheses", "sugar ((Note 1))", "sugar (Note 1)"},
		{"drops empty parentheses", "salt ( )", "salt"},
		{"drops note already in the text", "all-purpose flour (all-purpose flour)", "all-purpose flour"},
		{"keeps useful note", "2 cups flour (sifted)", "2 cups flour (sifted)"},
		{"keeps note with single space", "Butter   (  Note 2 )", "Butter (Note 2)"},
		{"collapses commas and spaces", "flour, ,   sifted,", "flour, sifted"},
		{"cooking salt phrasing", "1 tsp cooking salt / kosher salt", "1 tsp salt"},
		{"kosher salt alternative", "1 tsp sea salt / kosher salt", "1 tsp sea salt or kosher salt"},
		{"artificial flavour remark", "1 tsp vanilla extract, real not artificially flavoured", "1 tsp vanilla extract"},
		{"vulgar fraction", "½ cup sugar", "1/2 cup sugar"},
		{"vulgar mixed number", "1½ cups milk", "1 1/2 cups milk"},
		{"blank", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.line))
		})
	}
}

func TestClean_Steps(t *testing.T) {
	t.Run("double parentheses", func(t *testing.T) {
		assert.Equal(t, "sugar (Note 1) and (x)", collapseDoubleParens("sugar ((Note 1)) and ((x))"))
		assert.Equal(t, "no parens", collapseDoubleParens("no parens"))
	})

	t.Run("empty parentheses", func(t *testing.T) {
		assert.Equal(t, "salt ", dropEmptyParens("salt ( )"))
		assert.Equal(t, "salt (x)", dropEmptyParens("salt (x)"))
	})

	t.Run("punctuation", func(t *testing.T) {
		assert.Equal(t, "a, b", tidyPunctuation("a , , b,"))
		assert.Equal(t, "a b", tidyPunctuation("a\t  b"))
	})

	t.Run("substitutions leave other text alone", func(t *testing.T) {
		assert.Equal(t, "2 cups rice", applySubstitutions("2 cups rice"))
	})

	t.Run("vulgar fractions", func(t *testing.T) {
		assert.Equal(t, "1 3/4 cups", normalizeVulgarFractions("1 ¾ cups"))
		assert.Equal(t, "1/2 cup", normalizeVulgarFractions("1⁄2 cup"))
		assert.Equal(t, "2 cups", normalizeVulgarFractions("2 cups"))
	})

	t.Run("every step is named", func(t *testing.T) {
		seen := map[string]bool{}
		for _, step := range cleanupSteps {
			assert.NotEmpty(t, step.name)
			assert.False(t, seen[step.name], "duplicate step %q", step.name)
			seen[step.name] = true
		}
	})
}

// The duplicate-note heuristic compares the note with the first word of the
// line, which is usually the quantity. Notes that mention that number are
// dropped even when they carry information.
func TestClean_DuplicateNoteHeuristicOvertriggers(t *testing.T) {
	assert.Equal(t, "1 cup milk", Clean("1 cup milk (see note 1)"))
	assert.Equal(t, "1 can tomatoes", Clean("1 (14 oz) can tomatoes"))
	assert.Equal(t, "2 cups stock (low sodium)", Clean("2 cups stock (low sodium)"))
}
