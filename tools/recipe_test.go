package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecipes(t *testing.T) {
	soup := Recipe{ID: "soup", Name: "Soup", Servings: 2, Ingredients: []string{"1 cup stock", "Salt to taste"}}

	tests := []struct {
		name     string
		source   string
		data     string
		expected []Recipe
	}{
		{
			name:     "json list",
			source:   "recipes.json",
			data:     `[{"id":"soup","name":"Soup","servings":2,"ingredients":["1 cup stock","Salt to taste"]}]`,
			expected: []Recipe{soup},
		},
		{
			name:     "json object",
			source:   "s3://bucket/recipes",
			data:     ` {"recipes":[{"id":"soup","name":"Soup","servings":2,"ingredients":["1 cup stock","Salt to taste"]}]}`,
			expected: []Recipe{soup},
		},
		{
			name:     "yaml list",
			source:   "recipes.yaml",
			data:     "- id: soup\n  name: Soup\n  servings: 2\n  ingredients:\n    - 1 cup stock\n    - Salt to taste\n",
			expected: []Recipe{soup},
		},
		{
			name:     "yaml object with upper case extension",
			source:   "RECIPES.YML",
			data:     "recipes:\n  - id: soup\n    name: Soup\n    servings: 2\n    ingredients:\n      - 1 cup stock\n      - Salt to taste\n",
			expected: []Recipe{soup},
		},
		{
			name:     "toml",
			source:   "recipes.toml",
			data:     "[[recipes]]\nid = \"soup\"\nname = \"Soup\"\nservings = 2\ningredients = [\"1 cup stock\", \"Salt to taste\"]\n",
			expected: []Recipe{soup},
		},
		{
			name:     "empty json list",
			source:   "recipes.json",
			data:     `[]`,
			expected: []Recipe{},
		},
		{
			name:     "empty toml",
			source:   "recipes.toml",
			data:     ``,
			expected: []Recipe{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecipes(tt.source, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("invalid data", func(t *testing.T) {
		for source, data := range map[string]string{
			"recipes.json": "invalid json",
			"recipes.yaml": "recipes: [unclosed",
			"recipes.toml": "[[recipes]\n",
		} {
			_, err := DecodeRecipes(source, []byte(data))
			assert.Error(t, err, source)
		}
	})
}

func TestScaleRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("to servings", func(t *testing.T) {
		got, err := ScaleRecipeTo(ctx, DefaultScaler, testRecipes[0], 2)
		require.NoError(t, err)
		assert.Equal(t, ScaledRecipe{
			ID:               "pancakes",
			Name:             "Pancakes",
			OriginalServings: 4,
			Servings:         2,
			Multiplier:       0.5,
			Ingredients:      []string{"3/4 cups flour", "1 tbsp sugar", "1/2 cup milk", "Pinch of salt"},
		}, got)
		assert.True(t, got.IsValid())
	})

	t.Run("by multiplier", func(t *testing.T) {
		got, err := ScaleRecipeBy(ctx, DefaultScaler, testRecipes[1], 0.5)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Servings)
		assert.Equal(t, []string{
			"1 cans (400g) kidney beans",
			"1/2-1 tsp chili flakes",
			"1/2 onion, diced",
		}, got.Ingredients)
	})

	t.Run("unknown servings default to four", func(t *testing.T) {
		got, err := ScaleRecipeBy(ctx, DefaultScaler, testRecipes[2], 3)
		require.NoError(t, err)
		assert.Equal(t, 4, got.OriginalServings)
		assert.Equal(t, 12, got.Servings)
		assert.Equal(t, []string{"6 slices bread", "3 tbsp butter"}, got.Ingredients)
	})

	t.Run("multiplier of one leaves lines untouched", func(t *testing.T) {
		r := Recipe{ID: "messy", Servings: 2, Ingredients: []string{"  2 cups  flour,, "}}
		got, err := ScaleRecipeBy(ctx, DefaultScaler, r, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"  2 cups  flour,, "}, got.Ingredients)
		assert.Equal(t, 2, got.Servings)
		assert.Equal(t, 1.0, got.Multiplier)
	})

	t.Run("invalid amounts", func(t *testing.T) {
		_, err := ScaleRecipeTo(ctx, DefaultScaler, testRecipes[0], 0)
		assert.EqualError(t, err, "servings must be greater than 0")
		_, err = ScaleRecipeBy(ctx, DefaultScaler, testRecipes[0], -2)
		assert.EqualError(t, err, "multiplier must be greater than 0")
	})

	t.Run("scaler error is wrapped", func(t *testing.T) {
		failing := ScaleFunc(func(context.Context, []string, float64, float64) ([]string, error) {
			return nil, errors.New("boom")
		})
		_, err := ScaleRecipeTo(ctx, failing, testRecipes[0], 8)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `scale recipe "pancakes"`)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestServingsFor(t *testing.T) {
	assert.Equal(t, 2, ServingsFor(4, 0.5))
	assert.Equal(t, 2, ServingsFor(3, 0.5))
	assert.Equal(t, 24, ServingsFor(4, 6))
	assert.Equal(t, 1, ServingsFor(1, 0.25))
}

func TestPresets(t *testing.T) {
	presets := Presets(testRecipes[2])
	require.Len(t, presets, len(PresetMultipliers))

	servings := make([]int, len(presets))
	for i, p := range presets {
		assert.Equal(t, PresetMultipliers[i], p.Multiplier)
		servings[i] = p.Servings
	}
	assert.Equal(t, []int{2, 4, 8, 12, 16, 24, 32}, servings)
}

func TestFindRecipe(t *testing.T) {
	r, err := FindRecipe(testRecipes, "chili")
	require.NoError(t, err)
	assert.Equal(t, "Bean Chili", r.Name)

	_, err = FindRecipe(testRecipes, "lasagna")
	assert.EqualError(t, err, `recipe "lasagna" not found`)
}

func TestScaledRecipe_IsValid(t *testing.T) {
	valid := ScaledRecipe{ID: "x", OriginalServings: 4, Servings: 2, Multiplier: 0.5, Ingredients: []string{}}
	assert.True(t, valid.IsValid())

	for name, mutate := range map[string]func(*ScaledRecipe){
		"missing id":          func(s *ScaledRecipe) { s.ID = "" },
		"zero servings":       func(s *ScaledRecipe) { s.Servings = 0 },
		"zero original":       func(s *ScaledRecipe) { s.OriginalServings = 0 },
		"zero multiplier":     func(s *ScaledRecipe) { s.Multiplier = 0 },
		"missing ingredients": func(s *ScaledRecipe) { s.Ingredients = nil },
	} {
		t.Run(name, func(t *testing.T) {
			s := valid
			mutate(&s)
			assert.False(t, s.IsValid())
		})
	}
}

func TestScaleRecipeTo_TagsContext(t *testing.T) {
	var seen string
	spy := ScaleFunc(func(ctx context.Context, in []string, _, _ float64) ([]string, error) {
		seen = RecipeIDFromContext(ctx)
		return in, nil
	})
	_, err := ScaleRecipeTo(context.Background(), spy, testRecipes[1], 3)
	require.NoError(t, err)
	assert.Equal(t, "chili", seen)
	assert.Empty(t, RecipeIDFromContext(context.Background()))
}
