package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"recipescaler/scaler"
)

// defaultServings is assumed for recipes that do not state a serving count.
const defaultServings = 4

// PresetMultipliers are the quick scaling choices offered for a recipe.
var PresetMultipliers = []float64{0.5, 1, 2, 3, 4, 6, 8}

type Recipe struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	MealTypes   []string `json:"meal_types,omitempty" yaml:"meal_types,omitempty" toml:"meal_types,omitempty"`
	Servings    int      `json:"servings,omitempty" yaml:"servings,omitempty" toml:"servings,omitempty"`
	Ingredients []string `json:"ingredients" yaml:"ingredients" toml:"ingredients"`
}

// BaseServings returns the recipe's serving count, or the default when the
// recipe does not say.
func (r Recipe) BaseServings() int {
	if r.Servings > 0 {
		return r.Servings
	}
	return defaultServings
}

// ScaledRecipe is a recipe whose ingredient lines have been rewritten for a
// new serving count.
type ScaledRecipe struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	OriginalServings int      `json:"original_servings"`
	Servings         int      `json:"servings"`
	Multiplier       float64  `json:"multiplier"`
	Ingredients      []string `json:"ingredients"`
}

// IsValid checks the scaled recipe describes a real scaling.
func (sr *ScaledRecipe) IsValid() bool {
	if sr.ID == "" {
		return false
	}
	if sr.OriginalServings <= 0 || sr.Servings <= 0 || sr.Multiplier <= 0 {
		return false
	}
	return sr.Ingredients != nil
}

// Preset is one quick scaling choice resolved against a recipe.
type Preset struct {
	Multiplier float64 `json:"multiplier"`
	Servings   int     `json:"servings"`
}

// Presets resolves PresetMultipliers against the recipe's serving count.
func Presets(r Recipe) []Preset {
	out := make([]Preset, 0, len(PresetMultipliers))
	for _, m := range PresetMultipliers {
		out = append(out, Preset{Multiplier: m, Servings: ServingsFor(r.BaseServings(), m)})
	}
	return out
}

// ServingsFor rounds original*multiplier to a whole serving count, never
// going below one serving.
func ServingsFor(original int, multiplier float64) int {
	n := int(math.Round(float64(original) * multiplier))
	if n < 1 {
		return 1
	}
	return n
}

// IngredientScaler rescales a list of ingredient lines between two serving
// counts.
type IngredientScaler interface {
	ScaleIngredients(ctx context.Context, ingredients []string, originalServings, newServings float64) ([]string, error)
}

// ScaleFunc adapts a function to IngredientScaler.
type ScaleFunc func(ctx context.Context, ingredients []string, originalServings, newServings float64) ([]string, error)

func (f ScaleFunc) ScaleIngredients(ctx context.Context, ingredients []string, originalServings, newServings float64) ([]string, error) {
	return f(ctx, ingredients, originalServings, newServings)
}

// DefaultScaler runs the uninstrumented concurrent batch scaler.
var DefaultScaler IngredientScaler = ScaleFunc(func(ctx context.Context, ingredients []string, originalServings, newServings float64) ([]string, error) {
	return scaler.ScaleIngredientsContext(ctx, ingredients, originalServings, newServings)
})

type recipeIDKey struct{}

// ContextWithRecipeID tags ctx with the recipe being scaled so scalers further
// down can report it.
func ContextWithRecipeID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, recipeIDKey{}, id)
}

// RecipeIDFromContext returns the id set by ContextWithRecipeID, or "".
func RecipeIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(recipeIDKey{}).(string)
	return id
}

// ScaleRecipeTo rewrites the recipe for the given number of servings.
func ScaleRecipeTo(ctx context.Context, s IngredientScaler, r Recipe, servings int) (ScaledRecipe, error) {
	if servings <= 0 {
		return ScaledRecipe{}, fmt.Errorf("servings must be greater than 0")
	}
	base := r.BaseServings()
	lines, err := s.ScaleIngredients(ContextWithRecipeID(ctx, r.ID), r.Ingredients, float64(base), float64(servings))
	if err != nil {
		return ScaledRecipe{}, fmt.Errorf("scale recipe %q: %w", r.ID, err)
	}
	return ScaledRecipe{
		ID:               r.ID,
		Name:             r.Name,
		OriginalServings: base,
		Servings:         servings,
		Multiplier:       float64(servings) / float64(base),
		Ingredients:      lines,
	}, nil
}

// ScaleRecipeBy rewrites the recipe for round(servings*multiplier) servings.
// A multiplier of exactly one hands back the ingredient lines untouched.
func ScaleRecipeBy(ctx context.Context, s IngredientScaler, r Recipe, multiplier float64) (ScaledRecipe, error) {
	if multiplier <= 0 {
		return ScaledRecipe{}, fmt.Errorf("multiplier must be greater than 0")
	}
	if multiplier == 1 {
		lines := make([]string, len(r.Ingredients))
		copy(lines, r.Ingredients)
		return ScaledRecipe{
			ID:               r.ID,
			Name:             r.Name,
			OriginalServings: r.BaseServings(),
			Servings:         r.BaseServings(),
			Multiplier:       1,
			Ingredients:      lines,
		}, nil
	}
	return ScaleRecipeTo(ctx, s, r, ServingsFor(r.BaseServings(), multiplier))
}

// FindRecipe returns the recipe with the given id.
func FindRecipe(recipes []Recipe, id string) (Recipe, error) {
	for _, r := range recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return Recipe{}, fmt.Errorf("recipe %q not found", id)
}

type recipeCollection struct {
	Recipes []Recipe `json:"recipes" yaml:"recipes" toml:"recipes"`
}

// DecodeRecipes parses a recipe collection. The format follows the source's
// extension: YAML for .yaml/.yml, TOML for .toml, JSON otherwise. JSON and
// YAML accept either a bare list or an object with a "recipes" key; TOML
// needs the "recipes" key.
func DecodeRecipes(source string, data []byte) ([]Recipe, error) {
	var (
		recipes []Recipe
		err     error
	)
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		recipes, err = decodeYAMLRecipes(data)
	case ".toml":
		var c recipeCollection
		err = toml.Unmarshal(data, &c)
		recipes = c.Recipes
	default:
		recipes, err = decodeJSONRecipes(data)
	}
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = make([]Recipe, 0)
	}
	return recipes, nil
}

func decodeJSONRecipes(data []byte) ([]Recipe, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var c recipeCollection
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c.Recipes, nil
	}
	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func decodeYAMLRecipes(data []byte) ([]Recipe, error) {
	var recipes []Recipe
	if err := yaml.Unmarshal(data, &recipes); err == nil {
		return recipes, nil
	}
	var c recipeCollection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c.Recipes, nil
}
