package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type IngredientsScale struct{ scaler IngredientScaler }

func NewIngredientsScale(s IngredientScaler) *IngredientsScale {
	if s == nil {
		s = DefaultScaler
	}
	return &IngredientsScale{scaler: s}
}

func (t *IngredientsScale) Name() string  { return "ingredients_scale" }
func (t *IngredientsScale) Title() string { return "Scale Ingredient Lines" }
func (t *IngredientsScale) Description() string {
	return "Rescales free-text ingredient lines from original_servings to new_servings. Lines without a quantity are returned cleaned but unchanged."
}

func (t *IngredientsScale) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredients":       {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"original_servings": {Type: "number"},
			"new_servings":      {Type: "number"},
		},
		Required: []string{"ingredients", "original_servings", "new_servings"},
	}
}

func (t *IngredientsScale) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredients": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
		Required: []string{"ingredients"},
	}
}

func (t *IngredientsScale) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	lines, ok := stringsInput(input["ingredients"])
	if !ok {
		return nil, fmt.Errorf("ingredients must be a list of strings")
	}

	original, ok, err := numberInput(input, "original_servings")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("original_servings is required")
	}
	servings, ok, err := numberInput(input, "new_servings")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("new_servings is required")
	}

	out, err := t.scaler.ScaleIngredients(ctx, lines, original, servings)
	if err != nil {
		return nil, fmt.Errorf("scale ingredients: %w", err)
	}
	return map[string]any{"ingredients": out}, nil
}
