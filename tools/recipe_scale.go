package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipescaler/tools/storage"
)

type RecipeScale struct {
	state  storage.RecipeState
	scaler IngredientScaler
}

func NewRecipeScale(state storage.RecipeState, s IngredientScaler) *RecipeScale {
	if s == nil {
		s = DefaultScaler
	}
	return &RecipeScale{state: state, scaler: s}
}

func (t *RecipeScale) Name() string  { return "recipe_scale" }
func (t *RecipeScale) Title() string { return "Scale Recipe" }
func (t *RecipeScale) Description() string {
	return "Rewrites a stored recipe's ingredient lines for a new number of servings, or for a multiplier of its own servings."
}

func (t *RecipeScale) InputSchema() *jsonschema.Schema {
	minServings := 1.0
	minMultiplier := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipe_id":  {Type: "string"},
			"servings":   {Type: "integer", Minimum: &minServings},
			"multiplier": {Type: "number", Minimum: &minMultiplier},
		},
		Required: []string{"recipe_id"},
	}
}

func (t *RecipeScale) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipe": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"id":                {Type: "string"},
					"name":              {Type: "string"},
					"original_servings": {Type: "integer"},
					"servings":          {Type: "integer"},
					"multiplier":        {Type: "number"},
					"ingredients":       {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				},
				Required: []string{"id", "original_servings", "servings", "multiplier", "ingredients"},
			},
		},
		Required: []string{"recipe"},
	}
}

func (t *RecipeScale) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, _ := input["recipe_id"].(string)
	if id == "" {
		return nil, fmt.Errorf("recipe_id is required")
	}

	servings, hasServings, err := numberInput(input, "servings")
	if err != nil {
		return nil, err
	}
	multiplier, hasMultiplier, err := numberInput(input, "multiplier")
	if err != nil {
		return nil, err
	}
	if !hasServings && !hasMultiplier {
		return nil, fmt.Errorf("servings or multiplier is required")
	}

	recipes, err := loadRecipes(ctx, t.state)
	if err != nil {
		return nil, err
	}
	recipe, err := FindRecipe(recipes, id)
	if err != nil {
		return nil, err
	}

	var scaled ScaledRecipe
	if hasServings {
		scaled, err = ScaleRecipeTo(ctx, t.scaler, recipe, int(servings))
	} else {
		scaled, err = ScaleRecipeBy(ctx, t.scaler, recipe, multiplier)
	}
	if err != nil {
		return nil, err
	}

	return map[string]any{"recipe": scaled}, nil
}
