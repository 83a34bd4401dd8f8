package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipescaler/tools/storage"
)

type RecipeGet struct{ state storage.RecipeState }

func NewRecipeGet(state storage.RecipeState) *RecipeGet { return &RecipeGet{state: state} }

func (t *RecipeGet) Name() string  { return "recipe_get" }
func (t *RecipeGet) Title() string { return "Get Recipes" }
func (t *RecipeGet) Description() string {
	return "Gets recipes with their servings and ingredient lines, filtered by meal types (optional)."
}

func (t *RecipeGet) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_types": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "string"},
			},
		},
	}
}

func (t *RecipeGet) OutputSchema() *jsonschema.Schema {
	minServings := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipes": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"id":          {Type: "string"},
						"name":        {Type: "string"},
						"meal_types":  {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
						"servings":    {Type: "integer", Minimum: &minServings},
						"ingredients": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					},
					Required: []string{"id", "name", "ingredients"},
				},
			},
		},
		Required: []string{"recipes"},
	}
}

func (t *RecipeGet) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	recipes, err := loadRecipes(ctx, t.state)
	if err != nil {
		return nil, err
	}

	raw, _ := stringsInput(input["meal_types"])
	if len(raw) == 0 {
		return map[string]any{"recipes": recipes}, nil
	}

	want := map[string]bool{}
	for _, s := range raw {
		if s != "" {
			want[s] = true
		}
	}

	out := make([]Recipe, 0)
	for _, rec := range recipes {
		for _, m := range rec.MealTypes {
			if want[m] {
				out = append(out, rec)
				break
			}
		}
	}

	return map[string]any{"recipes": out}, nil
}
