package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"recipescaler"
	"recipescaler/tools"
	"recipescaler/tools/storage"
)

// Params is the invocation event. With RecipeID set the stored recipe is
// scaled by Servings or Multiplier; otherwise Ingredients are scaled from
// OriginalServings to NewServings.
type Params struct {
	RecipeID         string   `json:"recipe_id,omitempty"`
	Servings         *float64 `json:"servings,omitempty"`
	Multiplier       *float64 `json:"multiplier,omitempty"`
	Ingredients      []string `json:"ingredients,omitempty"`
	OriginalServings float64  `json:"original_servings,omitempty"`
	NewServings      float64  `json:"new_servings,omitempty"`
}

type Results struct {
	Output map[string]any `json:"output"`
}

type handler struct {
	recipes storage.RecipeState
	scaler  tools.IngredientScaler
	flush   func(ctx context.Context) error
}

var errNoRecipeStore = errors.New("recipe_id given but no recipe store is configured: set ARTIFACTS_S3_BUCKET")

func (h *handler) Handle(ctx context.Context, params Params) (Results, error) {
	defer func() {
		if h.flush == nil {
			return
		}
		if err := h.flush(ctx); err != nil {
			slog.Error("RESULT: Failed to flush telemetry", "error", err)
		}
	}()

	tool, input, err := h.route(params)
	if err != nil {
		slog.Error("SETUP: Invalid request", "error", err)
		return Results{}, err
	}

	output, err := tool.Run(ctx, input)
	if err != nil {
		slog.Error("RESULT: Error handling request", "tool", tool.Name(), "error", err)
		return Results{}, err
	}
	slog.Info("RESULT: Request handled", "tool", tool.Name(), "recipe_id", params.RecipeID)
	return Results{Output: output}, nil
}

func (h *handler) route(params Params) (tools.Tool, map[string]any, error) {
	if params.RecipeID == "" {
		return tools.NewIngredientsScale(h.scaler), map[string]any{
			"ingredients":       nonNil(params.Ingredients),
			"original_servings": params.OriginalServings,
			"new_servings":      params.NewServings,
		}, nil
	}

	if h.recipes == nil {
		return nil, nil, errNoRecipeStore
	}
	registry, err := tools.NewRegistry(h.recipes, h.scaler)
	if err != nil {
		return nil, nil, fmt.Errorf("create tool registry: %w", err)
	}
	var provider recipescaler.ToolProvider = registry
	tool, err := provider.GetTool("recipe_scale")
	if err != nil {
		return nil, nil, err
	}

	input := map[string]any{"recipe_id": params.RecipeID}
	if params.Servings != nil {
		input["servings"] = *params.Servings
	}
	if params.Multiplier != nil {
		input["multiplier"] = *params.Multiplier
	}
	return tool, input, nil
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
