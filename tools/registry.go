package tools

import (
	"fmt"
	"sort"

	"recipescaler/tools/storage"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// NewRegistry creates a new tool registry over the given recipe state. A nil
// scaler falls back to DefaultScaler.
func NewRegistry(recipes storage.RecipeState, s IngredientScaler) (*Registry, error) {
	if recipes == nil {
		return nil, fmt.Errorf("recipe state is required")
	}
	if s == nil {
		s = DefaultScaler
	}

	tools := map[string]Tool{}
	for _, t := range []Tool{
		NewRecipeGet(recipes),
		NewRecipeScale(recipes, s),
		NewIngredientsScale(s),
	} {
		tools[t.Name()] = t
	}

	registry := Registry(tools)
	return &registry, nil
}

// GetTools returns all tools in the registry sorted by name
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(*r))
	for _, tool := range *r {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}
	return tool, nil
}
