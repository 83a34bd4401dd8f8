package storage

import (
	"context"
	"errors"
)

// RecipeState loads a raw recipe collection. Source names where the bytes
// come from; its extension decides how they are decoded.
type RecipeState interface {
	Load(ctx context.Context) ([]byte, error)
	Source() string
}

// TestRecipeState is a simple in-memory implementation for testing
type TestRecipeState struct {
	source string
	data   []byte
	err    error
}

func NewTestRecipeState(data []byte) *TestRecipeState {
	return &TestRecipeState{source: "recipes.json", data: data}
}

// NewTestRecipeStateWithSource serves data as if it had been read from source.
func NewTestRecipeStateWithSource(source string, data []byte) *TestRecipeState {
	return &TestRecipeState{source: source, data: data}
}

func NewTestRecipeStateWithError() *TestRecipeState {
	return &TestRecipeState{source: "recipes.json", err: errors.New("not found")}
}

func (t *TestRecipeState) Load(ctx context.Context) ([]byte, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.data, nil
}

func (t *TestRecipeState) Source() string { return t.source }
