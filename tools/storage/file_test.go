package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecipeState(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "recipes_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{
			name:     "json recipes file",
			filename: "recipes.json",
			data:     []byte(`{"recipes": [{"id": "pancakes", "name": "Pancakes", "servings": 4, "ingredients": ["1 1/2 cups flour"]}]}`),
		},
		{
			name:     "yaml recipes file",
			filename: "recipes.yaml",
			data:     []byte("- id: pancakes\n  ingredients:\n    - 2 eggs\n"),
		},
		{
			name:     "empty recipes file",
			filename: "empty.json",
			data:     []byte(`[]`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tmpDir, tt.filename)

			err := os.WriteFile(filePath, tt.data, 0644)
			require.NoError(t, err)

			recipeState := NewFileRecipeState(filePath)
			loadedData, err := recipeState.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.data, loadedData)
			assert.Equal(t, filePath, recipeState.Source())
		})
	}

	t.Run("load nonexistent file", func(t *testing.T) {
		nonexistentPath := filepath.Join(tmpDir, "nonexistent.json")
		recipeState := NewFileRecipeState(nonexistentPath)
		_, err := recipeState.Load(context.Background())
		assert.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewFileRecipeState(filepath.Join(tmpDir, "recipes.json")).Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTestRecipeState(t *testing.T) {
	state := NewTestRecipeStateWithSource("recipes.toml", []byte("x"))
	b, err := state.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), b)
	assert.Equal(t, "recipes.toml", state.Source())

	_, err = NewTestRecipeStateWithError().Load(context.Background())
	assert.Error(t, err)
}
