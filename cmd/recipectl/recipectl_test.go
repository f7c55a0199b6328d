package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"recipe-finder/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env-file", "testdata-missing.env"}, args...))
	return &out, cmd.Execute()
}

func TestNormalizeCommand(t *testing.T) {
	out, err := run(t, "normalize", "piaz,", "ande")
	require.NoError(t, err)

	var resp common.NormalizeResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "Pyaz, Ande", resp.CorrectedIngredients)
	assert.Equal(t, []string{"onion", "eggs"}, resp.NormalizedIngredients)
}

func TestSearchCommand_Offline(t *testing.T) {
	out, err := run(t, "--offline", "search", "--meals", "3", "aloo, pyaz")
	require.NoError(t, err)

	var resp common.SearchResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.True(t, resp.Fallback)
	assert.Equal(t, 5, resp.TotalRecipes)
	assert.Equal(t, []string{"potato", "onion"}, resp.NormalizedIngredients)
	assert.Equal(t, 3, resp.Structure.MealCount)
}

func TestMatchCommand_Offline(t *testing.T) {
	out, err := run(t, "--offline", "match", "--limit", "2", "onion, oil")
	require.NoError(t, err)

	var resp common.MatchResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Len(t, resp.Recipes, 2)
	assert.Equal(t, "Spiced Onion Sabzi", resp.Recipes[0].Name)
	assert.Empty(t, resp.Recipes[0].Image)
}

func TestSearchCommand_EmptyInput(t *testing.T) {
	_, err := run(t, "--offline", "search", "   ")
	assert.ErrorIs(t, err, common.ErrEmptyIngredients)
}
