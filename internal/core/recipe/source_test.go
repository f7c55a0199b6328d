package recipe

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBatch = `{
  "recipes": [
    {
      "name": "Aloo Jeera",
      "nameHindi": "आलू जीरा",
      "ingredients": ["2 potatoes", "1 tsp cumin"],
      "instructions": ["Boil potatoes", "Temper cumin", "Toss together"],
      "cookTime": "20 mins",
      "difficulty": "Medium",
      "serves": 3,
      "description": "Potatoes tossed with cumin",
      "mealType": "Lunch"
    },
    {
      "name": "Onion Poha",
      "nameHindi": "प्याज पोहा",
      "ingredients": ["1 cup poha", "1 onion"],
      "instructions": ["Rinse poha", "Fry onion", "Mix"],
      "cookTime": "15 mins",
      "description": "Light breakfast",
      "mealType": "Breakfast"
    }
  ]
}`

type reply struct {
	content string
	err     error
}

// fakeCompleter 依序回傳預設的回覆並記錄收到的提示詞
type fakeCompleter struct {
	mu      sync.Mutex
	replies []reply
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if len(f.replies) == 0 {
		return "", errors.New("no reply configured")
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r.content, r.err
}

func TestParseRecipes(t *testing.T) {
	t.Run("fenced json with defaults", func(t *testing.T) {
		got, err := ParseRecipes("Here you go:\n```json\n" + validBatch + "\n```")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Medium", string(got[0].Difficulty))
		assert.Equal(t, 3, got[0].Serves)
		assert.Equal(t, "Easy", string(got[1].Difficulty))
		assert.Equal(t, 2, got[1].Serves)
	})

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "no json", content: "sorry, I cannot help", wantErr: ErrInvalidRecipes},
		{name: "broken json", content: `{"recipes": [}`, wantErr: ErrInvalidRecipes},
		{name: "empty list", content: `{"recipes": []}`, wantErr: ErrNoRecipes},
		{name: "serves out of range", content: `{"recipes":[{"name":"a","nameHindi":"b","ingredients":["x"],"instructions":["y"],"cookTime":"1","serves":11,"description":"d","mealType":"Lunch"}]}`, wantErr: ErrInvalidRecipes},
		{name: "unknown difficulty", content: `{"recipes":[{"name":"a","nameHindi":"b","ingredients":["x"],"instructions":["y"],"cookTime":"1","difficulty":"Extreme","description":"d","mealType":"Lunch"}]}`, wantErr: ErrInvalidRecipes},
		{name: "no ingredients", content: `{"recipes":[{"name":"a","nameHindi":"b","ingredients":[],"instructions":["y"],"cookTime":"1","description":"d","mealType":"Lunch"}]}`, wantErr: ErrInvalidRecipes},
		{name: "blank instruction", content: `{"recipes":[{"name":"a","nameHindi":"b","ingredients":["x"],"instructions":[""],"cookTime":"1","description":"d","mealType":"Lunch"}]}`, wantErr: ErrInvalidRecipes},
		{name: "missing localized name", content: `{"recipes":[{"name":"a","ingredients":["x"],"instructions":["y"],"cookTime":"1","description":"d","mealType":"Lunch"}]}`, wantErr: ErrInvalidRecipes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecipes(tt.content)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRecipes_UnquotedKeys(t *testing.T) {
	got, err := ParseRecipes(`{recipes: [{name: "Masala Poha", nameHindi: "मसाला पोहा", ingredients: ["poha"], instructions: ["Rinse", "Cook"], cookTime: "15 mins", description: "d", mealType: "Breakfast"}]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Masala Poha", got[0].Name)
	assert.Equal(t, "Breakfast", got[0].MealType)

	got, err = ParseRecipes(`{recipes: [{name: "Aloo Fry", nameHindi: "आलू फ्राई", ingredients: ["2 potatoes", "salt, pepper: to taste"], instructions: ["Fry"], cookTime: "20 mins", description: "d", mealType: "Dinner"}]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "salt, pepper: to taste", got[0].Ingredients[1])
}

func TestParseRecipes_RejectsWholeBatch(t *testing.T) {
	content := `{"recipes":[
		{"name":"ok","nameHindi":"ठीक","ingredients":["x"],"instructions":["y"],"cookTime":"1","description":"d","mealType":"Lunch"},
		{"name":"bad","nameHindi":"","ingredients":["x"],"instructions":["y"],"cookTime":"1","description":"d","mealType":"Lunch"}
	]}`
	got, err := ParseRecipes(content)
	assert.ErrorIs(t, err, ErrInvalidRecipes)
	assert.Contains(t, err.Error(), "nameHindi")
	assert.Nil(t, got)
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("onion, rice", 1, false)
	assert.Contains(t, p, "Generate 3 Indian recipes using: onion, rice")
	assert.Contains(t, p, "Do NOT add eggs, paneer, meat, or cheese.")

	p = BuildPrompt("onion", 7, true)
	assert.Contains(t, p, "Generate 5 Indian recipes")
	assert.Contains(t, p, "You can include additional common ingredients")

	assert.Contains(t, BuildRetryPrompt("onion"), "Create 3 Indian recipes with: onion")
	assert.Equal(t, 1, PromptRecipeCount(0))
}

func TestSource_FirstAttemptSucceeds(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{{content: validBatch}}}
	got, err := NewSource(fc).Generate(context.Background(), GenerateRequest{Ingredients: "potato", MealCount: 1})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, fc.prompts, 1)
}

func TestSource_RetriesWithSimplePrompt(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{
		{content: `{"recipes": []}`},
		{content: validBatch},
	}}
	got, err := NewSource(fc).Generate(context.Background(), GenerateRequest{Ingredients: "potato", MealCount: 3})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	require.Len(t, fc.prompts, 2)
	assert.Contains(t, fc.prompts[0], "Generate 5 Indian recipes")
	assert.Contains(t, fc.prompts[1], "Create 3 Indian recipes")
}

func TestSource_BothAttemptsFail(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{
		{err: errors.New("upstream 500")},
		{content: "not json"},
	}}
	_, err := NewSource(fc).Generate(context.Background(), GenerateRequest{Ingredients: "potato", MealCount: 1})

	require.Error(t, err)
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 2, ge.Attempts)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, ErrInvalidRecipes)
	assert.True(t, IsGenerationError(err))
}

func TestSource_UnavailableDoesNotRetry(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{{err: ErrGeneratorUnavailable}}}
	_, err := NewSource(fc).Generate(context.Background(), GenerateRequest{Ingredients: "potato", MealCount: 1})

	assert.ErrorIs(t, err, ErrGeneratorUnavailable)
	assert.Len(t, fc.prompts, 1)
}

func TestSource_NilCompleter(t *testing.T) {
	_, err := NewSource(nil).Generate(context.Background(), GenerateRequest{Ingredients: "potato"})
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}
