package recipe

import "fmt"

const (
	maxPromptRecipes = 5
	retryRecipes     = 3
)

const (
	extraAllowedInstruction = "You can include additional common ingredients like eggs, paneer, meat, cheese."
	extraDeniedInstruction  = "ONLY use the provided ingredients plus basic spices (salt, turmeric, cumin, coriander, oil). Do NOT add eggs, paneer, meat, or cheese."
)

// PromptRecipeCount 第一次生成要求的食譜數：min(mealCount*3, 5)
func PromptRecipeCount(mealCount int) int {
	n := mealCount * 3
	if n > maxPromptRecipes {
		n = maxPromptRecipes
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ExtraIngredientsInstruction 是否允許額外食材的指示文字
func ExtraIngredientsInstruction(allowExtra bool) string {
	if allowExtra {
		return extraAllowedInstruction
	}
	return extraDeniedInstruction
}

// BuildPrompt 第一次生成的提示詞
func BuildPrompt(ingredients string, mealCount int, allowExtra bool) string {
	return fmt.Sprintf(`Generate %d Indian recipes using: %s

%s

Return ONLY a JSON object with this exact structure:
{
  "recipes": [
    {
      "name": "Recipe Name",
      "nameHindi": "हिंदी नाम",
      "ingredients": ["1 cup rice", "1 tsp salt"],
      "instructions": ["Step 1", "Step 2", "Step 3"],
      "cookTime": "20 mins",
      "difficulty": "Easy",
      "serves": 2,
      "description": "Brief description",
      "mealType": "Lunch"
    }
  ]
}

Make recipes practical and authentic. Use proper Hindi spelling.`,
		PromptRecipeCount(mealCount), ingredients, ExtraIngredientsInstruction(allowExtra))
}

// BuildRetryPrompt 失敗後的簡化提示詞，要求較少的食譜
func BuildRetryPrompt(ingredients string) string {
	return fmt.Sprintf(`Create %d Indian recipes with: %s

Return JSON:
{
  "recipes": [
    {
      "name": "Simple Rice",
      "nameHindi": "सादा चावल",
      "ingredients": ["1 cup rice", "2 cups water"],
      "instructions": ["Boil water", "Add rice", "Cook 15 mins"],
      "cookTime": "20 mins",
      "difficulty": "Easy",
      "serves": 2,
      "description": "Basic rice dish",
      "mealType": "Lunch"
    }
  ]
}`, retryRecipes, ingredients)
}
