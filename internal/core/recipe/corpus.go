package recipe

import (
	"errors"

	"recipe-finder/internal/pkg/common"
)

// ErrEmptyCorpus 備用食譜庫沒有可用的食譜
var ErrEmptyCorpus = errors.New("fallback corpus is empty")

// Corpus 手寫的靜態備用食譜庫，建立後唯讀
type Corpus struct {
	basic []common.Recipe
	extra []common.Recipe // 需要額外食材（蛋、起司…）的食譜
}

// NewCorpus 以基本食譜與額外食材食譜建立食譜庫
func NewCorpus(basic, extra []common.Recipe) *Corpus {
	return &Corpus{
		basic: cloneRecipes(basic),
		extra: cloneRecipes(extra),
	}
}

// DefaultCorpus 內建食譜庫
func DefaultCorpus() *Corpus {
	return NewCorpus(basicRecipes, extraRecipes)
}

// TargetCount 備用食譜數量對照：1 → 5、3 → 6、其他 → 7
func TargetCount(mealCount int) int {
	switch mealCount {
	case 1:
		return 5
	case 3:
		return 6
	default:
		return 7
	}
}

// Recipes 依 allowExtra 決定是否包含額外食材食譜，順序固定
func (c *Corpus) Recipes(allowExtra bool) []common.Recipe {
	if c == nil {
		return nil
	}
	out := cloneRecipes(c.basic)
	if allowExtra {
		out = append(out, cloneRecipes(c.extra)...)
	}
	return out
}

// Select 依數量對照取出備用食譜
func (c *Corpus) Select(mealCount int, allowExtra bool) ([]common.Recipe, error) {
	all := c.Recipes(allowExtra)
	if len(all) == 0 {
		return nil, ErrEmptyCorpus
	}
	n := TargetCount(mealCount)
	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}

// Emergency 緊急備援用的前三道基本食譜
func (c *Corpus) Emergency() []common.Recipe {
	if c == nil {
		return nil
	}
	n := emergencyCount
	if n > len(c.basic) {
		n = len(c.basic)
	}
	return cloneRecipes(c.basic[:n])
}

// Len 食譜總數
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.basic) + len(c.extra)
}

const emergencyCount = 3

func cloneRecipes(in []common.Recipe) []common.Recipe {
	if in == nil {
		return nil
	}
	out := make([]common.Recipe, len(in))
	for i, r := range in {
		out[i] = r.WithID(r.ID)
	}
	return out
}

var basicRecipes = []common.Recipe{
	{
		Name:          "Simple Jeera Rice",
		LocalizedName: "सादा जीरा चावल",
		Ingredients:   []string{"1 Cup Basmati Rice", "2 Cups Water", "1 Tsp Cumin Seeds", "1 Tsp Salt", "2 Tbsp Ghee"},
		Instructions: []string{
			"Wash rice thoroughly until water runs clear",
			"Heat ghee in a heavy-bottomed pot over medium heat",
			"Add cumin seeds and let them splutter for 30 seconds",
			"Add washed rice and gently mix for 2 minutes",
			"Add water and salt, bring to a rolling boil",
			"Cover and cook on low heat for 15 minutes",
			"Let it rest for 5 minutes before serving",
		},
		CookTime:    "25 mins",
		Difficulty:  common.DifficultyEasy,
		Serves:      3,
		Description: "Fragrant cumin-flavored basmati rice",
		MealType:    common.MealLunch,
	},
	{
		Name:          "Spiced Onion Sabzi",
		LocalizedName: "मसालेदार प्याज़ सब्जी",
		Ingredients:   []string{"3 Large Onions Sliced", "2 Tbsp Oil", "1 Tsp Turmeric", "1 Tsp Cumin Seeds", "Salt To Taste"},
		Instructions: []string{
			"Heat oil in a wide pan over medium heat",
			"Add cumin seeds and let them splutter",
			"Add sliced onions and cook until soft and translucent",
			"Add turmeric powder and salt, mix well",
			"Cook until onions are golden brown and caramelized",
			"Serve hot with rice or roti",
		},
		CookTime:    "15 mins",
		Difficulty:  common.DifficultyEasy,
		Serves:      2,
		Description: "Simple and flavorful spiced onion curry",
		MealType:    common.MealLunch,
	},
	{
		Name:          "Crispy Potato Fry",
		LocalizedName: "कुरकुरा आलू फ्राई",
		Ingredients:   []string{"4 Medium Potatoes Cubed", "3 Tbsp Oil", "1 Tsp Cumin Seeds", "1 Tsp Turmeric", "Salt To Taste"},
		Instructions: []string{
			"Heat oil in a non-stick pan over medium-high heat",
			"Add cumin seeds and let them splutter",
			"Add potato cubes and mix well to coat with oil",
			"Add turmeric powder and salt, mix gently",
			"Cook covered for 10 minutes, stirring occasionally",
			"Remove cover and cook until potatoes are golden and crispy",
			"Serve hot as a side dish",
		},
		CookTime:    "20 mins",
		Difficulty:  common.DifficultyEasy,
		Serves:      3,
		Description: "Crispy and golden spiced potato fry",
		MealType:    common.MealDinner,
	},
	{
		Name:          "Simple Dal Tadka",
		LocalizedName: "सादा दाल तड़का",
		Ingredients: []string{
			"1 Cup Toor Dal",
			"2 Cups Water",
			"1 Tsp Turmeric",
			"1 Tsp Cumin Seeds",
			"2 Tbsp Oil",
			"Salt To Taste",
		},
		Instructions: []string{
			"Wash dal thoroughly and pressure cook with turmeric and salt",
			"Heat oil in a pan and add cumin seeds",
			"Let cumin seeds splutter and turn golden",
			"Add cooked dal and mix well",
			"Simmer for 10 minutes until desired consistency",
			"Garnish with fresh coriander and serve hot",
		},
		CookTime:    "30 mins",
		Difficulty:  common.DifficultyEasy,
		Serves:      4,
		Description: "Comforting spiced lentil curry",
		MealType:    common.MealLunch,
	},
	{
		Name:          "Masala Chai",
		LocalizedName: "मसाला चाय",
		Ingredients:   []string{"2 Cups Water", "1 Cup Milk", "2 Tsp Tea Leaves", "2 Tsp Sugar", "1 Inch Ginger", "2 Cardamom"},
		Instructions: []string{
			"Boil water with ginger and cardamom",
			"Add tea leaves and boil for 2 minutes",
			"Add milk and sugar",
			"Boil until frothy and well mixed",
			"Strain and serve hot",
		},
		CookTime:    "8 mins",
		Difficulty:  common.DifficultyEasy,
		Serves:      2,
		Description: "Traditional Indian spiced tea",
		MealType:    common.MealBreakfast,
	},
}

var extraRecipes = []common.Recipe{
	{
		Name:          "Masala Scrambled Eggs",
		LocalizedName: "मसाला भुर्जी अंडे",
		Ingredients: []string{
			"3 Large Eggs",
			"1 Medium Onion Chopped",
			"1 Tomato Chopped",
			"2 Green Chilies",
			"2 Tbsp Oil",
			"Salt To Taste",
		},
		Instructions: []string{
			"Beat eggs with salt in a bowl until well combined",
			"Heat oil in a non-stick pan over medium heat",
			"Add chopped onions and green chilies, sauté until golden",
			"Add chopped tomatoes and cook until they become soft",
			"Pour beaten eggs over the vegetable mixture",
			"Scramble gently with a spatula until eggs are cooked",
			"Serve hot with bread or paratha",
		},
		CookTime:    "10 mins",
		Difficulty:  common.DifficultyEasy,
		Serves:      2,
		Description: "Spicy Indian-style scrambled eggs with vegetables",
		MealType:    common.MealBreakfast,
	},
	{
		Name:          "Paneer Bhurji",
		LocalizedName: "पनीर भुर्जी",
		Ingredients:   []string{"250g Paneer Crumbled", "1 Onion Chopped", "1 Tomato Chopped", "2 Tbsp Oil", "1 Tsp Garam Masala"},
		Instructions: []string{
			"Heat oil in a pan over medium heat",
			"Add chopped onions and cook until golden brown",
			"Add chopped tomatoes and cook until they break down",
			"Add crumbled paneer and garam masala powder",
			"Mix well and cook for 5-7 minutes",
			"Garnish with fresh coriander leaves",
			"Serve hot with roti or rice",
		},
		CookTime:    "15 mins",
		Difficulty:  common.DifficultyEasy,
		Serves:      3,
		Description: "Spiced scrambled cottage cheese with aromatic spices",
		MealType:    common.MealDinner,
	},
}
