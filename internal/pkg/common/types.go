package common

// Difficulty 食譜難度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// 餐別標籤
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
)

// Recipe 食譜
// 欄位名稱與前端既有的 JSON 格式一致（nameHindi、cookTime、mealType…）
type Recipe struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name" validate:"required"`
	LocalizedName string     `json:"nameHindi" validate:"required"`
	Ingredients   []string   `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions  []string   `json:"instructions" validate:"required,min=1,dive,required"`
	CookTime      string     `json:"cookTime" validate:"required"`
	Difficulty    Difficulty `json:"difficulty" validate:"oneof=Easy Medium Hard"`
	Serves        int        `json:"serves" validate:"min=1,max=10"`
	Description   string     `json:"description" validate:"required"`
	MealType      string     `json:"mealType" validate:"required"`
}

// WithID 回傳帶有指定 ID 的複本，原食譜不變
func (r Recipe) WithID(id string) Recipe {
	r.ID = id
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Instructions = append([]string(nil), r.Instructions...)
	return r
}

// ScoredRecipe 附帶匹配分數的食譜
type ScoredRecipe struct {
	Recipe
	MatchCount         int      `json:"matchCount"`
	MatchPercentage    float64  `json:"matchPercentage"`   // 命中的使用者食材比例 (0-100)
	AvailabilityScore  float64  `json:"availabilityScore"` // 命中數 / 食譜食材數
	MissingIngredients []string `json:"missingIngredients"`
	Image              string   `json:"image,omitempty"`
}

// MealSet 依餐別或星期分組的食譜
type MealSet struct {
	MealType string   `json:"mealType"`
	Recipes  []Recipe `json:"recipes"`
}

// SearchRequest 食譜搜尋請求
type SearchRequest struct {
	Ingredients           string `json:"ingredients"`
	MealCount             int    `json:"mealCount"`
	Language              string `json:"language"`
	AllowExtraIngredients bool   `json:"allowExtraIngredients"`
}

// Structure 回應的分組摘要
type Structure struct {
	MealCount      int `json:"mealCount"`
	RecipesPerMeal int `json:"recipesPerMeal"`
	TotalSets      int `json:"totalSets"`
}

// SearchResponse 食譜搜尋響應
type SearchResponse struct {
	Success               bool      `json:"success"`
	Recipes               []Recipe  `json:"recipes"`
	MealSets              []MealSet `json:"mealSets"`
	CorrectedIngredients  string    `json:"correctedIngredients"`
	NormalizedIngredients []string  `json:"normalizedIngredients"`
	Language              string    `json:"language"`
	Fallback              bool      `json:"fallback"`
	Message               string    `json:"message,omitempty"`
	TotalRecipes          int       `json:"totalRecipes"`
	Structure             Structure `json:"structure"`
}

// MatchRequest 食材比對請求
type MatchRequest struct {
	Ingredients           string `json:"ingredients"`
	MealCount             int    `json:"mealCount"`
	Limit                 int    `json:"limit,omitempty"`
	AllowExtraIngredients bool   `json:"allowExtraIngredients"`
	IncludeImages         *bool  `json:"includeImages,omitempty"`
}

// MatchResponse 食材比對響應
type MatchResponse struct {
	Success               bool           `json:"success"`
	Recipes               []ScoredRecipe `json:"recipes"`
	NormalizedIngredients []string       `json:"normalizedIngredients"`
	TotalRecipes          int            `json:"totalRecipes"`
}

// NormalizeRequest 食材正規化請求
type NormalizeRequest struct {
	Ingredients string `json:"ingredients"`
}

// NormalizeResponse 食材正規化響應
type NormalizeResponse struct {
	Success               bool     `json:"success"`
	CorrectedIngredients  string   `json:"correctedIngredients"`
	NormalizedIngredients []string `json:"normalizedIngredients"`
}
