package recipe

import (
	"fmt"
	"reflect"
	"strings"

	"recipe-finder/internal/pkg/common"

	"github.com/go-playground/validator/v10"
)

// 模型未提供時的預設值
const (
	defaultDifficulty = common.DifficultyEasy
	defaultServes     = 2
)

// generatedBatch 模型回傳的 JSON 結構
type generatedBatch struct {
	Recipes []generatedRecipe `json:"recipes"`
}

// generatedRecipe 用指標區分「未提供」與零值
type generatedRecipe struct {
	Name          string   `json:"name"`
	LocalizedName string   `json:"nameHindi"`
	Ingredients   []string `json:"ingredients"`
	Instructions  []string `json:"instructions"`
	CookTime      string   `json:"cookTime"`
	Difficulty    *string  `json:"difficulty"`
	Serves        *int     `json:"serves"`
	Description   string   `json:"description"`
	MealType      string   `json:"mealType"`
}

func (g generatedRecipe) toRecipe() common.Recipe {
	r := common.Recipe{
		Name:          g.Name,
		LocalizedName: g.LocalizedName,
		Ingredients:   g.Ingredients,
		Instructions:  g.Instructions,
		CookTime:      g.CookTime,
		Difficulty:    defaultDifficulty,
		Serves:        defaultServes,
		Description:   g.Description,
		MealType:      g.MealType,
	}
	if g.Difficulty != nil {
		r.Difficulty = common.Difficulty(*g.Difficulty)
	}
	if g.Serves != nil {
		r.Serves = *g.Serves
	}
	return r
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 錯誤訊息使用 JSON 欄位名稱
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRecipe 檢查單一食譜是否符合結構與範圍限制
func ValidateRecipe(r common.Recipe) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecipes, describeValidation(err))
	}
	return nil
}

// ParseRecipes 解析並驗證模型輸出。
// 任何一道食譜不合格就整批拒絕；零道食譜視為失敗。
func ParseRecipes(content string) ([]common.Recipe, error) {
	raw, err := common.ExtractJSONObject(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipes, err)
	}

	var batch generatedBatch
	if err := common.ParseJSON(raw, &batch); err != nil {
		// 模型偶爾輸出未加引號的鍵
		batch = generatedBatch{}
		if err2 := common.ParseJSON(common.QuoteJSONKeys(raw), &batch); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecipes, err)
		}
	}
	if len(batch.Recipes) == 0 {
		return nil, ErrNoRecipes
	}

	recipes := make([]common.Recipe, 0, len(batch.Recipes))
	for i, g := range batch.Recipes {
		r := g.toRecipe()
		if err := ValidateRecipe(r); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
