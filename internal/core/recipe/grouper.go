package recipe

import (
	"strings"

	"recipe-finder/internal/pkg/common"
)

// 分組標籤
const (
	LabelRecipeOptions = "Recipe Options"
	LabelEmergency     = "Emergency Recipes"
	LabelOther         = "Other"
)

var (
	mealOrder = []string{common.MealBreakfast, common.MealLunch, common.MealDinner}
	weekDays  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// Group 依模式分組：
//   - 1：單一 "Recipe Options" 組
//   - 3：依 mealType 分成 Breakfast / Lunch / Dinner
//   - 其他：平均切成星期一到星期日，每組 ceil(n/7) 道
//
// 空組一律省略。
func Group(recipes []common.Recipe, mode int) []common.MealSet {
	switch mode {
	case 1:
		if len(recipes) == 0 {
			return []common.MealSet{}
		}
		return []common.MealSet{{MealType: LabelRecipeOptions, Recipes: recipes}}
	case 3:
		return groupByMeal(recipes)
	default:
		return groupByDay(recipes)
	}
}

// groupByMeal 不分大小寫比對餐別；無法歸類的食譜放到最後的 "Other" 組
func groupByMeal(recipes []common.Recipe) []common.MealSet {
	buckets := make(map[string][]common.Recipe, len(mealOrder))
	var other []common.Recipe
	for _, r := range recipes {
		meal, ok := canonicalMeal(r.MealType)
		if !ok {
			other = append(other, r)
			continue
		}
		buckets[meal] = append(buckets[meal], r)
	}

	sets := make([]common.MealSet, 0, len(mealOrder)+1)
	for _, meal := range mealOrder {
		if len(buckets[meal]) > 0 {
			sets = append(sets, common.MealSet{MealType: meal, Recipes: buckets[meal]})
		}
	}
	if len(other) > 0 {
		sets = append(sets, common.MealSet{MealType: LabelOther, Recipes: other})
	}
	return sets
}

func canonicalMeal(mealType string) (string, bool) {
	for _, meal := range mealOrder {
		if strings.EqualFold(strings.TrimSpace(mealType), meal) {
			return meal, true
		}
	}
	return "", false
}

func groupByDay(recipes []common.Recipe) []common.MealSet {
	sets := make([]common.MealSet, 0, len(weekDays))
	perDay := ceilDiv(len(recipes), len(weekDays))
	if perDay == 0 {
		return sets
	}
	for i, day := range weekDays {
		start := i * perDay
		if start >= len(recipes) {
			break
		}
		end := start + perDay
		if end > len(recipes) {
			end = len(recipes)
		}
		sets = append(sets, common.MealSet{MealType: day, Recipes: recipes[start:end]})
	}
	return sets
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
