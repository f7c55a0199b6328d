package recipe

import (
	"sort"
	"strings"

	"recipe-finder/internal/pkg/common"
)

// ingredientMatches 雙向子字串包含：
// "1 cup rice" 命中 "rice"，"basmati rice" 也命中 "rice"
func ingredientMatches(phrase, token string) bool {
	if token == "" || phrase == "" {
		return false
	}
	return strings.Contains(phrase, token) || strings.Contains(token, phrase)
}

// Score 計算單一食譜的匹配結果，沒有任何命中時 ok 為 false
func Score(tokens []string, r common.Recipe) (common.ScoredRecipe, bool) {
	phrases := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		phrases[i] = strings.ToLower(strings.TrimSpace(ing))
	}

	matched := make([]bool, len(phrases))
	count := 0
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		hit := false
		for i, phrase := range phrases {
			if ingredientMatches(phrase, tok) {
				matched[i] = true
				hit = true
			}
		}
		if hit {
			count++
		}
	}
	if count == 0 {
		return common.ScoredRecipe{}, false
	}

	missing := make([]string, 0, len(phrases))
	for i, ok := range matched {
		if !ok {
			missing = append(missing, r.Ingredients[i])
		}
	}

	scored := common.ScoredRecipe{
		Recipe:             r,
		MatchCount:         count,
		MatchPercentage:    float64(count) / float64(len(tokens)) * 100,
		MissingIngredients: missing,
	}
	if len(r.Ingredients) > 0 {
		scored.AvailabilityScore = float64(count) / float64(len(r.Ingredients))
	}
	return scored, true
}

// Rank 過濾零命中的食譜，依命中數、再依可用度由高到低排序。
// 同分時保持輸入順序；maxResults <= 0 表示不截斷。
func Rank(tokens []string, recipes []common.Recipe, maxResults int) []common.ScoredRecipe {
	scored := make([]common.ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		if s, ok := Score(tokens, r); ok {
			scored = append(scored, s)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchCount != scored[j].MatchCount {
			return scored[i].MatchCount > scored[j].MatchCount
		}
		return scored[i].AvailabilityScore > scored[j].AvailabilityScore
	})

	if maxResults > 0 && len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}
