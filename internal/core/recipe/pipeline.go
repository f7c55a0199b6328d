package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-finder/internal/core/lexicon"
	"recipe-finder/internal/pkg/common"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// Tier 食譜來源層級
type Tier int

const (
	TierGenerated Tier = iota // 模型生成
	TierFallback              // 靜態備用食譜庫
	TierEmergency             // 緊急備援
)

func (t Tier) String() string {
	switch t {
	case TierGenerated:
		return "generated"
	case TierFallback:
		return "fallback"
	case TierEmergency:
		return "emergency"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// idPrefix 食譜 ID 的來源標記
func (t Tier) idPrefix() string {
	switch t {
	case TierGenerated:
		return "ai-recipe"
	case TierFallback:
		return "fallback-recipe"
	default:
		return "emergency"
	}
}

// 使用者看到的提示訊息
const (
	FallbackMessage  = "Using curated recipes - AI service temporarily unavailable"
	EmergencyMessage = "Showing basic recipes - please try again later"
)

// 緊急回應固定內容
var (
	emergencyCorrected  = "Basic Ingredients"
	emergencyNormalized = []string{"rice", "onion", "potato"}
	emergencyLanguage   = "english"
)

// Outcome 取得食譜的結果：每一層只在上一層失敗時才會用到
type Outcome struct {
	Tier    Tier
	Recipes []common.Recipe
	Err     error // 導致降級的錯誤
}

// ImageFinder 依菜名取得圖片網址，失敗時回傳佔位圖
type ImageFinder interface {
	Find(ctx context.Context, dishName string) string
}

// Pipeline 食譜搜尋與比對流程
type Pipeline struct {
	lexicon          *lexicon.Lexicon
	source           *Source
	corpus           *Corpus
	images           ImageFinder
	defaultMealCount int
	maxMatchResults  int
	now              func() time.Time
}

// Option Pipeline 設定
type Option func(*Pipeline)

// WithImages 比對結果附加圖片
func WithImages(f ImageFinder) Option {
	return func(p *Pipeline) { p.images = f }
}

// WithDefaultMealCount 未指定 mealCount 時使用的值
func WithDefaultMealCount(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.defaultMealCount = n
		}
	}
}

// WithMaxMatchResults 比對結果上限
func WithMaxMatchResults(n int) Option {
	return func(p *Pipeline) { p.maxMatchResults = n }
}

// WithClock 替換時間來源（ID 使用毫秒時間戳）
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPipeline 創建食譜流程；lex 或 corpus 為 nil 時使用內建資料
func NewPipeline(lex *lexicon.Lexicon, source *Source, corpus *Corpus, opts ...Option) *Pipeline {
	if lex == nil {
		lex = lexicon.Default()
	}
	if corpus == nil {
		corpus = DefaultCorpus()
	}
	p := &Pipeline{
		lexicon:          lex,
		source:           source,
		corpus:           corpus,
		defaultMealCount: 1,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) mealCount(n int) int {
	if n <= 0 {
		return p.defaultMealCount
	}
	return n
}

// Normalize 只做拼字修正與正規化
func (p *Pipeline) Normalize(req common.NormalizeRequest) (*common.NormalizeResponse, error) {
	if strings.TrimSpace(req.Ingredients) == "" {
		return nil, common.ErrEmptyIngredients
	}
	res := p.lexicon.Process(req.Ingredients)
	return &common.NormalizeResponse{
		Success:               true,
		CorrectedIngredients:  res.Display,
		NormalizedIngredients: res.Tokens,
	}, nil
}

// Resolve 依序嘗試生成、備用食譜庫、緊急食譜，保證回傳非空食譜
func (p *Pipeline) Resolve(ctx context.Context, req GenerateRequest) Outcome {
	recipes, err := p.source.Generate(ctx, req)
	if err == nil && len(recipes) > 0 {
		return Outcome{Tier: TierGenerated, Recipes: recipes}
	}
	if err == nil {
		err = &GenerationError{Attempts: 1, Err: ErrNoRecipes}
	}
	common.LogWarn("AI 生成失敗，改用備用食譜", zap.Error(err))

	fallback, ferr := p.corpus.Select(req.MealCount, req.AllowExtra)
	if ferr == nil {
		return Outcome{Tier: TierFallback, Recipes: fallback, Err: err}
	}
	common.LogError("備用食譜無法使用，改用緊急食譜", zap.Error(ferr))
	return Outcome{Tier: TierEmergency, Recipes: emergencyRecipes(), Err: ferr}
}

// Search 食譜搜尋：修正 → 正規化 → 取得食譜 → 分組。
// 只有空白輸入會回傳錯誤，其他失敗一律降級為備用或緊急食譜。
func (p *Pipeline) Search(ctx context.Context, req common.SearchRequest) (resp *common.SearchResponse, err error) {
	if strings.TrimSpace(req.Ingredients) == "" {
		return nil, common.ErrEmptyIngredients
	}

	defer func() {
		if r := recover(); r != nil {
			common.LogError("食譜搜尋發生未預期錯誤，改用緊急食譜", zap.Any("panic", r))
			resp, err = p.emergencyResponse(), nil
		}
	}()

	mealCount := p.mealCount(req.MealCount)
	lex := p.lexicon.Process(req.Ingredients)

	outcome := p.Resolve(ctx, GenerateRequest{
		Ingredients: lex.Normalized,
		MealCount:   mealCount,
		Language:    req.Language,
		AllowExtra:  req.AllowExtraIngredients,
	})
	if outcome.Tier == TierEmergency {
		return p.emergencyResponse(), nil
	}

	recipes := p.assignIDs(outcome.Recipes, outcome.Tier)
	mealSets := Group(recipes, mealCount)

	resp = &common.SearchResponse{
		Success:               true,
		Recipes:               recipes,
		MealSets:              mealSets,
		CorrectedIngredients:  lex.Display,
		NormalizedIngredients: lex.Tokens,
		Language:              req.Language,
		Fallback:              outcome.Tier != TierGenerated,
		TotalRecipes:          len(recipes),
		Structure: common.Structure{
			MealCount:      mealCount,
			RecipesPerMeal: ceilDiv(len(recipes), mealCount),
			TotalSets:      len(mealSets),
		},
	}
	if resp.Fallback {
		resp.Message = FallbackMessage
	}

	common.LogInfo("食譜搜尋完成",
		zap.String("tier", outcome.Tier.String()),
		zap.Int("recipes", len(recipes)),
		zap.Strings("ingredients", lex.Tokens),
	)
	return resp, nil
}

// Match 以使用者食材對備用食譜庫評分排序，並可附加圖片
func (p *Pipeline) Match(ctx context.Context, req common.MatchRequest) (*common.MatchResponse, error) {
	if strings.TrimSpace(req.Ingredients) == "" {
		return nil, common.ErrEmptyIngredients
	}

	lex := p.lexicon.Process(req.Ingredients)

	limit := req.Limit
	if limit <= 0 {
		limit = p.mealCount(req.MealCount)
	}
	if p.maxMatchResults > 0 && limit > p.maxMatchResults {
		limit = p.maxMatchResults
	}

	scored := Rank(lex.Tokens, p.corpus.Recipes(req.AllowExtraIngredients), limit)
	ts := p.now().UnixMilli()
	for i := range scored {
		scored[i].Recipe = scored[i].Recipe.WithID(fmt.Sprintf("recipe-%d-%d", i, ts))
	}

	includeImages := req.IncludeImages == nil || *req.IncludeImages
	if includeImages && p.images != nil && len(scored) > 0 {
		urls := iter.Map(scored, func(r *common.ScoredRecipe) string {
			return p.images.Find(ctx, r.Name)
		})
		for i := range scored {
			scored[i].Image = urls[i]
		}
	}

	return &common.MatchResponse{
		Success:               true,
		Recipes:               scored,
		NormalizedIngredients: lex.Tokens,
		TotalRecipes:          len(scored),
	}, nil
}

func (p *Pipeline) assignIDs(recipes []common.Recipe, tier Tier) []common.Recipe {
	ts := p.now().UnixMilli()
	out := make([]common.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.WithID(fmt.Sprintf("%s-%d-%d", tier.idPrefix(), i, ts))
	}
	return out
}

func (p *Pipeline) emergencyResponse() *common.SearchResponse {
	recipes := p.assignIDs(emergencyRecipes(), TierEmergency)
	return &common.SearchResponse{
		Success:               true,
		Recipes:               recipes,
		MealSets:              []common.MealSet{{MealType: LabelEmergency, Recipes: recipes}},
		CorrectedIngredients:  emergencyCorrected,
		NormalizedIngredients: append([]string(nil), emergencyNormalized...),
		Language:              emergencyLanguage,
		Fallback:              true,
		Message:               EmergencyMessage,
		TotalRecipes:          len(recipes),
		Structure: common.Structure{
			MealCount:      1,
			RecipesPerMeal: len(recipes),
			TotalSets:      1,
		},
	}
}

// emergencyRecipes 固定取內建食譜庫，不受注入的食譜庫影響
func emergencyRecipes() []common.Recipe {
	return DefaultCorpus().Emergency()
}
