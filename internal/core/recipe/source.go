package recipe

import (
	"context"
	"errors"
	"time"

	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// Completer 文字生成依賴：送出提示詞，取回模型原始輸出
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GenerateRequest 食譜生成參數
type GenerateRequest struct {
	Ingredients string // 正規化後的食材文字
	MealCount   int
	Language    string // 僅供記錄
	AllowExtra  bool
}

// Source 透過 Completer 生成食譜，失敗時以簡化提示詞重試一次
type Source struct {
	completer Completer
}

// NewSource 創建食譜來源；completer 為 nil 時每次都回傳 ErrGeneratorUnavailable
func NewSource(completer Completer) *Source {
	return &Source{completer: completer}
}

// Generate 產生經過驗證的食譜。
// 兩次都失敗時回傳 *GenerationError；生成器不可用時不重試。
func (s *Source) Generate(ctx context.Context, req GenerateRequest) ([]common.Recipe, error) {
	if s == nil || s.completer == nil {
		return nil, &GenerationError{Attempts: 0, Err: ErrGeneratorUnavailable}
	}

	common.LogDebug("開始生成食譜",
		zap.Int("meal_count", req.MealCount),
		zap.String("language", req.Language),
		zap.Bool("allow_extra", req.AllowExtra),
	)

	recipes, err := s.attempt(ctx, "primary", BuildPrompt(req.Ingredients, req.MealCount, req.AllowExtra))
	if err == nil {
		return recipes, nil
	}
	if errors.Is(err, ErrGeneratorUnavailable) || ctx.Err() != nil {
		return nil, &GenerationError{Attempts: 1, Err: err}
	}

	recipes, retryErr := s.attempt(ctx, "simplified", BuildRetryPrompt(req.Ingredients))
	if retryErr == nil {
		return recipes, nil
	}
	return nil, &GenerationError{Attempts: 2, Err: err, RetryErr: retryErr}
}

func (s *Source) attempt(ctx context.Context, name, prompt string) ([]common.Recipe, error) {
	start := time.Now()
	content, err := s.completer.Complete(ctx, prompt)
	if err == nil {
		var recipes []common.Recipe
		recipes, err = ParseRecipes(content)
		if err == nil {
			common.LogGeneration(name, len(recipes), time.Since(start), nil)
			return recipes, nil
		}
	}
	common.LogGeneration(name, 0, time.Since(start), err)
	return nil, err
}
