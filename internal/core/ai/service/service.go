package service

import (
	"context"
	"fmt"
	"strings"

	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/groq"
	"recipe-finder/internal/core/ai/provider"
	"recipe-finder/internal/core/ai/queue"
	"recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// Service AI 生成服務：可用性檢查、併發限制、快取、逾時
type Service struct {
	cfg      config.GeneratorConfig
	provider provider.Provider
	cache    cache.Store
	queue    *queue.Manager
}

var _ recipe.Completer = (*Service)(nil)

// Status 生成服務狀態
type Status struct {
	Available bool          `json:"available"`
	Provider  string        `json:"provider"`
	Model     string        `json:"model"`
	Queue     *queue.Status `json:"queue,omitempty"`
	Cache     *cache.Stats  `json:"cache,omitempty"`
}

// NewService 創建 AI 服務；store 與 q 可為 nil
func NewService(cfg config.GeneratorConfig, p provider.Provider, store cache.Store, q *queue.Manager) *Service {
	return &Service{
		cfg:      cfg,
		provider: p,
		cache:    store,
		queue:    q,
	}
}

// New 依設定建立服務；沒有 API Key 時不建立客戶端
func New(cfg *config.Config, store cache.Store, q *queue.Manager) *Service {
	var p provider.Provider
	if cfg.Generator.Available() {
		p = groq.NewClient(provider.Config{
			APIKey:      cfg.Generator.APIKey,
			Model:       cfg.Generator.Model,
			BaseURL:     cfg.Generator.BaseURL,
			MaxTokens:   cfg.Generator.MaxTokens,
			Temperature: cfg.Generator.Temperature,
			Timeout:     cfg.Generator.Timeout,
		})
	}

	common.LogInfo("AI 生成服務已初始化",
		zap.Bool("available", cfg.Generator.Available()),
		zap.String("provider", cfg.Generator.Provider),
		zap.String("model", cfg.Generator.Model),
		zap.String("api_key", common.MaskSecret(cfg.Generator.APIKey)),
		zap.Bool("cache_enabled", store != nil),
	)
	return NewService(cfg.Generator, p, store, q)
}

// Available 是否會實際呼叫模型
func (s *Service) Available() bool {
	return s != nil && s.provider != nil && s.cfg.Available()
}

// Complete 送出提示詞並回傳模型原始輸出
func (s *Service) Complete(ctx context.Context, prompt string) (string, error) {
	if !s.Available() {
		return "", recipe.ErrGeneratorUnavailable
	}

	// 統一空白，確保快取 key 一致
	key := cache.Key(strings.Join(strings.Fields(prompt), " "))
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, key); err == nil && val != "" {
			common.LogDebug("生成結果快取命中", zap.String("key", key))
			return val, nil
		}
	}

	var content string
	call := func(ctx context.Context) error {
		if s.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
			defer cancel()
		}

		resp, err := s.provider.Generate(ctx, &provider.Request{
			Model:          s.cfg.Model,
			Messages:       []provider.Message{{Role: "user", Content: prompt}},
			MaxTokens:      s.cfg.MaxTokens,
			Temperature:    s.cfg.Temperature,
			ResponseFormat: provider.JSONObject,
		})
		if err != nil {
			return err
		}
		content = resp.Content
		return nil
	}

	var err error
	if s.queue != nil {
		err = s.queue.Do(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	// 只快取通過驗證的輸出，不合格的結果留給下一次重新生成
	if s.cache != nil {
		if _, err := recipe.ParseRecipes(content); err != nil {
			common.LogDebug("生成結果未通過驗證，不寫入快取", zap.Error(err))
		} else if err := s.cache.Set(ctx, key, content); err != nil {
			common.LogWarn("生成結果寫入快取失敗", zap.Error(err))
		}
	}
	return content, nil
}

// Status 服務狀態
func (s *Service) Status() Status {
	st := Status{
		Available: s.Available(),
		Provider:  s.cfg.Provider,
		Model:     s.cfg.Model,
	}
	if s.queue != nil {
		st.Queue = s.queue.GetQueueStatus()
	}
	if s.cache != nil {
		stats := s.cache.Stats()
		st.Cache = &stats
	}
	return st
}

// Close 釋放客戶端與快取
func (s *Service) Close() error {
	if s.provider != nil {
		_ = s.provider.Close()
	}
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}
