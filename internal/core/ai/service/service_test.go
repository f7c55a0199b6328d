package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/provider"
	"recipe-finder/internal/core/ai/queue"
	"recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	calls    int
	content  string
	err      error
	delay    time.Duration
	requests []*provider.Request
}

func (p *stubProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	p.calls++
	p.requests = append(p.requests, req)
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return &provider.Response{Content: p.content}, nil
}

func (p *stubProvider) GetModel() string          { return "stub" }
func (p *stubProvider) GetTimeout() time.Duration { return time.Second }
func (p *stubProvider) Close() error              { return nil }

const validBatch = `{"recipes":[{"name":"Jeera Aloo","nameHindi":"जीरा आलू","ingredients":["2 potatoes","1 tsp cumin"],"instructions":["Boil potatoes","Temper cumin"],"cookTime":"20 mins","description":"Potatoes with cumin","mealType":"Lunch"}]}`

func generatorConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		Enabled:     true,
		Provider:    "groq",
		APIKey:      "key",
		Model:       "llama-3.1-8b-instant",
		MaxTokens:   256,
		Temperature: 0.1,
		Timeout:     time.Second,
	}
}

func TestService_Unavailable(t *testing.T) {
	cfg := generatorConfig()
	cfg.APIKey = ""
	p := &stubProvider{content: "x"}
	s := NewService(cfg, p, nil, nil)

	_, err := s.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, recipe.ErrGeneratorUnavailable)
	assert.Equal(t, 0, p.calls)
	assert.False(t, s.Status().Available)

	var nilSvc *Service
	assert.False(t, nilSvc.Available())
}

func TestService_Complete(t *testing.T) {
	p := &stubProvider{content: `{"recipes":[]}`}
	s := NewService(generatorConfig(), p, nil, queue.NewManager(config.QueueConfig{Workers: 1, MaxSize: 1}))

	got, err := s.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"recipes":[]}`, got)

	require.Len(t, p.requests, 1)
	req := p.requests[0]
	assert.Equal(t, "llama-3.1-8b-instant", req.Model)
	assert.Equal(t, 256, req.MaxTokens)
	assert.InDelta(t, 0.1, req.Temperature, 1e-9)
	assert.Equal(t, provider.JSONObject, req.ResponseFormat)
	assert.Equal(t, "prompt", req.Messages[0].Content)

	status := s.Status()
	assert.True(t, status.Available)
	require.NotNil(t, status.Queue)
	assert.Equal(t, 1, status.Queue.ProcessedCount)
}

func TestService_ProviderError(t *testing.T) {
	boom := errors.New("upstream down")
	s := NewService(generatorConfig(), &stubProvider{err: boom}, nil, nil)

	_, err := s.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, boom)
}

func TestService_Timeout(t *testing.T) {
	cfg := generatorConfig()
	cfg.Timeout = 20 * time.Millisecond
	s := NewService(cfg, &stubProvider{content: "late", delay: time.Second}, nil, nil)

	_, err := s.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_Cache(t *testing.T) {
	store := cache.NewManager(config.CacheConfig{MaxSize: 10, TTL: time.Minute})
	defer store.Close()

	p := &stubProvider{content: validBatch}
	s := NewService(generatorConfig(), p, store, nil)

	for i := 0; i < 2; i++ {
		got, err := s.Complete(context.Background(), "same   prompt")
		require.NoError(t, err)
		assert.Equal(t, validBatch, got)
	}
	_, err := s.Complete(context.Background(), "same prompt")
	require.NoError(t, err)

	assert.Equal(t, 1, p.calls)
	require.NotNil(t, s.Status().Cache)
	assert.Equal(t, int64(2), s.Status().Cache.Hits)
}

func TestService_InvalidOutputNotCached(t *testing.T) {
	store := cache.NewManager(config.CacheConfig{MaxSize: 10, TTL: time.Minute})
	defer store.Close()

	p := &stubProvider{content: "sorry, no recipes today"}
	source := recipe.NewSource(NewService(generatorConfig(), p, store, nil))
	req := recipe.GenerateRequest{Ingredients: "potato, cumin", MealCount: 1}

	_, err := source.Generate(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 2, p.calls)

	// 模型恢復正常後必須重新呼叫，而不是讀到快取的錯誤輸出
	p.content = validBatch
	got, err := source.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jeera Aloo", got[0].Name)
	assert.Equal(t, 3, p.calls)
}

func TestService_QueueClosed(t *testing.T) {
	q := queue.NewManager(config.QueueConfig{Workers: 1, MaxSize: 1})
	q.Close()
	s := NewService(generatorConfig(), &stubProvider{content: "x"}, nil, q)

	_, err := s.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, queue.ErrClosed)
	assert.False(t, errors.Is(err, common.ErrQueueFull))
}

func TestNew_WithoutKey(t *testing.T) {
	cfg := &config.Config{Generator: generatorConfig()}
	cfg.Generator.APIKey = ""

	s := New(cfg, nil, nil)
	assert.False(t, s.Available())
	assert.NoError(t, s.Close())

	cfg.Generator = generatorConfig()
	s = New(cfg, nil, nil)
	assert.True(t, s.Available())
	assert.NoError(t, s.Close())
}
