package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrClosed 隊列已關閉
var ErrClosed = errors.New("queue manager is closed")

// Status 隊列狀態
type Status struct {
	QueueLength    int `json:"queue_length"`
	Active         int `json:"active"`
	ProcessedCount int `json:"processed_count"`
	RejectedCount  int `json:"rejected_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Manager 限制同時進行的生成請求：最多 workers 個執行中、max_size 個排隊
type Manager struct {
	slots     chan struct{}
	workers   int
	maxSize   int
	waiting   atomic.Int64
	processed atomic.Int64
	rejected  atomic.Int64
	done      chan struct{}
	once      sync.Once
}

// NewManager 創建新的隊列管理器
func NewManager(cfg config.QueueConfig) *Manager {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Manager{
		slots:   make(chan struct{}, workers),
		workers: workers,
		maxSize: cfg.MaxSize,
		done:    make(chan struct{}),
	}
}

// Do 取得執行名額後呼叫 fn。
// 排隊已滿回傳 common.ErrQueueFull；等待中 ctx 結束則回傳 ctx.Err()。
func (m *Manager) Do(ctx context.Context, fn func(context.Context) error) error {
	select {
	case <-m.done:
		return ErrClosed
	default:
	}

	if n := m.waiting.Add(1); m.maxSize > 0 && n > int64(m.maxSize) {
		m.waiting.Add(-1)
		m.rejected.Add(1)
		common.LogWarn("生成隊列已滿",
			zap.Int64("queue_length", n-1),
			zap.Int("max_queue_size", m.maxSize),
		)
		return common.ErrQueueFull
	}

	select {
	case m.slots <- struct{}{}:
		m.waiting.Add(-1)
	case <-ctx.Done():
		m.waiting.Add(-1)
		return ctx.Err()
	case <-m.done:
		m.waiting.Add(-1)
		return ErrClosed
	}
	defer func() { <-m.slots }()

	err := fn(ctx)
	m.processed.Add(1)
	return err
}

// GetQueueStatus 獲取隊列狀態
func (m *Manager) GetQueueStatus() *Status {
	return &Status{
		QueueLength:    int(m.waiting.Load()),
		Active:         len(m.slots),
		ProcessedCount: int(m.processed.Load()),
		RejectedCount:  int(m.rejected.Load()),
		MaxQueueSize:   m.maxSize,
		Workers:        m.workers,
	}
}

// Close 關閉隊列管理器，之後的 Do 一律回傳 ErrClosed
func (m *Manager) Close() {
	m.once.Do(func() { close(m.done) })
}
