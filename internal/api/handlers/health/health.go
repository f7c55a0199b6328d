package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-finder/internal/core/ai/service"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusReporter 提供生成服務狀態
type StatusReporter interface {
	Status() service.Status
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Generator *service.Status        `json:"generator,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	version   string
	generator StatusReporter
}

// NewHandler 創建健康檢查處理器；generator 可為 nil
func NewHandler(version string, generator StatusReporter) *Handler {
	return &Handler{version: version, generator: generator}
}

// HealthCheck 健康檢查
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}
	if h.generator != nil {
		st := h.generator.Status()
		response.Generator = &st
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查。
// 生成服務不可用時仍可用備用食譜回應，所以只標記為 degraded。
func (h *Handler) ReadinessCheck(c *gin.Context) {
	status := "ready"
	generatorAvailable := false
	if h.generator != nil {
		generatorAvailable = h.generator.Status().Available
	}
	if !generatorAvailable {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":              status,
		"generator_available": generatorAvailable,
	})
}

// LivenessCheck 存活檢查
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
