package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-finder/internal/core/ai/provider"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"
	defaultTimeout = 20 * time.Second
)

// ErrEmptyResponse 模型沒有回傳任何內容
var ErrEmptyResponse = errors.New("empty content in chat completion response")

// APIError 非 200 回應
type APIError struct {
	StatusCode int
	Message    string
	Type       string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("chat completion API error (status %d, %s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("chat completion API error (status %d): %s", e.StatusCode, e.Message)
}

// chatResponse OpenAI 相容的回應結構
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message provider.Message `json:"message"`
	} `json:"choices"`
	Usage provider.Usage `json:"usage"`
}

// errorResponse 錯誤回應結構
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client OpenAI 相容的 chat completions 客戶端（預設為 Groq）
type Client struct {
	cfg    provider.Config
	client *resty.Client
}

var _ provider.Provider = (*Client)(nil)

// NewClient 創建客戶端
func NewClient(cfg provider.Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{cfg: cfg, client: client}
}

// Generate 送出 chat completion 請求
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	body := *req
	if body.Model == "" {
		body.Model = c.cfg.Model
	}
	if body.MaxTokens == 0 {
		body.MaxTokens = c.cfg.MaxTokens
	}

	common.LogDebug("Sending chat completion request",
		zap.String("model", body.Model),
		zap.Int("messages", len(body.Messages)),
		zap.Float64("temperature", body.Temperature),
	)

	var result chatResponse
	var apiErr errorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send chat completion request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		common.LogWarn("Chat completion API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", body.Model),
			zap.String("response", msg),
		)
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: msg, Type: apiErr.Error.Type}
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return nil, ErrEmptyResponse
	}

	common.LogDebug("Chat completion succeeded",
		zap.String("model", result.Model),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)

	return &provider.Response{
		Content: result.Choices[0].Message.Content,
		Model:   result.Model,
		Usage:   result.Usage,
	}, nil
}

// GetModel 當前模型
func (c *Client) GetModel() string {
	return c.cfg.Model
}

// GetTimeout 請求超時
func (c *Client) GetTimeout() time.Duration {
	return c.cfg.Timeout
}

// Close 關閉閒置連線
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
