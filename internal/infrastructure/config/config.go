package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Generator   GeneratorConfig `mapstructure:"generator"`
	Image       ImageConfig     `mapstructure:"image"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Queue       QueueConfig     `mapstructure:"queue"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Search      SearchConfig    `mapstructure:"search"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

// GeneratorConfig 食譜生成模型配置（OpenAI 相容的 chat completions API）
type GeneratorConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Provider    string        `mapstructure:"provider"`
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Available 啟用且有 API Key 才會呼叫模型
func (g GeneratorConfig) Available() bool {
	return g.Enabled && g.APIKey != ""
}

// ImageConfig 圖片查詢配置
type ImageConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	UnsplashAccessKey string        `mapstructure:"unsplash_access_key"`
	UnsplashBaseURL   string        `mapstructure:"unsplash_base_url"`
	PixabayAPIKey     string        `mapstructure:"pixabay_api_key"`
	PixabayBaseURL    string        `mapstructure:"pixabay_base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// CacheConfig 緩存配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Driver          string        `mapstructure:"driver"` // memory | redis
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
}

// 緩存驅動
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// QueueConfig 生成請求併發設定
type QueueConfig struct {
	Workers int `mapstructure:"workers"`
	MaxSize int `mapstructure:"max_size"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// SearchConfig 搜尋預設值
type SearchConfig struct {
	DefaultMealCount int `mapstructure:"default_meal_count"`
	MaxMatchResults  int `mapstructure:"max_match_results"`
}

// envBindings 常用的環境變數名稱
var envBindings = map[string]string{
	"server.port":               "PORT",
	"generator.api_key":         "GROQ_API_KEY",
	"generator.model":           "GROQ_MODEL",
	"generator.base_url":        "GROQ_BASE_URL",
	"generator.max_tokens":      "MODEL_MAX_TOKENS",
	"image.unsplash_access_key": "UNSPLASH_ACCESS_KEY",
	"image.pixabay_api_key":     "PIXABAY_API_KEY",
	"cache.enabled":             "CACHE_ENABLED",
	"cache.driver":              "CACHE_DRIVER",
	"cache.redis_addr":          "REDIS_ADDR",
	"cache.redis_password":      "REDIS_PASSWORD",
	"rate_limit.enabled":        "RATE_LIMIT_ENABLED",
	"rate_limit.requests":       "RATE_LIMIT_REQUESTS",
	"rate_limit.window":         "RATE_LIMIT_WINDOW",
	"dedup_window":              "DEDUP_WINDOW",
	"log_level":                 "LOG_LEVEL",
}

// LoadConfig 從 .env 與環境變數載入設定
func LoadConfig() (*Config, error) {
	return Load(viper.New(), ".env")
}

// Load 以指定的 viper 實例載入設定；envFile 不存在時略過
func Load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	setDefaults(v)

	// APP_SERVER_PORT → server.port
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		if err := v.BindEnv(key, "APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "recipe-finder")

	// 伺服器設定
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.request_timeout", "45s")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.allowed_origins", []string{"*"})

	// 生成模型設定
	v.SetDefault("generator.enabled", true)
	v.SetDefault("generator.provider", "groq")
	v.SetDefault("generator.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("generator.model", "llama-3.1-8b-instant")
	v.SetDefault("generator.max_tokens", 2048)
	v.SetDefault("generator.temperature", 0.1)
	v.SetDefault("generator.timeout", "20s")

	// 圖片設定
	v.SetDefault("image.enabled", true)
	v.SetDefault("image.unsplash_base_url", "https://api.unsplash.com")
	v.SetDefault("image.pixabay_base_url", "https://pixabay.com")
	v.SetDefault("image.timeout", "5s")

	// 快取設定（預設關閉，維持無狀態）
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.driver", CacheDriverMemory)
	v.SetDefault("cache.max_size", 1000)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.cleanup_interval", "10m")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_db", 0)

	// 隊列設定
	v.SetDefault("queue.workers", 5)
	v.SetDefault("queue.max_size", 100)

	// 限流設定
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")

	// 搜尋設定
	v.SetDefault("search.default_meal_count", 1)
	v.SetDefault("search.max_match_results", 20)

	v.SetDefault("dedup_window", "1s")
	v.SetDefault("log_level", "info")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}
	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid server max body bytes")
	}

	// 驗證生成模型設定
	if config.Generator.Timeout <= 0 {
		return fmt.Errorf("invalid generator timeout")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		switch config.Cache.Driver {
		case CacheDriverMemory:
			if config.Cache.MaxSize <= 0 {
				return fmt.Errorf("invalid cache max size")
			}
			if config.Cache.CleanupInterval <= 0 {
				return fmt.Errorf("invalid cache cleanup interval")
			}
		case CacheDriverRedis:
			if config.Cache.RedisAddr == "" {
				return fmt.Errorf("redis address is required")
			}
		default:
			return fmt.Errorf("unknown cache driver %q", config.Cache.Driver)
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
	}

	// 驗證隊列設定
	if config.Queue.Workers <= 0 {
		return fmt.Errorf("invalid queue workers")
	}
	if config.Queue.MaxSize <= 0 {
		return fmt.Errorf("invalid queue max size")
	}

	// 驗證限流設定
	if config.RateLimit.Enabled && (config.RateLimit.Requests <= 0 || config.RateLimit.Window <= 0) {
		return fmt.Errorf("invalid rate limit")
	}

	if config.Search.DefaultMealCount <= 0 {
		return fmt.Errorf("invalid default meal count")
	}

	return nil
}
