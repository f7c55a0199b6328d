package image

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultUnsplashBaseURL = "https://api.unsplash.com"
	defaultPixabayBaseURL  = "https://pixabay.com"
	defaultTimeout         = 5 * time.Second
)

var (
	nonWordPattern = regexp.MustCompile(`[^\w\s]`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Service 菜名 → 圖片網址：內建對照表、Unsplash、Pixabay，最後是佔位圖。
// 任何查詢失敗都只記錄，不會回傳錯誤。
type Service struct {
	enabled     bool
	unsplashKey string
	pixabayKey  string
	unsplash    *resty.Client
	pixabay     *resty.Client
	dishes      []dishImage
}

// NewService 創建圖片查詢服務
func NewService(cfg config.ImageConfig) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	unsplashURL := cfg.UnsplashBaseURL
	if unsplashURL == "" {
		unsplashURL = defaultUnsplashBaseURL
	}
	pixabayURL := cfg.PixabayBaseURL
	if pixabayURL == "" {
		pixabayURL = defaultPixabayBaseURL
	}

	return &Service{
		enabled:     cfg.Enabled,
		unsplashKey: cfg.UnsplashAccessKey,
		pixabayKey:  cfg.PixabayAPIKey,
		unsplash: resty.New().
			SetBaseURL(strings.TrimRight(unsplashURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept-Version", "v1"),
		pixabay: resty.New().
			SetBaseURL(strings.TrimRight(pixabayURL, "/")).
			SetTimeout(timeout),
		dishes: dishImages,
	}
}

// CleanName 小寫、去標點、合併空白
func CleanName(name string) string {
	s := strings.ToLower(name)
	s = nonWordPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Placeholder 找不到圖片時的佔位圖
func Placeholder(dishName string) string {
	return "/placeholder.svg?height=300&width=400&text=" + encodeComponent(dishName)
}

// Find 依序查詢，永遠回傳一個網址
func (s *Service) Find(ctx context.Context, dishName string) string {
	clean := CleanName(dishName)
	if clean != "" {
		if u, ok := s.lookupStatic(clean); ok {
			return u
		}
	}

	if s.enabled && clean != "" {
		if u := s.searchUnsplash(ctx, clean); u != "" {
			return u
		}
		if u := s.searchPixabay(ctx, clean); u != "" {
			return u
		}
	}

	return Placeholder(dishName)
}

// lookupStatic 先找完全相同的菜名，再找雙向部分包含
func (s *Service) lookupStatic(clean string) (string, bool) {
	for _, d := range s.dishes {
		if d.name == clean {
			return d.url, true
		}
	}
	for _, d := range s.dishes {
		if strings.Contains(clean, d.name) || strings.Contains(d.name, clean) {
			return d.url, true
		}
	}
	return "", false
}

type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

func (s *Service) searchUnsplash(ctx context.Context, clean string) string {
	if s.unsplashKey == "" {
		return ""
	}

	var result unsplashResponse
	resp, err := s.unsplash.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+s.unsplashKey).
		SetQueryParams(map[string]string{
			"query":       clean + " indian food",
			"per_page":    "1",
			"orientation": "landscape",
		}).
		SetResult(&result).
		Get("/search/photos")
	if err != nil {
		common.LogWarn("Unsplash 圖片查詢失敗", zap.String("dish", clean), zap.Error(err))
		return ""
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("Unsplash 回傳錯誤狀態", zap.String("dish", clean), zap.Int("status_code", resp.StatusCode()))
		return ""
	}
	if len(result.Results) == 0 {
		return ""
	}
	return result.Results[0].URLs.Regular
}

type pixabayResponse struct {
	Hits []struct {
		WebformatURL string `json:"webformatURL"`
	} `json:"hits"`
}

func (s *Service) searchPixabay(ctx context.Context, clean string) string {
	if s.pixabayKey == "" {
		return ""
	}

	var result pixabayResponse
	resp, err := s.pixabay.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":         s.pixabayKey,
			"q":           clean + " indian food",
			"image_type":  "photo",
			"orientation": "horizontal",
			"per_page":    "3",
			"min_width":   "400",
			"min_height":  "300",
		}).
		SetResult(&result).
		Get("/api/")
	if err != nil {
		common.LogWarn("Pixabay 圖片查詢失敗", zap.String("dish", clean), zap.Error(err))
		return ""
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("Pixabay 回傳錯誤狀態", zap.String("dish", clean), zap.Int("status_code", resp.StatusCode()))
		return ""
	}
	if len(result.Hits) == 0 {
		return ""
	}
	return result.Hits[0].WebformatURL
}

// encodeComponent 空白編成 %20 而不是 +
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
