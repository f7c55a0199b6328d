package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-finder/internal/api"
	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/queue"
	"recipe-finder/internal/core/ai/service"
	"recipe-finder/internal/core/image"
	"recipe-finder/internal/core/lexicon"
	"recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.Bool("generator_available", cfg.Generator.Available()),
		zap.String("generator_model", cfg.Generator.Model),
		zap.String("generator_api_key", common.MaskSecret(cfg.Generator.APIKey)),
		zap.Bool("image_lookup", cfg.Image.Enabled),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_driver", cfg.Cache.Driver),
	)

	// 初始化快取；失敗時不使用快取繼續啟動
	store, err := cache.New(cfg.Cache)
	if err != nil {
		common.LogError("Failed to initialize cache, continuing without it", zap.Error(err))
		store = nil
	}

	q := queue.NewManager(cfg.Queue)
	defer q.Close()

	aiSvc := service.New(cfg, store, q)
	defer aiSvc.Close()

	pipeline := recipe.NewPipeline(
		lexicon.Default(),
		recipe.NewSource(aiSvc),
		recipe.DefaultCorpus(),
		recipe.WithImages(image.NewService(cfg.Image)),
		recipe.WithDefaultMealCount(cfg.Search.DefaultMealCount),
		recipe.WithMaxMatchResults(cfg.Search.MaxMatchResults),
	)

	router, err := api.SetupRouter(cfg, pipeline, aiSvc)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		return
	}

	common.LogInfo("Server exited")
}
