package main

import (
	"encoding/json"
	"fmt"
	"io"

	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/queue"
	"recipe-finder/internal/core/ai/service"
	"recipe-finder/internal/core/image"
	"recipe-finder/internal/core/lexicon"
	"recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootOptions 全域旗標
type rootOptions struct {
	envFile  string
	logLevel string
	offline  bool
	cfg      *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "recipectl",
		Short: "Find Indian recipes from the ingredients you have",
		Long: `recipectl runs the recipe-finder pipelines locally.

Ingredients may be written in English, Hinglish (pyaz, aloo) or Devanagari
(प्याज, आलू); they are spell-corrected and normalized before searching.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load (ignored when missing)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log to stderr at this level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.offline, "offline", false, "never call the generation or image services")

	cmd.AddCommand(normalizeCmd())
	cmd.AddCommand(searchCmd(opts))
	cmd.AddCommand(matchCmd(opts))

	return cmd
}

func (o *rootOptions) init() error {
	cfg, err := config.Load(viper.New(), o.envFile)
	if err != nil {
		return err
	}
	if o.offline {
		cfg.Generator.Enabled = false
		cfg.Image.Enabled = false
		cfg.Cache.Enabled = false
	}
	o.cfg = cfg

	if o.logLevel == "" {
		common.SetLogger(nil)
		return nil
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(common.ParseLevel(o.logLevel))
	zcfg.OutputPaths = []string{"stderr"}
	l, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	common.SetLogger(l)
	return nil
}

// pipeline 依設定組出與 API 相同的流程
func (o *rootOptions) pipeline() (*recipe.Pipeline, func(), error) {
	store, err := cache.New(o.cfg.Cache)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	q := queue.NewManager(o.cfg.Queue)
	aiSvc := service.New(o.cfg, store, q)

	p := recipe.NewPipeline(
		lexicon.Default(),
		recipe.NewSource(aiSvc),
		recipe.DefaultCorpus(),
		recipe.WithImages(image.NewService(o.cfg.Image)),
		recipe.WithDefaultMealCount(o.cfg.Search.DefaultMealCount),
		recipe.WithMaxMatchResults(o.cfg.Search.MaxMatchResults),
	)
	cleanup := func() {
		q.Close()
		_ = aiSvc.Close()
	}
	return p, cleanup, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
