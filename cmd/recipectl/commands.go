package main

import (
	"strings"

	"recipe-finder/internal/core/recipe"
	"recipe-finder/internal/pkg/common"

	"github.com/spf13/cobra"
)

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <ingredients>",
		Short: "Spell-correct and normalize an ingredient list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := recipe.NewPipeline(nil, nil, nil)
			resp, err := p.Normalize(common.NormalizeRequest{Ingredients: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func searchCmd(opts *rootOptions) *cobra.Command {
	var (
		mealCount  int
		language   string
		allowExtra bool
	)

	cmd := &cobra.Command{
		Use:   "search <ingredients>",
		Short: "Search recipes, generating them when a model is configured",
		Long: `Search runs the full search pipeline: correction, normalization,
generation with one simplified retry, then the curated fallback recipes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cleanup, err := opts.pipeline()
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := p.Search(cmd.Context(), common.SearchRequest{
				Ingredients:           strings.Join(args, " "),
				MealCount:             mealCount,
				Language:              language,
				AllowExtraIngredients: allowExtra,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVarP(&mealCount, "meals", "m", 1, "meal count (1, 3 or 7)")
	cmd.Flags().StringVar(&language, "language", "english", "language label echoed in the response")
	cmd.Flags().BoolVar(&allowExtra, "allow-extra", false, "allow ingredients beyond the given list")
	return cmd
}

func matchCmd(opts *rootOptions) *cobra.Command {
	var (
		mealCount  int
		limit      int
		allowExtra bool
		images     bool
	)

	cmd := &cobra.Command{
		Use:   "match <ingredients>",
		Short: "Rank the curated recipes against your ingredients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cleanup, err := opts.pipeline()
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := p.Match(cmd.Context(), common.MatchRequest{
				Ingredients:           strings.Join(args, " "),
				MealCount:             mealCount,
				Limit:                 limit,
				AllowExtraIngredients: allowExtra,
				IncludeImages:         &images,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVarP(&mealCount, "meals", "m", 1, "meal count used as the default limit")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of recipes (overrides --meals)")
	cmd.Flags().BoolVar(&allowExtra, "allow-extra", false, "include recipes that need extra ingredients")
	cmd.Flags().BoolVar(&images, "images", false, "look up an image for each recipe")
	return cmd
}
