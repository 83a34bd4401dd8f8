package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"recipescaler"
	"recipescaler/scaler"
	"recipescaler/slack"
	"recipescaler/tools"
)

func newScaleCommand(ctx *commandContext) *cobra.Command {
	var from, to float64

	cmd := &cobra.Command{
		Use:   "scale [lines...]",
		Short: "Scale ingredient lines from one serving count to another",
		Long:  "Scale ingredient lines given as arguments, or one per line on stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			s, err := ctx.ensureScaler(cmd.Context(), cmd.Name())
			if err != nil {
				return err
			}
			result, err := tools.NewIngredientsScale(s).Run(cmd.Context(), map[string]any{
				"ingredients":       lines,
				"original_servings": from,
				"new_servings":      to,
			})
			if err != nil {
				return err
			}
			scaled, _ := result["ingredients"].([]string)

			if ctx.dump() {
				parsed := make([]scaler.ParsedIngredient, len(lines))
				for i, line := range lines {
					parsed[i] = scaler.Parse(scaler.Clean(line))
				}
				recipescaler.Fdump(cmd.ErrOrStderr(), parsed)
			}

			rows := make([][]string, len(lines))
			for i := range lines {
				rows[i] = []string{strconv.Itoa(i + 1), lines[i], scaled[i]}
			}
			return writeView(cmd.OutOrStdout(), tableView{
				title:   fmt.Sprintf("%s → %s servings", formatNumber(from), formatNumber(to)),
				headers: []string{"#", "Original", "Scaled"},
				rows:    rows,
				aligns:  []columnAlignment{alignRight, alignLeft, alignLeft},
				plain:   scaled,
			})
		},
	}

	cmd.Flags().Float64Var(&from, "from", 0, "Servings the lines are written for")
	cmd.Flags().Float64Var(&to, "to", 0, "Servings to scale to")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newRecipeCommand(ctx *commandContext) *cobra.Command {
	var servings int
	var multiplier float64
	var webhook, channel string

	cmd := &cobra.Command{
		Use:   "recipe <id>",
		Short: "Scale a stored recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{"recipe_id": args[0]}
			if cmd.Flags().Changed("servings") {
				input["servings"] = servings
			}
			if cmd.Flags().Changed("multiplier") {
				input["multiplier"] = multiplier
			}

			result, err := ctx.runTool(cmd, "recipe_scale", input)
			if err != nil {
				return err
			}
			recipe, ok := result["recipe"].(tools.ScaledRecipe)
			if !ok {
				return fmt.Errorf("unexpected recipe_scale result %T", result["recipe"])
			}

			if ctx.dump() {
				recipescaler.Fdump(cmd.ErrOrStderr(), recipe)
			}

			rows := make([][]string, len(recipe.Ingredients))
			for i, line := range recipe.Ingredients {
				rows[i] = []string{line}
			}
			if err := writeView(cmd.OutOrStdout(), tableView{
				title:   fmt.Sprintf("%s: %d servings (was %d, x%s)", recipeTitle(recipe), recipe.Servings, recipe.OriginalServings, formatNumber(recipe.Multiplier)),
				headers: []string{"Ingredient"},
				rows:    rows,
				plain:   recipe.Ingredients,
			}); err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if webhook == "" {
				webhook = cfg.SlackWebhookURL
			}
			if channel == "" {
				channel = cfg.SlackChannel
			}
			if webhook == "" {
				return nil
			}
			var httpClient recipescaler.HTTPClient = http.DefaultClient
			var notifier recipescaler.SlackClient = slack.NewClient(webhook, httpClient)
			if err := notifier.PostScaledRecipe(cmd.Context(), channel, recipe); err != nil {
				return fmt.Errorf("post to slack: %w", err)
			}
			slog.Info("RESULT: Posted scaled recipe to Slack", "recipe_id", recipe.ID, "channel", channel)
			return nil
		},
	}

	cmd.Flags().IntVarP(&servings, "servings", "s", 0, "Servings to scale to")
	cmd.Flags().Float64VarP(&multiplier, "multiplier", "m", 0, "Multiplier applied to the recipe's servings")
	cmd.Flags().StringVar(&webhook, "slack-webhook", "", "Slack webhook to post the result to; defaults to SLACK_WEBHOOK_URL")
	cmd.Flags().StringVar(&channel, "slack-channel", "", "Slack channel; defaults to SLACK_CHANNEL")
	cmd.MarkFlagsOneRequired("servings", "multiplier")
	return cmd
}

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets <id>",
		Short: "Show the quick scaling choices for a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := loadRecipes(ctx, cmd, nil)
			if err != nil {
				return err
			}
			recipe, err := tools.FindRecipe(recipes, args[0])
			if err != nil {
				return err
			}

			presets := tools.Presets(recipe)
			rows := make([][]string, len(presets))
			plain := make([]string, len(presets))
			for i, p := range presets {
				rows[i] = []string{"x" + formatNumber(p.Multiplier), strconv.Itoa(p.Servings)}
				plain[i] = rows[i][0] + "\t" + rows[i][1]
			}
			return writeView(cmd.OutOrStdout(), tableView{
				title:   fmt.Sprintf("%s (serves %d)", recipeName(recipe), recipe.BaseServings()),
				headers: []string{"Multiplier", "Servings"},
				rows:    rows,
				aligns:  []columnAlignment{alignRight, alignRight},
				plain:   plain,
			})
		},
	}
}

func newRecipesCommand(ctx *commandContext) *cobra.Command {
	var mealTypes []string

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List stored recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := loadRecipes(ctx, cmd, mealTypes)
			if err != nil {
				return err
			}

			rows := make([][]string, len(recipes))
			plain := make([]string, len(recipes))
			for i, r := range recipes {
				rows[i] = []string{r.ID, r.Name, strconv.Itoa(r.BaseServings()), strings.Join(r.MealTypes, ", ")}
				plain[i] = strings.Join(rows[i], "\t")
			}
			return writeView(cmd.OutOrStdout(), tableView{
				headers: []string{"ID", "Name", "Serves", "Meals"},
				rows:    rows,
				aligns:  []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				plain:   plain,
			})
		},
	}

	cmd.Flags().StringSliceVar(&mealTypes, "meal-type", nil, "Only list recipes for these meal types")
	return cmd
}

func loadRecipes(ctx *commandContext, cmd *cobra.Command, mealTypes []string) ([]tools.Recipe, error) {
	input := map[string]any{}
	if len(mealTypes) > 0 {
		input["meal_types"] = mealTypes
	}
	result, err := ctx.runTool(cmd, "recipe_get", input)
	if err != nil {
		return nil, err
	}
	recipes, ok := result["recipes"].([]tools.Recipe)
	if !ok {
		return nil, fmt.Errorf("unexpected recipe_get result %T", result["recipes"])
	}
	return recipes, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func recipeName(r tools.Recipe) string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

func recipeTitle(r tools.ScaledRecipe) string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
