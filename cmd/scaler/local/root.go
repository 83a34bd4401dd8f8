package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() (*cobra.Command, *commandContext) {
	var fileFlag string
	var workersFlag int
	var dumpFlag, otelFlag, logFlag bool

	ctx := newCommandContext(&fileFlag, &workersFlag, &dumpFlag, &otelFlag, &logFlag)

	rootCmd := &cobra.Command{
		Use:           "scaler",
		Short:         "Rescale recipe ingredient lines for a different number of servings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Recipe collection (.json, .yaml or .toml); defaults to ARTIFACTS_RECIPES_PATH")
	rootCmd.PersistentFlags().IntVar(&workersFlag, "workers", 0, "Lines scaled in parallel; defaults to SCALER_WORKERS or GOMAXPROCS")
	rootCmd.PersistentFlags().BoolVar(&dumpFlag, "dump", false, "Dump parsed records to stderr")
	rootCmd.PersistentFlags().BoolVar(&otelFlag, "otel", false, "Export traces and metrics over OTLP")
	rootCmd.PersistentFlags().BoolVar(&logFlag, "log", false, "Write a scale log under ./logs")

	rootCmd.AddCommand(newScaleCommand(ctx))
	rootCmd.AddCommand(newRecipeCommand(ctx))
	rootCmd.AddCommand(newPresetsCommand(ctx))
	rootCmd.AddCommand(newRecipesCommand(ctx))

	return rootCmd, ctx
}
