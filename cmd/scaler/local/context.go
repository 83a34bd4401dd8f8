package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	"recipescaler"
	"recipescaler/scaler"
	"recipescaler/tools"
	"recipescaler/tools/storage"
)

type commandContext struct {
	fileFlag    *string
	workersFlag *int
	dumpFlag    *bool
	otelFlag    *bool
	logFlag     *bool

	configOnce sync.Once
	config     recipescaler.ScalerConfig
	configErr  error

	scaler   tools.IngredientScaler
	closers  []func(context.Context) error
	setupErr error
	setup    sync.Once
}

func newCommandContext(fileFlag *string, workersFlag *int, dumpFlag, otelFlag, logFlag *bool) *commandContext {
	return &commandContext{
		fileFlag:    fileFlag,
		workersFlag: workersFlag,
		dumpFlag:    dumpFlag,
		otelFlag:    otelFlag,
		logFlag:     logFlag,
	}
}

func (c *commandContext) ensureConfig() (recipescaler.ScalerConfig, error) {
	c.configOnce.Do(func() {
		if err := envdecode.Decode(&c.config); err != nil {
			c.configErr = fmt.Errorf("decode config: %w", err)
		}
	})
	return c.config, c.configErr
}

// ensureScaler builds the scaler shared by every subcommand: the parallel batch
// scaler, instrumented when --otel is set, logged when --log is set.
func (c *commandContext) ensureScaler(ctx context.Context, name string) (tools.IngredientScaler, error) {
	c.setup.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.setupErr = err
			return
		}
		workers := cfg.Workers
		if c.workersFlag != nil && *c.workersFlag > 0 {
			workers = *c.workersFlag
		}

		var s tools.IngredientScaler = tools.ScaleFunc(func(ctx context.Context, ingredients []string, originalServings, newServings float64) ([]string, error) {
			return scaler.ScaleIngredientsContext(ctx, ingredients, originalServings, newServings, scaler.WithWorkers(workers))
		})

		if c.otelFlag != nil && *c.otelFlag {
			tracerProvider, meterProvider, otelShutdown, err := recipescaler.InitOtel(ctx)
			if err != nil {
				c.setupErr = fmt.Errorf("initialize OpenTelemetry: %w", err)
				return
			}
			c.closers = append(c.closers, otelShutdown)
			s = scaler.NewInstrumentedScaler(
				tracerProvider.Tracer(recipescaler.TracerNameLocal),
				meterProvider.Meter(recipescaler.TracerNameLocal),
				scaler.WithWorkers(workers),
			)
			slog.Info("SETUP: OpenTelemetry initialized", "workers", workers)
		}

		var logger recipescaler.ScaleLogger = recipescaler.NewNoOpScaleLogger()
		if c.logFlag != nil && *c.logFlag {
			fileLogger, closeLog, err := newScaleLogger(name)
			if err != nil {
				c.setupErr = err
				return
			}
			logger = fileLogger
			c.closers = append(c.closers, func(context.Context) error { return closeLog() })
		}

		c.scaler = recipescaler.NewLoggingScaler(s, logger)
	})
	return c.scaler, c.setupErr
}

func (c *commandContext) recipeState() (storage.RecipeState, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	path := cfg.ArtifactsRecipesPath
	if c.fileFlag != nil && strings.TrimSpace(*c.fileFlag) != "" {
		path = strings.TrimSpace(*c.fileFlag)
	}
	return storage.NewFileRecipeState(path), nil
}

func (c *commandContext) registry(cmd *cobra.Command) (recipescaler.ToolProvider, error) {
	s, err := c.ensureScaler(cmd.Context(), cmd.Name())
	if err != nil {
		return nil, err
	}
	state, err := c.recipeState()
	if err != nil {
		return nil, err
	}
	return tools.NewRegistry(state, s)
}

func (c *commandContext) runTool(cmd *cobra.Command, name string, input map[string]any) (map[string]any, error) {
	registry, err := c.registry(cmd)
	if err != nil {
		return nil, err
	}
	tool, err := registry.GetTool(name)
	if err != nil {
		return nil, err
	}
	return tool.Run(cmd.Context(), input)
}

func (c *commandContext) dump() bool {
	return c.dumpFlag != nil && *c.dumpFlag
}

func (c *commandContext) close(ctx context.Context) error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i](ctx))
	}
	c.closers = nil
	return errors.Join(errs...)
}

func newScaleLogger(name string) (recipescaler.ScaleLogger, func() error, error) {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	logFile, err := os.OpenFile(recipescaler.NewScaleLogFilePath(name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := recipescaler.NewFileScaleLogger(logFile)
	cleanup := func() error {
		return errors.Join(logger.Flush(), logFile.Close())
	}
	return logger, cleanup, nil
}
