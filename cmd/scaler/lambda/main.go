package main

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"

	"recipescaler"
	"recipescaler/scaler"
	"recipescaler/tools"
	"recipescaler/tools/storage"
)

func main() {
	ctx := context.Background()

	var scalerConfig recipescaler.ScalerConfig
	if err := envdecode.Decode(&scalerConfig); err != nil {
		slog.Warn("SETUP: Failed to decode scaler config, using defaults", "error", err)
	}

	var recipes storage.RecipeState
	var s3Config recipescaler.S3Config
	if err := envdecode.Decode(&s3Config); err != nil {
		slog.Warn("SETUP: S3 recipe storage not configured, only raw ingredient lines can be scaled", "error", err)
	} else {
		awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRetryMaxAttempts(5))
		if err != nil {
			log.Fatalf("SETUP: Failed to load AWS config: %s", err)
		}
		recipes = storage.NewS3RecipeState(s3.NewFromConfig(awsCfg), s3Config.Bucket, s3Config.RecipesKey)
		slog.Info("SETUP: S3 recipe state initialized", "source", recipes.Source())
	}

	h := &handler{recipes: recipes}
	var base tools.IngredientScaler = tools.DefaultScaler

	tracerProvider, meterProvider, otelShutdown, err := recipescaler.InitOtel(ctx)
	if err != nil {
		slog.Warn("SETUP: Failed to initialize OpenTelemetry, running uninstrumented", "error", err)
	} else {
		base = scaler.NewInstrumentedScaler(
			tracerProvider.Tracer(recipescaler.TracerNameLambda),
			meterProvider.Meter(recipescaler.TracerNameLambda),
			scaler.WithWorkers(scalerConfig.Workers),
		)
		// flushed after every invocation
		h.flush = func(ctx context.Context) error {
			return errors.Join(tracerProvider.ForceFlush(ctx), meterProvider.ForceFlush(ctx))
		}
		defer func() {
			if err := otelShutdown(ctx); err != nil {
				slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
			}
		}()
	}
	h.scaler = recipescaler.NewLoggingScaler(base, recipescaler.NewStdoutScaleLogger())

	lambda.Start(h.Handle)
}
