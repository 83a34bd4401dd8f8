package recipescaler

import (
	"context"
	"log/slog"
	"time"

	"recipescaler/scaler"
	"recipescaler/tools"
)

// LoggingScaler records a ScaleLog entry for every call it forwards.
type LoggingScaler struct {
	next   tools.IngredientScaler
	logger ScaleLogger
}

func NewLoggingScaler(next tools.IngredientScaler, logger ScaleLogger) *LoggingScaler {
	if next == nil {
		next = tools.DefaultScaler
	}
	if logger == nil {
		logger = NewNoOpScaleLogger()
	}
	return &LoggingScaler{next: next, logger: logger}
}

func (s *LoggingScaler) ScaleIngredients(ctx context.Context, ingredients []string, originalServings, newServings float64) ([]string, error) {
	entry := NewScaleLog(tools.RecipeIDFromContext(ctx), originalServings, newServings)
	entry.Lines = len(ingredients)
	if entry.Multiplier > 0 {
		for _, line := range ingredients {
			if scaler.Parse(scaler.Clean(line)).HasQuantity {
				entry.Scalable++
			}
		}
	}

	start := time.Now()
	out, err := s.next.ScaleIngredients(ctx, ingredients, originalServings, newServings)
	entry.Duration = time.Since(start)
	if err != nil {
		entry.Error = err.Error()
	}

	if logErr := s.logger.LogScale(entry); logErr != nil {
		slog.Warn("SCALER: Failed to record scale log", "run_id", entry.RunID, "error", logErr)
	}
	return out, err
}
