package recipescaler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ScaleLogger is the interface for scale-run logging.
type ScaleLogger interface {
	LogScale(entry ScaleLog) error
}

// NewScaleLogFilePath returns a file path named after the recipe so logs for a
// given recipe are easy to find.
func NewScaleLogFilePath(recipeID string) string {
	if recipeID == "" {
		recipeID = "lines"
	}
	return fmt.Sprintf(
		"./logs/%d.%s.json",
		time.Now().Unix(),
		strings.NewReplacer(":", "_", "/", "_", " ", "_").Replace(strings.ToLower(recipeID)),
	)
}

// ScaleLog records a single scale request.
type ScaleLog struct {
	RunID            string        `json:"run_id"`
	Timestamp        time.Time     `json:"timestamp"`
	RecipeID         string        `json:"recipe_id,omitempty"`
	OriginalServings float64       `json:"original_servings"`
	NewServings      float64       `json:"new_servings"`
	Multiplier       float64       `json:"multiplier"`
	Lines            int           `json:"lines"`
	Scalable         int           `json:"scalable"`
	Duration         time.Duration `json:"duration_ns"`
	Error            string        `json:"error,omitempty"`
}

// NewScaleLog starts an entry with a fresh run id and the current time.
func NewScaleLog(recipeID string, originalServings, newServings float64) ScaleLog {
	entry := ScaleLog{
		RunID:            uuid.NewString(),
		Timestamp:        time.Now().UTC(),
		RecipeID:         recipeID,
		OriginalServings: originalServings,
		NewServings:      newServings,
	}
	if originalServings > 0 && newServings > 0 {
		entry.Multiplier = newServings / originalServings
	}
	return entry
}

// FileScaleLogger accumulates entries and writes them all on Flush.
type FileScaleLogger struct {
	mu      sync.Mutex
	entries []ScaleLog
	writer  io.Writer
}

// NewFileScaleLogger creates a new file-based scale logger
func NewFileScaleLogger(writer io.Writer) *FileScaleLogger {
	return &FileScaleLogger{
		entries: make([]ScaleLog, 0),
		writer:  writer,
	}
}

// LogScale buffers the entry (does not flush immediately)
func (l *FileScaleLogger) LogScale(entry ScaleLog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// Flush writes all buffered entries to the writer
func (l *FileScaleLogger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"scale_session": map[string]any{
			"timestamp": time.Now().UTC(),
			"runs":      l.entries,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scale log: %w", err)
	}

	if _, err := l.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write scale log: %w", err)
	}

	l.entries = l.entries[:0]
	return nil
}

// NoOpScaleLogger discards all entries
type NoOpScaleLogger struct{}

func NewNoOpScaleLogger() *NoOpScaleLogger {
	return &NoOpScaleLogger{}
}

func (nop *NoOpScaleLogger) LogScale(ScaleLog) error {
	return nil
}

// StdoutScaleLogger writes each entry as a JSON line (for Lambda/CloudWatch)
type StdoutScaleLogger struct {
	w io.Writer
}

// NewStdoutScaleLogger creates a logger writing to os.Stdout
func NewStdoutScaleLogger() *StdoutScaleLogger {
	return &StdoutScaleLogger{w: os.Stdout}
}

func (l *StdoutScaleLogger) LogScale(entry ScaleLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(l.w, string(data))
	return err
}
