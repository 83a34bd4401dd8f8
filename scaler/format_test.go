package scaler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"half", 0.5, "1/2"},
		{"approximate third", 0.333, "1/3"},
		{"approximate two thirds", 0.667, "2/3"},
		{"sixteenth", 0.0625, "1/16"},
		{"mixed number", 1.5, "1 1/2"},
		{"mixed number with three quarters", 2.75, "2 3/4"},
		{"large mixed number", 10.5, "10 1/2"},
		{"whole number", 3, "3"},
		{"one", 1, "1"},
		{"close to one", 1.04, "1"},
		{"tiny value", 0.004, "0.004"},
		{"small value", 0.05, "0.05"},
		{"below one", 0.2, "0.2"},
		{"below one not near a fraction", 0.7, "0.7"},
		{"below ten", 2.2, "2.2"},
		{"rounds up to ten", 9.96, "10"},
		{"ten and over rounds", 12.4, "12"},
		{"hundreds", 100, "100"},
		{"zero", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuantity(tt.value))
		})
	}
}

func TestFormatQuantity_OutOfRange(t *testing.T) {
	assert.Equal(t, "NaN", FormatQuantity(math.NaN()))
	assert.Equal(t, "+Inf", FormatQuantity(math.Inf(1)))
	assert.Equal(t, "-0.5", FormatQuantity(-0.5))
}

func TestFormatQuantity_NeverEmpty(t *testing.T) {
	for v := 0.0; v < 50; v += 0.037 {
		assert.NotEmpty(t, FormatQuantity(v), "value %v", v)
	}
}
