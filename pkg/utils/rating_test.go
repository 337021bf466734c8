package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty defaults to five", nil, 5},
		{"single", []float64{2}, 2},
		{"mean", []float64{3, 5}, 4},
		{"fractional", []float64{1, 2, 2}, 5.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateAverage(tt.values), 1e-9)
		})
	}
}
