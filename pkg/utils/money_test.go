package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{50, 5000},
		{0.29, 29},
		{1.15, 115},
		{5.05, 505},
		{0.1 + 0.2, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToCents(tt.amount), "amount %v", tt.amount)
	}
}
