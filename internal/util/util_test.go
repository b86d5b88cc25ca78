package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "0 XAF"},
		{"small", 500, "500 XAF"},
		{"thousands", 2000, "2,000 XAF"},
		{"larger", 1500000, "1,500,000 XAF"},
		{"negative", -2500, "-2,500 XAF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatPriceRange(t *testing.T) {
	assert.Equal(t, "1,000 XAF - 2,000 XAF", FormatPriceRange(1000, 2000))
	assert.Equal(t, "1,000 XAF", FormatPriceRange(1000, 1000))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"seconds", 45 * time.Second, "45s"},
		{"minutes", 5*time.Minute + 10*time.Second, "5m10s"},
		{"hours", 90 * time.Minute, "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.duration))
		})
	}
}
