// Package util holds small helpers shared across the service.
package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatCurrency renders a whole-unit XAF amount with thousands separators,
// e.g. 2000 -> "2,000 XAF".
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	formatted := b.String()
	if negative {
		formatted = "-" + formatted
	}

	return formatted + " XAF"
}

// FormatPriceRange renders a min/max price pair, collapsing equal bounds.
func FormatPriceRange(priceMin, priceMax int64) string {
	if priceMin == priceMax {
		return FormatCurrency(priceMin)
	}

	return fmt.Sprintf("%s - %s", FormatCurrency(priceMin), FormatCurrency(priceMax))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
