// Package format renders numbers the way the Vietnamese console shows them:
// "." groups thousands and amounts carry the đ suffix.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// Number formats n with vi-VN grouping: 24510 → "24.510".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Currency formats an amount in đồng: 1250000000 → "1.250.000.000đ".
func Currency(amount int64) string {
	return Number(amount) + "đ"
}

// Compact shortens large numbers to one decimal with a K, M or B suffix.
func Compact(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return oneDecimal(float64(n)/1e9) + "B"
	case n >= 1_000_000:
		return oneDecimal(float64(n)/1e6) + "M"
	case n >= 1_000:
		return oneDecimal(float64(n)/1e3) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

func oneDecimal(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', 1, 64)
}
