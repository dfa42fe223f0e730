package utils

import (
	"fmt"
	"math"
)

// Cents converts a major-unit price from the API into integer cents.
func Cents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// FormatCents renders integer cents as a dollar string, e.g. 3900 -> "$39.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
