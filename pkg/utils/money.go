package utils

import "math"

// ToCents converts a decimal currency amount to integer cents. Rounding (not
// truncation) keeps float noise like 1.15*100 = 114.999... from losing a cent.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
