package convert

import (
	"math"
	"strconv"
)

// wpmToTPS maps words/minute to tokens/second: divide by 60 seconds and
// multiply by an assumed average of 1.3 tokens per word.
const wpmToTPS = 0.02167

// TPS converts a WPM value, rounded to two decimal places. The rounding
// granularity is part of the contract: 139 WPM must come out as 3.01.
func TPS(wpm float64) float64 {
	return math.Round(wpm*wpmToTPS*100) / 100
}

// FormatTPS renders a TPS value the way it is displayed, always with two
// decimals ("1.30", not "1.3").
func FormatTPS(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
