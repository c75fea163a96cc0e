// Package rate provides division helpers for derived cricket rate metrics
// (strike rate, economy, run rate) that never propagate a division by zero.
package rate

import (
	"math"
	"strconv"
)

// decimalPlaces is the number of decimal places used when formatting rates.
const decimalPlaces = 2

// Div returns numerator/denominator with a defined result for a zero
// denominator: +Inf when the numerator is non-zero, otherwise 0.
func Div(numerator, denominator float64) float64 {
	if denominator == 0 {
		if numerator == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return numerator / denominator
}

// Format renders a rate with two decimal places. Infinite rates (a
// non-zero numerator over zero balls) render as "inf".
func Format(value float64) string {
	if math.IsInf(value, 1) {
		return "inf"
	}

	return strconv.FormatFloat(value, 'f', decimalPlaces, 64)
}

// PerHundred returns the value of num per hundred units of den.
// Used for batting strike rates (runs per 100 balls faced).
func PerHundred(num, den int) float64 {
	const hundred = 100

	return Div(float64(num), float64(den)) * hundred
}

// PerOver returns runs conceded per six legal balls.
// Used for bowling economy rates.
func PerOver(runs, balls int) float64 {
	const ballsPerOver = 6

	return Div(float64(runs), float64(balls)/ballsPerOver)
}
