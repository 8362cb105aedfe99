// Public domain.

// Package numeric holds the numeric kernel shared by the ephemeris packages:
// floored division and modulus, polynomial and series evaluation, and the
// bounded searches used to invert monotonic functions of time.
package numeric

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
)

// Quotient returns floor(m/n).
func Quotient(m, n float64) float64 {
	return math.Floor(m / n)
}

// Mod returns x - y*floor(x/y).
//
// Unlike math.Mod the result takes the sign of y, so Mod(-1, 360) is 359.
func Mod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// Amod is Mod with the range shifted to (0, y].  Amod(12, 12) is 12.
func Amod(x, y float64) float64 {
	return y + Mod(x, -y)
}

// IFloor returns the largest integer <= x.
func IFloor(x float64) int {
	return int(math.Floor(x))
}

// ICeil returns the smallest integer >= x.
func ICeil(x float64) int {
	return int(math.Ceil(x))
}

// IRound rounds x to the nearest integer, halves rounding up.
func IRound(x float64) int {
	return int(math.Floor(x + .5))
}

// Poly evaluates the polynomial c[0] + c[1]*x + c[2]*x² + ...
//
// An empty coefficient list is the zero polynomial.
func Poly(x float64, c ...float64) float64 {
	if len(c) == 0 {
		return 0
	}
	return base.Horner(x, c...)
}

// Sigma sums f over the rows of a coefficient table.
func Sigma[T any](rows []T, f func(T) float64) (s float64) {
	for _, r := range rows {
		s += f(r)
	}
	return
}
