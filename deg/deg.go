// Public domain.

// Package deg is trigonometry on angles in degrees.
//
// The inverse functions report arguments outside their domain as a
// *DomainError rather than returning NaN.
package deg

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// DomainError reports an argument outside the domain of an inverse
// trigonometric function.
type DomainError struct {
	Func string
	Arg  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("deg.%s: argument %g out of domain", e.Func, e.Arg)
}

// Sin of θ degrees.
func Sin(θ float64) float64 { return unit.AngleFromDeg(θ).Sin() }

// Cos of θ degrees.
func Cos(θ float64) float64 { return unit.AngleFromDeg(θ).Cos() }

// Tan of θ degrees.
func Tan(θ float64) float64 { return unit.AngleFromDeg(θ).Tan() }

// Asin returns the arcsine of x in degrees, in [-90, 90].
func Asin(x float64) (float64, error) {
	if x < -1 || x > 1 || math.IsNaN(x) {
		return 0, &DomainError{"Asin", x}
	}
	return unit.Angle(math.Asin(x)).Deg(), nil
}

// Acos returns the arccosine of x in degrees, in [0, 180].
func Acos(x float64) (float64, error) {
	if x < -1 || x > 1 || math.IsNaN(x) {
		return 0, &DomainError{"Acos", x}
	}
	return unit.Angle(math.Acos(x)).Deg(), nil
}

// Atan2 returns the direction of (x, y) in degrees, normalized to [0, 360).
//
// The direction of the origin is undefined and returns a *DomainError.
func Atan2(y, x float64) (float64, error) {
	if x == 0 && y == 0 {
		return 0, &DomainError{"Atan2", 0}
	}
	return Normalize(unit.Angle(math.Atan2(y, x)).Deg()), nil
}

// Normalize reduces θ to [0, 360).
func Normalize(θ float64) float64 {
	n := unit.PMod(θ, 360)
	if n >= 360 {
		// PMod can round up to the modulus for tiny negative θ
		return 0
	}
	return n
}

// FromDMS returns the angle d°m′s″ in degrees.  The sign of d applies to
// the whole angle; m and s should be non-negative.
func FromDMS(d, m, s float64) float64 {
	if math.Signbit(d) {
		return d - (m+s/60)/60
	}
	return d + (m+s/60)/60
}

// Mins converts arc minutes to degrees.
func Mins(m float64) float64 { return m / 60 }

// Secs converts arc seconds to degrees.
func Secs(s float64) float64 { return s / 3600 }
