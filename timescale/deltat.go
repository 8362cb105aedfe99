// Public domain.

package timescale

import (
	"github.com/soniakeys/astrocal/numeric"
)

// EphemerisCorrection returns ΔT, dynamical time minus universal time, in
// days, at moment t.
//
// ΔT is piecewise by Gregorian year: observed fits for 1620 through 2019
// and a parabola in the years since 1810 elsewhere.
func EphemerisCorrection(t float64) float64 {
	year := GregorianYearFromFixed(FixedFromMoment(t))
	c := float64(FixedFromGregorian(year, 7, 1)-FixedFromGregorian(1900, 1, 1)) / 36525
	switch {
	case 1988 <= year && year <= 2019:
		return Sec(float64(year - 1933))
	case 1900 <= year && year <= 1987:
		return numeric.Poly(c, -0.00002, 0.000297, 0.025184,
			-0.181133, 0.553040, -0.861938, 0.677066, -0.212591)
	case 1800 <= year && year <= 1899:
		return numeric.Poly(c, -0.000009, 0.003844, 0.083563, 0.865736,
			4.867575, 15.845535, 31.332267, 38.291999, 28.316289,
			11.636204, 2.043794)
	case 1700 <= year && year <= 1799:
		return Sec(numeric.Poly(float64(year-1700),
			8.118780842, -0.005092142, 0.003336121, -0.0000266484))
	case 1620 <= year && year <= 1699:
		return Sec(numeric.Poly(float64(year-1600),
			196.58333, -4.0675, 0.0219167))
	}
	x := .5 + float64(GregorianNewYear(year)-FixedFromGregorian(1810, 1, 1))
	return Sec(x*x/41048480 - 15)
}

// DynamicalFromUniversal converts a universal time moment to dynamical time.
func DynamicalFromUniversal(t float64) float64 {
	return t + EphemerisCorrection(t)
}

// UniversalFromDynamical converts a dynamical time moment to universal time.
//
// ΔT is evaluated at the dynamical moment; the difference is far below the
// resolution of the ΔT fits.
func UniversalFromDynamical(t float64) float64 {
	return t - EphemerisCorrection(t)
}

// JulianCenturies returns dynamical time at universal moment t in Julian
// centuries from J2000.
func JulianCenturies(t float64) float64 {
	return (DynamicalFromUniversal(t) - J2000) / 36525
}
