// Public domain.

package astro

import (
	"math"

	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/numeric"
	"github.com/soniakeys/astrocal/timescale"
)

// SolarLongitude returns the apparent geocentric longitude of the sun at
// moment t.
func SolarLongitude(t float64) float64 {
	c := timescale.JulianCenturies(t)
	λ := 282.7771834 + 36000.76953744*c +
		0.000005729577951308232*numeric.Sigma(solarTerms,
			func(r solarTerm) float64 { return r.x * deg.Sin(r.y+r.z*c) })
	return deg.Normalize(λ + Aberration(t) + Nutation(t))
}

// SolarAnomaly returns the mean anomaly of the sun at c Julian centuries.
func SolarAnomaly(c float64) float64 {
	return deg.Normalize(numeric.Poly(c,
		357.5291092, 35999.0502909, -0.0001536, 1./24490000))
}

// EquationOfTime returns apparent minus mean solar time, in days, at
// moment t.  The result is limited to half a day either way.
func EquationOfTime(t float64) float64 {
	c := timescale.JulianCenturies(t)
	λ := numeric.Poly(c, 280.46645, 36000.76983, 0.0003032)
	m := numeric.Poly(c, 357.52910, 35999.05030, -0.0001559, -0.00000048)
	e := numeric.Poly(c, 0.016708617, -0.000042037, -0.0000001236)
	y := deg.Tan(Obliquity(t) / 2)
	y *= y
	eq := (y*deg.Sin(2*λ) -
		2*e*deg.Sin(m) +
		4*e*y*deg.Sin(m)*deg.Cos(2*λ) -
		.5*y*y*deg.Sin(4*λ) -
		1.25*e*e*deg.Sin(2*m)) / (2 * math.Pi)
	return math.Copysign(math.Min(math.Abs(eq), timescale.Hr(12)), eq)
}

// SolarLongitudeAfter returns the first moment at or after t when the
// solar longitude is λ.
func SolarLongitudeAfter(λ, t float64) (float64, error) {
	rate := MeanTropicalYear / 360
	τ := t + rate*numeric.Mod(λ-SolarLongitude(t), 360)
	return numeric.InvertAngular(SolarLongitude, λ, math.Max(t, τ-5), τ+5)
}

// EstimatePriorSolarLongitude returns a moment, not after t, within a day
// or so of the last time the solar longitude was λ.
func EstimatePriorSolarLongitude(λ, t float64) float64 {
	rate := MeanTropicalYear / 360
	τ := t - rate*numeric.Mod(SolarLongitude(t)-λ, 360)
	Δ := numeric.Mod(SolarLongitude(τ)-λ+180, 360) - 180
	return math.Min(t, τ-rate*Δ)
}

// SeasonInGregorian returns the moment in Gregorian year when the solar
// longitude is season, one of Spring, Summer, Autumn, Winter or any other
// longitude.
func SeasonInGregorian(season float64, year int) (float64, error) {
	return SolarLongitudeAfter(season, float64(timescale.GregorianNewYear(year)))
}
