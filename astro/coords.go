// Public domain.

package astro

import (
	"github.com/soniakeys/coord"
	meeuscoord "github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/numeric"
	"github.com/soniakeys/astrocal/timescale"
)

// Obliquity returns the obliquity of the ecliptic at moment t.
func Obliquity(t float64) float64 {
	c := timescale.JulianCenturies(t)
	return deg.FromDMS(23, 26, 21.448) + numeric.Poly(c,
		0, deg.Secs(-46.8150), deg.Secs(-0.00059), deg.Secs(0.001813))
}

// equatorial converts ecliptic latitude β, longitude λ at moment t to right
// ascension and declination.
func equatorial(t, β, λ float64) (unit.RA, unit.Angle) {
	obl := meeuscoord.NewObliquity(unit.AngleFromDeg(Obliquity(t)))
	return meeuscoord.EclToEq(unit.AngleFromDeg(λ), unit.AngleFromDeg(β), obl.S, obl.C)
}

// Declination returns the declination at moment t of ecliptic latitude β,
// longitude λ.
func Declination(t, β, λ float64) float64 {
	_, δ := equatorial(t, β, λ)
	return δ.Deg()
}

// RightAscension returns the right ascension at moment t of ecliptic
// latitude β, longitude λ, in degrees.
func RightAscension(t, β, λ float64) float64 {
	α, _ := equatorial(t, β, λ)
	return deg.Normalize(α.Deg())
}

// Equatorial converts ecliptic latitude β, longitude λ at moment t.
func Equatorial(t, β, λ float64) *coord.Equa {
	α, δ := equatorial(t, β, λ)
	return &coord.Equa{RA: α, Dec: δ}
}

// SiderealFromMoment returns mean sidereal time at Greenwich, as an angle,
// at universal moment t.
func SiderealFromMoment(t float64) float64 {
	return deg.Normalize(sidereal.Mean(timescale.JDFromMoment(t)).Angle().Deg())
}

// Nutation returns the nutation in longitude at moment t.
func Nutation(t float64) float64 {
	c := timescale.JulianCenturies(t)
	a := numeric.Poly(c, 124.90, -1934.134, 0.002063)
	b := numeric.Poly(c, 201.11, 72001.5377, 0.00057)
	return -0.004778*deg.Sin(a) - 0.0003667*deg.Sin(b)
}

// Aberration returns the aberration in solar longitude at moment t.
func Aberration(t float64) float64 {
	c := timescale.JulianCenturies(t)
	return 0.0000974*deg.Cos(177.63+35999.01848*c) - 0.005575
}
