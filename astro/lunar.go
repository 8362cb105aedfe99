// Public domain.

package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/moonposition"

	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/numeric"
	"github.com/soniakeys/astrocal/timescale"
)

// MeanLunarLongitude returns the mean longitude of the moon, L′, at c
// Julian centuries.
func MeanLunarLongitude(c float64) float64 {
	return deg.Normalize(numeric.Poly(c, 218.3164477, 481267.88123421,
		-0.0015786, 1./538841, -1./65194000))
}

// LunarElongation returns the mean elongation of the moon, D.
func LunarElongation(c float64) float64 {
	return deg.Normalize(numeric.Poly(c, 297.8501921, 445267.1114034,
		-0.0018819, 1./545868, -1./113065000))
}

// LunarAnomaly returns the mean anomaly of the moon, M′.
func LunarAnomaly(c float64) float64 {
	return deg.Normalize(numeric.Poly(c, 134.9633964, 477198.8675055,
		0.0087414, 1./69699, -1./14712000))
}

// MoonNode returns the moon's argument of latitude, F.
func MoonNode(c float64) float64 {
	return deg.Normalize(numeric.Poly(c, 93.2720950, 483202.0175233,
		-0.0036539, -1./3526000, 1./863310000))
}

// moonPosition returns the geometric position of the moon at universal
// moment t: longitude and latitude in degrees, distance in meters.
func moonPosition(t float64) (λ, β, Δ float64) {
	jde := timescale.JDFromMoment(timescale.DynamicalFromUniversal(t))
	l, b, d := moonposition.Position(jde)
	return l.Deg(), b.Deg(), d * 1000
}

// LunarLongitude returns the apparent geocentric longitude of the moon at
// moment t.
func LunarLongitude(t float64) float64 {
	λ, _, _ := moonPosition(t)
	return deg.Normalize(λ + Nutation(t))
}

// LunarLatitude returns the geocentric latitude of the moon at moment t.
func LunarLatitude(t float64) float64 {
	_, β, _ := moonPosition(t)
	return β
}

// LunarDistance returns the distance from the center of the earth to the
// center of the moon, in meters, at moment t.
func LunarDistance(t float64) float64 {
	_, _, Δ := moonPosition(t)
	return Δ
}

// LunarPhase returns the elongation of the moon from the sun in ecliptic
// longitude at moment t: 0 at new moon, 180 at full.
//
// Near a new moon the truncated series can disagree about which side of
// the sun the moon is on.  The phase is then taken from the time since
// the nearest computed new moon instead.
func LunarPhase(t float64) float64 {
	φ := deg.Normalize(LunarLongitude(t) - SolarLongitude(t))
	t0 := NthNewMoon(0)
	n := numeric.IRound((t - t0) / MeanSynodicMonth)
	φ1 := 360 * numeric.Mod((t-NthNewMoon(n))/MeanSynodicMonth, 1)
	if math.Abs(φ-φ1) > 180 {
		return φ1
	}
	return φ
}

// NthNewMoon returns the moment of the n-th new moon after (or before, for
// negative n) the new moon of 11 January 1 CE.
func NthNewMoon(n int) float64 {
	k := float64(n - newMoonOffset)
	c := k / 1236.85
	approx := timescale.J2000 + numeric.Poly(c, 5.09766,
		MeanSynodicMonth*1236.85, 0.00015437, -0.000000150, 0.00000000073)
	e := numeric.Poly(c, 1, -0.002516, -0.0000074)
	m := numeric.Poly(c, 2.5534, 1236.85*29.10535670, -0.0000014, -0.00000011)
	mp := numeric.Poly(c, 201.5643, 385.81693528*1236.85,
		0.0107582, 0.00001238, -0.000000058)
	f := numeric.Poly(c, 160.7108, 390.67050284*1236.85,
		-0.0016118, -0.00000227, 0.000000011)
	Ω := numeric.Poly(c, 124.7746, -1.56375588*1236.85, 0.0020672, 0.00000215)
	correction := -0.00017*deg.Sin(Ω) +
		numeric.Sigma(newMoonTerms, func(r newMoonTerm) float64 {
			return r.v * math.Pow(e, r.w) * deg.Sin(r.x*m+r.y*mp+r.z*f)
		})
	extra := 0.000325 * deg.Sin(numeric.Poly(c, 299.77, 132.8475848, -0.009173))
	additional := numeric.Sigma(newMoonPlanetary, func(r newMoonPlanet) float64 {
		return r.l * deg.Sin(r.i+r.j*k)
	})
	return timescale.UniversalFromDynamical(approx + correction + extra + additional)
}

// newMoonOffset is the number of new moons from RD 0 to the first new
// moon of 2000.
const newMoonOffset = 24724

// NewMoonBefore returns the moment of the last new moon before t.
func NewMoonBefore(t float64) (float64, error) {
	n := newMoonEstimate(t)
	k, err := numeric.FinalInt(n-1, func(k int) bool { return NthNewMoon(k) < t })
	if err != nil {
		return 0, err
	}
	return NthNewMoon(k), nil
}

// NewMoonAtOrAfter returns the moment of the first new moon at or after t.
func NewMoonAtOrAfter(t float64) (float64, error) {
	n := newMoonEstimate(t)
	k, err := numeric.NextInt(n, func(k int) bool { return NthNewMoon(k) >= t })
	if err != nil {
		return 0, err
	}
	return NthNewMoon(k), nil
}

// newMoonEstimate returns the index of the new moon nearest before t,
// give or take one.
func newMoonEstimate(t float64) int {
	t0 := NthNewMoon(0)
	return numeric.IRound((t-t0)/MeanSynodicMonth - LunarPhase(t)/360)
}

// LunarPhaseAtOrBefore returns the last moment not after t when the lunar
// phase was φ.
func LunarPhaseAtOrBefore(φ, t float64) (float64, error) {
	τ := t - MeanSynodicMonth/360*numeric.Mod(LunarPhase(t)-φ, 360)
	return numeric.InvertAngular(LunarPhase, φ, τ-2, math.Min(t, τ+2))
}

// LunarPhaseAtOrAfter returns the first moment at or after t when the
// lunar phase is φ.
func LunarPhaseAtOrAfter(φ, t float64) (float64, error) {
	τ := t + MeanSynodicMonth/360*numeric.Mod(φ-LunarPhase(t), 360)
	return numeric.InvertAngular(LunarPhase, φ, math.Max(t, τ-2), τ+2)
}
