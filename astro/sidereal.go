// Public domain.

package astro

import (
	"math"
	"sync"

	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/numeric"
	"github.com/soniakeys/astrocal/timescale"
)

// Precession returns the precession of the equinox in longitude since
// J2000, at moment t.  It is 0 at J2000 and decreases going back in time,
// reduced to [0, 360).
func Precession(t float64) float64 {
	c := timescale.JulianCenturies(t)
	η := numeric.Mod(numeric.Poly(c,
		0, deg.Secs(47.0029), deg.Secs(-0.03302), deg.Secs(0.000060)), 360)
	P := numeric.Mod(numeric.Poly(c,
		174.876384, deg.Secs(-869.8089), deg.Secs(0.03536)), 360)
	p := numeric.Mod(numeric.Poly(c,
		0, deg.Secs(5029.0966), deg.Secs(1.11113), deg.Secs(0.000006)), 360)
	// cos η stays near 1 so (A, B) is never the origin.
	A := deg.Cos(η) * deg.Sin(P)
	B := deg.Cos(P)
	arg, _ := deg.Atan2(A, B)
	return numeric.Mod(p+P-arg, 360)
}

// ujjainLongitude is the meridian of the sidereal zodiac.
var ujjainLongitude = deg.FromDMS(75, 46, 6)

// siderealStart is computed on first use, not at package init.
var siderealStart = sync.OnceValues(func() (float64, error) {
	eq, err := SolarLongitudeAfter(Spring, float64(timescale.GregorianNewYear(285)))
	if err != nil {
		return 0, err
	}
	return Precession(eq - ujjainLongitude/360), nil
})

// SiderealStart returns the precession at the vernal equinox of 285 CE at
// Ujjain, the origin of the sidereal zodiac.
func SiderealStart() (float64, error) {
	return siderealStart()
}

// SiderealSolarLongitude returns the longitude of the sun measured in the
// sidereal zodiac at moment t.
func SiderealSolarLongitude(t float64) (float64, error) {
	s, err := SiderealStart()
	if err != nil {
		return 0, err
	}
	return deg.Normalize(SolarLongitude(t) - Precession(t) + s), nil
}

// MeshaSamkranti returns the moment in Gregorian year when the sun enters
// the sidereal sign of Aries.
func MeshaSamkranti(year int) (float64, error) {
	if _, err := SiderealStart(); err != nil {
		return 0, err
	}
	f := func(t float64) float64 {
		λ, _ := SiderealSolarLongitude(t) // start is known good
		return λ
	}
	jan1 := float64(timescale.GregorianNewYear(year))
	τ := jan1 + MeanSiderealYear/360*numeric.Mod(-f(jan1), 360)
	return numeric.InvertAngular(f, 0, math.Max(jan1, τ-5), τ+5)
}
