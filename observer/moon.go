// Public domain.

package observer

import (
	"fmt"

	"github.com/soniakeys/astrocal/astro"
	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/numeric"
	"github.com/soniakeys/astrocal/timescale"
)

// LunarAltitude returns the geocentric altitude of the moon at universal
// moment t, without parallax or refraction.
func (l Location) LunarAltitude(t float64) (float64, error) {
	return l.altitude(t, astro.LunarLatitude(t), astro.LunarLongitude(t))
}

// equatorial radius of the earth in meters, IAU 1976
const earthEquatorialRadius = 6378140

// LunarParallax returns the parallax of the moon in altitude at universal
// moment t.
func (l Location) LunarParallax(t float64) (float64, error) {
	geo, err := l.LunarAltitude(t)
	if err != nil {
		return 0, err
	}
	sinπ := earthEquatorialRadius / astro.LunarDistance(t)
	return deg.Asin(sinπ * deg.Cos(geo))
}

// TopocentricLunarAltitude returns the altitude of the moon's center seen
// from the location, corrected for parallax.
func (l Location) TopocentricLunarAltitude(t float64) (float64, error) {
	geo, err := l.LunarAltitude(t)
	if err != nil {
		return 0, err
	}
	p, err := l.LunarParallax(t)
	if err != nil {
		return 0, err
	}
	return geo - p, nil
}

// ObservedLunarAltitude returns the topocentric altitude of the moon's
// upper limb above the apparent horizon.  It is zero at moonrise and
// moonset.
func (l Location) ObservedLunarAltitude(t float64) (float64, error) {
	topo, err := l.TopocentricLunarAltitude(t)
	if err != nil {
		return 0, err
	}
	return topo + l.Refraction() + deg.Mins(16), nil
}

// Moonrise returns the standard time of moonrise on fixed date.  Once a
// month or so there is none.
func (l Location) Moonrise(date int) (float64, error) {
	t, err := l.moonCrossing(date, true)
	if err != nil {
		return 0, fmt.Errorf("moonrise: %w", err)
	}
	return t, nil
}

// Moonset returns the standard time of moonset on fixed date.
func (l Location) Moonset(date int) (float64, error) {
	t, err := l.moonCrossing(date, false)
	if err != nil {
		return 0, fmt.Errorf("moonset: %w", err)
	}
	return t, nil
}

// moonSamples per day when scanning for a horizon crossing.  The moon
// cannot rise and set within one sample except very near the poles.
const moonSamples = 24

// moonCrossing scans the standard day of date for the first crossing of
// the apparent horizon by the moon's upper limb, rising or setting, and
// bisects it to a second.
func (l Location) moonCrossing(date int, rising bool) (float64, error) {
	start := l.UniversalFromStandard(float64(date))
	above := func(t float64) (bool, error) {
		h, err := l.ObservedLunarAltitude(t)
		return h > 0, err
	}
	t0 := start
	up0, err := above(t0)
	if err != nil {
		return 0, err
	}
	for i := 1; i <= moonSamples; i++ {
		t1 := start + float64(i)/moonSamples
		up1, err := above(t1)
		if err != nil {
			return 0, err
		}
		if up0 != up1 && up1 == rising {
			var searchErr error
			x, err := numeric.BinarySearch(t0, t1,
				func(lo, hi float64) bool { return hi-lo < timescale.Sec(1) },
				func(x float64) bool {
					up, err := above(x)
					if err != nil && searchErr == nil {
						searchErr = err
					}
					return up == rising
				})
			if searchErr != nil {
				return 0, searchErr
			}
			if err != nil {
				return 0, err
			}
			return l.StandardFromUniversal(x), nil
		}
		t0, up0 = t1, up1
	}
	return 0, ErrEventNotReached
}
