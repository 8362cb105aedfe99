// Public domain.

package observer

import (
	"math"

	"github.com/soniakeys/astrocal/astro"
	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/numeric"
)

// Crescent visibility thresholds, in degrees.
const (
	crescentDusk     = 4.5  // depression of the sun at viewing time
	minArcOfLight    = 10.6 // elongation of moon from sun
	maxArcOfLight    = 90.
	minLunarAltitude = 4.1
)

// ArcOfLight returns the angular separation of the centers of the sun and
// moon at universal moment t.
func ArcOfLight(t float64) (float64, error) {
	return deg.Acos(deg.Cos(astro.LunarLatitude(t)) * deg.Cos(astro.LunarPhase(t)))
}

// VisibleCrescent reports whether the new crescent moon is expected to be
// visible on the evening before fixed date, the evening that begins date
// in calendars whose days start at sunset.
//
// The moon is checked at dusk, with the sun 4.5° below the horizon.  It is
// visible when it is a waxing crescent, at least 10.6° from the sun, and
// more than 4.1° above the horizon.
func (l Location) VisibleCrescent(date int) (bool, error) {
	dusk, err := l.Dusk(date-1, crescentDusk)
	if err != nil {
		return false, err
	}
	t := l.UniversalFromStandard(dusk)
	phase := astro.LunarPhase(t)
	altitude, err := l.LunarAltitude(t)
	if err != nil {
		return false, err
	}
	arc, err := ArcOfLight(t)
	if err != nil {
		return false, err
	}
	return astro.New < phase && phase < astro.FirstQuarter &&
		minArcOfLight <= arc && arc <= maxArcOfLight &&
		altitude > minLunarAltitude, nil
}

// meanNewMoonDate returns the fixed date of the last mean new moon on or
// before date, estimated from the phase.
func meanNewMoonDate(date int) int {
	φ := astro.LunarPhase(float64(date + 1))
	return date - int(math.Floor(φ/360*astro.MeanSynodicMonth))
}

// PhasisOnOrBefore returns the last fixed date, on or before date, of
// first visibility of the crescent.
func (l Location) PhasisOnOrBefore(date int) (int, error) {
	mean := meanNewMoonDate(date)
	τ := mean - 2
	if date-mean <= 3 {
		v, err := l.VisibleCrescent(date)
		if err != nil {
			return 0, err
		}
		if !v {
			τ = mean - 30
		}
	}
	return l.nextVisible(τ)
}

// PhasisOnOrAfter returns the first fixed date, on or after date, of first
// visibility of the crescent.
func (l Location) PhasisOnOrAfter(date int) (int, error) {
	mean := meanNewMoonDate(date)
	τ := mean + 29
	if date-mean <= 3 {
		v, err := l.VisibleCrescent(date - 1)
		if err != nil {
			return 0, err
		}
		if !v {
			τ = date
		}
	}
	return l.nextVisible(τ)
}

func (l Location) nextVisible(τ int) (int, error) {
	var scanErr error
	d, err := numeric.NextInt(τ, func(d int) bool {
		v, err := l.VisibleCrescent(d)
		if err != nil {
			scanErr = err
			return true
		}
		return v
	})
	if scanErr != nil {
		return 0, scanErr
	}
	return d, err
}
