// Public domain.

package observer

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/astrocal/astro"
	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/numeric"
	"github.com/soniakeys/astrocal/timescale"
)

// ErrEventNotReached is returned when the sun or moon does not reach the
// requested altitude on the requested day, as in polar day and night.
var ErrEventNotReached = errors.New("event not reached")

// at most this many refinements in MomentOfDepression
const maxDepressionIterations = 16

// SineOffset returns the sine of the angle between where the sun is at
// local moment t and where it would be α degrees below the horizon at
// 6h or 18h local time.  Magnitudes over 1 mean the sun does not reach
// that depression on that day.
func (l Location) SineOffset(t, α float64) float64 {
	tu := l.UniversalFromLocal(t)
	δ := astro.Declination(tu, 0, astro.SolarLongitude(tu))
	return deg.Tan(l.lat)*deg.Tan(δ) +
		deg.Sin(α)/(deg.Cos(δ)*deg.Cos(l.lat))
}

// ApproxMomentOfDepression returns the local moment near t when the sun
// is α degrees below the horizon, in the morning if early is true,
// otherwise in the evening.
func (l Location) ApproxMomentOfDepression(t, α float64, early bool) (float64, error) {
	try := l.SineOffset(t, α)
	date := math.Floor(t)
	value := try
	if math.Abs(try) > 1 {
		// try the other side of the day before giving up
		alt := date + .5
		if α >= 0 {
			alt = date
			if !early {
				alt++
			}
		}
		value = l.SineOffset(alt, α)
	}
	if math.Abs(value) > 1 {
		return 0, ErrEventNotReached
	}
	a, err := deg.Asin(value)
	if err != nil {
		return 0, err
	}
	offset := a / 360
	if early {
		return l.LocalFromApparent(date + timescale.Hr(6) - offset), nil
	}
	return l.LocalFromApparent(date + timescale.Hr(18) + offset), nil
}

// MomentOfDepression refines ApproxMomentOfDepression from local moment t
// until successive estimates agree within 30 seconds.
func (l Location) MomentOfDepression(t, α float64, early bool) (float64, error) {
	for i := 0; i < maxDepressionIterations; i++ {
		a, err := l.ApproxMomentOfDepression(t, α, early)
		if err != nil {
			return 0, err
		}
		if math.Abs(a-t) < timescale.Sec(30) {
			return a, nil
		}
		t = a
	}
	return 0, fmt.Errorf("depression %g°: %w", α, numeric.ErrNoConvergence)
}

// Dawn returns the standard time in the morning of fixed date when the
// sun's center is α degrees below the horizon.
func (l Location) Dawn(date int, α float64) (float64, error) {
	t, err := l.MomentOfDepression(float64(date)+timescale.Hr(6), α, true)
	if err != nil {
		return 0, fmt.Errorf("dawn %g°: %w", α, err)
	}
	return l.StandardFromLocal(t), nil
}

// Dusk returns the standard time in the evening of fixed date when the
// sun's center is α degrees below the horizon.
func (l Location) Dusk(date int, α float64) (float64, error) {
	t, err := l.MomentOfDepression(float64(date)+timescale.Hr(18), α, false)
	if err != nil {
		return 0, fmt.Errorf("dusk %g°: %w", α, err)
	}
	return l.StandardFromLocal(t), nil
}

// earthRadius in meters, for the dip of the horizon.
const earthRadius = 6.372e6

// Refraction returns the depression of the apparent horizon: standard
// atmospheric refraction at the horizon plus the dip of the horizon seen
// from the elevation of the location.
func (l Location) Refraction() float64 {
	h := math.Max(0, l.elev)
	// R/(R+h) is in (0, 1] for h >= 0
	dip, _ := deg.Acos(earthRadius / (earthRadius + h))
	return deg.Mins(34) + dip + deg.Secs(19)*math.Sqrt(h)
}

// sunRiseDepression is the depression of the sun's center when its upper
// limb is on the apparent horizon.
func (l Location) sunRiseDepression() float64 {
	return l.Refraction() + deg.Mins(16)
}

// Sunrise returns the standard time of sunrise on fixed date.
func (l Location) Sunrise(date int) (float64, error) {
	t, err := l.Dawn(date, l.sunRiseDepression())
	if err != nil {
		return 0, fmt.Errorf("sunrise: %w", err)
	}
	return t, nil
}

// Sunset returns the standard time of sunset on fixed date.
func (l Location) Sunset(date int) (float64, error) {
	t, err := l.Dusk(date, l.sunRiseDepression())
	if err != nil {
		return 0, fmt.Errorf("sunset: %w", err)
	}
	return t, nil
}

// DaytimeTemporalHour returns one twelfth of the time from sunrise to
// sunset on fixed date, in days.
func (l Location) DaytimeTemporalHour(date int) (float64, error) {
	rise, err := l.Sunrise(date)
	if err != nil {
		return 0, err
	}
	set, err := l.Sunset(date)
	if err != nil {
		return 0, err
	}
	return (set - rise) / 12, nil
}

// SolarAltitude returns the geocentric altitude of the sun at universal
// moment t, without refraction, in (-180, 180].
func (l Location) SolarAltitude(t float64) (float64, error) {
	return l.altitude(t, 0, astro.SolarLongitude(t))
}

// altitude of ecliptic position β, λ at universal moment t.
func (l Location) altitude(t, β, λ float64) (float64, error) {
	α := astro.RightAscension(t, β, λ)
	δ := astro.Declination(t, β, λ)
	H := numeric.Mod(astro.SiderealFromMoment(t)+l.lon-α, 360)
	a, err := deg.Asin(deg.Sin(l.lat)*deg.Sin(δ) +
		deg.Cos(l.lat)*deg.Cos(δ)*deg.Cos(H))
	if err != nil {
		return 0, err
	}
	return -numeric.Mod(-a+180, 360) + 180, nil
}
