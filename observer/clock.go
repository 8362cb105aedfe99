// Public domain.

package observer

import "github.com/soniakeys/astrocal/astro"

// ZoneFromLongitude returns the difference of local mean time from
// universal time, in days, at longitude lon.
func ZoneFromLongitude(lon float64) float64 {
	return lon / 360
}

// UniversalFromLocal converts local mean time to universal time.
func (l Location) UniversalFromLocal(t float64) float64 {
	return t - ZoneFromLongitude(l.lon)
}

// LocalFromUniversal converts universal time to local mean time.
func (l Location) LocalFromUniversal(t float64) float64 {
	return t + ZoneFromLongitude(l.lon)
}

// StandardFromUniversal converts universal time to standard time.
func (l Location) StandardFromUniversal(t float64) float64 {
	return t + l.zone
}

// UniversalFromStandard converts standard time to universal time.
func (l Location) UniversalFromStandard(t float64) float64 {
	return t - l.zone
}

// StandardFromLocal converts local mean time to standard time.
func (l Location) StandardFromLocal(t float64) float64 {
	return l.StandardFromUniversal(l.UniversalFromLocal(t))
}

// LocalFromStandard converts standard time to local mean time.
func (l Location) LocalFromStandard(t float64) float64 {
	return l.LocalFromUniversal(l.UniversalFromStandard(t))
}

// ApparentFromLocal converts local mean time to apparent (sundial) time.
func (l Location) ApparentFromLocal(t float64) float64 {
	return t + astro.EquationOfTime(l.UniversalFromLocal(t))
}

// LocalFromApparent converts apparent time to local mean time.
//
// The equation of time is evaluated at the apparent moment; the
// difference is a fraction of a second.
func (l Location) LocalFromApparent(t float64) float64 {
	return t - astro.EquationOfTime(l.UniversalFromLocal(t))
}

// ApparentFromUniversal converts universal time to apparent time.
func (l Location) ApparentFromUniversal(t float64) float64 {
	return l.ApparentFromLocal(l.LocalFromUniversal(t))
}

// UniversalFromApparent converts apparent time to universal time.
func (l Location) UniversalFromApparent(t float64) float64 {
	return l.UniversalFromLocal(l.LocalFromApparent(t))
}

// Midnight returns the standard time of true (apparent) midnight at the
// start of fixed date.
func (l Location) Midnight(date int) float64 {
	return l.StandardFromLocal(l.LocalFromApparent(float64(date)))
}

// Midday returns the standard time of true noon on fixed date.
func (l Location) Midday(date int) float64 {
	return l.StandardFromLocal(l.LocalFromApparent(float64(date) + .5))
}
