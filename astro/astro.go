// Public domain.

// Package astro, solar and lunar positions for calendrical work.
//
// Functions take moments as defined in package timescale, universal time,
// and return angles in degrees.  The series are truncated: positions are
// good to an arcminute or so and event times to a second or so over the
// last few thousand years.  Most of the series follow Meeus, "Astronomical
// Algorithms," second edition.
package astro

// Solar longitudes of the seasons.
const (
	Spring = 0.
	Summer = 90.
	Autumn = 180.
	Winter = 270.
)

// Lunar phases, as the elongation of the moon from the sun.
const (
	New          = 0.
	FirstQuarter = 90.
	Full         = 180.
	LastQuarter  = 270.
)

// Mean periods, in days.
const (
	MeanTropicalYear = 365.242189
	MeanSiderealYear = 365.25636
	MeanSynodicMonth = 29.530588861
)
