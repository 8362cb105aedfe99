// Public domain.

// Package timescale handles moments: real day counts from the start of
// RD 1, which is Monday, 1 January 1 of the proleptic Gregorian calendar.
//
// The integer part of a moment is its fixed date and the fraction is the
// time of day.  Moments are universal time unless a function says
// otherwise.  The package converts moments to and from Gregorian dates,
// Julian days and Go times, and between universal and dynamical time.
package timescale

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/soniakeys/astrocal/numeric"
)

// J2000 is noon, 1 January 2000, the epoch of the series in package astro.
const J2000 = 730120.5

const (
	jdOffset  = 1721424.5 // JD of moment 0
	unixEpoch = 719163    // fixed date of 1 January 1970
)

// Hr converts hours to days.
func Hr(x float64) float64 { return x / 24 }

// Mn converts minutes to days.
func Mn(x float64) float64 { return x / (24 * 60) }

// Sec converts seconds to days.
func Sec(x float64) float64 { return x / (24 * 60 * 60) }

// FixedFromMoment returns the fixed date of moment t.
func FixedFromMoment(t float64) int {
	return int(math.Floor(t))
}

// TimeOfDay returns the fraction of the day elapsed at moment t.
func TimeOfDay(t float64) float64 {
	return numeric.Mod(t, 1)
}

// MomentFromJD converts a Julian day number.
func MomentFromJD(jd float64) float64 { return jd - jdOffset }

// JDFromMoment converts a moment to a Julian day number.
func JDFromMoment(t float64) float64 { return t + jdOffset }

// MomentFromTime converts a Go time to a universal time moment.
func MomentFromTime(t time.Time) float64 {
	return MomentFromJD(julian.TimeToJD(t))
}

// TimeFromMoment converts a universal time moment to a UTC time, rounded
// to the millisecond.
func TimeFromMoment(t float64) time.Time {
	ms := math.Round((t - unixEpoch) * 864e5)
	return time.UnixMilli(int64(ms)).UTC()
}
