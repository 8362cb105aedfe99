// Public domain.

// Package almanac builds year tables from the ephemeris: the seasons, the
// quarters of the moon, and daily sun and moon events for a location.
package almanac

import (
	"math"

	"github.com/soniakeys/astrocal/astro"
	"github.com/soniakeys/astrocal/timescale"
)

// Season is a solar crossing, at universal moment Moment.
type Season struct {
	Longitude float64
	Name      string
	Moment    float64
}

var seasonNames = []struct {
	λ    float64
	name string
}{
	{astro.Spring, "March equinox"},
	{astro.Summer, "June solstice"},
	{astro.Autumn, "September equinox"},
	{astro.Winter, "December solstice"},
}

// Seasons returns the equinoxes and solstices of a Gregorian year, in order.
func Seasons(year int) ([]Season, error) {
	s := make([]Season, len(seasonNames))
	for i, n := range seasonNames {
		t, err := astro.SeasonInGregorian(n.λ, year)
		if err != nil {
			return nil, err
		}
		s[i] = Season{n.λ, n.name, t}
	}
	return s, nil
}

// Phase is a quarter of the moon, at universal moment Moment.
type Phase struct {
	Phase  float64
	Name   string
	Moment float64
}

// PhaseName returns the name of a quarter phase, New, FirstQuarter, Full
// or LastQuarter.
func PhaseName(φ float64) string {
	switch φ {
	case astro.New:
		return "New moon"
	case astro.FirstQuarter:
		return "First quarter"
	case astro.Full:
		return "Full moon"
	case astro.LastQuarter:
		return "Last quarter"
	}
	return ""
}

// Phases returns the quarters of the moon falling in a Gregorian year, in
// order, with moments in universal time.
func Phases(year int) ([]Phase, error) {
	t := float64(timescale.GregorianNewYear(year))
	end := float64(timescale.GregorianNewYear(year + 1))
	q := math.Mod(math.Ceil(astro.LunarPhase(t)/90)*90, 360)
	var p []Phase
	for {
		x, err := astro.LunarPhaseAtOrAfter(q, t)
		if err != nil {
			return nil, err
		}
		if x >= end {
			return p, nil
		}
		p = append(p, Phase{q, PhaseName(q), x})
		// quarters are more than six days apart
		t = x + 1
		q = math.Mod(q+90, 360)
	}
}
