// Public domain.

package observer

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
)

// ReadSites reads observatory locations in the format of the MPC file
// ObsCodes.html: a three character code, east longitude in degrees, and
// parallax constants ρ cos φ′ and ρ sin φ′ in earth radii, in fixed
// columns.  Lines that do not parse as data, such as headings and the
// enclosing <pre> tags, are quietly ignored.  So are sites with zero
// parallax constants, which are spacecraft and other non-terrestrial
// observers.
//
// Zones of the returned locations are the whole hour nearest local mean
// time.
func ReadSites(r io.Reader) (map[string]Location, error) {
	m := map[string]Location{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 30 {
			continue
		}
		lon, ok := column(line[4:13], 0, 360)
		if !ok {
			continue
		}
		c, ok := column(line[13:21], 0, 1)
		if !ok {
			continue
		}
		s, ok := column(line[21:30], -1, 1)
		if !ok || c == 0 && s == 0 {
			continue
		}
		if lon > 180 {
			lon -= 360
		}
		lat, h := geodetic(c, s)
		m[line[0:3]] = Location{lat, lon, h, math.Round(lon/15) / 24}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, errors.New("no site data found")
	}
	return m, nil
}

// column parses a fixed column field.  Blank is zero.
func column(f string, lo, hi float64) (float64, bool) {
	f = strings.TrimSpace(f)
	if f == "" {
		return 0, true
	}
	x, err := strconv.ParseFloat(f, 64)
	if err != nil || x < lo || x > hi {
		return 0, false
	}
	return x, true
}

// geodetic inverts globe.Earth76.ParallaxConstants, returning geodetic
// latitude in degrees and height in meters.
func geodetic(ρcφ, ρsφ float64) (lat, h float64) {
	φʹ := math.Atan2(ρsφ, ρcφ)
	ρ := math.Hypot(ρsφ, ρcφ)
	b := 1 - globe.Earth76.Fl
	φ := math.Atan(math.Tan(φʹ) / (b * b))
	for i := 0; i < 5; i++ {
		s, c := globe.Earth76.ParallaxConstants(unit.Angle(φ), h)
		φ += φʹ - math.Atan2(s, c)
		h += (ρ - math.Hypot(s, c)) * earthEquatorialRadius
	}
	return unit.Angle(φ).Deg(), h
}
