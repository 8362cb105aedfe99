// Public domain.

// Package observer computes events seen from a place on the earth:
// dawn and dusk, sunrise and sunset, moonrise and moonset, and first
// visibility of the lunar crescent.
//
// Fixed dates and moments returned by this package are in the standard
// time of the location unless a function says otherwise.
package observer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/soniakeys/astrocal/deg"
	"github.com/soniakeys/astrocal/timescale"
)

// ErrInvalidLocation is returned by NewLocation for coordinates out of range.
var ErrInvalidLocation = errors.New("invalid location")

// Location is a place on the earth.
//
// Latitude and longitude are in degrees, east and north positive.
// Elevation is in meters above sea level.  Zone is the offset of standard
// time from universal time, as a fraction of a day.
type Location struct {
	lat, lon, elev, zone float64
}

// NewLocation validates coordinates and returns a Location.
func NewLocation(latitude, longitude, elevation, zone float64) (Location, error) {
	switch {
	case !(latitude >= -90 && latitude <= 90):
		return Location{}, fmt.Errorf("%w: latitude %g", ErrInvalidLocation, latitude)
	case !(longitude >= -180 && longitude <= 180):
		return Location{}, fmt.Errorf("%w: longitude %g", ErrInvalidLocation, longitude)
	case !(zone >= -1 && zone <= 1):
		return Location{}, fmt.Errorf("%w: zone %g days", ErrInvalidLocation, zone)
	case elevation != elevation:
		return Location{}, fmt.Errorf("%w: elevation NaN", ErrInvalidLocation)
	}
	return Location{latitude, longitude, elevation, zone}, nil
}

// Latitude in degrees, north positive.
func (l Location) Latitude() float64 { return l.lat }

// Longitude in degrees, east positive.
func (l Location) Longitude() float64 { return l.lon }

// Elevation in meters.
func (l Location) Elevation() float64 { return l.elev }

// Zone is standard time minus universal time, in days.
func (l Location) Zone() float64 { return l.zone }

func (l Location) String() string {
	return fmt.Sprintf("{lat %.4f, lon %.4f, elev %g m, zone %+.2fh}",
		l.lat, l.lon, l.elev, l.zone*24)
}

// Reference locations.
var (
	Mecca     = Location{deg.FromDMS(21, 25, 24), deg.FromDMS(39, 49, 24), 298, timescale.Hr(3)}
	Jerusalem = Location{31.8, 35.2, 800, timescale.Hr(2)}
	Jaffa     = Location{deg.FromDMS(32, 1, 60), deg.FromDMS(34, 45, 0), 0, timescale.Hr(2)}
	Ujjain    = Location{deg.FromDMS(23, 9, 0), deg.FromDMS(75, 46, 6), 0, timescale.Hr(5 + 461./9000)}
	Urbana    = Location{40.1, -88.2, 225, timescale.Hr(-6)}
	Greenwich = Location{51.4777815, 0, 46.9, 0}
	Tehran    = Location{35.68, 51.42, 1100, timescale.Hr(3.5)}
	Beijing   = Location{deg.FromDMS(39, 55, 0), deg.FromDMS(116, 25, 0), 43.5, timescale.Hr(8)}
	Cairo     = Location{30.1, 31.3, 200, timescale.Hr(2)}
)

var named = map[string]Location{
	"mecca":     Mecca,
	"jerusalem": Jerusalem,
	"jaffa":     Jaffa,
	"ujjain":    Ujjain,
	"urbana":    Urbana,
	"greenwich": Greenwich,
	"tehran":    Tehran,
	"beijing":   Beijing,
	"cairo":     Cairo,
}

// Named looks up a reference location by name, ignoring case.
func Named(name string) (Location, bool) {
	l, ok := named[strings.ToLower(name)]
	return l, ok
}

// Names lists the reference locations in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(named))
	for k := range named {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
