// Public domain.

package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soniakeys/astrocal/almanac"
	"github.com/soniakeys/astrocal/astro"
	"github.com/soniakeys/astrocal/observer"
	"github.com/soniakeys/astrocal/timescale"
)

// Handler answers ephemeris queries.
type Handler struct {
	// Twilight is the solar depression of dawn and dusk, in degrees.
	Twilight float64
}

// NewHandler returns a Handler using astronomical twilight.
func NewHandler() *Handler {
	return &Handler{Twilight: 18}
}

func badRequest(c *gin.Context, format string, a ...any) {
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(format, a...)})
}

func queryYear(c *gin.Context) (int, bool) {
	s := c.Query("year")
	if s == "" {
		badRequest(c, "year parameter is required")
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		badRequest(c, "invalid year: %v", err)
		return 0, false
	}
	return y, true
}

// queryPlace reads the location name and the date, YYYY-MM-DD, as a fixed
// date.
func queryPlace(c *gin.Context) (observer.Location, int, bool) {
	name := c.Query("location")
	l, ok := observer.Named(name)
	if !ok {
		badRequest(c, "unknown location %q", name)
		return l, 0, false
	}
	d, err := time.Parse(time.DateOnly, c.Query("date"))
	if err != nil {
		badRequest(c, "invalid date (expected YYYY-MM-DD): %v", err)
		return l, 0, false
	}
	return l, timescale.FixedFromGregorian(d.Year(), int(d.Month()), d.Day()), true
}

// utc formats a universal moment.
func utc(t float64) string {
	return timescale.TimeFromMoment(t).Format(time.RFC3339)
}

// standard formats a standard time moment at l with its zone offset.  A
// nil result encodes as JSON null.
func standard(l observer.Location, t float64, err error) (*string, error) {
	if err != nil {
		if errors.Is(err, observer.ErrEventNotReached) {
			return nil, nil
		}
		return nil, err
	}
	zone := time.FixedZone("", int(l.Zone()*86400))
	s := timescale.TimeFromMoment(l.UniversalFromStandard(t)).
		In(zone).Format(time.RFC3339)
	return &s, nil
}

// SolarLongitude handles GET /v1/solar/longitude.  Moment is an RFC3339
// time, default now.
func (h *Handler) SolarLongitude(c *gin.Context) {
	tm := time.Now().UTC()
	if s := c.Query("moment"); s != "" {
		var err error
		if tm, err = time.Parse(time.RFC3339, s); err != nil {
			badRequest(c, "invalid moment (expected RFC3339): %v", err)
			return
		}
	}
	t := timescale.MomentFromTime(tm)
	c.JSON(http.StatusOK, gin.H{
		"moment":    utc(t),
		"longitude": astro.SolarLongitude(t),
	})
}

type eventJSON struct {
	Name   string `json:"name"`
	Moment string `json:"moment"`
}

// Seasons handles GET /v1/seasons.
func (h *Handler) Seasons(c *gin.Context) {
	y, ok := queryYear(c)
	if !ok {
		return
	}
	s, err := almanac.Seasons(y)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	r := make([]eventJSON, len(s))
	for i, x := range s {
		r[i] = eventJSON{x.Name, utc(x.Moment)}
	}
	c.JSON(http.StatusOK, gin.H{"year": y, "seasons": r})
}

// Phases handles GET /v1/phases.
func (h *Handler) Phases(c *gin.Context) {
	y, ok := queryYear(c)
	if !ok {
		return
	}
	p, err := almanac.Phases(y)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	r := make([]eventJSON, len(p))
	for i, x := range p {
		r[i] = eventJSON{x.Name, utc(x.Moment)}
	}
	c.JSON(http.StatusOK, gin.H{"year": y, "phases": r})
}

// SunResponse holds the sun and moon events of a day.  Events that do not
// occur are null.
type SunResponse struct {
	Location string  `json:"location"`
	Date     string  `json:"date"`
	Dawn     *string `json:"dawn"`
	Sunrise  *string `json:"sunrise"`
	Sunset   *string `json:"sunset"`
	Dusk     *string `json:"dusk"`
	Moonrise *string `json:"moonrise"`
	Moonset  *string `json:"moonset"`
}

// Sun handles GET /v1/sun.
func (h *Handler) Sun(c *gin.Context) {
	l, date, ok := queryPlace(c)
	if !ok {
		return
	}
	tb := almanac.Table{Location: l, Twilight: h.Twilight}
	d := tb.Day(date)
	r := SunResponse{Location: c.Query("location"), Date: c.Query("date")}
	for _, e := range []struct {
		dst **string
		ev  almanac.Event
	}{
		{&r.Dawn, d.Dawn},
		{&r.Sunrise, d.Sunrise},
		{&r.Sunset, d.Sunset},
		{&r.Dusk, d.Dusk},
		{&r.Moonrise, d.Moonrise},
		{&r.Moonset, d.Moonset},
	} {
		s, err := standard(l, e.ev.Moment, e.ev.Err)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		*e.dst = s
	}
	c.JSON(http.StatusOK, r)
}

// Crescent handles GET /v1/crescent.  It reports visibility on the evening
// before date and the phasis dates bracketing it.
func (h *Handler) Crescent(c *gin.Context) {
	l, date, ok := queryPlace(c)
	if !ok {
		return
	}
	vis, err := l.VisibleCrescent(date)
	if errors.Is(err, observer.ErrEventNotReached) {
		c.JSON(http.StatusOK, gin.H{"visible": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	before, err := l.PhasisOnOrBefore(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	after, err := l.PhasisOnOrAfter(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"visible":             vis,
		"phasis_on_or_before": isoDate(before),
		"phasis_on_or_after":  isoDate(after),
	})
}

func isoDate(date int) string {
	y, m, d := timescale.GregorianFromFixed(date)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

type locationJSON struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation_m"`
	ZoneHours float64 `json:"zone_hours"`
}

// Locations handles GET /v1/locations.
func (h *Handler) Locations(c *gin.Context) {
	names := observer.Names()
	r := make([]locationJSON, len(names))
	for i, n := range names {
		l, _ := observer.Named(n)
		r[i] = locationJSON{n, l.Latitude(), l.Longitude(), l.Elevation(), l.Zone() * 24}
	}
	c.JSON(http.StatusOK, gin.H{"locations": r})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
