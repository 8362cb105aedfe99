// Public domain.

package acprog

import (
	"context"
	"errors"
	"fmt"

	"github.com/soniakeys/sexagesimal"

	"github.com/soniakeys/astrocal/almanac"
	"github.com/soniakeys/astrocal/astro"
	"github.com/soniakeys/astrocal/observer"
	"github.com/soniakeys/astrocal/timescale"
)

func (p *printer) run(year int) error {
	if p.opt.seasons {
		if err := p.seasons(year); err != nil {
			return err
		}
	}
	if p.opt.phases {
		if err := p.phases(year); err != nil {
			return err
		}
	}
	if p.opt.daily {
		p.daily(year)
	}
	return nil
}

// seasons prints each solar crossing with the apparent position of the
// sun at that moment.
func (p *printer) seasons(year int) error {
	s, err := almanac.Seasons(year)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("Seasons %d (UT)", year))
	for _, x := range s {
		eq := astro.Equatorial(x.Moment, 0, x.Longitude)
		fmt.Fprintf(p.w, "%-18s %s  RA %.*s  Dec %.*s\n",
			x.Name, ymdhm(x.Moment),
			0, sexa.FmtRA(eq.RA), 0, sexa.FmtAngle(eq.Dec))
	}
	fmt.Fprintln(p.w)
	return nil
}

func (p *printer) phases(year int) error {
	ph, err := almanac.Phases(year)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("Moon phases %d (UT)", year))
	for _, x := range ph {
		fmt.Fprintf(p.w, "%-14s %s\n", x.Name, ymdhm(x.Moment))
	}
	fmt.Fprintln(p.w)
	return nil
}

// daily prints the day table.  Days are computed concurrently and arrive
// in date order.
func (p *printer) daily(year int) {
	tb := &almanac.Table{
		Location: p.opt.loc,
		Twilight: p.opt.twilight,
		Workers:  p.opt.workers,
	}
	from := timescale.GregorianNewYear(year)
	to := timescale.GregorianNewYear(year+1) - 1
	p.heading(fmt.Sprintf("%s %s (standard time)", p.opt.locName, p.opt.loc))
	if p.opt.headings {
		fmt.Fprintln(p.w, "Date        Dawn  Rise  Set   Dusk  Mrise Mset")
	}
	for d := range tb.Stream(context.Background(), from, to) {
		fmt.Fprintln(p.w, p.dayLine(d))
	}
}

func (p *printer) dayLine(d almanac.Day) string {
	y, m, dd := timescale.GregorianFromFixed(d.Date)
	s := fmt.Sprintf("%04d-%02d-%02d  %s %s %s %s %s %s", y, m, dd,
		event(d.Dawn), event(d.Sunrise), event(d.Sunset),
		event(d.Dusk), event(d.Moonrise), event(d.Moonset))
	if p.opt.crescent && d.CrescentErr == nil && d.Crescent {
		s += "  crescent"
	}
	return s
}

// event formats the time of an event.  A dash means the event does not
// occur that day.
func event(e almanac.Event) string {
	switch {
	case e.Err == nil:
		return hm(e.Moment)
	case errors.Is(e.Err, observer.ErrEventNotReached):
		return "  -- "
	}
	return "  ?? "
}
