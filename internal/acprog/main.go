// Public domain.

// Package acprog is the astrocal command: an almanac for a year and a
// location.
package acprog

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/exit"
	"golang.org/x/term"

	"github.com/soniakeys/astrocal/observer"
	"github.com/soniakeys/astrocal/timescale"
)

const versionString = "astrocal version 0.1 Go source."
const copyrightString = "Public domain."
const defaultConfig = "astrocal.config"

func Main() {
	defer exit.Handler()

	// these functions all set up program options and terminate on error
	cl := parseCommandLine()
	if cl.v {
		os.Exit(0)
	}
	opt := readConfig(cl)
	if cl.loc != "" {
		l, ok := opt.lookup(cl.loc)
		if !ok {
			exit.Log("Unknown location: " + cl.loc)
		}
		opt.loc, opt.locName = l, cl.loc
	}
	if cl.daily {
		opt.daily = true
	}
	if cl.workers > 0 {
		opt.workers = cl.workers
	}
	p := newPrinter(os.Stdout, opt)
	if err := p.run(cl.year); err != nil {
		exit.Log(err)
	}
}

type commandLine struct {
	dc      string // config file
	loc     string // -l location name
	daily   bool   // -d
	workers int    // -w
	year    int
	v       bool // -v option
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	flag.BoolVar(&cl.v, "v", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.StringVar(&cl.loc, "l", "", "")
	flag.BoolVar(&cl.daily, "d", false, "")
	flag.IntVar(&cl.workers, "w", 0, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: astrocal [options] <year>    almanac for a Gregorian year
       astrocal -h                  display help and quick reference
       astrocal -v                  display version and copyright

Options:
       -c <config-file>
       -l <location>
       -d                           include the daily table
       -w <workers>
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case cl.v:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		return &cl
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(1)
	}
	y, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		exit.Log("Invalid year: " + flag.Arg(0))
	}
	cl.year = y
	return &cl
}

type outputOptions struct {
	headings, seasons, phases, daily, crescent bool
	loc                                        observer.Location
	locName                                    string
	sites                                      map[string]observer.Location
	twilight                                   float64
	workers                                    int
}

func defaultOptions() *outputOptions {
	return &outputOptions{
		headings: true,
		seasons:  true,
		phases:   true,
		crescent: true,
		loc:      observer.Greenwich,
		locName:  "greenwich",
		twilight: 18,
	}
}

func readConfig(cl *commandLine) *outputOptions {
	fn := cl.dc
	if fn == "" {
		fn = defaultConfig
	}
	f, err := os.Open(fn)
	if err != nil {
		if cl.dc == "" {
			return defaultOptions()
		}
		exit.Log(err)
	}
	defer f.Close()
	opt, err := parseConfig(f)
	if err != nil {
		exit.Log(err)
	}
	return opt
}

// parseConfig reads keyword lines.  Blank lines and lines starting with #
// are ignored.
func parseConfig(r io.Reader) (*outputOptions, error) {
	opt := defaultOptions()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ls := strings.TrimSpace(sc.Text())
		if ls == "" || ls[0] == '#' {
			continue
		}
		switch ls {
		case "headings":
			opt.headings = true
			continue
		case "noheadings":
			opt.headings = false
			continue
		case "seasons":
			opt.seasons = true
			continue
		case "noseasons":
			opt.seasons = false
			continue
		case "phases":
			opt.phases = true
			continue
		case "nophases":
			opt.phases = false
			continue
		case "daily":
			opt.daily = true
			continue
		case "nodaily":
			opt.daily = false
			continue
		case "crescent":
			opt.crescent = true
			continue
		case "nocrescent":
			opt.crescent = false
			continue
		}
		f := strings.Fields(ls)
		switch f[0] {
		case "twilight":
			if len(f) != 2 {
				return nil, fmt.Errorf("Invalid format for twilight.\nConfig file line: %s", ls)
			}
			d, err := strconv.ParseFloat(f[1], 64)
			if err != nil || d < 0 || d > 20 {
				return nil, fmt.Errorf("Twilight must be 0 to 20 degrees.\nConfig file line: %s", ls)
			}
			opt.twilight = d
			continue
		case "workers":
			n, err := strconv.Atoi(strings.TrimSpace(ls[len("workers"):]))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("Invalid worker count.\nConfig file line: %s", ls)
			}
			opt.workers = n
			continue
		case "sites":
			if len(f) != 2 {
				return nil, fmt.Errorf("Invalid format for sites.\nConfig file line: %s", ls)
			}
			if err := opt.readSites(f[1]); err != nil {
				return nil, fmt.Errorf("%v\nConfig file line: %s", err, ls)
			}
			continue
		case "location":
			if err := parseLocation(opt, f[1:]); err != nil {
				return nil, fmt.Errorf("%v\nConfig file line: %s", err, ls)
			}
			continue
		}
		return nil, fmt.Errorf("Unrecognized line in config file: %s", ls)
	}
	return opt, sc.Err()
}

// parseLocation handles "location <name>" for a reference location and
// "location <name> <lat> <lon> <elevation m> <zone h>" for any other.
func parseLocation(opt *outputOptions, f []string) error {
	switch len(f) {
	case 1:
		l, ok := opt.lookup(f[0])
		if !ok {
			return fmt.Errorf("Unknown location %s.", f[0])
		}
		opt.loc, opt.locName = l, f[0]
		return nil
	case 5:
	default:
		return fmt.Errorf("Invalid format for location.")
	}
	var v [4]float64
	for i, s := range f[1:] {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v[i] = x
	}
	l, err := observer.NewLocation(v[0], v[1], v[2], timescale.Hr(v[3]))
	if err != nil {
		return err
	}
	opt.loc, opt.locName = l, f[0]
	return nil
}

// lookup finds a reference location by name or a site read from an
// observatory code file.
func (opt *outputOptions) lookup(name string) (observer.Location, bool) {
	if l, ok := observer.Named(name); ok {
		return l, true
	}
	l, ok := opt.sites[name]
	return l, ok
}

func (opt *outputOptions) readSites(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	m, err := observer.ReadSites(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	if opt.sites == nil {
		opt.sites = m
		return nil
	}
	for k, l := range m {
		opt.sites[k] = l
	}
	return nil
}

// headingStyle applies only when output is a terminal.
var headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printHelp() {
	fmt.Println(`
Astrocal prints an almanac for a Gregorian year: the equinoxes and
solstices, the quarters of the moon, and optionally a daily table of
twilight, sunrise, sunset, moonrise, moonset and first visibility of the
lunar crescent for a location.  Times are in the standard time of the
location; seasons and phases are in universal time.

Config file keywords:
   headings
   noheadings
   seasons
   noseasons
   phases
   nophases
   daily
   nodaily
   crescent
   nocrescent
   twilight <degrees>
   workers <n>
   sites <obscode-file>
   location <name>
   location <name> <lat> <lon> <elevation m> <zone h>

The sites keyword reads observatory locations from a file in the format
of the MPC list of observatory codes.  A location or -l option can then
name an observatory by its three character code.

Locations:`)
	for _, n := range observer.Names() {
		l, _ := observer.Named(n)
		fmt.Printf("   %-10s %s\n", n, l)
	}
	fmt.Println(`
For full documentation:
   go doc github.com/soniakeys/astrocal`)
}

// printer writes the almanac sections.
type printer struct {
	w     io.Writer
	opt   *outputOptions
	style bool
}

func newPrinter(w io.Writer, opt *outputOptions) *printer {
	return &printer{w, opt, styled(w)}
}

func (p *printer) heading(s string) {
	if !p.opt.headings {
		return
	}
	if p.style {
		s = headingStyle.Render(s)
	}
	fmt.Fprintln(p.w, s)
}

// hm formats the time of day of moment t.
func hm(t float64) string {
	return timescale.TimeFromMoment(t).Format("15:04")
}

func ymdhm(t float64) string {
	return timescale.TimeFromMoment(t).Format("2006-01-02 15:04")
}
