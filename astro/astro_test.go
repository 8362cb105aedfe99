// Public domain.

package astro_test

import (
	"math"
	"testing"

	usno "github.com/soniakeys/astro"
	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/astrocal/astro"
	"github.com/soniakeys/astrocal/numeric"
	"github.com/soniakeys/astrocal/timescale"
)

// angular difference a-b in (-180, 180]
func adiff(a, b float64) float64 {
	return -numeric.Mod(b-a+180, 360) + 180
}

// universal moment of dynamical moment td
func ut(td float64) float64 { return timescale.UniversalFromDynamical(td) }

func gdate(y, m, d int) float64 {
	return float64(timescale.FixedFromGregorian(y, m, d))
}

// Meeus example 47.a, 1992 April 12 at 0h TD.
const meeus47a = 727300.

func TestLunarArguments(t *testing.T) {
	c := (meeus47a - timescale.J2000) / 36525
	for _, a := range []struct {
		name string
		f    func(float64) float64
		want float64
	}{
		{"L′", astro.MeanLunarLongitude, 134.290182},
		{"D", astro.LunarElongation, 113.842304},
		{"M", astro.SolarAnomaly, 97.643514},
		{"M′", astro.LunarAnomaly, 5.150833},
		{"F", astro.MoonNode, 219.889721},
	} {
		if got := a.f(c); math.Abs(got-a.want) > 1e-6 {
			t.Errorf("%s = %.7f, want %.6f", a.name, got, a.want)
		}
	}
}

func TestMoonPosition(t *testing.T) {
	tm := ut(meeus47a)
	if c := timescale.JulianCenturies(tm); math.Abs(c+0.077221081451) > 1e-11 {
		t.Fatal("centuries:", c)
	}
	if λ := astro.LunarLongitude(tm) - astro.Nutation(tm); math.Abs(adiff(λ, 133.162655)) > 1e-5 {
		t.Errorf("geometric longitude %.6f, want 133.162655", λ)
	}
	if β := astro.LunarLatitude(tm); math.Abs(β+3.229126) > 1e-5 {
		t.Errorf("latitude %.6f, want -3.229126", β)
	}
	if Δ := astro.LunarDistance(tm); math.Abs(Δ-368409685) > 200 {
		t.Errorf("distance %.0f m, want 368409685", Δ)
	}
}

// Meeus example 13.a, Pollux at J2000.
func TestEquatorial(t *testing.T) {
	tm := ut(timescale.J2000)
	if ε := astro.Obliquity(tm); math.Abs(ε-23.4392911) > 1e-7 {
		t.Errorf("obliquity %.7f", ε)
	}
	e := astro.Equatorial(tm, 6.684170, 113.215630)
	if α := e.RA.Deg(); math.Abs(α-116.328942) > 1e-5 {
		t.Errorf("RA %.6f, want 116.328942", α)
	}
	if δ := e.Dec.Deg(); math.Abs(δ-28.026183) > 1e-5 {
		t.Errorf("Dec %.6f, want 28.026183", δ)
	}
}

func TestSiderealFromMoment(t *testing.T) {
	if θ := astro.SiderealFromMoment(timescale.J2000); math.Abs(θ-280.46061837) > 1e-6 {
		t.Error("J2000:", θ)
	}
	// a solar day later the stars are about 0.9856 degrees ahead
	d := adiff(astro.SiderealFromMoment(timescale.J2000+1), 280.46061837)
	if math.Abs(d-0.98564736629) > 1e-6 {
		t.Error("one day:", d)
	}
}

// Meeus example 12.a, 1987 April 10 at 0h UT: 13ʰ10ᵐ46.3668ˢ.
func TestSiderealMeeus12a(t *testing.T) {
	want := (13 + 10./60 + 46.3668/3600) * 15
	if θ := astro.SiderealFromMoment(gdate(1987, 4, 10)); math.Abs(θ-want) > 2e-6 {
		t.Errorf("sidereal %.7f, want %.7f", θ, want)
	}
}

func TestSeasons2000(t *testing.T) {
	for _, c := range []struct {
		season, want, tol float64
	}{
		{astro.Spring, gdate(2000, 3, 20) + timescale.Hr(7) + timescale.Mn(35), .007},
		{astro.Summer, gdate(2000, 6, 21) + timescale.Hr(1) + timescale.Mn(48), .007},
		{astro.Autumn, gdate(2000, 9, 22) + timescale.Hr(17) + timescale.Mn(28), .007},
		{astro.Winter, gdate(2000, 12, 21) + timescale.Hr(13) + timescale.Mn(37), .007},
	} {
		got, err := astro.SeasonInGregorian(c.season, 2000)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-c.want) > c.tol {
			t.Errorf("season %g: %.4f, want %.4f", c.season, got, c.want)
		}
	}
}

// Cross-check against the USNO approximation used for astrometry.
func TestSolarLongitudeUSNO(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 200; i++ {
		tm := gdate(1950, 1, 1) + rnd.Float64()*36525
		mjd := timescale.JDFromMoment(tm) - 2400000.5
		se, soe, coe := usno.Se2000(mjd)
		l := math.Atan2(se.Y*coe+se.Z*soe, se.X) * 180 / math.Pi
		if d := adiff(astro.SolarLongitude(tm), l); math.Abs(d) > .03 {
			t.Fatalf("moment %.3f: longitude %.4f, USNO %.4f",
				tm, astro.SolarLongitude(tm), l)
		}
	}
}

func TestSolarLongitudeAfter(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 100; i++ {
		tm := gdate(1800, 1, 1) + rnd.Float64()*146000
		λ := rnd.Float64() * 360
		x, err := astro.SolarLongitudeAfter(λ, tm)
		if err != nil {
			t.Fatal(err)
		}
		if x < tm || x-tm > astro.MeanTropicalYear+1 {
			t.Fatalf("SolarLongitudeAfter(%g, %g) = %g", λ, tm, x)
		}
		if d := adiff(astro.SolarLongitude(x), λ); math.Abs(d) > 1e-5 {
			t.Fatalf("SolarLongitude(SolarLongitudeAfter(%g)) off by %g", λ, d)
		}
		est := astro.EstimatePriorSolarLongitude(λ, tm)
		if est > tm {
			t.Fatalf("estimate %g after %g", est, tm)
		}
		if d := adiff(astro.SolarLongitude(est), λ); math.Abs(d) > 1 {
			t.Fatalf("estimate for %g off by %g degrees", λ, d)
		}
	}
}

func TestEquationOfTime(t *testing.T) {
	nov := astro.EquationOfTime(gdate(2000, 11, 3))
	if nov < timescale.Mn(15) || nov > timescale.Mn(17) {
		t.Error("3 November:", nov*1440, "minutes")
	}
	feb := astro.EquationOfTime(gdate(2000, 2, 11))
	if feb < timescale.Mn(-15) || feb > timescale.Mn(-13.5) {
		t.Error("11 February:", feb*1440, "minutes")
	}
}

func TestNewMoon2000(t *testing.T) {
	jan6 := gdate(2000, 1, 6) + timescale.Hr(18) + timescale.Mn(14)
	if nm := astro.NthNewMoon(24724); math.Abs(nm-jan6) > .01 {
		t.Errorf("NthNewMoon(24724) = %.4f, want %.4f", nm, jan6)
	}
	if nm := astro.NthNewMoon(0); timescale.FixedFromMoment(nm) != 11 {
		t.Errorf("NthNewMoon(0) = %.4f, want RD 11", nm)
	}
	nm, err := astro.NewMoonAtOrAfter(gdate(2000, 1, 1))
	if err != nil || math.Abs(nm-jan6) > .01 {
		t.Error("NewMoonAtOrAfter:", nm, err)
	}
	nm, err = astro.NewMoonBefore(gdate(2000, 1, 7))
	if err != nil || math.Abs(nm-jan6) > .01 {
		t.Error("NewMoonBefore 7 January:", nm, err)
	}
	dec7 := gdate(1999, 12, 7) + timescale.Hr(22) + timescale.Mn(32)
	nm, err = astro.NewMoonBefore(gdate(2000, 1, 6))
	if err != nil || math.Abs(nm-dec7) > .01 {
		t.Error("NewMoonBefore 6 January:", nm, err)
	}
}

func TestLunarPhaseCrossings(t *testing.T) {
	full := gdate(2000, 1, 21) + timescale.Hr(4) + timescale.Mn(40)
	x, err := astro.LunarPhaseAtOrAfter(astro.Full, gdate(2000, 1, 7))
	if err != nil || math.Abs(x-full) > .01 {
		t.Error("full moon:", x, err)
	}
	x, err = astro.LunarPhaseAtOrBefore(astro.Full, gdate(2000, 1, 30))
	if err != nil || math.Abs(x-full) > .01 {
		t.Error("full moon before:", x, err)
	}
	x, err = astro.LunarPhaseAtOrAfter(astro.FirstQuarter, gdate(2000, 1, 7))
	if err != nil {
		t.Fatal(err)
	}
	if d := adiff(astro.LunarPhase(x), astro.FirstQuarter); math.Abs(d) > 1e-3 {
		t.Error("first quarter phase off by", d)
	}
	if x < gdate(2000, 1, 13) || x > gdate(2000, 1, 16) {
		t.Error("first quarter:", x)
	}
}

// Phase increases through one full turn between successive new moons.
func TestLunarPhaseMonotonic(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 10; i++ {
		n := 24000 + int(rnd.Int63n(1500))
		t0, t1 := astro.NthNewMoon(n), astro.NthNewMoon(n+1)
		if p := t1 - t0; p < 29.2 || p > 29.9 {
			t.Fatalf("lunation %d length %g", n, p)
		}
		prev, sweep := astro.LunarPhase(t0+.01), 0.
		for tm := t0 + .5; tm < t1-.01; tm += .5 {
			φ := astro.LunarPhase(tm)
			step := numeric.Mod(φ-prev, 360)
			if step <= 0 || step > 20 {
				t.Fatalf("lunation %d: phase %g after %g", n, φ, prev)
			}
			sweep += step
			prev = φ
		}
		if sweep > 360 {
			t.Fatalf("lunation %d: phase swept %g", n, sweep)
		}
	}
}

func TestSidereal(t *testing.T) {
	if p := astro.Precession(ut(timescale.J2000)); math.Abs(adiff(p, 0)) > 1e-9 {
		t.Error("precession at J2000:", p)
	}
	s, err := astro.SiderealStart()
	if err != nil {
		t.Fatal(err)
	}
	if s < 330 || s > 340 {
		t.Error("SiderealStart:", s)
	}
	eq, err := astro.SeasonInGregorian(astro.Spring, 285)
	if err != nil {
		t.Fatal(err)
	}
	ms, err := astro.MeshaSamkranti(285)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ms-eq) > 1e-3 {
		t.Errorf("MeshaSamkranti(285) = %.5f, equinox %.5f", ms, eq)
	}
	ms, err = astro.MeshaSamkranti(2000)
	if err != nil {
		t.Fatal(err)
	}
	if ms < gdate(2000, 4, 12) || ms > gdate(2000, 4, 16) {
		t.Error("MeshaSamkranti(2000) =", ms)
	}
	λ, err := astro.SiderealSolarLongitude(ms)
	if err != nil || math.Abs(adiff(λ, 0)) > 1e-4 {
		t.Error("sidereal longitude at samkranti:", λ, err)
	}
}
