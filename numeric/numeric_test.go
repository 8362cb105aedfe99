// Public domain.

package numeric_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/astrocal/numeric"
)

func ExampleMod() {
	fmt.Println(numeric.Mod(-1, 360), numeric.Mod(725, 360), numeric.Mod(5, -3))
	fmt.Println(numeric.Amod(12, 12), numeric.Amod(0, 7), numeric.Amod(8, 7))
	// Output:
	// 359 5 -1
	// 12 7 1
}

func TestQuotient(t *testing.T) {
	for _, c := range []struct{ m, n, q float64 }{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-1, 7, -1},
		{0, 7, 0},
	} {
		if q := numeric.Quotient(c.m, c.n); q != c.q {
			t.Errorf("Quotient(%g, %g) = %g, want %g", c.m, c.n, q, c.q)
		}
	}
}

func TestRounding(t *testing.T) {
	for _, c := range []struct {
		x           float64
		fl, ce, rnd int
	}{
		{2.5, 2, 3, 3},
		{-2.5, -3, -2, -2},
		{-2.6, -3, -2, -3},
		{4, 4, 4, 4},
	} {
		if f := numeric.IFloor(c.x); f != c.fl {
			t.Errorf("IFloor(%g) = %d, want %d", c.x, f, c.fl)
		}
		if f := numeric.ICeil(c.x); f != c.ce {
			t.Errorf("ICeil(%g) = %d, want %d", c.x, f, c.ce)
		}
		if f := numeric.IRound(c.x); f != c.rnd {
			t.Errorf("IRound(%g) = %d, want %d", c.x, f, c.rnd)
		}
	}
}

func TestModRange(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 1000; i++ {
		x := (rnd.Float64() - .5) * 1e6
		m := numeric.Mod(x, 360)
		if m < 0 || m >= 360 {
			t.Fatalf("Mod(%g, 360) = %g", x, m)
		}
		if d := math.Abs(math.Remainder(x-m, 360)); d > 1e-6 {
			t.Fatalf("Mod(%g, 360) = %g not congruent", x, m)
		}
		if a := numeric.Amod(x, 360); a <= 0 || a > 360 {
			t.Fatalf("Amod(%g, 360) = %g", x, a)
		}
	}
}

func TestPoly(t *testing.T) {
	if p := numeric.Poly(2); p != 0 {
		t.Error("empty Poly:", p)
	}
	if p := numeric.Poly(2, 1, 2, 3); p != 17 {
		t.Error("Poly(2, 1, 2, 3) =", p)
	}
	if p := numeric.Poly(-1, 5); p != 5 {
		t.Error("constant Poly:", p)
	}
}

func TestSigma(t *testing.T) {
	type row struct{ a, b float64 }
	rows := []row{{1, 2}, {3, 4}, {5, 6}}
	s := numeric.Sigma(rows, func(r row) float64 { return r.a * r.b })
	if s != 44 {
		t.Error("Sigma =", s)
	}
	if s := numeric.Sigma([]row(nil), func(row) float64 { return 1 }); s != 0 {
		t.Error("Sigma over no rows =", s)
	}
}

func TestNextInt(t *testing.T) {
	k, err := numeric.NextInt(3, func(k int) bool { return k*k > 50 })
	if err != nil || k != 8 {
		t.Error("NextInt:", k, err)
	}
	k, err = numeric.NextInt(10, func(k int) bool { return k > 5 })
	if err != nil || k != 10 {
		t.Error("NextInt first candidate:", k, err)
	}
	_, err = numeric.NextIntWithin(0, 20, func(int) bool { return false })
	if !errors.Is(err, numeric.ErrNoConvergence) {
		t.Error("NextIntWithin unbounded predicate:", err)
	}
}

func TestFinalInt(t *testing.T) {
	k, err := numeric.FinalInt(0, func(k int) bool { return k*k < 50 })
	if err != nil || k != 7 {
		t.Error("FinalInt:", k, err)
	}
	k, err = numeric.FinalInt(5, func(k int) bool { return k < 5 })
	if err != nil || k != 4 {
		t.Error("FinalInt false at start:", k, err)
	}
	_, err = numeric.FinalIntWithin(0, 20, func(int) bool { return true })
	if !errors.Is(err, numeric.ErrNoConvergence) {
		t.Error("FinalIntWithin unbounded predicate:", err)
	}
}

func TestBinarySearch(t *testing.T) {
	x, err := numeric.BinarySearch(0, 2,
		func(lo, hi float64) bool { return hi-lo < 1e-12 },
		func(x float64) bool { return x*x >= 2 })
	if err != nil || math.Abs(x-math.Sqrt2) > 1e-11 {
		t.Error("BinarySearch sqrt 2:", x, err)
	}
	_, err = numeric.BinarySearch(0, 1,
		func(lo, hi float64) bool { return false },
		func(x float64) bool { return true })
	if !errors.Is(err, numeric.ErrNoConvergence) {
		t.Error("BinarySearch never done:", err)
	}
}

func TestInvertAngular(t *testing.T) {
	// 12 degrees per unit, wrapping past 360
	f := func(x float64) float64 { return numeric.Mod(300+12*x, 360) }
	x, err := numeric.InvertAngular(f, 30, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-7.5) > numeric.Precision {
		t.Error("InvertAngular =", x)
	}
	x, err = numeric.InvertAngularWithin(f, 300, 0, 10, 1e-9)
	if err != nil || math.Abs(x) > 1e-9 {
		t.Error("InvertAngular at bracket start:", x, err)
	}
}

// A bracket of whole turns plus a little passes the sample check.  The
// result is still a crossing, just not a unique one.
func TestInvertAngularAliasedBracket(t *testing.T) {
	f := func(x float64) float64 { return numeric.Mod(361*x, 360) }
	x, err := numeric.InvertAngularWithin(f, 4, 0, 8, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if d := numeric.Mod(f(x)-4+180, 360) - 180; math.Abs(d) > 1e-6 {
		t.Fatalf("f(%g) = %g, want 4", x, f(x))
	}
}

func TestInvertAngularBracket(t *testing.T) {
	fast := func(x float64) float64 { return numeric.Mod(10*x, 360) }
	if _, err := numeric.InvertAngular(fast, 45, 0, 100); !errors.Is(err, numeric.ErrAmbiguousBracket) {
		t.Error("multi-turn bracket:", err)
	}
	down := func(x float64) float64 { return numeric.Mod(-x, 360) }
	if _, err := numeric.InvertAngular(down, 355, 0, 10); !errors.Is(err, numeric.ErrAmbiguousBracket) {
		t.Error("decreasing function:", err)
	}
	slow := func(x float64) float64 { return x }
	if _, err := numeric.InvertAngular(slow, 50, 0, 10); !errors.Is(err, numeric.ErrNoCrossing) {
		t.Error("target out of reach:", err)
	}
	if _, err := numeric.InvertAngular(slow, 5, 10, 0); !errors.Is(err, numeric.ErrNoCrossing) {
		t.Error("reversed bracket:", err)
	}
}
