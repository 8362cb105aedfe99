// Public domain.

package deg_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/astrocal/deg"
)

func ExampleFromDMS() {
	fmt.Printf("%.6f\n", deg.FromDMS(23, 26, 21.448))
	fmt.Printf("%.4f\n", deg.FromDMS(-88, 12, 0))
	// Output:
	// 23.439291
	// -88.2000
}

func TestTrig(t *testing.T) {
	for _, c := range []struct{ θ, sin, cos float64 }{
		{0, 0, 1},
		{30, .5, math.Sqrt(3) / 2},
		{90, 1, 0},
		{180, 0, -1},
		{-90, -1, 0},
		{390, .5, math.Sqrt(3) / 2},
	} {
		if s := deg.Sin(c.θ); math.Abs(s-c.sin) > 1e-15 {
			t.Errorf("Sin(%g) = %g, want %g", c.θ, s, c.sin)
		}
		if s := deg.Cos(c.θ); math.Abs(s-c.cos) > 1e-15 {
			t.Errorf("Cos(%g) = %g, want %g", c.θ, s, c.cos)
		}
	}
	if x := deg.Tan(45); math.Abs(x-1) > 1e-15 {
		t.Error("Tan(45) =", x)
	}
}

func TestInverse(t *testing.T) {
	if a, err := deg.Asin(.5); err != nil || math.Abs(a-30) > 1e-12 {
		t.Error("Asin(.5):", a, err)
	}
	if a, err := deg.Acos(-1); err != nil || math.Abs(a-180) > 1e-12 {
		t.Error("Acos(-1):", a, err)
	}
	for _, c := range []struct{ y, x, want float64 }{
		{1, 1, 45},
		{1, -1, 135},
		{-1, -1, 225},
		{-1, 1, 315},
		{0, 1, 0},
	} {
		if a, err := deg.Atan2(c.y, c.x); err != nil || math.Abs(a-c.want) > 1e-12 {
			t.Errorf("Atan2(%g, %g) = %g, %v", c.y, c.x, a, err)
		}
	}
}

func TestDomainError(t *testing.T) {
	var de *deg.DomainError
	if _, err := deg.Asin(1.0000001); !errors.As(err, &de) || de.Func != "Asin" {
		t.Error("Asin out of domain:", err)
	}
	if _, err := deg.Acos(-2); !errors.As(err, &de) || de.Arg != -2 {
		t.Error("Acos out of domain:", err)
	}
	if _, err := deg.Acos(math.NaN()); !errors.As(err, &de) {
		t.Error("Acos(NaN):", err)
	}
	if _, err := deg.Atan2(0, 0); !errors.As(err, &de) || de.Func != "Atan2" {
		t.Error("Atan2 at origin:", err)
	}
}

func TestNormalize(t *testing.T) {
	for _, c := range []struct{ θ, want float64 }{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-1e-18, 0},
	} {
		n := deg.Normalize(c.θ)
		if n < 0 || n >= 360 || math.Abs(n-c.want) > 1e-12 {
			t.Errorf("Normalize(%g) = %g, want %g", c.θ, n, c.want)
		}
	}
}
