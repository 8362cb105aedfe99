// Public domain.

package numeric

import "errors"

var (
	// ErrNoConvergence is returned when a bounded search exhausts its
	// iteration limit.
	ErrNoConvergence = errors.New("search did not converge")
	// ErrAmbiguousBracket is returned by InvertAngular when the function
	// is not increasing across the bracket or sweeps a full turn or more.
	ErrAmbiguousBracket = errors.New("bracket may hold more than one crossing")
	// ErrNoCrossing is returned by InvertAngular when the function never
	// reaches the target value inside the bracket.
	ErrNoCrossing = errors.New("no crossing in bracket")
)

// ScanLimit bounds the integer scans of NextInt and FinalInt.
const ScanLimit = 1000

// Precision is the bracket width, in the units of the argument, at which
// InvertAngular stops.  With time in days it is just under a second.
const Precision = 1e-5

const (
	maxBisections  = 200
	bracketSamples = 8
	bracketSlack   = 1e-7 // degrees
)

// NextInt returns the first integer k >= i for which p(k) is true.
func NextInt(i int, p func(int) bool) (int, error) {
	return NextIntWithin(i, ScanLimit, p)
}

// NextIntWithin is NextInt, giving up with ErrNoConvergence after
// limit candidates.
func NextIntWithin(i, limit int, p func(int) bool) (int, error) {
	for k := i; k < i+limit; k++ {
		if p(k) {
			return k, nil
		}
	}
	return i + limit, ErrNoConvergence
}

// FinalInt returns the last integer k >= i-1 such that p holds for every
// integer in i..k.  If p(i) is false the result is i-1.
func FinalInt(i int, p func(int) bool) (int, error) {
	return FinalIntWithin(i, ScanLimit, p)
}

// FinalIntWithin is FinalInt, giving up with ErrNoConvergence after
// limit candidates.
func FinalIntWithin(i, limit int, p func(int) bool) (int, error) {
	for k := i; k < i+limit; k++ {
		if !p(k) {
			return k - 1, nil
		}
	}
	return i + limit - 1, ErrNoConvergence
}

// BinarySearch bisects [lo, hi].  At each step done(lo, hi) is checked
// first and ends the search with the midpoint; otherwise left(mid) true
// keeps the lower half and false keeps the upper half.
func BinarySearch(lo, hi float64, done func(lo, hi float64) bool, left func(x float64) bool) (float64, error) {
	for i := 0; i < maxBisections; i++ {
		x := (lo + hi) / 2
		if done(lo, hi) {
			return x, nil
		}
		if left(x) {
			hi = x
		} else {
			lo = x
		}
	}
	return (lo + hi) / 2, ErrNoConvergence
}

// InvertAngular finds x in [a, b] where the angular function f reaches y,
// modulo 360, to within Precision.
//
// f must increase through less than one full turn across the bracket, and
// choosing such a bracket is up to the caller.  The check on samples of f
// before searching is a heuristic: a bracket sweeping whole turns plus a
// little looks like a small sweep between samples and is not detected.
// The search then returns one of the crossings, not necessarily the first.
func InvertAngular(f func(float64) float64, y, a, b float64) (float64, error) {
	return InvertAngularWithin(f, y, a, b, Precision)
}

// InvertAngularWithin is InvertAngular with an explicit tolerance.
func InvertAngularWithin(f func(float64) float64, y, a, b, prec float64) (float64, error) {
	if b < a {
		return 0, ErrNoCrossing
	}
	fa := f(a)
	prev, sweep := fa, 0.
	for i := 1; i <= bracketSamples; i++ {
		v := f(a + (b-a)*float64(i)/bracketSamples)
		step := Mod(v-prev, 360)
		if step >= 180 {
			return 0, ErrAmbiguousBracket
		}
		sweep += step
		prev = v
	}
	if sweep >= 360 {
		return 0, ErrAmbiguousBracket
	}
	if Mod(y-fa, 360)-sweep > bracketSlack {
		return 0, ErrNoCrossing
	}
	return BinarySearch(a, b,
		func(lo, hi float64) bool { return hi-lo < prec },
		func(x float64) bool { return Mod(f(x)-y, 360) < 180 })
}
