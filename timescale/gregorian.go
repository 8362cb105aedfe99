// Public domain.

package timescale

// fdiv and fmod are integer division and modulus floored toward -∞.
func fdiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func fmod(a, b int) int {
	return a - b*fdiv(a, b)
}

// GregorianLeapYear reports whether year is a leap year of the proleptic
// Gregorian calendar.  Year 0 is 1 BCE.
func GregorianLeapYear(year int) bool {
	if fmod(year, 4) != 0 {
		return false
	}
	r := fmod(year, 400)
	return r != 100 && r != 200 && r != 300
}

// FixedFromGregorian returns the fixed date of a proleptic Gregorian date.
//
// Month and day are not range checked; day 0 is the last day of the
// previous month.
func FixedFromGregorian(year, month, day int) int {
	y := year - 1
	f := 365*y + fdiv(y, 4) - fdiv(y, 100) + fdiv(y, 400) +
		fdiv(367*month-362, 12) + day
	if month > 2 {
		if GregorianLeapYear(year) {
			f--
		} else {
			f -= 2
		}
	}
	return f
}

// GregorianNewYear returns the fixed date of 1 January of year.
func GregorianNewYear(year int) int {
	return FixedFromGregorian(year, 1, 1)
}

// GregorianYearFromFixed returns the proleptic Gregorian year containing
// the fixed date.
func GregorianYearFromFixed(date int) int {
	d0 := date - 1
	n400 := fdiv(d0, 146097)
	d1 := fmod(d0, 146097)
	n100 := d1 / 36524
	d2 := d1 % 36524
	n4 := d2 / 1461
	d3 := d2 % 1461
	n1 := d3 / 365
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		return year
	}
	return year + 1
}

// GregorianFromFixed returns the proleptic Gregorian date of a fixed date.
func GregorianFromFixed(date int) (year, month, day int) {
	year = GregorianYearFromFixed(date)
	prior := date - GregorianNewYear(year)
	switch {
	case date < FixedFromGregorian(year, 3, 1):
	case GregorianLeapYear(year):
		prior++
	default:
		prior += 2
	}
	month = fdiv(12*prior+373, 367)
	day = date - FixedFromGregorian(year, month, 1) + 1
	return
}
