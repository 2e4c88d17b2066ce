package i18n

import "time"

// Unit is a calendar unit used for date differences and relative time.
type Unit string

// Calendar units, largest first.
const (
	UnitYear    Unit = "year"
	UnitQuarter Unit = "quarter"
	UnitMonth   Unit = "month"
	UnitWeek    Unit = "week"
	UnitDay     Unit = "day"
	UnitHour    Unit = "hour"
	UnitMinute  Unit = "minute"
	UnitSecond  Unit = "second"

	// UnitAuto asks the formatter to pick the largest unit with a non-zero difference.
	UnitAuto Unit = "auto"
)

// Units lists every calendar unit from largest to smallest.
var Units = []Unit{UnitYear, UnitQuarter, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond}

const (
	millisecond int64 = 1
	second            = 1000 * millisecond
	minute            = 60 * second
	hour              = 60 * minute
	day               = 24 * hour
)

// Valid reports whether u is one of the calendar units.
func (u Unit) Valid() bool {
	switch u {
	case UnitYear, UnitQuarter, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond:
		return true
	}
	return false
}

// DiffTable holds independent differences between two instants, one per unit.
type DiffTable map[Unit]int

// NewDiffTable computes the difference between value and origin in every unit.
func NewDiffTable(value, origin time.Time) DiffTable {
	table := make(DiffTable, len(Units))
	for _, u := range Units {
		table[u] = Diff(u, value, origin)
	}
	return table
}

// Diff returns the signed number of whole units between b and a.
// Unknown units yield 0.
func Diff(unit Unit, a, b time.Time) int {
	switch unit {
	case UnitYear:
		return DiffYears(a, b)
	case UnitQuarter:
		return DiffQuarters(a, b)
	case UnitMonth:
		return DiffMonths(a, b)
	case UnitWeek:
		return DiffWeeks(a, b)
	case UnitDay:
		return DiffDays(a, b)
	case UnitHour:
		return DiffHours(a, b)
	case UnitMinute:
		return DiffMinutes(a, b)
	case UnitSecond:
		return DiffSeconds(a, b)
	}
	return 0
}

// DiffMilliseconds returns a - b in milliseconds.
func DiffMilliseconds(a, b time.Time) int64 {
	return a.UnixMilli() - b.UnixMilli()
}

// DiffSeconds returns a - b in whole seconds, truncated toward zero.
func DiffSeconds(a, b time.Time) int {
	return int(DiffMilliseconds(a, b) / second)
}

// DiffMinutes returns a - b in whole minutes, truncated toward zero.
func DiffMinutes(a, b time.Time) int {
	return int(DiffMilliseconds(a, b) / minute)
}

// DiffHours returns a - b in whole hours, truncated toward zero.
func DiffHours(a, b time.Time) int {
	return int(DiffMilliseconds(a, b) / hour)
}

// DiffDays returns the number of calendar days between b and a.
// Both instants are reduced to local midnight and shifted by their own zone
// offset, so days shortened or lengthened by DST still count as one.
func DiffDays(a, b time.Time) int {
	b = b.In(a.Location())
	init := (wallMidnight(a) - wallMidnight(b)) / day

	return correct(a, b, int(init), func(t time.Time, n int) time.Time {
		return t.AddDate(0, 0, n)
	})
}

// DiffWeeks returns DiffDays / 7, truncated toward zero.
func DiffWeeks(a, b time.Time) int {
	return DiffDays(a, b) / 7
}

// DiffMonths returns the number of whole calendar months between b and a.
func DiffMonths(a, b time.Time) int {
	b = b.In(a.Location())
	init := (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())

	return correct(a, b, init, func(t time.Time, n int) time.Time {
		return t.AddDate(0, n, 0)
	})
}

// DiffQuarters returns DiffMonths / 3, truncated toward zero.
func DiffQuarters(a, b time.Time) int {
	return DiffMonths(a, b) / 3
}

// DiffYears returns the number of whole calendar years between b and a.
func DiffYears(a, b time.Time) int {
	b = b.In(a.Location())
	init := a.Year() - b.Year()

	return correct(a, b, init, func(t time.Time, n int) time.Time {
		return t.AddDate(n, 0, 0)
	})
}

// correct shrinks a candidate unit count by one when stepping a back by that
// many units lands on the far side of b. Month and year steps normalize the
// same way the calendar does, so Jan 31 minus one month may overshoot.
func correct(a, b time.Time, init int, step func(t time.Time, n int) time.Time) int {
	s := sign(DiffMilliseconds(a, b))
	if s == 0 {
		return 0
	}

	n := init
	if n < 0 {
		n = -n
	}

	back := step(a, -s*n)
	if sign(DiffMilliseconds(back, b)) == -s {
		n--
	}

	return s * n
}

// wallMidnight returns the local midnight of t in milliseconds with the zone
// offset at that midnight added back, i.e. a wall-clock day stamp.
func wallMidnight(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	_, offset := midnight.Zone()
	return midnight.UnixMilli() + int64(offset)*second
}

func sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
