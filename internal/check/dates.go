package check

import "time"

// CompareDays compares the calendar days of a and b, each read in its own
// location, returning -1, 0 or +1.
func CompareDays(a, b time.Time) int {
	return civil(a).Compare(civil(b))
}

// civil moves the calendar day of t to midnight UTC so that days read in
// different locations compare by (year, month, day) alone.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day, each read in its
// own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayBetween reports whether t lies between lo and hi by calendar day.
func DayBetween(t, lo, hi time.Time, inclusive bool) bool {
	if inclusive {
		return CompareDays(lo, t) <= 0 && CompareDays(t, hi) <= 0
	}
	return CompareDays(lo, t) < 0 && CompareDays(t, hi) < 0
}

// LeapYear applies the Gregorian rule.
func LeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
