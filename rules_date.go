package fluentval

import (
	"time"

	"github.com/reoring/fluentval/internal/check"
)

// DateRules validates one time.Time property by calendar day: both operands of a
// comparison are truncated to midnight in their own location first. The model is
// never modified. A nil value skips every check except the presence checks; a
// zero time.Time is a value.
type DateRules[T any] struct {
	rec     recorder
	resolve func() string
	model   *T
	value   *time.Time
}

func newDateRules[T any](model *T, value *time.Time, resolve func() string) *DateRules[T] {
	return &DateRules[T]{model: model, value: value, resolve: resolve}
}

// Value returns the extracted value, nil when absent.
func (r *DateRules[T]) Value() *time.Time { return r.value }

// NotNull fails when the value is absent.
func (r *DateRules[T]) NotNull(message string, id ...string) *DateRules[T] {
	if r.value == nil {
		r.rec.add(nil, message, id, r.resolve)
	}
	return r
}

// IsNull fails when the value is present.
func (r *DateRules[T]) IsNull(message string, id ...string) *DateRules[T] {
	if r.value != nil {
		r.rec.add(*r.value, message, id, r.resolve)
	}
	return r
}

// Required fails when the value is absent or must(model, value) returns false.
func (r *DateRules[T]) Required(must func(*T, time.Time) bool, message string, id ...string) *DateRules[T] {
	if r.value == nil {
		r.rec.add(nil, message, id, r.resolve)
	} else if must != nil && !must(r.model, *r.value) {
		r.rec.add(*r.value, message, id, r.resolve)
	}
	return r
}

func (r *DateRules[T]) failUnless(ok func(time.Time) bool, message string, id []string) *DateRules[T] {
	if r.value != nil && !ok(*r.value) {
		r.rec.add(*r.value, message, id, r.resolve)
	}
	return r
}

// IsDateOn fails unless the value falls on the same day as date.
func (r *DateRules[T]) IsDateOn(date time.Time, message string, id ...string) *DateRules[T] {
	return r.failUnless(func(v time.Time) bool { return check.SameDay(v, date) }, message, id)
}

// IsDateAfter fails unless the value falls on a later day than date.
func (r *DateRules[T]) IsDateAfter(date time.Time, message string, id ...string) *DateRules[T] {
	return r.failUnless(func(v time.Time) bool { return check.CompareDays(v, date) > 0 }, message, id)
}

// IsDateOnOrAfter fails when the value falls on an earlier day than date.
func (r *DateRules[T]) IsDateOnOrAfter(date time.Time, message string, id ...string) *DateRules[T] {
	return r.failUnless(func(v time.Time) bool { return check.CompareDays(v, date) >= 0 }, message, id)
}

// IsDateBefore fails unless the value falls on an earlier day than date.
func (r *DateRules[T]) IsDateBefore(date time.Time, message string, id ...string) *DateRules[T] {
	return r.failUnless(func(v time.Time) bool { return check.CompareDays(v, date) < 0 }, message, id)
}

// IsDateOnOrBefore fails when the value falls on a later day than date.
func (r *DateRules[T]) IsDateOnOrBefore(date time.Time, message string, id ...string) *DateRules[T] {
	return r.failUnless(func(v time.Time) bool { return check.CompareDays(v, date) <= 0 }, message, id)
}

// IsDateBetween fails unless the value lies between lo and hi, bounds included when
// inclusive is set.
func (r *DateRules[T]) IsDateBetween(lo, hi time.Time, inclusive bool, message string, id ...string) *DateRules[T] {
	return r.failUnless(func(v time.Time) bool { return check.DayBetween(v, lo, hi, inclusive) }, message, id)
}

// IsDateLeapYear fails unless the value's year is a Gregorian leap year.
func (r *DateRules[T]) IsDateLeapYear(message string, id ...string) *DateRules[T] {
	return r.failUnless(func(v time.Time) bool { return check.LeapYear(v.Year()) }, message, id)
}

// ToResult returns the errors recorded by this rule set only.
func (r *DateRules[T]) ToResult() *Result { return r.rec.result() }
