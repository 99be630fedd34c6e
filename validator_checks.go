package fluentval

import (
	"fmt"
	"time"

	"github.com/reoring/fluentval/internal/check"
)

// The inline checks below are shorthands for a single check inside ForString,
// ForDate or For; they share the semantics documented on StringRules, DateRules
// and RuleSet.

// NotEmpty fails when the value is present but blank.
func (v *Validator[T]) NotEmpty(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.NotEmpty(message, id...) })
}

// IsEmpty fails when the value is present and not blank.
func (v *Validator[T]) IsEmpty(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsEmpty(message, id...) })
}

// Length fails when the rune count is outside [lo, hi].
func (v *Validator[T]) Length(acc func(*T) *string, lo, hi int, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.Length(lo, hi, message, id...) })
}

// Contains fails when the value does not contain sub.
func (v *Validator[T]) Contains(acc func(*T) *string, sub string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.Contains(sub, message, id...) })
}

// IsLowercase fails unless the value is all lowercase letters.
func (v *Validator[T]) IsLowercase(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsLowercase(message, id...) })
}

// IsUppercase fails unless the value is all uppercase letters.
func (v *Validator[T]) IsUppercase(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsUppercase(message, id...) })
}

// IsMixedcase fails unless the value has both lowercase and uppercase letters.
func (v *Validator[T]) IsMixedcase(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsMixedcase(message, id...) })
}

// IsNumeric fails unless the value is all digits.
func (v *Validator[T]) IsNumeric(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsNumeric(message, id...) })
}

// IsAlpha fails unless the value is all ASCII letters.
func (v *Validator[T]) IsAlpha(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsAlpha(message, id...) })
}

// IsAlphaNumeric fails unless the value is ASCII letters and digits.
func (v *Validator[T]) IsAlphaNumeric(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsAlphaNumeric(message, id...) })
}

// IsGUID fails unless the value is a hyphenated GUID.
func (v *Validator[T]) IsGUID(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsGUID(message, id...) })
}

// IsBase64 fails unless the value is padded base64.
func (v *Validator[T]) IsBase64(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsBase64(message, id...) })
}

// IsURL fails unless the value looks like a URL or a www host.
func (v *Validator[T]) IsURL(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsURL(message, id...) })
}

// IsCountryCode fails unless the value is a known two-letter country code.
func (v *Validator[T]) IsCountryCode(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsCountryCode(message, id...) })
}

// Email fails unless the value is an email address.
func (v *Validator[T]) Email(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.Email(message, id...) })
}

// CreditCard fails unless the value is a card number. A blank value fails.
func (v *Validator[T]) CreditCard(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.CreditCard(message, id...) })
}

// IsSemVer fails unless the value is a strict semantic version.
func (v *Validator[T]) IsSemVer(acc func(*T) *string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.IsSemVer(message, id...) })
}

// Matches fails when pattern does not match the value. An invalid pattern panics.
func (v *Validator[T]) Matches(acc func(*T) *string, pattern string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.Matches(pattern, message, id...) })
}

// NotMatches fails when pattern matches the value.
func (v *Validator[T]) NotMatches(acc func(*T) *string, pattern string, message string, id ...string) *Validator[T] {
	return v.ForString(acc, func(r *StringRules[T]) { r.NotMatches(pattern, message, id...) })
}
// IsDateOn fails unless the value falls on the same day as date.
func (v *Validator[T]) IsDateOn(acc func(*T) *time.Time, date time.Time, message string, id ...string) *Validator[T] {
	return v.ForDate(acc, func(r *DateRules[T]) { r.IsDateOn(date, message, id...) })
}

// IsDateAfter fails unless the value falls on a later day than date.
func (v *Validator[T]) IsDateAfter(acc func(*T) *time.Time, date time.Time, message string, id ...string) *Validator[T] {
	return v.ForDate(acc, func(r *DateRules[T]) { r.IsDateAfter(date, message, id...) })
}

// IsDateOnOrAfter fails when the value falls on an earlier day than date.
func (v *Validator[T]) IsDateOnOrAfter(acc func(*T) *time.Time, date time.Time, message string, id ...string) *Validator[T] {
	return v.ForDate(acc, func(r *DateRules[T]) { r.IsDateOnOrAfter(date, message, id...) })
}

// IsDateBefore fails unless the value falls on an earlier day than date.
func (v *Validator[T]) IsDateBefore(acc func(*T) *time.Time, date time.Time, message string, id ...string) *Validator[T] {
	return v.ForDate(acc, func(r *DateRules[T]) { r.IsDateBefore(date, message, id...) })
}

// IsDateOnOrBefore fails when the value falls on a later day than date.
func (v *Validator[T]) IsDateOnOrBefore(acc func(*T) *time.Time, date time.Time, message string, id ...string) *Validator[T] {
	return v.ForDate(acc, func(r *DateRules[T]) { r.IsDateOnOrBefore(date, message, id...) })
}

// IsDateBetween fails unless the value falls between lo and hi by day.
func (v *Validator[T]) IsDateBetween(acc func(*T) *time.Time, lo, hi time.Time, inclusive bool, message string, id ...string) *Validator[T] {
	return v.ForDate(acc, func(r *DateRules[T]) { r.IsDateBetween(lo, hi, inclusive, message, id...) })
}

// IsDateLeapYear fails unless the value falls in a leap year.
func (v *Validator[T]) IsDateLeapYear(acc func(*T) *time.Time, message string, id ...string) *Validator[T] {
	return v.ForDate(acc, func(r *DateRules[T]) { r.IsDateLeapYear(message, id...) })
}

// compareNumber records a violation when the selected value is present and ok
// rejects its ordering against want. Operands of different numeric families
// (integer against float) or non-numeric operands panic.
func (v *Validator[T]) compareNumber(name string, sel Selector[T], want any, ok func(int) bool, message string, id []string) *Validator[T] {
	val := extract(sel(v.model))
	if val == nil {
		return v
	}
	c, comparable := check.CompareNumbers(val, want)
	if !comparable {
		panic(fmt.Sprintf("fluentval.%s: cannot compare %T with %T", name, val, want))
	}
	if !ok(c) {
		v.rec.add(val, message, id, v.resolver(sel))
	}
	return v
}

// IsNumberEqual fails unless the selected number equals want. Integers of any
// width compare exactly with integers, floats with floats.
func (v *Validator[T]) IsNumberEqual(sel Selector[T], want any, message string, id ...string) *Validator[T] {
	return v.compareNumber("IsNumberEqual", sel, want, func(c int) bool { return c == 0 }, message, id)
}

// IsNumberNotEqual fails when the value equals want.
func (v *Validator[T]) IsNumberNotEqual(sel Selector[T], want any, message string, id ...string) *Validator[T] {
	return v.compareNumber("IsNumberNotEqual", sel, want, func(c int) bool { return c != 0 }, message, id)
}

// IsNumberLessThan fails unless the value is less than want.
func (v *Validator[T]) IsNumberLessThan(sel Selector[T], want any, message string, id ...string) *Validator[T] {
	return v.compareNumber("IsNumberLessThan", sel, want, func(c int) bool { return c < 0 }, message, id)
}

// IsNumberLessThanOrEqual fails when the value is greater than want.
func (v *Validator[T]) IsNumberLessThanOrEqual(sel Selector[T], want any, message string, id ...string) *Validator[T] {
	return v.compareNumber("IsNumberLessThanOrEqual", sel, want, func(c int) bool { return c <= 0 }, message, id)
}

// IsNumberGreaterThan fails unless the value is greater than want.
func (v *Validator[T]) IsNumberGreaterThan(sel Selector[T], want any, message string, id ...string) *Validator[T] {
	return v.compareNumber("IsNumberGreaterThan", sel, want, func(c int) bool { return c > 0 }, message, id)
}

// IsNumberGreaterThanOrEqual fails when the value is less than want.
func (v *Validator[T]) IsNumberGreaterThanOrEqual(sel Selector[T], want any, message string, id ...string) *Validator[T] {
	return v.compareNumber("IsNumberGreaterThanOrEqual", sel, want, func(c int) bool { return c >= 0 }, message, id)
}
