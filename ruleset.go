package fluentval

import (
	"fmt"

	"github.com/reoring/fluentval/internal/check"
)

// RuleSet validates one property of untyped value. It exposes the presence checks
// and every string-shape check, the latter applied to the value's string form
// (fmt.Sprint for non-string values). Obtain one through Validator.For.
//
// Every check returns the receiver; chained checks never short-circuit each
// other.
type RuleSet[T any] struct {
	rec   recorder
	sc    stringChecks
	model *T
	value any
	str   *string
}

func newRuleSet[T any](model *T, value any, resolve func() string) *RuleSet[T] {
	rs := &RuleSet[T]{model: model, value: value}
	rs.sc = stringChecks{rec: &rs.rec, resolve: resolve}
	if value != nil {
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		rs.str = &s
	}
	return rs
}

// Value returns the extracted value, nil when absent.
func (r *RuleSet[T]) Value() any { return r.value }

// NotNull fails when the value is absent.
func (r *RuleSet[T]) NotNull(message string, id ...string) *RuleSet[T] {
	if r.value == nil {
		r.rec.add(nil, message, id, r.sc.resolve)
	}
	return r
}

// IsNull fails when the value is present.
func (r *RuleSet[T]) IsNull(message string, id ...string) *RuleSet[T] {
	if r.value != nil {
		r.rec.add(r.value, message, id, r.sc.resolve)
	}
	return r
}

// Required fails when the value is absent or must(model, value) returns false.
func (r *RuleSet[T]) Required(must func(*T, any) bool, message string, id ...string) *RuleSet[T] {
	if r.value == nil || (must != nil && !must(r.model, r.value)) {
		r.rec.add(r.value, message, id, r.sc.resolve)
	}
	return r
}

// NotEmpty fails when the value is present but blank.
func (r *RuleSet[T]) NotEmpty(message string, id ...string) *RuleSet[T] {
	r.sc.notEmpty(r.str, message, id)
	return r
}

// IsEmpty fails when the value is present and not blank.
func (r *RuleSet[T]) IsEmpty(message string, id ...string) *RuleSet[T] {
	r.sc.isEmpty(r.str, message, id)
	return r
}

// Length fails when the rune count of the value is outside [lo, hi].
func (r *RuleSet[T]) Length(lo, hi int, message string, id ...string) *RuleSet[T] {
	r.sc.length(r.str, lo, hi, message, id)
	return r
}

// Contains fails when the value does not contain sub.
func (r *RuleSet[T]) Contains(sub string, message string, id ...string) *RuleSet[T] {
	r.sc.contains(r.str, sub, message, id)
	return r
}

// IsLowercase fails unless the value is all lowercase letters.
func (r *RuleSet[T]) IsLowercase(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.Lowercase, message, id)
	return r
}

// IsUppercase fails unless the value is all uppercase letters.
func (r *RuleSet[T]) IsUppercase(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.Uppercase, message, id)
	return r
}

// IsMixedcase fails unless the value has both lowercase and uppercase letters.
func (r *RuleSet[T]) IsMixedcase(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.Mixedcase, message, id)
	return r
}

// IsNumeric fails unless the value is all digits.
func (r *RuleSet[T]) IsNumeric(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.Numeric, message, id)
	return r
}

// IsAlpha fails unless the value is all ASCII letters.
func (r *RuleSet[T]) IsAlpha(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.Alpha, message, id)
	return r
}

// IsAlphaNumeric fails unless the value is ASCII letters and digits.
func (r *RuleSet[T]) IsAlphaNumeric(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.AlphaNumeric, message, id)
	return r
}

// IsGUID fails unless the value is a hyphenated GUID.
func (r *RuleSet[T]) IsGUID(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.GUID, message, id)
	return r
}

// IsBase64 fails unless the value is padded base64.
func (r *RuleSet[T]) IsBase64(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.Base64, message, id)
	return r
}

// IsURL fails unless the value looks like a URL or a www host.
func (r *RuleSet[T]) IsURL(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.URL, message, id)
	return r
}

// IsCountryCode fails unless the value is a known two-letter country code.
func (r *RuleSet[T]) IsCountryCode(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.CountryCode, message, id)
	return r
}

// Email fails unless the value is an email address.
func (r *RuleSet[T]) Email(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.Email, message, id)
	return r
}

// CreditCard fails unless the value is a card number. A blank value fails.
func (r *RuleSet[T]) CreditCard(message string, id ...string) *RuleSet[T] {
	r.sc.creditCard(r.str, message, id)
	return r
}

// IsSemVer fails unless the value is a strict semantic version.
func (r *RuleSet[T]) IsSemVer(message string, id ...string) *RuleSet[T] {
	r.sc.shape(r.str, check.SemVer, message, id)
	return r
}

// Matches fails when pattern does not match anywhere in the value.
func (r *RuleSet[T]) Matches(pattern string, message string, id ...string) *RuleSet[T] {
	r.sc.matches(r.str, pattern, message, id)
	return r
}

// NotMatches fails when pattern matches anywhere in the value.
func (r *RuleSet[T]) NotMatches(pattern string, message string, id ...string) *RuleSet[T] {
	r.sc.notMatches(r.str, pattern, message, id)
	return r
}

// ToResult returns the errors recorded by this rule set only.
func (r *RuleSet[T]) ToResult() *Result { return r.rec.result() }
