package fluentval

import "github.com/reoring/fluentval/internal/check"

// StringRules validates one string property. A nil value is absent: presence
// checks see it, every other check skips it. Except for NotEmpty, IsEmpty and
// CreditCard, checks also skip blank (whitespace-only) values.
type StringRules[T any] struct {
	rec   recorder
	sc    stringChecks
	model *T
	value *string
}

func newStringRules[T any](model *T, value *string, resolve func() string) *StringRules[T] {
	r := &StringRules[T]{model: model, value: value}
	r.sc = stringChecks{rec: &r.rec, resolve: resolve}
	return r
}

// Value returns the extracted value, nil when absent.
func (r *StringRules[T]) Value() *string { return r.value }

// NotNull fails when the value is absent.
func (r *StringRules[T]) NotNull(message string, id ...string) *StringRules[T] {
	if r.value == nil {
		r.rec.add(nil, message, id, r.sc.resolve)
	}
	return r
}

// IsNull fails when the value is present.
func (r *StringRules[T]) IsNull(message string, id ...string) *StringRules[T] {
	if r.value != nil {
		r.rec.add(*r.value, message, id, r.sc.resolve)
	}
	return r
}

// Required fails when the value is absent or must(model, value) returns false.
func (r *StringRules[T]) Required(must func(*T, string) bool, message string, id ...string) *StringRules[T] {
	if r.value == nil {
		r.rec.add(nil, message, id, r.sc.resolve)
	} else if must != nil && !must(r.model, *r.value) {
		r.rec.add(*r.value, message, id, r.sc.resolve)
	}
	return r
}

// NotEmpty fails when the value is present but blank.
func (r *StringRules[T]) NotEmpty(message string, id ...string) *StringRules[T] {
	r.sc.notEmpty(r.value, message, id)
	return r
}

// IsEmpty fails when the value is present and not blank.
func (r *StringRules[T]) IsEmpty(message string, id ...string) *StringRules[T] {
	r.sc.isEmpty(r.value, message, id)
	return r
}

// Length fails when the rune count of the value is outside [lo, hi].
func (r *StringRules[T]) Length(lo, hi int, message string, id ...string) *StringRules[T] {
	r.sc.length(r.value, lo, hi, message, id)
	return r
}

// Contains fails when the value does not contain sub.
func (r *StringRules[T]) Contains(sub string, message string, id ...string) *StringRules[T] {
	r.sc.contains(r.value, sub, message, id)
	return r
}

// IsLowercase fails unless the value is all lowercase letters.
func (r *StringRules[T]) IsLowercase(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.Lowercase, message, id)
	return r
}

// IsUppercase fails unless the value is all uppercase letters.
func (r *StringRules[T]) IsUppercase(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.Uppercase, message, id)
	return r
}

// IsMixedcase requires ASCII letters only, with at least one of each case.
func (r *StringRules[T]) IsMixedcase(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.Mixedcase, message, id)
	return r
}

// IsNumeric fails unless the value is all digits.
func (r *StringRules[T]) IsNumeric(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.Numeric, message, id)
	return r
}

// IsAlpha fails unless the value is all ASCII letters.
func (r *StringRules[T]) IsAlpha(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.Alpha, message, id)
	return r
}

// IsAlphaNumeric fails unless the value is ASCII letters and digits.
func (r *StringRules[T]) IsAlphaNumeric(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.AlphaNumeric, message, id)
	return r
}

// IsGUID accepts RFC 4122 versions 1 to 5 in either case.
func (r *StringRules[T]) IsGUID(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.GUID, message, id)
	return r
}

// IsBase64 fails unless the value is padded base64.
func (r *StringRules[T]) IsBase64(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.Base64, message, id)
	return r
}

// IsURL fails unless the value looks like a URL or a www host.
func (r *StringRules[T]) IsURL(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.URL, message, id)
	return r
}

// IsCountryCode accepts ISO 3166-1 alpha-2 codes in upper case.
func (r *StringRules[T]) IsCountryCode(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.CountryCode, message, id)
	return r
}

// Email fails unless the value is an email address.
func (r *StringRules[T]) Email(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.Email, message, id)
	return r
}

// CreditCard accepts Visa, Mastercard, Amex, Discover, Diners Club and JCB numbers
// written without separators. A blank value fails.
func (r *StringRules[T]) CreditCard(message string, id ...string) *StringRules[T] {
	r.sc.creditCard(r.value, message, id)
	return r
}

// IsSemVer accepts strict semantic versions such as "1.4.0-rc.1".
func (r *StringRules[T]) IsSemVer(message string, id ...string) *StringRules[T] {
	r.sc.shape(r.value, check.SemVer, message, id)
	return r
}

// Matches fails when pattern does not match anywhere in the value. pattern uses
// RE2 syntax; an invalid pattern panics.
func (r *StringRules[T]) Matches(pattern string, message string, id ...string) *StringRules[T] {
	r.sc.matches(r.value, pattern, message, id)
	return r
}

// NotMatches fails when pattern matches anywhere in the value.
func (r *StringRules[T]) NotMatches(pattern string, message string, id ...string) *StringRules[T] {
	r.sc.notMatches(r.value, pattern, message, id)
	return r
}

// ToResult returns the errors recorded by this rule set only.
func (r *StringRules[T]) ToResult() *Result { return r.rec.result() }
