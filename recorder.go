package fluentval

import (
	"strings"

	"github.com/reoring/fluentval/internal/check"
)

// recorder accumulates violations for one validator or rule set.
type recorder struct {
	errs []ValidationError
}

// add appends one violation. The first id, when present, is used verbatim;
// otherwise the identifier comes from resolve.
func (r *recorder) add(value any, message string, id []string, resolve func() string) {
	var ident string
	switch {
	case len(id) > 0:
		ident = id[0]
	case resolve != nil:
		ident = resolve()
	}
	r.errs = append(r.errs, ValidationError{Identifier: ident, Value: value, Message: message})
}

func (r *recorder) merge(errs []ValidationError) {
	r.errs = append(r.errs, errs...)
}

func (r *recorder) result() *Result { return NewResult(r.errs) }

// stringChecks implements the string-shape family over an optional string. It is
// shared by RuleSet and StringRules.
type stringChecks struct {
	rec     *recorder
	resolve func() string
}

// shape records a violation when s is present, not blank and rejected by valid.
func (c stringChecks) shape(s *string, valid func(string) bool, message string, id []string) {
	if s == nil || check.Blank(*s) {
		return
	}
	if !valid(*s) {
		c.rec.add(*s, message, id, c.resolve)
	}
}

func (c stringChecks) notEmpty(s *string, message string, id []string) {
	if s != nil && check.Blank(*s) {
		c.rec.add(*s, message, id, c.resolve)
	}
}

func (c stringChecks) isEmpty(s *string, message string, id []string) {
	if s != nil && !check.Blank(*s) {
		c.rec.add(*s, message, id, c.resolve)
	}
}

func (c stringChecks) length(s *string, lo, hi int, message string, id []string) {
	c.shape(s, func(v string) bool { return check.LengthBetween(v, lo, hi) }, message, id)
}

func (c stringChecks) contains(s *string, sub string, message string, id []string) {
	c.shape(s, func(v string) bool { return strings.Contains(v, sub) }, message, id)
}

func (c stringChecks) matches(s *string, pattern string, message string, id []string) {
	re := check.Pattern(pattern)
	c.shape(s, re.MatchString, message, id)
}

func (c stringChecks) notMatches(s *string, pattern string, message string, id []string) {
	re := check.Pattern(pattern)
	c.shape(s, func(v string) bool { return !re.MatchString(v) }, message, id)
}

// creditCard does not skip blank values: an empty number is not a card number.
func (c stringChecks) creditCard(s *string, message string, id []string) {
	if s != nil && !check.CreditCard(*s) {
		c.rec.add(*s, message, id, c.resolve)
	}
}
