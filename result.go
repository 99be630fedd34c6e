package fluentval

import "strings"

// Result is the immutable outcome of a validation pass. The zero value and a nil
// *Result are valid and contain no errors.
type Result struct {
	errors Errors
}

// NewResult builds a Result from a copy of errs.
func NewResult(errs []ValidationError) *Result {
	r := &Result{}
	if len(errs) > 0 {
		r.errors = append(Errors(nil), errs...)
	}
	return r
}

// IsValid reports whether no rule was violated.
func (r *Result) IsValid() bool { return r.Len() == 0 }

// Len returns the number of errors.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.errors)
}

// Errors returns a copy of the errors in the order they were recorded.
func (r *Result) Errors() []ValidationError {
	if r.Len() == 0 {
		return []ValidationError{}
	}
	return append([]ValidationError(nil), r.errors...)
}

// Err returns nil for a valid result and Errors otherwise.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return append(Errors(nil), r.errors...)
}

// Identifier returns the first error recorded under id.
func (r *Result) Identifier(id string) (ValidationError, bool) {
	if r == nil {
		return ValidationError{}, false
	}
	for _, e := range r.errors {
		if e.Identifier == id {
			return e, true
		}
	}
	return ValidationError{}, false
}

// IdentifierStartsWith returns every error whose identifier starts with prefix, in
// recorded order.
func (r *Result) IdentifierStartsWith(prefix string) []ValidationError {
	out := []ValidationError{}
	if r == nil {
		return out
	}
	for _, e := range r.errors {
		if strings.HasPrefix(e.Identifier, prefix) {
			out = append(out, e)
		}
	}
	return out
}
