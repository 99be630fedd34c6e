package fluentval

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single rule violation.
type ValidationError struct {
	// Identifier names the offending property: either supplied by the caller or
	// derived from the accessor (for example "address.city"). It is empty when the
	// accessor could not be resolved.
	Identifier string
	// Value is the value that failed the rule; nil for a missing value.
	Value   any
	Message string
}

// Error implements error.
func (e ValidationError) Error() string {
	if e.Identifier == "" {
		return e.Message
	}
	return e.Identifier + ": " + e.Message
}

// Errors is an ordered collection of validation errors that implements error.
type Errors []ValidationError

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(es), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(es[i].Error())
	}
	if len(es) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(es))
	}
	return b.String()
}

// AppendErrors appends errors to the destination, initializing the slice when
// needed.
func AppendErrors(dst Errors, more ...ValidationError) Errors {
	if dst == nil {
		dst = Errors{}
	}
	return append(dst, more...)
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}
