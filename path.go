package fluentval

import (
	"strconv"
	"strings"
)

// PathRef builds dotted identifiers in a chain-safe way and creates errors.
// It is the explicit counterpart of derived identifiers, mainly for slice
// elements:
//
//	fluentval.Path("items").Index(2).Field("sku").String() // "items.2.sku"
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	String() string
	Error(value any, message string) ValidationError
}

type pathRef struct {
	parts []string
}

// Path returns a PathRef rooted at the given segments. Empty segments are dropped.
func Path(segments ...string) PathRef {
	p := &pathRef{}
	for _, s := range segments {
		if s != "" {
			p.parts = append(p.parts, s)
		}
	}
	return p
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return &pathRef{parts: append(append([]string{}, p.parts...), name)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) String() string { return strings.Join(p.parts, ".") }

func (p *pathRef) Error(value any, message string) ValidationError {
	return ValidationError{Identifier: p.String(), Value: value, Message: message}
}
