package fluentval

import (
	"reflect"

	"github.com/reoring/fluentval/shadow"
)

// PathOf returns the dotted path of the property selector addresses, computed on a
// zero value of T. Nil pointers along the way are allocated, so selectors may
// cross pointer fields:
//
//	fluentval.PathOf(func(o *Order) *string { return &o.Customer.Address.City }) // "customer.address.city"
//
// PathOf panics when selector does not return the address of a property of T.
// The result is suitable as an explicit identifier or for generated constants.
func PathOf[T any, F any](selector func(*T) *F) string {
	if selector == nil {
		panic("fluentval.PathOf: selector must not be nil")
	}
	s := shadow.Build(new(T), shadow.WithZeroFill(true))
	root := s.Root().(*T)
	p, ok := s.Lookup(selector(root))
	if !ok || p == "" {
		panic("fluentval.PathOf: selector must return the address of a property of " + reflect.TypeFor[T]().String())
	}
	return p
}

// FieldToken identifies a property of T by its path. Obtain it via FieldOf to keep
// the path linked to the struct field at compile time.
type FieldToken[T any] struct {
	path string
}

// FieldOf builds a FieldToken for the property selector addresses.
func FieldOf[T any, F any](selector func(*T) *F) FieldToken[T] {
	return FieldToken[T]{path: PathOf(selector)}
}

// Path returns the dotted path of the token.
func (t FieldToken[T]) Path() string { return t.path }

// Ref returns a PathRef anchored at the token.
func (t FieldToken[T]) Ref() PathRef { return Path(t.path) }
