// Package rules provides reusable rule combinators, predicates for
// Validator.If and collection rules.
package rules

import (
	"cmp"
	"fmt"
	"reflect"

	fv "github.com/reoring/fluentval"
)

// Op defines simple comparison operators for Compare.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op Op) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Predicate is a condition over a model, as accepted by Validator.If.
type Predicate[T any] func(*T) bool

// Compare builds a predicate comparing the property acc addresses with want. A nil
// property never satisfies the predicate.
func Compare[T any, F cmp.Ordered](acc func(*T) *F, op Op, want F) Predicate[T] {
	return func(m *T) bool {
		p := acc(m)
		if p == nil {
			return false
		}
		c := cmp.Compare(*p, want)
		switch op {
		case Eq:
			return c == 0
		case Ne:
			return c != 0
		case Lt:
			return c < 0
		case Le:
			return c <= 0
		case Gt:
			return c > 0
		case Ge:
			return c >= 0
		default:
			return false
		}
	}
}

// Equals builds a predicate testing the property acc addresses for equality with
// want, for comparable types that are not ordered (bool, structs, ...).
func Equals[T any, F comparable](acc func(*T) *F, want F) Predicate[T] {
	return func(m *T) bool {
		p := acc(m)
		return p != nil && *p == want
	}
}

// And holds when every predicate holds. Nil predicates are ignored.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(m *T) bool {
		for _, p := range preds {
			if p != nil && !p(m) {
				return false
			}
		}
		return true
	}
}

// Or holds when any predicate holds.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(m *T) bool {
		for _, p := range preds {
			if p != nil && p(m) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(m *T) bool { return !p(m) }
}

// ---------- Rule combinators ----------

// All combines rules into one, applied in order.
func All[T any](rules ...fv.Rule[T]) fv.Rule[T] {
	return func(v *fv.Validator[T]) { v.Apply(rules...) }
}

// When applies rules only when pred holds for the model. The rules run on a
// validator over the same model, as with Validator.If.
func When[T any](pred Predicate[T], rules ...fv.Rule[T]) fv.Rule[T] {
	return func(v *fv.Validator[T]) {
		v.If(pred, func(c *fv.Validator[T]) { c.Apply(rules...) })
	}
}

// AtLeastOne requires the slice acc addresses to have at least one element.
func AtLeastOne[T, E any](acc func(*T) *[]E, message string, id ...string) fv.Rule[T] {
	return func(v *fv.Validator[T]) {
		v.Required(func(m *T) any { return acc(m) }, func(_ *T, val any) bool {
			return reflect.ValueOf(val).Len() > 0
		}, message, id...)
	}
}

// UniqueBy requires the elements of the slice acc addresses to have distinct keys.
// Every element repeating an earlier key is reported under "<slice>.<index>",
// where <slice> is the identifier derived for acc.
func UniqueBy[T, E any, K comparable](acc func(*T) *[]E, key func(E) K, message string) fv.Rule[T] {
	return func(v *fv.Validator[T]) {
		items := acc(v.Model())
		if items == nil {
			return
		}
		base := fv.Path(v.Identifier(func(m *T) any { return acc(m) }))
		seen := make(map[K]int, len(*items))
		for i, it := range *items {
			k := key(it)
			if _, dup := seen[k]; dup {
				v.AddError(base.Index(i).String(), k, message)
				continue
			}
			seen[k] = i
		}
	}
}
