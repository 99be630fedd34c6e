package fluentval

import (
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/reoring/fluentval/shadow"
)

// Selector extracts a property from a model without a static type. Returning a
// pointer to the property (for example &m.Name) lets the validator derive the
// identifier; any other return value is validated as is and yields an empty
// derived identifier.
type Selector[T any] func(*T) any

// Rule is a reusable group of checks applied with Validator.Apply.
type Rule[T any] func(*Validator[T])

// Validator is a fluent validator bound to one model. Every method records the
// violations it finds and returns the receiver, so checks chain:
//
//	res := fluentval.New(&user).
//		NotEmpty(func(u *User) *string { return &u.Name }, "name is required").
//		Email(func(u *User) *string { return &u.Email }, "invalid email").
//		ToResult()
//
// Identifiers are derived from accessors by replaying them against a shadow copy
// of the model; pass an explicit identifier as the last argument to override.
// A Validator is not safe for concurrent use.
type Validator[T any] struct {
	rec    recorder
	model  *T
	shadow *shadow.Shadow
	cfg    *settings
	prefix string
}

// New returns a validator over model. model must not be nil.
func New[T any](model *T, opts ...Option) *Validator[T] {
	if model == nil {
		panic("fluentval.New: model must not be nil")
	}
	return newValidator(model, newSettings(opts), "")
}

func newValidator[T any](model *T, cfg *settings, prefix string) *Validator[T] {
	return &Validator[T]{
		model:  model,
		shadow: cfg.cache.Load(model),
		cfg:    cfg,
		prefix: prefix,
	}
}

// Model returns the model the validator is bound to.
func (v *Validator[T]) Model() *T { return v.model }

// pathOf replays sel against the shadow and returns the derived identifier, or ""
// when sel cannot be resolved. It never panics.
func (v *Validator[T]) pathOf(sel func(*T) any) (path string) {
	if v.shadow == nil {
		return ""
	}
	root, ok := v.shadow.Root().(*T)
	if !ok {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			v.cfg.logger.Debug("identifier resolution failed",
				zap.Stringer("type", v.shadow.Type()), zap.Any("panic", r))
			path = ""
		}
	}()
	p, found := v.shadow.Lookup(sel(root))
	if !found {
		v.cfg.logger.Debug("accessor does not address a property",
			zap.Stringer("type", v.shadow.Type()))
		return ""
	}
	return v.qualify(p)
}

// Identifier returns the identifier derived for sel, as used when a check on sel
// fails without an explicit identifier.
func (v *Validator[T]) Identifier(sel Selector[T]) string { return v.pathOf(sel) }

func (v *Validator[T]) qualify(p string) string {
	return shadow.JoinPath(v.prefix, p)
}

// resolver returns a lazy identifier resolver for sel.
func (v *Validator[T]) resolver(sel func(*T) any) func() string {
	return func() string { return v.pathOf(sel) }
}

// childPrefix is the prefix handed to a nested validator in qualified mode.
func (v *Validator[T]) childPrefix(sel func(*T) any) string {
	if !v.cfg.qualified {
		return ""
	}
	return v.pathOf(sel)
}

// extract turns what a selector returned into the value under validation.
// Pointers are dereferenced until a non-pointer is reached; a nil pointer on the
// way yields nil, the absent value.
func extract(raw any) any {
	if raw == nil {
		return nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Pointer {
		return raw
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

// For applies fn to an untyped rule set over the property sel selects.
func (v *Validator[T]) For(sel Selector[T], fn func(*RuleSet[T])) *Validator[T] {
	rs := newRuleSet(v.model, extract(sel(v.model)), v.resolver(sel))
	if fn != nil {
		fn(rs)
	}
	v.rec.merge(rs.rec.errs)
	return v
}

// ForString applies fn to the string rules of the property acc addresses. A nil
// pointer is an absent value.
func (v *Validator[T]) ForString(acc func(*T) *string, fn func(*StringRules[T])) *Validator[T] {
	sel := func(m *T) any { return acc(m) }
	rs := newStringRules(v.model, acc(v.model), v.resolver(sel))
	if fn != nil {
		fn(rs)
	}
	v.rec.merge(rs.rec.errs)
	return v
}

// ForDate applies fn to the date rules of the property acc addresses.
func (v *Validator[T]) ForDate(acc func(*T) *time.Time, fn func(*DateRules[T])) *Validator[T] {
	sel := func(m *T) any { return acc(m) }
	rs := newDateRules(v.model, acc(v.model), v.resolver(sel))
	if fn != nil {
		fn(rs)
	}
	v.rec.merge(rs.rec.errs)
	return v
}

// ForInt is ForNumber for int properties.
func (v *Validator[T]) ForInt(acc func(*T) *int, fn func(*NumberRules[T, int])) *Validator[T] {
	return ForNumber(v, acc, fn)
}

// ForInt64 is ForNumber for int64 properties.
func (v *Validator[T]) ForInt64(acc func(*T) *int64, fn func(*NumberRules[T, int64])) *Validator[T] {
	return ForNumber(v, acc, fn)
}

// ForFloat64 is ForNumber for float64 properties.
func (v *Validator[T]) ForFloat64(acc func(*T) *float64, fn func(*NumberRules[T, float64])) *Validator[T] {
	return ForNumber(v, acc, fn)
}

// ForNumber applies fn to the number rules of the property acc addresses.
func ForNumber[T any, N Numeric](v *Validator[T], acc func(*T) *N, fn func(*NumberRules[T, N])) *Validator[T] {
	sel := func(m *T) any { return acc(m) }
	rs := newNumberRules(v.model, acc(v.model), v.resolver(sel))
	if fn != nil {
		fn(rs)
	}
	v.rec.merge(rs.rec.errs)
	return v
}

// ForType validates the sub-object acc addresses with a nested validator. A nil
// sub-object is skipped. Derived identifiers inside fn are relative to the
// sub-object unless WithQualifiedPaths is set.
func ForType[T, S any](v *Validator[T], acc func(*T) *S, fn func(*Validator[S])) *Validator[T] {
	sub := acc(v.model)
	if sub == nil || fn == nil {
		return v
	}
	child := newValidator(sub, v.cfg, v.childPrefix(func(m *T) any { return acc(m) }))
	fn(child)
	v.rec.merge(child.rec.errs)
	return v
}

// ForEach validates every element of the slice acc addresses with its own nested
// validator, in order. Nothing happens for a nil or empty slice.
func ForEach[T, E any](v *Validator[T], acc func(*T) *[]E, fn func(*Validator[E])) *Validator[T] {
	if fn == nil {
		return v
	}
	return ForEachIndexed(v, acc, func(_ int, ev *Validator[E]) { fn(ev) })
}

// ForEachIndexed is ForEach with the element index passed to fn, for building
// explicit identifiers with Path.
func ForEachIndexed[T, E any](v *Validator[T], acc func(*T) *[]E, fn func(int, *Validator[E])) *Validator[T] {
	items := acc(v.model)
	if items == nil || len(*items) == 0 || fn == nil {
		return v
	}
	base := v.childPrefix(func(m *T) any { return acc(m) })
	for i := range *items {
		prefix := ""
		if base != "" {
			prefix = Path(base).Index(i).String()
		}
		child := newValidator(&(*items)[i], v.cfg, prefix)
		fn(i, child)
		v.rec.merge(child.rec.errs)
	}
	return v
}

// If applies then to a validator over the same model when pred holds.
func (v *Validator[T]) If(pred func(*T) bool, then func(*Validator[T])) *Validator[T] {
	if pred == nil || then == nil || !pred(v.model) {
		return v
	}
	child := newValidator(v.model, v.cfg, v.prefix)
	then(child)
	v.rec.merge(child.rec.errs)
	return v
}

// Apply runs rules against the validator in order.
func (v *Validator[T]) Apply(rules ...Rule[T]) *Validator[T] {
	for _, r := range rules {
		if r != nil {
			r(v)
		}
	}
	return v
}

// Type wraps ForType as a Rule.
func Type[T, S any](acc func(*T) *S, fn func(*Validator[S])) Rule[T] {
	return func(v *Validator[T]) { ForType(v, acc, fn) }
}

// Each wraps ForEach as a Rule.
func Each[T, E any](acc func(*T) *[]E, fn func(*Validator[E])) Rule[T] {
	return func(v *Validator[T]) { ForEach(v, acc, fn) }
}

// Number wraps ForNumber as a Rule.
func Number[T any, N Numeric](acc func(*T) *N, fn func(*NumberRules[T, N])) Rule[T] {
	return func(v *Validator[T]) { ForNumber(v, acc, fn) }
}

// Required fails when the selected value is absent or must(model, value) returns
// false.
func (v *Validator[T]) Required(sel Selector[T], must func(*T, any) bool, message string, id ...string) *Validator[T] {
	return v.For(sel, func(r *RuleSet[T]) { r.Required(must, message, id...) })
}

// NotNull fails when the selected value is absent.
func (v *Validator[T]) NotNull(sel Selector[T], message string, id ...string) *Validator[T] {
	return v.For(sel, func(r *RuleSet[T]) { r.NotNull(message, id...) })
}

// IsNull fails when the selected value is present.
func (v *Validator[T]) IsNull(sel Selector[T], message string, id ...string) *Validator[T] {
	return v.For(sel, func(r *RuleSet[T]) { r.IsNull(message, id...) })
}

// AddError records a violation directly. It is the escape hatch for rules that
// do not fit a rule set.
func (v *Validator[T]) AddError(identifier string, value any, message string) *Validator[T] {
	v.rec.errs = append(v.rec.errs, ValidationError{Identifier: identifier, Value: value, Message: message})
	return v
}

// ToResult returns every error recorded so far, nested ones included, in the
// order the checks ran.
func (v *Validator[T]) ToResult() *Result { return v.rec.result() }

// Exec is an alias of ToResult.
func (v *Validator[T]) Exec() *Result { return v.ToResult() }
