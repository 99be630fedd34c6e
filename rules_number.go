package fluentval

// Numeric is the set of types NumberRules can compare.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NumberRules validates one numeric property. Comparisons are exact and typed; a
// nil value skips every check except the presence checks.
type NumberRules[T any, N Numeric] struct {
	rec     recorder
	resolve func() string
	model   *T
	value   *N
}

func newNumberRules[T any, N Numeric](model *T, value *N, resolve func() string) *NumberRules[T, N] {
	return &NumberRules[T, N]{model: model, value: value, resolve: resolve}
}

// Value returns the extracted value, nil when absent.
func (r *NumberRules[T, N]) Value() *N { return r.value }

// NotNull fails when the value is absent.
func (r *NumberRules[T, N]) NotNull(message string, id ...string) *NumberRules[T, N] {
	if r.value == nil {
		r.rec.add(nil, message, id, r.resolve)
	}
	return r
}

// IsNull fails when the value is present.
func (r *NumberRules[T, N]) IsNull(message string, id ...string) *NumberRules[T, N] {
	if r.value != nil {
		r.rec.add(*r.value, message, id, r.resolve)
	}
	return r
}

// Required fails when the value is absent or must(model, value) returns false.
func (r *NumberRules[T, N]) Required(must func(*T, N) bool, message string, id ...string) *NumberRules[T, N] {
	if r.value == nil {
		r.rec.add(nil, message, id, r.resolve)
	} else if must != nil && !must(r.model, *r.value) {
		r.rec.add(*r.value, message, id, r.resolve)
	}
	return r
}

// failUnless records a violation when the value is present and ok rejects it.
func (r *NumberRules[T, N]) failUnless(ok func(N) bool, message string, id []string) *NumberRules[T, N] {
	if r.value != nil && !ok(*r.value) {
		r.rec.add(*r.value, message, id, r.resolve)
	}
	return r
}

// IsNumberEqual fails unless the value equals want.
func (r *NumberRules[T, N]) IsNumberEqual(want N, message string, id ...string) *NumberRules[T, N] {
	return r.failUnless(func(v N) bool { return v == want }, message, id)
}

// IsNumberNotEqual fails when the value equals want.
func (r *NumberRules[T, N]) IsNumberNotEqual(want N, message string, id ...string) *NumberRules[T, N] {
	return r.failUnless(func(v N) bool { return v != want }, message, id)
}

// IsNumberLessThan fails unless the value is less than want.
func (r *NumberRules[T, N]) IsNumberLessThan(want N, message string, id ...string) *NumberRules[T, N] {
	return r.failUnless(func(v N) bool { return v < want }, message, id)
}

// IsNumberLessThanOrEqual fails when the value is greater than want.
func (r *NumberRules[T, N]) IsNumberLessThanOrEqual(want N, message string, id ...string) *NumberRules[T, N] {
	return r.failUnless(func(v N) bool { return v <= want }, message, id)
}

// IsNumberGreaterThan fails unless the value is greater than want.
func (r *NumberRules[T, N]) IsNumberGreaterThan(want N, message string, id ...string) *NumberRules[T, N] {
	return r.failUnless(func(v N) bool { return v > want }, message, id)
}

// IsNumberGreaterThanOrEqual fails when the value is less than want.
func (r *NumberRules[T, N]) IsNumberGreaterThanOrEqual(want N, message string, id ...string) *NumberRules[T, N] {
	return r.failUnless(func(v N) bool { return v >= want }, message, id)
}

// ToResult returns the errors recorded by this rule set only.
func (r *NumberRules[T, N]) ToResult() *Result { return r.rec.result() }
