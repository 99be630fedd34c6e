// Package predicate compiles boolean expressions over a model into predicates
// usable with Validator.If and rules.When.
//
// Expressions use the expr language (github.com/expr-lang/expr) and see the
// exported fields of the model by their Go names:
//
//	p := predicate.MustCompile[Order](`Status == "shipped" && Total > 100 && isEmail(Email)`)
//	v.If(p.Func(), func(v *fluentval.Validator[Order]) { ... })
//
// Besides the expr builtins, expressions may call isEmail, isURL, isGUID,
// isCountryCode, isSemVer and isEmpty, which apply the same predicates as the
// corresponding validator checks.
package predicate

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reoring/fluentval/internal/check"
)

const (
	maxExpressionLength = 1000
	maxNodes            = 200
)

// Program is a compiled predicate over *T. It is safe for concurrent use.
type Program[T any] struct {
	src     string
	program *vm.Program
}

// Compile compiles src against the fields of T. The expression must evaluate to a
// boolean.
func Compile[T any](src string) (*Program[T], error) {
	if len(src) > maxExpressionLength {
		return nil, fmt.Errorf("predicate: expression too long (max %d chars): %d chars", maxExpressionLength, len(src))
	}
	var env T
	opts := append([]expr.Option{
		expr.Env(env),
		expr.AsBool(),
		expr.MaxNodes(maxNodes),
	}, functions()...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("predicate: compile %q: %w", src, err)
	}
	return &Program[T]{src: src, program: program}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile[T any](src string) *Program[T] {
	p, err := Compile[T](src)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression.
func (p *Program[T]) String() string { return p.src }

// Eval evaluates the predicate against m. A nil m evaluates to false.
func (p *Program[T]) Eval(m *T) (bool, error) {
	if m == nil {
		return false, nil
	}
	out, err := expr.Run(p.program, *m)
	if err != nil {
		return false, fmt.Errorf("predicate: evaluate %q: %w", p.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("predicate: %q returned %T, not bool", p.src, out)
	}
	return b, nil
}

// Func adapts the program to a plain predicate. Evaluation errors count as false.
func (p *Program[T]) Func() func(*T) bool {
	return func(m *T) bool {
		ok, err := p.Eval(m)
		return err == nil && ok
	}
}

func functions() []expr.Option {
	str := func(name string, fn func(string) bool) expr.Option {
		return expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("%s expects 1 argument", name)
			}
			s, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("%s: argument must be a string", name)
			}
			return fn(s), nil
		}, new(func(string) bool))
	}
	return []expr.Option{
		str("isEmail", check.Email),
		str("isURL", check.URL),
		str("isGUID", check.GUID),
		str("isCountryCode", check.CountryCode),
		str("isSemVer", check.SemVer),
		str("isEmpty", check.Blank),
	}
}
