package predicate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fv "github.com/reoring/fluentval"
	"github.com/reoring/fluentval/predicate"
	"github.com/reoring/fluentval/shadow"
)

type Order struct {
	Status  string
	Total   float64
	Email   string
	Country string
	Items   []string
}

func TestCompileAndEval(t *testing.T) {
	p, err := predicate.Compile[Order](`Status == "shipped" && Total > 100 && len(Items) > 0`)
	require.NoError(t, err)

	ok, err := p.Eval(&Order{Status: "shipped", Total: 150, Items: []string{"a"}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Eval(&Order{Status: "shipped", Total: 50, Items: []string{"a"}})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Eval(nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, p.String(), "shipped")
}

func TestCompileErrors(t *testing.T) {
	_, err := predicate.Compile[Order](`Unknown == 1`)
	assert.Error(t, err)

	_, err = predicate.Compile[Order](`Total + 1`)
	assert.Error(t, err, "non-boolean expressions are rejected")

	_, err = predicate.Compile[Order](strings.Repeat("true && ", 200) + "true")
	assert.Error(t, err)

	assert.Panics(t, func() { predicate.MustCompile[Order](`Status ==`) })
}

func TestFunctions(t *testing.T) {
	p := predicate.MustCompile[Order](`isEmail(Email) && isCountryCode(Country) && !isEmpty(Status)`)
	assert.True(t, p.Func()(&Order{Email: "a@example.com", Country: "JP", Status: "new"}))
	assert.False(t, p.Func()(&Order{Email: "a@example.com", Country: "XX", Status: "new"}))
	assert.False(t, p.Func()(&Order{Email: "a@example.com", Country: "JP", Status: " "}))

	assert.True(t, predicate.MustCompile[Order](`isSemVer("1.2.3") && isGUID("0f8fad5b-d9cb-469f-a165-70867728950e") && isURL("https://x.io")`).Func()(&Order{}))
}

func TestFuncDrivesConditionalRules(t *testing.T) {
	express := predicate.MustCompile[Order](`Total >= 1000`).Func()
	rules := func(v *fv.Validator[Order]) {
		v.If(express, func(v *fv.Validator[Order]) {
			v.IsCountryCode(func(o *Order) *string { return &o.Country }, "country required for large orders")
		})
	}

	small := fv.New(&Order{Total: 10, Country: "nowhere"}, fv.WithCache(shadow.NewCache()))
	rules(small)
	assert.True(t, small.ToResult().IsValid())

	large := fv.New(&Order{Total: 5000, Country: "nowhere"}, fv.WithCache(shadow.NewCache()))
	rules(large)
	e, ok := large.ToResult().Identifier("Country")
	require.True(t, ok)
	assert.Equal(t, "nowhere", e.Value)
}
