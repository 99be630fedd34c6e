package fluentval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	fv "github.com/reoring/fluentval"
)

type order struct {
	ID       string    `json:"id"`
	Customer *Customer `json:"customer"`
	Lines    []Item    `json:"lines"`
	internal int
}

func TestPathOf(t *testing.T) {
	assert.Equal(t, "id", fv.PathOf(func(o *order) *string { return &o.ID }))
	assert.Equal(t, "customer.address.city", fv.PathOf(func(o *order) *string { return &o.Customer.Address.City }))
	assert.Equal(t, "customer.billing.zip", fv.PathOf(func(o *order) **string { return &o.Customer.Billing.Zip }))
	assert.Equal(t, "lines", fv.PathOf(func(o *order) *[]Item { return &o.Lines }))

	tok := fv.FieldOf(func(o *order) *string { return &o.Customer.Name })
	assert.Equal(t, "customer.name", tok.Path())
	assert.Equal(t, "customer.name.first", tok.Ref().Field("first").String())
}

func TestPathOf_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "fluentval.PathOf: selector must not be nil", func() {
		fv.PathOf[order, string](nil)
	})
	assert.Panics(t, func() { fv.PathOf(func(o *order) *int { return &o.internal }) })
	assert.Panics(t, func() { fv.PathOf(func(o *order) *order { return o }) })
	assert.Panics(t, func() {
		x := 1
		fv.PathOf(func(*order) *int { return &x })
	})
}

func TestPathRef(t *testing.T) {
	p := fv.Path("items").Index(2).Field("sku")
	assert.Equal(t, "items.2.sku", p.String())
	assert.Equal(t, "items", fv.Path("", "items", "").String())
	assert.Equal(t, "", fv.Path().String())
	assert.Equal(t, "a", fv.Path().Field("").Field("a").String())

	base := fv.Path("lines")
	_ = base.Index(0)
	assert.Equal(t, "lines.1", base.Index(1).String(), "builders do not share state")

	e := p.Error("x", "duplicate")
	assert.Equal(t, fv.ValidationError{Identifier: "items.2.sku", Value: "x", Message: "duplicate"}, e)
}
