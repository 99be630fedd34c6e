package fluentval_test

import (
	"time"

	fv "github.com/reoring/fluentval"
	"github.com/reoring/fluentval/shadow"
)

type Address struct {
	Street string  `json:"street"`
	City   string  `json:"city"`
	Zip    *string `json:"zip"`
}

type Item struct {
	SKU   string  `json:"sku"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type Customer struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Nickname *string    `json:"nickname"`
	Age      int        `json:"age"`
	Score    int64      `json:"score"`
	Balance  float64    `json:"balance"`
	Discount *float64   `json:"discount"`
	Level    uint8      `json:"level"`
	Born     time.Time  `json:"born"`
	Renewed  *time.Time `json:"renewed"`
	Address  Address    `json:"address"`
	Billing  *Address   `json:"billing"`
	Items    []Item     `json:"items"`
	Tags     []string   `json:"tags"`
}

func ptr[V any](v V) *V { return &v }

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

// validCustomer passes every rule used in these tests.
func validCustomer() *Customer {
	return &Customer{
		ID:      "c1",
		Name:    "Alice",
		Email:   "alice@example.com",
		Age:     30,
		Score:   10,
		Balance: 12.5,
		Born:    day(2000, time.February, 29, 10),
		Address: Address{Street: "Main", City: "Osaka"},
		Billing: &Address{Street: "Side", City: "Kyoto"},
		Items:   []Item{{SKU: "abc1", Qty: 1, Price: 2}},
		Tags:    []string{"vip"},
	}
}

// newV binds a validator to a private cache so that shadows never leak between
// tests.
func newV[T any](m *T, opts ...fv.Option) *fv.Validator[T] {
	return fv.New(m, append([]fv.Option{fv.WithCache(shadow.NewCache())}, opts...)...)
}

func idents(r *fv.Result) []string {
	out := []string{}
	for _, e := range r.Errors() {
		out = append(out, e.Identifier)
	}
	return out
}

func messages(r *fv.Result) []string {
	out := []string{}
	for _, e := range r.Errors() {
		out = append(out, e.Message)
	}
	return out
}
