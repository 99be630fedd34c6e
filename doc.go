// Package fluentval provides fluent, composable validation of Go values.
//
// - Chained checks over a model: presence, string shape, numeric and date comparisons
// - Structural combinators: For*, ForType, ForEach, If and reusable Rules
// - Identifiers derived from accessors, so callers rarely spell property names
// - A stable error model via Result and Errors, encodable as JSON and YAML
//
// Identifiers are derived by replaying the accessor against a shadow copy of the
// model (see package shadow) and mapping the returned address back to a dotted
// path such as "address.city". Accessors that do not return the address of a
// property (computed values, method calls) yield an empty identifier; pass an
// explicit identifier in that case.
//
// Design policy:
// - Keep the public API in the root package; put predicates under internal/check.
// - Place reusable rule combinators under rules/, expression predicates under
//   predicate/, and the path constant generator under cmd/fluentgen.
// - Violations are data. Programming errors (incomparable operands, invalid
//   patterns, selectors that address nothing) panic.
//
// Typical usage:
//
//	res := fluentval.New(&order).
//		NotEmpty(func(o *Order) *string { return &o.ID }, "id is required").
//		IsNumberGreaterThan(func(o *Order) any { return &o.Total }, 0.0, "total must be positive").
//		Apply(fluentval.Each(func(o *Order) *[]Item { return &o.Items }, func(v *fluentval.Validator[Item]) {
//			v.IsAlphaNumeric(func(i *Item) *string { return &i.SKU }, "invalid sku")
//		})).
//		ToResult()
//	if err := res.Err(); err != nil {
//		// errors are also reachable with res.Identifier("id")
//	}
package fluentval
