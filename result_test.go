package fluentval_test

import (
	"errors"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	fv "github.com/reoring/fluentval"
)

func sampleResult() *fv.Result {
	return fv.NewResult([]fv.ValidationError{
		{Identifier: "address.city", Value: "", Message: "city is required"},
		{Identifier: "name", Value: nil, Message: "name is required"},
		{Identifier: "address.zip", Value: "12", Message: "zip too short"},
		{Identifier: "addressee", Value: "x", Message: "odd"},
	})
}

func TestResult_Lookup(t *testing.T) {
	r := sampleResult()

	e, ok := r.Identifier("name")
	require.True(t, ok)
	assert.Equal(t, "name is required", e.Message)

	_, ok = r.Identifier("missing")
	assert.False(t, ok)

	got := r.IdentifierStartsWith("address.")
	require.Len(t, got, 2)
	assert.Equal(t, "address.city", got[0].Identifier)
	assert.Equal(t, "address.zip", got[1].Identifier)
	assert.Len(t, r.IdentifierStartsWith("address"), 3)
	assert.Empty(t, r.IdentifierStartsWith("zzz"))
}

func TestResult_IsImmutable(t *testing.T) {
	src := []fv.ValidationError{{Identifier: "a", Message: "m"}}
	r := fv.NewResult(src)
	src[0].Identifier = "changed"

	errs := r.Errors()
	errs[0].Message = "changed"

	e, ok := r.Identifier("a")
	require.True(t, ok)
	assert.Equal(t, "m", e.Message)
}

func TestResult_NilAndEmpty(t *testing.T) {
	var r *fv.Result
	assert.True(t, r.IsValid())
	assert.Zero(t, r.Len())
	assert.NoError(t, r.Err())
	assert.Empty(t, r.IdentifierStartsWith(""))
	_, ok := r.Identifier("")
	assert.False(t, ok)

	empty := fv.NewResult(nil)
	assert.True(t, empty.IsValid())
	assert.NotNil(t, empty.Errors())
}

func TestResult_ErrAndAsErrors(t *testing.T) {
	r := sampleResult()
	err := r.Err()
	require.Error(t, err)
	assert.Equal(t, "address.city: city is required; name: name is required; address.zip: zip too short; ... (total 4)", err.Error())

	wrapped := fmt.Errorf("save customer: %w", err)
	es, ok := fv.AsErrors(wrapped)
	require.True(t, ok)
	assert.Len(t, es, 4)

	var target fv.Errors
	assert.True(t, errors.As(wrapped, &target))

	_, ok = fv.AsErrors(errors.New("other"))
	assert.False(t, ok)
	_, ok = fv.AsErrors(nil)
	assert.False(t, ok)
}

func TestErrors_Formatting(t *testing.T) {
	assert.Equal(t, "", fv.Errors(nil).Error())
	assert.Equal(t, "bare", fv.ValidationError{Message: "bare"}.Error())

	es := fv.AppendErrors(nil, fv.ValidationError{Identifier: "a", Message: "x"})
	assert.Equal(t, "a: x", es.Error())
}

func TestResult_JSON(t *testing.T) {
	r := fv.NewResult([]fv.ValidationError{
		{Identifier: "name", Value: nil, Message: "required"},
		{Identifier: "age", Value: 17, Message: "too young"},
	})
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"isValid": false,
		"errors": [
			{"identifier": "name", "value": null, "message": "required"},
			{"identifier": "age", "value": 17, "message": "too young"}
		]
	}`, string(data))

	var back fv.Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 2, back.Len())
	e, ok := back.Identifier("age")
	require.True(t, ok)
	assert.Equal(t, "too young", e.Message)

	valid, err := json.Marshal(fv.NewResult(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"isValid":true,"errors":[]}`, string(valid))
}

func TestResult_YAML(t *testing.T) {
	r := fv.NewResult([]fv.ValidationError{{Identifier: "email", Value: "x", Message: "invalid email"}})
	data, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.YAMLEq(t, `
isValid: false
errors:
  - identifier: email
    value: x
    message: invalid email
`, string(data))

	var back fv.Result
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.False(t, back.IsValid())
	assert.Equal(t, "email", back.Errors()[0].Identifier)
}
