package fluentval

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type resultWire struct {
	IsValid bool        `json:"isValid" yaml:"isValid"`
	Errors  []errorWire `json:"errors" yaml:"errors"`
}

type errorWire struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Value      any    `json:"value" yaml:"value"`
	Message    string `json:"message" yaml:"message"`
}

func (r *Result) wire() resultWire {
	w := resultWire{IsValid: r.IsValid(), Errors: make([]errorWire, 0, r.Len())}
	for _, e := range r.Errors() {
		w.Errors = append(w.Errors, errorWire(e))
	}
	return w
}

func (r *Result) fromWire(w resultWire) {
	r.errors = nil
	for _, e := range w.Errors {
		r.errors = append(r.errors, ValidationError(e))
	}
}

// MarshalJSON encodes the result as {"isValid":bool,"errors":[...]}.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// UnmarshalJSON decodes the form produced by MarshalJSON. isValid is derived from
// the errors and ignored on input.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.fromWire(w)
	return nil
}

// MarshalYAML encodes the result with the same keys as MarshalJSON.
func (r *Result) MarshalYAML() (any, error) {
	return r.wire(), nil
}

// UnmarshalYAML decodes the form produced by MarshalYAML.
func (r *Result) UnmarshalYAML(node *yaml.Node) error {
	var w resultWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	r.fromWire(w)
	return nil
}
