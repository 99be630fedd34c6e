// Package middleware runs fluentval rules at HTTP JSON boundaries. Framework adapters
// live in the echo and gin submodules; ValidateJSON serves plain net/http.
package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	fv "github.com/reoring/fluentval"
)

// ctxKeyModel is a typed context key for storing *T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyModel[T any] struct{}

// ContextWithModel attaches a validated model to the context.
func ContextWithModel[T any](ctx context.Context, m *T) context.Context {
	return context.WithValue(ctx, ctxKeyModel[T]{}, m)
}

// ModelFromContext retrieves the model stored by ContextWithModel.
func ModelFromContext[T any](ctx context.Context) (*T, bool) {
	m, ok := ctx.Value(ctxKeyModel[T]{}).(*T)
	return m, ok && m != nil
}

// DecodeError reports a request body that is not valid JSON for T.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode request body: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Bind decodes a JSON body into a new T and validates it with rules.
// A decode failure is returned as *DecodeError with a nil result.
func Bind[T any](body io.Reader, rules func(*fv.Validator[T]), opts ...fv.Option) (*T, *fv.Result, error) {
	m := new(T)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		return nil, nil, &DecodeError{Err: err}
	}
	v := fv.New(m, opts...)
	if rules != nil {
		rules(v)
	}
	return m, v.ToResult(), nil
}

// ErrorPayload shapes a decode error for JSON responses.
func ErrorPayload(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}

// ValidateJSON binds the request body, stores *T in the request context on success,
// or answers 400 for malformed JSON and 422 with the Result when rules fail.
func ValidateJSON[T any](rules func(*fv.Validator[T]), opts ...fv.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m, res, err := Bind(r.Body, rules, opts...)
			switch {
			case err != nil:
				writeJSON(w, http.StatusBadRequest, ErrorPayload(err))
			case !res.IsValid():
				writeJSON(w, http.StatusUnprocessableEntity, res)
			default:
				next.ServeHTTP(w, r.WithContext(ContextWithModel(r.Context(), m)))
			}
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
