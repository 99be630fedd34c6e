// Package echomw adapts fluentval request validation to echo.
package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	fv "github.com/reoring/fluentval"
	"github.com/reoring/fluentval/middleware"
)

// ValidateJSON binds the request JSON to T, runs rules, stores *T in the request
// context on success, returns 400 for malformed JSON or 422 with the Result when
// validation fails.
func ValidateJSON[T any](rules func(*fv.Validator[T]), opts ...fv.Option) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m, res, err := middleware.Bind(c.Request().Body, rules, opts...)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			}
			if !res.IsValid() {
				return c.JSON(http.StatusUnprocessableEntity, res)
			}
			ctx := middleware.ContextWithModel(c.Request().Context(), m)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetModel fetches the validated *T from echo.Context.
func GetModel[T any](c echo.Context) (*T, bool) {
	return middleware.ModelFromContext[T](c.Request().Context())
}
