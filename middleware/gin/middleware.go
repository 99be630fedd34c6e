// Package ginmw adapts fluentval request validation to gin.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	fv "github.com/reoring/fluentval"
	"github.com/reoring/fluentval/middleware"
)

// ValidateJSON binds the request JSON to T, runs rules, stores *T in the request
// context and aborts with 400 (malformed JSON) or 422 (failed rules) otherwise.
func ValidateJSON[T any](rules func(*fv.Validator[T]), opts ...fv.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, res, err := middleware.Bind(c.Request.Body, rules, opts...)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			return
		}
		if !res.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, res)
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithModel(c.Request.Context(), m))
		c.Next()
	}
}

// GetModel fetches the validated *T from gin.Context.
func GetModel[T any](c *gin.Context) (*T, bool) {
	return middleware.ModelFromContext[T](c.Request.Context())
}
