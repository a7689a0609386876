package middleware

import (
	"references-archive/helper"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

// WriteGuard protects the mutating routes. In read-only browse mode every
// create/delete operation is refused; querying, sorting, viewing and citing
// stay available.
func WriteGuard(readOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if readOnly {
			HTTPHelper.SendForbiddenError(c, "Mutations are disabled in read-only mode", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Next()
	}
}
