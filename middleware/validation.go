package middleware

import (
	"carediary/model"
	"carediary/utils"

	"github.com/gin-gonic/gin"
)

// ValidateDateParam rejects requests whose :name path parameter is not a
// YYYY-MM-DD date key.
func ValidateDateParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !model.IsValidDateKey(c.Param(name)) {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			c.Abort()
			return
		}
		c.Next()
	}
}
