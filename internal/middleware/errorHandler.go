package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	sloggin "github.com/samber/slog-gin"
)

// ErrorHandler translates the last error attached to the context into a JSON
// response. Unclassified errors become a generic 500 carrying the request id,
// never the underlying detail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		if c.Writer.Written() {
			return
		}

		switch {
		case errdef.IsBadRequest(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errdef.IsUnauthorized(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errdef.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errdef.IsDuplicated(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errdef.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errdef.IsBadGateway(err):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			id := sloggin.GetRequestID(c)
			message := fmt.Sprintf("something went wrong. We'll look into it if you send us the id %q", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		}
	}
}
