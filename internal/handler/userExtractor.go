package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

// GetUserFromContext returns the principal resolved by the authentication
// middleware. Handlers for private routes fail with unauthorized before any
// store access if it is absent.
func GetUserFromContext(c *gin.Context) (*model.User, error) {
	userData, exists := c.Get("user")
	if !exists {
		return nil, errdef.NewUnauthorized("Unauthorized")
	}

	user, ok := userData.(*model.User)
	if !ok {
		return nil, errdef.NewUnauthorized("Unauthorized")
	}
	return user, nil
}
