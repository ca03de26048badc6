package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
)

func GetPathParameter(c *gin.Context, parameter string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(parameter))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errdef.NewBadRequest("error parsing %q: %v", parameter, err))
		return uuid.Nil, false
	}
	return id, true
}
