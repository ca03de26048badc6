package provider

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewHandler(providers []Provider) Handler {
	return Handler{providers}
}

type Handler struct {
	providers []Provider
}

func (h Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.providers)
}
