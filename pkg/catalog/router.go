package catalog

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	r.GET("/servers", handler.List)
	r.GET("/servers/:id", handler.FindByID)

	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.POST("/servers", handler.Create)
	tokenAuthenticationRouter.PATCH("/servers/:id", handler.Update)
	tokenAuthenticationRouter.DELETE("/servers/:id", handler.Delete)
	tokenAuthenticationRouter.POST("/servers/sync", handler.Sync)

	tokenAuthenticationRouter.POST("/developer/submit", handler.Submit)
	tokenAuthenticationRouter.GET("/developer/analytics", handler.Analytics)

	tokenAuthenticationRouter.POST("/github/import", handler.Import)
}
