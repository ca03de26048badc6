package deployment

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.GET("/deployments", handler.List)
	tokenAuthenticationRouter.POST("/deployments", handler.Create)
	tokenAuthenticationRouter.GET("/deployments/:id", handler.FindByID)
	tokenAuthenticationRouter.PATCH("/deployments/:id", handler.Update)
	tokenAuthenticationRouter.DELETE("/deployments/:id", handler.Delete)
}
