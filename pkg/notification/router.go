package notification

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.GET("/notifications", handler.List)
	tokenAuthenticationRouter.PATCH("/notifications", handler.MarkRead)
	tokenAuthenticationRouter.DELETE("/notifications", handler.Delete)
	tokenAuthenticationRouter.GET("/notifications/subscribe", handler.Subscribe)
}
