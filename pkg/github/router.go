package github

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.GET("/github/servers", handler.Servers)
	tokenAuthenticationRouter.GET("/github/readme", handler.Readme)
}
