package saved

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.GET("/saved-servers", handler.List)
	tokenAuthenticationRouter.POST("/saved-servers", handler.Save)
	tokenAuthenticationRouter.DELETE("/saved-servers", handler.Delete)
}
