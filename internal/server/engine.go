package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mcpmarket/marketplace-manager/internal/middleware"
	"github.com/mcpmarket/marketplace-manager/pkg/catalog"
	"github.com/mcpmarket/marketplace-manager/pkg/deployment"
	"github.com/mcpmarket/marketplace-manager/pkg/github"
	"github.com/mcpmarket/marketplace-manager/pkg/health"
	"github.com/mcpmarket/marketplace-manager/pkg/notification"
	"github.com/mcpmarket/marketplace-manager/pkg/pricing"
	"github.com/mcpmarket/marketplace-manager/pkg/provider"
	"github.com/mcpmarket/marketplace-manager/pkg/saved"
	"github.com/mcpmarket/marketplace-manager/pkg/user"
	sloggin "github.com/samber/slog-gin"
)

type Handlers struct {
	User         user.Handler
	Catalog      catalog.Handler
	GitHub       github.Handler
	Deployment   deployment.Handler
	Saved        saved.Handler
	Notification notification.Handler
	Pricing      pricing.Handler
	Provider     provider.Handler
}

func GetEngine(logger *slog.Logger, basePath string, authenticationMiddleware middleware.AuthenticationMiddleware, handlers Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	// sloggin only attaches request ids here; request logging itself is done
	// by middleware.RequestLogger.
	r.Use(sloggin.NewWithConfig(logger, sloggin.Config{
		DefaultLevel:  slog.LevelDebug,
		WithRequestID: true,
	}))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	health.Routes(router)
	pricing.Routes(router, handlers.Pricing)
	provider.Routes(router, handlers.Provider)

	user.Routes(router, authenticationMiddleware, handlers.User)
	catalog.Routes(router, authenticationMiddleware.TokenAuthentication, handlers.Catalog)
	github.Routes(router, authenticationMiddleware.TokenAuthentication, handlers.GitHub)
	deployment.Routes(router, authenticationMiddleware.TokenAuthentication, handlers.Deployment)
	saved.Routes(router, authenticationMiddleware.TokenAuthentication, handlers.Saved)
	notification.Routes(router, authenticationMiddleware.TokenAuthentication, handlers.Notification)

	return r
}
