package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mcpmarket/marketplace-manager/internal/handler"
	"github.com/mcpmarket/marketplace-manager/internal/log"
	"github.com/mcpmarket/marketplace-manager/internal/middleware"
	"github.com/mcpmarket/marketplace-manager/internal/server"
	"github.com/mcpmarket/marketplace-manager/pkg/catalog"
	"github.com/mcpmarket/marketplace-manager/pkg/config"
	"github.com/mcpmarket/marketplace-manager/pkg/deployment"
	"github.com/mcpmarket/marketplace-manager/pkg/github"
	"github.com/mcpmarket/marketplace-manager/pkg/notification"
	"github.com/mcpmarket/marketplace-manager/pkg/pricing"
	"github.com/mcpmarket/marketplace-manager/pkg/provider"
	"github.com/mcpmarket/marketplace-manager/pkg/saved"
	"github.com/mcpmarket/marketplace-manager/pkg/storage"
	"github.com/mcpmarket/marketplace-manager/pkg/token"
	"github.com/mcpmarket/marketplace-manager/pkg/user"
	"golang.org/x/sync/errgroup"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("DEBUG") == "true" {
		logLevel = slog.LevelDebug
	}
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(log.New(jsonHandler))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Exiting", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	redisClient, err := storage.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	tokenRepository := token.NewRepository(redisClient)
	tokenService := token.NewService(
		logger,
		tokenRepository,
		cfg.Authentication.PrivateKey,
		cfg.Authentication.AccessTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenSecretKey,
		cfg.Authentication.RefreshTokenExpirationSeconds,
	)

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository)

	githubClient := github.NewClient(logger, cfg.GitHub.BaseURL, cfg.GitHub.Token)

	catalogRepository := catalog.NewRepository(db)
	catalogService := catalog.NewService(logger, catalogRepository, githubClient, cfg.Debug)

	notificationBroker := notification.NewBroker()
	notificationRepository := notification.NewRepository(db)
	notificationService := notification.NewService(logger, notificationRepository, notificationBroker)

	deploymentRepository := deployment.NewRepository(db)
	deploymentService := deployment.NewService(logger, deploymentRepository, catalogRepository)
	provisioner := deployment.NewProvisioner(logger, deploymentRepository, notificationService, cfg.ActivationDelay, cfg.ProvisionerInterval)
	reconciler := deployment.NewReconciler(logger, deploymentRepository, catalogRepository, cfg.ReconcilerInterval)

	savedRepository := saved.NewRepository(db)
	savedService := saved.NewService(savedRepository, catalogService)

	pricingCalculator, err := pricing.NewCalculator()
	if err != nil {
		return err
	}

	providers, err := provider.Load()
	if err != nil {
		return err
	}

	handlers := server.Handlers{
		User:         user.NewHandler(cfg, userService, tokenService, deploymentService, savedService),
		Catalog:      catalog.NewHandler(catalogService, deploymentService),
		GitHub:       github.NewHandler(githubClient),
		Deployment:   deployment.NewHandler(deploymentService),
		Saved:        saved.NewHandler(savedService),
		Notification: notification.NewHandler(notificationService, notificationBroker),
		Pricing:      pricing.NewHandler(pricingCalculator),
		Provider:     provider.NewHandler(providers),
	}

	authenticationMiddleware := middleware.NewAuthentication(&cfg.Authentication.PrivateKey.PublicKey, userService)

	engine := server.GetEngine(logger, "", authenticationMiddleware, handlers)

	httpServer := &http.Server{
		Addr:              ":8080",
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.InfoContext(ctx, "Listening", "address", httpServer.Addr)
		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %v", err)
	})

	group.Go(func() error {
		return provisioner.Run(ctx)
	})

	group.Go(func() error {
		return reconciler.Run(ctx)
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
