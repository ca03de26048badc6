package deployment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

// NewProvisioner returns the sweep that activates pending deployments once
// their activation delay has elapsed. The deadline derives from the row's
// creation time, so activations survive process restarts.
func NewProvisioner(logger *slog.Logger, repository *repository, notifier notifier, delay time.Duration, interval time.Duration) *Provisioner {
	return &Provisioner{
		logger:     logger,
		repository: repository,
		notifier:   notifier,
		delay:      delay,
		interval:   interval,
	}
}

type notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title string, message string, notificationType string) error
}

type Provisioner struct {
	logger     *slog.Logger
	repository *repository
	notifier   notifier
	delay      time.Duration
	interval   time.Duration
}

func (p Provisioner) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Sweep(ctx)
		}
	}
}

// Sweep activates every pending deployment whose delay has elapsed.
func (p Provisioner) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-p.delay)
	deployments, err := p.repository.findPendingOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to find pending deployments", "error", err)
		return
	}

	for _, deployment := range deployments {
		// stand-in for a provisioning callback assigning a real address
		ipAddress := synthesizeIPAddress()
		activated, err := p.repository.activate(ctx, deployment.ID, ipAddress)
		if err != nil {
			p.logger.ErrorContext(ctx, "Failed to activate deployment", "deploymentId", deployment.ID, "error", err)
			continue
		}
		if !activated {
			continue
		}

		p.logger.InfoContext(ctx, "Deployment activated", "deploymentId", deployment.ID, "ipAddress", ipAddress)

		message := fmt.Sprintf("Deployment %q is now active at %s.", deployment.Name, ipAddress)
		err = p.notifier.Notify(ctx, deployment.UserID, "Deployment Successful", message, model.NotificationTypeSuccess)
		if err != nil {
			p.logger.ErrorContext(ctx, "Failed to notify deployment owner", "deploymentId", deployment.ID, "error", err)
		}
	}
}

func synthesizeIPAddress() string {
	return fmt.Sprintf("192.168.%d.%d", rand.Intn(255), rand.Intn(255))
}
