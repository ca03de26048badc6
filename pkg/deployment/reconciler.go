package deployment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NewReconciler returns the job that periodically recounts each listing's
// deployment counter from deployment rows. The counter is maintained by
// non-transactional increments and decrements, so it drifts; this converges it.
func NewReconciler(logger *slog.Logger, repository *repository, servers serverCounts, interval time.Duration) *Reconciler {
	return &Reconciler{
		logger:     logger,
		repository: repository,
		servers:    servers,
		interval:   interval,
	}
}

type serverCounts interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	SetDeployments(ctx context.Context, id uuid.UUID, count int64) error
}

type Reconciler struct {
	logger     *slog.Logger
	repository *repository
	servers    serverCounts
	interval   time.Duration
}

func (r Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Reconcile(ctx)
		}
	}
}

func (r Reconciler) Reconcile(ctx context.Context) {
	ids, err := r.servers.ListIDs(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to list servers for reconciliation", "error", err)
		return
	}

	for _, id := range ids {
		count, err := r.repository.CountByServer(ctx, id)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to count deployments", "serverId", id, "error", err)
			continue
		}

		if err := r.servers.SetDeployments(ctx, id, count); err != nil {
			r.logger.ErrorContext(ctx, "Failed to reconcile deployment counter", "serverId", id, "error", err)
		}
	}
}
