package deployment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func NewService(logger *slog.Logger, repository *repository, servers serverCounter) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		servers:    servers,
	}
}

// serverCounter maintains the denormalized deployment counter on listings.
type serverCounter interface {
	IncrementDeployments(ctx context.Context, serverID uuid.UUID) error
	DecrementDeployments(ctx context.Context, serverID uuid.UUID) error
}

type Service struct {
	logger     *slog.Logger
	repository *repository
	servers    serverCounter
}

type CreateDeployment struct {
	ServerID      uuid.UUID
	Name          string
	Provider      string
	Region        string
	Resources     model.Resources
	Configuration map[string]string
	Cost          float64
}

// Create inserts a new pending deployment and bumps the listing's counter.
// The counter update is best effort: if it fails the deployment still exists
// and the drift is left for the reconciler.
func (s Service) Create(ctx context.Context, userID uuid.UUID, request CreateDeployment) (*model.Deployment, error) {
	deployment := &model.Deployment{
		ServerID:      request.ServerID,
		UserID:        userID,
		Name:          request.Name,
		Provider:      request.Provider,
		Region:        request.Region,
		Resources:     request.Resources,
		Configuration: request.Configuration,
		Status:        model.DeploymentStatusPending,
		IPAddress:     nil,
		Cost:          request.Cost,
	}

	if err := s.repository.create(ctx, deployment); err != nil {
		return nil, err
	}

	if err := s.servers.IncrementDeployments(ctx, request.ServerID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to increment deployment counter", "serverId", request.ServerID, "error", err)
	}

	return deployment, nil
}

func (s Service) List(ctx context.Context, userID uuid.UUID, status string) ([]model.Deployment, error) {
	return s.repository.findByUser(ctx, userID, status)
}

func (s Service) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*model.Deployment, error) {
	return s.repository.findByIDAndUser(ctx, id, userID)
}

type UpdateDeployment struct {
	Name          *string
	Status        *string
	Configuration *map[string]string
}

// Update applies the deployment allow-list. The failed status is reachable
// only through this explicit path, never produced automatically.
func (s Service) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, request UpdateDeployment) (*model.Deployment, error) {
	fields := map[string]any{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Status != nil {
		fields["status"] = *request.Status
	}
	if request.Configuration != nil {
		fields["configuration"] = *request.Configuration
	}

	if len(fields) > 0 {
		if err := s.repository.updateFields(ctx, id, userID, fields); err != nil {
			return nil, err
		}
	}

	return s.repository.findByIDAndUser(ctx, id, userID)
}

// Delete removes the deployment and lowers the listing's counter, best effort
// and clamped at zero. A failed decrement does not fail the delete.
func (s Service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	deployment, err := s.repository.findByIDAndUser(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repository.delete(ctx, id, userID); err != nil {
		return err
	}

	if err := s.servers.DecrementDeployments(ctx, deployment.ServerID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to decrement deployment counter", "serverId", deployment.ServerID, "error", err)
	}

	return nil
}

func (s Service) CountByUser(ctx context.Context, userID uuid.UUID) (total int64, active int64, err error) {
	return s.repository.countByUser(ctx, userID)
}

func (s Service) CountActiveByServers(ctx context.Context, serverIDs []uuid.UUID) (int64, error) {
	return s.repository.countActiveByServers(ctx, serverIDs)
}
