package saved

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func NewService(repository *repository, servers serverFinder) *Service {
	return &Service{
		repository: repository,
		servers:    servers,
	}
}

// serverFinder verifies the target listing exists before a save is recorded.
type serverFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Server, error)
}

type Service struct {
	repository *repository
	servers    serverFinder
}

func (s Service) List(ctx context.Context, userID uuid.UUID) ([]model.SavedServer, error) {
	return s.repository.findByUser(ctx, userID)
}

// Save records the listing as a favorite. Saving the same listing twice is a
// conflict rather than an upsert.
func (s Service) Save(ctx context.Context, userID uuid.UUID, serverID uuid.UUID) (*model.SavedServer, error) {
	if _, err := s.servers.FindByID(ctx, serverID); err != nil {
		return nil, err
	}

	saved := &model.SavedServer{
		UserID:   userID,
		ServerID: serverID,
	}
	if err := s.repository.create(ctx, saved); err != nil {
		return nil, err
	}

	return saved, nil
}

func (s Service) Delete(ctx context.Context, userID uuid.UUID, serverID uuid.UUID) error {
	return s.repository.delete(ctx, userID, serverID)
}

func (s Service) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repository.countByUser(ctx, userID)
}
