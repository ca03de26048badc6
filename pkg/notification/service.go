package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func NewService(logger *slog.Logger, repository *repository, broker *Broker) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		broker:     broker,
	}
}

type Service struct {
	logger     *slog.Logger
	repository *repository
	broker     *Broker
}

// Notify persists the notification and pushes it to the user's event stream
// if one is open.
func (s Service) Notify(ctx context.Context, userID uuid.UUID, title string, message string, notificationType string) error {
	notification := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
	}

	if err := s.repository.create(ctx, notification); err != nil {
		return err
	}

	if !s.broker.Send(userID, *notification) {
		s.logger.DebugContext(ctx, "No live subscription for notification", "userId", userID)
	}

	return nil
}

func (s Service) List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.repository.findByUser(ctx, userID)
}

func (s Service) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID, read bool) error {
	return s.repository.markRead(ctx, id, userID, read)
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return s.repository.delete(ctx, id, userID)
}
