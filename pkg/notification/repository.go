package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"gorm.io/gorm"
)

func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, notification *model.Notification) error {
	err := r.db.WithContext(ctx).Create(notification).Error
	if err != nil {
		return fmt.Errorf("failed to create notification: %v", err)
	}
	return nil
}

func (r repository) findByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %v", err)
	}
	return notifications, nil
}

func (r repository) markRead(ctx context.Context, id uuid.UUID, userID uuid.UUID, read bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", read)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %v", result.Error)
	}
	if result.RowsAffected < 1 {
		return errdef.NewNotFound("notification %q not found", id)
	}
	return nil
}

func (r repository) delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Notification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %v", result.Error)
	}
	if result.RowsAffected < 1 {
		return errdef.NewNotFound("notification %q not found", id)
	}
	return nil
}
