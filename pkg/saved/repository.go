package saved

import (
	"context"
	"errors"
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

func (r repository) create(ctx context.Context, saved *model.SavedServer) error {
	err := r.db.WithContext(ctx).Create(saved).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("server already saved")
	}
	if err != nil {
		return fmt.Errorf("failed to save server: %v", err)
	}
	return nil
}

func (r repository) findByUser(ctx context.Context, userID uuid.UUID) ([]model.SavedServer, error) {
	var saved []model.SavedServer
	err := r.db.WithContext(ctx).
		Preload("Server").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&saved).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find saved servers: %v", err)
	}
	return saved, nil
}

func (r repository) delete(ctx context.Context, userID uuid.UUID, serverID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND server_id = ?", userID, serverID).
		Delete(&model.SavedServer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved server: %v", result.Error)
	}
	if result.RowsAffected < 1 {
		return errdef.NewNotFound("saved server %q not found", serverID)
	}
	return nil
}

func (r repository) countByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SavedServer{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count saved servers: %v", err)
	}
	return count, nil
}
