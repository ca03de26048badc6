package deployment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, deployment *model.Deployment) error {
	return r.db.WithContext(ctx).Create(&deployment).Error
}

func (r repository) findByUser(ctx context.Context, userID uuid.UUID, status string) ([]model.Deployment, error) {
	q := r.db.
		WithContext(ctx).
		Preload("Server").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var deployments []model.Deployment
	if err := q.Find(&deployments).Error; err != nil {
		return nil, fmt.Errorf("failed to find deployments for user %q: %v", userID, err)
	}
	return deployments, nil
}

func (r repository) findByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*model.Deployment, error) {
	var deployment *model.Deployment
	err := r.db.
		WithContext(ctx).
		Preload("Server").
		Where("user_id = ?", userID).
		First(&deployment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// ownership mismatch is indistinguishable from absence
		return nil, errdef.NewNotFound("deployment %q not found", id)
	}
	return deployment, err
}

func (r repository) updateFields(ctx context.Context, id uuid.UUID, userID uuid.UUID, fields map[string]any) error {
	db := r.db.
		WithContext(ctx).
		Model(&model.Deployment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if db.Error != nil {
		return fmt.Errorf("failed to update deployment %q: %v", id, db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("deployment %q not found", id)
	}
	return nil
}

func (r repository) delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	db := r.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Deployment{}, "id = ?", id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete deployment %q: %v", id, db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("deployment %q not found", id)
	}
	return nil
}

func (r repository) countByUser(ctx context.Context, userID uuid.UUID) (total int64, active int64, err error) {
	err = r.db.
		WithContext(ctx).
		Model(&model.Deployment{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.
		WithContext(ctx).
		Model(&model.Deployment{}).
		Where("user_id = ? AND status = ?", userID, model.DeploymentStatusActive).
		Count(&active).Error
	return total, active, err
}

func (r repository) countActiveByServers(ctx context.Context, serverIDs []uuid.UUID) (int64, error) {
	if len(serverIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.
		WithContext(ctx).
		Model(&model.Deployment{}).
		Where("server_id IN ? AND status = ?", serverIDs, model.DeploymentStatusActive).
		Count(&count).Error
	return count, err
}

// findPendingOlderThan returns pending deployments created before cutoff, due
// for activation.
func (r repository) findPendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Deployment, error) {
	var deployments []model.Deployment
	err := r.db.
		WithContext(ctx).
		Where("status = ? AND created_at <= ?", model.DeploymentStatusPending, cutoff).
		Find(&deployments).Error
	return deployments, err
}

// activate flips a pending deployment to active and assigns its address. The
// status guard makes the transition happen exactly once even if two sweeps
// overlap.
func (r repository) activate(ctx context.Context, id uuid.UUID, ipAddress string) (bool, error) {
	db := r.db.
		WithContext(ctx).
		Model(&model.Deployment{}).
		Where("id = ? AND status = ?", id, model.DeploymentStatusPending).
		Updates(map[string]any{
			"status":     model.DeploymentStatusActive,
			"ip_address": ipAddress,
		})
	if db.Error != nil {
		return false, db.Error
	}
	return db.RowsAffected > 0, nil
}

// CountByServer counts all deployments of a listing, for counter reconciliation.
func (r repository) CountByServer(ctx context.Context, serverID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.
		WithContext(ctx).
		Model(&model.Deployment{}).
		Where("server_id = ?", serverID).
		Count(&count).Error
	return count, err
}
