package catalog

import (
	"context"
	"errors"
	"fmt"

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

// ListParams is the catalog list contract. Category "all" or empty means no
// category filter, Search matches title and description case-insensitively,
// Sort is one of newest, popular or az.
type ListParams struct {
	Category string
	Search   string
	Sort     string
	Limit    int
}

// findPublished returns published listings only. Unrecognized sort values fall
// back to newest (created-descending).
func (r repository) findPublished(ctx context.Context, params ListParams) ([]model.Server, error) {
	q := r.db.
		WithContext(ctx).
		Where("status = ?", model.ServerStatusPublished).
		Limit(params.Limit)

	if params.Category != "" && params.Category != "all" {
		q = q.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	switch params.Sort {
	case "popular":
		q = q.Order("deployments DESC")
	case "az":
		q = q.Order("title ASC")
	default:
		q = q.Order("created_at DESC")
	}

	var servers []model.Server
	if err := q.Find(&servers).Error; err != nil {
		return nil, fmt.Errorf("failed to find servers: %v", err)
	}

	return servers, nil
}

func (r repository) findByID(ctx context.Context, id uuid.UUID) (*model.Server, error) {
	var server *model.Server
	err := r.db.WithContext(ctx).First(&server, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("server %q not found", id)
	}
	return server, err
}

func (r repository) findByIDAndAuthor(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*model.Server, error) {
	var server *model.Server
	err := r.db.
		WithContext(ctx).
		Where("author_id = ?", authorID).
		First(&server, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// ownership mismatch is indistinguishable from absence
		return nil, errdef.NewNotFound("server %q not found", id)
	}
	return server, err
}

func (r repository) findByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Server, error) {
	var servers []model.Server
	err := r.db.
		WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&servers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find servers for author %q: %v", authorID, err)
	}
	return servers, nil
}

func (r repository) create(ctx context.Context, server *model.Server) error {
	return r.db.WithContext(ctx).Create(&server).Error
}

// updateFields applies an allow-listed field map composed by the service. The
// author filter is the authorization check.
func (r repository) updateFields(ctx context.Context, id uuid.UUID, authorID uuid.UUID, fields map[string]any) error {
	db := r.db.
		WithContext(ctx).
		Model(&model.Server{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(fields)
	if db.Error != nil {
		return fmt.Errorf("failed to update server %q: %v", id, db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("server %q not found", id)
	}
	return nil
}

func (r repository) delete(ctx context.Context, id uuid.UUID, authorID uuid.UUID) error {
	db := r.db.
		WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.Server{}, "id = ?", id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete server %q: %v", id, db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("server %q not found", id)
	}
	return nil
}

// IncrementDeployments bumps the denormalized deployment counter. It is a
// separate store operation from the deployment insert and intentionally not
// transactional with it.
func (r repository) IncrementDeployments(ctx context.Context, id uuid.UUID) error {
	return r.db.
		WithContext(ctx).
		Model(&model.Server{}).
		Where("id = ?", id).
		UpdateColumn("deployments", gorm.Expr("deployments + 1")).Error
}

// DecrementDeployments lowers the counter, clamped at zero.
func (r repository) DecrementDeployments(ctx context.Context, id uuid.UUID) error {
	return r.db.
		WithContext(ctx).
		Model(&model.Server{}).
		Where("id = ?", id).
		UpdateColumn("deployments", gorm.Expr("GREATEST(deployments - 1, 0)")).Error
}

// ListIDs returns the ids of all listings, for counter reconciliation.
func (r repository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Server{}).Pluck("id", &ids).Error
	return ids, err
}

// SetDeployments overwrites the counter with a reconciled count.
func (r repository) SetDeployments(ctx context.Context, id uuid.UUID, count int64) error {
	return r.db.
		WithContext(ctx).
		Model(&model.Server{}).
		Where("id = ?", id).
		UpdateColumn("deployments", count).Error
}
