package user

import (
	"context"
	"errors"

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

func (r repository) create(ctx context.Context, u *model.User) error {
	err := r.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("user %q already exists", u.Email)
	}

	return err
}

func (r repository) findByEmail(ctx context.Context, email string) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with email %q", email)
	}
	return u, err
}

func (r repository) findByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with id %q", id)
	}
	return u, err
}

// updateProfile applies the profile allow-list. Any other submitted field is
// ignored by construction.
func (r repository) updateProfile(ctx context.Context, user *model.User) error {
	return r.db.
		WithContext(ctx).
		Model(&user).
		Select("FullName", "AvatarURL").
		Updates(model.User{FullName: user.FullName, AvatarURL: user.AvatarURL}).Error
}
