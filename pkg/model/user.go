package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User domain object defining an authenticated principal.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Email     string    `gorm:"index;unique" json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatarUrl"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
