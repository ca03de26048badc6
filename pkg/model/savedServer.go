package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedServer is the favorites join entity, unique per (user, server).
type SavedServer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_saved_user_server,unique" json:"userId"`
	ServerID  uuid.UUID `gorm:"type:uuid;index:idx_saved_user_server,unique" json:"serverId"`
	Server    *Server   `json:"server,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *SavedServer) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
