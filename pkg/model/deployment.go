package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DeploymentStatusPending = "pending"
	DeploymentStatusActive  = "active"
	DeploymentStatusFailed  = "failed"
)

type Resources struct {
	CPU     int `json:"cpu"`
	Memory  int `json:"memory"`
	Storage int `json:"storage"`
}

// Deployment is a user owned record simulating a running instance of a listing.
// It is created pending with no address; a provisioning sweep flips it to active.
type Deployment struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ServerID      uuid.UUID         `gorm:"type:uuid;index" json:"serverId"`
	Server        *Server           `json:"server,omitempty"`
	UserID        uuid.UUID         `gorm:"type:uuid;index" json:"userId"`
	Name          string            `json:"name"`
	Provider      string            `json:"provider"`
	Region        string            `json:"region"`
	Resources     Resources         `gorm:"serializer:json" json:"resources"`
	Configuration map[string]string `gorm:"serializer:json" json:"configuration"`
	Status        string            `gorm:"index;default:pending" json:"status"`
	IPAddress     *string           `json:"ipAddress"`
	Cost          float64           `json:"cost"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func (d *Deployment) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
