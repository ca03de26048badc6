package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ServerStatusDraft       = "draft"
	ServerStatusUnderReview = "under_review"
	ServerStatusPublished   = "published"
)

// ServerCategories lists the categories a listing can be filed under.
var ServerCategories = []string{"Web", "Database", "Runtime", "AI/ML", "Container", "DevOps"}

type Specs struct {
	CPU     string `json:"cpu"`
	Memory  string `json:"memory"`
	Storage string `json:"storage"`
	Network string `json:"network"`
	OS      string `json:"os"`
}

type ServerProvider struct {
	Name    string   `json:"name"`
	Regions []string `json:"regions"`
}

// Server is a catalog listing describing a deployable server template. AuthorID
// is immutable after creation and is the sole authorization key for mutations.
type Server struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Slug             string             `gorm:"index" json:"slug"`
	Title            string             `json:"title"`
	Description      string             `gorm:"type:text" json:"description"`
	ShortDescription string             `json:"shortDescription"`
	Category         string             `gorm:"index" json:"category"`
	ImageURL         string             `json:"imageUrl"`
	AuthorID         uuid.UUID          `gorm:"type:uuid;index" json:"authorId"`
	Specs            Specs              `gorm:"serializer:json" json:"specs"`
	Features         []string           `gorm:"serializer:json" json:"features"`
	Providers        []ServerProvider   `gorm:"serializer:json" json:"providers"`
	Pricing          map[string]float64 `gorm:"serializer:json" json:"pricing"`
	Status           string             `gorm:"index;default:draft" json:"status"`
	Deployments      int                `json:"deployments"`
	GithubOwner      string             `json:"githubOwner,omitempty"`
	GithubRepo       string             `json:"githubRepo,omitempty"`
	GithubURL        string             `json:"githubUrl,omitempty"`
	GithubStars      int                `json:"githubStars"`
	GithubForks      int                `json:"githubForks"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func (s *Server) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
