package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

const defaultListLimit = 50

func NewService(logger *slog.Logger, repository *repository, githubClient githubClient, debug bool) *Service {
	return &Service{
		logger:       logger,
		repository:   repository,
		githubClient: githubClient,
		debug:        debug,
	}
}

type Service struct {
	logger       *slog.Logger
	repository   *repository
	githubClient githubClient
	debug        bool
}

func (s Service) List(ctx context.Context, params ListParams) ([]model.Server, error) {
	if params.Limit < 1 {
		params.Limit = defaultListLimit
	}
	return s.repository.findPublished(ctx, params)
}

func (s Service) FindByID(ctx context.Context, id uuid.UUID) (*model.Server, error) {
	return s.repository.findByID(ctx, id)
}

type CreateServer struct {
	Title            string
	Description      string
	ShortDescription string
	Category         string
	ImageURL         string
	Specs            model.Specs
	Features         []string
	Providers        []model.ServerProvider
	Pricing          map[string]float64
}

// Create persists a new listing owned by authorID. Listings always start as
// drafts; publishing is a reviewer action outside this service.
func (s Service) Create(ctx context.Context, authorID uuid.UUID, request CreateServer) (*model.Server, error) {
	server := &model.Server{
		Slug:             slug.Make(request.Title),
		Title:            request.Title,
		Description:      request.Description,
		ShortDescription: request.ShortDescription,
		Category:         request.Category,
		ImageURL:         request.ImageURL,
		AuthorID:         authorID,
		Specs:            request.Specs,
		Features:         request.Features,
		Providers:        request.Providers,
		Pricing:          request.Pricing,
		Status:           model.ServerStatusDraft,
	}

	if err := s.repository.create(ctx, server); err != nil {
		return nil, fmt.Errorf("failed to create server: %v", err)
	}

	return server, nil
}

type UpdateServer struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Category         *string
	ImageURL         *string
	Specs            *model.Specs
	Features         *[]string
	Providers        *[]model.ServerProvider
	Pricing          *map[string]float64
}

// Update applies the listing allow-list. AuthorID, status and the deployment
// counter can not be touched through this path.
func (s Service) Update(ctx context.Context, id uuid.UUID, authorID uuid.UUID, request UpdateServer) (*model.Server, error) {
	fields := map[string]any{}
	if request.Title != nil {
		fields["title"] = *request.Title
		fields["slug"] = slug.Make(*request.Title)
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.ShortDescription != nil {
		fields["short_description"] = *request.ShortDescription
	}
	if request.Category != nil {
		fields["category"] = *request.Category
	}
	if request.ImageURL != nil {
		fields["image_url"] = *request.ImageURL
	}
	if request.Specs != nil {
		fields["specs"] = *request.Specs
	}
	if request.Features != nil {
		fields["features"] = *request.Features
	}
	if request.Providers != nil {
		fields["providers"] = *request.Providers
	}
	if request.Pricing != nil {
		fields["pricing"] = *request.Pricing
	}

	if len(fields) == 0 {
		return nil, errdef.NewBadRequest("no recognized fields in update")
	}

	if err := s.repository.updateFields(ctx, id, authorID, fields); err != nil {
		return nil, err
	}

	return s.repository.findByID(ctx, id)
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, authorID uuid.UUID) error {
	return s.repository.delete(ctx, id, authorID)
}

// Submit transitions a draft listing to under review. Only the owning author
// can submit, and only from the draft state.
func (s Service) Submit(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*model.Server, error) {
	server, err := s.repository.findByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	if server.Status != model.ServerStatusDraft {
		return nil, errdef.NewConflict("server %q is already %s", id, server.Status)
	}

	err = s.repository.updateFields(ctx, id, authorID, map[string]any{"status": model.ServerStatusUnderReview})
	if err != nil {
		return nil, err
	}

	server.Status = model.ServerStatusUnderReview
	return server, nil
}

// Analytics summarizes the author's listings.
type Analytics struct {
	TotalServers      int            `json:"totalServers"`
	TotalDeployments  int            `json:"totalDeployments"`
	ActiveDeployments int64          `json:"activeDeployments"`
	Servers           []model.Server `json:"servers"`
}

type deploymentCounter interface {
	CountActiveByServers(ctx context.Context, serverIDs []uuid.UUID) (int64, error)
}

func (s Service) AnalyticsForAuthor(ctx context.Context, authorID uuid.UUID, deployments deploymentCounter) (*Analytics, error) {
	servers, err := s.repository.findByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	total := 0
	ids := make([]uuid.UUID, len(servers))
	for i, server := range servers {
		total += server.Deployments
		ids[i] = server.ID
	}

	active, err := deployments.CountActiveByServers(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		TotalServers:      len(servers),
		TotalDeployments:  total,
		ActiveDeployments: active,
		Servers:           servers,
	}, nil
}
