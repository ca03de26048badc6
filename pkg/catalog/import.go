package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/github"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

const noDescription = "No description available"

type githubClient interface {
	GetRepository(ctx context.Context, owner string, repo string) (*github.Repository, error)
}

// Import fetches repository metadata from GitHub and persists it as a draft
// listing owned by authorID. A collaborator failure performs no partial write.
func (s Service) Import(ctx context.Context, authorID uuid.UUID, owner string, repo string) (*model.Server, error) {
	details, err := s.githubClient.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	description := details.Description
	if description == "" {
		description = noDescription
	}

	server := &model.Server{
		Slug:             slug.Make(details.Name),
		Title:            details.Name,
		Description:      description,
		ShortDescription: ShortDescription(description),
		Category:         InferCategory(details.Topics),
		ImageURL:         fmt.Sprintf("https://opengraph.githubassets.com/1/%s", details.FullName),
		AuthorID:         authorID,
		Status:           model.ServerStatusDraft,
		Deployments:      0,
		GithubOwner:      owner,
		GithubRepo:       repo,
		GithubURL:        details.HTMLURL,
		GithubStars:      details.StargazersCount,
		GithubForks:      details.ForksCount,
	}

	if err := s.repository.create(ctx, server); err != nil {
		// the import path is the one most exposed to malformed external data, so
		// the raw store detail is echoed when debugging is on
		if s.debug {
			return nil, fmt.Errorf("failed to import server: %v", err)
		}
		s.logger.ErrorContext(ctx, "Failed to import server", "owner", owner, "repo", repo, "error", err)
		return nil, fmt.Errorf("failed to import server")
	}

	return server, nil
}

// Sync re-fetches metadata for an already imported listing and overwrites
// title, description, stars and forks only. Category, status and ownership are
// never touched.
func (s Service) Sync(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*model.Server, error) {
	server, err := s.repository.findByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	if server.GithubOwner == "" || server.GithubRepo == "" {
		return nil, errdef.NewBadRequest("server %q does not have GitHub information", id)
	}

	details, err := s.githubClient.GetRepository(ctx, server.GithubOwner, server.GithubRepo)
	if err != nil {
		return nil, err
	}

	description := server.Description
	if details.Description != "" {
		description = details.Description
	}

	fields := map[string]any{
		"title":        details.Name,
		"description":  description,
		"github_stars": details.StargazersCount,
		"github_forks": details.ForksCount,
	}
	if err := s.repository.updateFields(ctx, id, authorID, fields); err != nil {
		return nil, err
	}

	return s.repository.findByID(ctx, id)
}

// InferCategory maps repository topics to a listing category. The checks run
// in fixed priority order, so a repo tagged both database and ai resolves to
// Database.
func InferCategory(topics []string) string {
	set := make(map[string]bool, len(topics))
	for _, topic := range topics {
		set[topic] = true
	}

	switch {
	case set["database"]:
		return "Database"
	case set["ai"] || set["ml"]:
		return "AI/ML"
	case set["container"] || set["kubernetes"]:
		return "Container"
	case set["runtime"]:
		return "Runtime"
	case set["devops"]:
		return "DevOps"
	default:
		return "Web"
	}
}

// ShortDescription truncates a description to 97 characters plus an ellipsis
// when it is longer than 100. Idempotent: an already short description is
// returned unchanged.
func ShortDescription(description string) string {
	if len(description) > 100 {
		return description[:97] + "..."
	}
	return description
}
