package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
)

func NewHandler(client client) Handler {
	return Handler{client}
}

type Handler struct {
	client client
}

type client interface {
	SearchRepositories(ctx context.Context, query string) ([]Repository, bool, error)
	GetReadme(ctx context.Context, owner string, repo string) (string, error)
}

type serverEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Author      string   `json:"author"`
	GithubURL   string   `json:"githubUrl"`
	GithubStars int      `json:"githubStars"`
	GithubForks int      `json:"githubForks"`
	Topics      []string `json:"topics"`
}

type serversResponse struct {
	Servers []serverEntry `json:"servers"`
	// Fallback reports that the fixed example dataset was served because the
	// live API was unavailable
	Fallback bool `json:"fallback"`
}

// Servers searches GitHub for importable repositories and maps them to
// catalog-shaped entries.
func (h Handler) Servers(c *gin.Context) {
	query := c.Query("query")

	repositories, fallback, err := h.client.SearchRepositories(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	servers := make([]serverEntry, len(repositories))
	for i, repository := range repositories {
		description := repository.Description
		if description == "" {
			description = "No description available"
		}
		servers[i] = serverEntry{
			Title:       repository.Name,
			Description: description,
			Category:    categoryFromTopics(repository.Topics),
			ImageURL:    fmt.Sprintf("https://opengraph.githubassets.com/1/%s", repository.FullName),
			Author:      repository.Owner.Login,
			GithubURL:   repository.HTMLURL,
			GithubStars: repository.StargazersCount,
			GithubForks: repository.ForksCount,
			Topics:      repository.Topics,
		}
	}

	c.JSON(http.StatusOK, serversResponse{Servers: servers, Fallback: fallback})
}

// Readme returns a repository's README as decoded text.
func (h Handler) Readme(c *gin.Context) {
	owner := c.Query("owner")
	repo := c.Query("repo")
	if owner == "" || repo == "" {
		_ = c.Error(errdef.NewBadRequest("owner and repo parameters are required"))
		return
	}

	content, err := h.client.GetReadme(c.Request.Context(), owner, repo)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// categoryFromTopics mirrors the import pipeline's category priority order.
func categoryFromTopics(topics []string) string {
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
