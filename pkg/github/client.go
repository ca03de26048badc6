// Package github is a thin client for the public GitHub REST API. Search
// degrades to a fixed example dataset when the API is rate limited or
// unreachable; the fallback is flagged so it is never mistaken for real data.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mcpmarket/marketplace-manager/internal/errdef"
)

const DefaultSearchQuery = "topic:mcp-server"

type Repository struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	Topics          []string `json:"topics"`
	Owner           Owner    `json:"owner"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	HTMLURL         string   `json:"html_url"`
	UpdatedAt       string   `json:"updated_at"`
}

type Owner struct {
	Login string `json:"login"`
}

func NewClient(logger *slog.Logger, baseURL string, token string) *Client {
	return &Client{
		logger:  logger,
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type Client struct {
	logger  *slog.Logger
	baseURL string
	token   string
	client  *http.Client
}

// SearchRepositories searches repositories by free text or topic query,
// ordered by stars. The returned flag reports whether the fixed fallback
// dataset was served instead of live data.
func (c Client) SearchRepositories(ctx context.Context, query string) ([]Repository, bool, error) {
	if query == "" {
		query = DefaultSearchQuery
	}

	u := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc", c.baseURL, url.QueryEscape(query))
	var response struct {
		Items []Repository `json:"items"`
	}
	err := c.get(ctx, u, &response)
	if err != nil {
		c.logger.WarnContext(ctx, "GitHub search unavailable, serving fallback dataset", "query", query, "error", err)
		return mockRepositories(query), true, nil
	}

	return response.Items, false, nil
}

// GetRepository fetches a single repository by owner and name.
func (c Client) GetRepository(ctx context.Context, owner string, repo string) (*Repository, error) {
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	var repository Repository
	if err := c.get(ctx, u, &repository); err != nil {
		return nil, err
	}
	return &repository, nil
}

// GetReadme fetches a repository's README as decoded text.
func (c Client) GetReadme(ctx context.Context, owner string, repo string) (string, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	var response struct {
		Content string `json:"content"`
	}
	if err := c.get(ctx, u, &response); err != nil {
		return "", err
	}

	content, err := base64.StdEncoding.DecodeString(response.Content)
	if err != nil {
		return "", errdef.NewBadGateway("failed to decode README content: %v", err)
	}

	return string(content), nil
}

func (c Client) get(ctx context.Context, url string, v any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return errdef.NewBadGateway("failed to reach GitHub: %v", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return errdef.NewBadGateway("GitHub API returned status %d", response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(v); err != nil {
		return errdef.NewBadGateway("failed to decode GitHub response: %v", err)
	}

	return nil
}
