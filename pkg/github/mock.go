package github

import "strings"

// mockRepositories is the fixed example dataset served when the live API is
// rate limited or unreachable.
func mockRepositories(query string) []Repository {
	repositories := []Repository{
		{
			Name:            "GitHub MCP Server",
			FullName:        "mcpmarket/github-mcp-server",
			Description:     "A Model Content Protocol server for the GitHub API",
			Topics:          []string{"mcp-server", "github", "api"},
			Owner:           Owner{Login: "mcpmarket"},
			StargazersCount: 124,
			ForksCount:      32,
			HTMLURL:         "https://github.com/mcpmarket/github-mcp-server",
		},
		{
			Name:            "Linear MCP Server",
			FullName:        "mcpmarket/linear-mcp-server",
			Description:     "Connect to Linear issue tracking with this MCP server",
			Topics:          []string{"mcp-server", "linear", "issue-tracking"},
			Owner:           Owner{Login: "mcpmarket"},
			StargazersCount: 87,
			ForksCount:      15,
			HTMLURL:         "https://github.com/mcpmarket/linear-mcp-server",
		},
		{
			Name:            "n8n Workflow Server",
			FullName:        "mcpmarket/n8n-workflow-server",
			Description:     "MCP server for n8n workflow automation",
			Topics:          []string{"mcp-server", "n8n", "automation"},
			Owner:           Owner{Login: "mcpmarket"},
			StargazersCount: 156,
			ForksCount:      41,
			HTMLURL:         "https://github.com/mcpmarket/n8n-workflow-server",
		},
		{
			Name:            "PostgreSQL MCP Server",
			FullName:        "mcpmarket/postgres-mcp-server",
			Description:     "Database operations via MCP protocol for PostgreSQL",
			Topics:          []string{"mcp-server", "database", "postgresql"},
			Owner:           Owner{Login: "mcpmarket"},
			StargazersCount: 92,
			ForksCount:      18,
			HTMLURL:         "https://github.com/mcpmarket/postgres-mcp-server",
		},
		{
			Name:            "AI Assistant MCP Server",
			FullName:        "mcpmarket/ai-assistant-server",
			Description:     "Connect to various AI models through a unified MCP interface",
			Topics:          []string{"mcp-server", "ai", "ml", "llm"},
			Owner:           Owner{Login: "mcpmarket"},
			StargazersCount: 213,
			ForksCount:      67,
			HTMLURL:         "https://github.com/mcpmarket/ai-assistant-server",
		},
	}

	if query == "" || query == DefaultSearchQuery {
		return repositories
	}

	terms := strings.Fields(strings.ToLower(strings.ReplaceAll(query, DefaultSearchQuery, "")))
	if len(terms) == 0 {
		return repositories
	}

	var matches []Repository
	for _, repository := range repositories {
		if matchesAny(repository, terms) {
			matches = append(matches, repository)
		}
	}
	return matches
}

func matchesAny(repository Repository, terms []string) bool {
	name := strings.ToLower(repository.Name)
	description := strings.ToLower(repository.Description)
	for _, term := range terms {
		if strings.Contains(name, term) || strings.Contains(description, term) {
			return true
		}
		for _, topic := range repository.Topics {
			if strings.Contains(strings.ToLower(topic), term) {
				return true
			}
		}
	}
	return false
}
