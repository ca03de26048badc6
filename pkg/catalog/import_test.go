package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name     string
		topics   []string
		expected string
	}{
		{"database", []string{"mcp", "database", "postgres"}, "Database"},
		{"databaseBeatsAi", []string{"ai", "database"}, "Database"},
		{"ai", []string{"ai", "llm"}, "AI/ML"},
		{"ml", []string{"ml"}, "AI/ML"},
		{"container", []string{"container"}, "Container"},
		{"kubernetes", []string{"kubernetes"}, "Container"},
		{"runtime", []string{"runtime"}, "Runtime"},
		{"devops", []string{"devops"}, "DevOps"},
		{"noTopics", nil, "Web"},
		{"unknownTopics", []string{"mcp", "golang"}, "Web"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, InferCategory(test.topics))
		})
	}
}

func TestShortDescription_LongDescriptionIsTruncated(t *testing.T) {
	long := strings.Repeat("a", 150)

	short := ShortDescription(long)

	assert.Len(t, short, 100)
	assert.True(t, strings.HasSuffix(short, "..."))
}

func TestShortDescription_ShortDescriptionIsUnchanged(t *testing.T) {
	assert.Equal(t, "short enough", ShortDescription("short enough"))

	exactly := strings.Repeat("a", 100)
	assert.Equal(t, exactly, ShortDescription(exactly))
}

func TestShortDescription_Idempotent(t *testing.T) {
	long := strings.Repeat("a", 150)

	once := ShortDescription(long)
	twice := ShortDescription(once)

	assert.Equal(t, once, twice)
}
