// Package inttest enables writing of integration tests. Setup functions start Docker
// containers for dependencies like PostgreSQL, ensure the container is ready before
// returning, clean up after the tests are finished and return a client ready to
// interact with the container.
package inttest

import (
	"log/slog"
	"testing"

	_ "github.com/lib/pq" // postgres driver
	"github.com/orlangure/gnomock"
	"github.com/orlangure/gnomock/preset/postgres"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mcpmarket/marketplace-manager/pkg/config"
	"github.com/mcpmarket/marketplace-manager/pkg/storage"
)

// SetupDB creates a PostgreSQL container. Gorm is connected to the DB and runs the migrations.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	container, err := gnomock.Start(
		postgres.Preset(
			postgres.WithUser("mcp", "mcp"),
			postgres.WithDatabase("test_mcp"),
		),
	)
	require.NoError(t, err, "failed to start DB")
	t.Cleanup(func() { require.NoError(t, gnomock.Stop(container), "failed to stop DB") })

	logger := slog.New(slog.DiscardHandler)
	db, err := storage.NewDatabase(logger, config.Postgresql{
		Host:         container.Host,
		Port:         container.DefaultPort(),
		Username:     "mcp",
		Password:     "mcp",
		DatabaseName: "test_mcp",
	})
	require.NoError(t, err, "failed to setup DB")
	return db
}
