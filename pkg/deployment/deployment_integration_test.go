package deployment_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/catalog"
	"github.com/mcpmarket/marketplace-manager/pkg/deployment"
	"github.com/mcpmarket/marketplace-manager/pkg/inttest"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"github.com/mcpmarket/marketplace-manager/pkg/notification"
)

func TestDeployments(t *testing.T) {
	db := inttest.SetupDB(t)
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	repository := deployment.NewRepository(db)
	catalogRepository := catalog.NewRepository(db)
	service := deployment.NewService(logger, repository, catalogRepository)
	notificationService := notification.NewService(logger, notification.NewRepository(db), notification.NewBroker())
	provisioner := deployment.NewProvisioner(logger, repository, notificationService, 2*time.Minute, time.Hour)

	owner := &model.User{Email: "owner@mcpmarket.dev", Password: "hash"}
	stranger := &model.User{Email: "stranger@mcpmarket.dev", Password: "hash"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(stranger).Error)

	server := &model.Server{Title: "PostgreSQL Cluster", AuthorID: stranger.ID, Status: model.ServerStatusPublished}
	require.NoError(t, db.Create(server).Error)

	created, err := service.Create(ctx, owner.ID, deployment.CreateDeployment{
		ServerID: server.ID,
		Name:     "prod",
		Provider: "aws",
		Region:   "us-east-1",
	})
	require.NoError(t, err)

	t.Run("CreateStartsPendingAndBumpsCounter", func(t *testing.T) {
		assert.Equal(t, model.DeploymentStatusPending, created.Status)
		assert.Nil(t, created.IPAddress)

		var counted model.Server
		require.NoError(t, db.First(&counted, "id = ?", server.ID).Error)
		assert.Equal(t, 1, counted.Deployments)
	})

	t.Run("FindByStrangerIsNotFound", func(t *testing.T) {
		_, err := service.FindByID(ctx, created.ID, stranger.ID)

		require.Error(t, err)
		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("SweepActivatesOnlyDueDeployments", func(t *testing.T) {
		due := created
		require.NoError(t, db.Model(&model.Deployment{}).
			Where("id = ?", due.ID).
			UpdateColumn("created_at", time.Now().Add(-5*time.Minute)).Error)
		fresh, err := service.Create(ctx, owner.ID, deployment.CreateDeployment{
			ServerID: server.ID,
			Name:     "staging",
			Provider: "gcp",
			Region:   "us-central1",
		})
		require.NoError(t, err)

		provisioner.Sweep(ctx)

		activated, err := service.FindByID(ctx, due.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, model.DeploymentStatusActive, activated.Status)
		require.NotNil(t, activated.IPAddress)
		assert.True(t, strings.HasPrefix(*activated.IPAddress, "192.168."))

		untouched, err := service.FindByID(ctx, fresh.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, model.DeploymentStatusPending, untouched.Status)
		assert.Nil(t, untouched.IPAddress)
	})

	t.Run("SweepNotifiesTheOwnerExactlyOnce", func(t *testing.T) {
		notifications, err := notificationService.List(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, "Deployment Successful", notifications[0].Title)
		assert.Equal(t, model.NotificationTypeSuccess, notifications[0].Type)

		provisioner.Sweep(ctx)

		notifications, err = notificationService.List(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, notifications, 1)
	})

	t.Run("DeleteLowersTheCounter", func(t *testing.T) {
		err := service.Delete(ctx, created.ID, owner.ID)

		require.NoError(t, err)
		var counted model.Server
		require.NoError(t, db.First(&counted, "id = ?", server.ID).Error)
		assert.Equal(t, 1, counted.Deployments)
	})
}
