package storage

import (
	"fmt"
	"log/slog"

	slogGorm "github.com/orandin/slog-gorm"

	"github.com/mcpmarket/marketplace-manager/pkg/config"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger: slogGorm.New(
			slogGorm.WithHandler(logger.Handler()),
			slogGorm.WithTraceAll(),
		),
		// unique violations have to surface as gorm.ErrDuplicatedKey so they can
		// be reported as conflicts
		TranslateError: true,
		// server references on deployments and saved servers are soft; those
		// rows may outlive the listing they point at
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Server{},
		&model.Deployment{},
		&model.SavedServer{},
		&model.Notification{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
