// main.go
package main

import (
	"context"
	"log"
	"time"

	"resource-booking/cmd"
	"resource-booking/internal/data/entity"
	"resource-booking/internal/data/repository"
	"resource-booking/internal/wire"
	"resource-booking/pkg/database"
	"resource-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Select storage driver
	repo, cleanup, err := initRepository(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	// Wire all dependencies
	app := wire.Wiring(repo, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func initRepository(config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	if config.Store.Driver == "postgres" {
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, nil, err
		}

		if err := database.Migrate(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}

		logger.Info("Database connected and migrated")
		return repository.NewPostgresRepository(db, logger), db.Close, nil
	}

	// Memory driver: state lives in process memory only and is lost on
	// restart. Seed the initial admin account and resource catalog.
	repo := repository.NewMemoryRepository()

	if err := seedMemoryStore(repo, config, logger); err != nil {
		return nil, nil, err
	}

	return repo, func() {}, nil
}

func seedMemoryStore(repo *repository.Repository, config *utils.Config, logger *zap.Logger) error {
	var admin *entity.User

	if config.Auth.AdminEmail != "" && config.Auth.AdminPassword != "" {
		hash, err := utils.HashPassword(config.Auth.AdminPassword)
		if err != nil {
			return err
		}

		admin = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			Name:         config.Auth.AdminName,
			Email:        config.Auth.AdminEmail,
			PasswordHash: hash,
			Role:         entity.RoleAdmin,
			IsActive:     true,
		}
	} else {
		logger.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, no admin account seeded")
	}

	if err := repository.Seed(context.Background(), repo, admin, entity.DefaultResources()); err != nil {
		return err
	}

	logger.Info("Memory store seeded", zap.Bool("admin", admin != nil))
	return nil
}
