package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/profiles-backend/internal/config"
	"github.com/gdugdh24/profiles-backend/internal/delivery/http"
	"github.com/gdugdh24/profiles-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/database"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/server"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/storage"
	"github.com/gdugdh24/profiles-backend/internal/repository/postgres"
	"github.com/gdugdh24/profiles-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sqlx.DB
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	if cfg.Server.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	if cfg.Database.Migrate {
		if err := database.Migrate(&cfg.Database); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("database migrated")
	}

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize photo storage
	photos, err := storage.NewPhotoStorage(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}
	log.Info("photo storage ready", "type", cfg.Storage.Type)

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		photos,
	)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileUseCase)

	// Initialize router
	router := http.NewRouter(
		profileHandler,
		log,
		cfg.Photos.MaxUploadBytes,
	)

	// Initialize server
	srv := server.NewServer(&cfg.Server, router.Setup(), log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
