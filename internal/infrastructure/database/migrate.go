package database

import (
	"embed"
	"fmt"
	"io"

	"github.com/amacneil/dbmate/v2/pkg/dbmate"
	_ "github.com/amacneil/dbmate/v2/pkg/driver/postgres"
	"github.com/gdugdh24/profiles-backend/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema migrations.
func Migrate(cfg *config.DatabaseConfig) error {
	db := dbmate.New(cfg.GetURL())
	db.FS = migrationsFS
	db.MigrationsDir = []string{"migrations"}
	db.AutoDumpSchema = false
	db.Log = io.Discard

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
