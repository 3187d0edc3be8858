package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/PennyPaws/petengine-go/config"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the schema up to date. Postgres runs the versioned SQL
// migrations; sqlite (local development only) falls back to gorm
// auto-migration of the given models.
func (d *DB) Migrate(cfg config.DBConfig, models ...interface{}) error {
	if cfg.Driver == "sqlite" {
		return d.DB.AutoMigrate(models...)
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql db: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.DataBase, driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
