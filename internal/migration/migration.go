package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/smallbiznis/sitesapi/internal/config"
	"github.com/smallbiznis/sitesapi/internal/seed"
	"github.com/smallbiznis/sitesapi/internal/site/domain"
	pkgdb "github.com/smallbiznis/sitesapi/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run prepares the schema for the configured dialect and seeds sample sites when enabled.
func Run(ctx context.Context, conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.DBType == "postgres" {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
	} else {
		if err := AutoMigrate(conn.WithContext(ctx)); err != nil {
			return err
		}
	}
	log.Info("schema ready", zap.String("type", cfg.DBType))

	if !cfg.SeedSampleData {
		return nil
	}
	if err := seed.EnsureSampleSites(ctx, conn); err != nil {
		return fmt.Errorf("seed sample sites: %w", err)
	}
	log.Info("sample sites seeded")
	return nil
}

// AutoMigrate creates the schema through GORM for dialects without SQL migrations.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(&domain.UseType{}, &domain.Site{}, &domain.SiteUse{})
}

// RunMigrations applies the embedded postgres migrations.
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		if pkgdb.IsConnectionErr(upErr) {
			return fmt.Errorf("apply migrations: database unavailable: %w", upErr)
		}
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}
