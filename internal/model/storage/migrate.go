package storage

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/logger"
	"max.ks1230/khqr-bot/migrations"
)

func schemaSource() (source.Driver, error) {
	src, err := iofs.New(migrations.FS, ".")
	return src, errors.Wrap(err, "open schema migrations")
}

// Migrate brings the database schema up to the latest migration.
func Migrate(db *sql.DB) error {
	src, err := schemaSource()
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return errors.Wrap(err, "init migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "init migrate")
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("database schema is up to date")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "migrate up")
	}

	version, _, _ := m.Version()
	logger.Info("database schema migrated", zap.Uint("version", version))
	return nil
}
