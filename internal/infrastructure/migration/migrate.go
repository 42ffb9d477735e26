package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/infrastructure/config"
)

// Migrator wraps golang-migrate for the schema under migrations/
type Migrator struct {
	m   *migrate.Migrate
	log *zap.Logger
}

// New creates a migrator reading SQL files from sourcePath
func New(cfg config.DatabaseConfig, sourcePath string, log *zap.Logger) (*Migrator, error) {
	m, err := migrate.New("file://"+sourcePath, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

// Up applies all pending migrations
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.log.Info("no pending migrations")
			return nil
		}
		return fmt.Errorf("migration up failed: %w", err)
	}
	m.log.Info("migrations applied")
	return nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down() error {
	if err := m.m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.log.Info("nothing to roll back")
			return nil
		}
		return fmt.Errorf("migration down failed: %w", err)
	}
	m.log.Info("rolled back one migration")
	return nil
}

// Version reports the current schema version and dirty state
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Force sets the schema version without running migrations
func (m *Migrator) Force(version int) error {
	return m.m.Force(version)
}

// Close releases source and database handles
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
