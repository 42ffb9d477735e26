package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/infrastructure/config"
	"github.com/invoicehub/backend/internal/infrastructure/logger"
	"github.com/invoicehub/backend/internal/infrastructure/migration"
)

func main() {
	var (
		source  = flag.String("source", "migrations", "path to migration files")
		command = flag.String("command", "up", "up | down | version | force")
		version = flag.Int("version", 0, "target version for force")
	)
	flag.Parse()

	if err := run(*source, *command, *version); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(source, command string, version int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	m, err := migration.New(cfg.Database, source, log)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		log.Info("schema version", zap.Uint("version", v), zap.Bool("dirty", dirty))
		return nil
	case "force":
		return m.Force(version)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
