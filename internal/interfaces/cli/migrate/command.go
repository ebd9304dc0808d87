// Package migrate implements the `prio migrate` command.
package migrate

import (
	"errors"
	"fmt"

	gomigrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	appconfig "prio/internal/infrastructure/config"
	"prio/internal/shared/config"
	"prio/internal/shared/logger"
)

// NewCommand builds the migrate command with up/down subcommands.
func NewCommand() *cobra.Command {
	var configPath string
	var migrationsDir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.PersistentFlags().StringVarP(&migrationsDir, "dir", "d", "migrations", "migrations directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(configPath, migrationsDir, func(m *gomigrate.Migrate) error {
				return m.Up()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(configPath, migrationsDir, func(m *gomigrate.Migrate) error {
				return m.Steps(-1)
			})
		},
	})

	return cmd
}

func runMigration(configPath, migrationsDir string, fn func(m *gomigrate.Migrate) error) error {
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.NewLogger().Named("migrate")

	m, err := gomigrate.New("file://"+migrationsDir, migrateDSN(&cfg.Database))
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Warnw("failed to close migration source", "error", srcErr)
		}
		if dbErr != nil {
			log.Warnw("failed to close migration database", "error", dbErr)
		}
	}()

	if err := fn(m); err != nil {
		if errors.Is(err, gomigrate.ErrNoChange) {
			log.Infow("database is up to date")
			return nil
		}
		return fmt.Errorf("run migration: %w", err)
	}

	log.Infow("migration complete")
	return nil
}

func migrateDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s?multiStatements=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}
