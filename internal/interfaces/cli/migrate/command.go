package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sepapay/internal/infrastructure/config"
	"sepapay/internal/infrastructure/database"
	"sepapay/internal/infrastructure/migration"
	"sepapay/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Manage database schema migrations for the payment service.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())
	cmd.AddCommand(newDownCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newForceCommand())
	cmd.AddCommand(newAutoCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath())
			return strategy.Migrate(database.Get())
		},
	}
}

func newDownCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath()).(*migration.GolangMigrateStrategy)
			return strategy.MigrateDown(database.Get(), steps)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "s", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath()).(*migration.GolangMigrateStrategy)
			version, dirty, err := strategy.GetVersion(database.Get())
			if err != nil {
				return fmt.Errorf("failed to get migration version: %w", err)
			}

			fmt.Printf("version: %d\ndirty: %v\n", version, dirty)
			return nil
		},
	}
}

func newForceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "force [version]",
		Short: "Force the migration version and clear the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var version int
			if _, err := fmt.Sscanf(args[0], "%d", &version); err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}

			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath()).(*migration.GolangMigrateStrategy)
			return strategy.Force(database.Get(), version)
		},
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Run GORM auto-migration (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(); err != nil {
				return err
			}
			defer database.Close()

			manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
			return manager.Migrate(database.Get(), migration.AutoMigrateModels()...)
		},
	}
}

func initEnv() error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func scriptsPath() string {
	path, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
	return path
}
