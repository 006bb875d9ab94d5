package commands

import (
	"github.com/spf13/cobra"

	"github.com/yigit/alumnet/internal/app/migrations"
	"github.com/yigit/alumnet/internal/pkg/printer"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cmd, func(m *migrations.Migrator) error { return m.Up() }, "Schema is up to date")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration, dropping all data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmDown {
			return printer.Error("Refusing to roll back", "migrate down drops every table and its data.",
				nil, "re-run with --yes to confirm")
		}
		return runMigration(cmd, func(m *migrations.Migrator) error { return m.Down() }, "Schema rolled back")
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cmd, func(m *migrations.Migrator) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if dirty {
				printer.Warning("schema version %d is dirty, a migration failed half way\n", version)
				return nil
			}
			printer.Info("schema version %d\n", version)
			return nil
		}, "")
	},
}

var confirmDown bool

func init() {
	migrateDownCmd.Flags().BoolVar(&confirmDown, "yes", false, "confirm dropping all data")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runMigration(cmd *cobra.Command, run func(*migrations.Migrator) error, done string) error {
	_, pool, lgr, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := migrations.NewMigrator(pool, lgr)
	if err != nil {
		return printer.Error("Cannot prepare migrations", err.Error(), nil)
	}
	if err := run(migrator); err != nil {
		return printer.Error("Migration failed", err.Error(), nil)
	}
	if done != "" {
		printer.Success("%s\n", done)
	}
	return nil
}
