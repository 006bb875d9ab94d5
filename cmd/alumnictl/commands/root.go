// Package commands implements the alumnictl operator commands.
package commands

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/alumnet/internal/bootstrap"
	"github.com/yigit/alumnet/internal/config"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/logger"
	"github.com/yigit/alumnet/internal/pkg/printer"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "alumnictl",
	Short: "Operator tooling for the AlumNet API",
	Long: `alumnictl manages an AlumNet deployment: it applies or rolls back the
database schema and provisions administrator accounts, which cannot be
created through the public registration endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersion sets the version reported by --version
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML configuration file")
}

// connect loads the configuration and opens the database. Logs stay at warn
// level so the printer output is what the operator reads.
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, zerolog.Logger{}, printer.Error("Invalid configuration", err.Error(),
			map[string]string{"config": configPath},
			"set JWT_SECRET and the DB_* variables, or pass --config")
	}

	lgr := logger.Configure(logger.Config{Level: logger.WarnLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, lgr, printer.Error("Cannot reach the database", err.Error(),
			map[string]string{"host": cfg.Database.Host, "database": cfg.Database.DBName})
	}
	return cfg, database.Pool, lgr, nil
}
