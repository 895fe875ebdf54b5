package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/RealZimboGuy/wkfport/internal/config"
	"github.com/RealZimboGuy/wkfport/pkg/wkfport"

	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"
)

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("wkfport exited with error", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "wkfport",
		Usage: "Export workflow graphs into portable CSV packages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-type",
				Usage:   "Store type (POSTGRES, MYSQL, SQLLITE)",
				Sources: cli.EnvVars(config.DATABASE_TYPE),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Database connection URL (POSTGRES, MYSQL)",
				Sources: cli.EnvVars(config.DATABASE_URL),
			},
			&cli.StringFlag{
				Name:    "sqlite-file",
				Usage:   "SQLite database file",
				Value:   config.DEFAULT_SQLLITE_FILE_NAME,
				Sources: cli.EnvVars(config.DATABASE_SQLLITE_FILE_NAME),
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "Descriptor format (xml, yaml)",
				Value:   config.DESCRIPTOR_FORMAT_XML,
				Sources: cli.EnvVars(config.DESCRIPTOR_FORMAT),
			},
			&cli.StringFlag{
				Name:    "model-package",
				Usage:   "Root package of promoted models in the destination",
				Value:   config.DEFAULT_MODEL_PACKAGE,
				Sources: cli.EnvVars(config.MODEL_PACKAGE),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   config.DEFAULT_LOG_LEVEL,
				Sources: cli.EnvVars(config.LOG_LEVEL),
			},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			wkfport.SetupLogger(command.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			NewExportCommand(),
			NewServeCommand(),
			NewMigrateCommand(),
		},
	}
}

// settingsFrom builds the settings shared by every command from the flags,
// which already fall back to the environment.
func settingsFrom(command *cli.Command) config.Settings {
	s := config.Settings{
		DatabaseType:     command.String("database-type"),
		DatabaseURL:      command.String("database-url"),
		SqlLiteFileName:  command.String("sqlite-file"),
		DescriptorFormat: command.String("format"),
		ModelPackage:     command.String("model-package"),
		WebPort:          config.DEFAULT_SERVER_WEB_PORT,
		LogLevel:         command.String("log-level"),
	}
	// placeholder() in the repositories reads the dialect from the environment
	os.Setenv(config.DATABASE_TYPE, s.DatabaseType)
	return s
}
