package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/RealZimboGuy/wkfport/internal/archive"
	"github.com/RealZimboGuy/wkfport/internal/config"
	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
	"github.com/RealZimboGuy/wkfport/pkg/wkfport"

	"github.com/spf13/afero"
	cli "github.com/urfave/cli/v3"
)

func NewExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the workflows of the store as the package of a module",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "module",
				Aliases: []string{"m"},
				Usage:   "Destination module name",
				Sources: cli.EnvVars(config.EXPORT_MODULE),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output zip file, or a directory when not ending in .zip (default ./<module>-wkf.zip)",
				Sources: cli.EnvVars(config.EXPORT_OUTPUT),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			s := settingsFrom(command)
			s.ModuleName = command.String("module")
			s.Output = command.String("output")
			if s.ModuleName == "" {
				return fmt.Errorf("module is required")
			}
			if err := s.Validate(); err != nil {
				return err
			}

			db, err := wkfport.OpenDatabase(s)
			if err != nil {
				return err
			}
			defer db.Close()

			return exportTo(ctx, afero.NewOsFs(), wkfport.NewExporters(db, s.ModelPackage), s)
		},
	}
}

// moduleExporter produces the package of one module into w.
type moduleExporter interface {
	ExportModule(ctx context.Context, moduleName string, format dataconfig.Format, w archive.Writer) error
}

// exportTo writes the package to a zip file or a directory on fs. A failed
// export leaves no package behind.
func exportTo(ctx context.Context, fs afero.Fs, exporter moduleExporter, s config.Settings) error {
	out := s.OutputPath()
	format := dataconfig.Format(s.DescriptorFormat)

	if !strings.HasSuffix(out, ".zip") {
		return exportToDir(ctx, fs, exporter, s.ModuleName, format, out)
	}

	f, err := fs.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	w := archive.NewZipWriter(f)
	err = exporter.ExportModule(ctx, s.ModuleName, format, w)
	if err == nil {
		err = w.Close()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fs.Remove(out)
		return err
	}
	slog.Info("Package written", "output", out, "files", len(w.Entries()))
	return nil
}

// exportToDir writes the package as files under dir. On failure the files
// already written are removed, and so is dir when this export created it.
// Files that were in dir before are left alone.
func exportToDir(ctx context.Context, fs afero.Fs, exporter moduleExporter, moduleName string, format dataconfig.Format, dir string) error {
	existed, err := afero.DirExists(fs, dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}

	w := archive.NewDirWriter(fs, dir)
	err = exporter.ExportModule(ctx, moduleName, format, w)
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		for _, e := range w.Entries() {
			if rmErr := fs.Remove(filepath.Join(dir, e.Name)); rmErr != nil {
				slog.Warn("Failed to remove partial package file", "file", e.Name, "error", rmErr)
			}
		}
		if !existed {
			fs.Remove(dir)
		}
		return err
	}
	slog.Info("Package written", "output", dir, "files", len(w.Entries()))
	return nil
}

func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve module packages over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP port",
				Value:   config.DEFAULT_SERVER_WEB_PORT,
				Sources: cli.EnvVars(config.SERVER_WEB_PORT),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			s := settingsFrom(command)
			s.WebPort = command.Int("port")
			if err := s.Validate(); err != nil {
				return err
			}

			db, err := wkfport.OpenDatabase(s)
			if err != nil {
				return err
			}
			defer db.Close()

			return wkfport.Serve(db, s, nil)
		},
	}
}

func NewMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the embedded schema to the store",
		Action: func(ctx context.Context, command *cli.Command) error {
			s := settingsFrom(command)
			if err := s.Validate(); err != nil {
				return err
			}
			db, err := wkfport.OpenDatabase(s)
			if err != nil {
				return err
			}
			slog.Info("Store is up to date", "database_type", s.DatabaseType)
			return db.Close()
		},
	}
}
