package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
	"github.com/google/uuid"
)

// FileWriter is a PackageWriter that also accepts non-tabular files.
type FileWriter interface {
	PackageWriter
	AddFile(name string, content []byte) error
}

// ExportPackage writes the workflow files of moduleName followed by their
// descriptor, encoded in format. An empty store produces no file at all.
// On error the caller discards whatever w received.
func (e *Exporter) ExportPackage(ctx context.Context, moduleName string, format dataconfig.Format, w FileWriter) error {
	logger := slog.With("module", moduleName, "run_id", uuid.New().String())
	logger.Info("Starting export", "schema_version", SchemaVersion)

	cfg := &dataconfig.Config{}
	if err := e.ExportWkf(ctx, moduleName, w, cfg); err != nil {
		logger.Error("Export failed", "error", err)
		return err
	}
	if cfg.Empty() {
		logger.Info("Nothing exported")
		return nil
	}

	content, err := dataconfig.Encode(cfg, format)
	if err != nil {
		return err
	}
	name := dataconfig.FileName(ModulePrefix(moduleName), format)
	if err := w.AddFile(name, content); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	logger.Info("Export finished", "inputs", len(cfg.Inputs), "descriptor", name)
	return nil
}
