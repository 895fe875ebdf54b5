package wkfport

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/RealZimboGuy/wkfport/internal/archive"
	"github.com/RealZimboGuy/wkfport/internal/config"
	"github.com/RealZimboGuy/wkfport/internal/controllers"
	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
	"github.com/RealZimboGuy/wkfport/internal/export"
	"github.com/RealZimboGuy/wkfport/internal/repository"

	"github.com/lmittmann/tint"
)

// Exporters builds the export pipeline of a store.
type Exporters struct {
	Wkf *export.Exporter
}

// NewExporters wires the exporters to the repositories of db.
func NewExporters(db *sql.DB, modelPackage string) *Exporters {
	resolver := export.NewModelResolver(repository.NewMetaJsonModelRepository(db), modelPackage)
	return &Exporters{
		Wkf: export.NewExporter(repository.NewWkfRepository(db), resolver),
	}
}

// ExportModule writes the workflow package of moduleName to w and logs the
// resulting entries.
func (e *Exporters) ExportModule(ctx context.Context, moduleName string, format dataconfig.Format, w archive.Writer) error {
	if err := e.Wkf.ExportPackage(ctx, moduleName, format, w); err != nil {
		return err
	}
	for _, entry := range w.Entries() {
		slog.Info("Package entry", "file", entry.Name, "rows", entry.Rows, "size", entry.Size, "digest", entry.Digest)
	}
	return nil
}

// OpenDatabase migrates and opens the store described by s.
func OpenDatabase(s config.Settings) (*sql.DB, error) {
	return repository.OpenDatabase(s)
}

// Serve exposes the export endpoints over HTTP. It blocks until the server stops.
func Serve(db *sql.DB, s config.Settings, mux *http.ServeMux) error {
	if mux == nil {
		mux = http.NewServeMux()
	}
	exportController := controllers.NewExportController(NewExporters(db, s.ModelPackage).Wkf, dataconfig.Format(s.DescriptorFormat))
	exportController.RegisterRoutes(mux)

	addr := ":" + strconv.Itoa(s.WebPort)
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		addr = v
	}
	slog.Info("Starting HTTP server", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("HTTP server failed", "error", err)
		return err
	}
	return nil
}

func SetupLogger(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      l,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}
