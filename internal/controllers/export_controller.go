package controllers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/RealZimboGuy/wkfport/internal/archive"
	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
	"github.com/RealZimboGuy/wkfport/internal/export"
	"github.com/RealZimboGuy/wkfport/internal/util"
)

// PackageExporter produces the package of one module.
type PackageExporter interface {
	ExportPackage(ctx context.Context, moduleName string, format dataconfig.Format, w export.FileWriter) error
}

// ExportController serves module packages over HTTP.
type ExportController struct {
	Exporter      PackageExporter
	DefaultFormat dataconfig.Format
}

func NewExportController(exporter PackageExporter, defaultFormat dataconfig.Format) *ExportController {
	return &ExportController{Exporter: exporter, DefaultFormat: defaultFormat}
}

// ManifestResponse lists the files a package of Module contains.
type ManifestResponse struct {
	Module        string          `json:"module"`
	SchemaVersion int             `json:"schemaVersion"`
	Entries       []archive.Entry `json:"entries"`
}

// build runs the export into memory so a failure never reaches the client half written.
func (c *ExportController) build(r *http.Request) (*bytes.Buffer, []archive.Entry, int, string) {
	module := r.PathValue("module")
	if module == "" {
		return nil, nil, http.StatusBadRequest, "module is required"
	}
	format := c.DefaultFormat
	if f := r.URL.Query().Get("format"); f != "" {
		format = dataconfig.Format(f)
	}
	if format != dataconfig.FormatXML && format != dataconfig.FormatYAML {
		return nil, nil, http.StatusBadRequest, "format must be xml or yaml"
	}

	var buf bytes.Buffer
	zw := archive.NewZipWriter(&buf)
	if err := c.Exporter.ExportPackage(r.Context(), module, format, zw); err != nil {
		slog.Error("Failed to export module", "module", module, "error", err)
		if export.IsMissingRelation(err) {
			return nil, nil, http.StatusUnprocessableEntity, err.Error()
		}
		return nil, nil, http.StatusInternalServerError, "failed to export module"
	}
	if err := zw.Close(); err != nil {
		slog.Error("Failed to close package", "module", module, "error", err)
		return nil, nil, http.StatusInternalServerError, "failed to export module"
	}
	return &buf, zw.Entries(), http.StatusOK, ""
}

func (c *ExportController) handleExportModule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	buf, _, status, msg := c.build(r)
	if status != http.StatusOK {
		http.Error(w, msg, status)
		return
	}
	module := r.PathValue("module")
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.ModulePrefix(module)+`wkf.zip"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to send package", "module", module, "error", err)
	}
}

func (c *ExportController) handleExportManifest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	_, entries, status, msg := c.build(r)
	if status != http.StatusOK {
		http.Error(w, msg, status)
		return
	}
	if entries == nil {
		entries = []archive.Entry{}
	}
	util.WriteJSONResponse(w, http.StatusOK, ManifestResponse{
		Module:        r.PathValue("module"),
		SchemaVersion: export.SchemaVersion,
		Entries:       entries,
	})
}
