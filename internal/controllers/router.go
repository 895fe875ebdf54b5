package controllers

import "net/http"

// RegisterRoutes wires the HTTP routes for this controller.
func (c *ExportController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/export/{module}", c.handleExportModule)
	mux.HandleFunc("GET /api/export/{module}/manifest", c.handleExportManifest)
}
