// Package api serves the KPI catalog browse API: category listings with
// match counts, filtered record sets, per-record detail fields, and a
// CSV export.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"kpidex/internal/engine"
	"kpidex/internal/server"
	"kpidex/pkg/catalog"
)

// CategoriesResponse is the response for GET /api/v1/catalog/categories.
type CategoriesResponse struct {
	Query      string                   `json:"query"`
	Count      int                      `json:"count"`
	Categories []engine.CategorySummary `json:"categories"`
}

// RecordsResponse is the response for GET /api/v1/catalog/records.
type RecordsResponse struct {
	Query            string                 `json:"query"`
	SelectedCategory string                 `json:"selected_category"`
	Count            int                    `json:"count"`
	Records          []catalog.MetricRecord `json:"records"`
}

// Handler serves the catalog browse API.
type Handler struct {
	engine *engine.Engine
	logger *zap.Logger
}

// NewHandler creates a new catalog API handler.
func NewHandler(eng *engine.Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: eng, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/catalog/categories", h.handleCategories)
	mux.HandleFunc("GET /api/v1/catalog/records", h.handleRecords)
	mux.HandleFunc("GET /api/v1/catalog/records/{id}", h.handleRecord)
	mux.HandleFunc("GET /api/v1/catalog/records/{id}/details", h.handleRecordDetails)
	mux.HandleFunc("GET /api/v1/catalog/export.csv", h.handleExportCSV)
}

// handleCategories returns the visible categories for a query.
//
//	@Summary		List visible categories
//	@Description	Returns categories visible for the given search query, in catalog order, with per-category match counts. Empty categories are never returned.
//	@Tags			catalog
//	@Produce		json
//	@Param			q query string false "Free-text search query"
//	@Success		200 {object} CategoriesResponse
//	@Router			/catalog/categories [get]
func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	categories := h.engine.VisibleCategories(query)
	if categories == nil {
		categories = []engine.CategorySummary{}
	}

	writeJSON(w, http.StatusOK, CategoriesResponse{
		Query:      query,
		Count:      len(categories),
		Categories: categories,
	})
}

// handleRecords returns the displayed record set for a query and
// selection.
//
//	@Summary		List displayed records
//	@Description	Returns the records to display. With a non-empty query the search is global across all categories and the category parameter only seeds selection reconciliation; with an empty query the selected category's records are returned. The reconciled selection is echoed back.
//	@Tags			catalog
//	@Produce		json
//	@Param			q query string false "Free-text search query"
//	@Param			category query string false "Selected category display name"
//	@Success		200 {object} RecordsResponse
//	@Router			/catalog/records [get]
func (h *Handler) handleRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	selected := r.URL.Query().Get("category")

	visible := h.engine.VisibleCategories(query)
	selected = engine.ReconcileSelection(visible, selected)
	records := h.engine.DisplayRecords(query, selected)
	if records == nil {
		records = []catalog.MetricRecord{}
	}

	writeJSON(w, http.StatusOK, RecordsResponse{
		Query:            query,
		SelectedCategory: selected,
		Count:            len(records),
		Records:          records,
	})
}

// handleRecord returns a single record by its derived ID.
//
//	@Summary		Get one record
//	@Description	Returns the record with the given derived ID ("{slug}-{index}").
//	@Tags			catalog
//	@Produce		json
//	@Param			id path string true "Record ID"
//	@Success		200 {object} catalog.MetricRecord
//	@Failure		404 {object} server.Problem
//	@Router			/catalog/records/{id} [get]
func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, ok := h.engine.Catalog().RecordByID(id)
	if !ok {
		server.NotFound(w, "record "+id+" not found", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleRecordDetails returns the renderable detail fields of a record.
//
//	@Summary		Get record detail fields
//	@Description	Returns the record's optional fields in fixed display order with icon identifiers. Placeholder values ("", "-", "null") are omitted.
//	@Tags			catalog
//	@Produce		json
//	@Param			id path string true "Record ID"
//	@Success		200 {array} engine.DetailField
//	@Failure		404 {object} server.Problem
//	@Router			/catalog/records/{id}/details [get]
func (h *Handler) handleRecordDetails(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, ok := h.engine.Catalog().RecordByID(id)
	if !ok {
		server.NotFound(w, "record "+id+" not found", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, engine.DetailFields(rec))
}

// handleExportCSV streams the full catalog as CSV.
//
//	@Summary		Export the catalog as CSV
//	@Description	Returns every record across all categories, in catalog order, as a CSV download.
//	@Tags			catalog
//	@Produce		text/csv
//	@Success		200 {string} string "CSV payload"
//	@Router			/catalog/export.csv [get]
func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="kpi-catalog.csv"`)

	if err := writeCatalogCSV(w, h.engine.Catalog()); err != nil {
		// Headers are already gone; all we can do is log.
		h.logger.Error("csv export failed", zap.Error(err))
	}
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
