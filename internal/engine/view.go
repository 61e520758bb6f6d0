package engine

import "kpidex/pkg/catalog"

// View holds the ephemeral browse state (query text and selected
// category) and keeps the derived state consistent with it. Every
// mutation eagerly recomputes visible categories, reconciles the
// selection, and refilters the displayed records, so a caller can never
// observe a selection pointing at a filtered-out category.
//
// View is a single-consumer convenience for presentation layers; it does
// no locking. Stateless callers can use Engine directly.
type View struct {
	engine *Engine

	query    string
	selected string

	visible []CategorySummary
	records []catalog.MetricRecord
}

// Snapshot is a point-in-time copy of the view's derived state.
type Snapshot struct {
	Query            string                 `json:"query"`
	SelectedCategory string                 `json:"selected_category"`
	Categories       []CategorySummary      `json:"categories"`
	Records          []catalog.MetricRecord `json:"records"`
}

// NewView creates a View over the catalog with an empty query. The
// initial selection reconciles to the first visible category.
func NewView(eng *Engine) *View {
	v := &View{engine: eng}
	v.recompute()
	return v
}

// SetQuery replaces the free-text query and recomputes derived state.
func (v *View) SetQuery(text string) {
	v.query = text
	v.recompute()
}

// SetSelectedCategory replaces the selection and recomputes derived
// state. A name that is not currently visible reconciles away to the
// first visible category.
func (v *View) SetSelectedCategory(name string) {
	v.selected = name
	v.recompute()
}

// Query returns the current query text.
func (v *View) Query() string { return v.query }

// SelectedCategory returns the current (reconciled) selection.
func (v *View) SelectedCategory() string { return v.selected }

// Snapshot returns a copy of the current derived state.
func (v *View) Snapshot() Snapshot {
	cats := make([]CategorySummary, len(v.visible))
	copy(cats, v.visible)
	recs := make([]catalog.MetricRecord, len(v.records))
	copy(recs, v.records)
	return Snapshot{
		Query:            v.query,
		SelectedCategory: v.selected,
		Categories:       cats,
		Records:          recs,
	}
}

// recompute rederives visible categories, selection, and records from
// (catalog, query, selection).
func (v *View) recompute() {
	v.visible = v.engine.VisibleCategories(v.query)
	v.selected = ReconcileSelection(v.visible, v.selected)
	v.records = v.engine.DisplayRecords(v.query, v.selected)
}
