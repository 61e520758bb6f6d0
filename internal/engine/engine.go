// Package engine provides the filter and search engine that derives all
// browse state (visible categories, match counts, displayed records,
// detail fields) from the loaded KPI catalog, a free-text query, and a
// selected category.
package engine

import (
	"strings"

	"kpidex/pkg/catalog"
)

// CategorySummary is one entry of the visible category list.
type CategorySummary struct {
	Category   string `json:"category"`
	Slug       string `json:"slug"`
	Count      int    `json:"count"`
	MatchCount int    `json:"match_count"`
}

// DetailField is one renderable optional field of a record, paired with
// its icon identifier. Icon is "" when the field has no mapped icon.
type DetailField struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// detailOrder fixes the order in which optional fields are presented.
var detailOrder = []string{"ReportPeriod", "Target", "Comment", "Contributor", "Source"}

// Engine answers filter and search queries against a loaded catalog.
// The catalog is immutable, so an Engine is safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
}

// New creates an Engine backed by the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog returns the engine's backing catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Normalize lower-cases text for case-insensitive matching. Both queries
// and field values pass through it so the comparison is symmetric.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// Matches reports whether the record satisfies the normalized query. The
// empty query matches every record. Otherwise the query must appear as a
// literal substring of at least one searchable field; there is no
// tokenization or ranking.
func Matches(rec catalog.MetricRecord, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	for _, v := range searchFields(rec) {
		if strings.Contains(Normalize(v), normalizedQuery) {
			return true
		}
	}
	return false
}

// searchFields lists the record fields consulted by Matches, in
// short-circuit order.
func searchFields(rec catalog.MetricRecord) []string {
	return []string{
		rec.MetricTitle,
		rec.MetricDescription,
		rec.Category,
		rec.SubCategory,
		rec.ReportPeriod,
		rec.Target,
		rec.Comment,
		rec.Contributor,
		rec.Source,
	}
}

// VisibleCategories returns the categories to show for the query, in
// catalog order, with per-category match counts.
//
// With a non-empty query a category is visible iff at least one of its
// records matches. With an empty query visibility gates on Count > 0 and
// MatchCount is reported as Count (every record trivially matches).
// Categories with zero records are never visible.
func (e *Engine) VisibleCategories(query string) []CategorySummary {
	q := Normalize(strings.TrimSpace(query))

	out := make([]CategorySummary, 0, e.cat.Len())
	for _, c := range e.cat.Categories() {
		sum := CategorySummary{Category: c.Category, Slug: c.Slug, Count: c.Count}

		if q == "" {
			sum.MatchCount = c.Count
			if c.Count > 0 {
				out = append(out, sum)
			}
			continue
		}

		for _, rec := range c.Items {
			if Matches(rec, q) {
				sum.MatchCount++
			}
		}
		if sum.MatchCount > 0 {
			out = append(out, sum)
		}
	}
	return out
}

// ReconcileSelection forces the selected category back to a valid choice:
// if selected is not among the visible categories it becomes the first
// visible category's name, or "" when nothing is visible.
func ReconcileSelection(visible []CategorySummary, selected string) string {
	for i := range visible {
		if visible[i].Category == selected {
			return selected
		}
	}
	if len(visible) > 0 {
		return visible[0].Category
	}
	return ""
}

// DisplayRecords returns the records to render for the given query and
// selection. While a query is active the search is global: all matching
// records across all categories, in catalog order, ignoring the
// selection. With an empty query it returns the selected category's
// records (or nothing if no such category exists).
func (e *Engine) DisplayRecords(query, selectedCategory string) []catalog.MetricRecord {
	q := Normalize(strings.TrimSpace(query))

	if q != "" {
		var out []catalog.MetricRecord
		for _, rec := range e.cat.Records() {
			if Matches(rec, q) {
				out = append(out, rec)
			}
		}
		return out
	}

	c, ok := e.cat.Category(selectedCategory)
	if !ok {
		return nil
	}
	return c.Items
}

// DetailFields returns the record's renderable optional fields in fixed
// order. Placeholder values used by data contributors ("", "-", "null"
// in any casing, possibly padded with whitespace) are dropped rather
// than rendered as if meaningful.
func DetailFields(rec catalog.MetricRecord) []DetailField {
	values := map[string]string{
		"ReportPeriod": rec.ReportPeriod,
		"Target":       rec.Target,
		"Comment":      rec.Comment,
		"Contributor":  rec.Contributor,
		"Source":       rec.Source,
	}

	out := make([]DetailField, 0, len(detailOrder))
	for _, field := range detailOrder {
		v := values[field]
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || trimmed == "-" || strings.EqualFold(trimmed, "null") {
			continue
		}
		out = append(out, DetailField{Field: field, Value: v, Icon: catalog.Icon(field)})
	}
	return out
}
