// Package catalog defines the KPI catalog data model and the loader that
// materializes it from a category manifest and per-category record sources.
package catalog

// CategoryMeta is one manifest entry describing a category of KPI records.
type CategoryMeta struct {
	// Category is the human-readable display name (e.g., "Incident Response").
	Category string `json:"category"`

	// Slug is the unique kebab-case identifier joining the manifest entry to
	// its record source (e.g., "incident-response").
	Slug string `json:"slug"`

	// DeclaredCount is the record count claimed by the manifest. It is
	// advisory only; the loader derives the authoritative count from the
	// records actually present.
	DeclaredCount int `json:"count"`
}

// MetricRecord is one KPI catalog entry. Every field is a plain string:
// missing or null values are normalized to "" at load time, so consumers
// never deal with absent fields.
type MetricRecord struct {
	// ID is derived at load time as "{slug}-{index}" where index is the
	// record's 0-based position within its category source. It is unique
	// across the catalog and stable for a given load.
	ID string `json:"id"`

	Category          string `json:"Category"`
	SubCategory       string `json:"SubCategory"`
	MetricTitle       string `json:"MetricTitle"`
	MetricDescription string `json:"MetricDescription"`
	ReportPeriod      string `json:"ReportPeriod"`
	Target            string `json:"Target"`
	Comment           string `json:"Comment"`
	Contributor       string `json:"Contributor"`
	Source            string `json:"Source"`
}

// Category is a manifest entry together with its hydrated records.
type Category struct {
	CategoryMeta

	// Items holds the category's records in source order.
	Items []MetricRecord `json:"items"`

	// Count is len(Items). It overrides DeclaredCount for all runtime logic.
	Count int `json:"count"`
}

// Catalog is the fully materialized, read-only KPI catalog. It is built
// once by Load and never mutated afterwards, so it is safe to share
// without synchronization.
type Catalog struct {
	categories []Category
	byID       map[string]MetricRecord
}

// Categories returns the catalog's categories in manifest order.
// The returned slice is a copy; Items slices are shared and must not be
// modified by callers.
func (c *Catalog) Categories() []Category {
	cp := make([]Category, len(c.categories))
	copy(cp, c.categories)
	return cp
}

// Category returns the category with the given display name.
func (c *Catalog) Category(name string) (Category, bool) {
	for i := range c.categories {
		if c.categories[i].Category == name {
			return c.categories[i], true
		}
	}
	return Category{}, false
}

// RecordByID returns the record with the given derived ID.
func (c *Catalog) RecordByID(id string) (MetricRecord, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Records returns all records across all categories, flattened in
// catalog order.
func (c *Catalog) Records() []MetricRecord {
	var out []MetricRecord
	for i := range c.categories {
		out = append(out, c.categories[i].Items...)
	}
	return out
}

// Len returns the number of categories in the catalog.
func (c *Catalog) Len() int {
	return len(c.categories)
}
