package testutil

import "kpidex/pkg/catalog"

// NewRecord returns a MetricRecord with sensible defaults, suitable for
// test fixtures. Override individual fields via options.
func NewRecord(opts ...func(*catalog.MetricRecord)) catalog.MetricRecord {
	r := catalog.MetricRecord{
		ID:                "test-category-0",
		Category:          "Test Category",
		MetricTitle:       "Test Metric",
		MetricDescription: "A metric used in tests.",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithTitle sets the record's metric title.
func WithTitle(title string) func(*catalog.MetricRecord) {
	return func(r *catalog.MetricRecord) { r.MetricTitle = title }
}

// WithTarget sets the record's target value.
func WithTarget(target string) func(*catalog.MetricRecord) {
	return func(r *catalog.MetricRecord) { r.Target = target }
}

// WithComment sets the record's comment.
func WithComment(comment string) func(*catalog.MetricRecord) {
	return func(r *catalog.MetricRecord) { r.Comment = comment }
}

// WithSource sets the record's source.
func WithSource(source string) func(*catalog.MetricRecord) {
	return func(r *catalog.MetricRecord) { r.Source = source }
}
