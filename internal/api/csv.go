package api

import (
	"encoding/csv"
	"io"

	"kpidex/pkg/catalog"
)

// csvHeaders returns the CSV column headers.
func csvHeaders() []string {
	return []string{
		"id", "category", "sub_category", "metric_title", "metric_description",
		"report_period", "target", "comment", "contributor", "source",
	}
}

// recordToCSVRow converts a record to a CSV row (matching csvHeaders order).
func recordToCSVRow(rec catalog.MetricRecord) []string {
	return []string{
		rec.ID,
		rec.Category,
		rec.SubCategory,
		rec.MetricTitle,
		rec.MetricDescription,
		rec.ReportPeriod,
		rec.Target,
		rec.Comment,
		rec.Contributor,
		rec.Source,
	}
}

// writeCatalogCSV writes every record in the catalog to w as CSV, in
// catalog order, with a header row.
func writeCatalogCSV(w io.Writer, cat *catalog.Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders()); err != nil {
		return err
	}
	for _, rec := range cat.Records() {
		if err := cw.Write(recordToCSVRow(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
