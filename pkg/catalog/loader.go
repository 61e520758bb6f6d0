package catalog

import (
	"fmt"
	"strconv"
)

// RawRecord is an undecoded record object as it appears in a record
// source. Values may be strings, numbers, booleans, or null; the loader
// coerces everything to strings during hydration.
type RawRecord map[string]any

// Load materializes a Catalog from a manifest and a mapping of category
// slug to raw record sequences.
//
// Manifest entries without a slug are dropped. A slug with no entry in
// sources yields an empty category, not an error. Record field values are
// coerced to strings (null becomes ""), and each record is assigned the
// derived ID "{slug}-{index}".
func Load(manifest []CategoryMeta, sources map[string][]RawRecord) *Catalog {
	cat := &Catalog{
		categories: make([]Category, 0, len(manifest)),
		byID:       make(map[string]MetricRecord),
	}

	for _, meta := range manifest {
		if meta.Slug == "" {
			continue
		}

		raws := sources[meta.Slug]
		items := make([]MetricRecord, 0, len(raws))
		for i, raw := range raws {
			rec := hydrate(raw)
			rec.ID = fmt.Sprintf("%s-%d", meta.Slug, i)
			items = append(items, rec)
			cat.byID[rec.ID] = rec
		}

		cat.categories = append(cat.categories, Category{
			CategoryMeta: meta,
			Items:        items,
			Count:        len(items),
		})
	}

	return cat
}

// hydrate converts a raw record into a fully-defaulted MetricRecord.
func hydrate(raw RawRecord) MetricRecord {
	return MetricRecord{
		Category:          coerceString(raw["Category"]),
		SubCategory:       coerceString(raw["SubCategory"]),
		MetricTitle:       coerceString(raw["MetricTitle"]),
		MetricDescription: coerceString(raw["MetricDescription"]),
		ReportPeriod:      coerceString(raw["ReportPeriod"]),
		Target:            coerceString(raw["Target"]),
		Comment:           coerceString(raw["Comment"]),
		Contributor:       coerceString(raw["Contributor"]),
		Source:            coerceString(raw["Source"]),
	}
}

// coerceString converts a raw field value to a string. Missing and null
// values become "". Scalars of other types are stringified rather than
// rejected; the catalog is display data, not a validated pipeline.
func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		// JSON numbers decode as float64. Render integers without a
		// trailing ".0".
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
