// Package source provides catalog source providers: alternatives to the
// embedded dataset that produce the loader's manifest and record mapping
// from bundled static assets. Providers read once at startup; records
// are never written back.
package source

import (
	"context"
	"database/sql"
	"fmt"

	"kpidex/pkg/catalog"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// Snapshot is a catalog dataset in the shape the loader consumes.
type Snapshot struct {
	Manifest []catalog.CategoryMeta
	Sources  map[string][]catalog.RawRecord
}

// LoadSQLite reads a catalog snapshot from a SQLite file. The expected
// schema is:
//
//	categories(slug TEXT PRIMARY KEY, category TEXT, declared_count INTEGER, position INTEGER)
//	records(slug TEXT, position INTEGER, category TEXT, sub_category TEXT,
//	        metric_title TEXT, metric_description TEXT, report_period TEXT,
//	        target TEXT, comment TEXT, contributor TEXT, source TEXT)
//
// Categories and records are returned in position order. NULL columns are
// left out of the raw record so the loader defaults them to "".
func LoadSQLite(ctx context.Context, path string) (*Snapshot, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	defer db.Close()

	// Single connection; this is a one-shot read of a small file.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite %q: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	manifest, err := loadManifest(ctx, db)
	if err != nil {
		return nil, err
	}
	sources, err := loadRecords(ctx, db)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Manifest: manifest, Sources: sources}, nil
}

func loadManifest(ctx context.Context, db *sql.DB) ([]catalog.CategoryMeta, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT slug, category, declared_count FROM categories ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var manifest []catalog.CategoryMeta
	for rows.Next() {
		var meta catalog.CategoryMeta
		if err := rows.Scan(&meta.Slug, &meta.Category, &meta.DeclaredCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		manifest = append(manifest, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return manifest, nil
}

// recordColumns is the shared column list for record queries.
const recordColumns = `slug, category, sub_category, metric_title, metric_description,
	report_period, target, comment, contributor, source`

func loadRecords(ctx context.Context, db *sql.DB) (map[string][]catalog.RawRecord, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM records ORDER BY slug, position")
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	sources := make(map[string][]catalog.RawRecord)
	for rows.Next() {
		var slug string
		cols := make([]sql.NullString, 9)
		if err := rows.Scan(&slug,
			&cols[0], &cols[1], &cols[2], &cols[3], &cols[4],
			&cols[5], &cols[6], &cols[7], &cols[8]); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		raw := catalog.RawRecord{}
		for i, field := range []string{
			"Category", "SubCategory", "MetricTitle", "MetricDescription",
			"ReportPeriod", "Target", "Comment", "Contributor", "Source",
		} {
			if cols[i].Valid {
				raw[field] = cols[i].String
			}
		}
		sources[slug] = append(sources[slug], raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return sources, nil
}
