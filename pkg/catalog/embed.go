package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data
var embeddedFS embed.FS

var embedded struct {
	once sync.Once
	cat  *Catalog
	err  error
}

// Embedded returns the catalog bundled into the binary, parsing the
// embedded JSON on first access. The same Catalog instance is returned on
// every call.
func Embedded() (*Catalog, error) {
	embedded.once.Do(func() {
		embedded.cat, embedded.err = loadEmbedded()
	})
	return embedded.cat, embedded.err
}

// loadEmbedded parses data/manifest.json and the per-slug record files
// under data/records/.
func loadEmbedded() (*Catalog, error) {
	rawManifest, err := embeddedFS.ReadFile("data/manifest.json")
	if err != nil {
		return nil, fmt.Errorf("catalog: read embedded manifest: %w", err)
	}

	var manifest []CategoryMeta
	if err := json.Unmarshal(rawManifest, &manifest); err != nil {
		return nil, fmt.Errorf("catalog: parse embedded manifest: %w", err)
	}

	sources := make(map[string][]RawRecord, len(manifest))
	for _, meta := range manifest {
		if meta.Slug == "" {
			continue
		}
		raw, err := embeddedFS.ReadFile("data/records/" + meta.Slug + ".json")
		if err != nil {
			// A declared category without a record file is an empty
			// category, not a load failure.
			continue
		}
		var records []RawRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("catalog: parse records for %q: %w", meta.Slug, err)
		}
		sources[meta.Slug] = records
	}

	return Load(manifest, sources), nil
}
