package catalog

import "testing"

func TestLoad_AssignsDerivedIDs(t *testing.T) {
	manifest := []CategoryMeta{{Category: "Governance", Slug: "governance", DeclaredCount: 2}}
	sources := map[string][]RawRecord{
		"governance": {
			{"MetricTitle": "Board Reporting Cadence"},
			{"MetricTitle": "Policy Review Rate"},
		},
	}

	cat := Load(manifest, sources)
	cats := cat.Categories()
	if len(cats) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cats))
	}

	wantIDs := []string{"governance-0", "governance-1"}
	for i, want := range wantIDs {
		if got := cats[0].Items[i].ID; got != want {
			t.Errorf("item[%d].ID = %q, want %q", i, got, want)
		}
	}
}

func TestLoad_CountOverridesDeclared(t *testing.T) {
	manifest := []CategoryMeta{{Category: "Governance", Slug: "governance", DeclaredCount: 99}}
	sources := map[string][]RawRecord{
		"governance": {{"MetricTitle": "Policy Review Rate"}},
	}

	cat := Load(manifest, sources)
	c := cat.Categories()[0]
	if c.Count != 1 {
		t.Errorf("Count = %d, want 1 (DeclaredCount must not be trusted)", c.Count)
	}
	if c.DeclaredCount != 99 {
		t.Errorf("DeclaredCount = %d, want 99 (preserved as advisory)", c.DeclaredCount)
	}
}

func TestLoad_MissingSourceIsEmptyCategory(t *testing.T) {
	manifest := []CategoryMeta{{Category: "Ghost", Slug: "ghost", DeclaredCount: 3}}

	cat := Load(manifest, nil)
	cats := cat.Categories()
	if len(cats) != 1 {
		t.Fatalf("expected the declared category, got %d categories", len(cats))
	}
	if cats[0].Count != 0 || len(cats[0].Items) != 0 {
		t.Errorf("expected empty category, got count %d", cats[0].Count)
	}
}

func TestLoad_DropsManifestEntryWithoutSlug(t *testing.T) {
	manifest := []CategoryMeta{
		{Category: "No Slug"},
		{Category: "Governance", Slug: "governance"},
	}

	cat := Load(manifest, nil)
	if cat.Len() != 1 {
		t.Fatalf("expected 1 category, got %d", cat.Len())
	}
	if got := cat.Categories()[0].Category; got != "Governance" {
		t.Errorf("kept category = %q, want %q", got, "Governance")
	}
}

func TestLoad_PreservesManifestOrder(t *testing.T) {
	manifest := []CategoryMeta{
		{Category: "B", Slug: "b"},
		{Category: "A", Slug: "a"},
		{Category: "C", Slug: "c"},
	}

	cat := Load(manifest, nil)
	var got []string
	for _, c := range cat.Categories() {
		got = append(got, c.Category)
	}
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category order = %v, want %v", got, want)
		}
	}
}

func TestHydrate_DefaultsMissingFields(t *testing.T) {
	rec := hydrate(RawRecord{"MetricTitle": "MFA Coverage"})

	if rec.MetricTitle != "MFA Coverage" {
		t.Errorf("MetricTitle = %q", rec.MetricTitle)
	}
	for name, got := range map[string]string{
		"Category":          rec.Category,
		"SubCategory":       rec.SubCategory,
		"MetricDescription": rec.MetricDescription,
		"ReportPeriod":      rec.ReportPeriod,
		"Target":            rec.Target,
		"Comment":           rec.Comment,
		"Contributor":       rec.Contributor,
		"Source":            rec.Source,
	} {
		if got != "" {
			t.Errorf("%s = %q, want empty string", name, got)
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "95%", "95%"},
		{"integer number", float64(42), "42"},
		{"fractional number", 2.5, "2.5"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceString(tt.in); got != tt.want {
				t.Errorf("coerceString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecordByID(t *testing.T) {
	manifest := []CategoryMeta{{Category: "Governance", Slug: "governance"}}
	sources := map[string][]RawRecord{
		"governance": {{"MetricTitle": "Policy Review Rate"}},
	}
	cat := Load(manifest, sources)

	rec, ok := cat.RecordByID("governance-0")
	if !ok {
		t.Fatal("expected record governance-0")
	}
	if rec.MetricTitle != "Policy Review Rate" {
		t.Errorf("MetricTitle = %q", rec.MetricTitle)
	}

	if _, ok := cat.RecordByID("governance-9"); ok {
		t.Error("expected lookup miss for governance-9")
	}
}

func TestRecords_FlattensInCatalogOrder(t *testing.T) {
	manifest := []CategoryMeta{
		{Category: "A", Slug: "a"},
		{Category: "B", Slug: "b"},
	}
	sources := map[string][]RawRecord{
		"a": {{"MetricTitle": "first"}, {"MetricTitle": "second"}},
		"b": {{"MetricTitle": "third"}},
	}

	records := Load(manifest, sources).Records()
	want := []string{"first", "second", "third"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		if records[i].MetricTitle != want[i] {
			t.Errorf("records[%d] = %q, want %q", i, records[i].MetricTitle, want[i])
		}
	}
}
