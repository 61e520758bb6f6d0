package api

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpidex/internal/engine"
	"kpidex/internal/server"
	"kpidex/internal/testutil"
	"kpidex/pkg/catalog"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()

	manifest := []catalog.CategoryMeta{
		{Category: "Governance", Slug: "governance", DeclaredCount: 2},
		{Category: "Incident Response", Slug: "incident-response", DeclaredCount: 1},
		{Category: "Empty Category", Slug: "empty-category"},
	}
	sources := map[string][]catalog.RawRecord{
		"governance": {
			{"Category": "Governance", "MetricTitle": "Board Reporting Cadence", "Target": "4 per year"},
			{"Category": "Governance", "MetricTitle": "Policy Review Rate", "Target": "-", "Comment": "null"},
		},
		"incident-response": {
			{"Category": "Incident Response", "MetricTitle": "Mean Time to Contain", "ReportPeriod": "Monthly"},
		},
	}

	h := NewHandler(engine.New(catalog.Load(manifest, sources)), testutil.Logger())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandleCategories_EmptyQuery(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var resp CategoriesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Governance", resp.Categories[0].Category)
	assert.Equal(t, 2, resp.Categories[0].MatchCount)
	assert.Equal(t, "Incident Response", resp.Categories[1].Category)
}

func TestHandleCategories_WithQuery(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/categories?q=contain")
	require.Equal(t, http.StatusOK, w.Code)

	var resp CategoriesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Incident Response", resp.Categories[0].Category)
	assert.Equal(t, 1, resp.Categories[0].MatchCount)
}

func TestHandleCategories_NoMatchIsEmptyList(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/categories?q=zzz-no-match")
	require.Equal(t, http.StatusOK, w.Code)

	var resp CategoriesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Categories)
}

func TestHandleRecords_SelectionMode(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/records?category=Governance")
	require.Equal(t, http.StatusOK, w.Code)

	var resp RecordsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "Governance", resp.SelectedCategory)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Board Reporting Cadence", resp.Records[0].MetricTitle)
	assert.Equal(t, "Policy Review Rate", resp.Records[1].MetricTitle)
}

func TestHandleRecords_GlobalSearchReconcilesSelection(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/records?q=contain&category=Governance")
	require.Equal(t, http.StatusOK, w.Code)

	var resp RecordsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	// The query filtered Governance out; the selection moved.
	assert.Equal(t, "Incident Response", resp.SelectedCategory)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Mean Time to Contain", resp.Records[0].MetricTitle)
}

func TestHandleRecords_DefaultSelectionIsFirstVisible(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/records")
	require.Equal(t, http.StatusOK, w.Code)

	var resp RecordsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Governance", resp.SelectedCategory)
	assert.Equal(t, 2, resp.Count)
}

func TestHandleRecords_NoMatch(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/records?q=zzz-no-match")
	require.Equal(t, http.StatusOK, w.Code)

	var resp RecordsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "", resp.SelectedCategory)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Records)
}

func TestHandleRecord_Found(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/records/governance-1")
	require.Equal(t, http.StatusOK, w.Code)

	var rec catalog.MetricRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rec))
	assert.Equal(t, "Policy Review Rate", rec.MetricTitle)
}

func TestHandleRecord_NotFound(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/records/governance-9")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var p server.Problem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, server.ProblemTypeNotFound, p.Type)
}

func TestHandleRecordDetails_FiltersPlaceholders(t *testing.T) {
	// governance-1 carries Target "-" and Comment "null"; nothing else.
	w := get(t, testMux(t), "/api/v1/catalog/records/governance-1/details")
	require.Equal(t, http.StatusOK, w.Code)

	var fields []engine.DetailField
	require.NoError(t, json.NewDecoder(w.Body).Decode(&fields))
	assert.Empty(t, fields)
}

func TestHandleRecordDetails_IncludesIcon(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/records/governance-0/details")
	require.Equal(t, http.StatusOK, w.Code)

	var fields []engine.DetailField
	require.NoError(t, json.NewDecoder(w.Body).Decode(&fields))
	require.Len(t, fields, 1)
	assert.Equal(t, engine.DetailField{Field: "Target", Value: "4 per year", Icon: "bullseye"}, fields[0])
}

func TestHandleExportCSV(t *testing.T) {
	w := get(t, testMux(t), "/api/v1/catalog/export.csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment"))

	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)

	// Header plus the 3 records across both populated categories.
	require.Len(t, rows, 4)
	assert.Equal(t, csvHeaders(), rows[0])
	assert.Equal(t, "governance-0", rows[1][0])
	assert.Equal(t, "incident-response-0", rows[3][0])
}
