package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RealtySiteAPI/models"
)

func listingsOf(t *testing.T, body []byte) []models.Property {
	t.Helper()
	var out []models.Property
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestListPropertiesNoFilters(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/listings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := listingsOf(t, rec.Body.Bytes())
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, "4", got[2].ID)
}

func TestListPropertiesQueryFilters(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"quick filter", "?type=Condo", 1},
		{"quick filter wildcard", "?type=All", 3},
		{"search", "?search=penthouse", 1},
		{"price range spanning all", "?min_price=400000&max_price=900000", 3},
		{"exact boundary min price", "?min_price=895000", 1},
		{"non-numeric bound ignored", "?min_price=cheap", 3},
		{"type set", "?types=Single+Family", 2},
		{"status set", "?statuses=Pending", 1},
		{"neighborhood set", "?neighborhoods=Downtown&neighborhoods=Fair+Oaks+Ranch", 2},
		{"conjunction across axes", "?types=Single+Family&max_price=500000", 1},
		{"no results is an empty list", "?search=waterfront", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.request(http.MethodGet, "/api/listings"+tt.query, "", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Len(t, listingsOf(t, rec.Body.Bytes()), tt.want)
		})
	}
}

func TestGetPropertyByID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/listings/3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Chic Downtown Penthouse", got.Title)

	rec = ts.request(http.MethodGet, "/api/listings/999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNeighborhoodsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/listings/neighborhoods", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Fair Oaks Ranch", "Downtown", "Great Northwest"}, got)
}
