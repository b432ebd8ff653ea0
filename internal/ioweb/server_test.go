package ioweb_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gnames/ednamap/internal/ioweb"
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/gnames/ednamap/pkg/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLocations() []record.LocationRecord {
	obs := func(sci, common string, reads int) record.Observation {
		return record.Observation{
			ScientificName: sci, CommonName: common, ReadsCount: reads,
		}
	}
	return []record.LocationRecord{
		{
			ID:            "loc-1",
			Coordinates:   record.Coordinate{Lat: 37.5665, Lon: 126.978},
			DominantTaxon: "fish",
			MergedObservations: []record.Observation{
				obs("Gadus morhua", "Cod", 150),
			},
			DateRecords: []record.DateRecord{
				{Date: 20240301,
					Observations: []record.Observation{
						obs("Gadus morhua", "Cod", 150),
					}},
			},
		},
		{
			// Coincident with loc-1 within tolerance.
			ID:            "loc-2",
			Coordinates:   record.Coordinate{Lat: 37.56651, Lon: 126.97801},
			DominantTaxon: "fish",
			MergedObservations: []record.Observation{
				obs("Clupea harengus", "Herring", 50),
			},
			DateRecords: []record.DateRecord{
				{Date: 20240301,
					Observations: []record.Observation{
						obs("Clupea harengus", "Herring", 50),
					}},
			},
		},
		{
			ID:          "loc-3",
			Coordinates: record.Coordinate{Lat: 35.1796, Lon: 129.0756},
			Unavailable: true,
		},
	}
}

func testServer(t *testing.T) *ioweb.Server {
	t.Helper()
	cfg := config.New()
	srv, err := ioweb.NewServer(cfg, testLocations())
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *ioweb.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, testServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestLocations(t *testing.T) {
	w := get(t, testServer(t), "/api/locations")
	require.Equal(t, http.StatusOK, w.Code)

	var locs []record.LocationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locs))
	assert.Len(t, locs, 3)
}

func TestLocationByID(t *testing.T) {
	srv := testServer(t)

	w := get(t, srv, "/api/locations/loc-2")
	require.Equal(t, http.StatusOK, w.Code)
	var loc record.LocationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loc))
	assert.Equal(t, "loc-2", loc.ID)

	w = get(t, srv, "/api/locations/no-such")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkers(t *testing.T) {
	w := get(t, testServer(t), "/api/markers?zoom=13")
	require.Equal(t, http.StatusOK, w.Code)

	var markers []record.MarkerDescriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markers))
	require.Len(t, markers, 3)

	// The two nearby points are decluttered into a cluster.
	assert.True(t, markers[0].Clustered)
	assert.True(t, markers[1].Clustered)
	assert.False(t, markers[2].Clustered)
	assert.Less(t, markers[0].Size, markers[2].Size)

	for i, m := range markers {
		assert.Equal(t, i, m.Index)
	}
}

func TestMarkersViewport(t *testing.T) {
	// Bounds around Seoul exclude the Busan point.
	path := fmt.Sprintf(
		"/api/markers?zoom=13&north=%f&south=%f&east=%f&west=%f",
		38.0, 37.0, 127.5, 126.5,
	)
	w := get(t, testServer(t), path)
	require.Equal(t, http.StatusOK, w.Code)

	var markers []record.MarkerDescriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markers))
	require.Len(t, markers, 2)

	// Indices still point into the full record set.
	assert.Equal(t, 0, markers[0].Index)
	assert.Equal(t, 1, markers[1].Index)
}

func TestMarkersBadParams(t *testing.T) {
	srv := testServer(t)

	w := get(t, srv, "/api/markers?zoom=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Partial viewport is rejected, not ignored.
	w = get(t, srv, "/api/markers?north=38.0&south=37.0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestView(t *testing.T) {
	w := get(t, testServer(t), "/api/view?selected=0,1")
	require.Equal(t, http.StatusOK, w.Code)

	var view viewstate.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	assert.Equal(t, []int{0, 1}, view.SelectedIndices)
	assert.Equal(t, viewstate.AggregateDateIndex, view.ActiveDateIndex)
	assert.Equal(t, 1, view.DateTabCount)
	require.Len(t, view.Observations, 2)
	assert.Contains(t, view.Summary, "total reads: 200")
}

func TestViewSingleDate(t *testing.T) {
	w := get(t, testServer(t), "/api/view?selected=0&date=0")
	require.Equal(t, http.StatusOK, w.Code)

	var view viewstate.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 0, view.ActiveDateIndex)
	require.Len(t, view.Observations, 1)
	assert.Equal(t, 150, view.Observations[0].ReadsCount)
}

func TestViewBadParams(t *testing.T) {
	srv := testServer(t)

	w := get(t, srv, "/api/view?selected=0,99")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(t, srv, "/api/view?selected=0&date=-5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIcon(t *testing.T) {
	srv := testServer(t)
	srv.Icons().Put("fish", []byte("<svg>fish</svg>"))

	w := get(t, srv, "/api/icons/fish")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "<svg>fish</svg>", w.Body.String())

	// Unknown keys fall back to the default icon.
	w = get(t, srv, "/api/icons/unknown")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
}
