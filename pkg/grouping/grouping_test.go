package grouping_test

import (
	"testing"

	"github.com/gnames/ednamap/pkg/grouping"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(lat, lon float64, date int, sci, common string, reads int) record.Row {
	return record.Row{
		Lat:  lat,
		Lon:  lon,
		Date: date,
		Obs: record.Observation{
			ScientificName: sci,
			CommonName:     common,
			ReadsCount:     reads,
		},
	}
}

func TestBuildGroupsByRoundedCoordinates(t *testing.T) {
	rows := []record.Row{
		row(37.5665000, 126.9780000, 20240301, "Zacco platypus", "Pale chub", 100),
		// within 1e-7, identical after 6-digit rounding
		row(37.5665000, 126.9780000, 20240301, "Zacco platypus", "Pale chub", 50),
		// ~1e-3 degrees away, a distinct location
		row(37.5675000, 126.9780000, 20240301, "Zacco platypus", "Pale chub", 10),
	}

	locs := grouping.Build(rows)

	require.Len(t, locs, 2)
	require.Len(t, locs[0].MergedObservations, 1)
	assert.Equal(t, 150, locs[0].MergedObservations[0].ReadsCount)
	assert.Equal(t, 10, locs[1].MergedObservations[0].ReadsCount)
}

func TestBuildFirstEncounterOrder(t *testing.T) {
	rows := []record.Row{
		row(35.0, 128.0, 20240301, "Zacco platypus", "Pale chub", 1),
		row(36.0, 127.0, 20240301, "Zacco platypus", "Pale chub", 1),
		row(35.0, 128.0, 20240515, "Zacco platypus", "Pale chub", 1),
	}

	locs := grouping.Build(rows)

	require.Len(t, locs, 2)
	assert.Equal(t, 35.0, locs[0].Coordinates.Lat)
	assert.Equal(t, 36.0, locs[1].Coordinates.Lat)
}

func TestBuildDatesSortedAscending(t *testing.T) {
	rows := []record.Row{
		row(35.0, 128.0, 20240820, "Zacco platypus", "Pale chub", 10),
		row(35.0, 128.0, 20240301, "Zacco platypus", "Pale chub", 20),
		row(35.0, 128.0, 20240515, "Zacco platypus", "Pale chub", 30),
		row(35.0, 128.0, 20240301, "Clupea", "Herring", 5),
	}

	locs := grouping.Build(rows)

	require.Len(t, locs, 1)
	drs := locs[0].DateRecords
	require.Len(t, drs, 3)
	for i := 1; i < len(drs); i++ {
		assert.Less(t, drs[i-1].Date, drs[i].Date)
	}
	// The duplicate date contributed to an existing bucket.
	assert.Len(t, drs[0].RawObservations, 2)
}

func TestBuildFirstRowWinsMetadata(t *testing.T) {
	first := row(35.0, 128.0, 20240301, "Zacco platypus", "Pale chub", 10)
	first.Meta = record.SamplingMeta{Manager: "Kim", Primer: "MiFish"}
	second := row(35.0, 128.0, 20240515, "Clupea", "Herring", 5)
	second.Meta = record.SamplingMeta{Manager: "Lee", Primer: "12S"}

	locs := grouping.Build([]record.Row{first, second})

	require.Len(t, locs, 1)
	assert.Equal(t, "Kim", locs[0].Metadata.Manager)
	assert.Equal(t, "MiFish", locs[0].Metadata.Primer)
	// Later dates keep their own sampling metadata.
	assert.Equal(t, "Lee", locs[0].DateRecords[1].Meta.Manager)
}

func TestBuildDefaultTaxon(t *testing.T) {
	locs := grouping.Build([]record.Row{
		row(35.0, 128.0, 20240301, "Zacco platypus", "Pale chub", 10),
	})
	require.Len(t, locs, 1)
	assert.Equal(t, grouping.DefaultTaxon, locs[0].Metadata.Taxon)
	assert.Equal(t, grouping.DefaultTaxon, locs[0].DominantTaxon)
}

func TestBuildDominantTaxonFromObservations(t *testing.T) {
	r1 := row(35.0, 128.0, 20240301, "Raja", "Skate", 80)
	r1.Obs.Taxon = "Chondrichthyes"
	r2 := row(35.0, 128.0, 20240515, "Zacco platypus", "Pale chub", 100)
	r2.Obs.Taxon = "Actinopterygii"

	locs := grouping.Build([]record.Row{r1, r2})

	require.Len(t, locs, 1)
	assert.Equal(t, "Actinopterygii", locs[0].DominantTaxon)
}

func TestBuildStableIDs(t *testing.T) {
	rows := []record.Row{row(35.0, 128.0, 20240301, "Zacco platypus", "Pale chub", 10)}

	a := grouping.Build(rows)
	b := grouping.Build(rows)

	require.Len(t, a, 1)
	assert.NotEmpty(t, a[0].ID)
	assert.Equal(t, a[0].ID, b[0].ID, "IDs derive from the location key")
}

func TestLocationKey(t *testing.T) {
	assert.Equal(t, "126.978000_37.566500", grouping.LocationKey(37.5665, 126.978))
	// Sub-micro-degree jitter disappears in the key.
	assert.Equal(
		t,
		grouping.LocationKey(37.5665, 126.978),
		grouping.LocationKey(37.56650004, 126.97799996),
	)
}

func TestPlaceholder(t *testing.T) {
	meta := record.LocationMeta{
		Location: record.Coordinate{Lat: 35.0, Lon: 128.0},
		Manager:  "Kim",
	}

	loc := grouping.Placeholder(meta)

	assert.True(t, loc.Unavailable)
	assert.Empty(t, loc.DateRecords)
	assert.Empty(t, loc.MergedObservations)
	assert.Equal(t, grouping.DefaultTaxon, loc.DominantTaxon)
	assert.Equal(t, 35.0, loc.Coordinates.Lat)
	assert.NotEmpty(t, loc.ID)
}
