package ioingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/ednamap/internal/ioingest"
	"github.com/gnames/ednamap/pkg/aggregate"
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/datasets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMetadata = `{
  "location": {"lat": 37.5665, "lon": 126.978},
  "taxon": "fish",
  "marker": "Han River",
  "manager": "Kim",
  "primer": "MiFish",
  "object": "citizen survey"
}`

// writeCSVDataset writes a CSV survey file plus its metadata JSON into a
// temp dir and returns a registry entry pointing at them.
func writeCSVDataset(
	t *testing.T,
	csvBody string,
) datasets.DatasetConfig {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "survey.csv")
	err := os.WriteFile(csvPath, []byte(csvBody), 0644)
	require.NoError(t, err)

	metaPath := filepath.Join(dir, "survey.json")
	err = os.WriteFile(metaPath, []byte(testMetadata), 0644)
	require.NoError(t, err)

	return datasets.DatasetConfig{
		ID:           1,
		Path:         csvPath,
		Format:       datasets.FormatCSV,
		MetadataPath: metaPath,
		Date:         20240301,
	}
}

func TestIngestCSV(t *testing.T) {
	body := "scientific_name,common_name,reads_count\n" +
		"Gadus morhua,Cod,120\n" +
		"Gadus morhua,Cod,30\n" +
		"Clupea harengus,Herring,50\n"
	d := writeCSVDataset(t, body)

	ing := ioingest.New(config.New(), nil)
	res, err := ing.Ingest(context.Background(),
		[]datasets.DatasetConfig{d})
	require.NoError(t, err)
	require.Len(t, res.Locations, 1)
	require.Len(t, res.Reports, 1)

	rep := res.Reports[0]
	assert.False(t, rep.Failed)
	assert.Equal(t, 3, rep.Rows)
	assert.Equal(t, 0, rep.Dropped)
	assert.Equal(t, 1, rep.Locations)

	loc := res.Locations[0]
	assert.Equal(t, 37.5665, loc.Coordinates.Lat)
	assert.Equal(t, 126.978, loc.Coordinates.Lon)
	assert.Equal(t, "fish", loc.DominantTaxon)
	assert.Equal(t, "Han River", loc.Metadata.MarkerLabel)

	require.Len(t, loc.DateRecords, 1)
	assert.Equal(t, 20240301, loc.DateRecords[0].Date)

	// Duplicate species rows are summed, result sorted by reads.
	require.Len(t, loc.MergedObservations, 2)
	assert.Equal(t, "Gadus morhua", loc.MergedObservations[0].ScientificName)
	assert.Equal(t, 150, loc.MergedObservations[0].ReadsCount)
	assert.Equal(t, "Clupea harengus", loc.MergedObservations[1].ScientificName)
	assert.Equal(t, 50, loc.MergedObservations[1].ReadsCount)
	assert.Equal(t, 200, aggregate.TotalReads(loc.MergedObservations))

	summary := aggregate.Summary(loc.MergedObservations, loc.DominantTaxon)
	assert.Contains(t, summary, "2 species")
	assert.Contains(t, summary, "total reads: 200")
}

func TestCSVProfiles(t *testing.T) {
	body := "scientific_name,common_name,reads_count\n" +
		"Gadus morhua,Cod,120\n" +
		"Clupea harengus,Herring,oops\n"

	tests := []struct {
		msg     string
		profile string
		dropped int
		species int
	}{
		// CSV defaults to lenient: bad reads become zero.
		{"default lenient", "", 0, 2},
		{"strict", config.ProfileStrict, 1, 1},
	}

	for _, v := range tests {
		d := writeCSVDataset(t, body)
		d.Profile = v.profile

		ing := ioingest.New(config.New(), nil)
		res, err := ing.Ingest(context.Background(),
			[]datasets.DatasetConfig{d})
		require.NoError(t, err, v.msg)

		assert.Equal(t, v.dropped, res.Reports[0].Dropped, v.msg)
		require.Len(t, res.Locations, 1, v.msg)
		assert.Len(t, res.Locations[0].MergedObservations, v.species, v.msg)
	}
}

func TestCSVNameFallback(t *testing.T) {
	body := "scientific_name,common_name,reads_count\n" +
		",Herring,50\n" +
		"Gadus morhua,,20\n" +
		",,10\n"
	d := writeCSVDataset(t, body)

	ing := ioingest.New(config.New(), nil)
	res, err := ing.Ingest(context.Background(),
		[]datasets.DatasetConfig{d})
	require.NoError(t, err)

	// The common name is required: rows without it are dropped even
	// when a scientific name is present.
	assert.Equal(t, 2, res.Reports[0].Dropped)

	obs := res.Locations[0].MergedObservations
	require.Len(t, obs, 1)
	assert.Equal(t, "Herring", obs[0].CommonName)
	assert.Equal(t, "Herring", obs[0].ScientificName)
}

func TestCSVPlaceholderOnFailure(t *testing.T) {
	d := writeCSVDataset(t, "scientific_name,common_name,reads_count\n")
	d.Path = filepath.Join(t.TempDir(), "no-such.csv")

	ing := ioingest.New(config.New(), nil)
	res, err := ing.Ingest(context.Background(),
		[]datasets.DatasetConfig{d})
	require.NoError(t, err)

	rep := res.Reports[0]
	assert.True(t, rep.Failed)
	assert.NotEmpty(t, rep.Error)

	// Metadata names a coordinate, so the point survives as a
	// placeholder with no data.
	require.Len(t, res.Locations, 1)
	loc := res.Locations[0]
	assert.True(t, loc.Unavailable)
	assert.Equal(t, 37.5665, loc.Coordinates.Lat)
	assert.Empty(t, loc.DateRecords)
}

func TestCSVMissingMetadata(t *testing.T) {
	d := writeCSVDataset(t, "scientific_name,common_name,reads_count\n")
	d.MetadataPath = filepath.Join(t.TempDir(), "no-such.json")

	ing := ioingest.New(config.New(), nil)
	res, err := ing.Ingest(context.Background(),
		[]datasets.DatasetConfig{d})

	// The only dataset failed and no placeholder is possible.
	assert.Error(t, err)
	assert.Nil(t, res)
}
