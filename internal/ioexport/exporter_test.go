package ioexport_test

import (
	"context"
	"testing"

	"github.com/gnames/ednamap/internal/iodb"
	"github.com/gnames/ednamap/internal/ioexport"
	"github.com/gnames/ednamap/internal/iotesting"
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []record.LocationRecord {
	do := 7.5
	obs := []record.Observation{
		{ScientificName: "Gadus morhua", CommonName: "Cod",
			ReadsCount: 150, Taxon: "fish"},
		{ScientificName: "Clupea harengus", CommonName: "Herring",
			ReadsCount: 50, Taxon: "fish"},
	}
	return []record.LocationRecord{
		{
			ID:                 "4e5d1c3a-0000-5000-8000-000000000001",
			Coordinates:        record.Coordinate{Lat: 37.5665, Lon: 126.978},
			DominantTaxon:      "fish",
			MergedObservations: obs,
			DateRecords: []record.DateRecord{
				{
					Date: 20240301, SamplingID: 20240301,
					Observations: obs,
					Env:          record.EnvReadings{DissolvedOxygen: &do},
				},
				{
					Date: 20240501, SamplingID: 20240501,
					Observations: obs[:1],
				},
			},
			EnvAverages: record.EnvReadings{DissolvedOxygen: &do},
		},
		{
			ID:          "4e5d1c3a-0000-5000-8000-000000000002",
			Coordinates: record.Coordinate{Lat: 35.1796, Lon: 129.0756},
			Unavailable: true,
		},
	}
}

func TestExportIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err,
		"PostgreSQL should be running for integration tests")
	defer op.Close()

	cfg := config.New()
	var exp ednamap.Exporter = ioexport.New(cfg, op)

	require.NoError(t, exp.Export(ctx, testRecords()))

	var locations, events, observations int
	err = op.Pool().
		QueryRow(ctx, "SELECT count(*) FROM locations").
		Scan(&locations)
	require.NoError(t, err)
	err = op.Pool().
		QueryRow(ctx, "SELECT count(*) FROM sampling_events").
		Scan(&events)
	require.NoError(t, err)
	err = op.Pool().
		QueryRow(ctx, "SELECT count(*) FROM observations").
		Scan(&observations)
	require.NoError(t, err)

	assert.Equal(t, 2, locations)
	assert.Equal(t, 2, events)
	assert.Equal(t, 3, observations)

	// Re-running the export overwrites, not appends.
	require.NoError(t, exp.Export(ctx, testRecords()))
	err = op.Pool().
		QueryRow(ctx, "SELECT count(*) FROM locations").
		Scan(&locations)
	require.NoError(t, err)
	assert.Equal(t, 2, locations)
}

func TestExportNotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	exp := ioexport.New(config.New(), op)

	err := exp.Export(context.Background(), testRecords())
	assert.Error(t, err)
}
