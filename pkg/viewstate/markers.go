package viewstate

import (
	"fmt"

	"github.com/gnames/ednamap/pkg/aggregate"
	"github.com/gnames/ednamap/pkg/layout"
	"github.com/gnames/ednamap/pkg/record"
)

// BuildMarkers projects LocationRecords into render-ready marker
// descriptors at the given zoom level. Descriptors are index-aligned with
// the input, so marker clicks map straight back to selection indices.
func BuildMarkers(
	locs []record.LocationRecord,
	zoom, baseRadiusMeters, baseSize float64,
) []record.MarkerDescriptor {
	placements := layout.Layout(locs, zoom, baseRadiusMeters, baseSize)

	res := make([]record.MarkerDescriptor, len(locs))
	for i, loc := range locs {
		res[i] = record.MarkerDescriptor{
			LocationID:   loc.ID,
			Index:        i,
			Position:     placements[i].Position,
			TruePosition: loc.Coordinates,
			Size:         placements[i].Size,
			Clustered:    placements[i].Clustered,
			Title:        markerTitle(loc),
			Summary:      aggregate.Summary(loc.MergedObservations, loc.DominantTaxon),
			Taxon:        loc.DominantTaxon,
			IconKey:      loc.DominantTaxon,
			Observations: loc.MergedObservations,
			DateRecords:  loc.DateRecords,
			EnvAverages:  loc.EnvAverages,
			Metadata:     loc.Metadata,
		}
	}
	return res
}

func markerTitle(loc record.LocationRecord) string {
	if loc.Metadata.MarkerLabel != "" {
		return loc.Metadata.MarkerLabel
	}
	return fmt.Sprintf(
		"%.4f, %.4f",
		loc.Coordinates.Lat, loc.Coordinates.Lon,
	)
}
