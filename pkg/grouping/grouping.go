// Package grouping partitions normalized ingestion rows into per-location,
// per-date records.
//
// Rows group into the same location when their coordinates agree after
// rounding to 6 decimal digits (~0.11 m). This key is intentionally much
// finer than the ~11 m tolerance the marker declutter layout uses; the two
// serve different purposes.
package grouping

import (
	"fmt"
	"sort"

	"github.com/gnames/ednamap/pkg/aggregate"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/gnames/gnuuid"
)

// DefaultTaxon labels a location whose rows carry no taxon information.
// The source data is fish-survey centric.
const DefaultTaxon = "fish"

// LocationKey returns the grouping key for a coordinate pair.
func LocationKey(lat, lon float64) string {
	return fmt.Sprintf("%.6f_%.6f", lon, lat)
}

// dateAccum accumulates raw rows of one sampling date.
type dateAccum struct {
	date int
	env  record.EnvReadings
	meta record.SamplingMeta
	obs  []record.Observation
}

// locAccum accumulates one location bucket during the single grouping
// pass. The first row encountered supplies canonical coordinates and
// static metadata; later rows never override them.
type locAccum struct {
	key   string
	coord record.Coordinate
	meta  record.LocationMeta
	dates map[int]*dateAccum
	order []int
}

// Build partitions rows into LocationRecords in a single pass with
// insert-or-update semantics. Location order follows first encounter;
// date records sort ascending by date. Per-date observations and the
// cross-date merged set are produced by the aggregation engine.
func Build(rows []record.Row) []record.LocationRecord {
	byKey := make(map[string]*locAccum)
	var order []string

	for _, row := range rows {
		key := LocationKey(row.Lat, row.Lon)
		loc, ok := byKey[key]
		if !ok {
			loc = &locAccum{
				key:   key,
				coord: record.Coordinate{Lat: row.Lat, Lon: row.Lon},
				meta:  metaFromRow(row),
				dates: make(map[int]*dateAccum),
			}
			byKey[key] = loc
			order = append(order, key)
		}

		da, ok := loc.dates[row.Date]
		if !ok {
			da = &dateAccum{
				date: row.Date,
				env:  row.Env,
				meta: row.Meta,
			}
			loc.dates[row.Date] = da
			loc.order = append(loc.order, row.Date)
		}
		da.obs = append(da.obs, row.Obs)
	}

	res := make([]record.LocationRecord, 0, len(order))
	for _, key := range order {
		res = append(res, finishLocation(byKey[key]))
	}
	return res
}

func metaFromRow(row record.Row) record.LocationMeta {
	taxon := row.Obs.Taxon
	if taxon == "" {
		taxon = DefaultTaxon
	}
	return record.LocationMeta{
		Location:    record.Coordinate{Lat: row.Lat, Lon: row.Lon},
		Taxon:       taxon,
		MarkerLabel: row.Meta.MarkerLabel,
		Manager:     row.Meta.Manager,
		Primer:      row.Meta.Primer,
		Purpose:     row.Meta.Purpose,
	}
}

func finishLocation(loc *locAccum) record.LocationRecord {
	sort.Ints(loc.order)

	drs := make([]record.DateRecord, 0, len(loc.order))
	rawLists := make([][]record.Observation, 0, len(loc.order))
	for _, date := range loc.order {
		da := loc.dates[date]
		drs = append(drs, record.DateRecord{
			Date:            da.date,
			SamplingID:      da.date,
			Observations:    aggregate.Merge(da.obs),
			RawObservations: da.obs,
			Env:             da.env,
			Meta:            da.meta,
		})
		rawLists = append(rawLists, da.obs)
	}

	merged := aggregate.Merge(rawLists...)

	return record.LocationRecord{
		ID:                 gnuuid.New(loc.key).String(),
		Coordinates:        loc.coord,
		DominantTaxon:      aggregate.DominantTaxon(merged, loc.meta.Taxon),
		DateRecords:        drs,
		MergedObservations: merged,
		EnvAverages:        aggregate.EnvAverages(drs),
		Metadata:           loc.meta,
	}
}

// Placeholder builds an empty LocationRecord for a dataset that failed
// to ingest but whose location is known from metadata. The location still
// renders on the map with a fallback message.
func Placeholder(meta record.LocationMeta) record.LocationRecord {
	key := LocationKey(meta.Location.Lat, meta.Location.Lon)
	taxon := meta.Taxon
	if taxon == "" {
		taxon = DefaultTaxon
		meta.Taxon = taxon
	}
	return record.LocationRecord{
		ID:            gnuuid.New(key).String(),
		Coordinates:   meta.Location,
		DominantTaxon: taxon,
		Metadata:      meta,
		Unavailable:   true,
	}
}
