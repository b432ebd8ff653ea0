// Package record defines the normalized data model for e-DNA sampling
// results: species observations, per-date sampling events, and aggregated
// per-location records.
//
// This package is pure data - no I/O, no aggregation logic. Records are
// built once during ingestion and treated as read-only afterwards.
package record

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Observation is a single species-read-count record from a sampling event.
// ScientificName and CommonName are guaranteed non-empty after ingestion;
// rows that cannot satisfy this are dropped before an Observation is made.
type Observation struct {
	// ScientificName is the latinized species name. Falls back to
	// CommonName when the source row lacks it.
	ScientificName string `json:"scientificName"`

	// CommonName is the vernacular species name.
	CommonName string `json:"commonName"`

	// ReadsCount is the number of sequence reads attributed to the
	// species. Never negative.
	ReadsCount int `json:"readsCount"`

	// Taxon is the higher taxonomic group label from the source row
	// (e.g. "Actinopterygii"). Optional.
	Taxon string `json:"taxon,omitempty"`

	// Canonical is the canonical form of the scientific name produced
	// by gnparser during ingestion. Optional enrichment.
	Canonical string `json:"canonical,omitempty"`
}

// Key identifies a species within merge operations. Duplicate keys are
// summed, never overwritten.
func (o Observation) Key() string {
	return o.ScientificName + "|" + o.CommonName
}

// EnvReadings holds optional environmental measurements. A nil field means
// the value was absent in the source - it is never coerced to zero.
type EnvReadings struct {
	// DissolvedOxygen in mg/L.
	DissolvedOxygen *float64 `json:"dissolvedOxygen,omitempty"`

	// SpecificConductance in uS/cm.
	SpecificConductance *float64 `json:"specificConductance,omitempty"`

	// PH of the water sample.
	PH *float64 `json:"pH,omitempty"`
}

// SamplingMeta holds free-form descriptive fields attached to a sampling
// event. All fields are optional.
type SamplingMeta struct {
	Purpose     string `json:"purpose,omitempty"`
	Manager     string `json:"manager,omitempty"`
	Primer      string `json:"primer,omitempty"`
	MarkerLabel string `json:"markerLabel,omitempty"`
}

// DateRecord is one sampling event at one location on one date.
type DateRecord struct {
	// Date is a numeric date encoding from the source data (YYYYMMDD
	// or a sampling campaign number).
	Date int `json:"date"`

	// SamplingID mirrors Date in current source files.
	SamplingID int `json:"samplingID"`

	// Observations for this date with duplicate species keys already
	// merged (reads summed), sorted descending by reads.
	Observations []Observation `json:"observations"`

	// RawObservations preserves the pre-merge rows; merge granularities
	// above a single date operate on these.
	RawObservations []Observation `json:"-"`

	Env  EnvReadings  `json:"env"`
	Meta SamplingMeta `json:"meta"`
}

// LocationMeta holds static per-location metadata taken from the first
// contributing source row. Later rows never override these fields.
type LocationMeta struct {
	Location    Coordinate `json:"location"`
	Taxon       string     `json:"taxa"`
	MarkerLabel string     `json:"marker,omitempty"`
	Manager     string     `json:"manager,omitempty"`
	Primer      string     `json:"primer,omitempty"`
	Purpose     string     `json:"object,omitempty"`
}

// LocationRecord aggregates all data for one physical sampling point.
type LocationRecord struct {
	// ID is a UUID v5 derived from the location grouping key, so the
	// same coordinates always produce the same identifier.
	ID string `json:"id"`

	// Coordinates of the first contributing raw row.
	Coordinates Coordinate `json:"coordinates"`

	// DominantTaxon is the taxon with the highest summed read count
	// across MergedObservations.
	DominantTaxon string `json:"dominantTaxon"`

	// DateRecords sorted ascending by date; dates are unique within a
	// location.
	DateRecords []DateRecord `json:"dateRecords"`

	// MergedObservations sums reads per species key across all dates,
	// sorted descending by reads.
	MergedObservations []Observation `json:"mergedObservations"`

	// EnvAverages holds arithmetic means over the DateRecords where the
	// field is defined. A field with no defined values stays nil.
	EnvAverages EnvReadings `json:"envAverages"`

	Metadata LocationMeta `json:"metadata"`

	// Unavailable is set when the dataset behind this location failed
	// to ingest; the location is still rendered with a fallback
	// message.
	Unavailable bool `json:"unavailable,omitempty"`
}

// Row is one normalized tuple produced by ingestion before grouping.
// Output of ingestion is intentionally not deduplicated; merging is the
// aggregation engine's job.
type Row struct {
	Lat  float64
	Lon  float64
	Date int
	Obs  Observation
	Env  EnvReadings
	Meta SamplingMeta
}
