// Package schema provides database schema models for exporting ingested
// sampling results to PostgreSQL.
package schema

import "time"

// Location is one physical sampling point. Its ID is the UUID v5 derived
// from the location grouping key, so repeated exports of the same data
// hit the same rows.
type Location struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	Latitude      float64 `gorm:"not null;index:idx_locations_coords"`
	Longitude     float64 `gorm:"not null;index:idx_locations_coords"`
	DominantTaxon string  `gorm:"type:varchar(100)"`
	MarkerLabel   string  `gorm:"type:varchar(255)"`
	Manager       string  `gorm:"type:varchar(255)"`
	Primer        string  `gorm:"type:varchar(255)"`
	Purpose       string  `gorm:"type:varchar(255)"`

	// Environmental averages over all sampling events; NULL when no
	// event carried the measurement.
	AvgDissolvedOxygen     *float64
	AvgSpecificConductance *float64
	AvgPH                  *float64

	// Unavailable marks locations whose dataset failed to ingest.
	Unavailable bool `gorm:"not null;default:false"`

	UpdatedAt time.Time
}

// TableName returns the PostgreSQL table name.
func (Location) TableName() string { return "locations" }

// SamplingEvent is one sampling date at one location.
type SamplingEvent struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	LocationID string `gorm:"type:uuid;not null;index:idx_events_location"`
	Date       int    `gorm:"not null;index:idx_events_date"`

	DissolvedOxygen     *float64
	SpecificConductance *float64
	PH                  *float64

	Manager string `gorm:"type:varchar(255)"`
	Primer  string `gorm:"type:varchar(255)"`
	Purpose string `gorm:"type:varchar(255)"`
}

// TableName returns the PostgreSQL table name.
func (SamplingEvent) TableName() string { return "sampling_events" }

// Observation is one merged species record of one sampling event.
// Bulk-inserted with CopyFrom, so ID stays auto-generated.
type Observation struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	LocationID string `gorm:"type:uuid;not null;index:idx_observations_location"`
	Date       int    `gorm:"not null"`

	ScientificName string `gorm:"type:varchar(255);not null;index:idx_observations_sci_name"`
	CommonName     string `gorm:"type:varchar(255);not null"`
	Canonical      string `gorm:"type:varchar(255)"`
	Taxon          string `gorm:"type:varchar(100)"`
	ReadsCount     int    `gorm:"not null"`
}

// TableName returns the PostgreSQL table name.
func (Observation) TableName() string { return "observations" }
