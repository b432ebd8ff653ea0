package record

// MarkerDescriptor is the render-ready projection of a LocationRecord
// handed to the presentation layer. Position may differ from the true
// coordinates when the declutter layout offsets coincident markers.
type MarkerDescriptor struct {
	LocationID string `json:"locationID"`

	// Index of the LocationRecord in the ingested set; selection state
	// operates on these indices.
	Index int `json:"index"`

	// Position is the display coordinate after declutter layout.
	Position Coordinate `json:"position"`

	// TruePosition is the geographic coordinate of the sampling point.
	TruePosition Coordinate `json:"truePosition"`

	// Size is the display size factor; cluster members are rendered
	// smaller than singletons.
	Size float64 `json:"size"`

	// Clustered is true when the marker shares its coordinates with
	// other sampling points within tolerance.
	Clustered bool `json:"clustered"`

	Title   string `json:"title"`
	Summary string `json:"summary"`
	Taxon   string `json:"taxon"`

	// IconKey addresses an entry in the icon cache; empty means the
	// default icon.
	IconKey string `json:"iconKey,omitempty"`

	Observations []Observation `json:"observations"`
	DateRecords  []DateRecord  `json:"dateRecords"`
	EnvAverages  EnvReadings   `json:"envAverages"`
	Metadata     LocationMeta  `json:"metadata"`
}
