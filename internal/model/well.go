// Package model defines the domain types shared across the extraction
// pipeline. All entities are created fresh per extraction and are never
// shared between concurrent requests.
package model

// SurveyPoint is a single trajectory survey station. Depths are meters,
// angles are degrees. Inclination and Azimuth are nil when the source text
// did not report them; nil is distinct from a measured zero.
type SurveyPoint struct {
	MD          float64  `json:"md"`
	TVD         float64  `json:"tvd"`
	Inclination *float64 `json:"inclination,omitempty"`
	Azimuth     *float64 `json:"azimuth,omitempty"`
	// Confidence reflects the provenance of the extraction grammar that
	// produced the point, not measurement accuracy.
	Confidence float64 `json:"confidence"`
}

// CasingInterval is one casing or liner string. PipeID is the inner
// diameter in meters, approximated from the nominal outer size (see
// units.NominalIDFactor).
type CasingInterval struct {
	TopDepth    float64  `json:"top_depth"`
	BottomDepth float64  `json:"bottom_depth"`
	PipeID      float64  `json:"pipe_id"`
	Grade       string   `json:"grade,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Confidence  float64  `json:"confidence"`
}

// MergedPoint is one row of the merged well profile: the casing's
// characteristic depth with trajectory TVD/inclination filled from the
// nearest survey station. Derived by the merge engine, never constructed
// independently.
type MergedPoint struct {
	MD          float64  `json:"md"`
	TVD         float64  `json:"tvd"`
	Inclination *float64 `json:"inclination,omitempty"`
	PipeID      float64  `json:"pipe_id"`
}

// WellExtraction aggregates everything extracted for one well from one set
// of fragments. It owns its sub-lists exclusively.
type WellExtraction struct {
	WellName    string              `json:"well_name"`
	Trajectory  []SurveyPoint       `json:"trajectory"`
	Casing      []CasingInterval    `json:"casing"`
	Merged      []MergedPoint       `json:"merged"`
	Pressure    *PressureReading    `json:"pressure,omitempty"`
	Temperature *TemperatureReading `json:"temperature,omitempty"`
	Confidence  float64             `json:"confidence"`
	Validations []ValidationResult  `json:"validations,omitempty"`
}
