package model

// PressureContext classifies where in the well a pressure reading applies.
// The validator applies different bounds per context.
type PressureContext string

const (
	ContextGeneric   PressureContext = "generic"
	ContextReservoir PressureContext = "reservoir"
	ContextWellhead  PressureContext = "wellhead"
)

// PressureReading is a pressure value normalized to bar.
type PressureReading struct {
	Bar     float64         `json:"bar"`
	Context PressureContext `json:"context"`
}

// TemperatureReading is a temperature value normalized to Celsius.
type TemperatureReading struct {
	Celsius float64 `json:"celsius"`
}

// FluidProperties holds optional working-fluid parameters. Nil fields were
// not found in the source text.
type FluidProperties struct {
	Density   *float64 `json:"density,omitempty"`   // kg/m³
	Viscosity *float64 `json:"viscosity,omitempty"` // Pa·s
}
