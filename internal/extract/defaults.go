package extract

import (
	"fmt"
	"strings"

	"github.com/geowell-tools/wellextract/internal/model"
)

// Defaults carries suggested fallback values for data categories the
// extraction could not fill.
type Defaults struct {
	FluidDensity       *float64 `json:"fluid_density,omitempty"`
	FluidDensitySource string   `json:"fluid_density_source,omitempty"`
	// InterpolationNeeded is set when too few trajectory points were found
	// to describe the well path without interpolating between stations.
	InterpolationNeeded bool   `json:"interpolation_needed,omitempty"`
	InterpolationReason string `json:"interpolation_reason,omitempty"`
}

// minTrajectoryPoints is the station count below which downstream analysis
// should interpolate rather than trust the sparse profile directly.
const minTrajectoryPoints = 5

// SuggestDefaults proposes fallback values for missing categories.
// defaultDensity comes from the validation config (water by default).
func (p *Pipeline) SuggestDefaults(result *model.WellExtraction, defaultDensity float64) Defaults {
	d := Defaults{}

	density := defaultDensity
	d.FluidDensity = &density
	d.FluidDensitySource = "default (water)"

	if n := len(result.Trajectory); n > 0 && n < minTrajectoryPoints {
		d.InterpolationNeeded = true
		d.InterpolationReason = fmt.Sprintf("Only %d trajectory points found", n)
	}

	return d
}

// MissingDataPrompt builds a user-facing prompt describing which data
// categories are absent and what to provide.
func MissingDataPrompt(result *model.WellExtraction) string {
	var prompts []string

	if len(result.Trajectory) == 0 {
		prompts = append(prompts,
			"Trajectory data not found. Please provide:\n"+
				"   - Measured Depth (MD)\n"+
				"   - True Vertical Depth (TVD)\n"+
				"   - Inclination (degrees)")
	}
	if len(result.Casing) == 0 {
		prompts = append(prompts,
			"Casing design not found. Please provide:\n"+
				"   - Casing depths (MD)\n"+
				"   - Pipe internal diameters (inches or mm)")
	}

	if len(prompts) == 0 {
		return "All required data extracted successfully"
	}
	return strings.Join(prompts, "\n\n")
}
