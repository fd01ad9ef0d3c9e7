// Package validate implements physics plausibility checks for extracted
// well data. Checks never panic and never fail on well-formed numeric
// input: all findings accumulate into a model.ValidationResult. The one
// exception is a missing required field (NaN depth), which signals an
// upstream assembly bug and returns ErrMissingField.
package validate

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"

	"github.com/geowell-tools/wellextract/internal/config"
	"github.com/geowell-tools/wellextract/internal/model"
)

// ErrMissingField indicates a record with an absent required numeric field.
// This is a caller bug, not a data-quality finding.
var ErrMissingField = eris.New("validate: missing required field")

// Depth sanity range in meters. Deeper wells exist nowhere in geothermal
// practice; values past this are unit mix-ups (feet read as meters) or
// unrelated numbers.
const (
	depthMinM = 0.0
	depthMaxM = 10000.0
)

// commonPipeIDs are inner diameters (meters) of common casing sizes:
// 2", 4.5", 5.5", 7", 9 5/8", 13 3/8".
var commonPipeIDs = []float64{0.05, 0.114, 0.140, 0.178, 0.244, 0.340}

// commonSizeToleranceM is how close a diameter must be to a known nominal
// size to avoid the uncommon-size warning.
const commonSizeToleranceM = 0.01

// Validator runs physics checks with thresholds from a single config value
// object. It holds no mutable state and is safe for concurrent use.
type Validator struct {
	cfg config.ValidationConfig
}

// New creates a Validator with the given thresholds.
func New(cfg config.ValidationConfig) *Validator {
	return &Validator{cfg: cfg}
}

// result is the accumulating state of one validation pass.
type result struct {
	errors     []string
	warnings   []string
	confidence float64
}

func newResult() *result { return &result{confidence: 1.0} }

func (r *result) errorf(penalty float64, format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
	r.confidence *= penalty
}

func (r *result) warnf(penalty float64, format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
	r.confidence *= penalty
}

func (r *result) done() model.ValidationResult {
	return model.ValidationResult{
		IsValid:    len(r.errors) == 0,
		Confidence: r.confidence,
		Errors:     r.errors,
		Warnings:   r.warnings,
	}
}

// Point validates a single trajectory point. Inclination is nil when not
// measured. Returns ErrMissingField if md or tvd is NaN.
func (v *Validator) Point(md, tvd float64, inc *float64) (model.ValidationResult, error) {
	if math.IsNaN(md) || math.IsNaN(tvd) {
		return model.ValidationResult{Confidence: 0}, eris.Wrap(ErrMissingField, "trajectory point")
	}

	r := newResult()
	v.checkPoint(r, md, tvd, inc)
	return r.done(), nil
}

// checkPoint accumulates point-level findings into r. No check
// short-circuits another.
func (v *Validator) checkPoint(r *result, md, tvd float64, inc *float64) {
	// MD >= TVD within tolerance is the fundamental wellbore constraint.
	if md < tvd-v.cfg.MDTVDToleranceM {
		r.errors = append(r.errors,
			fmt.Sprintf("MD (%.2fm) < TVD (%.2fm) - physically impossible", md, tvd))
		r.confidence = 0
	}

	if md < depthMinM || md > depthMaxM {
		r.errorf(0.5, "MD (%.2fm) outside valid range [%.0f, %.0f]", md, depthMinM, depthMaxM)
	}
	if tvd < depthMinM || tvd > depthMaxM {
		r.errorf(0.5, "TVD (%.2fm) outside valid range [%.0f, %.0f]", tvd, depthMinM, depthMaxM)
	}

	if inc != nil {
		switch {
		case *inc < 0:
			r.errorf(0.5, "Inclination (%.2f°) is negative", *inc)
		case *inc > v.cfg.InclinationMaxDeg:
			r.errorf(0.5, "Inclination (%.2f°) exceeds maximum (%.0f°)", *inc, v.cfg.InclinationMaxDeg)
		case *inc > v.cfg.InclinationWarnDeg:
			// Near-horizontal is possible but rare; surface it without
			// penalizing confidence.
			r.warnings = append(r.warnings,
				fmt.Sprintf("High inclination (%.2f°) above warning threshold (%.0f°)", *inc, v.cfg.InclinationWarnDeg))
		}

		// A vertical station should have MD equal to TVD.
		if math.Abs(*inc) < 0.1 && math.Abs(md-tvd) > 0.1 {
			r.warnf(0.9, "Vertical well (inc=%.2f°) but MD (%.2fm) != TVD (%.2fm)", *inc, md, tvd)
		}
	}

	// MD more than 50% longer than TVD suggests a highly deviated well or
	// a mismatched pair of numbers.
	if md-tvd > md*0.5 {
		r.warnf(0.95, "Large difference between MD (%.2fm) and TVD (%.2fm); check for highly deviated well", md, tvd)
	}
}

// Diameter validates a casing inner diameter in meters against the
// configured hard bounds and the common-size table.
func (v *Validator) Diameter(d float64) model.ValidationResult {
	r := newResult()
	v.checkDiameter(r, d)
	return r.done()
}

func (v *Validator) checkDiameter(r *result, d float64) {
	minM := v.cfg.PipeIDMinMM / 1000
	maxM := v.cfg.PipeIDMaxMM / 1000
	if d < minM || d > maxM {
		r.errors = append(r.errors,
			fmt.Sprintf("Diameter (%.3fm) outside valid range [%.3f, %.3f]", d, minM, maxM))
		r.confidence = 0.5
		return
	}

	for _, size := range commonPipeIDs {
		if math.Abs(d-size) < commonSizeToleranceM {
			return
		}
	}
	r.warnf(0.95, "Diameter (%.3fm) doesn't match common casing sizes", d)
}

// MergedPoint validates one merged profile row: the point checks plus the
// diameter checks. Returns ErrMissingField for NaN depths.
func (v *Validator) MergedPoint(p model.MergedPoint) (model.ValidationResult, error) {
	if math.IsNaN(p.MD) || math.IsNaN(p.TVD) {
		return model.ValidationResult{Confidence: 0}, eris.Wrap(ErrMissingField, "merged point")
	}

	r := newResult()
	v.checkPoint(r, p.MD, p.TVD, p.Inclination)
	v.checkDiameter(r, p.PipeID)
	return r.done(), nil
}

// seqPoint is the minimal view the sequence checks need.
type seqPoint struct {
	md, tvd float64
	inc     *float64
}

// Sequence validates an ordered trajectory series: per-point checks plus
// monotonicity across consecutive points. The input is expected sorted
// ascending by MD; out-of-order input degrades trust but is not rejected.
func (v *Validator) Sequence(points []model.SurveyPoint) model.ValidationResult {
	sp := make([]seqPoint, len(points))
	for i, p := range points {
		sp[i] = seqPoint{md: p.MD, tvd: p.TVD, inc: p.Inclination}
	}
	return v.sequence(sp)
}

// MergedSequence validates a merged profile series, including diameters.
func (v *Validator) MergedSequence(points []model.MergedPoint) model.ValidationResult {
	sp := make([]seqPoint, len(points))
	for i, p := range points {
		sp[i] = seqPoint{md: p.MD, tvd: p.TVD, inc: p.Inclination}
	}
	res := v.sequence(sp)

	r := &result{errors: res.Errors, warnings: res.Warnings, confidence: res.Confidence}
	for _, p := range points {
		v.checkDiameter(r, p.PipeID)
	}
	return r.done()
}

func (v *Validator) sequence(points []seqPoint) model.ValidationResult {
	if len(points) == 0 {
		return model.ValidationResult{
			IsValid:    false,
			Confidence: 0,
			Errors:     []string{"Empty trajectory data"},
		}
	}

	r := newResult()
	if len(points) < 2 {
		r.errors = append(r.errors, "Trajectory has fewer than 2 points")
	}

	for i, p := range points {
		pr := newResult()
		v.checkPoint(pr, p.md, p.tvd, p.inc)
		for _, e := range pr.errors {
			r.errors = append(r.errors, fmt.Sprintf("Point %d (MD=%.2f): %s", i, p.md, e))
		}
		for _, w := range pr.warnings {
			r.warnings = append(r.warnings, fmt.Sprintf("Point %d (MD=%.2f): %s", i, p.md, w))
		}
		if pr.confidence < r.confidence {
			r.confidence = pr.confidence
		}
	}

	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		// Non-increasing MD degrades trust but can come from duplicate
		// survey stations; not physically impossible on its own.
		if curr.md <= prev.md {
			r.warnf(0.95, "Non-increasing MD at index %d: %.2f -> %.2f", i, prev.md, curr.md)
		}
		// TVD going back up is impossible for a normal survey.
		if curr.tvd < prev.tvd {
			r.errorf(0.7, "Decreasing TVD at index %d: %.2f -> %.2f", i, prev.tvd, curr.tvd)
		}
	}

	return r.done()
}

// Pressure validates a pressure reading against context-specific bounds.
func (v *Validator) Pressure(p model.PressureReading) model.ValidationResult {
	r := newResult()

	if p.Bar < 0 {
		r.errors = append(r.errors, fmt.Sprintf("Negative pressure: %.2f bar", p.Bar))
		r.confidence = 0
	}

	switch p.Context {
	case model.ContextReservoir:
		if p.Bar > v.cfg.ReservoirPressureMaxBar {
			r.errorf(0.5, "Reservoir pressure (%.2f bar) unrealistically high", p.Bar)
		}
	case model.ContextWellhead:
		if p.Bar > v.cfg.WellheadPressureMaxBar {
			r.warnf(0.8, "Wellhead pressure (%.2f bar) unusually high", p.Bar)
		}
	}

	return r.done()
}

// Temperature validates a temperature in Celsius against the configured
// range and the typical geothermal window.
func (v *Validator) Temperature(celsius float64) model.ValidationResult {
	r := newResult()

	if celsius < v.cfg.TemperatureMinC || celsius > v.cfg.TemperatureMaxC {
		r.errorf(0.5, "Temperature (%.1f°C) outside valid range [%.0f, %.0f]",
			celsius, v.cfg.TemperatureMinC, v.cfg.TemperatureMaxC)
	}
	if celsius < 50 {
		r.warnf(0.9, "Low temperature (%.1f°C) for geothermal application", celsius)
	}
	if celsius > 250 {
		r.warnf(0.9, "Very high temperature (%.1f°C)", celsius)
	}

	return r.done()
}

// Fluid checks fluid properties against typical ranges. Findings are
// warnings only; atypical fluids exist.
func (v *Validator) Fluid(p model.FluidProperties) model.ValidationResult {
	r := newResult()

	if p.Density != nil {
		if *p.Density < v.cfg.FluidDensityMin || *p.Density > v.cfg.FluidDensityMax {
			r.warnings = append(r.warnings,
				fmt.Sprintf("Fluid density (%.1f kg/m³) outside typical range (%.0f-%.0f)",
					*p.Density, v.cfg.FluidDensityMin, v.cfg.FluidDensityMax))
		}
	}
	if p.Viscosity != nil {
		if *p.Viscosity < 1e-4 || *p.Viscosity > 1e-2 {
			r.warnings = append(r.warnings,
				fmt.Sprintf("Fluid viscosity (%.6f Pa·s) outside typical range (0.0001-0.01)", *p.Viscosity))
		}
	}

	return r.done()
}
