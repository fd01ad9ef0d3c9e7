package validate

import (
	"math"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geowell-tools/wellextract/internal/config"
	"github.com/geowell-tools/wellextract/internal/model"
)

func ptr(f float64) *float64 { return &f }

func newValidator() *Validator {
	return New(config.DefaultValidation())
}

func TestPointValid(t *testing.T) {
	v := newValidator()

	res, err := v.Point(1000, 995, ptr(2.5))
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.Empty(t, res.Errors)
}

func TestPointMDLessThanTVD(t *testing.T) {
	v := newValidator()

	res, err := v.Point(995, 1000, nil)
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.InDelta(t, 0.0, res.Confidence, 1e-9)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "physically impossible")
}

func TestPointWithinTolerance(t *testing.T) {
	v := newValidator()

	// MD 0.5m below TVD is inside the 1.0m tolerance.
	res, err := v.Point(999.5, 1000, nil)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestPointDepthOutOfRange(t *testing.T) {
	v := newValidator()

	res, err := v.Point(12000, 11000, nil)
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 2) // MD and TVD both out of range
	assert.InDelta(t, 0.25, res.Confidence, 1e-9)
}

func TestPointInclination(t *testing.T) {
	v := newValidator()

	res, err := v.Point(1000, 990, ptr(-5))
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors[0], "negative")

	res, err = v.Point(1000, 990, ptr(95))
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors[0], "exceeds maximum")

	// Above the warning threshold but below maximum: warn without penalty.
	res, err = v.Point(4000, 2500, ptr(85))
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "High inclination")
}

func TestPointVerticalConsistencyWarning(t *testing.T) {
	v := newValidator()

	res, err := v.Point(1000, 995, ptr(0.05))
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "Vertical well")
	assert.InDelta(t, 0.9, res.Confidence, 1e-9)
}

func TestPointLargeGapWarning(t *testing.T) {
	v := newValidator()

	res, err := v.Point(4000, 1500, ptr(70))
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "Large difference")
	assert.InDelta(t, 0.95, res.Confidence, 1e-9)
}

func TestPointMissingField(t *testing.T) {
	v := newValidator()

	_, err := v.Point(math.NaN(), 1000, nil)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMissingField))
}

func TestDiameter(t *testing.T) {
	v := newValidator()

	// 13 3/8" nominal with the 0.95 ID approximation is near 0.340m.
	res := v.Diameter(0.3227)
	assert.True(t, res.IsValid)

	// Hard out of range sets confidence to 0.5.
	res = v.Diameter(0.02)
	assert.False(t, res.IsValid)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)

	// In range but not a common size warns.
	res = v.Diameter(0.30)
	assert.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "common casing sizes")
	assert.InDelta(t, 0.95, res.Confidence, 1e-9)
}

func TestSequenceEmpty(t *testing.T) {
	v := newValidator()

	res := v.Sequence(nil)
	assert.False(t, res.IsValid)
	assert.InDelta(t, 0.0, res.Confidence, 1e-9)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Empty")
}

func TestSequenceSinglePoint(t *testing.T) {
	v := newValidator()

	res := v.Sequence([]model.SurveyPoint{{MD: 100, TVD: 100}})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors[0], "fewer than 2 points")
}

func TestSequenceMonotone(t *testing.T) {
	v := newValidator()

	pts := []model.SurveyPoint{
		{MD: 0, TVD: 0, Inclination: ptr(0.0)},
		{MD: 500, TVD: 499, Inclination: ptr(1.0)},
		{MD: 1000, TVD: 995, Inclination: ptr(2.5)},
		{MD: 2000, TVD: 1980, Inclination: ptr(5.0)},
	}
	res := v.Sequence(pts)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestSequenceNonIncreasingMDWarns(t *testing.T) {
	v := newValidator()

	pts := []model.SurveyPoint{
		{MD: 1000, TVD: 995},
		{MD: 1000, TVD: 996},
		{MD: 2000, TVD: 1980},
	}
	res := v.Sequence(pts)
	assert.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "Non-increasing MD")
	assert.InDelta(t, 0.95, res.Confidence, 1e-9)
}

func TestSequenceDecreasingTVDFails(t *testing.T) {
	v := newValidator()

	pts := []model.SurveyPoint{
		{MD: 1000, TVD: 995},
		{MD: 1500, TVD: 990},
	}
	res := v.Sequence(pts)
	assert.False(t, res.IsValid)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "Decreasing TVD")
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)
}

func TestMergedSequenceIncludesDiameters(t *testing.T) {
	v := newValidator()

	pts := []model.MergedPoint{
		{MD: 1331, TVD: 1330, Inclination: ptr(1.0), PipeID: 0.3227},
		{MD: 2500, TVD: 2480, Inclination: ptr(5.0), PipeID: 0.30},
	}
	res := v.MergedSequence(pts)
	assert.True(t, res.IsValid)
	found := false
	for _, w := range res.Warnings {
		if w == "Diameter (0.300m) doesn't match common casing sizes" {
			found = true
		}
	}
	assert.True(t, found, "expected uncommon-diameter warning, got %v", res.Warnings)
}

func TestPressure(t *testing.T) {
	v := newValidator()

	res := v.Pressure(model.PressureReading{Bar: 250, Context: model.ContextReservoir})
	assert.True(t, res.IsValid)

	res = v.Pressure(model.PressureReading{Bar: -5, Context: model.ContextGeneric})
	assert.False(t, res.IsValid)
	assert.InDelta(t, 0.0, res.Confidence, 1e-9)

	res = v.Pressure(model.PressureReading{Bar: 1500, Context: model.ContextReservoir})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors[0], "unrealistically high")

	// High wellhead pressure is a warning only.
	res = v.Pressure(model.PressureReading{Bar: 350, Context: model.ContextWellhead})
	assert.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)
}

func TestTemperature(t *testing.T) {
	v := newValidator()

	res := v.Temperature(150)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Warnings)

	res = v.Temperature(-10)
	assert.False(t, res.IsValid)

	res = v.Temperature(40)
	assert.True(t, res.IsValid)
	assert.Contains(t, res.Warnings[0], "Low temperature")

	res = v.Temperature(280)
	assert.True(t, res.IsValid)
	assert.Contains(t, res.Warnings[0], "Very high temperature")
}

func TestFluid(t *testing.T) {
	v := newValidator()

	res := v.Fluid(model.FluidProperties{Density: ptr(1000), Viscosity: ptr(0.001)})
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Warnings)

	res = v.Fluid(model.FluidProperties{Density: ptr(1500)})
	assert.True(t, res.IsValid)
	assert.Contains(t, res.Warnings[0], "density")

	res = v.Fluid(model.FluidProperties{Viscosity: ptr(0.5)})
	assert.True(t, res.IsValid)
	assert.Contains(t, res.Warnings[0], "viscosity")
}
