package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geowell-tools/wellextract/internal/config"
	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/units"
)

func newRecognizer() *Recognizer {
	return New(config.DefaultExtraction())
}

func TestIsTrajectoryContent(t *testing.T) {
	r := newRecognizer()

	assert.True(t, r.IsTrajectoryContent("Survey table: MD and TVD listed below"))
	assert.True(t, r.IsTrajectoryContent("1000.5  995.2  1.5")) // structural pattern
	assert.False(t, r.IsTrajectoryContent("The drilling campaign started in March."))
}

func TestIsCasingContent(t *testing.T) {
	r := newRecognizer()

	assert.True(t, r.IsCasingContent("Casing schematic for the production well"))
	assert.True(t, r.IsCasingContent(`13 3/8" casing to 1331m`)) // fractional gate
	assert.False(t, r.IsCasingContent("Weather delayed operations for two weeks."))
}

func TestTrajectoryWhitespaceTriples(t *testing.T) {
	r := newRecognizer()

	text := "Survey MD TVD Inc\n1000.0  995.2  2.5\n1500.0  1480.1  5.0\n"
	points, relevant := r.Trajectory(text)
	require.True(t, relevant)
	require.Len(t, points, 2)
	assert.InDelta(t, 1000.0, points[0].MD, 1e-9)
	assert.InDelta(t, 995.2, points[0].TVD, 1e-9)
	require.NotNil(t, points[0].Inclination)
	assert.InDelta(t, 2.5, *points[0].Inclination, 1e-9)
	assert.InDelta(t, 0.8, points[0].Confidence, 1e-9)
}

func TestTrajectoryTabTableKeepsAllRows(t *testing.T) {
	r := newRecognizer()

	// Tab separators satisfy the whitespace grammar first; every
	// non-overlapping row of that grammar is kept.
	text := "MD\tTVD\tInc\n1000.0\t995.2\t2.5\n1500.0\t1480.1\t5.0\n2000.0\t1950.3\t8.2\n"
	points, relevant := r.Trajectory(text)
	require.True(t, relevant)
	assert.Len(t, points, 3)
}

func TestTrajectoryPipeDelimited(t *testing.T) {
	r := newRecognizer()

	text := "Survey results:\n| 1000.5 | 995.2 | 1.5 |\n| 1500.0 | 1480.1 | 5.0 |"
	points, relevant := r.Trajectory(text)
	require.True(t, relevant)
	require.Len(t, points, 2)
	assert.InDelta(t, 1000.5, points[0].MD, 1e-9)
}

func TestTrajectoryNamedFields(t *testing.T) {
	r := newRecognizer()

	text := "Station 1: MD: 1000.0 m TVD: 995.2 m Inc: 2.5°\nStation 2: MD: 1500.0 m TVD: 1480.1 m Inc: 5.0°"
	points, relevant := r.Trajectory(text)
	require.True(t, relevant)
	require.Len(t, points, 2)
	assert.InDelta(t, 0.7, points[0].Confidence, 1e-9)
	require.NotNil(t, points[1].Inclination)
	assert.InDelta(t, 5.0, *points[1].Inclination, 1e-9)
}

func TestTrajectoryNamedFieldsCountMismatch(t *testing.T) {
	r := newRecognizer()

	// Two MD labels but one TVD: positional zipping cannot be trusted.
	text := "MD: 1000.0 m MD: 1500.0 m TVD: 995.2 m survey"
	points, relevant := r.Trajectory(text)
	assert.True(t, relevant)
	assert.Empty(t, points)
}

func TestTrajectoryImplausibleTripleDropped(t *testing.T) {
	r := newRecognizer()

	// MD < TVD can never be a survey station; dropped silently.
	points, relevant := r.Trajectory("995.0  1000.0  5.0")
	assert.True(t, relevant)
	assert.Empty(t, points)

	// Depth beyond the plausible maximum.
	points, _ = r.Trajectory("Survey MD TVD table\n99999  500  5.0")
	assert.Empty(t, points)
}

func TestTrajectoryIrrelevantFragment(t *testing.T) {
	r := newRecognizer()

	points, relevant := r.Trajectory("The rig moved on location in January.")
	assert.False(t, relevant)
	assert.Nil(t, points)
}

func TestCasingFractional(t *testing.T) {
	r := newRecognizer()

	intervals, relevant := r.Casing(`13 3/8" casing to 1331m`)
	require.True(t, relevant)
	require.Len(t, intervals, 1)
	assert.InDelta(t, 0.0, intervals[0].TopDepth, 1e-9)
	assert.InDelta(t, 1331.0, intervals[0].BottomDepth, 1e-9)
	// 13.375 × 0.95 × 0.0254, bit-for-bit
	assert.Equal(t, units.NominalInchesToIDMeters(13.375), intervals[0].PipeID)
	assert.InDelta(t, 0.32273875, intervals[0].PipeID, 1e-9)
	assert.InDelta(t, 0.8, intervals[0].Confidence, 1e-9)
}

func TestCasingFractionalRange(t *testing.T) {
	r := newRecognizer()

	intervals, relevant := r.Casing(`9 5/8" liner at 1298 - 2500m`)
	require.True(t, relevant)
	require.Len(t, intervals, 1)
	assert.InDelta(t, 1298.0, intervals[0].TopDepth, 1e-9)
	assert.InDelta(t, 2500.0, intervals[0].BottomDepth, 1e-9)
	assert.InDelta(t, 9.625*0.95*0.0254, intervals[0].PipeID, 1e-12)
}

func TestCasingDecimal(t *testing.T) {
	r := newRecognizer()

	intervals, relevant := r.Casing(`Casing schematic: 13.375" casing to 1331m`)
	require.True(t, relevant)
	require.Len(t, intervals, 1)
	assert.InDelta(t, 13.375*0.95*0.0254, intervals[0].PipeID, 1e-12)
	assert.InDelta(t, 1331.0, intervals[0].BottomDepth, 1e-9)
}

func TestCasingDuplicateSuppressionAcrossGrammars(t *testing.T) {
	r := newRecognizer()

	// Same string reported twice, fractionally and decimally.
	text := `13 3/8" casing to 1331m (13.375" casing to 1331m)`
	intervals, relevant := r.Casing(text)
	require.True(t, relevant)
	assert.Len(t, intervals, 1)
}

func TestCasingMultipleStrings(t *testing.T) {
	r := newRecognizer()

	text := `Casing schematic: 13 3/8" casing to 1331m, 9 5/8" casing to 2500m, 7" liner at 2450 - 3000m`
	intervals, relevant := r.Casing(text)
	require.True(t, relevant)
	require.Len(t, intervals, 3)
	assert.InDelta(t, 1331, intervals[0].BottomDepth, 1e-9)
	assert.InDelta(t, 2500, intervals[1].BottomDepth, 1e-9)
	assert.InDelta(t, 3000, intervals[2].BottomDepth, 1e-9)
	assert.InDelta(t, 2450, intervals[2].TopDepth, 1e-9)
}

func TestCasingTypographicMarks(t *testing.T) {
	r := newRecognizer()

	// Typographic inch mark and fraction slash fold to ASCII before matching.
	intervals, relevant := r.Casing("13 3⁄8″ casing to 1331m")
	require.True(t, relevant)
	require.Len(t, intervals, 1)
	assert.Equal(t, units.NominalInchesToIDMeters(13.375), intervals[0].PipeID)
}

func TestCasingIrrelevantFragment(t *testing.T) {
	r := newRecognizer()

	intervals, relevant := r.Casing("Cementing was completed without incident.")
	assert.False(t, relevant)
	assert.Nil(t, intervals)
}

func TestDedupeTrajectoryBuckets(t *testing.T) {
	pts := []model.SurveyPoint{
		{MD: 1000.04, TVD: 995.0},
		{MD: 1000.01, TVD: 995.1}, // same 0.1m bucket: dropped
		{MD: 1000.26, TVD: 995.2}, // different bucket: kept
		{MD: 500.0, TVD: 499.0},
	}
	out := DedupeTrajectory(pts)
	require.Len(t, out, 3)
	assert.InDelta(t, 500.0, out[0].MD, 1e-9)
	assert.InDelta(t, 1000.04, out[1].MD, 1e-9)
	assert.InDelta(t, 1000.26, out[2].MD, 1e-9)
}

func TestDedupeCasingKeepsFirst(t *testing.T) {
	ivs := []model.CasingInterval{
		{BottomDepth: 1331, PipeID: 0.3227, Confidence: 0.8},
		{BottomDepth: 1331.5, PipeID: 0.3230, Confidence: 0.7}, // same string
		{BottomDepth: 2500, PipeID: 0.2322},
	}
	out := DedupeCasing(ivs)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.8, out[0].Confidence, 1e-9)
	assert.InDelta(t, 2500, out[1].BottomDepth, 1e-9)
}

func TestWellNames(t *testing.T) {
	text := "Wells ADK-GT-01 and ADK-GT-01-S1 were drilled from the HAL-GT-02 pad. See also RIJSWIJK-03."
	names := WellNames(text)
	assert.Contains(t, names, "ADK-GT-01")
	assert.Contains(t, names, "ADK-GT-01-S1")
	assert.Contains(t, names, "HAL-GT-02")
	assert.Contains(t, names, "RIJSWIJK-03")
}

func TestPressure(t *testing.T) {
	r := newRecognizer()

	p, ok := r.Pressure("Reservoir pressure: 250 bar at datum")
	require.True(t, ok)
	assert.InDelta(t, 250, p.Bar, 1e-9)
	assert.Equal(t, model.ContextReservoir, p.Context)

	p, ok = r.Pressure("Wellhead pressure 1000 psi during test")
	require.True(t, ok)
	assert.InDelta(t, 68.948, p.Bar, 1e-6)
	assert.Equal(t, model.ContextWellhead, p.Context)

	p, ok = r.Pressure("Static pressure: 25 MPa")
	require.True(t, ok)
	assert.InDelta(t, 250, p.Bar, 1e-9)
	assert.Equal(t, model.ContextGeneric, p.Context)

	_, ok = r.Pressure("No pressure data in this section.")
	assert.False(t, ok)
}

func TestTemperature(t *testing.T) {
	r := newRecognizer()

	temp, ok := r.Temperature("Reservoir temperature: 150°C measured")
	require.True(t, ok)
	assert.InDelta(t, 150, temp.Celsius, 1e-9)

	temp, ok = r.Temperature("Bottomhole temperature: 302 F")
	require.True(t, ok)
	assert.InDelta(t, 150, temp.Celsius, 1e-9)

	_, ok = r.Temperature("Temperatures were not recorded.")
	assert.False(t, ok)
}
