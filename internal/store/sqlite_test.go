package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geowell-tools/wellextract/internal/config"
	"github.com/geowell-tools/wellextract/internal/model"
)

func configWithDriver(driver string) config.StoreConfig {
	return config.StoreConfig{Driver: driver}
}

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLiteCreateAndGetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "KTN-GT-01")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunQueued, run.Status)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "KTN-GT-01", got.WellName)
	assert.Nil(t, got.Result)
}

func TestSQLiteGetRunNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetRun(context.Background(), "no-such-run")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestSQLiteUpdateRunStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "KTN-GT-01")
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunStatus(ctx, run.ID, model.RunRunning))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunRunning, got.Status)
}

func TestSQLiteUpdateRunStatusNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.UpdateRunStatus(context.Background(), "missing", model.RunRunning)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestSQLiteCompleteRunRoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "KTN-GT-01")
	require.NoError(t, err)

	inc := 5.0
	result := &model.WellExtraction{
		WellName: "KTN-GT-01",
		Trajectory: []model.SurveyPoint{
			{MD: 1300, TVD: 1290, Inclination: &inc, Confidence: 0.8},
		},
		Casing: []model.CasingInterval{
			{BottomDepth: 1331, PipeID: 0.3227, Confidence: 0.8},
		},
		Confidence: 0.95,
	}
	report := &model.ValidationReport{IsValid: true, Confidence: 0.95}

	require.NoError(t, st.CompleteRun(ctx, run.ID, result, report))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunDone, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, "KTN-GT-01", got.Result.WellName)
	require.Len(t, got.Result.Trajectory, 1)
	require.NotNil(t, got.Result.Trajectory[0].Inclination)
	assert.InDelta(t, 5.0, *got.Result.Trajectory[0].Inclination, 1e-9)
	require.NotNil(t, got.Report)
	assert.True(t, got.Report.IsValid)
}

func TestSQLiteFailRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "KTN-GT-01")
	require.NoError(t, err)

	require.NoError(t, st.FailRun(ctx, run.ID, "fragment bundle unreadable"))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunFailed, got.Status)
	assert.Equal(t, "fragment bundle unreadable", got.Error)
}

func TestSQLiteListRuns(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	a, err := st.CreateRun(ctx, "KTN-GT-01")
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, "SLT-GT-03")
	require.NoError(t, err)
	require.NoError(t, st.UpdateRunStatus(ctx, a.ID, model.RunRunning))

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	running, err := st.ListRuns(ctx, RunFilter{Status: model.RunRunning})
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, a.ID, running[0].ID)

	byWell, err := st.ListRuns(ctx, RunFilter{WellName: "SLT-GT-03"})
	require.NoError(t, err)
	require.Len(t, byWell, 1)
	assert.Equal(t, "SLT-GT-03", byWell[0].WellName)
}

func TestSQLiteListRunsLimit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := st.CreateRun(ctx, "KTN-GT-01")
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(ctx, RunFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), configWithDriver("oracle"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}

func TestOpenSQLite(t *testing.T) {
	cfg := configWithDriver("sqlite")
	cfg.DSN = filepath.Join(t.TempDir(), "open.db")

	st, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Migrate(context.Background()))
}
