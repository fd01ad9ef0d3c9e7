package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/geowell-tools/wellextract/internal/config"
	"github.com/geowell-tools/wellextract/internal/extract"
	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/store"
)

func newTestRouter(t *testing.T, limiter *rate.Limiter) http.Handler {
	t.Helper()

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "serve.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))

	p := extract.New(config.DefaultExtraction(), config.DefaultValidation())
	return newRouter(p, st, limiter)
}

func noLimit() *rate.Limiter { return rate.NewLimiter(rate.Inf, 0) }

func extractBody() string {
	bundle := model.FragmentBundle{
		Well: "KTN-GT-01",
		Trajectory: []model.Fragment{
			{Text: "Directional survey (MD / TVD / Inclination):\n500 498 2.0\n1300 1290 5.0\n1500 1480 10.0"},
		},
		Casing: []model.Fragment{
			{Text: `Casing schematic: 13 3/8" production casing to 1331m`},
		},
	}
	data, _ := json.Marshal(bundle)
	return string(data)
}

func TestServeHealth(t *testing.T) {
	router := newTestRouter(t, noLimit())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeExtractAndFetchRun(t *testing.T) {
	router := newTestRouter(t, noLimit())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/extract", strings.NewReader(extractBody())))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RunID  string                 `json:"run_id"`
		Result model.WellExtraction   `json:"result"`
		Report model.ValidationReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Len(t, resp.Result.Trajectory, 3)
	assert.Len(t, resp.Result.Casing, 1)
	assert.True(t, resp.Report.IsValid)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs/"+resp.RunID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var run model.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, model.RunDone, run.Status)
	assert.Equal(t, "KTN-GT-01", run.WellName)
}

func TestServeExtractBadBody(t *testing.T) {
	router := newTestRouter(t, noLimit())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/extract", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeExtractEmptyBundle(t *testing.T) {
	router := newTestRouter(t, noLimit())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/extract", strings.NewReader(`{"well":"KTN-GT-01"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeListRuns(t *testing.T) {
	router := newTestRouter(t, noLimit())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/extract", strings.NewReader(extractBody())))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs?well=KTN-GT-01", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var runs []model.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "KTN-GT-01", runs[0].WellName)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs?well=OTHER-GT-99", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServeGetRunNotFound(t *testing.T) {
	router := newTestRouter(t, noLimit())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs/no-such-run", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeRateLimit(t *testing.T) {
	router := newTestRouter(t, rate.NewLimiter(1, 1))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
