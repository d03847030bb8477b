package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aislenav/internal/config"
	"github.com/katalvlaran/aislenav/internal/logging"
	"github.com/katalvlaran/aislenav/route"
)

const openRequest = `{
  "grid": [[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]],
  "stops": [
    {"id": "door", "x": 0, "y": 0, "start": true},
    {"id": "milk", "x": 4, "y": 0, "categories": ["dairy"]},
    {"id": "bread", "x": 4, "y": 4, "categories": ["bakery"]}
  ]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"AISLENAV_CONFIG", "AISLENAV_LOG_LEVEL", "AISLENAV_LOG_FORMAT", "AISLENAV_ALGORITHM",
		"AISLENAV_MAX_SIDE", "AISLENAV_BUFFER_RADIUS", "AISLENAV_WORKERS", "AISLENAV_MAX_CELLS", "AISLENAV_TIME_LIMIT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

func TestPlanCommand_JSON(t *testing.T) {
	out, err := run(t, openRequest, "plan", "--log-level", "error")
	require.NoError(t, err)

	var plan route.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Order, 3)
	require.Equal(t, "door", plan.Order[0].ID)
	require.Equal(t, "brute_force", plan.Algorithm)
	require.InDelta(t, 8.0, plan.TotalDistance, 1e-9)
	require.NotEmpty(t, plan.ID)
}

func TestPlanCommand_CategoriesAndGeoJSON(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "plan.geojson")
	promPath := filepath.Join(dir, "aislenav.prom")

	_, err := run(t, openRequest, "plan", "--log-level", "error",
		"--categories", "dairy", "--format", "geojson",
		"-o", outPath, "--metrics-file", promPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &fc))
	require.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 3, "two stops and one leg")

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), `aislenav_plans_total{outcome="ok"} 1`)
}

func TestPlanCommand_Errors(t *testing.T) {
	_, err := run(t, openRequest, "plan", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")

	_, err = run(t, "{", "plan", "--log-level", "error")
	require.ErrorContains(t, err, "decode request")

	_, err = run(t, `{"grid": [[0,0],[0]], "stops": [{"id": "a"}]}`, "plan", "--log-level", "error")
	require.ErrorContains(t, err, "decode grid")

	_, err = run(t, `{"grid": [[0]], "stops": []}`, "plan", "--log-level", "error")
	require.ErrorIs(t, err, route.ErrNoStops)

	_, err = run(t, openRequest, "plan", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, openRequest, "plan", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRasterCommand(t *testing.T) {
	req := `{"grid": [[0,0,0,0,0],[0,0,0,0,0],[0,0,1,0,0],[0,0,0,0,0],[0,0,0,0,0]], "stops": []}`
	out, err := run(t, req, "raster", "--log-level", "error", "--buffer", "1")
	require.NoError(t, err)
	require.Equal(t, ".....\n..#..\n.###.\n..#..\n.....\n", out)
}

func TestRasterCommand_FromSegments(t *testing.T) {
	req := `{"segments": [{"start": {"x": 0, "y": 0}, "end": {"x": 4, "y": 0}}], "stops": []}`
	cfg := filepath.Join(t.TempDir(), "aislenav.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("grid:\n  margin: 0\nbuffer:\n  radius: 0\n"), 0o600))

	out, err := run(t, req, "raster", "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "#####\n", out)
}

func TestRasterCommand_WindowOnDeferredLayout(t *testing.T) {
	req := `{"segments": [
	  {"start": {"x": 0, "y": 0}, "end": {"x": 9, "y": 0}},
	  {"start": {"x": 4, "y": 0}, "end": {"x": 4, "y": 9}}
	], "stops": []}`
	cfg := filepath.Join(t.TempDir(), "aislenav.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("grid:\n  margin: 0\n  maxCells: 10\n"), 0o600))

	out, err := run(t, req, "raster", "--config", cfg, "--log-level", "error", "--window", "3,0,3,3")
	require.NoError(t, err)
	require.Equal(t, "###\n.#.\n.#.\n", out)

	_, err = run(t, req, "raster", "--config", cfg, "--log-level", "error", "--window", "3,0,3")
	require.ErrorContains(t, err, "want x,y,w,h")
	_, err = run(t, req, "raster", "--config", cfg, "--log-level", "error", "--window", "8,8,5,5")
	require.Error(t, err)
}

func TestParseWindow(t *testing.T) {
	x, y, w, h, err := parseWindow("1, 2,3,4")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, []int{x, y, w, h})

	_, _, _, _, err = parseWindow("a,2,3,4")
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "", "config", "--log-format", "json")
	require.NoError(t, err)

	cfg := config.Default()
	require.NoError(t, config.Parse([]byte(out), &cfg))
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, config.Default().Grid, cfg.Grid)
}

func TestPlannerOptions(t *testing.T) {
	cfg := config.Default()
	opts, err := plannerOptions(cfg, logging.Discard(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, opts)

	cfg.Solver.Algorithm = "simulated_annealing"
	_, err = plannerOptions(cfg, logging.Discard(), nil)
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"dairy", "bakery"}, splitList(" dairy, ,bakery,"))
	require.Nil(t, splitList(""))
}
