package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aislenav/internal/config"
)

func env(kv map[string]string) config.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 2, cfg.Buffer.Radius)
	require.Equal(t, -1, cfg.Buffer.ClearRadius)
	require.Equal(t, int64(10_000_000), cfg.Grid.MaxCells)
	require.Equal(t, 1000, cfg.Grid.MaxSide)
}

func TestLoad_FileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aislenav.yaml")
	doc := `
log:
  level: debug
  format: json
buffer:
  radius: 3
solver:
  algorithm: held_karp
  timeLimit: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 3, cfg.Buffer.Radius)
	require.Equal(t, "held_karp", cfg.Solver.Algorithm)
	require.Equal(t, 250*time.Millisecond, cfg.Solver.TimeLimit)
	require.Equal(t, 5, cfg.Grid.Margin, "untouched fields keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("grid:\n  cellSize: 3\n"), 0o644))
	_, err = config.Load(unknown)
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("solver:\n  algorithm: christofides\n"), 0o644))
	_, err = config.Load(bad)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate_Ranges(t *testing.T) {
	cases := map[string]func(*config.Config){
		"NegativeRadius": func(c *config.Config) { c.Buffer.Radius = -1 },
		"ClearRadius":    func(c *config.Config) { c.Buffer.ClearRadius = -2 },
		"ZeroMaxCells":   func(c *config.Config) { c.Grid.MaxCells = 0 },
		"ZeroMaxSide":    func(c *config.Config) { c.Grid.MaxSide = 0 },
		"LogFormat":      func(c *config.Config) { c.Log.Format = "xml" },
		"Workers":        func(c *config.Config) { c.Pathfind.Workers = -3 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := config.ApplyEnv(&cfg, env(map[string]string{
		"AISLENAV_LOG_LEVEL":     "warn",
		"AISLENAV_WORKERS":       "4",
		"AISLENAV_MAX_CELLS":     "5000",
		"AISLENAV_TIME_LIMIT":    "2s",
		"AISLENAV_BUFFER_RADIUS": "",
	}))
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 4, cfg.Pathfind.Workers)
	require.Equal(t, int64(5000), cfg.Grid.MaxCells)
	require.Equal(t, 2*time.Second, cfg.Solver.TimeLimit)
	require.Equal(t, 2, cfg.Buffer.Radius, "empty value is ignored")

	err = config.ApplyEnv(&cfg, env(map[string]string{"AISLENAV_WORKERS": "many"}))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.TimeLimit = 3 * time.Second
	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	back := config.Config{}
	require.NoError(t, config.Parse(data, &back))
	require.Equal(t, cfg.Solver, back.Solver)
	require.Equal(t, cfg.Grid, back.Grid)
}
