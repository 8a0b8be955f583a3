package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "PLANNER_CONFIG",
		"PLANNER_DB_PATH", "PLANNER_URL", "GRID_SIZE", "MAX_GRID_CELLS", "DEFAULT_PIXELS_PER_METER",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(GatewayPort)
	require.NoError(t, err)
	assert.Equal(t, defaults(GatewayPort), cfg)
	assert.Equal(t, 1000000, cfg.MaxGridCells)

	cfg, err = Load(PlannerPort)
	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Port)
}

func TestLoadPortPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`port: "5005"`), 0o644))

	cfg, err := LoadFile(path, PlannerPort)
	require.NoError(t, err)
	assert.Equal(t, "5005", cfg.Port, "the file wins over the service default")

	t.Setenv("PORT", "6006")
	cfg, err = LoadFile(path, PlannerPort)
	require.NoError(t, err)
	assert.Equal(t, "6006", cfg.Port, "env wins over the file")
}

func TestLoadFileWithEnvOverrides(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "4000"
env: staging
grid_size: 40
max_grid_cells: 5000
default_pixels_per_meter: 25
db_path: /var/lib/planner/reports.db
`), 0o644))

	t.Setenv("PLANNER_CONFIG", path)
	t.Setenv("GRID_SIZE", "10")
	t.Setenv("READ_TIMEOUT", "not-a-number")

	cfg, err := Load(PlannerPort)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 5000, cfg.MaxGridCells)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 10, cfg.GridSize, "env wins over the file")
	assert.Equal(t, 25.0, cfg.DefaultPixelsPerMeter)
	assert.Equal(t, "/var/lib/planner/reports.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.ReadTimeout, "unparsable env keeps the previous value")
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), GatewayPort)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid_size: [1, 2"), 0o644))
	_, err = LoadFile(bad, GatewayPort)
	assert.Error(t, err)

	t.Setenv("MAX_GRID_CELLS", "0")
	_, err = LoadFile("", GatewayPort)
	assert.ErrorContains(t, err, "max grid cells")
	t.Setenv("MAX_GRID_CELLS", "")

	t.Setenv("DEFAULT_PIXELS_PER_METER", "-3")
	_, err = LoadFile("", GatewayPort)
	assert.ErrorContains(t, err, "pixels per meter")
}
