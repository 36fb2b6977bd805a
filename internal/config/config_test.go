package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhessysweb/patchflow/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "grass-ascii", cfg.Raster.Format)
	assert.Equal(t, ".asc", cfg.Raster.Extension)
	assert.Equal(t, 18, cfg.Projection.UTMZone)
	assert.True(t, cfg.Projection.Northern)
	assert.False(t, cfg.FlowTable.StrictHeader)
	assert.InDelta(t, 1e-4, cfg.FlowTable.GammaTolerance, 1e-12)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patchflow.yaml")
	yaml := `
raster:
  dir: /data/GRASSData/DR5_5m
  patch_layer: patch_5m
  zone_layer: hillslope
  hill_layer: hillslope
projection:
  utm_zone: 17
flowtable:
  strict_header: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("PATCHFLOW_RASTER_PATCH_LAYER", "patch_10m")
	t.Setenv("PATCHFLOW_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/GRASSData/DR5_5m", cfg.Raster.Dir)
	assert.Equal(t, "patch_10m", cfg.Raster.PatchLayer)
	assert.Equal(t, model.LayerSet{Patch: "patch_10m", Zone: "hillslope", Hill: "hillslope"}, cfg.Raster.LayerSet())
	assert.Equal(t, 17, cfg.Projection.UTMZone)
	assert.True(t, cfg.FlowTable.StrictHeader)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "grass-ascii", cfg.Raster.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	yaml := `
raster:
  format: geotiff
projection:
  utm_zone: 99
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Format")
	assert.Contains(t, err.Error(), "UTMZone")
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "raster.dir", envTransformFunc("PATCHFLOW_RASTER_DIR"))
	assert.Equal(t, "raster.patch_layer", envTransformFunc("PATCHFLOW_RASTER_PATCH_LAYER"))
	assert.Equal(t, "flowtable.gamma_tolerance", envTransformFunc("PATCHFLOW_FLOWTABLE_GAMMA_TOLERANCE"))
	assert.Equal(t, "", envTransformFunc("PATCHFLOW_CONFIG"))
}
