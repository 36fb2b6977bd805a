package adapter

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/rhessysweb/patchflow/internal/model"
)

const grassPatch = `north: 100
south: 70
east: 40
west: 0
rows: 3
cols: 4
1 1 2 2
1 * 2 2
3 3 3 3
`

const grassZone = `north:    100
south:    70
east:     40
west:     0
rows:     3
cols:     4
null:     -1
7 7 7 7
7 7 7 7
7 7 7 -1
`

const esriPatch = `ncols        4
nrows        3
xllcorner    0
yllcorner    70
cellsize     10
NODATA_value -9999
1 1 2 2
1 -9999 2 2
3 3 3 3
`

func writeLayer(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".asc"), []byte(content), 0o600))
}

func readAll(t *testing.T, layer RasterLayer, rows, cols int) [][]float64 {
	t.Helper()

	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		require.NoError(t, layer.ReadRow(r, out[r]))
	}

	return out
}

func TestMemoryRaster(t *testing.T) {
	t.Parallel()

	w := m.Window{North: 20, South: 0, East: 20, West: 0, Rows: 2, Cols: 2}
	src := NewMemoryRaster(w)

	require.Error(t, src.AddLayer("short", [][]float64{{1, 2}}))
	require.Error(t, src.AddLayer("narrow", [][]float64{{1}, {2}}))
	require.NoError(t, src.AddLayer("patch", [][]float64{{1, 2}, {3, math.NaN()}}))

	layer, err := src.OpenLayer("patch")
	require.NoError(t, err)
	assert.Equal(t, "patch", layer.Name())

	buf := make([]float64, 2)
	require.NoError(t, layer.ReadRow(1, buf))
	assert.Equal(t, 3.0, buf[0])
	assert.True(t, math.IsNaN(buf[1]))

	require.NoError(t, layer.ReadRow(0, buf))
	assert.Equal(t, []float64{1, 2}, buf)

	require.ErrorIs(t, layer.ReadRow(2, buf), m.ErrResource)

	require.NoError(t, layer.Close())
	require.ErrorIs(t, layer.ReadRow(0, buf), m.ErrResource)

	_, err = src.OpenLayer("missing")
	require.ErrorIs(t, err, m.ErrResource)
}

func TestASCIIGridSource_GRASS(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLayer(t, dir, "patch", grassPatch)
	writeLayer(t, dir, "zone", grassZone)

	src, err := NewASCIIGridSource(dir, ".asc", FormatGRASSASCII, "patch")
	require.NoError(t, err)

	assert.Equal(t, m.Window{North: 100, South: 70, East: 40, West: 0, Rows: 3, Cols: 4}, src.Window())

	patch, err := src.OpenLayer("patch")
	require.NoError(t, err)
	defer patch.Close()

	rows := readAll(t, patch, 3, 4)
	assert.Equal(t, []float64{1, 1, 2, 2}, rows[0])
	assert.True(t, math.IsNaN(rows[1][1]))
	assert.Equal(t, []float64{3, 3, 3, 3}, rows[2])

	zone, err := src.OpenLayer("zone")
	require.NoError(t, err)
	defer zone.Close()

	zrows := readAll(t, zone, 3, 4)
	assert.Equal(t, 7.0, zrows[2][2])
	assert.True(t, math.IsNaN(zrows[2][3]))
}

func TestASCIIGridSource_RewindsAndSkips(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLayer(t, dir, "patch", grassPatch)

	src, err := NewASCIIGridSource(dir, ".asc", FormatGRASSASCII, "patch")
	require.NoError(t, err)

	layer, err := src.OpenLayer("patch")
	require.NoError(t, err)
	defer layer.Close()

	buf := make([]float64, 4)

	require.NoError(t, layer.ReadRow(2, buf))
	assert.Equal(t, []float64{3, 3, 3, 3}, buf)

	require.NoError(t, layer.ReadRow(0, buf))
	assert.Equal(t, []float64{1, 1, 2, 2}, buf)

	require.ErrorIs(t, layer.ReadRow(3, buf), m.ErrResource)
	require.ErrorIs(t, layer.ReadRow(0, make([]float64, 2)), m.ErrResource)
}

func TestASCIIGridSource_ESRI(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLayer(t, dir, "patch", esriPatch)

	src, err := NewASCIIGridSource(dir, ".asc", FormatESRIASCII, "patch")
	require.NoError(t, err)
	assert.Equal(t, m.Window{North: 100, South: 70, East: 40, West: 0, Rows: 3, Cols: 4}, src.Window())

	layer, err := src.OpenLayer("patch")
	require.NoError(t, err)
	defer layer.Close()

	rows := readAll(t, layer, 3, 4)
	assert.True(t, math.IsNaN(rows[1][1]))
	assert.Equal(t, 2.0, rows[1][2])
}

func TestASCIIGridSource_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLayer(t, dir, "patch", grassPatch)
	writeLayer(t, dir, "other", `north: 200
south: 170
east: 40
west: 0
rows: 3
cols: 4
1 1 1 1
1 1 1 1
1 1 1 1
`)
	writeLayer(t, dir, "truncated", `north: 100
south: 70
east: 40
west: 0
rows: 3
cols: 4
1 1 1 1
`)
	writeLayer(t, dir, "noheader", "1 2 3\n")

	_, err := NewASCIIGridSource(dir, ".asc", GridFormat("geotiff"), "patch")
	require.Error(t, err)

	_, err = NewASCIIGridSource(dir, ".asc", FormatGRASSASCII, "missing")
	require.ErrorIs(t, err, m.ErrResource)

	_, err = NewASCIIGridSource(dir, ".asc", FormatGRASSASCII, "noheader")
	require.ErrorIs(t, err, m.ErrResource)

	_, err = NewASCIIGridSource(dir, ".asc", FormatESRIASCII, "patch")
	require.ErrorIs(t, err, m.ErrResource)

	src, err := NewASCIIGridSource(dir, ".asc", FormatGRASSASCII, "patch")
	require.NoError(t, err)

	_, err = src.OpenLayer("other")
	require.ErrorIs(t, err, m.ErrResource)

	layer, err := src.OpenLayer("truncated")
	require.NoError(t, err)
	defer layer.Close()

	buf := make([]float64, 4)
	require.NoError(t, layer.ReadRow(0, buf))
	require.ErrorIs(t, layer.ReadRow(1, buf), m.ErrResource)
}
