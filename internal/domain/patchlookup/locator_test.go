package patchlookup

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhessysweb/patchflow/internal/adapter"
	adaptermocks "github.com/rhessysweb/patchflow/internal/adapter/mocks"
	m "github.com/rhessysweb/patchflow/internal/model"
)

var nan = math.NaN()

var testLayers = m.LayerSet{Patch: "patch", Zone: "zone", Hill: "hillslope"}

func testWindow() m.Window {
	return m.Window{North: 4350605, South: 4350585, East: 349155, West: 349130, Rows: 4, Cols: 5}
}

// testSource has patches 1..3 in hillslope 1 and patch 1 again in hillslope 2.
// Cell (3, 4) is null in the patch layer.
func testSource(t *testing.T) *adapter.MemoryRaster {
	t.Helper()

	src := adapter.NewMemoryRaster(testWindow())
	require.NoError(t, src.AddLayer("patch", [][]float64{
		{1, 1, 2, 2, 2},
		{1, 1, 2, 2, 3},
		{1, 1, 3, 3, 3},
		{1, 1, 3, 3, nan},
	}))
	require.NoError(t, src.AddConstLayer("zone", 1))
	require.NoError(t, src.AddLayer("hillslope", [][]float64{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{2, 2, 1, 1, 1},
		{2, 2, 1, 1, 1},
	}))

	return src
}

func pid(p, z, h int32) m.FQPatchID {
	return m.FQPatchID{PatchID: p, ZoneID: z, HillID: h}
}

func newTestLocator(t *testing.T) (*Locator, *adapter.MemoryRaster) {
	t.Helper()

	src := testSource(t)

	return NewLocator(src, testLayers, zerolog.Nop()), src
}

func TestCoordinatesForPatchIDs(t *testing.T) {
	t.Parallel()

	loc, _ := newTestLocator(t)
	w := testWindow()

	pc, err := loc.CoordinatesForPatchIDs([]m.FQPatchID{pid(2, 1, 1), pid(1, 1, 2), pid(2, 1, 1), pid(99, 1, 1)})
	require.NoError(t, err)

	assert.Equal(t, []m.FQPatchID{pid(2, 1, 1), pid(1, 1, 2), pid(99, 1, 1)}, pc.IDs)

	assert.Equal(t, []m.CoordinatePair{
		w.CellCenter(0, 2), w.CellCenter(0, 3), w.CellCenter(0, 4),
		w.CellCenter(1, 2), w.CellCenter(1, 3),
	}, pc.Get(pid(2, 1, 1)))

	assert.Equal(t, []m.CoordinatePair{
		w.CellCenter(2, 0), w.CellCenter(2, 1),
		w.CellCenter(3, 0), w.CellCenter(3, 1),
	}, pc.Get(pid(1, 1, 2)))

	assert.NotNil(t, pc.Get(pid(99, 1, 1)))
	assert.Empty(t, pc.Get(pid(99, 1, 1)))

	centroids := pc.Centroids()
	assert.Len(t, centroids, 2)
	assert.InDelta(t, 349135.0, centroids[pid(1, 1, 2)].Easting, 1e-9)
}

func TestCoordinatesForPatchIDs_EmptyRequestOpensNothing(t *testing.T) {
	t.Parallel()

	src := adaptermocks.NewMockRasterSource(t)
	loc := NewLocator(src, testLayers, zerolog.Nop())

	pc, err := loc.CoordinatesForPatchIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, pc.IDs)
}

func TestCellCenterSymmetry(t *testing.T) {
	t.Parallel()

	loc, src := newTestLocator(t)
	w := src.Window()

	patch, err := src.OpenLayer("patch")
	require.NoError(t, err)
	hill, err := src.OpenLayer("hillslope")
	require.NoError(t, err)

	prow := make([]float64, w.Cols)
	hrow := make([]float64, w.Cols)

	for row := 0; row < w.Rows; row++ {
		require.NoError(t, patch.ReadRow(row, prow))
		require.NoError(t, hill.ReadRow(row, hrow))

		for col := 0; col < w.Cols; col++ {
			if math.IsNaN(prow[col]) {
				continue
			}

			want := pid(int32(prow[col]), 1, int32(hrow[col]))

			got, err := loc.PatchIDForCoordinate(w.CellCenter(row, col))
			require.NoError(t, err)
			assert.Equal(t, want, got, "cell (%d, %d)", row, col)

			pc, err := loc.CoordinatesForPatchIDs([]m.FQPatchID{want})
			require.NoError(t, err)
			assert.Contains(t, pc.Get(want), w.CellCenter(row, col))

			for _, c := range pc.Get(want) {
				back, err := loc.PatchIDForCoordinate(c)
				require.NoError(t, err)
				assert.Equal(t, want, back)
			}
		}
	}
}

func TestPatchIDForCoordinate_CellInterior(t *testing.T) {
	t.Parallel()

	loc, _ := newTestLocator(t)

	got, err := loc.PatchIDForCoordinate(m.CoordinatePair{Easting: 349149.9, Northing: 4350600.1})
	require.NoError(t, err)
	assert.Equal(t, pid(2, 1, 1), got)
}

func TestPatchIDForCoordinate_OneCellOutside(t *testing.T) {
	t.Parallel()

	loc, _ := newTestLocator(t)
	w := testWindow()

	outside := []m.CoordinatePair{
		w.CellCenter(-1, 2),
		w.CellCenter(w.Rows, 2),
		w.CellCenter(1, -1),
		w.CellCenter(1, w.Cols),
	}

	for _, c := range outside {
		_, err := loc.PatchIDForCoordinate(c)
		require.ErrorIs(t, err, m.ErrOutOfBounds, "%+v", c)

		var oob *m.OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, w.Rows, oob.Rows)
	}
}

func TestPatchIDForCoordinate_NoData(t *testing.T) {
	t.Parallel()

	loc, _ := newTestLocator(t)

	_, err := loc.PatchIDForCoordinate(testWindow().CellCenter(3, 4))
	require.ErrorIs(t, err, m.ErrNoData)

	var nd *m.NoDataError
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, "patch", nd.Layer)
	assert.Equal(t, 3, nd.Row)
	assert.Equal(t, 4, nd.Col)
}

func TestLocator_NonIntegralCellsHoldNoID(t *testing.T) {
	t.Parallel()

	src := adapter.NewMemoryRaster(testWindow())
	require.NoError(t, src.AddLayer("patch", [][]float64{
		{100.7, 100, 100, 100, 100},
		{100, 100, 100, 100, 100},
		{100, 100, 100, 100, 100},
		{100, 100, 100, 100, 3e10},
	}))
	require.NoError(t, src.AddConstLayer("zone", 1))
	require.NoError(t, src.AddConstLayer("hillslope", 1))

	loc := NewLocator(src, testLayers, zerolog.Nop())
	w := testWindow()

	pc, err := loc.CoordinatesForPatchIDs([]m.FQPatchID{pid(100, 1, 1)})
	require.NoError(t, err)
	assert.Len(t, pc.Get(pid(100, 1, 1)), w.Rows*w.Cols-2)
	assert.NotContains(t, pc.Get(pid(100, 1, 1)), w.CellCenter(0, 0))

	_, err = loc.PatchIDForCoordinate(w.CellCenter(0, 0))
	require.ErrorIs(t, err, m.ErrNoData)

	locs, err := loc.PatchIDsForCoordinates([]m.CoordinatePair{w.CellCenter(3, 4), w.CellCenter(1, 1)})
	require.NoError(t, err)
	require.ErrorIs(t, locs[0].Err, m.ErrNoData)
	assert.Equal(t, pid(100, 1, 1), locs[1].ID)
}

func TestLocator_MissingLayer(t *testing.T) {
	t.Parallel()

	src := testSource(t)
	loc := NewLocator(src, m.LayerSet{Patch: "patch", Zone: "zone", Hill: "nope"}, zerolog.Nop())

	_, err := loc.CoordinatesForPatchIDs([]m.FQPatchID{pid(1, 1, 1)})
	require.ErrorIs(t, err, m.ErrResource)

	_, err = loc.PatchIDForCoordinate(testWindow().CellCenter(0, 0))
	require.ErrorIs(t, err, m.ErrResource)
}

func TestLocator_ClosesOpenedLayersOnFailure(t *testing.T) {
	t.Parallel()

	src := adaptermocks.NewMockRasterSource(t)
	patch := adaptermocks.NewMockRasterLayer(t)
	hill := adaptermocks.NewMockRasterLayer(t)

	src.EXPECT().Window().Return(testWindow()).Maybe()
	src.EXPECT().OpenLayer("patch").Return(patch, nil).Once()
	src.EXPECT().OpenLayer("zone").Return(nil, errors.New("permission denied")).Once()
	src.EXPECT().OpenLayer("hillslope").Return(hill, nil).Once()
	patch.EXPECT().Close().Return(nil).Once()
	hill.EXPECT().Close().Return(nil).Once()

	loc := NewLocator(src, testLayers, zerolog.Nop())

	_, err := loc.CoordinatesForPatchIDs([]m.FQPatchID{pid(1, 1, 1)})
	require.ErrorIs(t, err, m.ErrResource)
	assert.ErrorContains(t, err, "permission denied")
}

// rowRecorder wraps a source and records the rows read from the patch layer.
type rowRecorder struct {
	adapter.RasterSource

	rows *[]int
}

type recordingLayer struct {
	adapter.RasterLayer

	rows *[]int
}

func (r rowRecorder) OpenLayer(name string) (adapter.RasterLayer, error) {
	layer, err := r.RasterSource.OpenLayer(name)
	if err != nil || name != "patch" {
		return layer, err
	}

	return recordingLayer{RasterLayer: layer, rows: r.rows}, nil
}

func (l recordingLayer) ReadRow(row int, dst []float64) error {
	*l.rows = append(*l.rows, row)
	return l.RasterLayer.ReadRow(row, dst)
}

func TestPatchIDsForCoordinates(t *testing.T) {
	t.Parallel()

	var rows []int

	src := rowRecorder{RasterSource: testSource(t), rows: &rows}
	loc := NewLocator(src, testLayers, zerolog.Nop())
	w := testWindow()

	coords := []m.CoordinatePair{
		w.CellCenter(3, 0),
		w.CellCenter(0, 4),
		w.CellCenter(-1, 0),
		w.CellCenter(3, 4),
		w.CellCenter(0, 0),
		w.CellCenter(3, 2),
	}

	locs, err := loc.PatchIDsForCoordinates(coords)
	require.NoError(t, err)
	require.Len(t, locs, len(coords))

	assert.Equal(t, pid(1, 1, 2), locs[0].ID)
	assert.Equal(t, pid(2, 1, 1), locs[1].ID)
	require.ErrorIs(t, locs[2].Err, m.ErrOutOfBounds)
	require.ErrorIs(t, locs[3].Err, m.ErrNoData)
	assert.Equal(t, pid(1, 1, 1), locs[4].ID)
	assert.Equal(t, pid(3, 1, 1), locs[5].ID)

	for i, l := range locs {
		assert.Equal(t, coords[i], l.Coordinate)
	}

	assert.Equal(t, []int{0, 3}, rows)
}

func TestPatchIDsForCoordinates_AllOutside(t *testing.T) {
	t.Parallel()

	src := adaptermocks.NewMockRasterSource(t)
	src.EXPECT().Window().Return(testWindow())

	loc := NewLocator(src, testLayers, zerolog.Nop())

	locs, err := loc.PatchIDsForCoordinates([]m.CoordinatePair{{Easting: 0, Northing: 0}})
	require.NoError(t, err)
	require.ErrorIs(t, locs[0].Err, m.ErrOutOfBounds)
}
