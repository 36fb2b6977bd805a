// Package patchlookup maps between raster cells and fully-qualified patch ids
// using three co-registered layers: patch, zone and hillslope.
package patchlookup

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rhessysweb/patchflow/internal/adapter"
	m "github.com/rhessysweb/patchflow/internal/model"
)

// Locator answers forward (id to cells) and reverse (coordinate to id)
// lookups against one RasterSource. It holds no open handles between calls.
type Locator struct {
	source adapter.RasterSource
	layers m.LayerSet
	logger zerolog.Logger
}

// NewLocator binds a locator to source and the names of its three layers.
func NewLocator(source adapter.RasterSource, layers m.LayerSet, logger zerolog.Logger) *Locator {
	return &Locator{source: source, layers: layers, logger: logger}
}

// Window returns the window of the underlying source.
func (l *Locator) Window() m.Window {
	return l.source.Window()
}

// layerRows holds the three open layers and one row buffer per layer.
type layerRows struct {
	layers [3]adapter.RasterLayer
	bufs   [3][]float64
}

func (lr *layerRows) close() {
	for _, layer := range lr.layers {
		if layer != nil {
			_ = layer.Close()
		}
	}
}

func (lr *layerRows) read(row int) error {
	for i, layer := range lr.layers {
		if err := layer.ReadRow(row, lr.bufs[i]); err != nil {
			return err
		}
	}

	return nil
}

// at returns the id of column col in the last row read, or the name of the
// first layer whose cell holds no id: null, fractional or outside int32.
func (lr *layerRows) at(col int) (m.FQPatchID, string, bool) {
	vals := [3]float64{lr.bufs[0][col], lr.bufs[1][col], lr.bufs[2][col]}
	for i, v := range vals {
		if !isID(v) {
			return m.FQPatchID{}, lr.layers[i].Name(), false
		}
	}

	return m.FQPatchID{
		PatchID: int32(vals[0]),
		ZoneID:  int32(vals[1]),
		HillID:  int32(vals[2]),
	}, "", true
}

func isID(v float64) bool {
	return !math.IsNaN(v) && v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32
}

// open opens the three layers concurrently. When any open fails the others
// are closed.
func (l *Locator) open() (*layerRows, error) {
	names := [3]string{l.layers.Patch, l.layers.Zone, l.layers.Hill}
	cols := l.source.Window().Cols
	lr := &layerRows{}

	var g errgroup.Group

	for i, name := range names {
		g.Go(func() error {
			layer, err := l.source.OpenLayer(name)
			if err != nil {
				return err
			}

			lr.layers[i] = layer

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lr.close()

		var re *m.ResourceError
		if !errors.As(err, &re) {
			err = &m.ResourceError{Layer: "", Op: "open", Err: err}
		}

		l.logger.Error().Err(err).Msg("failed to open raster layers")

		return nil, err
	}

	for i := range lr.bufs {
		lr.bufs[i] = make([]float64, cols)
	}

	return lr, nil
}

// CoordinatesForPatchIDs returns the centre of every cell belonging to each
// requested patch, in one pass over the raster. The result keeps the request
// order; patches without cells get an empty list.
func (l *Locator) CoordinatesForPatchIDs(ids []m.FQPatchID) (*m.PatchCoordinates, error) {
	result := m.NewPatchCoordinates(ids)
	if len(result.IDs) == 0 {
		return result, nil
	}

	lr, err := l.open()
	if err != nil {
		return nil, err
	}
	defer lr.close()

	start := time.Now()
	w := l.source.Window()
	matches := 0

	for row := 0; row < w.Rows; row++ {
		if err := lr.read(row); err != nil {
			return nil, err
		}

		for col := 0; col < w.Cols; col++ {
			id, _, ok := lr.at(col)
			if !ok {
				continue
			}

			coords, wanted := result.Coords[id]
			if !wanted {
				continue
			}

			result.Coords[id] = append(coords, w.CellCenter(row, col))
			matches++
		}
	}

	l.logger.Debug().
		Int("requested", len(result.IDs)).
		Int("cells", matches).
		Dur("elapsed", time.Since(start)).
		Msg("patch scan complete")

	return result, nil
}

// PatchIDForCoordinate returns the patch whose cell contains c.
func (l *Locator) PatchIDForCoordinate(c m.CoordinatePair) (m.FQPatchID, error) {
	w := l.source.Window()

	row, col := w.CellAt(c)
	if !w.Contains(row, col) {
		return m.FQPatchID{}, &m.OutOfBoundsError{Coordinate: c, Row: row, Col: col, Rows: w.Rows, Cols: w.Cols}
	}

	lr, err := l.open()
	if err != nil {
		return m.FQPatchID{}, err
	}
	defer lr.close()

	if err := lr.read(row); err != nil {
		return m.FQPatchID{}, err
	}

	id, layer, ok := lr.at(col)
	if !ok {
		return m.FQPatchID{}, &m.NoDataError{Layer: layer, Row: row, Col: col}
	}

	return id, nil
}

// PatchIDsForCoordinates resolves many coordinates with the layers opened
// once. Rows are read in ascending order. Per-point failures are recorded in
// the matching Location; only resource failures abort the batch.
func (l *Locator) PatchIDsForCoordinates(coords []m.CoordinatePair) ([]m.Location, error) {
	w := l.source.Window()
	out := make([]m.Location, len(coords))

	type cell struct{ idx, row, col int }

	cells := make([]cell, 0, len(coords))

	for i, c := range coords {
		out[i].Coordinate = c

		row, col := w.CellAt(c)
		if !w.Contains(row, col) {
			out[i].Err = &m.OutOfBoundsError{Coordinate: c, Row: row, Col: col, Rows: w.Rows, Cols: w.Cols}
			continue
		}

		cells = append(cells, cell{idx: i, row: row, col: col})
	}

	if len(cells) == 0 {
		return out, nil
	}

	sort.SliceStable(cells, func(a, b int) bool { return cells[a].row < cells[b].row })

	lr, err := l.open()
	if err != nil {
		return nil, err
	}
	defer lr.close()

	current := -1

	for _, c := range cells {
		if c.row != current {
			if err := lr.read(c.row); err != nil {
				return nil, fmt.Errorf("read row %d: %w", c.row, err)
			}

			current = c.row
		}

		id, layer, ok := lr.at(c.col)
		if !ok {
			out[c.idx].Err = &m.NoDataError{Layer: layer, Row: c.row, Col: c.col}
			continue
		}

		out[c.idx].ID = id
	}

	l.logger.Debug().
		Int("points", len(coords)).
		Int("in_window", len(cells)).
		Msg("batch lookup complete")

	return out, nil
}
