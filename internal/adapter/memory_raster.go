package adapter

import (
	"errors"
	"fmt"
	"math"
	"sync"

	m "github.com/rhessysweb/patchflow/internal/model"
)

var errLayerClosed = errors.New("layer closed")

// MemoryRaster is a RasterSource over in-memory grids. It backs tests and
// small generated rasters.
type MemoryRaster struct {
	window m.Window

	mu     sync.RWMutex
	layers map[string][][]float64
}

// NewMemoryRaster creates an empty source for window.
func NewMemoryRaster(window m.Window) *MemoryRaster {
	return &MemoryRaster{window: window, layers: make(map[string][][]float64)}
}

// AddLayer registers rows under name. Use math.NaN() for null cells.
func (r *MemoryRaster) AddLayer(name string, rows [][]float64) error {
	if len(rows) != r.window.Rows {
		return fmt.Errorf("layer %q has %d rows, window has %d", name, len(rows), r.window.Rows)
	}

	for i, row := range rows {
		if len(row) != r.window.Cols {
			return fmt.Errorf("layer %q row %d has %d cols, window has %d", name, i, len(row), r.window.Cols)
		}
	}

	r.mu.Lock()
	r.layers[name] = rows
	r.mu.Unlock()

	return nil
}

// AddConstLayer registers a layer where every cell holds v.
func (r *MemoryRaster) AddConstLayer(name string, v float64) error {
	rows := make([][]float64, r.window.Rows)
	for i := range rows {
		rows[i] = make([]float64, r.window.Cols)
		for j := range rows[i] {
			rows[i][j] = v
		}
	}

	return r.AddLayer(name, rows)
}

// Window implements RasterSource.
func (r *MemoryRaster) Window() m.Window {
	return r.window
}

// OpenLayer implements RasterSource.
func (r *MemoryRaster) OpenLayer(name string) (RasterLayer, error) {
	r.mu.RLock()
	rows, ok := r.layers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &m.ResourceError{Layer: name, Op: "open", Err: errors.New("no such layer")}
	}

	return &memoryLayer{name: name, rows: rows}, nil
}

type memoryLayer struct {
	name   string
	rows   [][]float64
	closed bool
}

func (l *memoryLayer) Name() string { return l.name }

func (l *memoryLayer) ReadRow(row int, dst []float64) error {
	if l.closed {
		return &m.ResourceError{Layer: l.name, Op: "read", Err: errLayerClosed}
	}

	if row < 0 || row >= len(l.rows) {
		return &m.ResourceError{Layer: l.name, Op: "read", Err: fmt.Errorf("row %d out of range", row)}
	}

	n := copy(dst, l.rows[row])
	for i := n; i < len(dst); i++ {
		dst[i] = math.NaN()
	}

	return nil
}

func (l *memoryLayer) Close() error {
	l.closed = true
	return nil
}
