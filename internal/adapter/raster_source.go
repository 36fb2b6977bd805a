// Package adapter contains the raster, projection and file-store adapters that
// back the patchflow workflow.
package adapter

import (
	m "github.com/rhessysweb/patchflow/internal/model"
)

// RasterSource hands out co-registered integer layers that share one Window.
type RasterSource interface {
	Window() m.Window

	// OpenLayer opens the named layer for reading. Failures are reported as
	// *m.ResourceError.
	OpenLayer(name string) (RasterLayer, error)
}

// RasterLayer reads one layer row by row. Null cells come back as NaN.
// Implementations are tuned for ascending row access; going backwards may
// cost a rewind.
type RasterLayer interface {
	Name() string

	// ReadRow fills dst, which must hold Window().Cols values, with row.
	ReadRow(row int, dst []float64) error

	Close() error
}
