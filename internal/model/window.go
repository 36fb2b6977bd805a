package model

import (
	"errors"
	"fmt"
	"math"
)

// Window is the georeferencing of a raster: its bounds and grid size. It
// defines the affine mapping between (row, col) and (easting, northing).
// Rows count down from North, columns count right from West.
type Window struct {
	North float64
	South float64
	East  float64
	West  float64
	Rows  int
	Cols  int
}

// Validate checks that the window describes a non-empty grid.
func (w Window) Validate() error {
	var errs []error

	if w.Rows <= 0 || w.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", w.Rows, w.Cols))
	}

	if !(w.North > w.South) {
		errs = append(errs, fmt.Errorf("north %v must exceed south %v", w.North, w.South))
	}

	if !(w.East > w.West) {
		errs = append(errs, fmt.Errorf("east %v must exceed west %v", w.East, w.West))
	}

	return errors.Join(errs...)
}

// NSRes is the north-south cell size.
func (w Window) NSRes() float64 {
	return (w.North - w.South) / float64(w.Rows)
}

// EWRes is the east-west cell size.
func (w Window) EWRes() float64 {
	return (w.East - w.West) / float64(w.Cols)
}

// ColToEasting converts a fractional column index to an easting.
func (w Window) ColToEasting(col float64) float64 {
	return w.West + col*w.EWRes()
}

// RowToNorthing converts a fractional row index to a northing.
func (w Window) RowToNorthing(row float64) float64 {
	return w.North - row*w.NSRes()
}

// EastingToCol converts an easting to a fractional column index.
func (w Window) EastingToCol(easting float64) float64 {
	return (easting - w.West) / w.EWRes()
}

// NorthingToRow converts a northing to a fractional row index.
func (w Window) NorthingToRow(northing float64) float64 {
	return (w.North - northing) / w.NSRes()
}

// CellCenter returns the world coordinate of the centre of cell (row, col).
func (w Window) CellCenter(row, col int) CoordinatePair {
	return CoordinatePair{
		Easting:  w.ColToEasting(float64(col) + 0.5),
		Northing: w.RowToNorthing(float64(row) + 0.5),
	}
}

// CellAt returns the cell containing c. The result may lie outside the grid;
// check it with Contains.
func (w Window) CellAt(c CoordinatePair) (row, col int) {
	return int(math.Floor(w.NorthingToRow(c.Northing))), int(math.Floor(w.EastingToCol(c.Easting)))
}

// Contains reports whether (row, col) lies inside the grid.
func (w Window) Contains(row, col int) bool {
	return row >= 0 && row < w.Rows && col >= 0 && col < w.Cols
}

// SameGrid reports whether two windows describe the same grid within tol.
func (w Window) SameGrid(o Window, tol float64) bool {
	return w.Rows == o.Rows && w.Cols == o.Cols &&
		math.Abs(w.North-o.North) <= tol && math.Abs(w.South-o.South) <= tol &&
		math.Abs(w.East-o.East) <= tol && math.Abs(w.West-o.West) <= tol
}
