package model

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrMalformedTable = errors.New("malformed flow table")
	ErrKeyNotFound    = errors.New("patch not found in flow table")
	ErrOutOfBounds    = errors.New("coordinate outside raster window")
	ErrResource       = errors.New("raster resource unavailable")
	ErrNoData         = errors.New("raster cell has no data")
)

// MalformedTableError reports a structural violation found while parsing.
// Line is the 1-based physical line; the header is line 1.
type MalformedTableError struct {
	Line   int
	Reason string
	Err    error
}

func (e *MalformedTableError) Error() string {
	msg := fmt.Sprintf("flow table line %d: %s", e.Line, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *MalformedTableError) Unwrap() error { return e.Err }

// Is matches ErrMalformedTable.
func (e *MalformedTableError) Is(target error) bool { return target == ErrMalformedTable }

// KeyNotFoundError reports a query for a patch absent from the table.
type KeyNotFoundError struct {
	ID FQPatchID
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("patch %s not found in flow table", e.ID)
}

// Is matches ErrKeyNotFound.
func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// OutOfBoundsError reports a reverse lookup that resolves outside the grid.
type OutOfBoundsError struct {
	Coordinate CoordinatePair
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate (%f, %f) maps to cell (%d, %d) outside %dx%d raster",
		e.Coordinate.Easting, e.Coordinate.Northing, e.Row, e.Col, e.Rows, e.Cols)
}

// Is matches ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// ResourceError reports a raster layer that could not be opened or read.
type ResourceError struct {
	Layer string
	Op    string
	Err   error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("raster layer %q: %s: %v", e.Layer, e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is matches ErrResource.
func (e *ResourceError) Is(target error) bool { return target == ErrResource }

// NoDataError reports a reverse lookup that landed on a null cell.
type NoDataError struct {
	Layer    string
	Row, Col int
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("raster layer %q has no data at cell (%d, %d)", e.Layer, e.Row, e.Col)
}

// Is matches ErrNoData.
func (e *NoDataError) Is(target error) bool { return target == ErrNoData }
