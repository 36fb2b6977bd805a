package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() Window {
	return Window{North: 4350605, South: 4350195, East: 349660, West: 349130, Rows: 82, Cols: 106}
}

func TestWindow_Resolution(t *testing.T) {
	w := testWindow()

	assert.InDelta(t, 5.0, w.NSRes(), 1e-9)
	assert.InDelta(t, 5.0, w.EWRes(), 1e-9)
}

func TestWindow_CellCenterRoundTrip(t *testing.T) {
	w := testWindow()

	for row := 0; row < w.Rows; row++ {
		for col := 0; col < w.Cols; col++ {
			r, c := w.CellAt(w.CellCenter(row, col))
			if r != row || c != col {
				t.Fatalf("CellAt(CellCenter(%d, %d)) = (%d, %d)", row, col, r, c)
			}
		}
	}
}

func TestWindow_CellCenterValues(t *testing.T) {
	w := testWindow()

	c := w.CellCenter(0, 0)
	assert.InDelta(t, 349132.5, c.Easting, 1e-9)
	assert.InDelta(t, 4350602.5, c.Northing, 1e-9)

	c = w.CellCenter(w.Rows-1, w.Cols-1)
	assert.InDelta(t, 349657.5, c.Easting, 1e-9)
	assert.InDelta(t, 4350197.5, c.Northing, 1e-9)
}

func TestWindow_OneCellOutsideIsNotContained(t *testing.T) {
	w := testWindow()

	outside := []CoordinatePair{
		w.CellCenter(-1, 10),
		w.CellCenter(w.Rows, 10),
		w.CellCenter(10, -1),
		w.CellCenter(10, w.Cols),
	}

	for _, c := range outside {
		row, col := w.CellAt(c)
		assert.False(t, w.Contains(row, col), "cell (%d, %d) for %+v", row, col, c)
	}
}

func TestWindow_Validate(t *testing.T) {
	require.NoError(t, testWindow().Validate())

	bad := Window{North: 0, South: 10, East: 0, West: 10, Rows: 0, Cols: -1}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid size")
	assert.Contains(t, err.Error(), "north")
	assert.Contains(t, err.Error(), "east")
}

func TestWindow_SameGrid(t *testing.T) {
	w := testWindow()
	o := w
	o.North += 1e-7

	assert.True(t, w.SameGrid(o, 1e-6))

	o.Cols++
	assert.False(t, w.SameGrid(o, 1e-6))
}
