package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatchCoordinates_DedupsInRequestOrder(t *testing.T) {
	t.Parallel()

	a := FQPatchID{PatchID: 1, ZoneID: 1, HillID: 1}
	b := FQPatchID{PatchID: 2, ZoneID: 2, HillID: 1}

	pc := NewPatchCoordinates([]FQPatchID{b, a, b})

	assert.Equal(t, []FQPatchID{b, a}, pc.IDs)
	assert.NotNil(t, pc.Get(a))
	assert.Empty(t, pc.Get(a))
}

func TestCentroid(t *testing.T) {
	t.Parallel()

	_, ok := Centroid(nil)
	assert.False(t, ok)

	c, ok := Centroid([]CoordinatePair{
		{Easting: 0, Northing: 0},
		{Easting: 10, Northing: 4},
	})
	require.True(t, ok)
	assert.InDelta(t, 5.0, c.Easting, 1e-9)
	assert.InDelta(t, 2.0, c.Northing, 1e-9)
}

func TestPatchCoordinates_CentroidsSkipsEmpty(t *testing.T) {
	t.Parallel()

	a := FQPatchID{PatchID: 1, ZoneID: 1, HillID: 1}
	b := FQPatchID{PatchID: 2, ZoneID: 2, HillID: 1}

	pc := NewPatchCoordinates([]FQPatchID{a, b})
	pc.Coords[a] = append(pc.Coords[a], CoordinatePair{Easting: 2, Northing: 2}, CoordinatePair{Easting: 4, Northing: 6})

	got := pc.Centroids()

	require.Len(t, got, 1)
	assert.Equal(t, CoordinatePair{Easting: 3, Northing: 4}, got[a])
}
