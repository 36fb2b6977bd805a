package controller

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/rhessysweb/patchflow/internal/model"
)

func pid(p, z, h int32) m.FQPatchID {
	return m.FQPatchID{PatchID: p, ZoneID: z, HillID: h}
}

// sampleTable holds a land patch with two receivers, a road patch and a
// stream patch.
func sampleTable(t *testing.T) *m.FlowTable {
	t.Helper()

	table := m.NewFlowTable()
	table.DeclaredCount = 3

	require.NoError(t, table.Append(&m.Record{
		Entry: m.Entry{PatchID: 100, ZoneID: 1, HillID: 1, X: 10, Y: 20, Z: 5, AccumArea: 100, Area: 25, TotalGamma: 1, NumAdjacent: 2},
		Receivers: []*m.Receiver{
			{ID: pid(200, 1, 1), Gamma: 0.6},
			{ID: pid(300, 2, 1), Gamma: 0.4},
		},
	}))
	require.NoError(t, table.Append(&m.Record{
		Entry:     m.Entry{PatchID: 200, ZoneID: 1, HillID: 1, Area: 25, LandType: m.LandTypeRoad, TotalGamma: 0.8, NumAdjacent: 1},
		Receivers: []*m.Receiver{{ID: pid(300, 2, 1), Gamma: 0.8}},
		Road:      &m.Road{Stream: pid(300, 2, 1), RoadWidth: 4.5},
	}))
	require.NoError(t, table.Append(&m.Record{
		Entry: m.Entry{PatchID: 300, ZoneID: 2, HillID: 1, Area: 25, LandType: m.LandTypeStream},
	}))

	return table
}

func samplePatchCoordinates() *m.PatchCoordinates {
	pc := m.NewPatchCoordinates([]m.FQPatchID{pid(1, 1, 1), pid(9, 9, 9)})
	pc.Coords[pid(1, 1, 1)] = []m.CoordinatePair{
		{Easting: 349132.5, Northing: 4350602.5},
		{Easting: 349137.5, Northing: 4350602.5},
	}

	return pc
}
