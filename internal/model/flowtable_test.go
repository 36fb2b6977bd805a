package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowTable_AppendKeepsOrder(t *testing.T) {
	table := NewFlowTable()

	ids := []FQPatchID{{30, 1, 1}, {10, 1, 1}, {20, 1, 1}}
	for _, id := range ids {
		require.NoError(t, table.Append(&Record{Entry: Entry{PatchID: id.PatchID, ZoneID: id.ZoneID, HillID: id.HillID}}))
	}

	assert.Equal(t, ids, table.Keys())
	assert.Equal(t, 3, table.Len())

	var visited []FQPatchID

	require.NoError(t, table.Each(func(id FQPatchID, _ *Record) error {
		visited = append(visited, id)
		return nil
	}))
	assert.Equal(t, ids, visited)
}

func TestFlowTable_AppendRejectsDuplicate(t *testing.T) {
	table := NewFlowTable()
	rec := &Record{Entry: Entry{PatchID: 1, ZoneID: 2, HillID: 3}}

	require.NoError(t, table.Append(rec))
	require.Error(t, table.Append(rec))
	assert.Equal(t, 1, table.Len())
}

func TestFlowTable_EachStopsOnError(t *testing.T) {
	table := NewFlowTable()
	require.NoError(t, table.Append(&Record{Entry: Entry{PatchID: 1}}))
	require.NoError(t, table.Append(&Record{Entry: Entry{PatchID: 2}}))

	boom := errors.New("boom")
	calls := 0
	err := table.Each(func(FQPatchID, *Record) error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRecord_ItemsAndGammaSum(t *testing.T) {
	rec := &Record{
		Entry: Entry{PatchID: 1, LandType: LandTypeRoad, NumAdjacent: 2},
		Receivers: []*Receiver{
			{ID: FQPatchID{2, 1, 1}, Gamma: 0.25},
			{ID: FQPatchID{3, 1, 1}, Gamma: 0.5},
		},
		Road: &Road{Stream: FQPatchID{9, 1, 1}, RoadWidth: 5},
	}

	items := rec.Items()
	require.Len(t, items, 4)
	assert.IsType(t, Entry{}, items[0])
	assert.IsType(t, &Receiver{}, items[1])
	assert.IsType(t, &Road{}, items[3])
	assert.InDelta(t, 0.75, rec.ReceiverGammaSum(), 1e-12)
	assert.True(t, rec.Entry.IsRoad())
}

func TestErrors_MatchSentinels(t *testing.T) {
	assert.ErrorIs(t, &MalformedTableError{Line: 3, Reason: "x"}, ErrMalformedTable)
	assert.ErrorIs(t, &KeyNotFoundError{}, ErrKeyNotFound)
	assert.ErrorIs(t, &OutOfBoundsError{}, ErrOutOfBounds)
	assert.ErrorIs(t, &ResourceError{Err: errors.New("io")}, ErrResource)
	assert.ErrorIs(t, &NoDataError{}, ErrNoData)

	inner := errors.New("inner")
	assert.ErrorIs(t, &ResourceError{Layer: "patch", Op: "open", Err: inner}, inner)
	assert.Contains(t, (&MalformedTableError{Line: 4, Reason: "short"}).Error(), "line 4")
}
