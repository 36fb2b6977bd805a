package model

import "fmt"

// LandType classifies a patch in the flow table.
type LandType int32

const (
	// LandTypeLand is an ordinary hillslope patch.
	LandTypeLand LandType = 0
	// LandTypeStream is a stream patch.
	LandTypeStream LandType = 1
	// LandTypeRoad is a road patch; its record ends with a Road item.
	LandTypeRoad LandType = 2
)

// Entry is the routing-source line of a flow table record.
type Entry struct {
	PatchID     int32
	ZoneID      int32
	HillID      int32
	X           float64
	Y           float64
	Z           float64
	AccumArea   float64
	Area        int
	LandType    LandType
	TotalGamma  float64
	NumAdjacent int
}

// ID returns the key of the entry.
func (e Entry) ID() FQPatchID {
	return FQPatchID{PatchID: e.PatchID, ZoneID: e.ZoneID, HillID: e.HillID}
}

// IsRoad reports whether the entry must be followed by a Road item.
func (e Entry) IsRoad() bool {
	return e.LandType == LandTypeRoad
}

// Receiver is one outgoing edge of a patch. Gamma is the fraction of the
// source flow routed to the receiver and may be edited in place.
type Receiver struct {
	ID    FQPatchID
	Gamma float64
}

// Road is the terminal item of a road patch: the stream patch the road
// drains to and the road width.
type Road struct {
	Stream    FQPatchID
	RoadWidth float64
}

// Record holds everything the flow table stores for one patch.
type Record struct {
	Entry     Entry
	Receivers []*Receiver
	Road      *Road
}

// Items returns the record in file order: the entry, each receiver and the
// optional road.
func (r *Record) Items() []any {
	items := make([]any, 0, len(r.Receivers)+2)
	items = append(items, r.Entry)

	for _, recv := range r.Receivers {
		items = append(items, recv)
	}

	if r.Road != nil {
		items = append(items, r.Road)
	}

	return items
}

// ReceiverGammaSum adds up the gamma of every receiver.
func (r *Record) ReceiverGammaSum() float64 {
	sum := 0.0
	for _, recv := range r.Receivers {
		sum += recv.Gamma
	}

	return sum
}

// FlowTable is an insertion-ordered mapping from patch identity to record.
// It has no internal locking; callers serialize edits.
type FlowTable struct {
	// DeclaredCount is the patch count read from the header line.
	DeclaredCount int

	keys    []FQPatchID
	records map[FQPatchID]*Record
}

// NewFlowTable creates an empty table.
func NewFlowTable() *FlowTable {
	return &FlowTable{records: make(map[FQPatchID]*Record)}
}

// Append adds a record at the end of the table.
func (t *FlowTable) Append(rec *Record) error {
	id := rec.Entry.ID()
	if _, exists := t.records[id]; exists {
		return fmt.Errorf("duplicate patch %s", id)
	}

	t.keys = append(t.keys, id)
	t.records[id] = rec

	return nil
}

// Record returns the record stored under id.
func (t *FlowTable) Record(id FQPatchID) (*Record, bool) {
	rec, ok := t.records[id]
	return rec, ok
}

// Keys returns the patch ids in the order they were first read.
func (t *FlowTable) Keys() []FQPatchID {
	keys := make([]FQPatchID, len(t.keys))
	copy(keys, t.keys)

	return keys
}

// Len returns the number of patches.
func (t *FlowTable) Len() int {
	return len(t.keys)
}

// Each calls fn for every record in table order and stops at the first error.
func (t *FlowTable) Each(fn func(id FQPatchID, rec *Record) error) error {
	for _, id := range t.keys {
		if err := fn(id, t.records[id]); err != nil {
			return err
		}
	}

	return nil
}
