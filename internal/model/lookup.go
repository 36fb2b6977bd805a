package model

// PatchCoordinates maps requested patches to the centres of the raster cells
// that make them up. IDs keeps the request order.
type PatchCoordinates struct {
	IDs    []FQPatchID
	Coords map[FQPatchID][]CoordinatePair
}

// NewPatchCoordinates seeds an empty result for ids, dropping duplicates.
func NewPatchCoordinates(ids []FQPatchID) *PatchCoordinates {
	pc := &PatchCoordinates{
		IDs:    make([]FQPatchID, 0, len(ids)),
		Coords: make(map[FQPatchID][]CoordinatePair, len(ids)),
	}

	for _, id := range ids {
		if _, seen := pc.Coords[id]; seen {
			continue
		}

		pc.IDs = append(pc.IDs, id)
		pc.Coords[id] = []CoordinatePair{}
	}

	return pc
}

// Get returns the cell centres for id.
func (pc *PatchCoordinates) Get(id FQPatchID) []CoordinatePair {
	return pc.Coords[id]
}

// Location is the outcome of one reverse lookup in a batch.
type Location struct {
	// Lat and Lon are set when the point was given in geographic coordinates.
	Lat, Lon   float64
	Geographic bool
	Coordinate CoordinatePair
	ID         FQPatchID
	Err        error
}

// Severity grades a Finding.
type Severity string

const (
	// SeverityError marks a violated invariant.
	SeverityError Severity = "error"
	// SeverityWarning marks a suspicious but legal value.
	SeverityWarning Severity = "warning"
)

// Finding is one diagnostic produced by checking a flow table.
type Finding struct {
	Severity Severity
	ID       FQPatchID
	Message  string
}

// Centroid returns the arithmetic mean of coords. ok is false for an empty set.
func Centroid(coords []CoordinatePair) (c CoordinatePair, ok bool) {
	if len(coords) == 0 {
		return CoordinatePair{}, false
	}

	for _, p := range coords {
		c.Easting += p.Easting
		c.Northing += p.Northing
	}

	n := float64(len(coords))
	c.Easting /= n
	c.Northing /= n

	return c, true
}

// Centroids returns the centroid of every patch that has at least one cell.
func (pc *PatchCoordinates) Centroids() map[FQPatchID]CoordinatePair {
	out := make(map[FQPatchID]CoordinatePair, len(pc.IDs))

	for _, id := range pc.IDs {
		if c, ok := Centroid(pc.Coords[id]); ok {
			out[id] = c
		}
	}

	return out
}
