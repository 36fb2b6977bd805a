package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FQPatchID is the fully qualified identity of a patch. Patch numbers are
// only unique within a (zone, hill) pair, so all three fields form the key.
type FQPatchID struct {
	PatchID int32
	ZoneID  int32
	HillID  int32
}

// String renders the id as "patch/zone/hill".
func (id FQPatchID) String() string {
	return fmt.Sprintf("%d/%d/%d", id.PatchID, id.ZoneID, id.HillID)
}

// ParseFQPatchID parses "patch,zone,hill". Commas, slashes and whitespace are
// accepted as separators.
func ParseFQPatchID(s string) (FQPatchID, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return FQPatchID{}, fmt.Errorf("patch id %q: want patch,zone,hill", s)
	}

	var parsed [3]int32

	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return FQPatchID{}, fmt.Errorf("patch id %q: %w", s, err)
		}

		parsed[i] = int32(v)
	}

	return FQPatchID{PatchID: parsed[0], ZoneID: parsed[1], HillID: parsed[2]}, nil
}

// CoordinatePair is a point in the projected coordinate system of the active
// raster window.
type CoordinatePair struct {
	Easting  float64
	Northing float64
}

// LayerSet names the three co-registered rasters that identify patches.
type LayerSet struct {
	Patch string
	Zone  string
	Hill  string
}

// Names returns the layer names in patch, zone, hill order.
func (l LayerSet) Names() []string {
	return []string{l.Patch, l.Zone, l.Hill}
}
