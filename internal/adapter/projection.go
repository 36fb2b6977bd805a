package adapter

import (
	"fmt"

	UTM "github.com/im7mortal/UTM"

	m "github.com/rhessysweb/patchflow/internal/model"
)

// Projector converts between WGS84 geographic coordinates and the projected
// coordinates of the rasters.
type Projector interface {
	ToProjected(lat, lon float64) (m.CoordinatePair, error)
	ToGeographic(c m.CoordinatePair) (lat, lon float64, err error)
}

// UTMProjector projects into a fixed UTM zone.
type UTMProjector struct {
	Zone     int
	Northern bool
}

// NewUTMProjector returns a projector for zone and hemisphere.
func NewUTMProjector(zone int, northern bool) *UTMProjector {
	return &UTMProjector{Zone: zone, Northern: northern}
}

// ToProjected implements Projector. Points whose natural zone is not the
// configured zone are rejected rather than projected across the boundary.
func (p *UTMProjector) ToProjected(lat, lon float64) (m.CoordinatePair, error) {
	easting, northing, zone, letter, err := UTM.FromLatLon(lat, lon, p.Northern)
	if err != nil {
		return m.CoordinatePair{}, fmt.Errorf("project (%f, %f): %w", lat, lon, err)
	}

	if zone != p.Zone {
		return m.CoordinatePair{}, fmt.Errorf("point (%f, %f) lies in UTM zone %d%s, rasters use zone %d",
			lat, lon, zone, letter, p.Zone)
	}

	return m.CoordinatePair{Easting: easting, Northing: northing}, nil
}

// ToGeographic implements Projector.
func (p *UTMProjector) ToGeographic(c m.CoordinatePair) (float64, float64, error) {
	lat, lon, err := UTM.ToLatLon(c.Easting, c.Northing, p.Zone, "", p.Northern)
	if err != nil {
		return 0, 0, fmt.Errorf("unproject (%f, %f): %w", c.Easting, c.Northing, err)
	}

	return lat, lon, nil
}
