package controller

import (
	"encoding/csv"

	"github.com/spf13/cobra"

	m "github.com/rhessysweb/patchflow/internal/model"
)

var locationHeader = []string{"lat", "lon", "easting", "northing", "patchID", "zoneID", "hillID"}

// CSVUI writes lookup results as comma separated rows and falls back to
// SimpleUI for everything else.
type CSVUI struct {
	*SimpleUI
}

// NewCSVUI creates a new CSVUI.
func NewCSVUI(cmd *cobra.Command) *CSVUI {
	return &CSVUI{SimpleUI: NewSimpleUI(cmd, false)}
}

// DisplayLocations writes lat,lon,easting,northing,patchID,zoneID,hillID.
// Points that could not be resolved keep empty id columns.
func (c *CSVUI) DisplayLocations(locs []m.Location) error {
	w := csv.NewWriter(c.cmd.OutOrStdout())

	if err := w.Write(locationHeader); err != nil {
		return err
	}

	for _, l := range locs {
		row := []string{"", "", ftoa(l.Coordinate.Easting, 6), ftoa(l.Coordinate.Northing, 6), "", "", ""}
		if l.Geographic {
			row[0], row[1] = ftoa(l.Lat, 6), ftoa(l.Lon, 6)
		}

		if l.Err == nil {
			row[4], row[5], row[6] = itoa(l.ID.PatchID), itoa(l.ID.ZoneID), itoa(l.ID.HillID)
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// DisplayPatchCoordinates writes patchID,zoneID,hillID,easting,northing.
func (c *CSVUI) DisplayPatchCoordinates(pc *m.PatchCoordinates, centroids bool) error {
	w := csv.NewWriter(c.cmd.OutOrStdout())

	if err := w.Write([]string{"patchID", "zoneID", "hillID", "easting", "northing"}); err != nil {
		return err
	}

	write := func(id m.FQPatchID, p m.CoordinatePair) error {
		return w.Write([]string{itoa(id.PatchID), itoa(id.ZoneID), itoa(id.HillID), ftoa(p.Easting, 6), ftoa(p.Northing, 6)})
	}

	cents := pc.Centroids()

	for _, id := range pc.IDs {
		if centroids {
			if p, ok := cents[id]; ok {
				if err := write(id, p); err != nil {
					return err
				}
			}

			continue
		}

		for _, p := range pc.Get(id) {
			if err := write(id, p); err != nil {
				return err
			}
		}
	}

	w.Flush()

	return w.Error()
}
