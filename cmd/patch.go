package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rhessysweb/patchflow/internal/domain"
	m "github.com/rhessysweb/patchflow/internal/model"
)

var receiversOfFlag string
var flowTableFlag string
var centroidFlag bool
var geographicFlag bool

// patchCmd groups the raster lookup commands.
var patchCmd = newPatchCmd()

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Map patches to raster cells and back",
	}

	cmd.AddCommand(newPatchCoordsCmd(), newPatchAtCmd(), newPatchLocateCmd())

	return cmd
}

func newPatchCoordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coords [PATCH,ZONE,HILL...]",
		Short: "List the cell centres of patches",
		Long: `Coords scans the patch, zone and hillslope rasters once and prints the
centre of every cell belonging to each requested patch.

With --receivers-of the patch and all its receivers in --flowtable are
added to the request.`,
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := parsePatchIDs(args)
			if err != nil {
				return err
			}

			coordsArgs := domain.CoordinatesArgs{
				IDs:      ids,
				Table:    domain.TableArgs{Path: m.Path(flowTableFlag)},
				Centroid: centroidFlag,
			}

			if receiversOfFlag != "" {
				id, err := m.ParseFQPatchID(receiversOfFlag)
				if err != nil {
					return err
				}

				coordsArgs.ReceiversOf = &id
			}

			return workflow.Coordinates(coordsArgs)
		},
	}
	cmd.Flags().StringVar(&receiversOfFlag, "receivers-of", "", "also look up this patch and its receivers")
	cmd.Flags().StringVar(&flowTableFlag, "flowtable", "", "flow table used by --receivers-of")
	cmd.Flags().BoolVar(&centroidFlag, "centroid", false, "print one centroid per patch instead of every cell")

	return cmd
}

func newPatchAtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "at X Y",
		Short: "Find the patch under a point",
		Long: `At prints the patch whose cell contains the point (X, Y), given as
easting and northing, or as latitude and longitude with --geographic.
Put negative values after "--".`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, err := parseCoordinate("X", args[0])
			if err != nil {
				return err
			}

			y, err := parseCoordinate("Y", args[1])
			if err != nil {
				return err
			}

			return workflow.At(domain.AtArgs{X: x, Y: y, Geographic: geographicFlag})
		},
	}
	addGeographicFlag(cmd)

	return cmd
}

func newPatchLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate CSV",
		Short: "Find the patch under every point of a CSV file",
		Long: `Locate reads easting,northing rows, or lat,lon rows with --geographic,
and prints lat,lon,easting,northing,patchID,zoneID,hillID for each. The
first line of the input is a header and is skipped. Points outside the
rasters keep their row with empty ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Locate(domain.LocateArgs{Input: m.Path(args[0]), Geographic: geographicFlag})
		},
	}
	addGeographicFlag(cmd)

	return cmd
}

func addGeographicFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&geographicFlag, "geographic", "g", false, "coordinates are WGS84 latitude and longitude")
}

func parseCoordinate(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
