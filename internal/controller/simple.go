package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/rhessysweb/patchflow/internal/model"
)

// SimpleUI implements UI with plain text tables written to the command output.
type SimpleUI struct {
	cmd     *cobra.Command
	colored bool
}

// NewSimpleUI creates a new SimpleUI. colored enables ANSI colours for
// findings.
func NewSimpleUI(cmd *cobra.Command, colored bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, colored: colored}
}

// DisplayTable prints one row per patch.
func (s *SimpleUI) DisplayTable(table *m.FlowTable) error {
	tw, buf := newTableWriter([]string{
		"Patch", "Zone", "Hill", "X", "Y", "Z", "Acc Area", "Area", "Type", "Total Gamma", "Receivers", "Road",
	})

	err := table.Each(func(id m.FQPatchID, rec *m.Record) error {
		e := rec.Entry

		road := ""
		if rec.Road != nil {
			road = rec.Road.Stream.String()
		}

		tw.Append([]string{
			itoa(id.PatchID), itoa(id.ZoneID), itoa(id.HillID),
			ftoa(e.X, 1), ftoa(e.Y, 1), ftoa(e.Z, 1),
			ftoa(e.AccumArea, 6), strconv.Itoa(e.Area), landTypeName(e.LandType),
			ftoa(e.TotalGamma, 6), strconv.Itoa(len(rec.Receivers)), road,
		})

		return nil
	})
	if err != nil {
		return err
	}

	tw.SetFooter([]string{fmt.Sprintf("Total %d", table.Len()), "", "", "", "", "", "", "", "", "", "", ""})
	tw.Render()
	s.printf("\n%s", buf.String())

	if table.DeclaredCount != table.Len() {
		s.printf("header declares %d patches\n", table.DeclaredCount)
	}

	return nil
}

// DisplayRecord prints the entry of id followed by its receivers and road.
func (s *SimpleUI) DisplayRecord(id m.FQPatchID, rec *m.Record) error {
	e := rec.Entry

	s.printf("patch %s  %s  x=%.1f y=%.1f z=%.1f  area=%d  total gamma=%f\n",
		id, landTypeName(e.LandType), e.X, e.Y, e.Z, e.Area, e.TotalGamma)

	if len(rec.Receivers) == 0 {
		s.printf("no receivers\n")
	} else {
		tw, buf := newTableWriter([]string{"Patch", "Zone", "Hill", "Gamma"})
		for _, r := range rec.Receivers {
			tw.Append([]string{itoa(r.ID.PatchID), itoa(r.ID.ZoneID), itoa(r.ID.HillID), ftoa(r.Gamma, 8)})
		}

		tw.SetFooter([]string{"", "", "Sum", ftoa(rec.ReceiverGammaSum(), 8)})
		tw.Render()
		s.printf("\n%s", buf.String())
	}

	if rec.Road != nil {
		s.printf("road drains to %s, width %f\n", rec.Road.Stream, rec.Road.RoadWidth)
	}

	return nil
}

// DisplayFindings prints one line per finding and a summary.
func (s *SimpleUI) DisplayFindings(findings []m.Finding) error {
	errLabel := s.color(color.FgRed, color.Bold)
	warnLabel := s.color(color.FgYellow)
	okLabel := s.color(color.FgGreen)

	errs := 0

	for _, f := range findings {
		label := warnLabel.Sprint("warning")
		if f.Severity == m.SeverityError {
			label = errLabel.Sprint("error")
			errs++
		}

		if f.ID == (m.FQPatchID{}) {
			s.printf("%s: %s\n", label, f.Message)
		} else {
			s.printf("%s: patch %s: %s\n", label, f.ID, f.Message)
		}
	}

	switch {
	case len(findings) == 0:
		s.printf("%s\n", okLabel.Sprint("ok: no findings"))
	case errs == 0:
		s.printf("%d warning(s)\n", len(findings))
	default:
		s.printf("%d error(s), %d warning(s)\n", errs, len(findings)-errs)
	}

	return nil
}

// DisplayPatchCoordinates prints a row per cell centre, or per centroid.
func (s *SimpleUI) DisplayPatchCoordinates(pc *m.PatchCoordinates, centroids bool) error {
	if centroids {
		tw, buf := newTableWriter([]string{"Patch", "Zone", "Hill", "Cells", "Easting", "Northing"})
		cents := pc.Centroids()

		for _, id := range pc.IDs {
			c, ok := cents[id]
			e, n := "-", "-"

			if ok {
				e, n = ftoa(c.Easting, 2), ftoa(c.Northing, 2)
			}

			tw.Append([]string{itoa(id.PatchID), itoa(id.ZoneID), itoa(id.HillID), strconv.Itoa(len(pc.Get(id))), e, n})
		}

		tw.Render()
		s.printf("\n%s", buf.String())

		return nil
	}

	tw, buf := newTableWriter([]string{"Patch", "Zone", "Hill", "Easting", "Northing"})
	cells := 0

	for _, id := range pc.IDs {
		for _, c := range pc.Get(id) {
			tw.Append([]string{itoa(id.PatchID), itoa(id.ZoneID), itoa(id.HillID), ftoa(c.Easting, 2), ftoa(c.Northing, 2)})
			cells++
		}
	}

	tw.SetFooter([]string{fmt.Sprintf("%d patches", len(pc.IDs)), "", "", fmt.Sprintf("%d cells", cells), ""})
	tw.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayLocations prints one row per looked-up point.
func (s *SimpleUI) DisplayLocations(locs []m.Location) error {
	tw, buf := newTableWriter([]string{"Lat", "Lon", "Easting", "Northing", "Patch", "Zone", "Hill", "Error"})

	for _, l := range locs {
		lat, lon := "", ""
		if l.Geographic {
			lat, lon = ftoa(l.Lat, 6), ftoa(l.Lon, 6)
		}

		row := []string{lat, lon, ftoa(l.Coordinate.Easting, 2), ftoa(l.Coordinate.Northing, 2)}
		if l.Err != nil {
			row = append(row, "", "", "", l.Err.Error())
		} else {
			row = append(row, itoa(l.ID.PatchID), itoa(l.ID.ZoneID), itoa(l.ID.HillID), "")
		}

		tw.Append(row)
	}

	tw.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayNotice prints msg on its own line.
func (s *SimpleUI) DisplayNotice(msg string) {
	s.printf("%s\n", msg)
}

func (s *SimpleUI) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if s.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTableWriter(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader(header)
	tw.SetBorder(false)
	tw.SetCenterSeparator("")
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)

	return tw, &buf
}

func landTypeName(t m.LandType) string {
	switch t {
	case m.LandTypeLand:
		return "land"
	case m.LandTypeStream:
		return "stream"
	case m.LandTypeRoad:
		return "road"
	default:
		return strconv.Itoa(int(t))
	}
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
