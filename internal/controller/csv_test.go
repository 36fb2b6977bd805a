package controller

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/rhessysweb/patchflow/internal/model"
)

func TestCSVUI_DisplayLocations(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewCSVUI(cmd)
	require.NoError(t, ui.DisplayLocations([]m.Location{
		{Lat: 39.25, Lon: -76.7, Geographic: true, Coordinate: m.CoordinatePair{Easting: 349132.5, Northing: 4350602.5}, ID: pid(1, 2, 3)},
		{Coordinate: m.CoordinatePair{Easting: 1, Northing: 2}, Err: errors.New("outside raster")},
	}))

	want := "lat,lon,easting,northing,patchID,zoneID,hillID\n" +
		"39.250000,-76.700000,349132.500000,4350602.500000,1,2,3\n" +
		",,1.000000,2.000000,,,\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVUI_DisplayPatchCoordinates(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewCSVUI(cmd)
	require.NoError(t, ui.DisplayPatchCoordinates(samplePatchCoordinates(), true))

	assert.Equal(t, "patchID,zoneID,hillID,easting,northing\n1,1,1,349135.000000,4350602.500000\n", buf.String())

	buf.Reset()
	require.NoError(t, ui.DisplayPatchCoordinates(samplePatchCoordinates(), false))
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestCSVUI_FallsBackToTables(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewCSVUI(cmd)
	require.NoError(t, ui.DisplayFindings(nil))
	assert.Equal(t, "ok: no findings\n", buf.String())
}
