// Package model defines the data structures shared by the flow table codec,
// the raster patch locator and their callers.
package model

import "fmt"

// Path represents a file system path.
type Path string

// OutputFormat selects how results are rendered.
type OutputFormat string

const (
	// OutputTable renders human-readable tables.
	OutputTable OutputFormat = "table"
	// OutputJSON renders JSON documents.
	OutputJSON OutputFormat = "json"
	// OutputGeoJSON renders coordinate results as GeoJSON feature collections.
	OutputGeoJSON OutputFormat = "geojson"
	// OutputCSV renders lookup results as comma separated rows.
	OutputCSV OutputFormat = "csv"
)

// ParseOutputFormat validates s.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputTable, OutputJSON, OutputGeoJSON, OutputCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, geojson or csv)", s)
	}
}
