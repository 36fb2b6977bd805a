// Package controller renders workflow results for the terminal and hosts the
// interactive flow table editor.
package controller

import (
	m "github.com/rhessysweb/patchflow/internal/model"
)

// UI displays the results of patchflow commands. Implementations choose the
// output format: plain tables, CSV, JSON or GeoJSON.
type UI interface {
	DisplayTable(table *m.FlowTable) error
	DisplayRecord(id m.FQPatchID, rec *m.Record) error
	DisplayFindings(findings []m.Finding) error

	// DisplayPatchCoordinates shows the cell centres of each patch, or one
	// centroid per patch when centroids is set.
	DisplayPatchCoordinates(pc *m.PatchCoordinates, centroids bool) error

	DisplayLocations(locs []m.Location) error

	// DisplayNotice reports a side effect such as a written file.
	DisplayNotice(msg string)
}

// SaveFunc persists the table being edited.
type SaveFunc func(table *m.FlowTable) error

// Editor runs the interactive gamma editor over a table.
type Editor interface {
	Edit(table *m.FlowTable, save SaveFunc) error
}
