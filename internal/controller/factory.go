package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhessysweb/patchflow/internal/adapter"
	m "github.com/rhessysweb/patchflow/internal/model"
)

// NewUI returns the UI for format. Plain tables are coloured only when
// useTTY is set. projector, which may be nil, lets GeoJSON output use WGS84.
func NewUI(cmd *cobra.Command, format m.OutputFormat, useTTY bool, projector adapter.Projector) UI {
	switch format {
	case m.OutputJSON:
		return NewJSONUI(cmd.OutOrStdout(), false, nil)
	case m.OutputGeoJSON:
		return NewJSONUI(cmd.OutOrStdout(), true, projector)
	case m.OutputCSV:
		return NewCSVUI(cmd)
	default:
		return NewSimpleUI(cmd, useTTY)
	}
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
