// Package cmd provides the root command and CLI setup for patchflow.
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhessysweb/patchflow/internal/adapter"
	"github.com/rhessysweb/patchflow/internal/config"
	"github.com/rhessysweb/patchflow/internal/controller"
	"github.com/rhessysweb/patchflow/internal/domain"
	"github.com/rhessysweb/patchflow/internal/logging"
	m "github.com/rhessysweb/patchflow/internal/model"
)

var configFlag string
var logLevelFlag string
var outputFlag string

var cfg *config.Config
var workflow domain.Workflow

// buildWorkflow wires the workflow for a command run. Tests replace it.
var buildWorkflow = newWorkflow

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patchflow",
		Short: "RHESSys flow table and patch raster tool",
		Long: `Patchflow reads, checks, edits and writes RHESSys flow tables and maps
patches to raster cells and back.

Raster layers are read from a directory of GRASS or ESRI ASCII grids
configured in patchflow.yaml or through PATCHFLOW_* variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			if logLevelFlag != "" {
				loaded.Logging.Level = logLevelFlag
			}

			logging.Init(logging.Config{Level: loaded.Logging.Level, Format: loaded.Logging.Format})

			format, err := m.ParseOutputFormat(outputFlag)
			if err != nil {
				return err
			}

			cfg = loaded

			workflow, err = buildWorkflow(cmd, loaded, format)

			return err
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default patchflow.yaml or $PATCHFLOW_CONFIG)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", string(m.OutputTable), "output format: table, json, geojson or csv")

	return cmd
}

func newWorkflow(cmd *cobra.Command, c *config.Config, format m.OutputFormat) (domain.Workflow, error) {
	projector := adapter.NewUTMProjector(c.Projection.UTMZone, c.Projection.Northern)
	raster := c.Raster

	return domain.NewWorkflow(domain.Deps{
		Store:     adapter.NewLocalFlowTableStore(),
		Points:    adapter.NewCSVPointReader(),
		Projector: projector,
		Layers:    raster.LayerSet(),
		UI:        controller.NewUI(cmd, format, controller.IsTTY(cmd.OutOrStdout()), projector),
		Editor:    controller.NewTUI(cmd.InOrStdin(), cmd.OutOrStdout()),
		Logger:    logging.Component("workflow"),
		Rasters: func() (adapter.RasterSource, error) {
			if raster.Dir == "" {
				return nil, errors.New("raster.dir is not configured")
			}

			return adapter.NewASCIIGridSource(raster.Dir, raster.Extension, adapter.GridFormat(raster.Format), raster.PatchLayer)
		},
	}), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePatchIDs(args []string) ([]m.FQPatchID, error) {
	ids := make([]m.FQPatchID, 0, len(args))

	for _, a := range args {
		id, err := m.ParseFQPatchID(a)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}
