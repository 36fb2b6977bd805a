package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rhessysweb/patchflow/internal/domain"
	m "github.com/rhessysweb/patchflow/internal/model"
)

var strictFlag bool
var gammaToleranceFlag float64
var tableOutFlag string

// tableCmd groups the flow table commands.
var tableCmd = newTableCmd()

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect, check and edit flow tables",
	}
	cmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "require the header count to match the table (default from flowtable.strict_header)")

	cmd.AddCommand(
		newTableShowCmd(),
		newTableReceiversCmd(),
		newTableCheckCmd(),
		newTableFormatCmd(),
		newTableRebalanceCmd(),
		newTableEditCmd(),
	)

	return cmd
}

// tableArgs resolves --strict against the configured default.
func tableArgs(cmd *cobra.Command, path string) domain.TableArgs {
	strict := strictFlag
	if !cmd.Flags().Changed("strict") && cfg != nil {
		strict = cfg.FlowTable.StrictHeader
	}

	return domain.TableArgs{Path: m.Path(path), StrictHeader: strict}
}

func newTableShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "List every patch of a flow table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Show(domain.ShowArgs{TableArgs: tableArgs(cmd, args[0])})
		},
	}
}

func newTableReceiversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receivers FILE PATCH,ZONE,HILL",
		Short: "Show the receivers of one patch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := m.ParseFQPatchID(args[1])
			if err != nil {
				return err
			}

			return workflow.Receivers(domain.ReceiversArgs{TableArgs: tableArgs(cmd, args[0]), ID: id})
		},
	}
}

func newTableCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Report structural problems and gamma mismatches",
		Long: `Check runs a diagnostic pass over a flow table. With --strict a header
count mismatch is reported as an error. The command fails when any error
is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tol := gammaToleranceFlag
			if !cmd.Flags().Changed("gamma-tolerance") && cfg != nil {
				tol = cfg.FlowTable.GammaTolerance
			}

			return workflow.Check(domain.CheckArgs{TableArgs: tableArgs(cmd, args[0]), GammaTolerance: tol})
		},
	}
	cmd.Flags().Float64Var(&gammaToleranceFlag, "gamma-tolerance", 0, "allowed gap between total gamma and the receiver sum (default from flowtable.gamma_tolerance)")

	return cmd
}

func newTableFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format FILE",
		Short: "Rewrite a flow table in canonical layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Format(domain.FormatArgs{TableArgs: tableArgs(cmd, args[0]), Out: m.Path(tableOutFlag)})
		},
	}
	addOutFlag(cmd)

	return cmd
}

func newTableRebalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebalance FILE PATCH,ZONE,HILL...",
		Short: "Split total gamma evenly over the receivers of patches",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parsePatchIDs(args[1:])
			if err != nil {
				return err
			}

			return workflow.Rebalance(domain.RebalanceArgs{
				TableArgs: tableArgs(cmd, args[0]),
				IDs:       ids,
				Out:       m.Path(tableOutFlag),
			})
		},
	}
	addOutFlag(cmd)

	return cmd
}

func newTableEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit receiver gammas interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Edit(domain.EditArgs{TableArgs: tableArgs(cmd, args[0]), Out: m.Path(tableOutFlag)})
		},
	}
	addOutFlag(cmd)

	return cmd
}

func addOutFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&tableOutFlag, "out", "", "write the table here instead of replacing FILE")
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
