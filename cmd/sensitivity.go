package cmd

import (
	"riskcalc/pkg/formulas"
	"riskcalc/pkg/reports"

	"github.com/spf13/cobra"
)

func newSensitivityCmd(a *app) *cobra.Command {
	var (
		sector  string
		asset   float64
		ef      float64
		revenue float64
		step    int
	)

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Show how ALE moves with exposure factor and incident rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.tables.Sector(sector)
			if err != nil {
				return err
			}

			loss := profile.AvgBreachCost
			if cmd.Flags().Changed("revenue") {
				loss = revenue
			}

			p := reports.NewConsolePrinter(cmd.OutOrStdout())
			p.PrintSensitivity("ALE by exposure factor ("+profile.Name+", ARO "+reports.FormatRate(profile.ARO)+"):",
				"EF", formulas.ALEByExposure(asset, profile.ARO, step), reports.FormatPercent)
			p.PrintSensitivity("ALE by annual rate (EF "+reports.FormatPercent(formulas.ClampExposure(ef))+"):",
				"ARO", formulas.ALEByRate(loss, ef, step), reports.FormatRate)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sector, "sector", "Retail", "business sector")
	f.Float64Var(&asset, "asset", 100000, "asset value")
	f.Float64Var(&ef, "ef", 100, "exposure factor percent for the rate series")
	f.Float64Var(&revenue, "revenue", 0, "loss magnitude for the rate series instead of the sector average breach cost")
	f.IntVar(&step, "step", 5, "step in percentage points")
	return cmd
}
