package cmd

import (
	"fmt"
	"text/tabwriter"

	"riskcalc/pkg/controlchecks"
	"riskcalc/pkg/reports"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSectorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "Show the reference tables",
		Long:  `Lists sector profiles, disaster recovery strategies and control costs used by the calculator.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			heading := color.New(color.Bold)

			heading.Fprintln(out, "Sectors")
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tARO\tAVG BREACH COST\tDOWNTIME COST/HOUR")
			for _, s := range a.tables.Sectors() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, reports.FormatRate(s.ARO),
					reports.FormatCurrency(s.AvgBreachCost), reports.FormatCurrency(s.DowntimeCostPerHour))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			heading.Fprintln(out, "DR strategies")
			w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRECOVERY HOURS\tANNUAL COST")
			for _, s := range a.tables.Strategies() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, reports.FormatRate(s.RecoveryTimeHours), reports.FormatCurrency(s.AnnualCost))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			heading.Fprintln(out, "Controls")
			w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tANNUAL COST\tEFFECT")
			all := controlchecks.Selection{MFA: true, Phishing: true, Succession: true}
			for _, r := range all.Results(a.tables.ControlCosts()) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, reports.FormatCurrency(r.AnnualCost), r.Message)
			}
			return w.Flush()
		},
	}
}
