package reports

import (
	"fmt"
	"io"
	"strings"
	"time"

	"riskcalc/pkg/formulas"
	"riskcalc/pkg/riskposture"

	"github.com/fatih/color"
)

// ConsolePrinter writes the human readable calculator output.
type ConsolePrinter struct {
	Out io.Writer
	Now func() time.Time
}

func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{Out: out, Now: time.Now}
}

func (p *ConsolePrinter) line(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *ConsolePrinter) section(title string) {
	fmt.Fprintln(p.Out)
	color.New(color.Bold).Fprintln(p.Out, title)
}

// PrintAssessment prints inputs, computed values, downtime and ROSI.
func (p *ConsolePrinter) PrintAssessment(a riskposture.Assessment) {
	color.New(color.Bold, color.FgCyan).Fprintln(p.Out, "Cyber-Risk ROI & BCDR Calculator — Report")
	p.line("Generated: %s", FormatTimestamp(p.Now()))
	p.line("Sector: %s", a.Sector)
	p.line("Asset value: %s", FormatCurrency(a.AssetValue))
	p.line("Exposure Factor (EF): %s", FormatPercent(a.ExposurePercent))
	p.line("ARO (sector): %s", FormatRate(a.SectorARO))
	if a.ARO != a.SectorARO {
		p.line("ARO (override): %s", FormatRate(a.ARO))
	}
	p.line("DR strategy: %s", a.Strategy)
	if enabled := a.Controls.Enabled(); len(enabled) > 0 {
		p.line("Controls: %s (incident rate x%s, downtime cost x%s)", strings.Join(enabled, ", "),
			FormatRate(a.Controls.RateMultiplier()), FormatRate(a.Controls.DowntimeMultiplier()))
	} else {
		p.line("Controls: none")
	}

	p.section("Computed Values:")
	p.line("  SLE: %s", FormatCurrency(a.SLE))
	p.line("  ALE (pre): %s", FormatCurrency(a.ALEPre))
	p.line("  ALE (post): %s", FormatCurrency(a.ALEPost))
	p.line("  Expected Annual Breach Cost (AvgBreachCost * ARO): %s", FormatCurrency(a.ExpectedBreachCost))

	p.section("Downtime & ROSI:")
	p.line("  Downtime loss (Cold): %s", FormatCurrency(a.DowntimeCold))
	p.line("  Downtime loss (Selected): %s", FormatCurrency(a.DowntimeSelected))
	color.New(color.FgGreen).Fprintf(p.Out, "  Money saved by BCDR: %s\n", FormatCurrency(a.MoneySaved))
	p.line("  Cost of controls (DR + selected controls): %s", FormatCurrency(a.CostOfControls))
	p.line("  ROSI: %s", FormatROSI(a.ROSI))

	switch a.Posture {
	case riskposture.Negative:
		color.New(color.FgRed).Fprintf(p.Out, "  [%s] %s\n", a.Posture, a.Recommendation)
	case riskposture.Strong, riskposture.Unbounded:
		color.New(color.FgHiGreen).Fprintf(p.Out, "  [%s] %s\n", a.Posture, a.Recommendation)
	default:
		color.New(color.FgYellow).Fprintf(p.Out, "  [%s] %s\n", a.Posture, a.Recommendation)
	}
}

// PrintHotSite prints the standalone hot site versus cold site example.
func (p *ConsolePrinter) PrintHotSite(r formulas.HotSiteResult) {
	p.section("Hot Site ROI example (defaults can be overridden):")
	p.line("  Cold site loss: %s", FormatCurrency(r.ColdLoss))
	p.line("  Hot site revenue loss during recovery: %s", FormatCurrency(r.HotRevenueLoss))
	p.line("  Hot site total cost: %s", FormatCurrency(r.HotTotal))
	p.line("  Avoided loss (Cold - Hot): %s", FormatCurrency(r.Benefit))
	p.line("  ROI %%: %s", FormatPercent(r.ROIPercent))
}

// PrintSensitivity prints a sensitivity series as two aligned columns.
func (p *ConsolePrinter) PrintSensitivity(title, xLabel string, points []formulas.Point, formatX func(float64) string) {
	p.section(title)
	p.line("  %-10s %s", xLabel, "ALE")
	for _, pt := range points {
		p.line("  %-10s %s", formatX(pt.X), FormatCurrency(pt.ALE))
	}
}
