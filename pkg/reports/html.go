package reports

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/Masterminds/sprig/v3"
)

const reportTemplate = "report.html"

//go:embed templates/report.html
var templatesFS embed.FS

func validateEmbeddedTemplates() error {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read embedded templates root: %w", err)
	}

	if len(entries) == 0 {
		return fmt.Errorf("no embedded templates found (go:embed likely misconfigured)")
	}

	for _, e := range entries {
		if !e.IsDir() && e.Name() == reportTemplate {
			return nil
		}
	}
	return fmt.Errorf("%s not found in embedded templates", reportTemplate)
}

// Row is one label/value line of a report table.
type Row struct {
	Label string
	Value string
}

// HTMLView is the data handed to the HTML template.
type HTMLView struct {
	Title       string
	GeneratedAt string
	Inputs      []Row
	Computed    []Row
	Downtime    []Row
	MoneySaved  string
	Controls    []Row
	Positive    bool
	Methodology []string
	References  []string
	Notes       string
}

func buildView(rec ReportRecord, generated time.Time) HTMLView {
	return HTMLView{
		Title:       rec.DisplayTitle(),
		GeneratedAt: FormatTimestamp(generated),
		Inputs: []Row{
			{"Sector", rec.Sector},
			{"Asset value", FormatCurrency(rec.AssetValue)},
			{"Exposure Factor (EF)", FormatPercent(rec.ExposurePercent)},
			{"ARO", FormatRate(rec.ARO)},
			{"Selected DR Strategy", rec.Strategy},
		},
		Computed: []Row{
			{"SLE", FormatCurrency(rec.SLE)},
			{"ALE (pre-controls)", FormatCurrency(rec.ALEPre)},
			{"ALE (post-controls)", FormatCurrency(rec.ALEPost)},
			{"Expected Annual Breach Cost", FormatCurrency(rec.ExpectedBreachCost)},
		},
		Downtime: []Row{
			{"Downtime loss (Cold)", FormatCurrency(rec.DowntimeCold)},
			{"Downtime loss (Selected)", FormatCurrency(rec.DowntimeSelected)},
		},
		MoneySaved: FormatCurrency(rec.MoneySaved),
		Controls: []Row{
			{"Cost of controls (annual)", FormatCurrency(rec.CostOfControls)},
			{"ROSI", FormatROSI(rec.ROSI)},
		},
		Positive:    rec.ROSI > 0 || math.IsInf(rec.ROSI, 1),
		Methodology: methodology,
		References:  references,
		Notes:       rec.Notes,
	}
}

// RenderHTML renders rec as a standalone HTML page stamped with generated.
func RenderHTML(rec ReportRecord, generated time.Time) ([]byte, error) {
	if err := validateEmbeddedTemplates(); err != nil {
		return nil, err
	}
	tplBytes, err := templatesFS.ReadFile("templates/" + reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	tpl, err := template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(string(tplBytes))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, buildView(rec, generated)); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateHTMLReport writes the HTML rendition of rec to outputPath.
func GenerateHTMLReport(rec ReportRecord, outputPath string) error {
	page, err := RenderHTML(rec, time.Now())
	if err != nil {
		return err
	}
	if err := (FileSink{Path: outputPath}).WriteDocument(page); err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	return nil
}
