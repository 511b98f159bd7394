package reports

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// ErrRenderingUnavailable is returned when the PDF backend cannot be set up,
// for example an unknown page size or an unreadable font file. Nothing is
// written when it is returned.
var ErrRenderingUnavailable = errors.New("pdf rendering unavailable")

const (
	DefaultPageSize = "Letter"

	unicodeFontFamily = "DejaVuSans"
	unicodeFontFile   = "DejaVuSans.ttf"
	unicodeBoldFile   = "DejaVuSans-Bold.ttf"
	coreFontFamily    = "Helvetica"

	margin      = 72.0
	labelWidth  = 180.0
	valueWidth  = 252.0
	rowHeight   = 18.0
	footerInset = 0.65 * 72
)

var (
	moneySavedColor = [3]int{0x0a, 0x8a, 0x0a}
	headerRowColor  = [3]int{211, 211, 211}
	gridColor       = [3]int{128, 128, 128}
)

var methodology = []string{
	"This economic model utilizes the Gordon-Loeb Framework for cybersecurity investment analysis.",
	"ALE Calculation: Derived from standard quantitative risk assessment formulas (ALE=SLE×ARO) as defined in CS443 lecture materials.",
	"BCDR Impact: Downtime costs are calculated based on recovery time objectives (RTO) for Hot/Warm/Cold sites.",
}

var references = []string{
	`Gordon, L. A., & Loeb, M. P. (2002). "The economics of information security investment." ACM Transactions on Information and System Security (TISSEC).`,
	`Verizon. (2024). "2024 Data Breach Investigations Report (DBIR)."`,
	`IBM Security. (2024). "Cost of a Data Breach Report 2024."`,
}

// PDFRenderer lays a ReportRecord out as a PDF document. The zero value
// renders Letter pages in Helvetica without compression.
type PDFRenderer struct {
	PageSize string
	// FontDir is searched for DejaVuSans.ttf. Helvetica is used when it is
	// empty or the font is absent.
	FontDir  string
	Compress bool
	// Now supplies the generation time. Defaults to time.Now.
	Now    func() time.Time
	Logger *zap.Logger
}

// document wraps one fpdf instance with the text translator and font family
// picked for it.
type document struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
	stamp  string
}

func (r *PDFRenderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *PDFRenderer) now() time.Time {
	if r.Now == nil {
		return time.Now().UTC()
	}
	return r.Now().UTC()
}

func (r *PDFRenderer) pageSize() string {
	if r.PageSize == "" {
		return DefaultPageSize
	}
	return r.PageSize
}

// Available reports whether a document can be set up with the current
// settings. It returns nil or an error wrapping ErrRenderingUnavailable.
func (r *PDFRenderer) Available() error {
	_, err := r.newDocument(r.now())
	return err
}

func (r *PDFRenderer) unicodeFont() (regular, bold string, ok bool) {
	if r.FontDir == "" {
		return "", "", false
	}
	if _, err := os.Stat(filepath.Join(r.FontDir, unicodeFontFile)); err != nil {
		return "", "", false
	}
	bold = unicodeFontFile
	if _, err := os.Stat(filepath.Join(r.FontDir, unicodeBoldFile)); err == nil {
		bold = unicodeBoldFile
	}
	return unicodeFontFile, bold, true
}

func (r *PDFRenderer) newDocument(generated time.Time) (doc *document, err error) {
	defer func() {
		// fpdf's TrueType parser indexes without bounds checks.
		if p := recover(); p != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrRenderingUnavailable, p)
		}
	}()

	pdf := fpdf.New("P", "pt", r.pageSize(), r.FontDir)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCompression(r.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generated)
	pdf.SetModificationDate(generated)
	pdf.SetCreator("riskcalc", true)

	doc = &document{pdf: pdf, stamp: FormatTimestamp(generated)}
	if regular, bold, ok := r.unicodeFont(); ok {
		pdf.AddUTF8Font(unicodeFontFamily, "", regular)
		pdf.AddUTF8Font(unicodeFontFamily, "B", bold)
		doc.family = unicodeFontFamily
		doc.tr = func(s string) string { return s }
	} else {
		doc.family = coreFontFamily
		doc.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	// Selecting the font surfaces a missing core font definition now rather
	// than halfway through the first page.
	pdf.SetFont(doc.family, "", 10)

	if perr := pdf.Error(); perr != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingUnavailable, perr)
	}
	return doc, nil
}

// Render builds the document for rec and hands the finished bytes to sink.
// The sink is not called if any step fails.
func (r *PDFRenderer) Render(rec ReportRecord, sink Sink) error {
	generated := r.now()
	doc, err := r.newDocument(generated)
	if err != nil {
		r.logger().Warn("pdf backend unavailable", zap.Error(err))
		return err
	}

	doc.pdf.SetTitle(rec.DisplayTitle(), true)
	doc.pdf.SetFooterFunc(doc.footer)
	doc.pdf.AddPage()
	doc.build(rec)

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	r.logger().Debug("pdf rendered",
		zap.Int("bytes", buf.Len()),
		zap.Int("pages", doc.pdf.PageNo()),
		zap.String("font", doc.family),
	)

	if err := sink.WriteDocument(buf.Bytes()); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// RenderBytes renders rec and returns the document.
func (r *PDFRenderer) RenderBytes(rec ReportRecord) ([]byte, error) {
	var sink MemorySink
	if err := r.Render(rec, &sink); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

// RenderFile renders rec to path. The file is replaced only once the whole
// document has been produced.
func (r *PDFRenderer) RenderFile(rec ReportRecord, path string) error {
	if err := r.Render(rec, FileSink{Path: path}); err != nil {
		return err
	}
	r.logger().Info("pdf report written", zap.String("path", path))
	return nil
}

func (d *document) build(rec ReportRecord) {
	p := d.pdf

	p.SetFont(d.family, "B", 18)
	p.MultiCell(0, 22, d.tr(rec.DisplayTitle()), "", "C", false)
	p.Ln(11)

	d.paragraph("Report Generated: " + d.stamp)
	p.Ln(14)

	d.table([][2]string{
		{"Sector", rec.Sector},
		{"Asset value", FormatCurrency(rec.AssetValue)},
		{"Exposure Factor (EF)", FormatPercent(rec.ExposurePercent)},
		{"ARO", FormatRate(rec.ARO)},
		{"Selected DR Strategy", rec.Strategy},
	}, true)
	p.Ln(14)

	d.table([][2]string{
		{"SLE", FormatCurrency(rec.SLE)},
		{"ALE (pre-controls)", FormatCurrency(rec.ALEPre)},
		{"ALE (post-controls)", FormatCurrency(rec.ALEPost)},
		{"Expected Annual Breach Cost", FormatCurrency(rec.ExpectedBreachCost)},
	}, false)
	p.Ln(14)

	d.heading("Downtime & BCDR")
	d.table([][2]string{
		{"Downtime loss (Cold)", FormatCurrency(rec.DowntimeCold)},
		{"Downtime loss (Selected)", FormatCurrency(rec.DowntimeSelected)},
	}, false)
	p.Ln(7)

	p.SetTextColor(moneySavedColor[0], moneySavedColor[1], moneySavedColor[2])
	d.paragraph("Money saved by BCDR: " + FormatCurrency(rec.MoneySaved))
	p.SetTextColor(0, 0, 0)
	p.Ln(7)

	d.heading("Controls & ROSI")
	d.table([][2]string{
		{"Cost of controls (annual)", FormatCurrency(rec.CostOfControls)},
		{"ROSI", FormatROSI(rec.ROSI)},
	}, false)
	p.Ln(14)

	d.heading("Methodology")
	for i, para := range methodology {
		if i > 0 {
			p.Ln(6)
		}
		d.paragraph(para)
	}
	p.Ln(14)

	d.heading("References")
	for _, ref := range references {
		d.paragraph(ref)
		p.Ln(4)
	}

	if strings.TrimSpace(rec.Notes) != "" {
		p.Ln(11)
		d.heading("Notes")
		d.paragraph(rec.Notes)
	}
}

func (d *document) heading(text string) {
	d.pdf.SetFont(d.family, "B", 14)
	d.pdf.CellFormat(0, 20, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(4)
}

func (d *document) paragraph(text string) {
	d.pdf.SetFont(d.family, "", 10)
	d.pdf.MultiCell(0, 14, d.tr(text), "", "L", false)
}

// table draws two-column rows with a grey grid. shadeFirst fills the first
// row light grey.
func (d *document) table(rows [][2]string, shadeFirst bool) {
	p := d.pdf
	p.SetFont(d.family, "", 10)
	p.SetDrawColor(gridColor[0], gridColor[1], gridColor[2])
	p.SetLineWidth(0.25)
	p.SetFillColor(headerRowColor[0], headerRowColor[1], headerRowColor[2])
	for i, row := range rows {
		fill := shadeFirst && i == 0
		p.CellFormat(labelWidth, rowHeight, d.tr(row[0]), "1", 0, "LM", fill, 0, "")
		p.CellFormat(valueWidth, rowHeight, d.tr(row[1]), "1", 1, "LM", fill, 0, "")
	}
}

func (d *document) footer() {
	p := d.pdf
	_, pageHeight := p.GetPageSize()
	p.SetFont(d.family, "", 8)
	p.SetTextColor(0, 0, 0)
	p.SetXY(margin, pageHeight-footerInset-10)
	p.CellFormat(0, 10, d.tr("Report Generated: "+d.stamp), "", 0, "L", false, 0, "")
}
