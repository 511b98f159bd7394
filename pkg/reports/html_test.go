package reports

import (
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmbeddedTemplates(t *testing.T) {
	assert.NoError(t, validateEmbeddedTemplates())
}

func TestGenerateHTMLReport(t *testing.T) {
	outputPath := "test-report.html"
	defer os.Remove(outputPath)

	err := GenerateHTMLReport(SampleRecord(), outputPath)
	require.NoError(t, err)

	_, err = os.Stat(outputPath)
	assert.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	contentStr := string(content)
	assert.Contains(t, contentStr, "CyberRisk ROI — Sample Report")
	assert.Contains(t, contentStr, "$100,000.00")
	assert.Contains(t, contentStr, "Money saved by BCDR: $150,000.00")
	assert.Contains(t, contentStr, "88.0%")
	assert.Contains(t, contentStr, "Gordon-Loeb")
	assert.Contains(t, contentStr, "Sample report generated for class presentation.")
	assert.Contains(t, contentStr, "<html>")
	assert.Contains(t, contentStr, "</html>")
}

func TestRenderHTMLTimestampAndFooter(t *testing.T) {
	page, err := RenderHTML(SampleRecord(), fixedClock())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(page), "Report Generated: 2024-11-05 09:30 UTC"))
}

func TestRenderHTMLWithoutNotes(t *testing.T) {
	rec := SampleRecord()
	rec.Notes = ""
	rec.Title = ""

	page, err := RenderHTML(rec, time.Now())
	require.NoError(t, err)

	content := string(page)
	assert.Contains(t, content, "Cyber-Risk ROI &amp; BCDR Report")
	assert.NotContains(t, content, "<h2>Notes</h2>")
}

func TestRenderHTMLInfiniteROSI(t *testing.T) {
	rec := SampleRecord()
	rec.ROSI = math.Inf(1)

	page, err := RenderHTML(rec, time.Now())
	require.NoError(t, err)
	assert.Contains(t, string(page), `rosi">inf<`)
	assert.Contains(t, string(page), `class="controls positive"`)
}

func TestRenderHTMLEscapesNotes(t *testing.T) {
	rec := SampleRecord()
	rec.Notes = "<script>alert(1)</script>"

	page, err := RenderHTML(rec, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script>")
}
