// Package reports turns an assessment into shareable output: a PDF document,
// an HTML page and coloured console lines.
package reports

import (
	"riskcalc/pkg/refdata"
	"riskcalc/pkg/riskposture"
)

// DefaultTitle is used when a record carries no title.
const DefaultTitle = "Cyber-Risk ROI & BCDR Report"

// ReportRecord is the flat set of values a report shows. Build it once and
// hand it to a renderer; nothing mutates it afterwards.
type ReportRecord struct {
	Title              string  `json:"title"`
	Sector             string  `json:"sector"`
	AssetValue         float64 `json:"asset_value"`
	ExposurePercent    float64 `json:"ef_percent"`
	ARO                float64 `json:"aro"`
	SLE                float64 `json:"sle"`
	ALEPre             float64 `json:"ale_pre"`
	ALEPost            float64 `json:"ale_post"`
	ExpectedBreachCost float64 `json:"expected_annual_breach_cost"`
	DowntimeCold       float64 `json:"downtime_cold"`
	DowntimeSelected   float64 `json:"downtime_selected"`
	MoneySaved         float64 `json:"money_saved"`
	CostOfControls     float64 `json:"cost_of_controls"`
	ROSI               float64 `json:"rosi"`
	Strategy           string  `json:"dr_strategy"`
	Notes              string  `json:"notes,omitempty"`
}

// NewReportRecord copies the computed values of a into a record.
func NewReportRecord(title, notes string, a riskposture.Assessment) ReportRecord {
	return ReportRecord{
		Title:              title,
		Sector:             a.Sector,
		AssetValue:         a.AssetValue,
		ExposurePercent:    a.ExposurePercent,
		ARO:                a.ARO,
		SLE:                a.SLE,
		ALEPre:             a.ALEPre,
		ALEPost:            a.ALEPost,
		ExpectedBreachCost: a.ExpectedBreachCost,
		DowntimeCold:       a.DowntimeCold,
		DowntimeSelected:   a.DowntimeSelected,
		MoneySaved:         a.MoneySaved,
		CostOfControls:     a.CostOfControls,
		ROSI:               a.ROSI,
		Strategy:           a.Strategy,
		Notes:              notes,
	}
}

// DisplayTitle returns the title, or DefaultTitle when it is blank.
func (r ReportRecord) DisplayTitle() string {
	if r.Title == "" {
		return DefaultTitle
	}
	return r.Title
}

// SampleRecord is a fixed record used to demo the renderer.
func SampleRecord() ReportRecord {
	return ReportRecord{
		Title:              "CyberRisk ROI — Sample Report",
		Sector:             "Retail",
		AssetValue:         100000,
		ExposurePercent:    100,
		ARO:                0.14,
		SLE:                100000,
		ALEPre:             14000,
		ALEPost:            7000,
		ExpectedBreachCost: 350000,
		DowntimeCold:       200000,
		DowntimeSelected:   50000,
		MoneySaved:         150000,
		CostOfControls:     85000,
		ROSI:               0.88,
		Strategy:           refdata.WarmSite,
		Notes:              "Sample report generated for class presentation.",
	}
}
