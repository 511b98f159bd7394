package controlchecks

import (
	"riskcalc/pkg/formulas"
	"riskcalc/pkg/refdata"

	"github.com/shopspring/decimal"
)

// Control names as shown in reports.
const (
	MFA        = "Multi-Factor Authentication"
	Phishing   = "Phishing Training"
	Succession = "Succession Planning"
)

// ControlCheckResult describes one optional control and whether it is in
// effect for an assessment.
type ControlCheckResult struct {
	Name       string
	Enabled    bool
	AnnualCost float64
	Message    string
}

// Selection records which optional controls are enabled.
type Selection struct {
	MFA        bool
	Phishing   bool
	Succession bool
}

// RateMultiplier is the factor applied to the sector incident rate.
func (s Selection) RateMultiplier() float64 {
	m := 1.0
	if s.MFA {
		m *= formulas.MFARateFactor
	}
	if s.Phishing {
		m *= formulas.PhishingRateFactor
	}
	return m
}

// DowntimeMultiplier is the factor applied to the hourly downtime cost.
func (s Selection) DowntimeMultiplier() float64 {
	if s.Succession {
		return formulas.SuccessionDowntimeFactor
	}
	return 1.0
}

// Cost is the annual cost of the DR strategy plus every enabled control.
func (s Selection) Cost(costs refdata.ControlCosts, strategy refdata.DRStrategyProfile) float64 {
	total := decimal.NewFromFloat(strategy.AnnualCost)
	if s.MFA {
		total = total.Add(decimal.NewFromFloat(costs.MFA))
	}
	if s.Phishing {
		total = total.Add(decimal.NewFromFloat(costs.Phishing))
	}
	if s.Succession {
		total = total.Add(decimal.NewFromFloat(costs.Succession))
	}
	return total.InexactFloat64()
}

// Results lists all three controls in a fixed order.
func (s Selection) Results(costs refdata.ControlCosts) []ControlCheckResult {
	return []ControlCheckResult{
		{Name: MFA, Enabled: s.MFA, AnnualCost: costs.MFA, Message: "reduces incident rate by 50%"},
		{Name: Phishing, Enabled: s.Phishing, AnnualCost: costs.Phishing, Message: "reduces incident rate by a further 20%"},
		{Name: Succession, Enabled: s.Succession, AnnualCost: costs.Succession, Message: "reduces hourly downtime cost by 10%"},
	}
}

// Enabled returns the names of the enabled controls.
func (s Selection) Enabled() []string {
	var out []string
	for _, r := range s.Results(refdata.ControlCosts{}) {
		if r.Enabled {
			out = append(out, r.Name)
		}
	}
	return out
}
