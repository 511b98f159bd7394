// Package formulas implements the quantitative risk formulas: single and
// annualized loss expectancy, downtime loss, return on security investment
// and the hot site ROI example. All functions are pure.
package formulas

import (
	"math"

	"riskcalc/pkg/refdata"
)

// Reduction factors applied by the optional controls.
const (
	MFARateFactor            = 0.5
	PhishingRateFactor       = 0.8
	SuccessionDowntimeFactor = 0.9
)

// ClampExposure limits an exposure factor percentage to [0,100].
func ClampExposure(efPercent float64) float64 {
	return math.Max(0, math.Min(efPercent, 100))
}

// SLE is the single loss expectancy: asset value times the clamped exposure
// factor as a fraction.
func SLE(assetValue, efPercent float64) float64 {
	return assetValue * (ClampExposure(efPercent) / 100.0)
}

// ALE is the annualized loss expectancy. aro is not clamped.
func ALE(sle, aro float64) float64 {
	return sle * aro
}

func ExpectedAnnualBreachCost(avgBreachCost, aro float64) float64 {
	return avgBreachCost * aro
}

// ALEPre is the inherent ALE for a sector, before any control applies.
func ALEPre(t *refdata.Tables, sector string, lossMagnitude, efPercent float64) (float64, error) {
	p, err := t.Sector(sector)
	if err != nil {
		return 0, err
	}
	ef := ClampExposure(efPercent) / 100.0
	return lossMagnitude * ef * p.ARO, nil
}

// ALEPost is the residual ALE. MFA halves the sector rate, then phishing
// training takes a further 20% off.
func ALEPost(t *refdata.Tables, sector string, lossMagnitude, efPercent float64, mfa, phish bool) (float64, error) {
	p, err := t.Sector(sector)
	if err != nil {
		return 0, err
	}
	rate := p.ARO
	if mfa {
		rate *= MFARateFactor
	}
	if phish {
		rate *= PhishingRateFactor
	}
	ef := ClampExposure(efPercent) / 100.0
	return lossMagnitude * ef * rate, nil
}

// DowntimeLoss is the revenue lost while recovering with the named strategy.
// Unknown strategy names use the Cold Site profile.
func DowntimeLoss(t *refdata.Tables, sector, strategy string, succession bool) (float64, error) {
	p, err := t.Sector(sector)
	if err != nil {
		return 0, err
	}
	perHour := p.DowntimeCostPerHour
	if succession {
		perHour *= SuccessionDowntimeFactor
	}
	return perHour * t.Strategy(strategy).RecoveryTimeHours, nil
}

// ROSI returns the return on security investment as a fraction. A zero cost
// of controls yields +Inf.
func ROSI(alePre, alePost, avoidedDowntimeLoss, costOfControls float64) float64 {
	if costOfControls == 0 {
		return math.Inf(1)
	}
	return ((alePre - alePost) + avoidedDowntimeLoss - costOfControls) / costOfControls
}

// HotSiteResult is the outcome of the hot site versus cold site comparison.
type HotSiteResult struct {
	ColdLoss       float64
	HotRevenueLoss float64
	HotTotal       float64
	Benefit        float64
	ROIPercent     float64
}

// HotSiteROI compares losing coldDays of revenue against paying for a hot
// site that is back within hotHours.
func HotSiteROI(dailyRevenue, coldDays, hotFixedCost, hotHours float64) HotSiteResult {
	r := HotSiteResult{
		ColdLoss:       dailyRevenue * coldDays,
		HotRevenueLoss: dailyRevenue * (hotHours / 24.0),
	}
	r.HotTotal = hotFixedCost + r.HotRevenueLoss
	r.Benefit = r.ColdLoss - r.HotTotal
	if r.HotTotal == 0 {
		r.ROIPercent = math.Inf(1)
	} else {
		r.ROIPercent = r.Benefit / r.HotTotal * 100
	}
	return r
}
