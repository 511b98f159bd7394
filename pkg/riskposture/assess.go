package riskposture

import (
	"math"

	"riskcalc/pkg/controlchecks"
	"riskcalc/pkg/formulas"
	"riskcalc/pkg/refdata"
)

// Inputs is everything a caller supplies for one assessment.
type Inputs struct {
	Sector          string
	AssetValue      float64
	ExposurePercent float64
	// AROOverride replaces the sector rate for the expected breach cost.
	AROOverride *float64
	Strategy    string
	Controls    controlchecks.Selection
	// Revenue replaces the sector average breach cost as loss magnitude.
	Revenue *float64
}

// Assessment holds every value derived from Inputs.
type Assessment struct {
	Sector          string
	AssetValue      float64
	ExposurePercent float64
	ARO             float64
	SectorARO       float64
	LossMagnitude   float64
	Strategy        string
	Controls        controlchecks.Selection

	SLE                float64
	ALEPre             float64
	ALEPost            float64
	ExpectedBreachCost float64
	DowntimeCold       float64
	DowntimeSelected   float64
	MoneySaved         float64
	CostOfControls     float64
	ROSI               float64
	Posture            Posture
	Recommendation     string
}

// Assess runs the full calculation for one set of inputs. The only error is
// an unknown sector.
func Assess(t *refdata.Tables, in Inputs) (Assessment, error) {
	sector, err := t.Sector(in.Sector)
	if err != nil {
		return Assessment{}, err
	}

	aro := sector.ARO
	if in.AROOverride != nil {
		aro = *in.AROOverride
	}
	loss := sector.AvgBreachCost
	if in.Revenue != nil {
		loss = *in.Revenue
	}

	a := Assessment{
		Sector:          sector.Name,
		AssetValue:      in.AssetValue,
		ExposurePercent: in.ExposurePercent,
		ARO:             aro,
		SectorARO:       sector.ARO,
		LossMagnitude:   loss,
		Strategy:        t.ResolveStrategyName(in.Strategy),
		Controls:        in.Controls,
	}

	a.SLE = formulas.SLE(in.AssetValue, in.ExposurePercent)
	if a.ALEPre, err = formulas.ALEPre(t, in.Sector, loss, in.ExposurePercent); err != nil {
		return Assessment{}, err
	}
	if a.ALEPost, err = formulas.ALEPost(t, in.Sector, loss, in.ExposurePercent, in.Controls.MFA, in.Controls.Phishing); err != nil {
		return Assessment{}, err
	}
	a.ExpectedBreachCost = formulas.ExpectedAnnualBreachCost(sector.AvgBreachCost, aro)

	if a.DowntimeCold, err = formulas.DowntimeLoss(t, in.Sector, refdata.ColdSite, false); err != nil {
		return Assessment{}, err
	}
	if a.DowntimeSelected, err = formulas.DowntimeLoss(t, in.Sector, in.Strategy, in.Controls.Succession); err != nil {
		return Assessment{}, err
	}
	a.MoneySaved = math.Max(0, a.DowntimeCold-a.DowntimeSelected)

	a.CostOfControls = in.Controls.Cost(t.ControlCosts(), t.Strategy(in.Strategy))
	a.ROSI = formulas.ROSI(a.ALEPre, a.ALEPost, a.MoneySaved, a.CostOfControls)
	a.Posture = FromROSI(a.ROSI)
	a.Recommendation = a.Posture.Recommendation()
	return a, nil
}
