package riskposture

import (
	"math"
	"testing"

	"riskcalc/pkg/controlchecks"
	"riskcalc/pkg/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestAssessRetailDefaults(t *testing.T) {
	a, err := Assess(refdata.Default(), Inputs{
		Sector:          "Retail",
		AssetValue:      100000,
		ExposurePercent: 100,
		Strategy:        refdata.ColdSite,
	})
	require.NoError(t, err)

	assert.Equal(t, "Retail", a.Sector)
	assert.Equal(t, 0.14, a.ARO)
	assert.Equal(t, 2500000.0, a.LossMagnitude)
	assert.InDelta(t, 100000, a.SLE, 1e-9)
	assert.InDelta(t, 350000, a.ALEPre, 1e-6)
	assert.InDelta(t, 350000, a.ALEPost, 1e-6)
	assert.InDelta(t, 350000, a.ExpectedBreachCost, 1e-6)
	assert.InDelta(t, 67200000, a.DowntimeCold, 1e-6)
	assert.InDelta(t, 67200000, a.DowntimeSelected, 1e-6)
	assert.Equal(t, 0.0, a.MoneySaved)
	assert.Equal(t, 10000.0, a.CostOfControls)
	assert.InDelta(t, -1, a.ROSI, 1e-12)
	assert.Equal(t, Negative, a.Posture)
}

func TestAssessWithControlsAndHotSite(t *testing.T) {
	a, err := Assess(refdata.Default(), Inputs{
		Sector:          "Retail",
		AssetValue:      100000,
		ExposurePercent: 100,
		Strategy:        refdata.HotSite,
		Controls:        controlchecks.Selection{MFA: true, Phishing: true, Succession: true},
		Revenue:         floatPtr(100000),
	})
	require.NoError(t, err)

	assert.InDelta(t, 14000, a.ALEPre, 1e-9)
	assert.InDelta(t, 5600, a.ALEPost, 1e-9)
	assert.InDelta(t, 200000*336, a.DowntimeCold, 1e-6)
	assert.InDelta(t, 200000*0.9*4, a.DowntimeSelected, 1e-6)
	assert.InDelta(t, a.DowntimeCold-a.DowntimeSelected, a.MoneySaved, 1e-6)
	assert.Equal(t, 150000.0+25000+7500+5000, a.CostOfControls)

	want := ((a.ALEPre - a.ALEPost) + a.MoneySaved - a.CostOfControls) / a.CostOfControls
	assert.InDelta(t, want, a.ROSI, 1e-12)
	assert.Equal(t, Strong, a.Posture)
	assert.Contains(t, a.Recommendation, "positive ROSI")
}

func TestAssessAROOverrideOnlyAffectsBreachCost(t *testing.T) {
	a, err := Assess(refdata.Default(), Inputs{
		Sector:          "Healthcare",
		AssetValue:      500000,
		ExposurePercent: 40,
		AROOverride:     floatPtr(0.9),
		Strategy:        refdata.WarmSite,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.9, a.ARO)
	assert.Equal(t, 0.59, a.SectorARO)
	assert.InDelta(t, 9770000*0.9, a.ExpectedBreachCost, 1e-6)
	assert.InDelta(t, 9770000*0.4*0.59, a.ALEPre, 1e-6)
}

func TestAssessUnknownStrategyFallsBack(t *testing.T) {
	tables := refdata.Default()
	base := Inputs{Sector: "Finance", AssetValue: 1, ExposurePercent: 10}

	base.Strategy = "Floating Site"
	unknown, err := Assess(tables, base)
	require.NoError(t, err)

	base.Strategy = refdata.ColdSite
	cold, err := Assess(tables, base)
	require.NoError(t, err)

	assert.Equal(t, cold, unknown)
	assert.Equal(t, refdata.ColdSite, unknown.Strategy)
}

func TestAssessUnknownSector(t *testing.T) {
	_, err := Assess(refdata.Default(), Inputs{Sector: "Space"})
	var unknown *refdata.UnknownSectorError
	assert.ErrorAs(t, err, &unknown)
}

func TestAssessZeroCostIsUnbounded(t *testing.T) {
	tables, err := refdata.New(
		[]refdata.SectorProfile{{Name: "Free", ARO: 0.5, AvgBreachCost: 1000, DowntimeCostPerHour: 10}},
		[]refdata.DRStrategyProfile{{Name: refdata.ColdSite, RecoveryTimeHours: 10}},
		refdata.ControlCosts{},
	)
	require.NoError(t, err)

	a, err := Assess(tables, Inputs{Sector: "Free", AssetValue: 10, ExposurePercent: 50})
	require.NoError(t, err)
	assert.True(t, math.IsInf(a.ROSI, 1))
	assert.Equal(t, Unbounded, a.Posture)
}

func TestFromROSI(t *testing.T) {
	tests := []struct {
		rosi float64
		want Posture
	}{
		{math.Inf(1), Unbounded},
		{2.5, Strong},
		{1, Strong},
		{0.2, Positive},
		{0, Negative},
		{-0.7, Negative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromROSI(tt.rosi), "rosi=%v", tt.rosi)
	}
	assert.Contains(t, Negative.Recommendation(), "not positive")
}
