package formulas

import (
	"math"
	"testing"

	"riskcalc/pkg/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSLE(t *testing.T) {
	tests := []struct {
		name  string
		asset float64
		ef    float64
		want  float64
	}{
		{"full exposure", 100000, 100, 100000},
		{"half exposure", 100000, 50, 50000},
		{"zero exposure", 100000, 0, 0},
		{"clamped above", 100000, 250, 100000},
		{"clamped below", 100000, -20, 0},
		{"zero asset", 0, 75, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SLE(tt.asset, tt.ef), 1e-9)
		})
	}
}

func TestSLEMatchesClampedProduct(t *testing.T) {
	for _, asset := range []float64{0, 1, 12345.67, 1e9} {
		for _, ef := range []float64{-50, 0, 12.5, 99.9, 100, 140} {
			want := asset * math.Max(0, math.Min(ef, 100)) / 100
			assert.InDelta(t, want, SLE(asset, ef), 1e-6, "asset=%v ef=%v", asset, ef)
		}
	}
}

func TestALE(t *testing.T) {
	sle := SLE(200000, 50)
	assert.InDelta(t, 20000, ALE(sle, 0.2), 1e-9)
	// rate is not clamped
	assert.InDelta(t, 300000, ALE(100000, 3), 1e-9)
}

func TestExpectedAnnualBreachCost(t *testing.T) {
	assert.InDelta(t, 350000, ExpectedAnnualBreachCost(2500000, 0.14), 1e-6)
}

func TestALEPreAndPost(t *testing.T) {
	tables := refdata.Default()

	pre, err := ALEPre(tables, "Retail", 100000, 100)
	require.NoError(t, err)
	assert.InDelta(t, 14000, pre, 1e-9)

	mfaOnly, err := ALEPost(tables, "Retail", 100000, 100, true, false)
	require.NoError(t, err)
	assert.InDelta(t, 7000, mfaOnly, 1e-9)

	phishOnly, err := ALEPost(tables, "Retail", 100000, 100, false, true)
	require.NoError(t, err)
	assert.InDelta(t, 11200, phishOnly, 1e-9)

	both, err := ALEPost(tables, "Retail", 100000, 100, true, true)
	require.NoError(t, err)
	assert.InDelta(t, 100000*1.0*0.14*0.4, both, 1e-9)

	none, err := ALEPost(tables, "Retail", 100000, 100, false, false)
	require.NoError(t, err)
	assert.InDelta(t, pre, none, 1e-9)
}

func TestALEPreClampsExposure(t *testing.T) {
	tables := refdata.Default()
	over, err := ALEPre(tables, "Finance", 1000000, 180)
	require.NoError(t, err)
	full, err := ALEPre(tables, "Finance", 1000000, 100)
	require.NoError(t, err)
	assert.Equal(t, full, over)
}

func TestUnknownSectorFails(t *testing.T) {
	tables := refdata.Default()
	var unknown *refdata.UnknownSectorError

	_, err := ALEPre(tables, "Mining", 1, 1)
	assert.ErrorAs(t, err, &unknown)
	_, err = ALEPost(tables, "Mining", 1, 1, true, true)
	assert.ErrorAs(t, err, &unknown)
	_, err = DowntimeLoss(tables, "Mining", refdata.HotSite, false)
	assert.ErrorAs(t, err, &unknown)
}

func TestDowntimeLoss(t *testing.T) {
	tables := refdata.Default()

	cold, err := DowntimeLoss(tables, "Retail", refdata.ColdSite, false)
	require.NoError(t, err)
	hot, err := DowntimeLoss(tables, "Retail", refdata.HotSite, false)
	require.NoError(t, err)

	assert.InDelta(t, 200000*336, cold, 1e-6)
	assert.InDelta(t, 200000*4, hot, 1e-6)
	assert.Greater(t, cold, hot)

	withSuccession, err := DowntimeLoss(tables, "Retail", refdata.HotSite, true)
	require.NoError(t, err)
	assert.InDelta(t, 200000*0.9*4, withSuccession, 1e-6)
}

func TestDowntimeLossUnknownStrategyUsesColdSite(t *testing.T) {
	tables := refdata.Default()
	for _, sector := range tables.SectorNames() {
		explicit, err := DowntimeLoss(tables, sector, refdata.ColdSite, true)
		require.NoError(t, err)
		fallback, err := DowntimeLoss(tables, sector, "Underground Bunker", true)
		require.NoError(t, err)
		assert.Equal(t, explicit, fallback, sector)
	}
}

func TestROSI(t *testing.T) {
	assert.True(t, math.IsInf(ROSI(1, 2, 3, 0), 1))
	assert.True(t, math.IsInf(ROSI(-5, 100, -3, 0), 1))

	// (14000-7000) + 150000 - 50000 = 107000 over 50000
	assert.InDelta(t, 2.14, ROSI(14000, 7000, 150000, 50000), 1e-12)
	assert.InDelta(t, -1, ROSI(0, 0, 0, 10000), 1e-12)
}

func TestHotSiteROI(t *testing.T) {
	r := HotSiteROI(100000, 14, 50000, 4)

	assert.Equal(t, 1400000.0, r.ColdLoss)
	assert.InDelta(t, 100000*4.0/24.0, r.HotRevenueLoss, 1e-9)
	assert.InDelta(t, 66666.67, r.HotTotal, 0.01)
	assert.InDelta(t, 1400000-r.HotTotal, r.Benefit, 1e-9)
	assert.InDelta(t, r.Benefit/r.HotTotal*100, r.ROIPercent, 1e-9)
}

func TestHotSiteROIZeroCost(t *testing.T) {
	r := HotSiteROI(0, 14, 0, 4)
	assert.Equal(t, 0.0, r.HotTotal)
	assert.True(t, math.IsInf(r.ROIPercent, 1))
}

func TestSensitivitySeries(t *testing.T) {
	byEF := ALEByExposure(100000, 0.14, 5)
	require.Len(t, byEF, 21)
	assert.Equal(t, 0.0, byEF[0].X)
	assert.Equal(t, 100.0, byEF[20].X)
	assert.InDelta(t, 14000, byEF[20].ALE, 1e-9)
	assert.InDelta(t, 7000, byEF[10].ALE, 1e-9)

	byRate := ALEByRate(2500000, 100, 5)
	require.Len(t, byRate, 21)
	assert.InDelta(t, 1.0, byRate[20].X, 1e-12)
	assert.InDelta(t, 2500000, byRate[20].ALE, 1e-6)
	assert.Equal(t, 0.0, byRate[0].ALE)

	assert.Len(t, ALEByExposure(1, 1, 0), 21)
	assert.Len(t, ALEByRate(1, 1, 25), 5)
}
