package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

func TestPopulationFromProfile_StaticOnly(t *testing.T) {
	t.Parallel()

	p, ok := refdata.ProfileByName("강남역")
	require.True(t, ok)

	est := PopulationFromProfile(p, 0, false)
	assert.Equal(t, p.Population.Total, est.Total)
	assert.Equal(t, p.Population.Floating, est.Floating)
	// A curated profile without a live observation never rates high.
	assert.Equal(t, model.ConfidenceMedium, est.Confidence)
	assert.Equal(t, "curated-profile", est.Source)
	assert.InDelta(t, 100, est.TimeDist.Sum(), 0.01)
}

func TestPopulationFromProfile_BlendsLiveCount(t *testing.T) {
	t.Parallel()

	p, ok := refdata.ProfileByName("강남역")
	require.True(t, ok)

	storeCount := 500
	est := PopulationFromProfile(p, storeCount, true)

	live := float64(storeCount * refdata.StoreToPopulationRatio(p.AreaType))
	wantTotal := round(0.7*float64(p.Population.Total) + 0.3*live)
	assert.Equal(t, wantTotal, est.Total)
	assert.Equal(t, model.ConfidenceHigh, est.Confidence)
	assert.Equal(t, "curated-profile+store-registry", est.Source)

	// Residential and working stay on curated figures.
	assert.Equal(t, p.Population.Residential, est.Residential)
	assert.Equal(t, p.Population.Working, est.Working)
}

func TestPopulationInferred(t *testing.T) {
	t.Parallel()

	t.Run("with live count", func(t *testing.T) {
		t.Parallel()
		est := PopulationInferred(refdata.AreaStation, 100, true)
		base := 100 * refdata.StoreToPopulationRatio(refdata.AreaStation)
		assert.Equal(t, base, est.Total)
		assert.Equal(t, round(float64(base)*0.2), est.Residential)
		assert.Equal(t, round(float64(base)*0.4), est.Working)
		assert.Equal(t, round(float64(base)*0.4), est.Floating)
		assert.Equal(t, model.ConfidenceMedium, est.Confidence)
	})

	t.Run("pattern fallback only", func(t *testing.T) {
		t.Parallel()
		est := PopulationInferred(refdata.AreaResidential, 0, false)
		def := refdata.AreaTypeDefault(refdata.AreaResidential)
		assert.Equal(t, def.Population.Total, est.Total)
		assert.Equal(t, model.ConfidenceLow, est.Confidence)
	})
}

func TestCompetitionLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  string
	}{
		{0, CompetitionLow},
		{5, CompetitionLow},
		{6, CompetitionMedium},
		{15, CompetitionMedium},
		{16, CompetitionHigh},
		{30, CompetitionHigh},
		{31, CompetitionSaturated},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompetitionLevel(tt.count), "count %d", tt.count)
	}

	assert.Greater(t, CompetitionMultiplier(CompetitionLow), CompetitionMultiplier(CompetitionMedium))
	assert.Greater(t, CompetitionMultiplier(CompetitionHigh), CompetitionMultiplier(CompetitionSaturated))
	assert.Equal(t, "포화", CompetitionLabel(CompetitionSaturated))
}

func TestSimulate_ReferenceStore(t *testing.T) {
	t.Parallel()

	sim, err := Simulate(SimulationInput{
		BusinessType: refdata.BizCafe,
		Region:       "경기 수원",
		SizePyeong:   15,
		Staff:        1,
		HoursPerDay:  12,
	})
	require.NoError(t, err)

	// 경기 multiplier is 1.0, so the reference store hits the baseline.
	baseline, _ := refdata.Baseline(refdata.BizCafe)
	assert.Equal(t, baseline.Avg, sim.DailySales)
	assert.Equal(t, baseline.Avg*26, sim.MonthlySales)
	assert.Equal(t, sim.MonthlySales*12, sim.YearlySales)
	assert.Equal(t, baseline.AvgCustomers, sim.DailyCustomers)
	assert.Equal(t, round(float64(sim.MonthlySales)*sim.MarginRate), sim.MonthlyProfit)
}

func TestSimulate_ScalesWithInputs(t *testing.T) {
	t.Parallel()

	base, err := Simulate(SimulationInput{BusinessType: refdata.BizCafe, Region: "서울"})
	require.NoError(t, err)

	bigger, err := Simulate(SimulationInput{
		BusinessType: refdata.BizCafe, Region: "서울", SizePyeong: 30, Staff: 3, HoursPerDay: 16,
	})
	require.NoError(t, err)
	assert.Greater(t, bigger.DailySales, base.DailySales)
	assert.Greater(t, bigger.DailyCustomers, base.DailyCustomers)

	gangnam, err := Simulate(SimulationInput{BusinessType: refdata.BizCafe, Region: "강남"})
	require.NoError(t, err)
	assert.Greater(t, gangnam.DailySales, base.DailySales)
}

func TestSimulate_SeasonalFactors(t *testing.T) {
	t.Parallel()

	sim, err := Simulate(SimulationInput{BusinessType: refdata.BizPub, Region: "서울"})
	require.NoError(t, err)
	assert.Greater(t, sim.Seasonal["여름"], sim.Seasonal["겨울"])

	flat, err := Simulate(SimulationInput{BusinessType: refdata.BizNailShop, Region: "서울"})
	require.NoError(t, err)
	assert.Equal(t, flat.Seasonal["여름"], flat.Seasonal["겨울"])
}

func TestSimulate_UnknownRegionGetsProvincialRate(t *testing.T) {
	t.Parallel()

	sim, err := Simulate(SimulationInput{BusinessType: refdata.BizCafe, Region: "남원시 어딘가"})
	require.NoError(t, err)
	assert.Equal(t, refdata.RegionProvince, sim.Region)
	assert.Equal(t, model.ConfidenceLow, sim.Confidence)
	assert.NotEmpty(t, sim.RegionNote)
}

func TestSimulate_UnknownBusinessType(t *testing.T) {
	t.Parallel()

	_, err := Simulate(SimulationInput{BusinessType: "세차장", Region: "서울"})
	assert.Error(t, err)
}
