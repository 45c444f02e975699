package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkwonlab/sangkwon-cli/internal/estimate"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

func TestSaturate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		businessType string
		sameCount    int
		wantScore    int
		wantLevel    string
	}{
		{refdata.BizCafe, 0, 0, SaturationLow},
		{refdata.BizCafe, 4, 40, SaturationMedium},
		{refdata.BizCafe, 6, 60, SaturationHigh},
		{refdata.BizCafe, 8, 80, SaturationSaturated},
		{refdata.BizCafe, 50, 100, SaturationSaturated},
		{refdata.BizConvenience, 3, 60, SaturationHigh},
		{"세차장", 5, 50, SaturationMedium}, // generic optimal count of 10
	}
	for _, tt := range tests {
		got := Saturate(tt.businessType, tt.sameCount)
		assert.Equal(t, tt.wantScore, got.Score, "%s/%d", tt.businessType, tt.sameCount)
		assert.Equal(t, tt.wantLevel, got.Level, "%s/%d", tt.businessType, tt.sameCount)
	}
}

func TestScoreLocation(t *testing.T) {
	t.Parallel()

	t.Run("quiet area with no competition", func(t *testing.T) {
		t.Parallel()
		s := ScoreLocation(refdata.BizCafe, 0, 50, 2)
		// saturation 40 + activity 5 + competition 20 + diversity 6
		assert.Equal(t, 71, s.Total)
		assert.Equal(t, TierRecommended, s.Tier)
	})

	t.Run("busy area with heavy competition", func(t *testing.T) {
		t.Parallel()
		s := ScoreLocation(refdata.BizCafe, 25, 1200, 10)
		// saturation 0 + activity 25 + competition 5 + diversity 15
		assert.Equal(t, 45, s.Total)
		assert.Equal(t, TierNeutral, s.Tier)
		assert.Equal(t, SaturationSaturated, s.Saturation.Level)
	})

	t.Run("components stay within caps", func(t *testing.T) {
		t.Parallel()
		s := ScoreLocation(refdata.BizRestaurant, 100, 5000, 100)
		assert.LessOrEqual(t, s.Components["activity"], 25)
		assert.LessOrEqual(t, s.Components["diversity"], 15)
		assert.GreaterOrEqual(t, s.Total, 0)
		assert.LessOrEqual(t, s.Total, 100)
	})
}

func popFor(areaType string) estimate.PopulationEstimate {
	p := refdata.AreaTypeDefault(areaType)
	return estimate.PopulationEstimate{
		TimeDist: p.TimeDist,
		AgeDist:  p.AgeDist,
		Gender:   p.Gender,
		AreaType: areaType,
	}
}

func TestScoreFit(t *testing.T) {
	t.Parallel()

	t.Run("cafe fits university area", func(t *testing.T) {
		t.Parallel()
		uni := ScoreFit(refdata.BizCafe, popFor(refdata.AreaUniversity))
		office := ScoreFit(refdata.BizCafe, popFor(refdata.AreaResidential))
		assert.Greater(t, uni.Total, office.Total)
		assert.GreaterOrEqual(t, uni.Total, 60)
	})

	t.Run("scores stay in range", func(t *testing.T) {
		t.Parallel()
		for _, bt := range refdata.ValidBusinessTypes {
			for _, at := range []string{refdata.AreaStation, refdata.AreaUniversity, refdata.AreaOffice, refdata.AreaResidential, refdata.AreaTourist, refdata.AreaNightlife, refdata.AreaMixed} {
				s := ScoreFit(bt, popFor(at))
				assert.GreaterOrEqual(t, s.Total, 0, "%s/%s", bt, at)
				assert.LessOrEqual(t, s.Total, 100, "%s/%s", bt, at)
			}
		}
	})

	t.Run("unknown type uses broadest profile", func(t *testing.T) {
		t.Parallel()
		s := ScoreFit("세차장", popFor(refdata.AreaMixed))
		assert.Greater(t, s.Total, 0)
		assert.NotEmpty(t, s.Note)
	})

	t.Run("female preference rewards female-heavy areas", func(t *testing.T) {
		t.Parallel()
		pop := popFor(refdata.AreaMixed)
		pop.Gender = model.GenderRatio{Male: 35, Female: 65}
		high := ScoreFit(refdata.BizNailShop, pop)
		pop.Gender = model.GenderRatio{Male: 65, Female: 35}
		low := ScoreFit(refdata.BizNailShop, pop)
		assert.Greater(t, high.Total, low.Total)
	})

	t.Run("gender contribution is capped", func(t *testing.T) {
		t.Parallel()
		// Only the gender component can score: no age, area, or time match.
		pop := estimate.PopulationEstimate{
			Gender: model.GenderRatio{Male: 15, Female: 85},
		}
		s := ScoreFit(refdata.BizNailShop, pop)
		assert.Equal(t, 60, s.Total)
	})
}

func TestScoreAccess(t *testing.T) {
	t.Parallel()

	s := ScoreAccess([]FacilityCount{
		{Name: "지하철역", Count: 1},
		{Name: "버스정류장", Count: 5},
		{Name: "은행", Count: 2},
		{Name: "편의점", Count: 8},
		{Name: "병원", Count: 1},
		{Name: "약국", Count: 2},
		{Name: "주차장", Count: 4},
		{Name: "학교", Count: 1},
	})
	// 30 + 15 + 10 + 10 + 5 + 5 + 10 + 3
	assert.Equal(t, 88, s.Total)
	assert.Equal(t, AccessExcellent, s.Level)

	empty := ScoreAccess([]FacilityCount{{Name: "은행", Count: 0}})
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, AccessPoor, empty.Level)
}

func TestMarketGap(t *testing.T) {
	t.Parallel()

	assert.Contains(t, MarketGap(0, 0), "선점")
	assert.Contains(t, MarketGap(2, 100), "진입 여건")
	assert.Contains(t, MarketGap(8, 80), "프랜차이즈")
	assert.Contains(t, MarketGap(8, 20), "개인 매장")
	assert.Contains(t, MarketGap(15, 50), "치열")
	assert.Contains(t, MarketGap(6, 50), "적절")
}

func TestRank(t *testing.T) {
	t.Parallel()

	a := Candidate{Location: "강남역", Score: ScoreLocation(refdata.BizCafe, 25, 1200, 10)}
	b := Candidate{Location: "동네골목", Score: ScoreLocation(refdata.BizCafe, 0, 50, 2)}
	c := Candidate{Location: "판교", Score: ScoreLocation(refdata.BizCafe, 8, 500, 8)}

	r := Rank([]Candidate{a, b, c})
	require.Len(t, r.Candidates, 3)
	assert.Equal(t, "동네골목", r.Best)
	assert.Equal(t, 1, r.Candidates[0].Rank)
	assert.False(t, r.AllSaturated)
	for i := 1; i < len(r.Candidates); i++ {
		assert.GreaterOrEqual(t, r.Candidates[i-1].Score.Total, r.Candidates[i].Score.Total)
	}
}

func TestRank_AllSaturated(t *testing.T) {
	t.Parallel()

	r := Rank([]Candidate{
		{Location: "a", Score: ScoreLocation(refdata.BizCafe, 30, 1000, 5)},
		{Location: "b", Score: ScoreLocation(refdata.BizCafe, 40, 2000, 8)},
	})
	assert.True(t, r.AllSaturated)

	// Density alone does not clear the flag; what matters is that nobody
	// reaches the recommended tier.
	mid := ScoreLocation(refdata.BizCafe, 7, 300, 4)
	require.Equal(t, SaturationHigh, mid.Saturation.Level)
	require.Less(t, mid.Total, 70)
	r = Rank([]Candidate{
		{Location: "a", Score: mid},
		{Location: "b", Score: ScoreLocation(refdata.BizCafe, 6, 250, 4)},
	})
	assert.True(t, r.AllSaturated)

	good := ScoreLocation(refdata.BizCafe, 0, 1200, 5)
	require.Equal(t, TierRecommended, good.Tier)
	r = Rank([]Candidate{
		{Location: "a", Score: mid},
		{Location: "b", Score: good},
	})
	assert.False(t, r.AllSaturated)

	assert.False(t, Rank(nil).AllSaturated)
}

func TestRank_StableForTies(t *testing.T) {
	t.Parallel()

	s := ScoreLocation(refdata.BizCafe, 5, 300, 4)
	r := Rank([]Candidate{
		{Location: "first", Score: s},
		{Location: "second", Score: s},
	})
	assert.Equal(t, "first", r.Best)
}
