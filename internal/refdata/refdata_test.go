package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "강남역", Canonicalize("  강남 역 "))
	assert.Equal(t, "starbucks", Canonicalize("StarBucks"))
	assert.Equal(t, Canonicalize("홍대입구"), Canonicalize(Canonicalize("홍대입구")))
	assert.Equal(t, "", Canonicalize("   "))
}

func TestNormalizeBusinessType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"카페", BizCafe},
		{"커피숍", BizCafe},
		{"디저트 카페", BizCafe},
		{"스터디카페", BizStudyCafe},
		{"스터디 카페", BizStudyCafe},
		{"무인카페", BizUnmanned},
		{"무인 아이스크림", BizUnmanned},
		{"국밥집", BizRestaurant},
		{"호프집", BizPub},
		{"수제 맥주", BizPub},
		{"애견미용", BizPetService},
		{"네일아트", BizNailShop},
		{"세차장", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBusinessType(tt.input), "input %q", tt.input)
	}
}

func TestCompetitorKeywordsFallback(t *testing.T) {
	t.Parallel()

	assert.Contains(t, CompetitorKeywords("카페"), "커피")
	assert.Equal(t, []string{"세차장"}, CompetitorKeywords("세차장"))
	assert.True(t, MatchesTrade("카페", "메가커피 강남점"))
	assert.False(t, MatchesTrade("카페", "김밥천국"))
}

func TestNormalizeRegion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"강남역 2번 출구", RegionGangnam},
		{"역삼동", RegionGangnam},
		{"서울 마포구", RegionSeoul},
		{"홍대입구", RegionHongdae},
		{"판교 테크노밸리", RegionGyeonggi},
		{"해운대구", RegionBusan},
		{"목포시", RegionProvince},
		{"", RegionProvince},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRegion(tt.input), "input %q", tt.input)
	}
}

func TestRegionMultiplierOrdering(t *testing.T) {
	t.Parallel()

	gangnam, ok := RegionMultiplier(RegionGangnam)
	require.True(t, ok)
	seoul, ok := RegionMultiplier(RegionSeoul)
	require.True(t, ok)
	busan, ok := RegionMultiplier(RegionBusan)
	require.True(t, ok)
	province, ok := RegionMultiplier(RegionProvince)
	require.True(t, ok)

	assert.Greater(t, gangnam.Multiplier, seoul.Multiplier)
	assert.Greater(t, seoul.Multiplier, busan.Multiplier)
	assert.GreaterOrEqual(t, busan.Multiplier, province.Multiplier)
}

func TestRentBaseFallback(t *testing.T) {
	t.Parallel()

	b := RentBaseFor("없는지역")
	assert.Equal(t, rentBases[RegionProvince], b)
	assert.Greater(t, RentBaseFor(RegionGangnam).Monthly, RentBaseFor(RegionSeoul).Monthly)
}

func TestFindArea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		wantName string
	}{
		{"강남역", "강남역"},
		{"강남", "강남역"},
		{"역삼역 근처", "강남역"},
		{"홍대", "홍대입구"},
		{"홍익대학교 정문", "홍대입구"},
		{"연세대 앞", "신촌"},
		{"이대", "신촌"},
		{"판교역", "판교"},
		{"마린시티", "해운대"},
	}
	for _, tt := range tests {
		p, ok := FindArea(tt.input)
		require.True(t, ok, "input %q", tt.input)
		assert.Equal(t, tt.wantName, p.Name, "input %q", tt.input)
	}

	_, ok := FindArea("목포 평화광장")
	assert.False(t, ok)
}

func TestAreaProfileDistributionsSumTo100(t *testing.T) {
	t.Parallel()

	for _, p := range majorAreas {
		assert.InDelta(t, 100, p.TimeDist.Sum(), 0.01, "%s time", p.Name)
		assert.InDelta(t, 100, p.AgeDist.Sum(), 0.01, "%s age", p.Name)
		assert.InDelta(t, 100, p.Gender.Male+p.Gender.Female, 0.01, "%s gender", p.Name)
		assert.NotEmpty(t, p.Characteristics, p.Name)
	}
	for at, p := range areaTypeDefaults {
		assert.InDelta(t, 100, p.TimeDist.Sum(), 0.01, "%s time", at)
		assert.InDelta(t, 100, p.AgeDist.Sum(), 0.01, "%s age", at)
		assert.InDelta(t, 100, p.Gender.Male+p.Gender.Female, 0.01, "%s gender", at)
	}
}

func TestInferAreaType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"사당역", AreaStation},
		{"국민대학교", AreaUniversity},
		{"가산디지털 오피스텔 빌딩", AreaOffice},
		{"래미안 아파트 상가", AreaResidential},
		{"경포 해변", AreaTourist},
		{"어딘가 모르는 곳", AreaMixed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferAreaType(tt.input), "input %q", tt.input)
	}
}

func TestStoreToPopulationRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 200, StoreToPopulationRatio(AreaTourist))
	assert.Equal(t, defaultStoreToPopulationRatio, StoreToPopulationRatio("모름"))
}

func TestTargetFitFallsBackToCafe(t *testing.T) {
	t.Parallel()

	fit, ok := TargetFitFor("세차장")
	assert.False(t, ok)
	assert.Equal(t, targetFits[BizCafe], fit)

	fit, ok = TargetFitFor(BizPub)
	assert.True(t, ok)
	assert.Equal(t, GenderMale, fit.Gender)
}

func TestCostProfilesAreOrdered(t *testing.T) {
	t.Parallel()

	for bt, p := range costProfiles {
		assert.LessOrEqual(t, p.Deposit.Min, p.Deposit.Max, bt)
		assert.LessOrEqual(t, p.Equipment.Min, p.Equipment.Max, bt)
		assert.LessOrEqual(t, p.Inventory.Min, p.Inventory.Max, bt)
		assert.Less(t, p.InteriorPerPyeong[GradeBasic], p.InteriorPerPyeong[GradeStandard], bt)
		assert.Less(t, p.InteriorPerPyeong[GradeStandard], p.InteriorPerPyeong[GradePremium], bt)
	}
	for _, bt := range ValidBusinessTypes {
		_, ok := CostProfileFor(bt)
		assert.True(t, ok, bt)
		_, ok = BenchmarkFor(bt)
		assert.True(t, ok, bt)
		_, ok = Baseline(bt)
		assert.True(t, ok, bt)
	}
}

func TestBenchmarkVariableRatios(t *testing.T) {
	t.Parallel()

	for bt, b := range benchmarks {
		assert.Greater(t, b.VariableRatio, 0.0, bt)
		assert.Less(t, b.VariableRatio, 1.0, bt)
		assert.Positive(t, b.AvgPrice, bt)
	}
}

func TestMatchFunds(t *testing.T) {
	t.Parallel()

	t.Run("young seoul founder sees youth programs", func(t *testing.T) {
		t.Parallel()
		funds := MatchFunds(FounderProfile{Age: 29, FounderType: "청년", Region: "서울", Stage: "예비"})
		names := fundNames(funds)
		assert.Contains(t, names, "청년창업사관학교")
		assert.Contains(t, names, "서울시 청년창업지원")
		assert.NotContains(t, names, "여성창업경진대회")
		assert.NotContains(t, names, "소상공인 새출발기금")
	})

	t.Run("older founder excluded from youth programs", func(t *testing.T) {
		t.Parallel()
		funds := MatchFunds(FounderProfile{Age: 45, FounderType: "중장년", Region: "부산", Stage: "예비"})
		names := fundNames(funds)
		assert.NotContains(t, names, "청년창업사관학교")
		assert.NotContains(t, names, "서울시 청년창업지원")
		assert.Contains(t, names, "신사업창업사관학교")
	})

	t.Run("restart stage unlocks new start fund", func(t *testing.T) {
		t.Parallel()
		funds := MatchFunds(FounderProfile{Age: 35, FounderType: "일반", Region: "대전", Stage: "재창업"})
		assert.Contains(t, fundNames(funds), "소상공인 새출발기금")
	})
}

func fundNames(funds []PolicyFund) []string {
	names := make([]string, 0, len(funds))
	for _, f := range funds {
		names = append(names, f.Name)
	}
	return names
}

func TestChecklistFallsBackToGeneric(t *testing.T) {
	t.Parallel()

	licenses, specific := Licenses("카페")
	assert.True(t, specific)
	assert.NotEmpty(t, licenses)

	licenses, specific = Licenses("세차장")
	assert.False(t, specific)
	require.NotEmpty(t, licenses)
	assert.Equal(t, "사업자등록", licenses[0].Name)

	assert.NotEmpty(t, Checklist("세차장"))
	assert.NotEmpty(t, AdminCosts("세차장"))
	assert.NotEmpty(t, ChecklistTips("세차장"))
}

func TestBudgetRecommendation(t *testing.T) {
	t.Parallel()

	types, _ := BudgetRecommendation(3000)
	assert.Contains(t, types, BizUnmanned)
	types, _ = BudgetRecommendation(8000)
	assert.Contains(t, types, BizCafe)
	types, _ = BudgetRecommendation(20000)
	assert.Contains(t, types, BizRestaurant)
}

func TestTrendRecommendation(t *testing.T) {
	t.Parallel()

	assert.Contains(t, TrendRecommendation(BizUnmanned), "고성장")
	assert.Contains(t, TrendRecommendation(BizPub), "감소")
	assert.NotEmpty(t, TrendRecommendation("세차장"))
}
