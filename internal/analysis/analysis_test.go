package analysis

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkwonlab/sangkwon-cli/internal/estimate"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/scorer"
	"github.com/sangkwonlab/sangkwon-cli/pkg/kakao"
)

var gangnam = model.Coordinates{Lat: 37.498095, Lng: 127.02761}

// fakePlaces is a canned kakao.Client. Counts are keyed by category code
// and keyword totals by query string, regardless of search center.
type fakePlaces struct {
	coords        map[string]*model.Coordinates
	geocodeErr    error
	counts        map[string]int
	countErr      map[string]error
	keywordTotals map[string]int
	keywordPlaces map[string][]model.Place
	keywordErr    error
}

func (f *fakePlaces) Coordinates(_ context.Context, location string) (*model.Coordinates, error) {
	if f.geocodeErr != nil {
		return nil, f.geocodeErr
	}
	return f.coords[location], nil
}

func (f *fakePlaces) SearchKeyword(_ context.Context, query string, _ kakao.SearchOptions) ([]model.Place, int, error) {
	if f.keywordErr != nil {
		return nil, 0, f.keywordErr
	}
	return f.keywordPlaces[query], f.keywordTotals[query], nil
}

func (f *fakePlaces) CountCategory(_ context.Context, code string, _ model.Coordinates, _ int) (int, error) {
	if err := f.countErr[code]; err != nil {
		return 0, err
	}
	return f.counts[code], nil
}

func (f *fakePlaces) SearchCategory(_ context.Context, code string, _ model.Coordinates, _ int) ([]model.Place, int, error) {
	return nil, f.counts[code], nil
}

type fakeStores struct {
	records []model.StoreRecord
	err     error
	calls   int
}

func (f *fakeStores) StoresInRadius(context.Context, model.Coordinates, int) ([]model.StoreRecord, error) {
	f.calls++
	return f.records, f.err
}

type fakeGrants struct {
	grants []model.Grant
	err    error
}

func (f *fakeGrants) ListGrants(context.Context, string, int) ([]model.Grant, error) {
	return f.grants, f.err
}

// panicPlaces blows up on any call, to exercise panic containment.
type panicPlaces struct{ fakePlaces }

func (p *panicPlaces) Coordinates(context.Context, string) (*model.Coordinates, error) {
	panic("boom")
}

func densityPlaces() *fakePlaces {
	return &fakePlaces{
		coords: map[string]*model.Coordinates{"강남역": &gangnam},
		counts: map[string]int{"FD6": 30, "CE7": 20, "CS2": 10, "MT1": 5},
		keywordTotals: map[string]int{
			"커피": 4,
		},
	}
}

func TestAnalyzeArea(t *testing.T) {
	t.Parallel()
	s := NewService(densityPlaces())

	res := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역", BusinessType: "카페"})
	require.True(t, res.Success)
	require.NotNil(t, res.Data)

	assert.Equal(t, 500, res.Data.RadiusMeters)
	assert.Equal(t, 65, res.Data.TotalStores)
	assert.Equal(t, "카페", res.Data.BusinessType)
	assert.Len(t, res.Data.Density, 4)

	// saturation 24 + activity 5 + competition 20 + diversity 12.
	assert.Equal(t, 61, res.Data.Score.Total)
	assert.Equal(t, scorer.TierNeutral, res.Data.Score.Tier)
	assert.Equal(t, scorer.SaturationMedium, res.Data.Score.Saturation.Level)
	assert.Equal(t, 4, res.Data.Score.SameCount)
}

func TestAnalyzeArea_LocationNotFound(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.AnalyzeArea(context.Background(), AreaRequest{Location: "실재하지않는곳"})
	require.False(t, res.Success)
	assert.Equal(t, model.CodeLocationNotFound, res.Error.Code)
	assert.NotEmpty(t, res.Error.Suggestion)
}

func TestAnalyzeArea_GeocodeError(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{geocodeErr: errors.New("provider down")})

	res := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역"})
	require.False(t, res.Success)
	assert.Equal(t, model.CodeSearchFailed, res.Error.Code)
}

func TestAnalyzeArea_PartialProbeFailure(t *testing.T) {
	t.Parallel()
	places := densityPlaces()
	places.countErr = map[string]error{"CE7": errors.New("rate limited")}
	s := NewService(places)

	res := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역"})
	require.True(t, res.Success)

	// The failed category counts as zero instead of failing the report.
	assert.Equal(t, 45, res.Data.TotalStores)
}

func TestAnalyzeArea_Cached(t *testing.T) {
	t.Parallel()
	s := NewService(densityPlaces())
	req := AreaRequest{Location: "강남역", BusinessType: "카페"}

	first := s.AnalyzeArea(context.Background(), req)
	require.True(t, first.Success)
	assert.False(t, first.Meta.Cached)

	second := s.AnalyzeArea(context.Background(), req)
	require.True(t, second.Success)
	assert.True(t, second.Meta.Cached)
	assert.Equal(t, first.Data.Score.Total, second.Data.Score.Total)
}

func TestAnalyzeArea_RegistryEnrichment(t *testing.T) {
	t.Parallel()
	registry := &fakeStores{records: make([]model.StoreRecord, 3)}
	s := NewService(densityPlaces(), WithStoreRegistry(registry))

	res := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역"})
	require.True(t, res.Success)
	assert.Equal(t, 3, res.Data.RegistryStores)
	assert.Equal(t, "kakao-local+semas", res.Meta.Source)
}

func TestAnalyzeArea_RegistryListingsAreCached(t *testing.T) {
	t.Parallel()
	registry := &fakeStores{records: make([]model.StoreRecord, 3)}
	s := NewService(densityPlaces(), WithStoreRegistry(registry))

	// Different business types miss the report cache but share the same
	// rounded coordinates, so the registry is fetched once.
	first := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역", BusinessType: "카페"})
	require.True(t, first.Success)
	second := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역", BusinessType: "치킨"})
	require.True(t, second.Success)

	assert.Equal(t, 3, second.Data.RegistryStores)
	assert.Equal(t, 1, registry.calls)
}

func TestAnalyzeArea_RegistryFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	registry := &fakeStores{err: errors.New("registry down")}
	s := NewService(densityPlaces(), WithStoreRegistry(registry))

	res := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역"})
	require.True(t, res.Success)
	assert.Zero(t, res.Data.RegistryStores)
	assert.Equal(t, "kakao-local", res.Meta.Source)
}

func TestAnalyzeArea_PanicBecomesEnvelope(t *testing.T) {
	t.Parallel()
	s := NewService(&panicPlaces{})

	res := s.AnalyzeArea(context.Background(), AreaRequest{Location: "강남역"})
	require.False(t, res.Success)
	assert.Equal(t, model.CodeAnalysisFailed, res.Error.Code)
}

func TestCompareLocations(t *testing.T) {
	t.Parallel()
	hongdae := model.Coordinates{Lat: 37.557527, Lng: 126.9244669}
	places := densityPlaces()
	places.coords["홍대입구"] = &hongdae
	s := NewService(places)

	res := s.CompareLocations(context.Background(), CompareRequest{
		Locations:    []string{"강남역", "홍대입구", "실재하지않는곳"},
		BusinessType: "카페",
	})
	require.True(t, res.Success)

	assert.Len(t, res.Data.Ranking.Candidates, 2)
	assert.Len(t, res.Data.Reports, 2)
	require.Len(t, res.Data.Skipped, 1)
	assert.Equal(t, "실재하지않는곳", res.Data.Skipped[0].Location)
	assert.Equal(t, model.CodeLocationNotFound, res.Data.Skipped[0].Code)

	// Equal scores keep input order, so the first candidate wins the tie.
	assert.Equal(t, "강남역", res.Data.Ranking.Best)
	assert.Equal(t, 1, res.Data.Ranking.Candidates[0].Rank)

	// Neither candidate reaches the recommended tier, so the best pick is
	// flagged as a least-bad choice.
	assert.True(t, res.Data.Ranking.AllSaturated)
}

func TestCompareLocations_NoneValid(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.CompareLocations(context.Background(), CompareRequest{
		Locations: []string{"여기", "저기"},
	})
	require.False(t, res.Success)
	assert.Equal(t, model.CodeNoValidLocations, res.Error.Code)

	empty := s.CompareLocations(context.Background(), CompareRequest{})
	require.False(t, empty.Success)
	assert.Equal(t, model.CodeNoValidLocations, empty.Error.Code)
}

func TestFindCompetitors_UnknownType(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.FindCompetitors(context.Background(), CompetitorRequest{
		Location: "강남역", BusinessType: "세차장",
	})
	require.False(t, res.Success)
	assert.Equal(t, model.CodeUnknownBusinessType, res.Error.Code)
	assert.Contains(t, res.Error.Suggestion, "카페")
}

func TestFindCompetitors(t *testing.T) {
	t.Parallel()
	places := densityPlaces()
	places.keywordTotals["커피"] = 8
	places.keywordPlaces = map[string][]model.Place{
		"커피": {
			{Name: "스타벅스 강남점", Distance: 50},
			{Name: "골목다방", Distance: 120},
		},
	}
	s := NewService(places)

	res := s.FindCompetitors(context.Background(), CompetitorRequest{
		Location: "강남역", BusinessType: "카페",
	})
	require.True(t, res.Success)

	assert.Equal(t, 8, res.Data.TotalCount)
	assert.Equal(t, 1, res.Data.FranchiseCount)
	assert.Equal(t, 1, res.Data.IndependentCount)
	assert.InDelta(t, 50.0, res.Data.FranchiseRatio, 1e-9)
	require.NotNil(t, res.Data.Nearest)
	assert.Equal(t, "스타벅스 강남점", res.Data.Nearest.Name)
	assert.Equal(t, scorer.SaturationSaturated, res.Data.Saturation.Level)
	assert.NotEmpty(t, res.Data.MarketGap)

	// The full listing only comes back when detail was requested.
	assert.Empty(t, res.Data.Competitors)

	detail := s.FindCompetitors(context.Background(), CompetitorRequest{
		Location: "강남역", BusinessType: "카페", Detail: true,
	})
	require.True(t, detail.Success)
	assert.Len(t, detail.Data.Competitors, 2)
}

func TestFindCompetitors_KeywordFallback(t *testing.T) {
	t.Parallel()
	places := densityPlaces()
	places.keywordTotals = map[string]int{"커피": 0, "카페": 6}
	s := NewService(places)

	res := s.FindCompetitors(context.Background(), CompetitorRequest{
		Location: "강남역", BusinessType: "카페",
	})
	require.True(t, res.Success)
	assert.Equal(t, 6, res.Data.TotalCount)
}

func TestAnalyzePopulation_Curated(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.AnalyzePopulation(context.Background(), PopulationRequest{Location: "강남역"})
	require.True(t, res.Success)

	assert.Equal(t, "강남역", res.Data.AreaName)
	assert.Equal(t, 180000, res.Data.Estimate.Total)
	assert.Equal(t, model.ConfidenceMedium, res.Data.Estimate.Confidence)
	assert.Equal(t, "curated-profile", res.Data.Estimate.Source)
	assert.Equal(t, "curated-profile", res.Meta.Source)
}

func TestAnalyzePopulation_CuratedWithRegistry(t *testing.T) {
	t.Parallel()
	registry := &fakeStores{records: make([]model.StoreRecord, 100)}
	s := NewService(&fakePlaces{}, WithStoreRegistry(registry))

	res := s.AnalyzePopulation(context.Background(), PopulationRequest{Location: "강남역"})
	require.True(t, res.Success)

	// 0.7 * 180000 + 0.3 * (100 stores * 130/store) = 129900.
	assert.Equal(t, 129900, res.Data.Estimate.Total)
	assert.Equal(t, "curated-profile+store-registry", res.Data.Estimate.Source)
	assert.Equal(t, model.ConfidenceHigh, res.Data.Estimate.Confidence)
}

func TestAnalyzePopulation_Inferred(t *testing.T) {
	t.Parallel()
	coord := model.Coordinates{Lat: 36.5, Lng: 127.5}
	places := &fakePlaces{coords: map[string]*model.Coordinates{"외딴동네": &coord}}

	t.Run("pattern only", func(t *testing.T) {
		t.Parallel()
		s := NewService(places)
		res := s.AnalyzePopulation(context.Background(), PopulationRequest{Location: "외딴동네"})
		require.True(t, res.Success)

		assert.Equal(t, "주거지역", res.Data.Estimate.AreaType)
		assert.Equal(t, model.ConfidenceLow, res.Data.Estimate.Confidence)
		assert.Equal(t, "area-type-pattern", res.Data.Estimate.Source)
		assert.NotEmpty(t, res.Data.Notes)
	})

	t.Run("registry upgrades confidence", func(t *testing.T) {
		t.Parallel()
		registry := &fakeStores{records: make([]model.StoreRecord, 50)}
		s := NewService(places, WithStoreRegistry(registry))
		res := s.AnalyzePopulation(context.Background(), PopulationRequest{Location: "외딴동네"})
		require.True(t, res.Success)

		// 50 stores * 80 people/store in a residential area.
		assert.Equal(t, 4000, res.Data.Estimate.Total)
		assert.Equal(t, model.ConfidenceMedium, res.Data.Estimate.Confidence)
		assert.Equal(t, "store-registry", res.Data.Estimate.Source)
	})
}

func TestAnalyzePopulation_NotFound(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.AnalyzePopulation(context.Background(), PopulationRequest{Location: "실재하지않는곳"})
	require.False(t, res.Success)
	assert.Equal(t, model.CodeLocationNotFound, res.Error.Code)
}

func TestAnalyzePopulation_Fit(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.AnalyzePopulation(context.Background(), PopulationRequest{
		Location: "홍대입구", BusinessType: "카페",
	})
	require.True(t, res.Success)
	require.NotNil(t, res.Data.Fit)
	assert.GreaterOrEqual(t, res.Data.Fit.Total, 0)
	assert.LessOrEqual(t, res.Data.Fit.Total, 100)

	unknown := s.AnalyzePopulation(context.Background(), PopulationRequest{
		Location: "홍대입구", BusinessType: "세차장",
	})
	require.True(t, unknown.Success)
	require.NotNil(t, unknown.Data.Fit)
	assert.NotEmpty(t, unknown.Data.Notes)
}

func TestCalculateStartupCost(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.CalculateStartupCost(context.Background(), StartupCostRequest{
		BusinessType: "카페", Region: "서울",
	})
	require.True(t, res.Success)
	assert.Positive(t, res.Data.Total.Estimated)
	assert.LessOrEqual(t, res.Data.Total.Min, res.Data.Total.Max)

	unknown := s.CalculateStartupCost(context.Background(), StartupCostRequest{BusinessType: "세차장"})
	require.False(t, unknown.Success)
	assert.Equal(t, model.CodeUnknownBusinessType, unknown.Error.Code)
}

func TestAnalyzeBreakeven(t *testing.T) {
	t.Parallel()
	places := densityPlaces()
	places.keywordTotals["커피"] = 3
	s := NewService(places)

	res := s.AnalyzeBreakeven(context.Background(), BreakevenRequest{
		BusinessType: "카페", Region: "서울", Location: "강남역",
	})
	require.True(t, res.Success)

	assert.Positive(t, res.Data.Investment)
	assert.Positive(t, res.Data.Breakeven.MonthlySales)
	require.NotNil(t, res.Data.Competition)
	assert.Equal(t, estimate.CompetitionLow, res.Data.Competition.Level)
	assert.InDelta(t, 1.15, res.Data.Competition.Multiplier, 1e-9)
	assert.NotEmpty(t, res.Data.Notes)

	noLocation := s.AnalyzeBreakeven(context.Background(), BreakevenRequest{
		BusinessType: "카페", Region: "서울",
	})
	require.True(t, noLocation.Success)
	assert.Nil(t, noLocation.Data.Competition)

	unknown := s.AnalyzeBreakeven(context.Background(), BreakevenRequest{BusinessType: "세차장"})
	require.False(t, unknown.Success)
	assert.Equal(t, model.CodeUnknownBusinessType, unknown.Error.Code)
}

func TestSimulateRevenue(t *testing.T) {
	t.Parallel()
	places := densityPlaces()
	places.keywordTotals["커피"] = 3
	s := NewService(places)

	res := s.SimulateRevenue(context.Background(), SimulateRequest{
		BusinessType: "카페", Location: "강남역",
	})
	require.True(t, res.Success)
	require.NotNil(t, res.Data.Competition)
	assert.InDelta(t, 1.15, res.Data.Competition.Multiplier, 1e-9)

	base, err := estimate.Simulate(estimate.SimulationInput{BusinessType: "카페", Region: "강남역"})
	require.NoError(t, err)
	want := int(math.Round(float64(base.MonthlySales) * 1.15))
	assert.Equal(t, want, res.Data.Simulation.MonthlySales)

	unknown := s.SimulateRevenue(context.Background(), SimulateRequest{
		BusinessType: "세차장", Location: "강남역",
	})
	require.False(t, unknown.Success)
	assert.Equal(t, model.CodeUnknownBusinessType, unknown.Error.Code)
}

func TestSimulateRevenue_UnresolvableLocationStillProjects(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.SimulateRevenue(context.Background(), SimulateRequest{
		BusinessType: "카페", Location: "어딘가읍내",
	})
	require.True(t, res.Success)
	assert.Nil(t, res.Data.Competition)
	assert.Positive(t, res.Data.Simulation.MonthlySales)
	assert.Equal(t, model.ConfidenceLow, res.Data.Simulation.Confidence)
}

func TestEstimateRent(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.EstimateRent(context.Background(), RentRequest{Location: "강남", SizePyeong: 10})
	require.True(t, res.Success)
	assert.Equal(t, "서울 강남", res.Data.Region)
	assert.Positive(t, res.Data.TotalMonthly)

	again := s.EstimateRent(context.Background(), RentRequest{Location: "강남", SizePyeong: 10})
	require.True(t, again.Success)
	assert.True(t, again.Meta.Cached)
}

func TestRecommendPolicyFunds(t *testing.T) {
	t.Parallel()

	t.Run("profile matching", func(t *testing.T) {
		t.Parallel()
		s := NewService(&fakePlaces{})
		res := s.RecommendPolicyFunds(context.Background(), FundRequest{
			Age: 29, Gender: "여성", Region: "서울",
		})
		require.True(t, res.Success)

		var got []string
		for _, f := range res.Data.Funds {
			got = append(got, f.Name)
		}
		assert.Contains(t, got, "청년창업사관학교")
		assert.Contains(t, got, "여성창업경진대회")
		assert.Contains(t, got, "서울시 청년창업지원")
		assert.NotContains(t, got, "신사업창업사관학교")
		assert.NotEmpty(t, res.Data.Tips)
	})

	t.Run("live feed appended", func(t *testing.T) {
		t.Parallel()
		feed := &fakeGrants{grants: []model.Grant{{Title: "스마트상점 지원"}, {Title: "청년몰 입점"}}}
		s := NewService(&fakePlaces{}, WithGrantFeed(feed))
		res := s.RecommendPolicyFunds(context.Background(), FundRequest{})
		require.True(t, res.Success)
		assert.Len(t, res.Data.LiveListings, 2)
		assert.Equal(t, "fund-catalog+bizinfo", res.Meta.Source)
	})

	t.Run("feed failure is not fatal", func(t *testing.T) {
		t.Parallel()
		feed := &fakeGrants{err: errors.New("feed down")}
		s := NewService(&fakePlaces{}, WithGrantFeed(feed))
		res := s.RecommendPolicyFunds(context.Background(), FundRequest{})
		require.True(t, res.Success)
		assert.Empty(t, res.Data.LiveListings)
		assert.NotEmpty(t, res.Data.Notes)
	})
}

func TestFindNearbyFacilities(t *testing.T) {
	t.Parallel()
	places := &fakePlaces{
		coords: map[string]*model.Coordinates{"강남역": &gangnam},
		counts: map[string]int{
			"SW8": 1, "BK9": 1, "PK6": 2, "HP8": 1, "PM9": 1,
			"CS2": 3, "MT1": 1, "SC4": 1, "PO3": 1,
		},
		keywordTotals: map[string]int{"버스정류장": 4},
	}
	s := NewService(places)

	res := s.FindNearbyFacilities(context.Background(), FacilityRequest{Location: "강남역"})
	require.True(t, res.Success)

	require.Len(t, res.Data.Facilities, 10)
	assert.Equal(t, "지하철역", res.Data.Facilities[0].Name)

	// 30+15+10+6+5+5+6+3+3+3.
	assert.Equal(t, 86, res.Data.Access.Total)
	assert.Equal(t, scorer.AccessExcellent, res.Data.Access.Level)
}

func TestFindNearbyFacilities_NotFound(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.FindNearbyFacilities(context.Background(), FacilityRequest{Location: "실재하지않는곳"})
	require.False(t, res.Success)
	assert.Equal(t, model.CodeLocationNotFound, res.Error.Code)
}

func TestGetBusinessTrends(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.GetBusinessTrends(context.Background(), TrendRequest{})
	require.True(t, res.Success)
	assert.Len(t, res.Data.Rising, 6)
	assert.Len(t, res.Data.Declining, 5)
	assert.NotEmpty(t, res.Data.Insights)
	assert.Nil(t, res.Data.Regional)

	regional := s.GetBusinessTrends(context.Background(), TrendRequest{Region: "서울", BusinessType: "무인카페"})
	require.True(t, regional.Success)
	require.NotNil(t, regional.Data.Regional)
	assert.Contains(t, regional.Data.Recommendation, "고성장")

	budget := s.GetBusinessTrends(context.Background(), TrendRequest{Budget: 4000})
	require.True(t, budget.Success)
	assert.Contains(t, budget.Data.BudgetTypes, "무인매장")
}

func TestGetStartupChecklist(t *testing.T) {
	t.Parallel()
	s := NewService(&fakePlaces{})

	res := s.GetStartupChecklist(context.Background(), ChecklistRequest{BusinessType: "카페"})
	require.True(t, res.Success)
	assert.Equal(t, "카페", res.Data.BusinessType)
	assert.True(t, res.Data.TypeSpecific)
	assert.NotEmpty(t, res.Data.Licenses)
	assert.NotEmpty(t, res.Data.Steps)
	assert.NotEmpty(t, res.Data.AdminCosts)
	assert.Empty(t, res.Data.Notes)

	generic := s.GetStartupChecklist(context.Background(), ChecklistRequest{BusinessType: "세차장"})
	require.True(t, generic.Success)
	assert.False(t, generic.Data.TypeSpecific)
	assert.NotEmpty(t, generic.Data.Steps)
	assert.NotEmpty(t, generic.Data.Notes)
}
