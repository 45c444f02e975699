package analysis

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/cache"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
	"github.com/sangkwonlab/sangkwon-cli/internal/scorer"
	"github.com/sangkwonlab/sangkwon-cli/pkg/kakao"
)

const competitorListSize = 15

// CompetitorRequest asks for a same-trade competitor survey. Unlike the
// area analysis, BusinessType is required here and must be a supported
// type; there is no generic competitor search.
type CompetitorRequest struct {
	Location     string `json:"location"`
	BusinessType string `json:"businessType"`
	RadiusMeters int    `json:"radius,omitempty"`
	Detail       bool   `json:"detail,omitempty"`
}

// CompetitorReport is the competitor census around a location.
type CompetitorReport struct {
	Location         string            `json:"location"`
	Coord            model.Coordinates `json:"coord"`
	BusinessType     string            `json:"businessType"`
	RadiusMeters     int               `json:"radius"`
	TotalCount       int               `json:"totalCount"`
	FranchiseCount   int               `json:"franchiseCount"`
	IndependentCount int               `json:"independentCount"`
	FranchiseRatio   float64           `json:"franchiseRatio"`
	Saturation       scorer.Saturation `json:"saturation"`
	MarketGap        string            `json:"marketGap"`
	Nearest          *model.Place      `json:"nearest,omitempty"`
	Competitors      []model.Place     `json:"competitors,omitempty"`
	RegistryCount    int               `json:"registryCount,omitempty"`
}

// FindCompetitors surveys same-trade stores around a location: counts,
// franchise vs independent split, saturation, and a market-gap reading.
func (s *Service) FindCompetitors(ctx context.Context, req CompetitorRequest) model.Result[CompetitorReport] {
	return run("find-competitors", func() model.Result[CompetitorReport] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		bt := refdata.NormalizeBusinessType(req.BusinessType)
		if bt == "" {
			return unknownBusinessType[CompetitorReport](req.BusinessType)
		}

		radius := defaultRadius(req.RadiusMeters)
		key := cache.Key("find-competitors", req.Location, bt,
			strconv.Itoa(radius), strconv.FormatBool(req.Detail))
		if v, ok := s.cache.Get(key); ok {
			return cachedResult(v.(CompetitorReport), "kakao-local")
		}

		coord, err := s.geocode(ctx, req.Location)
		if err != nil {
			return model.Fail[CompetitorReport](model.CodeSearchFailed,
				"장소 검색 서비스 조회에 실패했습니다", "잠시 후 다시 시도해주세요")
		}
		if coord == nil {
			return locationNotFound[CompetitorReport](req.Location)
		}

		places, total, err := s.searchCompetitors(ctx, bt, *coord, radius)
		if err != nil {
			return model.Fail[CompetitorReport](model.CodeSearchFailed,
				"경쟁 업체 검색에 실패했습니다", "잠시 후 다시 시도해주세요")
		}

		report := CompetitorReport{
			Location:     req.Location,
			Coord:        *coord,
			BusinessType: bt,
			RadiusMeters: radius,
			TotalCount:   total,
			Saturation:   scorer.Saturate(bt, total),
		}

		// The franchise split is read off the fetched sample, which the
		// provider returns nearest-first.
		for _, p := range places {
			if refdata.IsFranchise(p.Name) {
				report.FranchiseCount++
			}
		}
		report.IndependentCount = len(places) - report.FranchiseCount
		if len(places) > 0 {
			report.FranchiseRatio = float64(report.FranchiseCount) / float64(len(places)) * 100
			report.Nearest = &places[0]
		}
		report.MarketGap = scorer.MarketGap(total, report.FranchiseRatio)

		if req.Detail {
			report.Competitors = places
		}

		src := "kakao-local"
		if records, ok := s.registryStores(ctx, *coord, radius); ok {
			for _, r := range records {
				if refdata.MatchesTrade(bt, r.SmallCategory) || refdata.MatchesTrade(bt, r.MediumCategory) {
					report.RegistryCount++
				}
			}
			src = "kakao-local+semas"
		}

		s.cache.Put(key, report, cache.TTLMedium)
		return model.OK(report, model.NewMeta(src))
	})
}

// searchCompetitors walks the keyword ladder for the type until a search
// returns matches, keeping the first non-empty page.
func (s *Service) searchCompetitors(ctx context.Context, businessType string, center model.Coordinates, radius int) ([]model.Place, int, error) {
	opts := kakao.SearchOptions{
		Center:       &center,
		RadiusMeters: radius,
		SortDistance: true,
		Size:         competitorListSize,
	}

	var lastErr error
	for _, kw := range refdata.CompetitorKeywords(businessType) {
		places, total, err := s.places.SearchKeyword(ctx, kw, opts)
		if err != nil {
			lastErr = err
			continue
		}
		if total > 0 {
			return places, total, nil
		}
	}
	if lastErr != nil {
		zap.L().Warn("competitor search exhausted keywords",
			zap.String("businessType", businessType), zap.Error(lastErr))
		return nil, 0, lastErr
	}
	return nil, 0, nil
}
