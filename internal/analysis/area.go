package analysis

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/cache"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
	"github.com/sangkwonlab/sangkwon-cli/internal/scorer"
)

// AreaRequest asks for a commercial-area analysis around a location.
// BusinessType is optional free text; RadiusMeters defaults to 500.
type AreaRequest struct {
	Location     string `json:"location"`
	BusinessType string `json:"businessType,omitempty"`
	RadiusMeters int    `json:"radius,omitempty"`
}

// AreaReport is the commercial-area census and viability verdict.
type AreaReport struct {
	Location       string                 `json:"location"`
	Coord          model.Coordinates      `json:"coord"`
	RadiusMeters   int                    `json:"radius"`
	BusinessType   string                 `json:"businessType,omitempty"`
	Density        []scorer.FacilityCount `json:"density"`
	TotalStores    int                    `json:"totalStores"`
	Score          scorer.LocationScore   `json:"score"`
	RegistryStores int                    `json:"registryStores,omitempty"`
	Notes          []string               `json:"notes,omitempty"`
}

// AnalyzeArea runs the commercial-area analysis: a store census around
// the resolved point, same-trade saturation when a business type is
// given, and the combined viability score.
func (s *Service) AnalyzeArea(ctx context.Context, req AreaRequest) model.Result[AreaReport] {
	return run("analyze-area", func() model.Result[AreaReport] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		radius := defaultRadius(req.RadiusMeters)
		key := cache.Key("analyze-area", req.Location, req.BusinessType, strconv.Itoa(radius))
		if v, ok := s.cache.Get(key); ok {
			return cachedResult(v.(AreaReport), "kakao-local")
		}

		coord, err := s.geocode(ctx, req.Location)
		if err != nil {
			return model.Fail[AreaReport](model.CodeSearchFailed,
				"장소 검색 서비스 조회에 실패했습니다", "잠시 후 다시 시도해주세요")
		}
		if coord == nil {
			return locationNotFound[AreaReport](req.Location)
		}

		report, src := s.buildAreaReport(ctx, req.Location, req.BusinessType, *coord, radius)
		s.cache.Put(key, report, cache.TTLMedium)
		return model.OK(report, model.NewMeta(src))
	})
}

// buildAreaReport assembles the census and score for one resolved point.
// Shared by AnalyzeArea and CompareLocations.
func (s *Service) buildAreaReport(ctx context.Context, location, businessType string, coord model.Coordinates, radius int) (AreaReport, string) {
	density := s.categoryCounts(ctx, coord, radius, refdata.DensityCategories)

	total, categories := 0, 0
	for _, d := range density {
		total += d.Count
		if d.Count > 0 {
			categories++
		}
	}

	report := AreaReport{
		Location:     location,
		Coord:        coord,
		RadiusMeters: radius,
		Density:      density,
		TotalStores:  total,
	}

	// Same-trade saturation only applies when a business type was given.
	// An unrecognized type still gets scored, against the generic optimal
	// count, with a note.
	scoreKey := ""
	same := 0
	if businessType != "" {
		scoreKey = refdata.NormalizeBusinessType(businessType)
		if scoreKey == "" {
			scoreKey = businessType
			report.Notes = append(report.Notes,
				"등록되지 않은 업종이라 일반 기준으로 포화도를 평가했습니다")
		}
		report.BusinessType = scoreKey

		n, err := s.sameTradeCount(ctx, scoreKey, coord, radius)
		if err != nil {
			zap.L().Warn("same-trade count failed",
				zap.String("businessType", scoreKey), zap.Error(err))
			report.Notes = append(report.Notes,
				"동종 업체 수 조회에 실패해 경쟁 지표가 0으로 집계되었습니다")
		}
		same = n
	}
	report.Score = scorer.ScoreLocation(scoreKey, same, total, categories)

	src := "kakao-local"
	if records, ok := s.registryStores(ctx, coord, radius); ok {
		report.RegistryStores = len(records)
		src = "kakao-local+semas"
	}
	return report, src
}

// CompareRequest asks for a ranked comparison of candidate locations.
type CompareRequest struct {
	Locations    []string `json:"locations"`
	BusinessType string   `json:"businessType,omitempty"`
	RadiusMeters int      `json:"radius,omitempty"`
}

// SkippedLocation records a candidate that could not be analyzed.
type SkippedLocation struct {
	Location string `json:"location"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// Comparison ranks the candidates that could be analyzed and lists the
// rest with the reason they were skipped.
type Comparison struct {
	Ranking scorer.Ranking    `json:"ranking"`
	Reports []AreaReport      `json:"reports"`
	Skipped []SkippedLocation `json:"skipped,omitempty"`
}

// CompareLocations analyzes each candidate independently and ranks the
// survivors. One bad location does not fail the comparison; only when
// every candidate fails does the operation error.
func (s *Service) CompareLocations(ctx context.Context, req CompareRequest) model.Result[Comparison] {
	return run("compare-locations", func() model.Result[Comparison] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		radius := defaultRadius(req.RadiusMeters)
		var cmp Comparison
		var candidates []scorer.Candidate

		for _, location := range req.Locations {
			coord, err := s.geocode(ctx, location)
			if err != nil {
				cmp.Skipped = append(cmp.Skipped, SkippedLocation{
					Location: location,
					Code:     model.CodeSearchFailed,
					Message:  "장소 검색 서비스 조회에 실패했습니다",
				})
				continue
			}
			if coord == nil {
				cmp.Skipped = append(cmp.Skipped, SkippedLocation{
					Location: location,
					Code:     model.CodeLocationNotFound,
					Message:  "위치를 찾을 수 없습니다",
				})
				continue
			}

			report, _ := s.buildAreaReport(ctx, location, req.BusinessType, *coord, radius)
			cmp.Reports = append(cmp.Reports, report)
			candidates = append(candidates, scorer.Candidate{
				Location: location,
				Score:    report.Score,
			})
		}

		if len(candidates) == 0 {
			return model.Fail[Comparison](model.CodeNoValidLocations,
				"비교할 수 있는 위치가 없습니다",
				"위치 이름을 확인하고 다시 시도해주세요")
		}

		cmp.Ranking = scorer.Rank(candidates)
		return model.OK(cmp, model.NewMeta("kakao-local"))
	})
}
