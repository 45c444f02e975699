package analysis

import (
	"context"
	"strconv"

	"github.com/sangkwonlab/sangkwon-cli/internal/cache"
	"github.com/sangkwonlab/sangkwon-cli/internal/estimate"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
	"github.com/sangkwonlab/sangkwon-cli/internal/scorer"
)

// PopulationRequest asks for the demographic picture of a location.
// BusinessType is optional; when present the report includes a
// target-customer fit score.
type PopulationRequest struct {
	Location     string `json:"location"`
	BusinessType string `json:"businessType,omitempty"`
	RadiusMeters int    `json:"radius,omitempty"`
}

// PopulationReport is the demographic estimate plus optional fit score.
type PopulationReport struct {
	Location string                      `json:"location"`
	AreaName string                      `json:"areaName,omitempty"`
	Coord    model.Coordinates           `json:"coord"`
	Estimate estimate.PopulationEstimate `json:"estimate"`
	Fit      *scorer.FitScore            `json:"fit,omitempty"`
	Notes    []string                    `json:"notes,omitempty"`
}

// AnalyzePopulation estimates who is around a location. Locations with a
// curated area profile get high-confidence figures; everything else is
// inferred from the area-type pattern, upgraded by live store counts when
// the registry is available. Only when neither the curated list nor
// geocoding can place the location does the operation fail.
func (s *Service) AnalyzePopulation(ctx context.Context, req PopulationRequest) model.Result[PopulationReport] {
	return run("analyze-population", func() model.Result[PopulationReport] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		radius := defaultRadius(req.RadiusMeters)
		key := cache.Key("analyze-population", req.Location, req.BusinessType, strconv.Itoa(radius))
		if v, ok := s.cache.Get(key); ok {
			hit := v.(PopulationReport)
			return cachedResult(hit, hit.Estimate.Source)
		}

		report := PopulationReport{Location: req.Location}

		profile, curated := refdata.FindArea(req.Location)
		if curated {
			report.AreaName = profile.Name
			report.Coord = profile.Coord

			records, hasLive := s.registryStores(ctx, profile.Coord, radius)
			report.Estimate = estimate.PopulationFromProfile(profile, len(records), hasLive)
		} else {
			coord, err := s.geocode(ctx, req.Location)
			if err != nil {
				return model.Fail[PopulationReport](model.CodeSearchFailed,
					"장소 검색 서비스 조회에 실패했습니다", "잠시 후 다시 시도해주세요")
			}
			if coord == nil {
				return model.Fail[PopulationReport](model.CodeLocationNotFound,
					"주요 상권 목록에 없고 좌표 조회도 실패한 위치입니다: "+req.Location,
					"'홍대입구', '강남역'처럼 널리 쓰이는 상권 이름으로 다시 시도해보세요")
			}
			report.Coord = *coord

			areaType := refdata.InferAreaType(req.Location)
			records, hasLive := s.registryStores(ctx, *coord, radius)
			report.Estimate = estimate.PopulationInferred(areaType, len(records), hasLive)
			report.Notes = append(report.Notes,
				"주요 상권 목록에 없는 위치라 상권 유형 기반 추정치입니다")
		}

		if req.BusinessType != "" {
			fit := scorer.ScoreFit(req.BusinessType, report.Estimate)
			report.Fit = &fit
			if refdata.NormalizeBusinessType(req.BusinessType) == "" {
				report.Notes = append(report.Notes,
					"등록되지 않은 업종이라 기본 타깃 기준으로 적합도를 평가했습니다")
			}
		}

		s.cache.Put(key, report, cache.TTLVeryLong)
		return model.OK(report, model.NewMeta(report.Estimate.Source))
	})
}
