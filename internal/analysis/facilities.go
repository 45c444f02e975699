package analysis

import (
	"context"
	"strconv"

	"github.com/sangkwonlab/sangkwon-cli/internal/cache"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
	"github.com/sangkwonlab/sangkwon-cli/internal/scorer"
)

// FacilityRequest asks for the infrastructure picture around a location.
type FacilityRequest struct {
	Location     string `json:"location"`
	RadiusMeters int    `json:"radius,omitempty"`
}

// FacilityReport lists nearby facility counts and the accessibility
// score derived from them.
type FacilityReport struct {
	Location     string                 `json:"location"`
	Coord        model.Coordinates      `json:"coord"`
	RadiusMeters int                    `json:"radius"`
	Facilities   []scorer.FacilityCount `json:"facilities"`
	Access       scorer.AccessScore     `json:"access"`
}

// FindNearbyFacilities probes every facility category around the
// location in parallel and scores accessibility. A failed probe counts
// as zero; only an unresolvable location fails the operation.
func (s *Service) FindNearbyFacilities(ctx context.Context, req FacilityRequest) model.Result[FacilityReport] {
	return run("nearby-facilities", func() model.Result[FacilityReport] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		radius := defaultRadius(req.RadiusMeters)
		key := cache.Key("nearby-facilities", req.Location, strconv.Itoa(radius))
		if v, ok := s.cache.Get(key); ok {
			return cachedResult(v.(FacilityReport), "kakao-local")
		}

		coord, err := s.geocode(ctx, req.Location)
		if err != nil {
			return model.Fail[FacilityReport](model.CodeFacilityFailed,
				"장소 검색 서비스 조회에 실패했습니다", "잠시 후 다시 시도해주세요")
		}
		if coord == nil {
			return locationNotFound[FacilityReport](req.Location)
		}

		facilities := s.categoryCounts(ctx, *coord, radius, refdata.FacilityCategories)

		report := FacilityReport{
			Location:     req.Location,
			Coord:        *coord,
			RadiusMeters: radius,
			Facilities:   facilities,
			Access:       scorer.ScoreAccess(facilities),
		}

		s.cache.Put(key, report, cache.TTLLong)
		return model.OK(report, model.NewMeta("kakao-local"))
	})
}
