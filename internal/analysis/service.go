// Package analysis orchestrates the consulting operations: it combines
// place search, the store registry, and the reference tables into scored
// reports, and wraps every outcome in the stable result envelope.
package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sangkwonlab/sangkwon-cli/internal/cache"
	"github.com/sangkwonlab/sangkwon-cli/internal/cost"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
	"github.com/sangkwonlab/sangkwon-cli/internal/scorer"
	"github.com/sangkwonlab/sangkwon-cli/pkg/bizinfo"
	"github.com/sangkwonlab/sangkwon-cli/pkg/kakao"
	"github.com/sangkwonlab/sangkwon-cli/pkg/semas"
)

const (
	defaultRadiusMeters = 500
	defaultOpTimeout    = 10 * time.Second
	defaultCacheSize    = 512
)

// Service runs the analysis operations. The place-search client is
// required; the store registry and grant feed are optional enrichments
// and their absence or failure never fails an operation.
type Service struct {
	places  kakao.Client
	stores  semas.Client
	grants  bizinfo.Client
	calc    *cost.Calculator
	cache   *cache.Cache
	timeout time.Duration
}

// Option configures the service.
type Option func(*Service)

// WithStoreRegistry attaches the regional store registry client.
func WithStoreRegistry(c semas.Client) Option {
	return func(s *Service) { s.stores = c }
}

// WithGrantFeed attaches the government support-listing feed client.
func WithGrantFeed(c bizinfo.Client) Option {
	return func(s *Service) { s.grants = c }
}

// WithCalculator overrides the cost calculator, e.g. with custom rates.
func WithCalculator(c *cost.Calculator) Option {
	return func(s *Service) { s.calc = c }
}

// WithCache overrides the result cache.
func WithCache(c *cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithTimeout sets the per-operation deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService creates a Service backed by the given place-search client.
func NewService(places kakao.Client, opts ...Option) *Service {
	s := &Service{
		places:  places,
		calc:    cost.NewCalculator(cost.DefaultRates()),
		cache:   cache.New(defaultCacheSize),
		timeout: defaultOpTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheStats exposes result-cache statistics for the status surfaces.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}

func (s *Service) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// run executes one operation with panic containment: a panic becomes an
// ANALYSIS_FAILED envelope instead of killing the server.
func run[T any](op string, fn func() model.Result[T]) (res model.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("analysis panic",
				zap.String("op", op),
				zap.Any("panic", r),
				zap.Stack("stack"))
			res = model.Fail[T](model.CodeAnalysisFailed,
				fmt.Sprintf("분석 중 내부 오류가 발생했습니다 (%s)", op),
				"잠시 후 다시 시도해주세요")
		}
	}()
	return fn()
}

func cachedResult[T any](data T, source string) model.Result[T] {
	res := model.OK(data, model.NewMeta(source))
	res.Meta.Cached = true
	return res
}

func defaultRadius(radius int) int {
	if radius <= 0 {
		return defaultRadiusMeters
	}
	return radius
}

func unknownBusinessType[T any](input string) model.Result[T] {
	return model.Fail[T](model.CodeUnknownBusinessType,
		fmt.Sprintf("등록되지 않은 업종입니다: %q", input),
		"지원 업종: "+strings.Join(refdata.ValidBusinessTypes, ", "))
}

func locationNotFound[T any](location string) model.Result[T] {
	return model.Fail[T](model.CodeLocationNotFound,
		fmt.Sprintf("위치를 찾을 수 없습니다: %q", location),
		"행정동 이름이나 '강남역'처럼 널리 쓰이는 지명으로 다시 시도해보세요")
}

// geocode resolves a location to coordinates through the cache. A nil
// result with nil error means the provider had no match.
func (s *Service) geocode(ctx context.Context, location string) (*model.Coordinates, error) {
	key := cache.Key("geocode", location)
	if v, ok := s.cache.Get(key); ok {
		coord := v.(model.Coordinates)
		return &coord, nil
	}

	coord, err := s.places.Coordinates(ctx, location)
	if err != nil || coord == nil {
		return coord, err
	}
	s.cache.Put(key, *coord, cache.TTLLong)
	return coord, nil
}

// categoryCounts probes the given categories around a point in parallel.
// A failed probe logs and counts as zero rather than failing the whole
// report.
func (s *Service) categoryCounts(ctx context.Context, center model.Coordinates, radius int, cats []refdata.FacilityCategory) []scorer.FacilityCount {
	counts := make([]scorer.FacilityCount, len(cats))
	g, ctx := errgroup.WithContext(ctx)
	for i, cat := range cats {
		counts[i].Name = cat.Name
		g.Go(func() error {
			n, err := s.probeCategory(ctx, cat, center, radius)
			if err != nil {
				zap.L().Warn("category probe failed",
					zap.String("category", cat.Name),
					zap.Error(err))
				return nil
			}
			counts[i].Count = n
			return nil
		})
	}
	_ = g.Wait()
	return counts
}

func (s *Service) probeCategory(ctx context.Context, cat refdata.FacilityCategory, center model.Coordinates, radius int) (int, error) {
	if cat.CategoryCode == "" {
		// No category group code exists; fall back to a keyword probe.
		_, total, err := s.places.SearchKeyword(ctx, cat.Name, kakao.SearchOptions{
			Center: &center, RadiusMeters: radius, Size: 1,
		})
		return total, err
	}
	return s.places.CountCategory(ctx, cat.CategoryCode, center, radius)
}

// sameTradeCount counts same-trade competitors around a point, walking
// the keyword list until one matches.
func (s *Service) sameTradeCount(ctx context.Context, businessType string, center model.Coordinates, radius int) (int, error) {
	var lastErr error
	for _, kw := range refdata.CompetitorKeywords(businessType) {
		_, total, err := s.places.SearchKeyword(ctx, kw, kakao.SearchOptions{
			Center: &center, RadiusMeters: radius, Size: 1,
		})
		if err != nil {
			lastErr = err
			continue
		}
		if total > 0 {
			return total, nil
		}
	}
	return 0, lastErr
}

// registryStores fetches the store registry around a point, caching
// listings by rounded coordinate so nearby lookups share one fetch. The
// boolean reports whether live data was obtained; absence of the client or
// a fetch failure both return false.
func (s *Service) registryStores(ctx context.Context, center model.Coordinates, radius int) ([]model.StoreRecord, bool) {
	if s.stores == nil {
		return nil, false
	}

	key := cache.Key("stores", cache.RoundCoord(center.Lat), cache.RoundCoord(center.Lng), strconv.Itoa(radius))
	if v, ok := s.cache.Get(key); ok {
		return v.([]model.StoreRecord), true
	}

	records, err := s.stores.StoresInRadius(ctx, center, radius)
	if err != nil {
		zap.L().Warn("store registry unavailable", zap.Error(err))
		return nil, false
	}
	s.cache.Put(key, records, cache.TTLMedium)
	return records, true
}
