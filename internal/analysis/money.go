package analysis

import (
	"context"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/cache"
	"github.com/sangkwonlab/sangkwon-cli/internal/cost"
	"github.com/sangkwonlab/sangkwon-cli/internal/estimate"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// StartupCostRequest asks for a startup budget estimate.
type StartupCostRequest struct {
	BusinessType string  `json:"businessType"`
	Region       string  `json:"region,omitempty"`
	SizePyeong   float64 `json:"size,omitempty"`
	Grade        string  `json:"grade,omitempty"`
}

// CalculateStartupCost estimates the capital needed to open a store of
// the given type, size, and interior grade in a region.
func (s *Service) CalculateStartupCost(ctx context.Context, req StartupCostRequest) model.Result[cost.StartupCost] {
	return run("startup-cost", func() model.Result[cost.StartupCost] {
		bt := refdata.NormalizeBusinessType(req.BusinessType)
		if bt == "" {
			return unknownBusinessType[cost.StartupCost](req.BusinessType)
		}

		breakdown, err := s.calc.Startup(cost.StartupInput{
			BusinessType: bt,
			Region:       req.Region,
			SizePyeong:   req.SizePyeong,
			Grade:        req.Grade,
		})
		if err != nil {
			return model.Fail[cost.StartupCost](model.CodeCostFailed,
				"창업 비용 산정에 실패했습니다", "")
		}
		return model.OK(*breakdown, model.NewMeta("cost-model"))
	})
}

// BreakevenRequest asks for a breakeven analysis. Location is optional;
// when given and resolvable, live competition around it discounts the
// projected scenarios.
type BreakevenRequest struct {
	BusinessType string  `json:"businessType"`
	Region       string  `json:"region,omitempty"`
	Location     string  `json:"location,omitempty"`
	SizePyeong   float64 `json:"size,omitempty"`
	MonthlyRent  int     `json:"monthlyRent,omitempty"`
	AvgPrice     int     `json:"avgPrice,omitempty"`
}

// CompetitionContext is the live same-trade picture folded into a
// financial projection.
type CompetitionContext struct {
	Count      int     `json:"count"`
	Level      string  `json:"level"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// BreakevenReport is the breakeven analysis plus the inputs derived for
// it: the startup-cost estimate used as the payback investment, and the
// live competition discount when one was obtained.
type BreakevenReport struct {
	Breakeven   cost.Breakeven      `json:"breakeven"`
	Investment  int                 `json:"investment"` // 만원
	Competition *CompetitionContext `json:"competition,omitempty"`
	Notes       []string            `json:"notes,omitempty"`
}

// AnalyzeBreakeven computes the sales needed to cover fixed costs and the
// payback horizon, seeding the investment from the startup-cost model and
// discounting scenarios by live competition when a location is given.
func (s *Service) AnalyzeBreakeven(ctx context.Context, req BreakevenRequest) model.Result[BreakevenReport] {
	return run("breakeven", func() model.Result[BreakevenReport] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		bt := refdata.NormalizeBusinessType(req.BusinessType)
		if bt == "" {
			return unknownBusinessType[BreakevenReport](req.BusinessType)
		}

		report := BreakevenReport{}

		startup, err := s.calc.Startup(cost.StartupInput{
			BusinessType: bt, Region: req.Region, SizePyeong: req.SizePyeong,
		})
		if err != nil {
			return model.Fail[BreakevenReport](model.CodeBreakevenFailed,
				"손익분기 분석에 실패했습니다", "")
		}
		report.Investment = startup.Total.Estimated

		report.Competition = s.competitionAround(ctx, bt, req.Location)
		compMult := 0.0
		if report.Competition != nil {
			compMult = report.Competition.Multiplier
			report.Notes = append(report.Notes,
				"주변 동종 업체 수를 반영해 매출 시나리오를 보정했습니다")
		}

		be, err := s.calc.ComputeBreakeven(cost.BreakevenInput{
			BusinessType:          bt,
			Region:                req.Region,
			SizePyeong:            req.SizePyeong,
			MonthlyRent:           req.MonthlyRent,
			AvgPrice:              req.AvgPrice,
			Investment:            report.Investment,
			CompetitionMultiplier: compMult,
		})
		if err != nil {
			return model.Fail[BreakevenReport](model.CodeBreakevenFailed,
				"손익분기 분석에 실패했습니다", "")
		}
		report.Breakeven = *be

		return model.OK(report, model.NewMeta("cost-model"))
	})
}

// competitionAround resolves a location and classifies same-trade
// competition there. Any failure along the way returns nil; financial
// projections then run undiscounted.
func (s *Service) competitionAround(ctx context.Context, businessType, location string) *CompetitionContext {
	if location == "" || s.places == nil {
		return nil
	}
	coord, err := s.geocode(ctx, location)
	if err != nil || coord == nil {
		return nil
	}
	count, err := s.sameTradeCount(ctx, businessType, *coord, defaultRadiusMeters)
	if err != nil {
		zap.L().Warn("competition probe failed",
			zap.String("businessType", businessType), zap.Error(err))
		return nil
	}
	level := estimate.CompetitionLevel(count)
	return &CompetitionContext{
		Count:      count,
		Level:      level,
		Label:      estimate.CompetitionLabel(level),
		Multiplier: estimate.CompetitionMultiplier(level),
	}
}

// SimulateRequest asks for a revenue projection for a store setup.
type SimulateRequest struct {
	BusinessType string  `json:"businessType"`
	Location     string  `json:"location"`
	SizePyeong   float64 `json:"size,omitempty"`
	Staff        int     `json:"staff,omitempty"`
	HoursPerDay  float64 `json:"hours,omitempty"`
}

// SimulationReport is the revenue projection plus the live competition
// discount that was applied to it, when one was obtained.
type SimulationReport struct {
	Simulation  estimate.RevenueSimulation `json:"simulation"`
	Competition *CompetitionContext        `json:"competition,omitempty"`
}

// SimulateRevenue projects revenue by scaling the per-type baseline with
// region, size, staffing, and hours, then discounting for live
// competition around the location when it can be measured.
func (s *Service) SimulateRevenue(ctx context.Context, req SimulateRequest) model.Result[SimulationReport] {
	return run("simulate-revenue", func() model.Result[SimulationReport] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		bt := refdata.NormalizeBusinessType(req.BusinessType)
		if bt == "" {
			return unknownBusinessType[SimulationReport](req.BusinessType)
		}

		sim, err := estimate.Simulate(estimate.SimulationInput{
			BusinessType: bt,
			Region:       req.Location,
			SizePyeong:   req.SizePyeong,
			Staff:        req.Staff,
			HoursPerDay:  req.HoursPerDay,
		})
		if err != nil {
			return model.Fail[SimulationReport](model.CodeSimulationFailed,
				"매출 시뮬레이션에 실패했습니다", "")
		}

		report := SimulationReport{Simulation: *sim}
		if comp := s.competitionAround(ctx, bt, req.Location); comp != nil {
			report.Competition = comp
			scaleSimulation(&report.Simulation, comp.Multiplier)
		}

		return model.OK(report, model.NewMeta("revenue-model"))
	})
}

// scaleSimulation applies the competition discount across every revenue
// figure of a projection.
func scaleSimulation(sim *estimate.RevenueSimulation, mult float64) {
	scale := func(v int) int { return int(math.Round(float64(v) * mult)) }

	sim.DailySales = scale(sim.DailySales)
	sim.MonthlySales = scale(sim.MonthlySales)
	sim.YearlySales = scale(sim.YearlySales)
	sim.MonthlyProfit = scale(sim.MonthlyProfit)
	for season, v := range sim.Seasonal {
		sim.Seasonal[season] = scale(v)
	}
}

// RentRequest asks for a market rent estimate for a storefront.
type RentRequest struct {
	Location     string  `json:"location"`
	SizePyeong   float64 `json:"size,omitempty"`
	Floor        string  `json:"floor,omitempty"`
	BuildingType string  `json:"buildingType,omitempty"`
}

// EstimateRent prices a storefront from regional per-pyeong levels. The
// location is matched against region tables, so even unknown locations
// produce a provincial-baseline estimate with a note.
func (s *Service) EstimateRent(ctx context.Context, req RentRequest) model.Result[cost.RentEstimate] {
	return run("estimate-rent", func() model.Result[cost.RentEstimate] {
		key := cache.Key("estimate-rent", req.Location,
			strconv.FormatFloat(req.SizePyeong, 'f', -1, 64), req.Floor, req.BuildingType)
		if v, ok := s.cache.Get(key); ok {
			return cachedResult(v.(cost.RentEstimate), "rent-model")
		}

		est := s.calc.Rent(cost.RentInput{
			Region:       req.Location,
			SizePyeong:   req.SizePyeong,
			Floor:        req.Floor,
			BuildingType: req.BuildingType,
		})

		s.cache.Put(key, *est, cache.TTLVeryLong)
		return model.OK(*est, model.NewMeta("rent-model"))
	})
}
