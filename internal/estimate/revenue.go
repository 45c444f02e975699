package estimate

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// Reference store the revenue baselines are calibrated against.
const (
	referenceSizePyeong = 15.0
	referenceStaff      = 1
	referenceHours      = 12.0

	// Each staff member beyond the first adds 30% capacity.
	staffCapacityStep = 0.3

	// Operating days per month used for monthly projection.
	operatingDaysPerMonth = 26
)

// SimulationInput describes the store to simulate. BusinessType must be a
// canonical key; Region is free text.
type SimulationInput struct {
	BusinessType string
	Region       string
	SizePyeong   float64
	Staff        int
	HoursPerDay  float64
}

// RevenueSimulation is a monthly revenue projection for one store setup.
type RevenueSimulation struct {
	DailySales     int                   `json:"dailySales"`   // 만원
	MonthlySales   int                   `json:"monthlySales"` // 만원
	YearlySales    int                   `json:"yearlySales"`  // 만원
	DailyCustomers int                   `json:"dailyCustomers"`
	MonthlyProfit  int                   `json:"monthlyProfit"` // 만원
	MarginRate     float64               `json:"marginRate"`
	Seasonal       map[string]int        `json:"seasonal"` // 만원 by season
	Region         string                `json:"region"`
	RegionNote     string                `json:"regionNote,omitempty"`
	Confidence     model.ConfidenceLevel `json:"confidence"`
}

// Simulate projects revenue for a store setup by scaling the per-type
// baseline with region, size, staffing, and operating hours.
func Simulate(in SimulationInput) (*RevenueSimulation, error) {
	baseline, ok := refdata.Baseline(in.BusinessType)
	if !ok {
		return nil, eris.Errorf("estimate: no revenue baseline for %q", in.BusinessType)
	}

	size := in.SizePyeong
	if size <= 0 {
		size = referenceSizePyeong
	}
	staff := in.Staff
	if staff < referenceStaff {
		staff = referenceStaff
	}
	hours := in.HoursPerDay
	if hours <= 0 {
		hours = referenceHours
	}

	region := refdata.NormalizeRegion(in.Region)
	info, _ := refdata.RegionMultiplier(region)
	confidence := model.ConfidenceMedium
	if region == refdata.RegionProvince {
		confidence = model.ConfidenceLow
	}

	sizeMult := math.Sqrt(size / referenceSizePyeong)
	staffMult := 1 + float64(staff-referenceStaff)*staffCapacityStep
	totalMult := info.Multiplier * sizeMult * staffMult * (hours / referenceHours)

	daily := round(float64(baseline.Avg) * totalMult)
	monthly := daily * operatingDaysPerMonth
	margin := refdata.MarginRate(in.BusinessType)
	factors := refdata.Seasonality(in.BusinessType)

	return &RevenueSimulation{
		DailySales:     daily,
		MonthlySales:   monthly,
		YearlySales:    monthly * 12,
		DailyCustomers: round(float64(baseline.AvgCustomers) * sizeMult * staffMult),
		MonthlyProfit:  round(float64(monthly) * margin),
		MarginRate:     margin,
		Seasonal: map[string]int{
			"봄":  round(float64(monthly) * factors.Spring),
			"여름": round(float64(monthly) * factors.Summer),
			"가을": round(float64(monthly) * factors.Fall),
			"겨울": round(float64(monthly) * factors.Winter),
		},
		Region:     region,
		RegionNote: info.Note,
		Confidence: confidence,
	}, nil
}
