package cost

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// Calculator runs the cost models with a fixed set of rate assumptions.
type Calculator struct {
	rates Rates
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// StartupInput describes the planned store. BusinessType must be canonical;
// Region is free text. Grade selects the interior finish level.
type StartupInput struct {
	BusinessType string
	Region       string
	SizePyeong   float64
	Grade        string
}

// StartupCost is the full startup budget breakdown, in 만원.
type StartupCost struct {
	Deposit       model.Range    `json:"deposit"`
	Interior      int            `json:"interior"`
	InteriorGrade string         `json:"interiorGrade"`
	Equipment     model.Range    `json:"equipment"`
	Inventory     model.Range    `json:"inventory"`
	OperatingFund int            `json:"operatingFund"`
	Other         int            `json:"other"`
	Total         model.Range    `json:"total"`
	Region        string         `json:"region"`
	RegionNote    string         `json:"regionNote,omitempty"`
	SavingTips    []string       `json:"savingTips"`
	Assumptions   map[string]any `json:"assumptions,omitempty"`
}

// Startup estimates the capital needed to open a store. Regional pricing
// scales the location-bound components (deposit, interior, operating fund);
// equipment and inventory are priced nationally.
func (c *Calculator) Startup(in StartupInput) (*StartupCost, error) {
	profile, ok := refdata.CostProfileFor(in.BusinessType)
	if !ok {
		return nil, eris.Errorf("cost: no cost profile for %q", in.BusinessType)
	}

	size := in.SizePyeong
	if size <= 0 {
		size = 15
	}
	grade := in.Grade
	if _, ok := profile.InteriorPerPyeong[grade]; !ok {
		grade = refdata.GradeStandard
	}

	region := refdata.NormalizeRegion(in.Region)
	info, _ := refdata.RegionMultiplier(region)
	mult := info.Multiplier

	interior := round(float64(profile.InteriorPerPyeong[grade]) * size * mult)
	depositMin := round(float64(profile.Deposit.Min) * mult)
	depositMax := round(float64(profile.Deposit.Max) * mult)
	deposit := model.Range{Min: depositMin, Max: depositMax, Estimated: (depositMin + depositMax) / 2}

	equipment := withEstimate(profile.Equipment)
	inventory := withEstimate(profile.Inventory)

	monthlyOperating := float64(profile.MonthlyOperating) * mult
	operatingFund := round(monthlyOperating * float64(c.rates.OperatingFundMonths))

	subtotal := float64(deposit.Estimated+interior+equipment.Estimated+inventory.Estimated) + float64(operatingFund)
	other := round(subtotal * c.rates.OtherRate)

	total := model.Range{
		Min: round(float64(depositMin) + float64(interior)*c.rates.InteriorMinFactor +
			float64(profile.Equipment.Min+profile.Inventory.Min) +
			monthlyOperating*float64(c.rates.OperatingMinMonths) +
			float64(other)*c.rates.OtherMinFactor),
		Max: round(float64(depositMax) + float64(interior)*c.rates.InteriorMaxFactor +
			float64(profile.Equipment.Max+profile.Inventory.Max) +
			monthlyOperating*float64(c.rates.OperatingMaxMonths) +
			float64(other)*c.rates.OtherMaxFactor),
		Estimated: round(subtotal + float64(other)),
	}

	return &StartupCost{
		Deposit:       deposit,
		Interior:      interior,
		InteriorGrade: refdata.GradeLabel(grade),
		Equipment:     equipment,
		Inventory:     inventory,
		OperatingFund: operatingFund,
		Other:         other,
		Total:         total,
		Region:        region,
		RegionNote:    info.Note,
		SavingTips:    refdata.CostSavingTips(in.BusinessType),
		Assumptions: map[string]any{
			"sizePyeong":       size,
			"regionMultiplier": mult,
		},
	}, nil
}

func withEstimate(r model.Range) model.Range {
	r.Estimated = (r.Min + r.Max) / 2
	return r
}

func round(v float64) int {
	return int(math.Round(v))
}
