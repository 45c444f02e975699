package cost

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// Payback sentinel when the realistic scenario never turns a profit.
const PaybackNever = 999

// BreakevenInput describes the store to analyze. Zero-valued optional
// fields fall back to per-type benchmarks.
type BreakevenInput struct {
	BusinessType string
	Region       string
	SizePyeong   float64

	// MonthlyRent overrides the regional rent estimate, in 만원.
	MonthlyRent int

	// AvgPrice overrides the benchmark average ticket, in KRW.
	AvgPrice int

	// Investment is the initial capital for payback, in 만원. When zero,
	// a year of fixed cost stands in.
	Investment int

	// CompetitionMultiplier discounts projected revenue for local
	// competition. Zero means no discount.
	CompetitionMultiplier float64
}

// FixedCosts is the monthly fixed cost breakdown, in 만원.
type FixedCosts struct {
	Rent       int `json:"rent"`
	Labor      int `json:"labor"`
	Utilities  int `json:"utilities"`
	OtherFixed int `json:"otherFixed"`
	Total      int `json:"total"`
}

// Scenario is one revenue outcome relative to the breakeven point.
type Scenario struct {
	Name         string `json:"name"`
	MonthlySales int    `json:"monthlySales"` // 만원
	Profit       int    `json:"profit"`       // 만원
}

// Breakeven is the full breakeven analysis.
type Breakeven struct {
	MonthlySales   int        `json:"monthlySales"` // 만원
	DailySales     int        `json:"dailySales"`   // 만원
	DailyCustomers int        `json:"dailyCustomers"`
	AvgPrice       int        `json:"avgPrice"` // KRW
	VariableRatio  float64    `json:"variableRatio"`
	Fixed          FixedCosts `json:"fixedCosts"`
	Scenarios      []Scenario `json:"scenarios"`
	PaybackMonths  int        `json:"paybackMonths"`
	Payback        string     `json:"payback"`
	Achievability  string     `json:"achievability"`
	Insights       []string   `json:"insights"`
	Region         string     `json:"region"`
}

// ComputeBreakeven derives the monthly sales needed to cover fixed costs,
// then projects pessimistic/realistic/optimistic outcomes around it.
func (c *Calculator) ComputeBreakeven(in BreakevenInput) (*Breakeven, error) {
	bench, ok := refdata.BenchmarkFor(in.BusinessType)
	if !ok {
		return nil, eris.Errorf("cost: no benchmark for %q", in.BusinessType)
	}

	size := in.SizePyeong
	if size <= 0 {
		size = 15
	}
	region := refdata.NormalizeRegion(in.Region)
	info, _ := refdata.RegionMultiplier(region)

	rent := in.MonthlyRent
	if rent <= 0 {
		rent = round(float64(bench.RentPerPyeong) * size * info.Multiplier)
	}
	labor := bench.LaborPerPerson * bench.MinStaff
	utilities := round(float64(bench.Utilities) * size / 15)
	fixed := FixedCosts{Rent: rent, Labor: labor, Utilities: utilities, OtherFixed: bench.OtherFixed}
	fixed.Total = rent + labor + utilities + bench.OtherFixed

	avgPrice := in.AvgPrice
	if avgPrice <= 0 {
		avgPrice = bench.AvgPrice
	}

	bepMonthly := round(float64(fixed.Total) / (1 - bench.VariableRatio))
	bepDaily := round(float64(bepMonthly) / 30)
	dailyCustomers := round(float64(bepDaily) / float64(avgPrice) * 10000)

	compMult := in.CompetitionMultiplier
	if compMult <= 0 {
		compMult = 1.0
	}

	profit := func(scenarioMult float64) (sales, p int) {
		sales = round(float64(bepMonthly) * scenarioMult * compMult)
		p = sales - round(float64(sales)*bench.VariableRatio) - fixed.Total
		return sales, p
	}

	pessSales, pessProfit := profit(refdata.ScenarioPessimistic)
	realSales, realProfit := profit(refdata.ScenarioRealistic)
	optSales, optProfit := profit(refdata.ScenarioOptimistic)

	investment := in.Investment
	if investment <= 0 {
		investment = fixed.Total * 12
	}
	payback := PaybackNever
	if realProfit > 0 {
		payback = int(math.Ceil(float64(investment) / float64(realProfit)))
	}

	return &Breakeven{
		MonthlySales:   bepMonthly,
		DailySales:     bepDaily,
		DailyCustomers: dailyCustomers,
		AvgPrice:       avgPrice,
		VariableRatio:  bench.VariableRatio,
		Fixed:          fixed,
		Scenarios: []Scenario{
			{Name: "비관적", MonthlySales: pessSales, Profit: pessProfit},
			{Name: "현실적", MonthlySales: realSales, Profit: realProfit},
			{Name: "낙관적", MonthlySales: optSales, Profit: optProfit},
		},
		PaybackMonths: payback,
		Payback:       refdata.PaybackAssessment(payback),
		Achievability: refdata.AchievabilityAssessment(dailyCustomers),
		Insights:      refdata.BreakevenInsights(in.BusinessType),
		Region:        region,
	}, nil
}
