// Package cost computes startup budgets, rent estimates, and breakeven
// projections from the reference cost tables.
package cost

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Rates holds the tunable assumptions behind the cost calculators. They are
// deliberately separate from the per-type reference tables so an operator
// can adjust the model without a rebuild.
type Rates struct {
	// OperatingFundMonths is how many months of operating cost to reserve.
	OperatingFundMonths int `yaml:"operating_fund_months"`

	// OtherRate is the contingency share added on top of the subtotal.
	OtherRate float64 `yaml:"other_rate"`

	// Interior spread applied to the min/max bounds.
	InteriorMinFactor float64 `yaml:"interior_min_factor"`
	InteriorMaxFactor float64 `yaml:"interior_max_factor"`

	// Operating-fund months used for the min/max bounds.
	OperatingMinMonths int `yaml:"operating_min_months"`
	OperatingMaxMonths int `yaml:"operating_max_months"`

	// Contingency spread applied to the min/max bounds.
	OtherMinFactor float64 `yaml:"other_min_factor"`
	OtherMaxFactor float64 `yaml:"other_max_factor"`

	// RentSpread widens the rent point estimate into a range.
	RentSpread float64 `yaml:"rent_spread"`

	// MgmtFeePerPyeong is the baseline monthly management fee, in 만원.
	MgmtFeePerPyeong float64 `yaml:"mgmt_fee_per_pyeong"`
}

// DefaultRates returns the standard assumptions.
func DefaultRates() Rates {
	return Rates{
		OperatingFundMonths: 6,
		OtherRate:           0.05,
		InteriorMinFactor:   0.8,
		InteriorMaxFactor:   1.2,
		OperatingMinMonths:  4,
		OperatingMaxMonths:  8,
		OtherMinFactor:      0.7,
		OtherMaxFactor:      1.3,
		RentSpread:          0.2,
		MgmtFeePerPyeong:    3,
	}
}

// LoadRates reads a YAML rates file, filling unset fields from defaults.
func LoadRates(path string) (Rates, error) {
	rates := DefaultRates()
	data, err := os.ReadFile(path)
	if err != nil {
		return rates, eris.Wrap(err, "cost: read rates file")
	}
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return rates, eris.Wrap(err, "cost: parse rates file")
	}
	return rates, nil
}
