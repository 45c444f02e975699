package cost

import (
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// RentInput describes the storefront to price. Region is free text; Floor
// and BuildingType take the standard Korean labels ("1층", "상가").
type RentInput struct {
	Region       string
	SizePyeong   float64
	Floor        string
	BuildingType string
}

// RentEstimate is the market rent picture for a storefront, in 만원.
type RentEstimate struct {
	Deposit      model.Range `json:"deposit"`
	Monthly      model.Range `json:"monthly"`
	MgmtFee      int         `json:"mgmtFee"`
	TotalMonthly int         `json:"totalMonthly"`
	Region       string      `json:"region"`
	Floor        string      `json:"floor"`
	Notes        []string    `json:"notes,omitempty"`
}

// Rent estimates deposit and monthly rent from regional per-pyeong levels,
// adjusted for floor and building type, with a spread around the point
// estimate.
func (c *Calculator) Rent(in RentInput) *RentEstimate {
	size := in.SizePyeong
	if size <= 0 {
		size = 15
	}
	floor := in.Floor
	if floor == "" {
		floor = "1층"
	}

	region := refdata.NormalizeRegion(in.Region)
	base := refdata.RentBaseFor(region)
	floorMult := refdata.FloorMultiplier(floor)
	buildingMult := refdata.BuildingTypeMultiplier(in.BuildingType)

	avgDeposit := round(float64(base.Deposit) * size * floorMult * buildingMult)
	avgMonthly := round(float64(base.Monthly) * size * floorMult * buildingMult)

	mgmtFee := round(size * c.rates.MgmtFeePerPyeong * mgmtFloorAdjust(floor))

	est := &RentEstimate{
		Deposit:      spread(avgDeposit, c.rates.RentSpread),
		Monthly:      spread(avgMonthly, c.rates.RentSpread),
		MgmtFee:      mgmtFee,
		TotalMonthly: avgMonthly + mgmtFee,
		Region:       region,
		Floor:        floor,
	}

	if region == refdata.RegionProvince {
		est.Notes = append(est.Notes, "지역을 특정하지 못해 전국 평균 수준으로 추정했습니다")
	}
	if floorMult < 1.0 {
		est.Notes = append(est.Notes, "1층 대비 저렴한 층으로, 가시성 확보 비용을 별도로 고려하세요")
	}
	return est
}

// mgmtFloorAdjust scales the management fee by floor: basements cost more
// to ventilate and maintain, upper floors less.
func mgmtFloorAdjust(floor string) float64 {
	switch floor {
	case "1층":
		return 1.0
	case "지하1층":
		return 1.2
	default:
		return 0.9
	}
}

func spread(avg int, pct float64) model.Range {
	return model.Range{
		Min:       round(float64(avg) * (1 - pct)),
		Max:       round(float64(avg) * (1 + pct)),
		Estimated: avg,
	}
}
