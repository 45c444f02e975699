package scorer

import (
	"math"

	"github.com/sangkwonlab/sangkwon-cli/internal/estimate"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// Fit score component caps. Base 50 plus up to 50 from demographics.
const (
	fitBase        = 50
	fitAgeCap      = 20
	fitAgeWeight   = 0.4
	fitGenderScale = 0.5
	fitGenderCap   = 10
	fitGenderAny   = 5
	fitAreaBonus   = 15
	fitTimeCap     = 10
	fitTimeWeight  = 0.2
)

// Fit tiers.
const (
	FitExcellent = "매우 적합"
	FitGood      = "적합"
	FitNeutral   = "보통"
	FitPoor      = "부적합"
)

// FitScore measures how well a location's demographics match a business
// type's target customers.
type FitScore struct {
	Total int    `json:"total"`
	Tier  string `json:"tier"`
	Note  string `json:"note,omitempty"`
}

// ScoreFit compares the target profile for a business type against the
// location's demographic estimate. Unknown business types score against the
// broadest target profile rather than failing.
func ScoreFit(businessType string, pop estimate.PopulationEstimate) FitScore {
	fit, _ := refdata.TargetFitFor(businessType)

	score := float64(fitBase)

	var matchedAge float64
	for _, g := range fit.AgeGroups {
		matchedAge += ageShare(pop, g)
	}
	score += math.Min(matchedAge*fitAgeWeight, fitAgeCap)

	switch fit.Gender {
	case refdata.GenderFemale:
		if pop.Gender.Female > 50 {
			score += math.Min((pop.Gender.Female-50)*fitGenderScale, fitGenderCap)
		}
	case refdata.GenderMale:
		if pop.Gender.Male > 50 {
			score += math.Min((pop.Gender.Male-50)*fitGenderScale, fitGenderCap)
		}
	default:
		score += fitGenderAny
	}

	for _, at := range fit.AreaTypes {
		if at == pop.AreaType {
			score += fitAreaBonus
			break
		}
	}

	var matchedTime float64
	for _, slot := range fit.TimeSlots {
		matchedTime += timeShare(pop, slot)
	}
	score += math.Min(matchedTime*fitTimeWeight, fitTimeCap)

	total := clamp(round(score), 0, 100)
	return FitScore{Total: total, Tier: fitTier(total), Note: fit.Note}
}

func fitTier(total int) string {
	switch {
	case total >= 80:
		return FitExcellent
	case total >= 60:
		return FitGood
	case total >= 40:
		return FitNeutral
	default:
		return FitPoor
	}
}

func ageShare(pop estimate.PopulationEstimate, group string) float64 {
	switch group {
	case refdata.AgeTeens:
		return pop.AgeDist.Teens
	case refdata.AgeTwenties:
		return pop.AgeDist.Twenties
	case refdata.AgeThirties:
		return pop.AgeDist.Thirties
	case refdata.AgeForties:
		return pop.AgeDist.Forties
	case refdata.AgeFiftyPlus:
		return pop.AgeDist.FiftyPlus
	default:
		return 0
	}
}

func timeShare(pop estimate.PopulationEstimate, slot string) float64 {
	switch slot {
	case refdata.SlotMorning:
		return pop.TimeDist.Morning
	case refdata.SlotLunch:
		return pop.TimeDist.Lunch
	case refdata.SlotAfternoon:
		return pop.TimeDist.Afternoon
	case refdata.SlotEvening:
		return pop.TimeDist.Evening
	case refdata.SlotNight:
		return pop.TimeDist.Night
	default:
		return 0
	}
}
