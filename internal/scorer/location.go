// Package scorer computes the 0-100 scores behind every recommendation:
// location viability, market saturation, target-customer fit, and
// accessibility. Each score is a sum of capped components so that no single
// signal can dominate the result.
package scorer

import (
	"math"

	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// Component caps for the location score. They sum to 100.
const (
	saturationCap  = 40
	activityCap    = 25
	competitionCap = 20
	diversityCap   = 15
)

// Recommendation tiers.
const (
	TierRecommended    = "추천"
	TierNeutral        = "보통"
	TierNotRecommended = "비추천"
)

// LocationScore breaks down the viability score for one location.
type LocationScore struct {
	Total       int            `json:"total"`
	Components  map[string]int `json:"components"`
	Tier        string         `json:"tier"`
	Saturation  Saturation     `json:"saturation"`
	SameCount   int            `json:"sameCount"`
	TotalStores int            `json:"totalStores"`
	Categories  int            `json:"categories"`
}

// Saturation is the same-trade density assessment.
type Saturation struct {
	Score   int    `json:"score"`
	Level   string `json:"level"`
	Label   string `json:"label"`
	Optimal int    `json:"optimal"`
}

// Saturation levels.
const (
	SaturationLow       = "LOW"
	SaturationMedium    = "MEDIUM"
	SaturationHigh      = "HIGH"
	SaturationSaturated = "SATURATED"
)

var saturationLabels = map[string]string{
	SaturationLow:       "낮음",
	SaturationMedium:    "보통",
	SaturationHigh:      "높음",
	SaturationSaturated: "포화",
}

// Saturate scores same-trade density against the healthy count for the
// business type. 100 means at least double the optimal density.
func Saturate(businessType string, sameCount int) Saturation {
	optimal := refdata.OptimalCount(businessType)
	score := int(math.Min(100, math.Round(float64(sameCount)/float64(optimal)*100)))

	var level string
	switch {
	case score < 40:
		level = SaturationLow
	case score < 60:
		level = SaturationMedium
	case score < 80:
		level = SaturationHigh
	default:
		level = SaturationSaturated
	}
	return Saturation{Score: score, Level: level, Label: saturationLabels[level], Optimal: optimal}
}

// ScoreLocation computes the viability score from store census figures:
// sameCount is same-trade stores nearby, totalStores the overall store
// count, categories the number of distinct store categories.
func ScoreLocation(businessType string, sameCount, totalStores, categories int) LocationScore {
	sat := Saturate(businessType, sameCount)

	components := map[string]int{
		"saturation":  round(saturationCap - float64(sat.Score)/100*saturationCap),
		"activity":    activityComponent(totalStores),
		"competition": competitionComponent(sameCount),
		"diversity":   int(math.Min(diversityCap, float64(categories*3))),
	}

	total := 0
	for _, v := range components {
		total += v
	}
	total = clamp(total, 0, 100)

	return LocationScore{
		Total:       total,
		Components:  components,
		Tier:        tierFor(total),
		Saturation:  sat,
		SameCount:   sameCount,
		TotalStores: totalStores,
		Categories:  categories,
	}
}

// activityComponent rewards overall commercial activity around the point.
func activityComponent(totalStores int) int {
	switch {
	case totalStores >= 1000:
		return activityCap
	case totalStores >= 500:
		return 20
	case totalStores >= 200:
		return 15
	case totalStores >= 100:
		return 10
	default:
		return 5
	}
}

// competitionComponent penalizes direct same-trade competition.
func competitionComponent(sameCount int) int {
	switch {
	case sameCount >= 20:
		return 5
	case sameCount >= 15:
		return 10
	case sameCount >= 10:
		return 15
	default:
		return competitionCap
	}
}

func tierFor(total int) string {
	switch {
	case total >= 70:
		return TierRecommended
	case total >= 40:
		return TierNeutral
	default:
		return TierNotRecommended
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
