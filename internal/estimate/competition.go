package estimate

// Competition levels by same-trade store count within the search radius.
const (
	CompetitionLow       = "low"
	CompetitionMedium    = "medium"
	CompetitionHigh      = "high"
	CompetitionSaturated = "saturated"
)

var competitionLabels = map[string]string{
	CompetitionLow:       "낮음",
	CompetitionMedium:    "보통",
	CompetitionHigh:      "높음",
	CompetitionSaturated: "포화",
}

// revenueMultipliers discount projected revenue as competition thickens.
var revenueMultipliers = map[string]float64{
	CompetitionLow:       1.15,
	CompetitionMedium:    1.0,
	CompetitionHigh:      0.85,
	CompetitionSaturated: 0.7,
}

// CompetitionLevel classifies a same-trade competitor count.
func CompetitionLevel(count int) string {
	switch {
	case count <= 5:
		return CompetitionLow
	case count <= 15:
		return CompetitionMedium
	case count <= 30:
		return CompetitionHigh
	default:
		return CompetitionSaturated
	}
}

// CompetitionLabel returns the Korean display label for a level.
func CompetitionLabel(level string) string {
	if l, ok := competitionLabels[level]; ok {
		return l
	}
	return competitionLabels[CompetitionMedium]
}

// CompetitionMultiplier returns the revenue discount factor for a level.
func CompetitionMultiplier(level string) float64 {
	if m, ok := revenueMultipliers[level]; ok {
		return m
	}
	return 1.0
}
