package scorer

import "sort"

// Candidate is one scored location in a comparison.
type Candidate struct {
	Location string        `json:"location"`
	Score    LocationScore `json:"score"`
	Fit      *FitScore     `json:"fit,omitempty"`
	Rank     int           `json:"rank"`
}

// Ranking is the outcome of comparing candidate locations.
type Ranking struct {
	Candidates   []Candidate `json:"candidates"`
	Best         string      `json:"best"`
	AllSaturated bool        `json:"allSaturated"`
}

// Rank orders candidates by total score, highest first. The sort is stable
// so ties keep the caller's input order. AllSaturated is set when no
// candidate reaches the recommended tier, which turns the "best" pick into
// a least-bad pick.
func Rank(candidates []Candidate) Ranking {
	ranked := append([]Candidate{}, candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Total > ranked[j].Score.Total
	})

	allSaturated := len(ranked) > 0
	for i := range ranked {
		ranked[i].Rank = i + 1
		if ranked[i].Score.Tier == TierRecommended {
			allSaturated = false
		}
	}

	r := Ranking{Candidates: ranked, AllSaturated: allSaturated}
	if len(ranked) > 0 {
		r.Best = ranked[0].Location
	}
	return r
}
