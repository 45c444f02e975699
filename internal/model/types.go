package model

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a point of interest returned by the place-search provider.
type Place struct {
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	CategoryCode string      `json:"categoryCode,omitempty"`
	Address      string      `json:"address"`
	RoadAddress  string      `json:"roadAddress,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Coord        Coordinates `json:"coord"`
	Distance     int         `json:"distance,omitempty"` // meters from search center
	URL          string      `json:"url,omitempty"`
}

// StoreRecord is one store from the regional store registry, classified at
// three levels of granularity.
type StoreRecord struct {
	Name           string      `json:"name"`
	LargeCategory  string      `json:"largeCategory"`
	MediumCategory string      `json:"mediumCategory"`
	SmallCategory  string      `json:"smallCategory"`
	Address        string      `json:"address"`
	Coord          Coordinates `json:"coord"`
}

// Grant is one government support program listing.
type Grant struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Agency            string   `json:"agency"`
	Summary           string   `json:"summary"`
	ApplicationWindow string   `json:"applicationWindow"`
	URL               string   `json:"url"`
	Tags              []string `json:"tags,omitempty"`
	TargetAudience    string   `json:"targetAudience,omitempty"`
}

// ConfidenceLevel labels how much of an estimate rests on live vs static data.
type ConfidenceLevel string

const (
	// ConfidenceHigh means a curated profile matched and a live lookup succeeded.
	ConfidenceHigh ConfidenceLevel = "high"
	// ConfidenceMedium means a live lookup succeeded but no curated profile exists.
	ConfidenceMedium ConfidenceLevel = "medium"
	// ConfidenceLow means pattern/default fallback only.
	ConfidenceLow ConfidenceLevel = "low"
)

// AgeDistribution holds percentage shares per age bracket. Shares sum to 100.
type AgeDistribution struct {
	Teens      float64 `json:"teens"`
	Twenties   float64 `json:"twenties"`
	Thirties   float64 `json:"thirties"`
	Forties    float64 `json:"forties"`
	FiftyPlus  float64 `json:"fiftyPlus"`
}

// Sum returns the total of all brackets.
func (a AgeDistribution) Sum() float64 {
	return a.Teens + a.Twenties + a.Thirties + a.Forties + a.FiftyPlus
}

// GenderRatio holds percentage shares by gender. Shares sum to 100.
type GenderRatio struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
}

// TimeDistribution holds percentage shares of foot traffic per time slot.
// Shares sum to 100.
type TimeDistribution struct {
	Morning   float64 `json:"morning"`
	Lunch     float64 `json:"lunch"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Night     float64 `json:"night"`
}

// Sum returns the total of all slots.
func (t TimeDistribution) Sum() float64 {
	return t.Morning + t.Lunch + t.Afternoon + t.Evening + t.Night
}

// Range is an inclusive numeric range with a point estimate. Min <= Max.
type Range struct {
	Min       int `json:"min"`
	Max       int `json:"max"`
	Estimated int `json:"estimated"`
}
