package refdata

import "strings"

// Canonical business-type keys. Every table in this package is keyed by one
// of these.
const (
	BizCafe        = "카페"
	BizRestaurant  = "음식점"
	BizConvenience = "편의점"
	BizHairSalon   = "미용실"
	BizChicken     = "치킨"
	BizPub         = "호프"
	BizSnackBar    = "분식"
	BizBakery      = "베이커리"
	BizUnmanned    = "무인매장"
	BizStudyCafe   = "스터디카페"
	BizNailShop    = "네일샵"
	BizPetService  = "반려동물"
)

// ValidBusinessTypes lists every canonical business type, used in error
// suggestions so callers can self-correct.
var ValidBusinessTypes = []string{
	BizCafe, BizRestaurant, BizConvenience, BizHairSalon, BizChicken,
	BizPub, BizSnackBar, BizBakery, BizUnmanned, BizStudyCafe,
	BizNailShop, BizPetService,
}

// businessTypePatterns resolves free-text business descriptions to canonical
// keys. Compound types ("스터디카페", "무인카페") must be declared before the
// broader substrings they contain.
var businessTypePatterns = []Pattern{
	{"스터디카페", BizStudyCafe},
	{"스터디", BizStudyCafe},
	{"독서실", BizStudyCafe},
	{"무인", BizUnmanned},
	{"네일", BizNailShop},
	{"반려", BizPetService},
	{"펫", BizPetService},
	{"애견", BizPetService},
	{"치킨", BizChicken},
	{"호프", BizPub},
	{"맥주", BizPub},
	{"주점", BizPub},
	{"술집", BizPub},
	{"분식", BizSnackBar},
	{"떡볶이", BizSnackBar},
	{"김밥", BizSnackBar},
	{"베이커리", BizBakery},
	{"빵", BizBakery},
	{"제과", BizBakery},
	{"케이크", BizBakery},
	{"편의점", BizConvenience},
	{"미용", BizHairSalon},
	{"헤어", BizHairSalon},
	{"살롱", BizHairSalon},
	{"카페", BizCafe},
	{"커피", BizCafe},
	{"디저트", BizCafe},
	{"음식", BizRestaurant},
	{"식당", BizRestaurant},
	{"레스토랑", BizRestaurant},
	{"국밥", BizRestaurant},
	{"한식", BizRestaurant},
	{"중식", BizRestaurant},
	{"일식", BizRestaurant},
	{"양식", BizRestaurant},
	{"맛집", BizRestaurant},
}

// NormalizeBusinessType maps free-text input to a canonical business type.
// Returns "" when nothing matches; the unknown-input policy (fail vs fall
// back to a default) belongs to the caller, not here.
func NormalizeBusinessType(input string) string {
	if input == "" {
		return ""
	}
	return matchFirst(businessTypePatterns, input)
}

// competitorKeywords filters store-registry records down to the same trade.
var competitorKeywords = map[string][]string{
	BizCafe:        {"커피", "카페", "음료", "디저트"},
	BizRestaurant:  {"음식", "식당", "레스토랑", "한식", "중식", "일식", "양식"},
	BizConvenience: {"편의점", "마트", "슈퍼"},
	BizHairSalon:   {"미용", "헤어", "살롱", "뷰티"},
	BizChicken:     {"치킨", "닭", "후라이드"},
	BizPub:         {"호프", "맥주", "주점", "술집"},
	BizSnackBar:    {"분식", "떡볶이", "라면", "김밥"},
	BizBakery:      {"빵", "베이커리", "제과", "케이크"},
	BizUnmanned:    {"무인", "셀프", "코인"},
	BizStudyCafe:   {"스터디", "독서실", "공부"},
	BizNailShop:    {"네일", "손톱", "매니큐어"},
	BizPetService:  {"반려", "펫", "애견", "동물"},
}

// CompetitorKeywords returns the trade keywords used to match registry
// records against a business type. Falls back to the raw input for unknown
// types so filtering still works on a best-effort basis.
func CompetitorKeywords(businessType string) []string {
	if kws, ok := competitorKeywords[NormalizeBusinessType(businessType)]; ok {
		return kws
	}
	return []string{businessType}
}

// MatchesTrade reports whether the given text (store name plus category
// labels) belongs to the business type's trade.
func MatchesTrade(businessType, text string) bool {
	c := Canonicalize(text)
	for _, kw := range CompetitorKeywords(businessType) {
		if strings.Contains(c, Canonicalize(kw)) {
			return true
		}
	}
	return false
}

// searchKeywords rewrites a business type into the query phrasing that the
// place-search provider responds to best.
var searchKeywords = map[string]string{
	"치킨":  "치킨집",
	"카페":  "카페",
	"커피":  "카페",
	"음식점": "맛집",
	"식당":  "맛집",
	"미용실": "미용실",
	"헤어샵": "미용실",
	"편의점": "편의점",
	"마트":  "마트",
	"약국":  "약국",
	"병원":  "병원",
	"피자":  "피자",
	"햄버거": "버거",
	"중식":  "중국집",
	"일식":  "일식당",
	"분식":  "분식집",
}

// SearchKeyword returns the place-search query for a business type, falling
// back to the input itself.
func SearchKeyword(businessType string) string {
	if kw, ok := searchKeywords[businessType]; ok {
		return kw
	}
	return businessType
}

// FranchiseKeywords identifies national franchise brands by store name.
var FranchiseKeywords = []string{
	"스타벅스", "투썸", "이디야", "메가커피", "빽다방", "컴포즈",
	"맥도날드", "버거킹", "롯데리아", "KFC", "맘스터치",
	"BBQ", "BHC", "교촌", "네네", "굽네",
	"CU", "GS25", "세븐일레븐", "이마트24", "미니스톱",
	"올리브영", "다이소", "아트박스",
	"파리바게뜨", "뚜레쥬르", "성심당",
}

// IsFranchise reports whether a store name carries a known franchise brand.
func IsFranchise(name string) bool {
	for _, kw := range FranchiseKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// optimalCounts is the same-category store count considered healthy within
// a 500m radius, per business type.
var optimalCounts = map[string]int{
	BizCafe:        10,
	BizRestaurant:  20,
	BizConvenience: 5,
	BizHairSalon:   8,
}

const defaultOptimalCount = 10

// OptimalCount returns the healthy same-category density for a business
// type. Unknown types get the generic default rather than an error.
func OptimalCount(businessType string) int {
	if n, ok := optimalCounts[NormalizeBusinessType(businessType)]; ok {
		return n
	}
	return defaultOptimalCount
}

// marginRates holds average net margin per business type.
var marginRates = map[string]float64{
	BizCafe:        0.35,
	BizRestaurant:  0.25,
	BizConvenience: 0.20,
	BizHairSalon:   0.45,
	BizChicken:     0.25,
	BizPub:         0.30,
	BizSnackBar:    0.30,
	BizBakery:      0.35,
	BizUnmanned:    0.40,
	BizStudyCafe:   0.45,
	BizNailShop:    0.50,
	BizPetService:  0.35,
}

const defaultMarginRate = 0.30

// MarginRate returns the average profit margin for a canonical business
// type, or the generic default.
func MarginRate(businessType string) float64 {
	if m, ok := marginRates[businessType]; ok {
		return m
	}
	return defaultMarginRate
}

// RevenueBaseline is the expected daily take for a 15-pyeong single-staff
// store, in units of 만원 (10,000 KRW). AvgPrice is in KRW.
type RevenueBaseline struct {
	Min          int
	Avg          int
	Max          int
	AvgCustomers int
	AvgPrice     int
}

var revenueBaselines = map[string]RevenueBaseline{
	BizCafe:        {Min: 30, Avg: 50, Max: 80, AvgCustomers: 80, AvgPrice: 6000},
	BizRestaurant:  {Min: 40, Avg: 70, Max: 120, AvgCustomers: 50, AvgPrice: 12000},
	BizConvenience: {Min: 80, Avg: 120, Max: 180, AvgCustomers: 200, AvgPrice: 6000},
	BizHairSalon:   {Min: 20, Avg: 40, Max: 70, AvgCustomers: 8, AvgPrice: 50000},
	BizChicken:     {Min: 50, Avg: 80, Max: 130, AvgCustomers: 40, AvgPrice: 20000},
	BizPub:         {Min: 40, Avg: 70, Max: 120, AvgCustomers: 30, AvgPrice: 25000},
	BizSnackBar:    {Min: 25, Avg: 45, Max: 70, AvgCustomers: 60, AvgPrice: 7000},
	BizBakery:      {Min: 35, Avg: 60, Max: 100, AvgCustomers: 70, AvgPrice: 8000},
	BizUnmanned:    {Min: 15, Avg: 25, Max: 40, AvgCustomers: 50, AvgPrice: 5000},
	BizStudyCafe:   {Min: 20, Avg: 35, Max: 55, AvgCustomers: 40, AvgPrice: 8000},
	BizNailShop:    {Min: 15, Avg: 30, Max: 50, AvgCustomers: 6, AvgPrice: 50000},
	BizPetService:  {Min: 25, Avg: 45, Max: 75, AvgCustomers: 15, AvgPrice: 30000},
}

// Baseline returns the revenue baseline for a canonical business type.
func Baseline(businessType string) (RevenueBaseline, bool) {
	b, ok := revenueBaselines[businessType]
	return b, ok
}

// SeasonFactors scales monthly revenue per season.
type SeasonFactors struct {
	Spring float64
	Summer float64
	Fall   float64
	Winter float64
}

var seasonFactors = map[string]SeasonFactors{
	BizCafe:        {Spring: 1.0, Summer: 1.2, Fall: 1.0, Winter: 0.9},
	BizRestaurant:  {Spring: 1.0, Summer: 0.9, Fall: 1.1, Winter: 1.1},
	BizConvenience: {Spring: 1.0, Summer: 1.1, Fall: 1.0, Winter: 1.0},
	BizChicken:     {Spring: 1.0, Summer: 1.2, Fall: 1.0, Winter: 1.0},
	BizPub:         {Spring: 1.0, Summer: 1.3, Fall: 1.0, Winter: 0.9},
}

var defaultSeasonFactors = SeasonFactors{Spring: 1.0, Summer: 1.0, Fall: 1.0, Winter: 1.0}

// Seasonality returns per-season revenue factors for a business type.
func Seasonality(businessType string) SeasonFactors {
	if f, ok := seasonFactors[businessType]; ok {
		return f
	}
	return defaultSeasonFactors
}
