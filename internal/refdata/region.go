package refdata

// Canonical region keys. District-level keys carry their own multiplier,
// distinct from the parent city's.
const (
	RegionGangnam    = "서울 강남"
	RegionHongdae    = "서울 홍대"
	RegionMyeongdong = "서울 명동"
	RegionSeoul      = "서울"
	RegionGyeonggi   = "경기"
	RegionIncheon    = "인천"
	RegionBusan      = "부산"
	RegionDaegu      = "대구"
	RegionDaejeon    = "대전"
	RegionGwangju    = "광주"
	RegionUlsan      = "울산"
	RegionSejong     = "세종"
	RegionJeju       = "제주"
	RegionProvince   = "지방"
)

// regionPatterns resolves free-text place descriptions to canonical region
// keys. District aliases come before their parent city so that "강남" never
// falls through to the broader "서울" multiplier.
var regionPatterns = []Pattern{
	{"강남", RegionGangnam},
	{"역삼", RegionGangnam},
	{"서초", RegionGangnam},
	{"삼성동", RegionGangnam},
	{"논현", RegionGangnam},
	{"홍대", RegionHongdae},
	{"합정", RegionHongdae},
	{"상수", RegionHongdae},
	{"연남", RegionHongdae},
	{"명동", RegionMyeongdong},
	{"을지로", RegionMyeongdong},
	{"서울", RegionSeoul},
	{"판교", RegionGyeonggi},
	{"분당", RegionGyeonggi},
	{"수원", RegionGyeonggi},
	{"성남", RegionGyeonggi},
	{"용인", RegionGyeonggi},
	{"고양", RegionGyeonggi},
	{"경기", RegionGyeonggi},
	{"인천", RegionIncheon},
	{"해운대", RegionBusan},
	{"서면", RegionBusan},
	{"부산", RegionBusan},
	{"대구", RegionDaegu},
	{"대전", RegionDaejeon},
	{"광주", RegionGwangju},
	{"울산", RegionUlsan},
	{"세종", RegionSejong},
	{"제주", RegionJeju},
}

// NormalizeRegion maps free-text input to a canonical region key. Unmatched
// input falls back to the nationwide baseline key rather than failing; rent
// and cost figures for an unrecognized area are estimated at provincial
// levels.
func NormalizeRegion(input string) string {
	if key := matchFirst(regionPatterns, input); key != "" {
		return key
	}
	return RegionProvince
}

// RegionInfo carries the cost multiplier applied to deposits, interior work
// and operating budgets, with a short note describing the price level.
type RegionInfo struct {
	Multiplier float64
	Note       string
}

var regionMultipliers = map[string]RegionInfo{
	RegionGangnam:    {Multiplier: 1.5, Note: "전국 최고 수준의 임대료와 권리금이 형성된 지역"},
	RegionHongdae:    {Multiplier: 1.35, Note: "젊은층 상권으로 임대료가 서울 평균을 크게 상회"},
	RegionMyeongdong: {Multiplier: 1.4, Note: "관광 상권 특성상 1층 임대료가 매우 높음"},
	RegionSeoul:      {Multiplier: 1.2, Note: "서울 평균 수준의 창업 비용"},
	RegionGyeonggi:   {Multiplier: 1.0, Note: "수도권 평균 수준"},
	RegionIncheon:    {Multiplier: 0.9, Note: "수도권 대비 10% 가량 저렴"},
	RegionBusan:      {Multiplier: 0.9, Note: "광역시 평균 수준"},
	RegionDaegu:      {Multiplier: 0.85, Note: "광역시 평균보다 다소 저렴"},
	RegionDaejeon:    {Multiplier: 0.85, Note: "광역시 평균보다 다소 저렴"},
	RegionGwangju:    {Multiplier: 0.85, Note: "광역시 평균보다 다소 저렴"},
	RegionUlsan:      {Multiplier: 0.9, Note: "광역시 평균 수준"},
	RegionSejong:     {Multiplier: 0.95, Note: "신도시 상권으로 수도권에 근접한 수준"},
	RegionJeju:       {Multiplier: 1.0, Note: "관광 수요로 지방 평균보다 높음"},
	RegionProvince:   {Multiplier: 0.8, Note: "전국 평균 대비 저렴한 수준"},
}

// RegionMultiplier returns cost scaling for a canonical region key.
func RegionMultiplier(region string) (RegionInfo, bool) {
	info, ok := regionMultipliers[region]
	return info, ok
}

// RentBase is the per-pyeong ground-floor rent level for a region, in 만원.
type RentBase struct {
	Deposit int
	Monthly int
}

var rentBases = map[string]RentBase{
	RegionGangnam:    {Deposit: 500, Monthly: 35},
	RegionHongdae:    {Deposit: 400, Monthly: 30},
	RegionMyeongdong: {Deposit: 450, Monthly: 32},
	RegionSeoul:      {Deposit: 300, Monthly: 22},
	RegionGyeonggi:   {Deposit: 200, Monthly: 15},
	RegionIncheon:    {Deposit: 180, Monthly: 13},
	RegionBusan:      {Deposit: 200, Monthly: 14},
	RegionDaegu:      {Deposit: 170, Monthly: 12},
	RegionDaejeon:    {Deposit: 160, Monthly: 11},
	RegionGwangju:    {Deposit: 160, Monthly: 11},
	RegionUlsan:      {Deposit: 180, Monthly: 12},
	RegionSejong:     {Deposit: 180, Monthly: 13},
	RegionJeju:       {Deposit: 220, Monthly: 16},
	RegionProvince:   {Deposit: 120, Monthly: 8},
}

// RentBaseFor returns the per-pyeong rent level for a canonical region key,
// falling back to the provincial baseline.
func RentBaseFor(region string) RentBase {
	if b, ok := rentBases[region]; ok {
		return b
	}
	return rentBases[RegionProvince]
}

// FloorMultipliers scales rent by floor; ground floor is the reference.
var FloorMultipliers = map[string]float64{
	"1층":   1.0,
	"2층":   0.7,
	"지하1층": 0.5,
	"3층이상": 0.6,
}

// BuildingTypeMultipliers scales rent by building type.
var BuildingTypeMultipliers = map[string]float64{
	"상가":   1.0,
	"오피스텔": 0.85,
	"주상복합": 1.1,
	"단독건물": 0.9,
}

// FloorMultiplier returns the rent factor for a floor label, defaulting to
// ground-floor pricing for unrecognized labels.
func FloorMultiplier(floor string) float64 {
	if m, ok := FloorMultipliers[floor]; ok {
		return m
	}
	return 1.0
}

// BuildingTypeMultiplier returns the rent factor for a building type.
func BuildingTypeMultiplier(buildingType string) float64 {
	if m, ok := BuildingTypeMultipliers[buildingType]; ok {
		return m
	}
	return 1.0
}
