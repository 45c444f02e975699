package refdata

import (
	"strings"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
)

// Area types form a closed set; InferAreaType always returns one of these.
const (
	AreaStation     = "역세권"
	AreaUniversity  = "대학가"
	AreaOffice      = "오피스"
	AreaResidential = "주거지역"
	AreaTourist     = "관광지"
	AreaNightlife   = "유흥가"
	AreaMixed       = "복합"
)

// PopulationProfile holds daily-average headcounts for a commercial area.
type PopulationProfile struct {
	Total       int `json:"total"`
	Residential int `json:"residential"`
	Working     int `json:"working"`
	Floating    int `json:"floating"`
}

// AreaProfile is a curated commercial-area record: demographics compiled
// from public statistics, keyed by the standard area name.
type AreaProfile struct {
	Name            string
	Coord           model.Coordinates
	Population      PopulationProfile
	TimeDist        model.TimeDistribution
	AgeDist         model.AgeDistribution
	Gender          model.GenderRatio
	PeakHours       []string
	Characteristics []string
	AreaType        string
}

// majorAreas holds the curated profiles. Slice order is the substring-match
// precedence for FindArea.
var majorAreas = []AreaProfile{
	{
		Name:            "강남역",
		Coord:           model.Coordinates{Lat: 37.498095, Lng: 127.02761},
		Population:      PopulationProfile{Total: 180000, Residential: 25000, Working: 95000, Floating: 60000},
		TimeDist:        model.TimeDistribution{Morning: 15, Lunch: 25, Afternoon: 20, Evening: 30, Night: 10},
		AgeDist:         model.AgeDistribution{Teens: 5, Twenties: 30, Thirties: 35, Forties: 20, FiftyPlus: 10},
		Gender:          model.GenderRatio{Male: 48, Female: 52},
		PeakHours:       []string{"12-14시", "18-21시"},
		Characteristics: []string{"직장인 밀집", "IT/스타트업 중심", "유흥가 인접", "높은 소비력"},
		AreaType:        AreaMixed,
	},
	{
		Name:            "홍대입구",
		Coord:           model.Coordinates{Lat: 37.557527, Lng: 126.9244669},
		Population:      PopulationProfile{Total: 150000, Residential: 20000, Working: 40000, Floating: 90000},
		TimeDist:        model.TimeDistribution{Morning: 10, Lunch: 20, Afternoon: 25, Evening: 30, Night: 15},
		AgeDist:         model.AgeDistribution{Teens: 15, Twenties: 45, Thirties: 25, Forties: 10, FiftyPlus: 5},
		Gender:          model.GenderRatio{Male: 45, Female: 55},
		PeakHours:       []string{"14-18시", "19-23시"},
		Characteristics: []string{"대학가", "문화예술 중심", "젊은층 밀집", "야간 상권 활성화"},
		AreaType:        AreaUniversity,
	},
	{
		Name:            "신촌",
		Coord:           model.Coordinates{Lat: 37.555946, Lng: 126.9368},
		Population:      PopulationProfile{Total: 120000, Residential: 30000, Working: 25000, Floating: 65000},
		TimeDist:        model.TimeDistribution{Morning: 12, Lunch: 22, Afternoon: 25, Evening: 28, Night: 13},
		AgeDist:         model.AgeDistribution{Teens: 10, Twenties: 50, Thirties: 20, Forties: 12, FiftyPlus: 8},
		Gender:          model.GenderRatio{Male: 48, Female: 52},
		PeakHours:       []string{"12-14시", "18-22시"},
		Characteristics: []string{"대학가", "저렴한 가격대", "학생 위주", "음식점 밀집"},
		AreaType:        AreaUniversity,
	},
	{
		Name:            "건대입구",
		Coord:           model.Coordinates{Lat: 37.540372, Lng: 127.069276},
		Population:      PopulationProfile{Total: 130000, Residential: 35000, Working: 30000, Floating: 65000},
		TimeDist:        model.TimeDistribution{Morning: 12, Lunch: 23, Afternoon: 22, Evening: 30, Night: 13},
		AgeDist:         model.AgeDistribution{Teens: 12, Twenties: 42, Thirties: 25, Forties: 13, FiftyPlus: 8},
		Gender:          model.GenderRatio{Male: 47, Female: 53},
		PeakHours:       []string{"12-14시", "19-22시"},
		Characteristics: []string{"대학가", "쇼핑몰 인접", "젊은층 밀집", "맛집 밀집"},
		AreaType:        AreaUniversity,
	},
	{
		Name:            "명동",
		Coord:           model.Coordinates{Lat: 37.560977, Lng: 126.986325},
		Population:      PopulationProfile{Total: 200000, Residential: 5000, Working: 45000, Floating: 150000},
		TimeDist:        model.TimeDistribution{Morning: 8, Lunch: 25, Afternoon: 35, Evening: 25, Night: 7},
		AgeDist:         model.AgeDistribution{Teens: 15, Twenties: 35, Thirties: 25, Forties: 15, FiftyPlus: 10},
		Gender:          model.GenderRatio{Male: 40, Female: 60},
		PeakHours:       []string{"13-17시", "18-20시"},
		Characteristics: []string{"관광특구", "외국인 비중 높음", "화장품/패션 중심", "주말 집중"},
		AreaType:        AreaTourist,
	},
	{
		Name:            "이태원",
		Coord:           model.Coordinates{Lat: 37.534685, Lng: 126.994831},
		Population:      PopulationProfile{Total: 80000, Residential: 15000, Working: 20000, Floating: 45000},
		TimeDist:        model.TimeDistribution{Morning: 5, Lunch: 15, Afternoon: 20, Evening: 35, Night: 25},
		AgeDist:         model.AgeDistribution{Teens: 5, Twenties: 40, Thirties: 35, Forties: 15, FiftyPlus: 5},
		Gender:          model.GenderRatio{Male: 50, Female: 50},
		PeakHours:       []string{"18-22시", "22-02시"},
		Characteristics: []string{"외국인 밀집", "유흥가", "다양한 음식문화", "야간 특화"},
		AreaType:        AreaNightlife,
	},
	{
		Name:            "여의도",
		Coord:           model.Coordinates{Lat: 37.521597, Lng: 126.924173},
		Population:      PopulationProfile{Total: 140000, Residential: 20000, Working: 100000, Floating: 20000},
		TimeDist:        model.TimeDistribution{Morning: 20, Lunch: 30, Afternoon: 25, Evening: 20, Night: 5},
		AgeDist:         model.AgeDistribution{Teens: 3, Twenties: 20, Thirties: 35, Forties: 30, FiftyPlus: 12},
		Gender:          model.GenderRatio{Male: 55, Female: 45},
		PeakHours:       []string{"12-13시", "18-19시"},
		Characteristics: []string{"금융 중심", "직장인 특화", "주말 한산", "높은 객단가"},
		AreaType:        AreaOffice,
	},
	{
		Name:            "서울역",
		Coord:           model.Coordinates{Lat: 37.555946, Lng: 126.972317},
		Population:      PopulationProfile{Total: 160000, Residential: 10000, Working: 50000, Floating: 100000},
		TimeDist:        model.TimeDistribution{Morning: 25, Lunch: 20, Afternoon: 20, Evening: 25, Night: 10},
		AgeDist:         model.AgeDistribution{Teens: 8, Twenties: 25, Thirties: 30, Forties: 22, FiftyPlus: 15},
		Gender:          model.GenderRatio{Male: 52, Female: 48},
		PeakHours:       []string{"08-10시", "17-19시"},
		Characteristics: []string{"교통 요충지", "출퇴근 인구 집중", "관광객", "다양한 연령대"},
		AreaType:        AreaStation,
	},
	{
		Name:            "잠실",
		Coord:           model.Coordinates{Lat: 37.513281, Lng: 127.100159},
		Population:      PopulationProfile{Total: 170000, Residential: 60000, Working: 50000, Floating: 60000},
		TimeDist:        model.TimeDistribution{Morning: 15, Lunch: 22, Afternoon: 25, Evening: 28, Night: 10},
		AgeDist:         model.AgeDistribution{Teens: 12, Twenties: 25, Thirties: 28, Forties: 22, FiftyPlus: 13},
		Gender:          model.GenderRatio{Male: 48, Female: 52},
		PeakHours:       []string{"12-14시", "18-21시"},
		Characteristics: []string{"쇼핑몰 밀집", "가족 단위", "주거+상업 복합", "주말 활성화"},
		AreaType:        AreaMixed,
	},
	{
		Name:            "판교",
		Coord:           model.Coordinates{Lat: 37.394761, Lng: 127.111172},
		Population:      PopulationProfile{Total: 100000, Residential: 40000, Working: 50000, Floating: 10000},
		TimeDist:        model.TimeDistribution{Morning: 18, Lunch: 30, Afternoon: 22, Evening: 25, Night: 5},
		AgeDist:         model.AgeDistribution{Teens: 5, Twenties: 20, Thirties: 45, Forties: 25, FiftyPlus: 5},
		Gender:          model.GenderRatio{Male: 58, Female: 42},
		PeakHours:       []string{"12-13시", "18-20시"},
		Characteristics: []string{"IT/스타트업 밀집", "젊은 직장인", "높은 소득수준", "주말 한산"},
		AreaType:        AreaOffice,
	},
	{
		Name:            "해운대",
		Coord:           model.Coordinates{Lat: 35.158698, Lng: 129.16016},
		Population:      PopulationProfile{Total: 130000, Residential: 50000, Working: 30000, Floating: 50000},
		TimeDist:        model.TimeDistribution{Morning: 10, Lunch: 20, Afternoon: 30, Evening: 30, Night: 10},
		AgeDist:         model.AgeDistribution{Teens: 10, Twenties: 30, Thirties: 25, Forties: 20, FiftyPlus: 15},
		Gender:          model.GenderRatio{Male: 48, Female: 52},
		PeakHours:       []string{"14-18시", "19-22시"},
		Characteristics: []string{"관광지", "계절 편차 큼", "해변 상권", "주말/휴가 집중"},
		AreaType:        AreaTourist,
	},
	{
		Name:            "서면",
		Coord:           model.Coordinates{Lat: 35.157896, Lng: 129.059118},
		Population:      PopulationProfile{Total: 140000, Residential: 30000, Working: 60000, Floating: 50000},
		TimeDist:        model.TimeDistribution{Morning: 12, Lunch: 25, Afternoon: 22, Evening: 30, Night: 11},
		AgeDist:         model.AgeDistribution{Teens: 12, Twenties: 35, Thirties: 28, Forties: 15, FiftyPlus: 10},
		Gender:          model.GenderRatio{Male: 47, Female: 53},
		PeakHours:       []string{"12-14시", "18-22시"},
		Characteristics: []string{"부산 최대 상권", "젊은층 밀집", "쇼핑+유흥 복합", "교통 요충지"},
		AreaType:        AreaMixed,
	},
}

// locationAliases maps common alternate names to the standard area name.
// More specific aliases are declared before broader ones within each group.
var locationAliases = []Pattern{
	{"홍대역", "홍대입구"},
	{"홍익대학교", "홍대입구"},
	{"홍익대", "홍대입구"},
	{"홍대", "홍대입구"},
	{"상수역", "홍대입구"},
	{"상수", "홍대입구"},
	{"합정", "홍대입구"},
	{"강남구 역삼동", "강남역"},
	{"역삼역", "강남역"},
	{"역삼", "강남역"},
	{"강남", "강남역"},
	{"건대역", "건대입구"},
	{"건국대학교", "건대입구"},
	{"건국대", "건대입구"},
	{"건대", "건대입구"},
	{"신촌역", "신촌"},
	{"연세대학교", "신촌"},
	{"연세대", "신촌"},
	{"이화여대", "신촌"},
	{"이대", "신촌"},
	{"잠실새내", "잠실"},
	{"잠실역", "잠실"},
	{"송파", "잠실"},
	{"롯데월드", "잠실"},
	{"명동역", "명동"},
	{"을지로", "명동"},
	{"충무로", "명동"},
	{"이태원역", "이태원"},
	{"경리단길", "이태원"},
	{"해방촌", "이태원"},
	{"여의도역", "여의도"},
	{"여의나루", "여의도"},
	{"국회의사당", "여의도"},
	{"서울역광장", "서울역"},
	{"남대문시장", "서울역"},
	{"남대문", "서울역"},
	{"판교테크노밸리", "판교"},
	{"판교역", "판교"},
	{"해운대해수욕장", "해운대"},
	{"해운대역", "해운대"},
	{"마린시티", "해운대"},
	{"서면역", "서면"},
	{"부산서면", "서면"},
}

// ProfileByName returns the curated profile for a standard area name.
func ProfileByName(name string) (AreaProfile, bool) {
	for _, p := range majorAreas {
		if p.Name == name {
			return p, true
		}
	}
	return AreaProfile{}, false
}

// FindArea resolves a free-text location to a curated area profile: the
// alias table is consulted first, then the standard names themselves via
// substring match. Returns false when no curated profile exists, signaling
// the caller to fall back to a live coordinate lookup plus area-type
// inference.
func FindArea(location string) (AreaProfile, bool) {
	c := Canonicalize(location)
	for _, alias := range locationAliases {
		if containsCanonical(c, alias.Match) {
			if p, ok := ProfileByName(alias.Key); ok {
				return p, true
			}
		}
	}
	for _, p := range majorAreas {
		if containsCanonical(c, p.Name) {
			return p, true
		}
	}
	return AreaProfile{}, false
}

func containsCanonical(canonicalInput, match string) bool {
	return match != "" && strings.Contains(canonicalInput, Canonicalize(match))
}

// areaTypePatterns drive InferAreaType for locations without a curated
// profile. First match wins; anything else is treated as a mixed area.
var areaTypePatterns = []Pattern{
	{"역", AreaStation},
	{"station", AreaStation},
	{"대학", AreaUniversity},
	{"학교", AreaUniversity},
	{"캠퍼스", AreaUniversity},
	{"오피스", AreaOffice},
	{"빌딩", AreaOffice},
	{"센터", AreaOffice},
	{"테크노", AreaOffice},
	{"아파트", AreaResidential},
	{"주공", AreaResidential},
	{"동", AreaResidential},
	{"마을", AreaResidential},
	{"해변", AreaTourist},
	{"관광", AreaTourist},
	{"공원", AreaTourist},
	{"명소", AreaTourist},
	{"유흥", AreaNightlife},
	{"클럽", AreaNightlife},
	{"바", AreaNightlife},
}

// InferAreaType guesses an area type from keywords in the location name.
func InferAreaType(location string) string {
	if key := matchFirst(areaTypePatterns, location); key != "" {
		return key
	}
	return AreaMixed
}

// areaTypeDefaults supplies a generic demographic pattern per area type,
// used when no curated profile matched.
var areaTypeDefaults = map[string]AreaProfile{
	AreaStation: {
		Population:      PopulationProfile{Total: 100000, Residential: 20000, Working: 40000, Floating: 40000},
		TimeDist:        model.TimeDistribution{Morning: 25, Lunch: 20, Afternoon: 18, Evening: 27, Night: 10},
		AgeDist:         model.AgeDistribution{Teens: 10, Twenties: 25, Thirties: 30, Forties: 22, FiftyPlus: 13},
		Gender:          model.GenderRatio{Male: 50, Female: 50},
		PeakHours:       []string{"08-10시", "17-20시"},
		Characteristics: []string{"출퇴근 인구 집중", "다양한 연령대", "빠른 회전"},
		AreaType:        AreaStation,
	},
	AreaUniversity: {
		Population:      PopulationProfile{Total: 80000, Residential: 25000, Working: 15000, Floating: 40000},
		TimeDist:        model.TimeDistribution{Morning: 10, Lunch: 25, Afternoon: 25, Evening: 28, Night: 12},
		AgeDist:         model.AgeDistribution{Teens: 15, Twenties: 50, Thirties: 20, Forties: 10, FiftyPlus: 5},
		Gender:          model.GenderRatio{Male: 48, Female: 52},
		PeakHours:       []string{"12-14시", "18-22시"},
		Characteristics: []string{"젊은층 밀집", "저가 선호", "방학 영향"},
		AreaType:        AreaUniversity,
	},
	AreaOffice: {
		Population:      PopulationProfile{Total: 90000, Residential: 10000, Working: 70000, Floating: 10000},
		TimeDist:        model.TimeDistribution{Morning: 20, Lunch: 35, Afternoon: 20, Evening: 20, Night: 5},
		AgeDist:         model.AgeDistribution{Teens: 3, Twenties: 22, Thirties: 38, Forties: 28, FiftyPlus: 9},
		Gender:          model.GenderRatio{Male: 55, Female: 45},
		PeakHours:       []string{"12-13시"},
		Characteristics: []string{"점심 특화", "주말 한산", "직장인 중심"},
		AreaType:        AreaOffice,
	},
	AreaResidential: {
		Population:      PopulationProfile{Total: 50000, Residential: 40000, Working: 5000, Floating: 5000},
		TimeDist:        model.TimeDistribution{Morning: 15, Lunch: 15, Afternoon: 20, Evening: 35, Night: 15},
		AgeDist:         model.AgeDistribution{Teens: 15, Twenties: 15, Thirties: 25, Forties: 25, FiftyPlus: 20},
		Gender:          model.GenderRatio{Male: 48, Female: 52},
		PeakHours:       []string{"18-21시"},
		Characteristics: []string{"저녁 시간 활성화", "가족 단위", "안정적 수요"},
		AreaType:        AreaResidential,
	},
	AreaTourist: {
		Population:      PopulationProfile{Total: 120000, Residential: 5000, Working: 25000, Floating: 90000},
		TimeDist:        model.TimeDistribution{Morning: 10, Lunch: 25, Afternoon: 35, Evening: 25, Night: 5},
		AgeDist:         model.AgeDistribution{Teens: 12, Twenties: 30, Thirties: 25, Forties: 20, FiftyPlus: 13},
		Gender:          model.GenderRatio{Male: 45, Female: 55},
		PeakHours:       []string{"13-17시"},
		Characteristics: []string{"주말/휴일 집중", "계절 편차", "관광객 중심"},
		AreaType:        AreaTourist,
	},
	AreaNightlife: {
		Population:      PopulationProfile{Total: 70000, Residential: 10000, Working: 15000, Floating: 45000},
		TimeDist:        model.TimeDistribution{Morning: 5, Lunch: 10, Afternoon: 15, Evening: 40, Night: 30},
		AgeDist:         model.AgeDistribution{Teens: 5, Twenties: 40, Thirties: 35, Forties: 15, FiftyPlus: 5},
		Gender:          model.GenderRatio{Male: 55, Female: 45},
		PeakHours:       []string{"20-24시"},
		Characteristics: []string{"야간 특화", "주류업 활성화", "주말 집중"},
		AreaType:        AreaNightlife,
	},
	AreaMixed: {
		Population:      PopulationProfile{Total: 90000, Residential: 25000, Working: 35000, Floating: 30000},
		TimeDist:        model.TimeDistribution{Morning: 14, Lunch: 23, Afternoon: 23, Evening: 28, Night: 12},
		AgeDist:         model.AgeDistribution{Teens: 10, Twenties: 30, Thirties: 28, Forties: 20, FiftyPlus: 12},
		Gender:          model.GenderRatio{Male: 49, Female: 51},
		PeakHours:       []string{"12-14시", "18-21시"},
		Characteristics: []string{"주거+상업 복합", "고른 시간대 분포"},
		AreaType:        AreaMixed,
	},
}

// AreaTypeDefault returns the generic pattern profile for an area type.
func AreaTypeDefault(areaType string) AreaProfile {
	if p, ok := areaTypeDefaults[areaType]; ok {
		return p
	}
	return areaTypeDefaults[AreaMixed]
}

// storeToPopulationRatio converts registry store counts into daily foot
// traffic, per area type. Hand-tuned constants; preserved as configuration.
var storeToPopulationRatio = map[string]int{
	AreaStation:     150,
	AreaUniversity:  120,
	AreaOffice:      100,
	AreaResidential: 80,
	AreaTourist:     200,
	AreaNightlife:   180,
	AreaMixed:       130,
}

const defaultStoreToPopulationRatio = 130

// StoreToPopulationRatio returns foot traffic per registered store for an
// area type.
func StoreToPopulationRatio(areaType string) int {
	if r, ok := storeToPopulationRatio[areaType]; ok {
		return r
	}
	return defaultStoreToPopulationRatio
}

// Age-group and time-slot keys used by target-fit profiles.
const (
	AgeTeens     = "teens"
	AgeTwenties  = "twenties"
	AgeThirties  = "thirties"
	AgeForties   = "forties"
	AgeFiftyPlus = "fiftyPlus"

	SlotMorning   = "morning"
	SlotLunch     = "lunch"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotNight     = "night"

	GenderFemale = "여성"
	GenderMale   = "남성"
	GenderAny    = "무관"
)

// TargetFit describes the customer profile a business type works best with.
type TargetFit struct {
	AgeGroups []string
	Gender    string
	AreaTypes []string
	TimeSlots []string
	Note      string
}

var targetFits = map[string]TargetFit{
	BizCafe: {
		AgeGroups: []string{AgeTwenties, AgeThirties},
		Gender:    GenderFemale,
		AreaTypes: []string{AreaUniversity, AreaOffice, AreaMixed},
		TimeSlots: []string{SlotAfternoon, SlotEvening},
		Note:      "20-30대 여성, 오후 시간대 유동인구 중요",
	},
	BizRestaurant: {
		AgeGroups: []string{AgeThirties, AgeForties},
		Gender:    GenderAny,
		AreaTypes: []string{AreaStation, AreaOffice, AreaResidential},
		TimeSlots: []string{SlotLunch, SlotEvening},
		Note:      "점심/저녁 피크타임, 직장인+가족 수요",
	},
	BizConvenience: {
		AgeGroups: []string{AgeTwenties, AgeThirties},
		Gender:    GenderAny,
		AreaTypes: []string{AreaStation, AreaResidential, AreaUniversity},
		TimeSlots: []string{SlotMorning, SlotNight},
		Note:      "24시간 수요, 출퇴근/야간 수요 중요",
	},
	BizHairSalon: {
		AgeGroups: []string{AgeTwenties, AgeThirties, AgeForties},
		Gender:    GenderFemale,
		AreaTypes: []string{AreaResidential, AreaStation},
		TimeSlots: []string{SlotAfternoon, SlotEvening},
		Note:      "여성 비율, 주거지 접근성 중요",
	},
	BizChicken: {
		AgeGroups: []string{AgeTwenties, AgeThirties},
		Gender:    GenderAny,
		AreaTypes: []string{AreaResidential, AreaUniversity},
		TimeSlots: []string{SlotEvening, SlotNight},
		Note:      "야간 배달 수요, 주거지 인접 유리",
	},
	BizPub: {
		AgeGroups: []string{AgeTwenties, AgeThirties},
		Gender:    GenderMale,
		AreaTypes: []string{AreaNightlife, AreaStation, AreaOffice},
		TimeSlots: []string{SlotEvening, SlotNight},
		Note:      "야간 수요, 직장인/젊은층 밀집 지역",
	},
	BizSnackBar: {
		AgeGroups: []string{AgeTeens, AgeTwenties},
		Gender:    GenderAny,
		AreaTypes: []string{AreaUniversity, AreaStation},
		TimeSlots: []string{SlotLunch, SlotAfternoon},
		Note:      "학생/젊은층, 저가 메뉴 선호 지역",
	},
	BizBakery: {
		AgeGroups: []string{AgeTwenties, AgeThirties, AgeForties},
		Gender:    GenderFemale,
		AreaTypes: []string{AreaStation, AreaResidential, AreaMixed},
		TimeSlots: []string{SlotMorning, SlotAfternoon},
		Note:      "아침/오후 수요, 여성 비율 중요",
	},
	BizUnmanned: {
		AgeGroups: []string{AgeTwenties, AgeThirties},
		Gender:    GenderAny,
		AreaTypes: []string{AreaResidential, AreaStation},
		TimeSlots: []string{SlotNight},
		Note:      "야간/새벽 수요, 주거지 인접 유리",
	},
	BizStudyCafe: {
		AgeGroups: []string{AgeTeens, AgeTwenties},
		Gender:    GenderAny,
		AreaTypes: []string{AreaUniversity, AreaResidential},
		TimeSlots: []string{SlotAfternoon, SlotEvening, SlotNight},
		Note:      "학생 밀집, 시험 시즌 고려",
	},
	BizNailShop: {
		AgeGroups: []string{AgeTwenties, AgeThirties},
		Gender:    GenderFemale,
		AreaTypes: []string{AreaStation, AreaResidential, AreaMixed},
		TimeSlots: []string{SlotAfternoon, SlotEvening},
		Note:      "여성 비율 높을수록 유리",
	},
	BizPetService: {
		AgeGroups: []string{AgeThirties, AgeForties},
		Gender:    GenderAny,
		AreaTypes: []string{AreaResidential},
		TimeSlots: []string{SlotAfternoon, SlotEvening},
		Note:      "반려인 밀집 주거지, 주말 수요",
	},
}

// TargetFitFor returns the target-fit profile for a canonical business type.
// Unknown types fall back to the cafe profile, the broadest of the set.
func TargetFitFor(businessType string) (TargetFit, bool) {
	fit, ok := targetFits[businessType]
	if !ok {
		return targetFits[BizCafe], false
	}
	return fit, true
}
