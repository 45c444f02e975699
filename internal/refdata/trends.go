package refdata

// TrendEntry is one industry trend line compiled from public small-business
// statistics.
type TrendEntry struct {
	BusinessType string  `json:"businessType"`
	GrowthRate   float64 `json:"growthRate"` // year-over-year store count change, percent
	StoreCount   int     `json:"storeCount"`
	Note         string  `json:"note"`
}

var risingTrends = []TrendEntry{
	{BusinessType: BizUnmanned, GrowthRate: 18.5, StoreCount: 12000, Note: "인건비 부담 회피 수요로 무인 아이스크림/세탁/밀키트 매장 급증"},
	{BusinessType: BizPetService, GrowthRate: 12.3, StoreCount: 28000, Note: "반려가구 증가로 미용/호텔/용품 수요 동반 성장"},
	{BusinessType: BizStudyCafe, GrowthRate: 9.8, StoreCount: 15000, Note: "독서실 대체재로 자리잡으며 프랜차이즈 중심 확산"},
	{BusinessType: BizBakery, GrowthRate: 7.2, StoreCount: 38000, Note: "디저트 전문점 분화로 객단가 상승 추세"},
	{BusinessType: BizNailShop, GrowthRate: 5.4, StoreCount: 42000, Note: "1인샵 창업 진입장벽이 낮아 꾸준히 증가"},
	{BusinessType: BizCafe, GrowthRate: 3.1, StoreCount: 95000, Note: "증가세 둔화, 저가 브랜드와 스페셜티로 양극화"},
}

var decliningTrends = []TrendEntry{
	{BusinessType: BizPub, GrowthRate: -8.7, StoreCount: 52000, Note: "회식 문화 축소와 홈술 확산으로 감소세 지속"},
	{BusinessType: BizSnackBar, GrowthRate: -5.2, StoreCount: 45000, Note: "저가 경쟁 심화로 폐업률 상위 업종"},
	{BusinessType: BizConvenience, GrowthRate: -2.8, StoreCount: 55000, Note: "점포 포화로 신규 출점 제한, 기존점 매출 정체"},
	{BusinessType: BizHairSalon, GrowthRate: -1.9, StoreCount: 110000, Note: "공급 과잉 상태, 1인샵 전환이 활로"},
	{BusinessType: BizChicken, GrowthRate: -1.2, StoreCount: 87000, Note: "배달 수수료 부담으로 수익성 악화"},
}

// RisingTrends returns growth industries in descending growth order.
func RisingTrends() []TrendEntry {
	return append([]TrendEntry{}, risingTrends...)
}

// DecliningTrends returns shrinking industries, steepest decline first.
func DecliningTrends() []TrendEntry {
	return append([]TrendEntry{}, decliningTrends...)
}

// TrendInsights are the cross-industry observations shown with every trend
// report.
var TrendInsights = []string{
	"무인/비대면 업종이 3년 연속 최고 성장률을 기록 중입니다",
	"외식업은 전반적으로 포화 상태이며 배달 의존도가 수익성을 좌우합니다",
	"1인 운영 가능한 업종(네일샵, 스터디카페)의 창업 비중이 커지고 있습니다",
	"프랜차이즈 가맹보다 개인 브랜드 창업의 생존율 격차가 줄어드는 추세입니다",
	"임대료 상승으로 10평 이하 소형 점포 선호가 뚜렷해졌습니다",
}

// RegionalTrend summarizes a region's commercial climate.
type RegionalTrend struct {
	Trend         string   `json:"trend"`
	TopIndustries []string `json:"topIndustries"`
}

var regionalTrends = map[string]RegionalTrend{
	"서울": {
		Trend:         "핵심 상권 임대료 회복세, 외곽 역세권으로 창업 수요 이동",
		TopIndustries: []string{BizCafe, BizRestaurant, BizNailShop},
	},
	"부산": {
		Trend:         "관광 상권 중심 회복, 해운대/서면 외 지역은 정체",
		TopIndustries: []string{BizCafe, BizRestaurant, BizPub},
	},
	"경기": {
		Trend:         "신도시 상가 공급 과잉, 입주 완료 지역 위주로 선별 접근 필요",
		TopIndustries: []string{BizConvenience, BizChicken, BizStudyCafe},
	},
	"대전": {
		Trend:         "연구단지 배후 수요 안정적, 원도심 공실률 높음",
		TopIndustries: []string{BizRestaurant, BizCafe, BizSnackBar},
	},
	"인천": {
		Trend:         "송도/청라 신규 상권 성장, 구도심과 양극화",
		TopIndustries: []string{BizCafe, BizConvenience, BizPetService},
	},
	"제주": {
		Trend:         "관광 수요 의존도 높아 계절 편차 극심, 카페 밀도 전국 최고",
		TopIndustries: []string{BizCafe, BizRestaurant, BizBakery},
	},
}

// RegionalTrendFor returns the trend summary for a region name, matching on
// the canonical region key's city component.
func RegionalTrendFor(region string) (RegionalTrend, bool) {
	if t, ok := regionalTrends[region]; ok {
		return t, true
	}
	for name, t := range regionalTrends {
		if matchFirst([]Pattern{{name, name}}, region) != "" {
			return t, true
		}
	}
	return RegionalTrend{}, false
}

// TrendRecommendation builds an interpretation for a specific business type
// against the trend tables.
func TrendRecommendation(businessType string) string {
	for _, e := range risingTrends {
		if e.BusinessType == businessType {
			if e.GrowthRate >= 10 {
				return "고성장 업종입니다. 다만 성장 업종은 신규 진입도 빠르게 늘어나니 차별화 요소를 먼저 확보하세요"
			}
			return "성장 업종입니다. 입지만 받쳐준다면 진입을 긍정적으로 검토할 만합니다"
		}
	}
	for _, e := range decliningTrends {
		if e.BusinessType == businessType {
			if e.GrowthRate <= -5 {
				return "뚜렷한 감소 업종입니다. 기존점 인수 등 초기 비용을 최소화하는 전략이 아니라면 재고를 권합니다"
			}
			return "정체/감소 업종입니다. 틈새 컨셉 없이 일반형 창업은 신중해야 합니다"
		}
	}
	return "통계상 뚜렷한 증감이 없는 업종입니다. 상권 단위 경쟁 분석으로 판단하세요"
}

// BudgetRecommendation suggests suitable business types per startup budget,
// in 만원.
func BudgetRecommendation(budget int) (types []string, note string) {
	switch {
	case budget < 5000:
		return []string{BizUnmanned, BizNailShop, BizSnackBar},
			"5천만원 미만은 소형/1인 운영 업종이 현실적입니다"
	case budget < 10000:
		return []string{BizCafe, BizStudyCafe, BizChicken},
			"1억원 미만은 10-15평 규모 표준 창업이 가능한 구간입니다"
	default:
		return []string{BizRestaurant, BizBakery, BizConvenience},
			"1억원 이상은 설비 비중이 큰 업종까지 선택지가 넓어집니다"
	}
}
