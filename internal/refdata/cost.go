package refdata

import "github.com/sangkwonlab/sangkwon-cli/internal/model"

// Interior grade keys and their display labels.
const (
	GradeBasic    = "basic"
	GradeStandard = "standard"
	GradePremium  = "premium"
)

var gradeLabels = map[string]string{
	GradeBasic:    "기본",
	GradeStandard: "중급",
	GradePremium:  "고급",
}

// GradeLabel returns the Korean display label for an interior grade key.
func GradeLabel(grade string) string {
	if l, ok := gradeLabels[grade]; ok {
		return l
	}
	return gradeLabels[GradeStandard]
}

// CostProfile holds nationwide-average startup cost components for a
// business type. Monetary values in 만원; InteriorPerPyeong is per 평.
type CostProfile struct {
	Deposit           model.Range
	InteriorPerPyeong map[string]int
	Equipment         model.Range
	Inventory         model.Range
	MonthlyOperating  int
}

var costProfiles = map[string]CostProfile{
	BizCafe: {
		Deposit:           model.Range{Min: 1000, Max: 3000},
		InteriorPerPyeong: map[string]int{GradeBasic: 80, GradeStandard: 120, GradePremium: 180},
		Equipment:         model.Range{Min: 1500, Max: 3000},
		Inventory:         model.Range{Min: 200, Max: 400},
		MonthlyOperating:  300,
	},
	BizRestaurant: {
		Deposit:           model.Range{Min: 1500, Max: 4000},
		InteriorPerPyeong: map[string]int{GradeBasic: 100, GradeStandard: 150, GradePremium: 220},
		Equipment:         model.Range{Min: 2000, Max: 4000},
		Inventory:         model.Range{Min: 300, Max: 600},
		MonthlyOperating:  400,
	},
	BizConvenience: {
		Deposit:           model.Range{Min: 1000, Max: 3000},
		InteriorPerPyeong: map[string]int{GradeBasic: 60, GradeStandard: 90, GradePremium: 130},
		Equipment:         model.Range{Min: 2500, Max: 4500},
		Inventory:         model.Range{Min: 1500, Max: 2500},
		MonthlyOperating:  350,
	},
	BizHairSalon: {
		Deposit:           model.Range{Min: 1000, Max: 2500},
		InteriorPerPyeong: map[string]int{GradeBasic: 90, GradeStandard: 140, GradePremium: 200},
		Equipment:         model.Range{Min: 1000, Max: 2500},
		Inventory:         model.Range{Min: 100, Max: 300},
		MonthlyOperating:  250,
	},
	BizChicken: {
		Deposit:           model.Range{Min: 1000, Max: 2500},
		InteriorPerPyeong: map[string]int{GradeBasic: 70, GradeStandard: 100, GradePremium: 150},
		Equipment:         model.Range{Min: 1200, Max: 2500},
		Inventory:         model.Range{Min: 200, Max: 400},
		MonthlyOperating:  300,
	},
	BizPub: {
		Deposit:           model.Range{Min: 1500, Max: 3500},
		InteriorPerPyeong: map[string]int{GradeBasic: 90, GradeStandard: 130, GradePremium: 190},
		Equipment:         model.Range{Min: 1000, Max: 2500},
		Inventory:         model.Range{Min: 300, Max: 500},
		MonthlyOperating:  350,
	},
	BizSnackBar: {
		Deposit:           model.Range{Min: 800, Max: 2000},
		InteriorPerPyeong: map[string]int{GradeBasic: 60, GradeStandard: 90, GradePremium: 130},
		Equipment:         model.Range{Min: 800, Max: 1500},
		Inventory:         model.Range{Min: 100, Max: 300},
		MonthlyOperating:  250,
	},
	BizBakery: {
		Deposit:           model.Range{Min: 1200, Max: 3000},
		InteriorPerPyeong: map[string]int{GradeBasic: 90, GradeStandard: 140, GradePremium: 200},
		Equipment:         model.Range{Min: 3000, Max: 6000},
		Inventory:         model.Range{Min: 200, Max: 400},
		MonthlyOperating:  350,
	},
	BizUnmanned: {
		Deposit:           model.Range{Min: 800, Max: 2000},
		InteriorPerPyeong: map[string]int{GradeBasic: 50, GradeStandard: 80, GradePremium: 120},
		Equipment:         model.Range{Min: 2000, Max: 4000},
		Inventory:         model.Range{Min: 300, Max: 600},
		MonthlyOperating:  150,
	},
	BizStudyCafe: {
		Deposit:           model.Range{Min: 1500, Max: 3500},
		InteriorPerPyeong: map[string]int{GradeBasic: 100, GradeStandard: 150, GradePremium: 220},
		Equipment:         model.Range{Min: 1500, Max: 3000},
		Inventory:         model.Range{Min: 50, Max: 150},
		MonthlyOperating:  250,
	},
	BizNailShop: {
		Deposit:           model.Range{Min: 800, Max: 2000},
		InteriorPerPyeong: map[string]int{GradeBasic: 80, GradeStandard: 120, GradePremium: 170},
		Equipment:         model.Range{Min: 500, Max: 1200},
		Inventory:         model.Range{Min: 100, Max: 250},
		MonthlyOperating:  200,
	},
	BizPetService: {
		Deposit:           model.Range{Min: 1000, Max: 2500},
		InteriorPerPyeong: map[string]int{GradeBasic: 80, GradeStandard: 120, GradePremium: 180},
		Equipment:         model.Range{Min: 800, Max: 2000},
		Inventory:         model.Range{Min: 200, Max: 400},
		MonthlyOperating:  250,
	},
}

// CostProfileFor returns the startup-cost components for a canonical
// business type.
func CostProfileFor(businessType string) (CostProfile, bool) {
	p, ok := costProfiles[businessType]
	return p, ok
}

// costSavingTips lists practical ways to cut startup cost. The 공통 key
// applies to every business type and is always included first.
var costSavingTips = map[string][]string{
	"공통": {
		"권리금 없는 신규 상가나 공실 장기화 점포를 노리면 초기 비용을 크게 줄일 수 있습니다",
		"중고 집기/설비 활용 시 설비 비용을 30-50% 절감할 수 있습니다",
		"소상공인시장진흥공단 정책자금으로 저금리 대출이 가능합니다",
	},
	BizCafe: {
		"에스프레소 머신은 리스 계약으로 초기 부담을 줄일 수 있습니다",
		"로스팅 원두 직매입 대신 납품 계약으로 재고 부담을 낮추세요",
	},
	BizRestaurant: {
		"주방 설비는 폐업 점포 인수 시 절반 이하 비용으로 확보 가능합니다",
		"식자재 공동구매 조합 가입으로 원가율을 낮출 수 있습니다",
	},
	BizConvenience: {
		"본사 지원형 가맹 계약은 초기 시설비 부담이 적은 대신 수익 배분율을 확인하세요",
	},
	BizHairSalon: {
		"미용 의자/기기 리스와 중고 거래가 활발해 설비비 절감 여지가 큽니다",
	},
	BizUnmanned: {
		"무인 키오스크는 렌탈 계약이 일반적이라 초기 설비비를 월 비용으로 분산할 수 있습니다",
	},
	BizStudyCafe: {
		"좌석 관리 시스템은 구독형 서비스로 시작해 초기 개발비를 아끼세요",
	},
}

// CostSavingTips returns the common tips plus any type-specific ones.
func CostSavingTips(businessType string) []string {
	tips := append([]string{}, costSavingTips["공통"]...)
	if extra, ok := costSavingTips[businessType]; ok {
		tips = append(tips, extra...)
	}
	return tips
}

// Benchmark holds operating-cost and pricing figures used for breakeven
// analysis. Monetary fields in 만원 except AvgPrice, which is in KRW.
// Utilities is for a reference 15평 store and scales with floor area.
type Benchmark struct {
	RentPerPyeong  int
	LaborPerPerson int
	MinStaff       int
	Utilities      int
	OtherFixed     int
	VariableRatio  float64
	AvgPrice       int
}

var benchmarks = map[string]Benchmark{
	BizCafe:        {RentPerPyeong: 12, LaborPerPerson: 230, MinStaff: 2, Utilities: 50, OtherFixed: 80, VariableRatio: 0.35, AvgPrice: 6000},
	BizRestaurant:  {RentPerPyeong: 13, LaborPerPerson: 250, MinStaff: 3, Utilities: 80, OtherFixed: 100, VariableRatio: 0.40, AvgPrice: 12000},
	BizConvenience: {RentPerPyeong: 11, LaborPerPerson: 220, MinStaff: 3, Utilities: 100, OtherFixed: 120, VariableRatio: 0.70, AvgPrice: 6000},
	BizHairSalon:   {RentPerPyeong: 12, LaborPerPerson: 250, MinStaff: 2, Utilities: 40, OtherFixed: 70, VariableRatio: 0.20, AvgPrice: 50000},
	BizChicken:     {RentPerPyeong: 11, LaborPerPerson: 230, MinStaff: 2, Utilities: 70, OtherFixed: 90, VariableRatio: 0.45, AvgPrice: 20000},
	BizPub:         {RentPerPyeong: 12, LaborPerPerson: 230, MinStaff: 3, Utilities: 70, OtherFixed: 100, VariableRatio: 0.40, AvgPrice: 25000},
	BizSnackBar:    {RentPerPyeong: 10, LaborPerPerson: 220, MinStaff: 2, Utilities: 60, OtherFixed: 60, VariableRatio: 0.40, AvgPrice: 7000},
	BizBakery:      {RentPerPyeong: 12, LaborPerPerson: 240, MinStaff: 2, Utilities: 80, OtherFixed: 90, VariableRatio: 0.40, AvgPrice: 8000},
	BizUnmanned:    {RentPerPyeong: 10, LaborPerPerson: 230, MinStaff: 0, Utilities: 60, OtherFixed: 70, VariableRatio: 0.30, AvgPrice: 5000},
	BizStudyCafe:   {RentPerPyeong: 11, LaborPerPerson: 210, MinStaff: 1, Utilities: 90, OtherFixed: 70, VariableRatio: 0.15, AvgPrice: 8000},
	BizNailShop:    {RentPerPyeong: 11, LaborPerPerson: 220, MinStaff: 1, Utilities: 30, OtherFixed: 50, VariableRatio: 0.25, AvgPrice: 50000},
	BizPetService:  {RentPerPyeong: 11, LaborPerPerson: 230, MinStaff: 2, Utilities: 50, OtherFixed: 70, VariableRatio: 0.35, AvgPrice: 30000},
}

// BenchmarkFor returns the operating benchmark for a canonical business
// type.
func BenchmarkFor(businessType string) (Benchmark, bool) {
	b, ok := benchmarks[businessType]
	return b, ok
}

// Scenario multipliers applied to breakeven revenue when projecting
// pessimistic/realistic/optimistic outcomes.
const (
	ScenarioPessimistic = 0.7
	ScenarioRealistic   = 1.0
	ScenarioOptimistic  = 1.3
)

// PaybackAssessment labels an investment recovery period in months.
func PaybackAssessment(months int) string {
	switch {
	case months <= 12:
		return "매우 우수: 1년 내 투자금 회수 가능"
	case months <= 24:
		return "양호: 2년 내 회수로 업계 평균 수준"
	case months <= 36:
		return "보통: 3년 내 회수, 임대차 계약 기간을 고려하세요"
	default:
		return "장기: 회수 기간이 길어 사업성 재검토가 필요합니다"
	}
}

// AchievabilityAssessment labels how realistic a daily customer target is.
func AchievabilityAssessment(dailyCustomers int) string {
	switch {
	case dailyCustomers <= 50:
		return "달성 용이: 소규모 고객으로도 손익분기 도달 가능"
	case dailyCustomers <= 100:
		return "보통: 안정적인 유동인구 확보가 필요한 수준"
	default:
		return "도전적: 높은 회전율 또는 객단가 개선 전략이 필요합니다"
	}
}

// breakevenInsights gives one strategic note per business type; 공통 always
// leads the list.
var breakevenInsights = map[string][]string{
	"공통": {
		"고정비 비중이 높을수록 매출 변동에 취약합니다. 임대료 협상이 최우선 과제입니다",
	},
	BizCafe: {
		"객단가가 낮아 회전율 확보가 핵심입니다. 테이크아웃 비중을 높이세요",
	},
	BizRestaurant: {
		"식자재 원가율 관리가 손익을 좌우합니다. 메뉴 수를 줄여 로스를 낮추세요",
	},
	BizConvenience: {
		"변동비율이 높은 구조라 매출 규모 자체가 중요합니다. 24시간 운영 인건비를 점검하세요",
	},
	BizHairSalon: {
		"고정 고객 재방문율이 손익분기 도달 속도를 결정합니다",
	},
	BizChicken: {
		"배달 수수료가 실질 변동비를 높입니다. 자체 주문 채널 비중을 키우세요",
	},
	BizPub: {
		"주말/야간 집중 매출 구조라 평일 낮 시간대 활용 방안이 필요합니다",
	},
	BizUnmanned: {
		"인건비가 없는 대신 기기 렌탈료와 관리 비용을 고정비로 반영해야 합니다",
	},
	BizStudyCafe: {
		"좌석 가동률이 핵심 지표입니다. 시험 기간 외 비수기 상품을 설계하세요",
	},
}

// BreakevenInsights returns the common insight plus any type-specific ones.
func BreakevenInsights(businessType string) []string {
	out := append([]string{}, breakevenInsights["공통"]...)
	if extra, ok := breakevenInsights[businessType]; ok {
		out = append(out, extra...)
	}
	return out
}
