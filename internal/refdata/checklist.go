package refdata

// License is one permit or registration required before opening.
type License struct {
	Name           string   `json:"name"`
	Authority      string   `json:"authority"`
	Required       bool     `json:"required"`
	ProcessingDays int      `json:"processingDays"`
	Documents      []string `json:"documents"`
}

// licenseDB keys on canonical business types; the 기타 entry covers
// everything without a dedicated listing. Checklist lookups never fail on
// unknown types, they degrade to the generic entry.
const checklistDefaultKey = "기타"

var licenseDB = map[string][]License{
	BizCafe: {
		{
			Name:           "휴게음식점 영업신고",
			Authority:      "관할 구청 위생과",
			Required:       true,
			ProcessingDays: 3,
			Documents:      []string{"영업신고서", "위생교육 수료증", "건강진단결과서", "임대차계약서"},
		},
		{
			Name:           "사업자등록",
			Authority:      "관할 세무서",
			Required:       true,
			ProcessingDays: 2,
			Documents:      []string{"사업자등록신청서", "임대차계약서", "영업신고증"},
		},
	},
	BizRestaurant: {
		{
			Name:           "일반음식점 영업신고",
			Authority:      "관할 구청 위생과",
			Required:       true,
			ProcessingDays: 3,
			Documents:      []string{"영업신고서", "위생교육 수료증", "건강진단결과서", "임대차계약서", "소방시설 완비증명서(지하/2층 이상 100㎡ 이상)"},
		},
		{
			Name:           "사업자등록",
			Authority:      "관할 세무서",
			Required:       true,
			ProcessingDays: 2,
			Documents:      []string{"사업자등록신청서", "임대차계약서", "영업신고증"},
		},
		{
			Name:           "주류판매업 면허",
			Authority:      "관할 세무서",
			Required:       false,
			ProcessingDays: 7,
			Documents:      []string{"주류판매업면허신청서", "사업자등록증"},
		},
	},
	BizConvenience: {
		{
			Name:           "사업자등록",
			Authority:      "관할 세무서",
			Required:       true,
			ProcessingDays: 2,
			Documents:      []string{"사업자등록신청서", "임대차계약서", "가맹계약서"},
		},
		{
			Name:           "담배소매인 지정",
			Authority:      "관할 구청",
			Required:       false,
			ProcessingDays: 14,
			Documents:      []string{"담배소매인지정신청서", "점포 도면", "임대차계약서"},
		},
		{
			Name:           "통신판매업 신고",
			Authority:      "관할 구청",
			Required:       false,
			ProcessingDays: 3,
			Documents:      []string{"통신판매업신고서", "사업자등록증"},
		},
	},
	BizHairSalon: {
		{
			Name:           "미용업 영업신고",
			Authority:      "관할 구청 위생과",
			Required:       true,
			ProcessingDays: 3,
			Documents:      []string{"영업신고서", "미용사 면허증", "위생교육 수료증", "임대차계약서"},
		},
		{
			Name:           "사업자등록",
			Authority:      "관할 세무서",
			Required:       true,
			ProcessingDays: 2,
			Documents:      []string{"사업자등록신청서", "임대차계약서", "영업신고증"},
		},
	},
	checklistDefaultKey: {
		{
			Name:           "사업자등록",
			Authority:      "관할 세무서",
			Required:       true,
			ProcessingDays: 2,
			Documents:      []string{"사업자등록신청서", "임대차계약서"},
		},
		{
			Name:           "영업신고/등록 해당 여부 확인",
			Authority:      "관할 구청",
			Required:       false,
			ProcessingDays: 3,
			Documents:      []string{"업종별 인허가 자가진단(정부24)"},
		},
	},
}

// ChecklistStep is one pre-opening task with a rough schedule position.
type ChecklistStep struct {
	Order int    `json:"order"`
	Phase string `json:"phase"`
	Task  string `json:"task"`
}

var checklistDB = map[string][]ChecklistStep{
	checklistDefaultKey: {
		{Order: 1, Phase: "D-60", Task: "상권/입지 분석 및 점포 계약"},
		{Order: 2, Phase: "D-45", Task: "사업자등록 및 인허가 신청"},
		{Order: 3, Phase: "D-40", Task: "인테리어 업체 선정 및 착공"},
		{Order: 4, Phase: "D-21", Task: "설비/집기 발주"},
		{Order: 5, Phase: "D-14", Task: "직원 채용 및 교육"},
		{Order: 6, Phase: "D-7", Task: "POS/결제 시스템 설치, 초도 물품 입고"},
		{Order: 7, Phase: "D-3", Task: "가오픈 운영 점검"},
		{Order: 8, Phase: "D-DAY", Task: "정식 오픈"},
	},
	BizCafe: {
		{Order: 1, Phase: "D-60", Task: "상권/입지 분석 및 점포 계약"},
		{Order: 2, Phase: "D-50", Task: "위생교육 수료 및 건강진단"},
		{Order: 3, Phase: "D-45", Task: "휴게음식점 영업신고, 사업자등록"},
		{Order: 4, Phase: "D-40", Task: "인테리어 착공"},
		{Order: 5, Phase: "D-30", Task: "에스프레소 머신 등 주방설비 발주"},
		{Order: 6, Phase: "D-14", Task: "원두/부자재 납품처 계약, 메뉴 확정"},
		{Order: 7, Phase: "D-7", Task: "POS 설치, 바리스타 교육"},
		{Order: 8, Phase: "D-3", Task: "가오픈 운영 점검"},
		{Order: 9, Phase: "D-DAY", Task: "정식 오픈"},
	},
	BizRestaurant: {
		{Order: 1, Phase: "D-60", Task: "상권/입지 분석 및 점포 계약"},
		{Order: 2, Phase: "D-50", Task: "위생교육 수료 및 건강진단"},
		{Order: 3, Phase: "D-45", Task: "일반음식점 영업신고, 사업자등록"},
		{Order: 4, Phase: "D-40", Task: "주방 설계 포함 인테리어 착공"},
		{Order: 5, Phase: "D-30", Task: "주방설비 발주, 주류면허 신청"},
		{Order: 6, Phase: "D-21", Task: "식자재 납품처 계약, 메뉴/원가 확정"},
		{Order: 7, Phase: "D-14", Task: "주방/홀 인력 채용 및 교육"},
		{Order: 8, Phase: "D-3", Task: "가오픈 운영 점검"},
		{Order: 9, Phase: "D-DAY", Task: "정식 오픈"},
	},
}

// AdminCost is a licensing/registration expense line, in 만원.
type AdminCost struct {
	Item   string `json:"item"`
	Amount int    `json:"amount"`
	Note   string `json:"note,omitempty"`
}

var adminCostDB = map[string][]AdminCost{
	checklistDefaultKey: {
		{Item: "등록면허세", Amount: 5, Note: "지자체별 상이"},
		{Item: "인감/서류 발급 비용", Amount: 2},
	},
	BizCafe: {
		{Item: "위생교육비", Amount: 3},
		{Item: "건강진단비", Amount: 1},
		{Item: "등록면허세", Amount: 5, Note: "지자체별 상이"},
	},
	BizRestaurant: {
		{Item: "위생교육비", Amount: 3},
		{Item: "건강진단비", Amount: 1},
		{Item: "주류면허 수수료", Amount: 5, Note: "주류 취급 시"},
		{Item: "등록면허세", Amount: 5, Note: "지자체별 상이"},
	},
	BizHairSalon: {
		{Item: "위생교육비", Amount: 3},
		{Item: "등록면허세", Amount: 5, Note: "지자체별 상이"},
	},
}

// checklistKey maps a free-text business type onto the checklist tables,
// degrading to the generic entry.
func checklistKey(businessType string) string {
	bt := NormalizeBusinessType(businessType)
	if _, ok := licenseDB[bt]; ok {
		return bt
	}
	return checklistDefaultKey
}

// Licenses returns the permit list for a business type. The second return
// reports whether a type-specific listing (vs the generic one) was found.
func Licenses(businessType string) ([]License, bool) {
	key := checklistKey(businessType)
	return licenseDB[key], key != checklistDefaultKey
}

// Checklist returns the pre-opening task schedule for a business type.
func Checklist(businessType string) []ChecklistStep {
	bt := NormalizeBusinessType(businessType)
	if steps, ok := checklistDB[bt]; ok {
		return steps
	}
	return checklistDB[checklistDefaultKey]
}

// AdminCosts returns licensing expense lines for a business type.
func AdminCosts(businessType string) []AdminCost {
	bt := NormalizeBusinessType(businessType)
	if costs, ok := adminCostDB[bt]; ok {
		return costs
	}
	return adminCostDB[checklistDefaultKey]
}

var commonChecklistTips = []string{
	"인허가는 인테리어 착공 전에 가능 여부부터 확인하세요. 용도변경이 필요한 건물이면 일정이 한 달 이상 밀립니다",
	"임대차 계약 전 건축물대장에서 위반건축물 여부를 반드시 확인하세요",
	"위생교육은 온라인 수료가 가능하며 영업신고 전 완료해야 합니다",
}

var checklistTips = map[string][]string{
	BizCafe: {
		"2층 이상 또는 지하 점포는 휴게음식점도 소방 규정을 확인해야 합니다",
	},
	BizRestaurant: {
		"정화조 용량 부족으로 영업신고가 반려되는 사례가 잦습니다. 계약 전 확인하세요",
	},
	BizConvenience: {
		"담배권 유무가 매출에 큰 영향을 줍니다. 기존 소매인과의 거리 제한을 확인하세요",
	},
	BizHairSalon: {
		"미용사 면허가 없으면 영업신고 자체가 불가합니다. 면허 소지자 고용 여부를 먼저 정하세요",
	},
}

// ChecklistTips returns the common cautions plus any type-specific ones.
func ChecklistTips(businessType string) []string {
	tips := append([]string{}, commonChecklistTips...)
	if extra, ok := checklistTips[NormalizeBusinessType(businessType)]; ok {
		tips = append(tips, extra...)
	}
	return tips
}
