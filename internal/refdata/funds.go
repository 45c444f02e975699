package refdata

import "strings"

// PolicyFund is one government startup support program. Requirements is
// free text; eligibility rules in MatchFunds key off phrases within it.
type PolicyFund struct {
	Name         string `json:"name"`
	Agency       string `json:"agency"`
	Support      string `json:"support"`
	Requirements string `json:"requirements"`
	Window       string `json:"window"`
	URL          string `json:"url"`
}

// FounderProfile describes the applicant used for fund matching.
type FounderProfile struct {
	Age          int
	FounderType  string // 청년, 여성, 중장년, 일반
	Region       string
	BusinessType string
	Stage        string // 예비, 초기, 재창업
}

var policyFunds = []PolicyFund{
	{
		Name:         "청년창업사관학교",
		Agency:       "중소벤처기업진흥공단",
		Support:      "최대 1억원 (총 사업비의 70% 이내)",
		Requirements: "만 39세 이하, 창업 3년 이내",
		Window:       "매년 1-2월 모집",
		URL:          "https://start.kosmes.or.kr",
	},
	{
		Name:         "소상공인 정책자금",
		Agency:       "소상공인시장진흥공단",
		Support:      "최대 7천만원 저금리 대출",
		Requirements: "소상공인 (상시근로자 5인 미만)",
		Window:       "연중 상시",
		URL:          "https://ols.semas.or.kr",
	},
	{
		Name:         "서울시 청년창업지원",
		Agency:       "서울특별시",
		Support:      "최대 5천만원 + 사무공간 지원",
		Requirements: "서울 거주, 만 39세 이하",
		Window:       "매년 상/하반기 모집",
		URL:          "https://www.seoul.go.kr",
	},
	{
		Name:         "여성창업경진대회",
		Agency:       "여성기업종합지원센터",
		Support:      "최대 3천만원 사업화 자금",
		Requirements: "여성 예비창업자 또는 창업 3년 이내 여성 대표",
		Window:       "매년 4-5월 모집",
		URL:          "https://www.wbiz.or.kr",
	},
	{
		Name:         "소상공인 새출발기금",
		Agency:       "캠코",
		Support:      "채무조정 + 재창업 자금 연계",
		Requirements: "폐업 경험이 있는 재창업 소상공인",
		Window:       "연중 상시",
		URL:          "https://www.newstartfund.or.kr",
	},
	{
		Name:         "기술창업 아이디어 사업화",
		Agency:       "창업진흥원",
		Support:      "최대 5천만원 시제품 제작 지원",
		Requirements: "예비창업자 또는 창업 3년 이내",
		Window:       "매년 3월 모집",
		URL:          "https://www.k-startup.go.kr",
	},
	{
		Name:         "신사업창업사관학교",
		Agency:       "소상공인시장진흥공단",
		Support:      "교육 + 최대 4천만원 사업화 자금",
		Requirements: "40세 이상 중장년 예비창업자 우대",
		Window:       "매년 2회 모집",
		URL:          "https://newbiz.sbiz.or.kr",
	},
	{
		Name:         "소상공인 디지털전환 지원",
		Agency:       "중소벤처기업부",
		Support:      "스마트상점 기기/솔루션 최대 500만원",
		Requirements: "업력 1년 이상 소상공인",
		Window:       "매년 상반기 모집",
		URL:          "https://www.mss.go.kr",
	},
}

// AllPolicyFunds returns every listed support program.
func AllPolicyFunds() []PolicyFund {
	return append([]PolicyFund{}, policyFunds...)
}

// MatchFunds filters the fund list against a founder profile. Rules key off
// phrases in each fund's requirement text, mirroring how the listings
// themselves state eligibility.
func MatchFunds(p FounderProfile) []PolicyFund {
	var out []PolicyFund
	for _, f := range policyFunds {
		if !eligible(f, p) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func eligible(f PolicyFund, p FounderProfile) bool {
	req := f.Requirements
	if strings.Contains(req, "39세 이하") {
		if p.Age > 39 || p.FounderType == "중장년" {
			return false
		}
	}
	if strings.Contains(req, "40세 이상") {
		if (p.Age > 0 && p.Age < 40) || p.FounderType == "청년" {
			return false
		}
	}
	if strings.Contains(req, "여성") && p.FounderType != "여성" {
		return false
	}
	if strings.Contains(req, "서울") && !strings.Contains(p.Region, "서울") {
		return false
	}
	if strings.Contains(req, "폐업") && p.Stage != "재창업" {
		return false
	}
	return true
}

// FundTips builds short application guidance for a founder profile.
func FundTips(p FounderProfile) []string {
	tips := []string{
		"정책자금은 중복 수혜 제한이 있으니 지원 규모가 큰 사업부터 신청하세요",
		"사업계획서는 K-스타트업 표준 양식을 기준으로 준비하면 대부분 사업에 재활용할 수 있습니다",
	}
	if p.Age > 0 && p.Age <= 39 {
		tips = append(tips, "만 39세 이하는 청년 전용 사업의 경쟁률이 낮은 지방 캠퍼스 지원도 고려하세요")
	}
	if p.FounderType == "여성" {
		tips = append(tips, "여성기업 확인서를 미리 발급받으면 가점 대상 사업이 늘어납니다")
	}
	if p.Stage == "재창업" {
		tips = append(tips, "재창업 지원은 폐업 사실 증명(폐업사실증명원)이 필수 서류입니다")
	}
	if p.Stage == "예비" {
		tips = append(tips, "예비창업자는 사업자등록 전 신청이 조건인 사업이 많으니 등록 시점을 조율하세요")
	}
	return tips
}
