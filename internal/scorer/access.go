package scorer

import "math"

// Accessibility levels.
const (
	AccessExcellent = "우수"
	AccessGood      = "양호"
	AccessFair      = "보통"
	AccessPoor      = "미흡"
)

// FacilityCount is one nearby-facility probe result.
type FacilityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AccessScore is the infrastructure assessment for a location.
type AccessScore struct {
	Total      int            `json:"total"`
	Level      string         `json:"level"`
	Components map[string]int `json:"components"`
}

// ScoreAccess weighs nearby facilities into an accessibility score. A
// subway station dominates; everything else contributes small capped
// amounts.
func ScoreAccess(facilities []FacilityCount) AccessScore {
	components := make(map[string]int, len(facilities))
	total := 0

	for _, f := range facilities {
		if f.Count <= 0 {
			continue
		}
		var pts int
		switch f.Name {
		case "지하철역":
			pts = 30
		case "버스정류장":
			pts = int(math.Min(float64(f.Count*5), 15))
		case "주차장":
			pts = int(math.Min(float64(f.Count*3), 10))
		case "은행":
			pts = 10
		case "편의점":
			pts = int(math.Min(float64(f.Count*2), 10))
		case "병원", "약국":
			pts = 5
		default:
			pts = 3
		}
		components[f.Name] = pts
		total += pts
	}

	total = clamp(total, 0, 100)
	return AccessScore{Total: total, Level: accessLevel(total), Components: components}
}

func accessLevel(total int) string {
	switch {
	case total >= 60:
		return AccessExcellent
	case total >= 40:
		return AccessGood
	case total >= 20:
		return AccessFair
	default:
		return AccessPoor
	}
}

// MarketGap interprets the same-trade census around a location: total
// competitors and the franchise share among them, in percent. Rules are
// ordered; the first that applies wins.
func MarketGap(total int, franchiseRatio float64) string {
	switch {
	case total == 0:
		return "동종 업체가 없습니다. 수요 검증이 선행된다면 선점 기회입니다"
	case total <= 3:
		return "경쟁이 거의 없어 진입 여건이 좋습니다"
	case franchiseRatio >= 70:
		return "프랜차이즈 위주 상권입니다. 개인 매장은 차별화 컨셉이 필수입니다"
	case franchiseRatio <= 30:
		return "개인 매장 위주 상권입니다. 브랜드 인지도로 우위를 만들 수 있습니다"
	case total >= 10:
		return "경쟁이 치열한 상권입니다. 검증된 수요가 있다는 뜻이기도 합니다"
	default:
		return "경쟁 강도가 적절한 수준입니다"
	}
}
