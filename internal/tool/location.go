package tool

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
)

// MetadataAnalyzeCommercialArea describes the analyze_commercial_area tool.
var MetadataAnalyzeCommercialArea = &mcp.Tool{
	Name: "analyze_commercial_area",
	Description: "상권 분석: 위치 주변의 업소 밀도를 조사하고 입지 점수와 추천 등급을 산출합니다. " +
		"업종을 지정하면 동종 업체 포화도까지 평가합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"location"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "분석할 위치 (예: 강남역, 서울 마포구 연남동)",
			},
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "창업 예정 업종 (예: 카페, 치킨집). 생략 가능",
			},
			"radius": map[string]interface{}{
				"type":        "integer",
				"description": "분석 반경(미터). 기본 500",
			},
		},
	},
}

// InputAnalyzeCommercialArea is the input for analyze_commercial_area.
type InputAnalyzeCommercialArea struct {
	Location     string `json:"location"`
	BusinessType string `json:"businessType,omitempty"`
	Radius       int    `json:"radius,omitempty"`
}

// AnalyzeCommercialArea runs the commercial-area analysis.
func (h *Handler) AnalyzeCommercialArea(ctx context.Context, _ *mcp.CallToolRequest, in InputAnalyzeCommercialArea) (*mcp.CallToolResult, model.Result[analysis.AreaReport], error) {
	start := time.Now()
	res := h.svc.AnalyzeArea(ctx, analysis.AreaRequest{
		Location:     in.Location,
		BusinessType: in.BusinessType,
		RadiusMeters: in.Radius,
	})
	return respond(ctx, h, MetadataAnalyzeCommercialArea.Name, in, start, res)
}

// MetadataCompareLocations describes the compare_locations tool.
var MetadataCompareLocations = &mcp.Tool{
	Name: "compare_locations",
	Description: "입지 비교: 여러 후보 위치를 같은 기준으로 분석해 순위를 매깁니다. " +
		"분석에 실패한 위치는 건너뛰고 사유와 함께 보고합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"locations"},
		"properties": map[string]interface{}{
			"locations": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "비교할 위치 목록",
			},
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "창업 예정 업종. 생략 가능",
			},
			"radius": map[string]interface{}{
				"type":        "integer",
				"description": "분석 반경(미터). 기본 500",
			},
		},
	},
}

// InputCompareLocations is the input for compare_locations.
type InputCompareLocations struct {
	Locations    []string `json:"locations"`
	BusinessType string   `json:"businessType,omitempty"`
	Radius       int      `json:"radius,omitempty"`
}

// CompareLocations ranks candidate locations.
func (h *Handler) CompareLocations(ctx context.Context, _ *mcp.CallToolRequest, in InputCompareLocations) (*mcp.CallToolResult, model.Result[analysis.Comparison], error) {
	start := time.Now()
	res := h.svc.CompareLocations(ctx, analysis.CompareRequest{
		Locations:    in.Locations,
		BusinessType: in.BusinessType,
		RadiusMeters: in.Radius,
	})
	return respond(ctx, h, MetadataCompareLocations.Name, in, start, res)
}

// MetadataFindCompetitors describes the find_competitors tool.
var MetadataFindCompetitors = &mcp.Tool{
	Name: "find_competitors",
	Description: "경쟁 분석: 위치 주변의 동종 업체를 조사해 프랜차이즈/개인 매장 비율, " +
		"포화도, 시장 틈새를 보고합니다. 업종은 필수입니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"location", "businessType"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "조사할 위치",
			},
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "업종 (예: 카페, 치킨)",
			},
			"radius": map[string]interface{}{
				"type":        "integer",
				"description": "조사 반경(미터). 기본 500",
			},
			"detail": map[string]interface{}{
				"type":        "boolean",
				"description": "true면 개별 업체 목록까지 반환",
			},
		},
	},
}

// InputFindCompetitors is the input for find_competitors.
type InputFindCompetitors struct {
	Location     string `json:"location"`
	BusinessType string `json:"businessType"`
	Radius       int    `json:"radius,omitempty"`
	Detail       bool   `json:"detail,omitempty"`
}

// FindCompetitors surveys same-trade competition.
func (h *Handler) FindCompetitors(ctx context.Context, _ *mcp.CallToolRequest, in InputFindCompetitors) (*mcp.CallToolResult, model.Result[analysis.CompetitorReport], error) {
	start := time.Now()
	res := h.svc.FindCompetitors(ctx, analysis.CompetitorRequest{
		Location:     in.Location,
		BusinessType: in.BusinessType,
		RadiusMeters: in.Radius,
		Detail:       in.Detail,
	})
	return respond(ctx, h, MetadataFindCompetitors.Name, in, start, res)
}

// MetadataAnalyzePopulation describes the analyze_population tool.
var MetadataAnalyzePopulation = &mcp.Tool{
	Name: "analyze_population",
	Description: "인구/유동 분석: 위치의 인구 구성과 시간대별 유동 분포를 추정합니다. " +
		"주요 상권은 정제된 프로필을, 그 외 지역은 상권 유형 기반 추정치를 제공합니다. " +
		"업종을 지정하면 타깃 고객 적합도를 함께 평가합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"location"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "분석할 위치 (예: 홍대입구, 판교)",
			},
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "업종. 지정 시 타깃 적합도 평가",
			},
			"radius": map[string]interface{}{
				"type":        "integer",
				"description": "분석 반경(미터). 기본 500",
			},
		},
	},
}

// InputAnalyzePopulation is the input for analyze_population.
type InputAnalyzePopulation struct {
	Location     string `json:"location"`
	BusinessType string `json:"businessType,omitempty"`
	Radius       int    `json:"radius,omitempty"`
}

// AnalyzePopulation estimates demographics around a location.
func (h *Handler) AnalyzePopulation(ctx context.Context, _ *mcp.CallToolRequest, in InputAnalyzePopulation) (*mcp.CallToolResult, model.Result[analysis.PopulationReport], error) {
	start := time.Now()
	res := h.svc.AnalyzePopulation(ctx, analysis.PopulationRequest{
		Location:     in.Location,
		BusinessType: in.BusinessType,
		RadiusMeters: in.Radius,
	})
	return respond(ctx, h, MetadataAnalyzePopulation.Name, in, start, res)
}

// MetadataFindNearbyFacilities describes the find_nearby_facilities tool.
var MetadataFindNearbyFacilities = &mcp.Tool{
	Name: "find_nearby_facilities",
	Description: "주변 시설 조사: 지하철역, 버스정류장, 은행, 주차장 등 집객 시설을 조사하고 " +
		"접근성 점수를 산출합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"location"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "조사할 위치",
			},
			"radius": map[string]interface{}{
				"type":        "integer",
				"description": "조사 반경(미터). 기본 500",
			},
		},
	},
}

// InputFindNearbyFacilities is the input for find_nearby_facilities.
type InputFindNearbyFacilities struct {
	Location string `json:"location"`
	Radius   int    `json:"radius,omitempty"`
}

// FindNearbyFacilities probes facility categories around a location.
func (h *Handler) FindNearbyFacilities(ctx context.Context, _ *mcp.CallToolRequest, in InputFindNearbyFacilities) (*mcp.CallToolResult, model.Result[analysis.FacilityReport], error) {
	start := time.Now()
	res := h.svc.FindNearbyFacilities(ctx, analysis.FacilityRequest{
		Location:     in.Location,
		RadiusMeters: in.Radius,
	})
	return respond(ctx, h, MetadataFindNearbyFacilities.Name, in, start, res)
}
