package tool

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
	"github.com/sangkwonlab/sangkwon-cli/internal/cost"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
)

// MetadataCalculateStartupCost describes the calculate_startup_cost tool.
var MetadataCalculateStartupCost = &mcp.Tool{
	Name: "calculate_startup_cost",
	Description: "창업 비용 산정: 보증금, 인테리어, 설비, 초도 물품, 운영 자금까지 " +
		"업종/지역/평수/마감 등급 기준의 창업 예산을 범위로 제시합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"businessType"},
		"properties": map[string]interface{}{
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "업종 (예: 카페, 음식점)",
			},
			"region": map[string]interface{}{
				"type":        "string",
				"description": "지역 (예: 강남, 부산). 기본 서울",
			},
			"size": map[string]interface{}{
				"type":        "number",
				"description": "평수. 기본 15평",
			},
			"grade": map[string]interface{}{
				"type":        "string",
				"description": "인테리어 등급: basic, standard, premium. 기본 standard",
				"enum":        []string{"basic", "standard", "premium"},
			},
		},
	},
}

// InputCalculateStartupCost is the input for calculate_startup_cost.
type InputCalculateStartupCost struct {
	BusinessType string  `json:"businessType"`
	Region       string  `json:"region,omitempty"`
	Size         float64 `json:"size,omitempty"`
	Grade        string  `json:"grade,omitempty"`
}

// CalculateStartupCost estimates the opening budget.
func (h *Handler) CalculateStartupCost(ctx context.Context, _ *mcp.CallToolRequest, in InputCalculateStartupCost) (*mcp.CallToolResult, model.Result[cost.StartupCost], error) {
	start := time.Now()
	res := h.svc.CalculateStartupCost(ctx, analysis.StartupCostRequest{
		BusinessType: in.BusinessType,
		Region:       in.Region,
		SizePyeong:   in.Size,
		Grade:        in.Grade,
	})
	return respond(ctx, h, MetadataCalculateStartupCost.Name, in, start, res)
}

// MetadataAnalyzeBreakeven describes the analyze_breakeven tool.
var MetadataAnalyzeBreakeven = &mcp.Tool{
	Name: "analyze_breakeven",
	Description: "손익분기 분석: 고정비를 산출하고 이를 넘기는 월/일 매출과 일 고객 수, " +
		"투자금 회수 기간을 비관/현실/낙관 시나리오로 제시합니다. " +
		"위치를 지정하면 주변 경쟁 강도를 매출 시나리오에 반영합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"businessType"},
		"properties": map[string]interface{}{
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "업종",
			},
			"region": map[string]interface{}{
				"type":        "string",
				"description": "지역. 임대료 추정에 사용",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "구체적 위치. 지정 시 경쟁 강도 보정",
			},
			"size": map[string]interface{}{
				"type":        "number",
				"description": "평수. 기본 15평",
			},
			"monthlyRent": map[string]interface{}{
				"type":        "integer",
				"description": "월세(만원). 생략 시 지역 시세로 추정",
			},
			"avgPrice": map[string]interface{}{
				"type":        "integer",
				"description": "객단가(원). 생략 시 업종 평균",
			},
		},
	},
}

// InputAnalyzeBreakeven is the input for analyze_breakeven.
type InputAnalyzeBreakeven struct {
	BusinessType string  `json:"businessType"`
	Region       string  `json:"region,omitempty"`
	Location     string  `json:"location,omitempty"`
	Size         float64 `json:"size,omitempty"`
	MonthlyRent  int     `json:"monthlyRent,omitempty"`
	AvgPrice     int     `json:"avgPrice,omitempty"`
}

// AnalyzeBreakeven computes the breakeven point and payback horizon.
func (h *Handler) AnalyzeBreakeven(ctx context.Context, _ *mcp.CallToolRequest, in InputAnalyzeBreakeven) (*mcp.CallToolResult, model.Result[analysis.BreakevenReport], error) {
	start := time.Now()
	res := h.svc.AnalyzeBreakeven(ctx, analysis.BreakevenRequest{
		BusinessType: in.BusinessType,
		Region:       in.Region,
		Location:     in.Location,
		SizePyeong:   in.Size,
		MonthlyRent:  in.MonthlyRent,
		AvgPrice:     in.AvgPrice,
	})
	return respond(ctx, h, MetadataAnalyzeBreakeven.Name, in, start, res)
}

// MetadataSimulateRevenue describes the simulate_revenue tool.
var MetadataSimulateRevenue = &mcp.Tool{
	Name: "simulate_revenue",
	Description: "매출 시뮬레이션: 업종 기준 매출을 지역, 평수, 인력, 운영 시간으로 보정해 " +
		"일/월/연 매출과 계절별 변동을 추정합니다. 주변 경쟁 강도도 반영합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"businessType", "location"},
		"properties": map[string]interface{}{
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "업종",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "출점 위치",
			},
			"size": map[string]interface{}{
				"type":        "number",
				"description": "평수. 기본 15평",
			},
			"staff": map[string]interface{}{
				"type":        "integer",
				"description": "직원 수(본인 포함). 기본 1",
			},
			"hours": map[string]interface{}{
				"type":        "number",
				"description": "일 운영 시간. 기본 12",
			},
		},
	},
}

// InputSimulateRevenue is the input for simulate_revenue.
type InputSimulateRevenue struct {
	BusinessType string  `json:"businessType"`
	Location     string  `json:"location"`
	Size         float64 `json:"size,omitempty"`
	Staff        int     `json:"staff,omitempty"`
	Hours        float64 `json:"hours,omitempty"`
}

// SimulateRevenue projects revenue for a store setup.
func (h *Handler) SimulateRevenue(ctx context.Context, _ *mcp.CallToolRequest, in InputSimulateRevenue) (*mcp.CallToolResult, model.Result[analysis.SimulationReport], error) {
	start := time.Now()
	res := h.svc.SimulateRevenue(ctx, analysis.SimulateRequest{
		BusinessType: in.BusinessType,
		Location:     in.Location,
		SizePyeong:   in.Size,
		Staff:        in.Staff,
		HoursPerDay:  in.Hours,
	})
	return respond(ctx, h, MetadataSimulateRevenue.Name, in, start, res)
}

// MetadataEstimateRent describes the estimate_rent tool.
var MetadataEstimateRent = &mcp.Tool{
	Name: "estimate_rent",
	Description: "임대료 추정: 지역 평당 시세에 층수와 건물 유형을 반영해 보증금과 월세, " +
		"관리비를 범위로 제시합니다.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"location"},
		"properties": map[string]interface{}{
			"location": map[string]interface{}{
				"type":        "string",
				"description": "위치 (예: 강남, 홍대)",
			},
			"size": map[string]interface{}{
				"type":        "number",
				"description": "평수. 기본 15평",
			},
			"floor": map[string]interface{}{
				"type":        "string",
				"description": "층: 1층, 2층, 지하1층, 3층이상. 기본 1층",
			},
			"buildingType": map[string]interface{}{
				"type":        "string",
				"description": "건물 유형: 상가, 오피스텔, 주상복합, 단독건물",
			},
		},
	},
}

// InputEstimateRent is the input for estimate_rent.
type InputEstimateRent struct {
	Location     string  `json:"location"`
	Size         float64 `json:"size,omitempty"`
	Floor        string  `json:"floor,omitempty"`
	BuildingType string  `json:"buildingType,omitempty"`
}

// EstimateRent prices a storefront.
func (h *Handler) EstimateRent(ctx context.Context, _ *mcp.CallToolRequest, in InputEstimateRent) (*mcp.CallToolResult, model.Result[cost.RentEstimate], error) {
	start := time.Now()
	res := h.svc.EstimateRent(ctx, analysis.RentRequest{
		Location:     in.Location,
		SizePyeong:   in.Size,
		Floor:        in.Floor,
		BuildingType: in.BuildingType,
	})
	return respond(ctx, h, MetadataEstimateRent.Name, in, start, res)
}
