package tool

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
)

// MetadataRecommendPolicyFunds describes the recommend_policy_funds tool.
var MetadataRecommendPolicyFunds = &mcp.Tool{
	Name: "recommend_policy_funds",
	Description: "정책자금 추천: 나이, 성별, 지역, 창업 단계에 맞는 정부 지원사업을 골라주고 " +
		"신청 팁과 현재 모집 중인 공고를 함께 제공합니다.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"age": map[string]interface{}{
				"type":        "integer",
				"description": "만 나이",
			},
			"gender": map[string]interface{}{
				"type":        "string",
				"description": "성별: 남성, 여성",
			},
			"region": map[string]interface{}{
				"type":        "string",
				"description": "거주/창업 지역",
			},
			"businessType": map[string]interface{}{
				"type":        "string",
				"description": "업종",
			},
			"stage": map[string]interface{}{
				"type":        "string",
				"description": "창업 단계: 예비, 초기, 재창업",
				"enum":        []string{"예비", "초기", "재창업"},
			},
		},
	},
}

// InputRecommendPolicyFunds is the input for recommend_policy_funds.
type InputRecommendPolicyFunds struct {
	Age          int    `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Region       string `json:"region,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Stage        string `json:"stage,omitempty"`
}

// RecommendPolicyFunds matches support programs to a founder profile.
func (h *Handler) RecommendPolicyFunds(ctx context.Context, _ *mcp.CallToolRequest, in InputRecommendPolicyFunds) (*mcp.CallToolResult, model.Result[analysis.FundReport], error) {
	start := time.Now()
	res := h.svc.RecommendPolicyFunds(ctx, analysis.FundRequest{
		Age:          in.Age,
		Gender:       in.Gender,
		Region:       in.Region,
		BusinessType: in.BusinessType,
		Stage:        in.Stage,
	})
	return respond(ctx, h, MetadataRecommendPolicyFunds.Name, in, start, res)
}

// MetadataGetBusinessTrends describes the get_business_trends tool.
var MetadataGetBusinessTrends = &mcp.Tool{
	Name: "get_business_trends",
	Description: "업종 트렌드: 성장/쇠퇴 업종 통계와 해석을 제공합니다. 지역을 지정하면 " +
		"지역 상권 동향을, 예산을 지정하면 예산대별 추천 업종을 더합니다.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"region": map[string]interface{}{
				"type":        "string",
				"description": "지역 (예: 서울, 부산)",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "업종. 지정 시 해당 업종 트렌드 해석",
			},
			"budget": map[string]interface{}{
				"type":        "integer",
				"description": "창업 예산(만원). 지정 시 예산대별 추천",
			},
		},
	},
}

// InputGetBusinessTrends is the input for get_business_trends.
type InputGetBusinessTrends struct {
	Region   string `json:"region,omitempty"`
	Category string `json:"category,omitempty"`
	Budget   int    `json:"budget,omitempty"`
}

// GetBusinessTrends reports industry trends.
func (h *Handler) GetBusinessTrends(ctx context.Context, _ *mcp.CallToolRequest, in InputGetBusinessTrends) (*mcp.CallToolResult, model.Result[analysis.TrendReport], error) {
	start := time.Now()
	res := h.svc.GetBusinessTrends(ctx, analysis.TrendRequest{
		Region:       in.Region,
		BusinessType: in.Category,
		Budget:       in.Budget,
	})
	return respond(ctx, h, MetadataGetBusinessTrends.Name, in, start, res)
}

// MetadataGetStartupChecklist describes the get_startup_checklist tool.
var MetadataGetStartupChecklist = &mcp.Tool{
	Name: "get_startup_checklist",
	Description: "창업 체크리스트: 업종별 인허가 목록, 개업 전 일정(D-60부터), 행정 비용, " +
		"주의사항을 제공합니다. 등록되지 않은 업종은 공통 체크리스트로 안내합니다.",
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
				"description": "지역. 생략 가능",
			},
		},
	},
}

// InputGetStartupChecklist is the input for get_startup_checklist.
type InputGetStartupChecklist struct {
	BusinessType string `json:"businessType"`
	Region       string `json:"region,omitempty"`
}

// GetStartupChecklist returns the pre-opening checklist.
func (h *Handler) GetStartupChecklist(ctx context.Context, _ *mcp.CallToolRequest, in InputGetStartupChecklist) (*mcp.CallToolResult, model.Result[analysis.ChecklistReport], error) {
	start := time.Now()
	res := h.svc.GetStartupChecklist(ctx, analysis.ChecklistRequest{
		BusinessType: in.BusinessType,
		Region:       in.Region,
	})
	return respond(ctx, h, MetadataGetStartupChecklist.Name, in, start, res)
}
