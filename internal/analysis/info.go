package analysis

import (
	"context"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// TrendRequest narrows the industry trend report. All fields optional:
// Region adds the regional climate, BusinessType a per-type reading,
// Budget (만원) a budget-fit suggestion.
type TrendRequest struct {
	Region       string `json:"region,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Budget       int    `json:"budget,omitempty"`
}

// TrendReport is the industry trend digest.
type TrendReport struct {
	Rising         []refdata.TrendEntry   `json:"rising"`
	Declining      []refdata.TrendEntry   `json:"declining"`
	Insights       []string               `json:"insights"`
	Region         string                 `json:"region,omitempty"`
	Regional       *refdata.RegionalTrend `json:"regional,omitempty"`
	Recommendation string                 `json:"recommendation,omitempty"`
	BudgetTypes    []string               `json:"budgetTypes,omitempty"`
	BudgetNote     string                 `json:"budgetNote,omitempty"`
}

// GetBusinessTrends reports rising and declining industries with
// optional regional, per-type, and budget readings.
func (s *Service) GetBusinessTrends(ctx context.Context, req TrendRequest) model.Result[TrendReport] {
	return run("business-trends", func() model.Result[TrendReport] {
		report := TrendReport{
			Rising:    refdata.RisingTrends(),
			Declining: refdata.DecliningTrends(),
			Insights:  refdata.TrendInsights,
		}

		if req.Region != "" {
			if regional, ok := refdata.RegionalTrendFor(req.Region); ok {
				report.Region = req.Region
				report.Regional = &regional
			}
		}

		if req.BusinessType != "" {
			bt := refdata.NormalizeBusinessType(req.BusinessType)
			if bt == "" {
				bt = req.BusinessType
			}
			report.Recommendation = refdata.TrendRecommendation(bt)
		}

		if req.Budget > 0 {
			report.BudgetTypes, report.BudgetNote = refdata.BudgetRecommendation(req.Budget)
		}

		return model.OK(report, model.NewMeta("trend-tables"))
	})
}

// ChecklistRequest asks for the pre-opening checklist for a business
// type. Region is optional context echoed back in the report.
type ChecklistRequest struct {
	BusinessType string `json:"businessType"`
	Region       string `json:"region,omitempty"`
}

// ChecklistReport is the permits, schedule, and expense rundown for
// opening a store.
type ChecklistReport struct {
	BusinessType string                  `json:"businessType"`
	Region       string                  `json:"region,omitempty"`
	Licenses     []refdata.License       `json:"licenses"`
	TypeSpecific bool                    `json:"typeSpecific"`
	Steps        []refdata.ChecklistStep `json:"steps"`
	AdminCosts   []refdata.AdminCost     `json:"adminCosts"`
	Tips         []string                `json:"tips"`
	Notes        []string                `json:"notes,omitempty"`
}

// GetStartupChecklist returns permits, the D-day schedule, and admin
// costs for a business type. Unknown types get the generic checklist
// with a note rather than an error.
func (s *Service) GetStartupChecklist(ctx context.Context, req ChecklistRequest) model.Result[ChecklistReport] {
	return run("startup-checklist", func() model.Result[ChecklistReport] {
		bt := refdata.NormalizeBusinessType(req.BusinessType)
		display := bt
		if display == "" {
			display = req.BusinessType
		}

		region := ""
		if req.Region != "" {
			region = refdata.NormalizeRegion(req.Region)
		}

		licenses, specific := refdata.Licenses(req.BusinessType)
		report := ChecklistReport{
			BusinessType: display,
			Region:       region,
			Licenses:     licenses,
			TypeSpecific: specific,
			Steps:        refdata.Checklist(req.BusinessType),
			AdminCosts:   refdata.AdminCosts(req.BusinessType),
			Tips:         refdata.ChecklistTips(req.BusinessType),
		}
		if bt == "" {
			report.Notes = append(report.Notes,
				"등록되지 않은 업종이라 공통 체크리스트를 제공합니다")
		}

		return model.OK(report, model.NewMeta("checklist-tables"))
	})
}
