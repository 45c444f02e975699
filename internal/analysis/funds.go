package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

const liveListingCount = 10

// FundRequest describes the founder for support-program matching. Every
// field is optional; an empty profile matches the broadly available
// programs.
type FundRequest struct {
	Age          int    `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Region       string `json:"region,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Stage        string `json:"stage,omitempty"` // 예비, 초기, 재창업
}

// FundReport lists matched support programs, application tips, and
// current live listings when the announcement feed is reachable.
type FundReport struct {
	Funds        []refdata.PolicyFund `json:"funds"`
	Tips         []string             `json:"tips"`
	LiveListings []model.Grant        `json:"liveListings,omitempty"`
	Notes        []string             `json:"notes,omitempty"`
}

// RecommendPolicyFunds matches the founder profile against the support
// program catalog and, when the announcement feed is configured,
// supplements it with currently open listings.
func (s *Service) RecommendPolicyFunds(ctx context.Context, req FundRequest) model.Result[FundReport] {
	return run("recommend-funds", func() model.Result[FundReport] {
		ctx, cancel := s.opCtx(ctx)
		defer cancel()

		profile := refdata.FounderProfile{
			Age:          req.Age,
			FounderType:  founderType(req.Age, req.Gender),
			Region:       req.Region,
			BusinessType: refdata.NormalizeBusinessType(req.BusinessType),
			Stage:        req.Stage,
		}

		report := FundReport{
			Funds: refdata.MatchFunds(profile),
			Tips:  refdata.FundTips(profile),
		}

		src := "fund-catalog"
		if s.grants != nil {
			listings, err := s.grants.ListGrants(ctx, "", liveListingCount)
			if err != nil {
				zap.L().Warn("grant feed unavailable", zap.Error(err))
				report.Notes = append(report.Notes,
					"실시간 공고 조회에 실패해 상시 지원사업 목록만 제공합니다")
			} else {
				report.LiveListings = listings
				src = "fund-catalog+bizinfo"
			}
		}

		return model.OK(report, model.NewMeta(src))
	})
}

// founderType derives the catalog's founder classification from age and
// gender. Gender takes precedence since women-only programs check it
// regardless of age.
func founderType(age int, gender string) string {
	if gender == refdata.GenderFemale {
		return "여성"
	}
	switch {
	case age > 0 && age <= 39:
		return "청년"
	case age >= 40:
		return "중장년"
	default:
		return "일반"
	}
}
