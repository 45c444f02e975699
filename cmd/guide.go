package main

import (
	"github.com/spf13/cobra"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
)

var (
	fundAge    int
	fundGender string
	fundRegion string
	fundStage  string

	trendRegion   string
	trendCategory string
	trendBudget   int

	checklistRegion string
)

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Recommend government support programs for a founder profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.RecommendPolicyFunds(cmd.Context(), analysis.FundRequest{
			Age:    fundAge,
			Gender: fundGender,
			Region: fundRegion,
			Stage:  fundStage,
		})
		return printJSON(res)
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Report rising and declining industries",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.GetBusinessTrends(cmd.Context(), analysis.TrendRequest{
			Region:       trendRegion,
			BusinessType: trendCategory,
			Budget:       trendBudget,
		})
		return printJSON(res)
	},
}

var checklistCmd = &cobra.Command{
	Use:   "checklist <businessType>",
	Short: "Show the pre-opening checklist for a business type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.GetStartupChecklist(cmd.Context(), analysis.ChecklistRequest{
			BusinessType: args[0],
			Region:       checklistRegion,
		})
		return printJSON(res)
	},
}

func init() {
	fundsCmd.Flags().IntVar(&fundAge, "age", 0, "founder age")
	fundsCmd.Flags().StringVar(&fundGender, "gender", "", "founder gender: 남성, 여성")
	fundsCmd.Flags().StringVar(&fundRegion, "region", "", "founding region")
	fundsCmd.Flags().StringVar(&fundStage, "stage", "", "startup stage: 예비, 초기, 재창업")

	trendsCmd.Flags().StringVar(&trendRegion, "region", "", "region for the local climate report")
	trendsCmd.Flags().StringVar(&trendCategory, "category", "", "business type for a per-type reading")
	trendsCmd.Flags().IntVar(&trendBudget, "budget", 0, "startup budget in 만원 for budget-fit suggestions")

	checklistCmd.Flags().StringVar(&checklistRegion, "region", "", "region context")

	rootCmd.AddCommand(fundsCmd, trendsCmd, checklistCmd)
}
