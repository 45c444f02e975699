package main

import (
	"github.com/spf13/cobra"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
)

var (
	moneyRegion   string
	moneySize     float64
	moneyGrade    string
	moneyLocation string
	moneyRent     int
	moneyPrice    int
	moneyStaff    int
	moneyHours    float64
	moneyFloor    string
	moneyBuilding string
)

var costCmd = &cobra.Command{
	Use:   "cost <businessType>",
	Short: "Estimate the startup budget for a business type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.CalculateStartupCost(cmd.Context(), analysis.StartupCostRequest{
			BusinessType: args[0],
			Region:       moneyRegion,
			SizePyeong:   moneySize,
			Grade:        moneyGrade,
		})
		return printJSON(res)
	},
}

var breakevenCmd = &cobra.Command{
	Use:   "breakeven <businessType>",
	Short: "Compute the breakeven point and payback horizon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.AnalyzeBreakeven(cmd.Context(), analysis.BreakevenRequest{
			BusinessType: args[0],
			Region:       moneyRegion,
			Location:     moneyLocation,
			SizePyeong:   moneySize,
			MonthlyRent:  moneyRent,
			AvgPrice:     moneyPrice,
		})
		return printJSON(res)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <businessType> <location>",
	Short: "Project revenue for a store setup",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.SimulateRevenue(cmd.Context(), analysis.SimulateRequest{
			BusinessType: args[0],
			Location:     args[1],
			SizePyeong:   moneySize,
			Staff:        moneyStaff,
			HoursPerDay:  moneyHours,
		})
		return printJSON(res)
	},
}

var rentCmd = &cobra.Command{
	Use:   "rent <location>",
	Short: "Estimate deposit, monthly rent, and management fees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.EstimateRent(cmd.Context(), analysis.RentRequest{
			Location:     args[0],
			SizePyeong:   moneySize,
			Floor:        moneyFloor,
			BuildingType: moneyBuilding,
		})
		return printJSON(res)
	},
}

func init() {
	for _, c := range []*cobra.Command{costCmd, breakevenCmd, simulateCmd, rentCmd} {
		c.Flags().Float64Var(&moneySize, "size", 0, "store size in 평 (default 15)")
	}
	costCmd.Flags().StringVar(&moneyRegion, "region", "", "region (default 서울)")
	costCmd.Flags().StringVar(&moneyGrade, "grade", "", "interior grade: basic, standard, premium")
	breakevenCmd.Flags().StringVar(&moneyRegion, "region", "", "region for rent estimation")
	breakevenCmd.Flags().StringVar(&moneyLocation, "location", "", "specific location for competition adjustment")
	breakevenCmd.Flags().IntVar(&moneyRent, "rent", 0, "monthly rent in 만원 (default: regional estimate)")
	breakevenCmd.Flags().IntVar(&moneyPrice, "price", 0, "average ticket in KRW (default: per-type benchmark)")
	simulateCmd.Flags().IntVar(&moneyStaff, "staff", 0, "staff count including the owner (default 1)")
	simulateCmd.Flags().Float64Var(&moneyHours, "hours", 0, "operating hours per day (default 12)")
	rentCmd.Flags().StringVar(&moneyFloor, "floor", "", "floor: 1층, 2층, 지하1층, 3층이상")
	rentCmd.Flags().StringVar(&moneyBuilding, "building", "", "building type: 상가, 오피스텔, 주상복합, 단독건물")

	rootCmd.AddCommand(costCmd, breakevenCmd, simulateCmd, rentCmd)
}
