package main

import (
	"github.com/spf13/cobra"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
)

var (
	analyzeBusinessType string
	analyzeRadius       int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <location>",
	Short: "Analyze the commercial area around a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.AnalyzeArea(cmd.Context(), analysis.AreaRequest{
			Location:     args[0],
			BusinessType: analyzeBusinessType,
			RadiusMeters: analyzeRadius,
		})
		return printJSON(res)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <location>...",
	Short: "Compare candidate locations and rank them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.CompareLocations(cmd.Context(), analysis.CompareRequest{
			Locations:    args,
			BusinessType: analyzeBusinessType,
			RadiusMeters: analyzeRadius,
		})
		return printJSON(res)
	},
}

var competitorsDetail bool

var competitorsCmd = &cobra.Command{
	Use:   "competitors <location>",
	Short: "Survey same-trade competitors around a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.FindCompetitors(cmd.Context(), analysis.CompetitorRequest{
			Location:     args[0],
			BusinessType: analyzeBusinessType,
			RadiusMeters: analyzeRadius,
			Detail:       competitorsDetail,
		})
		return printJSON(res)
	},
}

var populationCmd = &cobra.Command{
	Use:   "population <location>",
	Short: "Estimate demographics and foot traffic around a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.AnalyzePopulation(cmd.Context(), analysis.PopulationRequest{
			Location:     args[0],
			BusinessType: analyzeBusinessType,
			RadiusMeters: analyzeRadius,
		})
		return printJSON(res)
	},
}

var facilitiesCmd = &cobra.Command{
	Use:   "facilities <location>",
	Short: "Survey nearby facilities and score accessibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAnalysis(cmd.Context(), "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.svc.FindNearbyFacilities(cmd.Context(), analysis.FacilityRequest{
			Location:     args[0],
			RadiusMeters: analyzeRadius,
		})
		return printJSON(res)
	},
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, compareCmd, competitorsCmd, populationCmd} {
		c.Flags().StringVarP(&analyzeBusinessType, "type", "t", "", "business type (e.g. 카페, 치킨)")
		c.Flags().IntVarP(&analyzeRadius, "radius", "r", 0, "search radius in meters (default 500)")
	}
	facilitiesCmd.Flags().IntVarP(&analyzeRadius, "radius", "r", 0, "search radius in meters (default 500)")
	competitorsCmd.Flags().BoolVar(&competitorsDetail, "detail", false, "include the individual store listing")
	_ = competitorsCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(analyzeCmd, compareCmd, competitorsCmd, populationCmd, facilitiesCmd)
}
