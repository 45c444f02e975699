package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/config"
)

const version = "1.0.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sangkwon-cli",
	Short: "Startup consulting analysis for small business founders",
	Long: "Analyzes commercial areas, competition, demographics, and startup finances " +
		"for Korean small-business founders. Runs as a CLI, an HTTP server, or an MCP stdio server.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
