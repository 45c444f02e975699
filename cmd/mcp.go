package main

import (
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the analysis tools over MCP stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initAnalysis(ctx, "analysis")
		if err != nil {
			return err
		}
		defer env.Close()

		server := mcp.NewServer(&mcp.Implementation{
			Name:    "sangkwon",
			Version: version,
		}, nil)
		env.handler.Register(server)

		zap.L().Info("starting mcp server on stdio")
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return eris.Wrap(err, "mcp: run server")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
