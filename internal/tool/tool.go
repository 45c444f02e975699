// Package tool exposes the analysis operations as MCP tools. Each tool
// has a Metadata definition, typed input/output structs, and a handler
// that delegates to the analysis service and records the run in the
// invocation history.
package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
	"github.com/sangkwonlab/sangkwon-cli/internal/history"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
)

// Handler binds the MCP tool surface to the analysis service. The
// history store is optional; without it runs are simply not recorded.
type Handler struct {
	svc     *analysis.Service
	history *history.Store
}

// NewHandler creates a Handler. Pass a nil store to disable history.
func NewHandler(svc *analysis.Service, store *history.Store) *Handler {
	return &Handler{svc: svc, history: store}
}

// Register adds every tool to the server.
func (h *Handler) Register(server *mcp.Server) {
	mcp.AddTool(server, MetadataAnalyzeCommercialArea, h.AnalyzeCommercialArea)
	mcp.AddTool(server, MetadataCompareLocations, h.CompareLocations)
	mcp.AddTool(server, MetadataFindCompetitors, h.FindCompetitors)
	mcp.AddTool(server, MetadataAnalyzePopulation, h.AnalyzePopulation)
	mcp.AddTool(server, MetadataCalculateStartupCost, h.CalculateStartupCost)
	mcp.AddTool(server, MetadataAnalyzeBreakeven, h.AnalyzeBreakeven)
	mcp.AddTool(server, MetadataSimulateRevenue, h.SimulateRevenue)
	mcp.AddTool(server, MetadataEstimateRent, h.EstimateRent)
	mcp.AddTool(server, MetadataRecommendPolicyFunds, h.RecommendPolicyFunds)
	mcp.AddTool(server, MetadataFindNearbyFacilities, h.FindNearbyFacilities)
	mcp.AddTool(server, MetadataGetBusinessTrends, h.GetBusinessTrends)
	mcp.AddTool(server, MetadataGetStartupChecklist, h.GetStartupChecklist)
}

// respond records the run and passes the envelope through as the tool
// output. Failures are envelopes, not protocol errors, so clients always
// get the stable error codes.
func respond[T any](ctx context.Context, h *Handler, tool string, params any, start time.Time, res model.Result[T]) (*mcp.CallToolResult, model.Result[T], error) {
	if h.history != nil {
		code := ""
		if res.Error != nil {
			code = res.Error.Code
		}
		p, _ := json.Marshal(params)
		r, _ := json.Marshal(res)
		if _, err := h.history.Record(ctx, history.Entry{
			Tool:       tool,
			Params:     p,
			Success:    res.Success,
			ErrorCode:  code,
			Result:     r,
			DurationMS: time.Since(start).Milliseconds(),
		}); err != nil {
			zap.L().Warn("history record failed", zap.String("tool", tool), zap.Error(err))
		}
	}
	return nil, res, nil
}
