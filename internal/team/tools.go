// Package team provides MCP tool handlers for workspace-level information.
package team

import (
	"context"
	"log/slog"
	"time"

	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/Flxkzy/Slack-MCP/internal/slackapi"
	"github.com/Flxkzy/Slack-MCP/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TeamSummary is the normalized shape of the workspace record.
type TeamSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	EmailDomain string `json:"email_domain"`
}

// TeamTools returns all tool registrations for workspace operations.
func TeamTools(api slackapi.Client, audit *safety.AuditLogger, logger *slog.Logger) []tools.Registration {
	logger = tools.DefaultLogger(logger)
	return []tools.Registration{
		toolGetTeamInfo(api, audit, logger),
	}
}

func toolGetTeamInfo(api slackapi.Client, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_get_team_info"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Retrieve information about the Slack workspace."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		params := map[string]any{}

		info, err := api.GetTeamInfoContext(ctx)
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error getting team info", err, start), nil
		}

		tools.LogAudit(audit, toolName, params, "ok: "+info.ID, start)
		return tools.SuccessResult(TeamSummary{
			ID:          info.ID,
			Name:        info.Name,
			Domain:      info.Domain,
			EmailDomain: info.EmailDomain,
		}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
