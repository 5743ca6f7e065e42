package message

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Flxkzy/Slack-MCP/internal/resolve"
	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/Flxkzy/Slack-MCP/internal/slackapi"
	"github.com/Flxkzy/Slack-MCP/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/slack-go/slack"
)

// historyResult is the data payload of a successful slack_get_channel_history.
type historyResult struct {
	Messages []MessageSummary `json:"messages"`
	HasMore  bool             `json:"has_more"`
}

func toolGetChannelHistory(api slackapi.Client, r resolve.ChannelResolver, filter *safety.Filter, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_get_channel_history"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Retrieve recent messages from a Slack channel."),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel name or ID"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of messages to retrieve (default: 10, max: 1000)"),
		),
		mcp.WithString("oldest",
			mcp.Description("Only messages after this timestamp (optional)"),
		),
		mcp.WithString("latest",
			mcp.Description("Only messages before this timestamp (optional)"),
		),
		mcp.WithBoolean("include_all_metadata",
			mcp.Description("Include all message metadata (default: false)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		channel, err := req.RequireString("channel")
		if err != nil {
			return tools.FailureResult(tools.Missing("channel").Error()), nil
		}
		limit := req.GetInt("limit", 10)
		oldest := req.GetString("oldest", "")
		latest := req.GetString("latest", "")
		includeAllMetadata := req.GetBool("include_all_metadata", false)

		if limit <= 0 {
			limit = 10
		}
		if limit > 1000 {
			limit = 1000
		}

		params := map[string]any{
			"channel": channel,
			"limit":   limit,
			"oldest":  oldest,
			"latest":  latest,
		}

		channelID, errResult := tools.ResolveChannel(ctx, r, filter, audit, logger, toolName, channel, params, start)
		if errResult != nil {
			return errResult, nil
		}

		resp, err := api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID:          channelID,
			Limit:              limit,
			Oldest:             oldest,
			Latest:             latest,
			IncludeAllMetadata: includeAllMetadata,
		})
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error getting channel history", err, start), nil
		}

		summaries := summarizeMessages(resp.Messages)
		tools.LogAudit(audit, toolName, params, fmt.Sprintf("ok: %d messages", len(summaries)), start)
		return tools.SuccessResult(historyResult{
			Messages: summaries,
			HasMore:  resp.HasMore,
		}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
