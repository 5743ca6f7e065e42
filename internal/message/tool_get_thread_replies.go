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

// threadRepliesResult is the data payload of a successful
// slack_get_thread_replies.
type threadRepliesResult struct {
	Messages []MessageSummary `json:"messages"`
	HasMore  bool             `json:"has_more"`
}

func toolGetThreadReplies(api slackapi.Client, r resolve.ChannelResolver, filter *safety.Filter, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_get_thread_replies"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Retrieve the replies in a message thread."),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel name or ID"),
		),
		mcp.WithString("thread_ts",
			mcp.Required(),
			mcp.Description("Timestamp of the thread's parent message"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of replies to retrieve (default: 10, max: 1000)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		channel, err := req.RequireString("channel")
		if err != nil {
			return tools.FailureResult(tools.Missing("channel").Error()), nil
		}
		threadTS, err := req.RequireString("thread_ts")
		if err != nil {
			return tools.FailureResult(tools.Missing("thread_ts").Error()), nil
		}
		limit := req.GetInt("limit", 10)
		if limit <= 0 {
			limit = 10
		}
		if limit > 1000 {
			limit = 1000
		}

		params := map[string]any{
			"channel":   channel,
			"thread_ts": threadTS,
			"limit":     limit,
		}

		channelID, errResult := tools.ResolveChannel(ctx, r, filter, audit, logger, toolName, channel, params, start)
		if errResult != nil {
			return errResult, nil
		}

		msgs, hasMore, _, err := api.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
			ChannelID: channelID,
			Timestamp: threadTS,
			Limit:     limit,
		})
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error getting thread replies", err, start), nil
		}

		summaries := summarizeMessages(msgs)
		tools.LogAudit(audit, toolName, params, fmt.Sprintf("ok: %d replies", len(summaries)), start)
		return tools.SuccessResult(threadRepliesResult{
			Messages: summaries,
			HasMore:  hasMore,
		}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
