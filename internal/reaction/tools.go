// Package reaction provides MCP tool handlers for Slack emoji reactions.
package reaction

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Flxkzy/Slack-MCP/internal/resolve"
	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/Flxkzy/Slack-MCP/internal/slackapi"
	"github.com/Flxkzy/Slack-MCP/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/slack-go/slack"
)

// addReactionResult is the data payload of a successful slack_add_reaction.
type addReactionResult struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"ts"`
	Name      string `json:"name"`
}

// ReactionTools returns all tool registrations for Slack reaction operations.
func ReactionTools(
	api slackapi.Client,
	r resolve.ChannelResolver,
	filter *safety.Filter,
	audit *safety.AuditLogger,
	logger *slog.Logger,
) []tools.Registration {
	logger = tools.DefaultLogger(logger)
	return []tools.Registration{
		toolAddReaction(api, r, filter, audit, logger),
	}
}

func toolAddReaction(api slackapi.Client, r resolve.ChannelResolver, filter *safety.Filter, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_add_reaction"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Add an emoji reaction to a message."),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel name or ID containing the message"),
		),
		mcp.WithString("timestamp",
			mcp.Required(),
			mcp.Description("Timestamp of the message to react to"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Emoji name, with or without colons (e.g. \"tada\" or \":tada:\")"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		channel, err := req.RequireString("channel")
		if err != nil {
			return tools.FailureResult(tools.Missing("channel").Error()), nil
		}
		timestamp, err := req.RequireString("timestamp")
		if err != nil {
			return tools.FailureResult(tools.Missing("timestamp").Error()), nil
		}
		name, err := req.RequireString("name")
		if err != nil {
			return tools.FailureResult(tools.Missing("name").Error()), nil
		}
		name = strings.Trim(name, ":")

		params := map[string]any{
			"channel":   channel,
			"timestamp": timestamp,
			"name":      name,
		}

		channelID, errResult := tools.ResolveChannel(ctx, r, filter, audit, logger, toolName, channel, params, start)
		if errResult != nil {
			return errResult, nil
		}

		if err := api.AddReactionContext(ctx, name, slack.NewRefToMessage(channelID, timestamp)); err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error adding reaction", err, start), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return tools.SuccessResult(addReactionResult{
			Channel:   channelID,
			Timestamp: timestamp,
			Name:      name,
		}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
