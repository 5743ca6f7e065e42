// Package channel provides MCP tool handlers for Slack channel operations.
package channel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/Flxkzy/Slack-MCP/internal/slackapi"
	"github.com/Flxkzy/Slack-MCP/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/slack-go/slack"
)

// ChannelSummary is the normalized shape of one channel in a listing.
// Channels without a topic or purpose carry empty strings, never absent
// fields.
type ChannelSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPrivate  bool   `json:"is_private"`
	IsMember   bool   `json:"is_member"`
	IsArchived bool   `json:"is_archived"`
	NumMembers int    `json:"num_members"`
	Topic      string `json:"topic"`
	Purpose    string `json:"purpose"`
}

// ChannelTools returns all tool registrations for Slack channel operations.
func ChannelTools(
	api slackapi.Client,
	filter *safety.Filter,
	audit *safety.AuditLogger,
	logger *slog.Logger,
) []tools.Registration {
	logger = tools.DefaultLogger(logger)
	return []tools.Registration{
		toolListChannels(api, filter, audit, logger),
	}
}

func toolListChannels(api slackapi.Client, filter *safety.Filter, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_list_channels"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List channels in the workspace."),
		mcp.WithString("types",
			mcp.Description("Comma-separated conversation types (default: \"public_channel,private_channel\")"),
		),
		mcp.WithBoolean("exclude_archived",
			mcp.Description("Exclude archived channels (default: false)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum channels to return (default: 100, max: 1000)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		types := req.GetString("types", "public_channel,private_channel")
		excludeArchived := req.GetBool("exclude_archived", false)
		limit := req.GetInt("limit", 100)
		if limit <= 0 {
			limit = 100
		}
		if limit > 1000 {
			limit = 1000
		}

		params := map[string]any{
			"types":            types,
			"exclude_archived": excludeArchived,
			"limit":            limit,
		}

		channels, _, err := api.GetConversationsContext(ctx, &slack.GetConversationsParameters{
			Types:           splitTypes(types),
			ExcludeArchived: excludeArchived,
			Limit:           limit,
		})
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error listing channels", err, start), nil
		}

		summaries := make([]ChannelSummary, 0, len(channels))
		for _, ch := range channels {
			if filter != nil && !filter.IsAllowed(ch.Name) {
				continue
			}
			summaries = append(summaries, ChannelSummary{
				ID:         ch.ID,
				Name:       ch.Name,
				IsPrivate:  ch.IsPrivate,
				IsMember:   ch.IsMember,
				IsArchived: ch.IsArchived,
				NumMembers: ch.NumMembers,
				Topic:      ch.Topic.Value,
				Purpose:    ch.Purpose.Value,
			})
		}

		tools.LogAudit(audit, toolName, params, fmt.Sprintf("ok: %d channels", len(summaries)), start)
		return tools.SuccessResult(summaries), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// splitTypes parses a comma-separated conversation type list, trimming
// whitespace and dropping empty entries.
func splitTypes(types string) []string {
	parts := strings.Split(types, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
