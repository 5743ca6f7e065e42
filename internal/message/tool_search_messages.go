package message

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

// SearchMatch is one normalized search hit.
type SearchMatch struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	User        string `json:"user"`
	Username    string `json:"username"`
	Timestamp   string `json:"ts"`
	Text        string `json:"text"`
	Permalink   string `json:"permalink"`
}

// searchResult is the data payload of a successful slack_search_messages.
type searchResult struct {
	Total   int           `json:"total"`
	Matches []SearchMatch `json:"matches"`
}

// Search goes through search.messages, which addresses channels by name, so
// the channel scope is appended to the query rather than resolved to an ID.
func toolSearchMessages(api slackapi.Client, filter *safety.Filter, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_search_messages"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Search messages across the workspace."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
		mcp.WithString("channel",
			mcp.Description("Restrict the search to one channel, by name (optional)"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort key: \"score\" or \"timestamp\" (default: \"score\")"),
		),
		mcp.WithString("sort_dir",
			mcp.Description("Sort direction: \"asc\" or \"desc\" (default: \"desc\")"),
		),
		mcp.WithNumber("count",
			mcp.Description("Results per page (default: 20, max: 100)"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (default: 1)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		query, err := req.RequireString("query")
		if err != nil {
			return tools.FailureResult(tools.Missing("query").Error()), nil
		}
		channel := req.GetString("channel", "")
		sort := req.GetString("sort", "score")
		sortDir := req.GetString("sort_dir", "desc")
		count := req.GetInt("count", 20)
		page := req.GetInt("page", 1)

		if count <= 0 {
			count = 20
		}
		if count > 100 {
			count = 100
		}
		if page <= 0 {
			page = 1
		}

		if channel != "" {
			name := strings.TrimPrefix(channel, "#")
			if filter != nil && !filter.IsAllowed(name) {
				logger.Debug("channel access denied", "channel", name)
				tools.LogAudit(audit, toolName, map[string]any{"query": query, "channel": channel}, "denied", start)
				return tools.Failuref("access to channel %q is not allowed", name), nil
			}
			query = fmt.Sprintf("%s in:#%s", query, name)
		}

		params := map[string]any{
			"query":    query,
			"sort":     sort,
			"sort_dir": sortDir,
			"count":    count,
			"page":     page,
		}

		resp, err := api.SearchMessagesContext(ctx, query, slack.SearchParameters{
			Sort:          sort,
			SortDirection: sortDir,
			Count:         count,
			Page:          page,
		})
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error searching messages", err, start), nil
		}

		matches := make([]SearchMatch, 0, len(resp.Matches))
		for _, m := range resp.Matches {
			matches = append(matches, SearchMatch{
				ChannelID:   m.Channel.ID,
				ChannelName: m.Channel.Name,
				User:        m.User,
				Username:    m.Username,
				Timestamp:   m.Timestamp,
				Text:        m.Text,
				Permalink:   m.Permalink,
			})
		}

		tools.LogAudit(audit, toolName, params, fmt.Sprintf("ok: %d matches", len(matches)), start)
		return tools.SuccessResult(searchResult{
			Total:   resp.Total,
			Matches: matches,
		}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
