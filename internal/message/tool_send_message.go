package message

import (
	"context"
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

// sendMessageResult is the data payload of a successful slack_send_message.
type sendMessageResult struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"ts"`
	Text      string `json:"text"`
	ThreadTS  string `json:"thread_ts"`
}

func toolSendMessage(api slackapi.Client, r resolve.ChannelResolver, filter *safety.Filter, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_send_message"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Send a message to a Slack channel."),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel name or ID (e.g. \"general\", \"#general\", \"C0123456789\")"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Message text to send"),
		),
		mcp.WithString("thread_ts",
			mcp.Description("Timestamp of a parent message to reply in its thread (optional)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		channel, err := req.RequireString("channel")
		if err != nil {
			return tools.FailureResult(tools.Missing("channel").Error()), nil
		}
		text, err := req.RequireString("text")
		if err != nil {
			return tools.FailureResult(tools.Missing("text").Error()), nil
		}
		threadTS := req.GetString("thread_ts", "")

		params := map[string]any{
			"channel":   channel,
			"text":      text,
			"thread_ts": threadTS,
		}

		channelID, errResult := tools.ResolveChannel(ctx, r, filter, audit, logger, toolName, channel, params, start)
		if errResult != nil {
			return errResult, nil
		}

		opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
		if threadTS != "" {
			opts = append(opts, slack.MsgOptionTS(threadTS))
		}

		respChannel, ts, err := api.PostMessageContext(ctx, channelID, opts...)
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error sending message", err, start), nil
		}

		tools.LogAudit(audit, toolName, params, "ok: "+ts, start)
		return tools.SuccessResult(sendMessageResult{
			Channel:   respChannel,
			Timestamp: ts,
			Text:      text,
			ThreadTS:  threadTS,
		}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
