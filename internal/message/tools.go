// Package message provides MCP tool handlers for Slack message operations:
// sending, history, thread replies, and search.
package message

import (
	"log/slog"

	"github.com/Flxkzy/Slack-MCP/internal/resolve"
	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/Flxkzy/Slack-MCP/internal/slackapi"
	"github.com/Flxkzy/Slack-MCP/internal/tools"
	"github.com/slack-go/slack"
)

// MessageSummary is the normalized shape of one history or thread message.
// Optional fields absent from the raw response come back as the zero value,
// never absent, so consumers can rely on field presence.
type MessageSummary struct {
	User       string            `json:"user"`
	Text       string            `json:"text"`
	Timestamp  string            `json:"ts"`
	ThreadTS   string            `json:"thread_ts"`
	ReplyCount int               `json:"reply_count"`
	Reactions  []ReactionSummary `json:"reactions"`
}

// ReactionSummary is one emoji reaction on a message.
type ReactionSummary struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// summarizeMessages projects raw Slack messages into MessageSummary values.
// The returned slice and every reactions/users slice are non-nil so they
// marshal as [] rather than null.
func summarizeMessages(msgs []slack.Message) []MessageSummary {
	summaries := make([]MessageSummary, 0, len(msgs))
	for _, m := range msgs {
		s := MessageSummary{
			User:       m.User,
			Text:       m.Text,
			Timestamp:  m.Timestamp,
			ThreadTS:   m.ThreadTimestamp,
			ReplyCount: m.ReplyCount,
			Reactions:  make([]ReactionSummary, 0, len(m.Reactions)),
		}
		for _, r := range m.Reactions {
			users := r.Users
			if users == nil {
				users = []string{}
			}
			s.Reactions = append(s.Reactions, ReactionSummary{
				Name:  r.Name,
				Count: r.Count,
				Users: users,
			})
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// MessageTools returns all tool registrations for Slack message operations.
func MessageTools(
	api slackapi.Client,
	r resolve.ChannelResolver,
	filter *safety.Filter,
	audit *safety.AuditLogger,
	logger *slog.Logger,
) []tools.Registration {
	logger = tools.DefaultLogger(logger)
	return []tools.Registration{
		toolSendMessage(api, r, filter, audit, logger),
		toolGetChannelHistory(api, r, filter, audit, logger),
		toolGetThreadReplies(api, r, filter, audit, logger),
		toolSearchMessages(api, filter, audit, logger),
	}
}
