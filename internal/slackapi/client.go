// Package slackapi defines the subset of the Slack Web API consumed by this
// server.
package slackapi

import (
	"context"

	"github.com/slack-go/slack"
)

// Client defines the Slack Web API methods used by MCP tool handlers and the
// resolver. The concrete *slack.Client type satisfies this interface, so
// production code passes a real client while tests pass a mock.
//
// Every method takes a context because every call is an outbound HTTP request.
type Client interface {
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)
	SearchMessagesContext(ctx context.Context, query string, params slack.SearchParameters) (*slack.SearchMessages, error)
	AddReactionContext(ctx context.Context, name string, item slack.ItemRef) error
	GetTeamInfoContext(ctx context.Context) (*slack.TeamInfo, error)
}

// Compile-time assertion: *slack.Client satisfies Client.
var _ Client = (*slack.Client)(nil)
