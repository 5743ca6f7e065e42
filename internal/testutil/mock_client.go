package testutil

import (
	"context"
	"errors"

	"github.com/Flxkzy/Slack-MCP/internal/slackapi"
	"github.com/slack-go/slack"
)

// Compile-time assertion: *MockSlackClient satisfies slackapi.Client.
var _ slackapi.Client = (*MockSlackClient)(nil)

// MockSlackClient implements slackapi.Client using configurable function
// fields. Each method increments its call counter, then delegates to the
// corresponding func field; when the field is nil the method returns a
// canned response built from the standard test directory.
//
// The counters let tests assert how many remote calls a tool invocation
// issued (in particular, that validation and resolution failures short-
// circuit before the primary call).
type MockSlackClient struct {
	AuthTestCalls         int
	GetConversationsCalls int
	GetUsersCalls         int
	GetUserInfoCalls      int
	PostMessageCalls      int
	GetHistoryCalls       int
	GetRepliesCalls       int
	SearchMessagesCalls   int
	AddReactionCalls      int
	GetTeamInfoCalls      int

	AuthTestFunc               func(ctx context.Context) (*slack.AuthTestResponse, error)
	GetConversationsFunc       func(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error)
	GetUsersFunc               func(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	GetUserInfoFunc            func(ctx context.Context, user string) (*slack.User, error)
	PostMessageFunc            func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetConversationHistoryFunc func(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationRepliesFunc func(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)
	SearchMessagesFunc         func(ctx context.Context, query string, params slack.SearchParameters) (*slack.SearchMessages, error)
	AddReactionFunc            func(ctx context.Context, name string, item slack.ItemRef) error
	GetTeamInfoFunc            func(ctx context.Context) (*slack.TeamInfo, error)
}

func (m *MockSlackClient) AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error) {
	m.AuthTestCalls++
	if m.AuthTestFunc != nil {
		return m.AuthTestFunc(ctx)
	}
	return &slack.AuthTestResponse{
		URL:    "https://testteam.slack.com/",
		Team:   "Test Team",
		User:   "testbot",
		TeamID: "T1000001",
		UserID: "U1000009",
	}, nil
}

func (m *MockSlackClient) GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
	m.GetConversationsCalls++
	if m.GetConversationsFunc != nil {
		return m.GetConversationsFunc(ctx, params)
	}
	return TestChannels(), "", nil
}

func (m *MockSlackClient) GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
	m.GetUsersCalls++
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(ctx, options...)
	}
	return TestUsers(), nil
}

func (m *MockSlackClient) GetUserInfoContext(ctx context.Context, user string) (*slack.User, error) {
	m.GetUserInfoCalls++
	if m.GetUserInfoFunc != nil {
		return m.GetUserInfoFunc(ctx, user)
	}
	for _, u := range TestUsers() {
		if u.ID == user {
			return &u, nil
		}
	}
	return nil, errors.New("user_not_found")
}

func (m *MockSlackClient) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	m.PostMessageCalls++
	if m.PostMessageFunc != nil {
		return m.PostMessageFunc(ctx, channelID, options...)
	}
	return channelID, "1700000000.000100", nil
}

func (m *MockSlackClient) GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error) {
	m.GetHistoryCalls++
	if m.GetConversationHistoryFunc != nil {
		return m.GetConversationHistoryFunc(ctx, params)
	}
	resp := &slack.GetConversationHistoryResponse{
		Messages: TestMessages(),
	}
	resp.Ok = true
	return resp, nil
}

func (m *MockSlackClient) GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error) {
	m.GetRepliesCalls++
	if m.GetConversationRepliesFunc != nil {
		return m.GetConversationRepliesFunc(ctx, params)
	}
	return TestMessages(), false, "", nil
}

func (m *MockSlackClient) SearchMessagesContext(ctx context.Context, query string, params slack.SearchParameters) (*slack.SearchMessages, error) {
	m.SearchMessagesCalls++
	if m.SearchMessagesFunc != nil {
		return m.SearchMessagesFunc(ctx, query, params)
	}
	match := slack.SearchMessage{
		User:      AliceID,
		Username:  "alice",
		Timestamp: "1700000000.000100",
		Text:      "deploy finished",
		Permalink: "https://testteam.slack.com/archives/C1000001/p1700000000000100",
	}
	match.Channel.ID = GeneralID
	match.Channel.Name = "general"
	return &slack.SearchMessages{
		Matches: []slack.SearchMessage{match},
		Total:   1,
	}, nil
}

func (m *MockSlackClient) AddReactionContext(ctx context.Context, name string, item slack.ItemRef) error {
	m.AddReactionCalls++
	if m.AddReactionFunc != nil {
		return m.AddReactionFunc(ctx, name, item)
	}
	return nil
}

func (m *MockSlackClient) GetTeamInfoContext(ctx context.Context) (*slack.TeamInfo, error) {
	m.GetTeamInfoCalls++
	if m.GetTeamInfoFunc != nil {
		return m.GetTeamInfoFunc(ctx)
	}
	return &slack.TeamInfo{
		ID:     "T1000001",
		Name:   "Test Team",
		Domain: "testteam",
	}, nil
}

// TestMessages returns two canned history messages: one threaded with a
// reaction, one with every optional field absent.
func TestMessages() []slack.Message {
	var withThread slack.Message
	withThread.User = AliceID
	withThread.Text = "release is out"
	withThread.Timestamp = "1700000000.000100"
	withThread.ThreadTimestamp = "1700000000.000100"
	withThread.ReplyCount = 2
	withThread.Reactions = []slack.ItemReaction{
		{Name: "tada", Count: 3, Users: []string{BobID}},
	}

	var bare slack.Message
	bare.User = BobID
	bare.Text = "ack"
	bare.Timestamp = "1700000001.000200"

	return []slack.Message{withThread, bare}
}
