// Package testutil provides shared test infrastructure for slack-mcp tool
// tests: a canned workspace directory, a func-field mock of the Slack API
// client, an httptest server speaking the Slack Web API wire format, and
// helpers for building MCP requests and decoding result envelopes.
package testutil

import "github.com/slack-go/slack"

// Standard test directory: channel and user IDs used across package tests.
const (
	GeneralID = "C1000001"
	RandomID  = "C1000002"
	AliceID   = "U1000001"
	BobID     = "U1000002"
)

// TestChannels returns the standard test channel directory: public "general",
// private "random", and an archived "old-projects".
func TestChannels() []slack.Channel {
	return []slack.Channel{
		NewTestChannel(GeneralID, "general", func(ch *slack.Channel) {
			ch.IsMember = true
			ch.NumMembers = 42
			ch.Topic = slack.Topic{Value: "Company-wide announcements"}
			ch.Purpose = slack.Purpose{Value: "General chat"}
		}),
		NewTestChannel(RandomID, "random", func(ch *slack.Channel) {
			ch.IsPrivate = true
			ch.IsMember = true
			ch.NumMembers = 7
		}),
		NewTestChannel("C1000003", "old-projects", func(ch *slack.Channel) {
			ch.IsArchived = true
		}),
	}
}

// NewTestChannel builds a slack.Channel with the given ID and name, applying
// an optional customizer.
func NewTestChannel(id, name string, customize func(*slack.Channel)) slack.Channel {
	var ch slack.Channel
	ch.ID = id
	ch.Name = name
	ch.IsChannel = true
	if customize != nil {
		customize(&ch)
	}
	return ch
}

// TestUsers returns the standard test user directory.
func TestUsers() []slack.User {
	return []slack.User{
		NewTestUser(AliceID, "alice", "Alice Smith", "ally", func(u *slack.User) {
			u.IsAdmin = true
			u.Profile.Email = "alice@example.com"
			u.Profile.Title = "Engineer"
			u.TZ = "America/New_York"
			u.TZLabel = "Eastern Standard Time"
			u.TZOffset = -18000
		}),
		NewTestUser(BobID, "bob", "Bob Jones", "bobby", nil),
		NewTestUser("U1000003", "buildbot", "Build Bot", "", func(u *slack.User) {
			u.IsBot = true
		}),
	}
}

// NewTestUser builds a slack.User with the given IDs and names, applying an
// optional customizer.
func NewTestUser(id, name, realName, displayName string, customize func(*slack.User)) slack.User {
	u := slack.User{
		ID:       id,
		Name:     name,
		RealName: realName,
	}
	u.Profile.RealName = realName
	u.Profile.DisplayName = displayName
	if customize != nil {
		customize(&u)
	}
	return u
}
