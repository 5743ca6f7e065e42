package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/Flxkzy/Slack-MCP/internal/resolve"
)

// Compile-time assertions.
var (
	_ resolve.ChannelResolver = (*MockResolver)(nil)
	_ resolve.UserResolver    = (*MockResolver)(nil)
)

// MockResolver implements the resolve interfaces using in-memory maps, with
// the same ID-prefix bypass and error text as *resolve.Resolver. It is
// pre-populated with the standard test directory by NewMockResolver.
type MockResolver struct {
	Channels map[string]string // channel name -> ID
	Users    map[string]string // user name -> ID
}

// NewMockResolver returns a MockResolver pre-loaded with the standard test
// channels and users.
func NewMockResolver() *MockResolver {
	return &MockResolver{
		Channels: map[string]string{"general": GeneralID, "random": RandomID},
		Users:    map[string]string{"alice": AliceID, "bob": BobID},
	}
}

// ChannelID resolves name to an ID, passing through references that already
// look like channel IDs.
func (m *MockResolver) ChannelID(_ context.Context, ref string) (string, error) {
	if ref != "" && strings.ContainsRune("CDG", rune(ref[0])) {
		return ref, nil
	}
	name := strings.TrimPrefix(ref, "#")
	if id, ok := m.Channels[name]; ok {
		return id, nil
	}
	return "", fmt.Errorf("resolve: channel %q not found", ref)
}

// UserID resolves name to an ID, passing through references that already look
// like user IDs.
func (m *MockResolver) UserID(_ context.Context, ref string) (string, error) {
	if ref != "" && strings.ContainsRune("UW", rune(ref[0])) {
		return ref, nil
	}
	name := strings.TrimPrefix(ref, "@")
	if id, ok := m.Users[name]; ok {
		return id, nil
	}
	return "", fmt.Errorf("resolve: user %q not found", ref)
}
