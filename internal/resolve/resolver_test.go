package resolve_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Flxkzy/Slack-MCP/internal/resolve"
	"github.com/Flxkzy/Slack-MCP/internal/testutil"
	"github.com/slack-go/slack"
)

// ---------------------------------------------------------------------------
// ChannelID
// ---------------------------------------------------------------------------

func Test_ChannelID_IDBypass(t *testing.T) {
	t.Parallel()

	for _, ref := range []string{"C0123456789", "D0123456789", "G0123456789"} {
		mock := &testutil.MockSlackClient{}
		r := resolve.New(mock)

		got, err := r.ChannelID(context.Background(), ref)
		if err != nil {
			t.Fatalf("ChannelID(%q) unexpected error: %v", ref, err)
		}
		if got != ref {
			t.Errorf("ChannelID(%q) = %q, want input unchanged", ref, got)
		}
		if mock.GetConversationsCalls != 0 {
			t.Errorf("ChannelID(%q) issued %d listing calls, want 0", ref, mock.GetConversationsCalls)
		}
	}
}

func Test_ChannelID_NameForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"bare name", "general", testutil.GeneralID},
		{"hash-prefixed name", "#general", testutil.GeneralID},
		{"private channel", "random", testutil.RandomID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &testutil.MockSlackClient{}
			r := resolve.New(mock)

			got, err := r.ChannelID(context.Background(), tt.ref)
			if err != nil {
				t.Fatalf("ChannelID(%q) unexpected error: %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("ChannelID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
			if mock.GetConversationsCalls != 1 {
				t.Errorf("ChannelID(%q) issued %d listing calls, want exactly 1", tt.ref, mock.GetConversationsCalls)
			}
		})
	}
}

func Test_ChannelID_ListingParameters(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	mock.GetConversationsFunc = func(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
		if params.Limit != 1000 {
			t.Errorf("listing limit = %d, want 1000", params.Limit)
		}
		wantTypes := "public_channel,private_channel"
		if got := strings.Join(params.Types, ","); got != wantTypes {
			t.Errorf("listing types = %q, want %q", got, wantTypes)
		}
		return testutil.TestChannels(), "", nil
	}
	r := resolve.New(mock)

	if _, err := r.ChannelID(context.Background(), "general"); err != nil {
		t.Fatalf("ChannelID() unexpected error: %v", err)
	}
}

func Test_ChannelID_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	r := resolve.New(mock)

	// Matching is case-sensitive and exact; no prefix or fuzzy matching.
	for _, ref := range []string{"Random", "gener", "general-chat"} {
		if _, err := r.ChannelID(context.Background(), ref); err == nil {
			t.Errorf("ChannelID(%q) succeeded, want not-found error", ref)
		}
	}
}

func Test_ChannelID_FirstMatchWins(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	mock.GetConversationsFunc = func(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
		return []slack.Channel{
			testutil.NewTestChannel("C0000001", "dup", nil),
			testutil.NewTestChannel("C0000002", "dup", nil),
		}, "", nil
	}
	r := resolve.New(mock)

	got, err := r.ChannelID(context.Background(), "dup")
	if err != nil {
		t.Fatalf("ChannelID() unexpected error: %v", err)
	}
	if got != "C0000001" {
		t.Errorf("ChannelID(\"dup\") = %q, want first match in listing order", got)
	}
}

func Test_ChannelID_NotFound_NamesInput(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	r := resolve.New(mock)

	_, err := r.ChannelID(context.Background(), "nonexistent")
	if err == nil {
		t.Fatal("ChannelID(\"nonexistent\") expected error")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error %q should name the input", err)
	}
}

func Test_ChannelID_ListingFailure(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	mock.GetConversationsFunc = func(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
		return nil, "", errors.New("ratelimited")
	}
	r := resolve.New(mock)

	_, err := r.ChannelID(context.Background(), "general")
	if err == nil {
		t.Fatal("ChannelID() expected error on listing failure")
	}
	if !strings.Contains(err.Error(), "general") {
		t.Errorf("error %q should name the input", err)
	}
	if !strings.Contains(err.Error(), "ratelimited") {
		t.Errorf("error %q should carry the listing failure", err)
	}
}

// ---------------------------------------------------------------------------
// UserID
// ---------------------------------------------------------------------------

func Test_UserID_IDBypass(t *testing.T) {
	t.Parallel()

	for _, ref := range []string{"U0123456789", "W0123456789"} {
		mock := &testutil.MockSlackClient{}
		r := resolve.New(mock)

		got, err := r.UserID(context.Background(), ref)
		if err != nil {
			t.Fatalf("UserID(%q) unexpected error: %v", ref, err)
		}
		if got != ref {
			t.Errorf("UserID(%q) = %q, want input unchanged", ref, got)
		}
		if mock.GetUsersCalls != 0 {
			t.Errorf("UserID(%q) issued %d listing calls, want 0", ref, mock.GetUsersCalls)
		}
	}
}

func Test_UserID_NameForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"bare handle", "alice", testutil.AliceID},
		{"at-prefixed handle", "@alice", testutil.AliceID},
		{"real name", "Bob Jones", testutil.BobID},
		{"display name", "bobby", testutil.BobID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &testutil.MockSlackClient{}
			r := resolve.New(mock)

			got, err := r.UserID(context.Background(), tt.ref)
			if err != nil {
				t.Fatalf("UserID(%q) unexpected error: %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("UserID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
			if mock.GetUsersCalls != 1 {
				t.Errorf("UserID(%q) issued %d listing calls, want exactly 1", tt.ref, mock.GetUsersCalls)
			}
		})
	}
}

func Test_UserID_FieldPriority(t *testing.T) {
	t.Parallel()

	// Three distinct users match "taylor" on three different fields. The
	// handle match must win even though it appears last in listing order,
	// and the real-name match must beat the display-name match.
	directory := []slack.User{
		testutil.NewTestUser("U0000001", "ann", "Ann Arbor", "taylor", nil),
		testutil.NewTestUser("U0000002", "ben", "taylor", "benny", nil),
		testutil.NewTestUser("U0000003", "taylor", "Taylor Reed", "tr", nil),
	}

	tests := []struct {
		name      string
		directory []slack.User
		want      string
	}{
		{"handle beats real and display name", directory, "U0000003"},
		{"real name beats display name", directory[:2], "U0000002"},
		{"display name matches last", directory[:1], "U0000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &testutil.MockSlackClient{}
			mock.GetUsersFunc = func(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
				return tt.directory, nil
			}
			r := resolve.New(mock)

			got, err := r.UserID(context.Background(), "taylor")
			if err != nil {
				t.Fatalf("UserID(\"taylor\") unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("UserID(\"taylor\") = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_UserID_ListingOrderWithinField(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	mock.GetUsersFunc = func(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
		return []slack.User{
			testutil.NewTestUser("U0000001", "dup", "First Dup", "", nil),
			testutil.NewTestUser("U0000002", "dup", "Second Dup", "", nil),
		}, nil
	}
	r := resolve.New(mock)

	got, err := r.UserID(context.Background(), "dup")
	if err != nil {
		t.Fatalf("UserID(\"dup\") unexpected error: %v", err)
	}
	if got != "U0000001" {
		t.Errorf("UserID(\"dup\") = %q, want first match in listing order", got)
	}
}

func Test_UserID_NotFound_NamesInput(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	r := resolve.New(mock)

	_, err := r.UserID(context.Background(), "@ghost")
	if err == nil {
		t.Fatal("UserID(\"@ghost\") expected error")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error %q should name the input", err)
	}
}

func Test_UserID_ListingFailure(t *testing.T) {
	t.Parallel()

	mock := &testutil.MockSlackClient{}
	mock.GetUsersFunc = func(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
		return nil, errors.New("invalid_auth")
	}
	r := resolve.New(mock)

	_, err := r.UserID(context.Background(), "alice")
	if err == nil {
		t.Fatal("UserID() expected error on listing failure")
	}
	if !strings.Contains(err.Error(), "alice") || !strings.Contains(err.Error(), "invalid_auth") {
		t.Errorf("error %q should name the input and carry the listing failure", err)
	}
}

// ---------------------------------------------------------------------------
// Wire-level: resolution through a real slack.Client against the simulator
// ---------------------------------------------------------------------------

func Test_Resolver_AgainstMockAPI(t *testing.T) {
	ms := testutil.NewMockSlack(t)
	t.Cleanup(ms.Close)

	r := resolve.New(ms.Client)

	got, err := r.ChannelID(context.Background(), "#general")
	if err != nil {
		t.Fatalf("ChannelID(\"#general\") unexpected error: %v", err)
	}
	if got != testutil.GeneralID {
		t.Errorf("ChannelID(\"#general\") = %q, want %q", got, testutil.GeneralID)
	}
	if calls := ms.Calls("conversations.list"); calls != 1 {
		t.Errorf("conversations.list called %d times, want 1", calls)
	}

	uid, err := r.UserID(context.Background(), "@alice")
	if err != nil {
		t.Fatalf("UserID(\"@alice\") unexpected error: %v", err)
	}
	if uid != testutil.AliceID {
		t.Errorf("UserID(\"@alice\") = %q, want %q", uid, testutil.AliceID)
	}
}
