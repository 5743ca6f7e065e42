package tools_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/Flxkzy/Slack-MCP/internal/testutil"
	"github.com/Flxkzy/Slack-MCP/internal/tools"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_ResolveChannel_Allowed(t *testing.T) {
	t.Parallel()

	id, errResult := tools.ResolveChannel(
		context.Background(), testutil.NewMockResolver(), nil, nil,
		discardLogger(), "slack_send_message", "#general", nil, time.Now(),
	)
	if errResult != nil {
		t.Fatalf("unexpected error result: %v", decode(t, errResult).Error)
	}
	if id != testutil.GeneralID {
		t.Errorf("channelID = %q, want %q", id, testutil.GeneralID)
	}
}

func Test_ResolveChannel_FilterDenied(t *testing.T) {
	t.Parallel()

	filter := safety.NewFilter(nil, []string{"secret-*"})

	// The filter sees the reference with the "#" stripped, before any
	// directory lookup happens.
	_, errResult := tools.ResolveChannel(
		context.Background(), testutil.NewMockResolver(), filter, nil,
		discardLogger(), "slack_send_message", "#secret-plans", nil, time.Now(),
	)
	if errResult == nil {
		t.Fatal("expected error result for denied channel")
	}
	env := decode(t, errResult)
	if env.Success {
		t.Error("denied resolution reported success")
	}
	if want := `access to channel "secret-plans" is not allowed`; env.Error != want {
		t.Errorf("error = %q, want %q", env.Error, want)
	}
}

func Test_ResolveChannel_AllowlistScopes(t *testing.T) {
	t.Parallel()

	filter := safety.NewFilter([]string{"general"}, nil)
	r := testutil.NewMockResolver()

	if _, errResult := tools.ResolveChannel(
		context.Background(), r, filter, nil,
		discardLogger(), "slack_send_message", "general", nil, time.Now(),
	); errResult != nil {
		t.Errorf("allowlisted channel denied: %v", decode(t, errResult).Error)
	}

	if _, errResult := tools.ResolveChannel(
		context.Background(), r, filter, nil,
		discardLogger(), "slack_send_message", "random", nil, time.Now(),
	); errResult == nil {
		t.Error("channel outside allowlist was allowed")
	}
}

func Test_ResolveChannel_NotFound(t *testing.T) {
	t.Parallel()

	_, errResult := tools.ResolveChannel(
		context.Background(), testutil.NewMockResolver(), nil, nil,
		discardLogger(), "slack_send_message", "nonexistent", nil, time.Now(),
	)
	if errResult == nil {
		t.Fatal("expected error result for unknown channel")
	}
	env := decode(t, errResult)
	if want := `could not resolve channel "nonexistent"`; !strings.Contains(env.Error, want) {
		t.Errorf("error = %q, want it to contain %q", env.Error, want)
	}
	if !strings.Contains(env.Error, "nonexistent") {
		t.Errorf("error = %q, should name the input", env.Error)
	}
}

func Test_ResolveUser(t *testing.T) {
	t.Parallel()

	id, errResult := tools.ResolveUser(
		context.Background(), testutil.NewMockResolver(), nil,
		discardLogger(), "slack_get_user_info", "@alice", nil, time.Now(),
	)
	if errResult != nil {
		t.Fatalf("unexpected error result: %v", decode(t, errResult).Error)
	}
	if id != testutil.AliceID {
		t.Errorf("userID = %q, want %q", id, testutil.AliceID)
	}

	_, errResult = tools.ResolveUser(
		context.Background(), testutil.NewMockResolver(), nil,
		discardLogger(), "slack_get_user_info", "ghost", nil, time.Now(),
	)
	if errResult == nil {
		t.Fatal("expected error result for unknown user")
	}
	if env := decode(t, errResult); !strings.Contains(env.Error, `could not resolve user "ghost"`) {
		t.Errorf("error = %q, want resolution message", env.Error)
	}
}
