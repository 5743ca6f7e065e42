// Package tools provides shared helper utilities for MCP tool handlers: the
// result envelope, the tool error taxonomy, and the registration plumbing.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Flxkzy/Slack-MCP/internal/resolve"
	"github.com/Flxkzy/Slack-MCP/internal/safety"
	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultLogger returns l if non-nil, otherwise slog.Default().
func DefaultLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// LogAudit logs a tool invocation to the audit logger, silently ignoring a
// nil logger.
func LogAudit(audit *safety.AuditLogger, toolName string, params map[string]any, result string, start time.Time) {
	if audit == nil {
		return
	}
	_ = audit.Log(safety.AuditEntry{
		Timestamp: start,
		Tool:      toolName,
		Params:    params,
		Result:    result,
		Duration:  time.Since(start),
	})
}

// AuditFailure logs the error to the audit logger and returns a failure
// envelope whose message is prefixed with the given stage text, e.g.
// "Error sending message: channel_not_found".
func AuditFailure(audit *safety.AuditLogger, toolName string, params map[string]any, stage string, err error, start time.Time) *mcp.CallToolResult {
	LogAudit(audit, toolName, params, "error: "+err.Error(), start)
	return Failuref("%s: %v", stage, err)
}

// ResolveChannel resolves a channel reference to an ID and checks it against
// the access filter. On success it returns the channel ID and a nil errResult.
// On any failure it returns an empty ID and a non-nil errResult that the
// handler should return to the caller; the primary remote call must not be
// made in that case.
//
// The filter is matched against the reference as supplied (with a leading "#"
// stripped), so filter patterns may name channels or raw IDs.
func ResolveChannel(
	ctx context.Context,
	r resolve.ChannelResolver,
	filter *safety.Filter,
	audit *safety.AuditLogger,
	logger *slog.Logger,
	toolName string,
	channel string,
	params map[string]any,
	start time.Time,
) (channelID string, errResult *mcp.CallToolResult) {
	ref := strings.TrimPrefix(channel, "#")
	if filter != nil && !filter.IsAllowed(ref) {
		logger.Debug("channel access denied", "channel", ref)
		LogAudit(audit, toolName, params, "denied", start)
		return "", Failuref("access to channel %q is not allowed", ref)
	}

	channelID, err := r.ChannelID(ctx, channel)
	if err != nil {
		rerr := Wrap(ErrResolution, fmt.Sprintf("could not resolve channel %q", channel), err)
		LogAudit(audit, toolName, params, "error: "+rerr.Error(), start)
		return "", FailureResult(rerr.Error())
	}
	logger.Debug("resolved channel", "input", channel, "channelID", channelID)
	return channelID, nil
}

// ResolveUser is the user-reference counterpart of ResolveChannel. No filter
// applies to users.
func ResolveUser(
	ctx context.Context,
	r resolve.UserResolver,
	audit *safety.AuditLogger,
	logger *slog.Logger,
	toolName string,
	user string,
	params map[string]any,
	start time.Time,
) (userID string, errResult *mcp.CallToolResult) {
	userID, err := r.UserID(ctx, user)
	if err != nil {
		rerr := Wrap(ErrResolution, fmt.Sprintf("could not resolve user %q", user), err)
		LogAudit(audit, toolName, params, "error: "+rerr.Error(), start)
		return "", FailureResult(rerr.Error())
	}
	logger.Debug("resolved user", "input", user, "userID", userID)
	return userID, nil
}
