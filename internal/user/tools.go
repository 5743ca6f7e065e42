// Package user provides MCP tool handlers for Slack user operations.
package user

import (
	"context"
	"fmt"
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

// UserSummary is the normalized shape of one user profile. Optional profile
// fields come back as empty strings or zero, never absent.
type UserSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RealName    string `json:"real_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	StatusText  string `json:"status_text"`
	StatusEmoji string `json:"status_emoji"`
	IsAdmin     bool   `json:"is_admin"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
	Deleted     bool   `json:"deleted"`
	TZ          string `json:"tz"`
	TZLabel     string `json:"tz_label"`
	TZOffset    int    `json:"tz_offset"`
}

// summarizeUser projects a raw Slack user into a UserSummary.
func summarizeUser(u *slack.User) UserSummary {
	return UserSummary{
		ID:          u.ID,
		Name:        u.Name,
		RealName:    u.RealName,
		DisplayName: u.Profile.DisplayName,
		Email:       u.Profile.Email,
		Title:       u.Profile.Title,
		StatusText:  u.Profile.StatusText,
		StatusEmoji: u.Profile.StatusEmoji,
		IsAdmin:     u.IsAdmin,
		IsOwner:     u.IsOwner,
		IsBot:       u.IsBot,
		Deleted:     u.Deleted,
		TZ:          u.TZ,
		TZLabel:     u.TZLabel,
		TZOffset:    u.TZOffset,
	}
}

// usersListResult is the data payload of a successful slack_list_users.
type usersListResult struct {
	Members    []UserSummary `json:"members"`
	NextCursor string        `json:"next_cursor"`
}

// UserTools returns all tool registrations for Slack user operations.
func UserTools(
	api slackapi.Client,
	r resolve.UserResolver,
	audit *safety.AuditLogger,
	logger *slog.Logger,
) []tools.Registration {
	logger = tools.DefaultLogger(logger)
	return []tools.Registration{
		toolGetUserInfo(api, r, audit, logger),
		toolListUsers(api, audit, logger),
	}
}

func toolGetUserInfo(api slackapi.Client, r resolve.UserResolver, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_get_user_info"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Retrieve a Slack user's profile."),
		mcp.WithString("user",
			mcp.Required(),
			mcp.Description("User name or ID (e.g. \"alice\", \"@alice\", \"U0123456789\")"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		user, err := req.RequireString("user")
		if err != nil {
			return tools.FailureResult(tools.Missing("user").Error()), nil
		}
		params := map[string]any{"user": user}

		userID, errResult := tools.ResolveUser(ctx, r, audit, logger, toolName, user, params, start)
		if errResult != nil {
			return errResult, nil
		}

		u, err := api.GetUserInfoContext(ctx, userID)
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error getting user info", err, start), nil
		}

		tools.LogAudit(audit, toolName, params, "ok: "+u.ID, start)
		return tools.SuccessResult(summarizeUser(u)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// List users fetches the directory through the SDK, which pages internally;
// the limit caps the returned slice. The cursor argument is part of the tool
// contract but pagination state is not exposed by the client, so next_cursor
// is always empty.
func toolListUsers(api slackapi.Client, audit *safety.AuditLogger, logger *slog.Logger) tools.Registration {
	const toolName = "slack_list_users"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List users in the workspace."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum users to return (default: 100, max: 1000)"),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor (accepted for compatibility; listing is single-shot)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		limit := req.GetInt("limit", 100)
		if limit <= 0 {
			limit = 100
		}
		if limit > 1000 {
			limit = 1000
		}
		params := map[string]any{"limit": limit}

		users, err := api.GetUsersContext(ctx, slack.GetUsersOptionLimit(limit))
		if err != nil {
			return tools.AuditFailure(audit, toolName, params, "Error listing users", err, start), nil
		}
		if len(users) > limit {
			users = users[:limit]
		}

		members := make([]UserSummary, 0, len(users))
		for i := range users {
			members = append(members, summarizeUser(&users[i]))
		}

		tools.LogAudit(audit, toolName, params, fmt.Sprintf("ok: %d users", len(members)), start)
		return tools.SuccessResult(usersListResult{Members: members, NextCursor: ""}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
