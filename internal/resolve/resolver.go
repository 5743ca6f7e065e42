// Package resolve maps user-supplied channel and user references to Slack IDs.
//
// A reference may be a raw ID ("C0123", "U0456"), a bare name ("general",
// "alice"), or a decorated name ("#general", "@alice"). Raw IDs are returned
// unchanged without a network call; names are looked up with a fresh
// directory-listing call on every resolution, so a result is correct only as
// of that listing. Nothing is cached.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/Flxkzy/Slack-MCP/internal/slackapi"
	"github.com/slack-go/slack"
)

// listLimit caps the channel directory page fetched during a resolution.
// Workspaces with more channels than this can silently miss matches; the
// lookup is single-page on purpose.
const listLimit = 1000

// Resolver resolves channel and user references against the Slack directory.
// It holds no state beyond the API client and is safe for concurrent use;
// concurrent resolutions each issue their own listing call.
type Resolver struct {
	api slackapi.Client
}

// New constructs a Resolver backed by the provided Slack client.
func New(api slackapi.Client) *Resolver {
	return &Resolver{api: api}
}

// ChannelID resolves a channel reference to a channel ID. References already
// in ID form (leading 'C', 'D', or 'G') are returned as-is with no existence
// check. Otherwise a leading "#" is stripped and the channel directory
// (public and private, one page) is scanned for the first exact name match.
func (r *Resolver) ChannelID(ctx context.Context, ref string) (string, error) {
	if hasIDPrefix(ref, 'C', 'D', 'G') {
		return ref, nil
	}
	name := strings.TrimPrefix(ref, "#")

	channels, _, err := r.api.GetConversationsContext(ctx, &slack.GetConversationsParameters{
		Types: []string{"public_channel", "private_channel"},
		Limit: listLimit,
	})
	if err != nil {
		return "", fmt.Errorf("resolve: channel %q: %w", ref, err)
	}

	for _, ch := range channels {
		if ch.Name == name {
			return ch.ID, nil
		}
	}
	return "", fmt.Errorf("resolve: channel %q not found", ref)
}

// UserID resolves a user reference to a user ID. References already in ID
// form (leading 'U' or 'W') are returned as-is. Otherwise a leading "@" is
// stripped and the user directory is scanned three times, matching the
// account handle first, then the real name, then the profile display name.
// Within a pass the first match in listing order wins, so a handle match on
// a later user beats a real-name match on an earlier one.
func (r *Resolver) UserID(ctx context.Context, ref string) (string, error) {
	if hasIDPrefix(ref, 'U', 'W') {
		return ref, nil
	}
	name := strings.TrimPrefix(ref, "@")

	users, err := r.api.GetUsersContext(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve: user %q: %w", ref, err)
	}

	for _, field := range []func(*slack.User) string{
		func(u *slack.User) string { return u.Name },
		func(u *slack.User) string { return u.RealName },
		func(u *slack.User) string { return u.Profile.DisplayName },
	} {
		for i := range users {
			if field(&users[i]) == name {
				return users[i].ID, nil
			}
		}
	}
	return "", fmt.Errorf("resolve: user %q not found", ref)
}

// hasIDPrefix reports whether s starts with one of the given ID prefix bytes.
// The check is case-sensitive and runs before any "#"/"@" stripping.
func hasIDPrefix(s string, prefixes ...byte) bool {
	if s == "" {
		return false
	}
	for _, p := range prefixes {
		if s[0] == p {
			return true
		}
	}
	return false
}
