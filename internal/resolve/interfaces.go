package resolve

import "context"

// ChannelResolver resolves channel references to channel IDs. Tool handlers
// and helpers accept this interface rather than the concrete *Resolver type.
type ChannelResolver interface {
	ChannelID(ctx context.Context, ref string) (string, error)
}

// UserResolver resolves user references to user IDs.
type UserResolver interface {
	UserID(ctx context.Context, ref string) (string, error)
}

// Compile-time assertions: *Resolver satisfies both interfaces.
var (
	_ ChannelResolver = (*Resolver)(nil)
	_ UserResolver    = (*Resolver)(nil)
)
