package interfaces

import (
	"context"

	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

// Discord is the platform client contract the core depends on. All calls
// are single network round trips; the core issues them sequentially and
// never retries.
type Discord interface {
	// IsMember reports whether the user belongs to the guild. A transient
	// API failure is returned as an error; policy for collapsing it to
	// non-membership belongs to the caller.
	IsMember(ctx context.Context, guildID types.GuildID, userID types.UserID) (bool, error)

	// Nickname returns the user's nickname in the guild, or "" if the
	// user has none set
	Nickname(ctx context.Context, guildID types.GuildID, userID types.UserID) (string, error)

	// CreatePrivateThread creates a private thread under the channel with
	// the given name (at most 100 bytes) and a 3-day auto-archive window,
	// returning the new thread's channel ID
	CreatePrivateThread(ctx context.Context, channelID types.ChannelID, name string) (types.ChannelID, error)

	// PostMention posts a message into the thread mentioning the user,
	// which also invites them into the private thread
	PostMention(ctx context.Context, threadID types.ChannelID, userID types.UserID) error
}
