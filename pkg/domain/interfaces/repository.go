package interfaces

import (
	"context"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

// Repository defines the guild configuration store. The core performs one
// read or write per call and relies on the store's own consistency; every
// resolution re-reads current state, nothing is cached client-side.
type Repository interface {
	// ListGuildChannels returns every guild known to the bot with its
	// optional support channel, in ascending GuildID order. The ordering
	// is load-bearing: discernment binary-searches the result.
	ListGuildChannels(ctx context.Context) ([]model.GuildChannel, error)

	// GetGuildConfig returns the configuration record for one guild.
	// Returns an error matching model.ErrGuildNotFound when the guild is
	// unknown to the store.
	GetGuildConfig(ctx context.Context, guildID types.GuildID) (*model.GuildConfig, error)

	// PutSupportChannel sets the support channel for a guild (upsert)
	PutSupportChannel(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) error

	// PutCommandPrefix sets the text-command prefix for a guild (upsert)
	PutCommandPrefix(ctx context.Context, guildID types.GuildID, prefix string) error

	// EnsureGuild creates an empty configuration record for a guild if
	// none exists yet, so the directory covers every guild the bot joined
	EnsureGuild(ctx context.Context, guildID types.GuildID) error

	Close() error
}
