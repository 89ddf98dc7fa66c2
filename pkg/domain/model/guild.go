package model

import (
	"strings"

	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

// GuildConfig is the per-guild configuration record owned by the
// persistence layer. SupportChannelID of zero means the guild has no
// support channel set.
type GuildConfig struct {
	GuildID          types.GuildID
	SupportChannelID types.ChannelID
	CommandPrefix    string
}

// Configured reports whether a support channel has been set for the guild
func (c *GuildConfig) Configured() bool {
	return c.SupportChannelID != 0
}

// GuildChannel is one entry of the guild directory: a guild the bot is a
// member of, with its optional support channel (zero = unconfigured).
type GuildChannel struct {
	GuildID          types.GuildID
	SupportChannelID types.ChannelID
}

// Configured reports whether the entry carries a support channel
func (gc GuildChannel) Configured() bool {
	return gc.SupportChannelID != 0
}

// MutualGuilds is the partition of guilds shared between a user and the
// bot, built once per discernment. Both sequences stay in ascending
// GuildID order and are disjoint.
type MutualGuilds struct {
	Configured   []GuildChannel
	Unconfigured []types.GuildID
}

// Add places one directory entry into the matching partition
func (m *MutualGuilds) Add(gc GuildChannel) {
	if gc.Configured() {
		m.Configured = append(m.Configured, gc)
	} else {
		m.Unconfigured = append(m.Unconfigured, gc.GuildID)
	}
}

// User is a requesting Discord user as seen by the core: the account ID
// plus the account tag ("name" or "name#discriminator").
type User struct {
	ID  types.UserID
	Tag string
}

// Handle returns the account's primary handle: the tag with any
// "#discriminator" suffix removed.
func (u User) Handle() string {
	handle, _, _ := strings.Cut(u.Tag, "#")
	return handle
}

// Mention renders the user as a Discord mention token
func (u User) Mention() string {
	return "<@" + u.ID.String() + ">"
}
