package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// GuildID identifies a Discord guild (server). Discord issues these as
// unsigned 64-bit snowflakes; they are totally ordered and safe as map keys.
type GuildID uint64

// String returns the decimal representation of the guild ID
func (id GuildID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseGuildID parses a decimal string into a GuildID
func ParseGuildID(s string) (GuildID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid guild ID", goerr.V("input", s))
	}
	return GuildID(v), nil
}

// ChannelID identifies a Discord channel. Channel IDs are only meaningful
// in the context of a specific guild.
type ChannelID uint64

// String returns the decimal representation of the channel ID
func (id ChannelID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseChannelID parses a decimal string into a ChannelID
func ParseChannelID(s string) (ChannelID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid channel ID", goerr.V("input", s))
	}
	return ChannelID(v), nil
}

// UserID identifies a Discord user account.
type UserID uint64

// String returns the decimal representation of the user ID
func (id UserID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseUserID parses a decimal string into a UserID
func ParseUserID(s string) (UserID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid user ID", goerr.V("input", s))
	}
	return UserID(v), nil
}
