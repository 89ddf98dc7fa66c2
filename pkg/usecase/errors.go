package usecase

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

// Discernment and command failures the user can correct themselves. Each
// variant carries exactly the data its user-facing message needs; the
// controller renders the text at the boundary. None of these are bugs and
// none are retried.

// ErrNoConfiguredGuilds means no guild shared between the user and the
// bot has a support channel set
var ErrNoConfiguredGuilds = goerr.New("no configured mutual guilds")

// UnconfiguredGuildError means the user targeted a mutual guild that has
// no support channel set
type UnconfiguredGuildError struct {
	GuildID types.GuildID
}

func (e *UnconfiguredGuildError) Error() string {
	return "guild has no support channel: " + e.GuildID.String()
}

// WrongGuildIDError means the supplied guild ID matches no guild mutual
// between the user and the bot
type WrongGuildIDError struct {
	GuildID types.GuildID
}

func (e *WrongGuildIDError) Error() string {
	return "unknown guild ID: " + e.GuildID.String()
}

// UnspecifiedGuildIDError means the message had to start with a guild ID
// but did not. It carries the configured mutual guilds to show the user
// their options.
type UnspecifiedGuildIDError struct {
	ConfiguredGuildIDs []types.GuildID
}

func (e *UnspecifiedGuildIDError) Error() string {
	return "message must start with a guild ID"
}

// FormattedGuildIDs renders the configured guild IDs one per line
func (e *UnspecifiedGuildIDError) FormattedGuildIDs() string {
	ids := make([]string, len(e.ConfiguredGuildIDs))
	for i, id := range e.ConfiguredGuildIDs {
		ids[i] = id.String()
	}
	return strings.Join(ids, "\n")
}

// WrongCharInGuildIDError means a character other than an ASCII digit
// appeared inside the guild ID token
type WrongCharInGuildIDError struct {
	Char rune
}

func (e *WrongCharInGuildIDError) Error() string {
	return "wrong character in guild ID: " + string(e.Char)
}
