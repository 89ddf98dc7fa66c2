package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
	"github.com/sidebar-dev/sidebar/pkg/utils/logging"
)

// OpenSupportThread creates a private support thread for the requester
// under the guild's support channel and posts a message mentioning them,
// which pulls them into the thread. The thread title is the requester's
// display name combined with the given title, bounded to the platform's
// 100-byte limit.
func (uc *UseCases) OpenSupportThread(ctx context.Context, guildID types.GuildID, channelID types.ChannelID, requester model.User, title string) error {
	name, err := uc.displayName(ctx, guildID, requester)
	if err != nil {
		return err
	}

	threadName := model.BuildThreadName(name, title)
	threadID, err := uc.discord.CreatePrivateThread(ctx, channelID, threadName)
	if err != nil {
		return goerr.Wrap(err, "failed to create support thread",
			goerr.V("guildID", guildID), goerr.V("channelID", channelID))
	}

	if err := uc.discord.PostMention(ctx, threadID, requester.ID); err != nil {
		return goerr.Wrap(err, "failed to invite requester to thread",
			goerr.V("threadID", threadID), goerr.V("userID", requester.ID))
	}

	logging.From(ctx).Info("opened support thread",
		"guildID", guildID, "threadID", threadID, "userID", requester.ID)
	return nil
}

// CreateFromDM resolves the target guild from a direct message and opens
// the thread, using the message remainder as the title
func (uc *UseCases) CreateFromDM(ctx context.Context, author model.User, text string) error {
	guildID, channelID, remainder, err := uc.DiscernGuild(ctx, author, text)
	if err != nil {
		return err
	}
	return uc.OpenSupportThread(ctx, guildID, channelID, author, remainder)
}

// CreateFromCommand opens a support thread for a /support invocation.
// The guild is already known from the interaction; only the support
// channel needs to be resolved, and its absence is a user-correctable
// configuration error.
func (uc *UseCases) CreateFromCommand(ctx context.Context, guildID types.GuildID, requester model.User, title string) error {
	channelID, err := uc.GetSupportChannel(ctx, guildID)
	if err != nil {
		return err
	}
	if channelID == 0 {
		return &UnconfiguredGuildError{GuildID: guildID}
	}
	return uc.OpenSupportThread(ctx, guildID, channelID, requester, title)
}

// displayName prefers the requester's nickname in the guild and falls
// back to their account handle
func (uc *UseCases) displayName(ctx context.Context, guildID types.GuildID, requester model.User) (string, error) {
	nick, err := uc.discord.Nickname(ctx, guildID, requester.ID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve display name",
			goerr.V("guildID", guildID), goerr.V("userID", requester.ID))
	}
	if nick != "" {
		return nick, nil
	}
	return requester.Handle(), nil
}

// GetSupportChannel returns the guild's support channel, or zero when
// the guild has none configured (or is unknown to the store)
func (uc *UseCases) GetSupportChannel(ctx context.Context, guildID types.GuildID) (types.ChannelID, error) {
	cfg, err := uc.repo.GetGuildConfig(ctx, guildID)
	if err != nil {
		if errors.Is(err, model.ErrGuildNotFound) {
			return 0, nil
		}
		return 0, goerr.Wrap(err, "failed to read guild config", goerr.V("guildID", guildID))
	}
	return cfg.SupportChannelID, nil
}
