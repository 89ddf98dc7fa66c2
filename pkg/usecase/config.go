package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

// SetSupportChannel writes through the guild's support channel setting
func (uc *UseCases) SetSupportChannel(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) error {
	if err := uc.repo.PutSupportChannel(ctx, guildID, channelID); err != nil {
		return goerr.Wrap(err, "failed to store support channel",
			goerr.V("guildID", guildID), goerr.V("channelID", channelID))
	}
	return nil
}

// SetCommandPrefix writes through the guild's text-command prefix
func (uc *UseCases) SetCommandPrefix(ctx context.Context, guildID types.GuildID, prefix string) error {
	if prefix == "" {
		return goerr.New("command prefix must not be empty", goerr.V("guildID", guildID))
	}
	if err := uc.repo.PutCommandPrefix(ctx, guildID, prefix); err != nil {
		return goerr.Wrap(err, "failed to store command prefix", goerr.V("guildID", guildID))
	}
	return nil
}

// GetCommandPrefix returns the guild's text-command prefix, or "" when
// none is set. Configuration is re-read on every call; resolution must
// never act on stale settings.
func (uc *UseCases) GetCommandPrefix(ctx context.Context, guildID types.GuildID) (string, error) {
	cfg, err := uc.repo.GetGuildConfig(ctx, guildID)
	if err != nil {
		if errors.Is(err, model.ErrGuildNotFound) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read guild config", goerr.V("guildID", guildID))
	}
	return cfg.CommandPrefix, nil
}

// RegisterGuild records a guild in the directory so it shows up in
// discernment even before any admin configures it
func (uc *UseCases) RegisterGuild(ctx context.Context, guildID types.GuildID) error {
	if err := uc.repo.EnsureGuild(ctx, guildID); err != nil {
		return goerr.Wrap(err, "failed to register guild", goerr.V("guildID", guildID))
	}
	return nil
}
