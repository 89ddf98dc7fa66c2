package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"

	"github.com/sidebar-dev/sidebar/pkg/domain/interfaces"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

// ThreadAutoArchiveMinutes is the auto-archive window for support
// threads: 3 days, the longest duration Discord accepts.
const ThreadAutoArchiveMinutes = 4320

// client implements the platform contract on top of a discordgo session
type client struct {
	session *discordgo.Session
}

var _ interfaces.Discord = &client{}

// New wraps an open discordgo session as the platform service
func New(session *discordgo.Session) interfaces.Discord {
	return &client{session: session}
}

// IsMember reports guild membership by fetching the member record. The
// REST call has no boolean membership endpoint; an unknown-member error
// is reported as (false, nil), any other failure as an error.
func (c *client) IsMember(ctx context.Context, guildID types.GuildID, userID types.UserID) (bool, error) {
	_, err := c.session.GuildMember(guildID.String(), userID.String(), discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownEntity(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to fetch guild member",
			goerr.V("guildID", guildID), goerr.V("userID", userID))
	}
	return true, nil
}

func (c *client) Nickname(ctx context.Context, guildID types.GuildID, userID types.UserID) (string, error) {
	member, err := c.session.GuildMember(guildID.String(), userID.String(), discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownEntity(err) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to fetch guild member",
			goerr.V("guildID", guildID), goerr.V("userID", userID))
	}
	return member.Nick, nil
}

func (c *client) CreatePrivateThread(ctx context.Context, channelID types.ChannelID, name string) (types.ChannelID, error) {
	thread, err := c.session.ThreadStartComplex(channelID.String(), &discordgo.ThreadStart{
		Name:                name,
		AutoArchiveDuration: ThreadAutoArchiveMinutes,
		Type:                discordgo.ChannelTypeGuildPrivateThread,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create private thread",
			goerr.V("channelID", channelID), goerr.V("name", name))
	}

	threadID, err := types.ParseChannelID(thread.ID)
	if err != nil {
		return 0, goerr.Wrap(err, "malformed thread ID from API", goerr.V("threadID", thread.ID))
	}
	return threadID, nil
}

func (c *client) PostMention(ctx context.Context, threadID types.ChannelID, userID types.UserID) error {
	content := "<@" + userID.String() + ">"
	if _, err := c.session.ChannelMessageSend(threadID.String(), content, discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to post mention",
			goerr.V("threadID", threadID), goerr.V("userID", userID))
	}
	return nil
}

// isUnknownEntity matches the REST errors Discord returns when the
// requested member or user does not exist
func isUnknownEntity(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownUser:
			return true
		}
	}
	return false
}
