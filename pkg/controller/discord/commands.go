package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
	"github.com/sidebar-dev/sidebar/pkg/utils/async"
	"github.com/sidebar-dev/sidebar/pkg/utils/errutil"
	"github.com/sidebar-dev/sidebar/pkg/utils/logging"
)

const (
	cmdSupport        = "support"
	cmdSupportChannel = "support_channel"
	cmdHelp           = "help"
)

// ApplicationCommands returns the slash command set this bot exposes
func ApplicationCommands() []*discordgo.ApplicationCommand {
	manageGuild := int64(discordgo.PermissionManageServer)

	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdSupport,
			Description: "I will create a support thread with your supplied title.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "The title for your support thread",
					Required:    true,
				},
			},
		},
		{
			Name:                     cmdSupportChannel,
			Description:              "I will start using this channel as the location where I open support threads.",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel that will host private support threads",
					Required:    true,
				},
			},
		},
		{
			Name:        cmdHelp,
			Description: "Learn how to use this bot",
		},
	}
}

// RegisterCommands creates the slash commands, guild-scoped when guildID
// is non-empty, otherwise globally
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	for _, cmd := range ApplicationCommands() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return goerr.Wrap(err, "failed to create application command",
				goerr.V("name", cmd.Name), goerr.V("guildID", guildID))
		}
		logging.Default().Info("registered application command", "name", cmd.Name, "guildID", guildID)
	}
	return nil
}

// UnregisterCommands deletes every slash command registered for the app,
// guild-scoped when guildID is non-empty, otherwise globally
func UnregisterCommands(s *discordgo.Session, appID, guildID string) error {
	commands, err := s.ApplicationCommands(appID, guildID)
	if err != nil {
		return goerr.Wrap(err, "failed to list application commands", goerr.V("guildID", guildID))
	}

	for _, cmd := range commands {
		if err := s.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
			return goerr.Wrap(err, "failed to delete application command",
				goerr.V("name", cmd.Name), goerr.V("guildID", guildID))
		}
		logging.Default().Info("unregistered application command", "name", cmd.Name, "guildID", guildID)
	}
	return nil
}

func (c *Controller) handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()

	async.Dispatch(context.Background(), func(ctx context.Context) error {
		var reply string
		switch data.Name {
		case cmdSupport:
			reply = c.handleSupportCommand(ctx, i, data)
		case cmdSupportChannel:
			reply = c.handleSupportChannelCommand(ctx, i, data)
		case cmdHelp:
			reply = helpMessage()
		default:
			reply = "command not implemented"
		}

		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: reply,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		}, discordgo.WithContext(ctx))
		if err != nil {
			return goerr.Wrap(err, "failed to respond to interaction", goerr.V("command", data.Name))
		}
		return nil
	})
}

// handleSupportCommand serves /support: the guild is already known from
// the interaction, so no discernment is needed
func (c *Controller) handleSupportCommand(ctx context.Context, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) string {
	guildID, requester, err := interactionContext(i)
	if err != nil {
		_ = errutil.Handle(ctx, err, "malformed support interaction")
		return msgGenericFailure
	}

	if len(data.Options) == 0 {
		return "Please provide a title for the support thread"
	}
	title := data.Options[0].StringValue()

	if err := c.uc.CreateFromCommand(ctx, guildID, requester, title); err != nil {
		if msg, ok := userError(err); ok {
			return msg
		}
		_ = errutil.Handle(ctx, err, "failed to open support thread from command")
		return msgGenericFailure
	}
	return msgThreadCreated
}

// handleSupportChannelCommand serves /support_channel; the Manage Server
// requirement is enforced by the command's default member permissions
func (c *Controller) handleSupportChannelCommand(ctx context.Context, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) string {
	guildID, _, err := interactionContext(i)
	if err != nil {
		_ = errutil.Handle(ctx, err, "malformed support_channel interaction")
		return msgGenericFailure
	}

	if len(data.Options) == 0 {
		return "Please provide a channel where I should open support threads"
	}
	channel := data.Options[0].ChannelValue(nil)
	channelID, err := types.ParseChannelID(channel.ID)
	if err != nil {
		_ = errutil.Handle(ctx, err, "malformed channel in interaction")
		return msgGenericFailure
	}

	if err := c.uc.SetSupportChannel(ctx, guildID, channelID); err != nil {
		_ = errutil.Handle(ctx, err, "failed to set support channel")
		return msgGenericFailure
	}
	return fmt.Sprintf("Successfully set support channel to <#%s>", channelID)
}

// interactionContext extracts the guild and invoking user from a
// guild-scoped interaction
func interactionContext(i *discordgo.InteractionCreate) (types.GuildID, model.User, error) {
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return 0, model.User{}, goerr.New("interaction is not guild-scoped")
	}

	guildID, err := types.ParseGuildID(i.GuildID)
	if err != nil {
		return 0, model.User{}, goerr.Wrap(err, "malformed guild ID", goerr.V("id", i.GuildID))
	}
	userID, err := types.ParseUserID(i.Member.User.ID)
	if err != nil {
		return 0, model.User{}, goerr.Wrap(err, "malformed user ID", goerr.V("id", i.Member.User.ID))
	}

	return guildID, model.User{ID: userID, Tag: i.Member.User.String()}, nil
}
