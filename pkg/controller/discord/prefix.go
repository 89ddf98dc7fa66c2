package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"

	"github.com/sidebar-dev/sidebar/pkg/domain/types"
	"github.com/sidebar-dev/sidebar/pkg/utils/async"
	"github.com/sidebar-dev/sidebar/pkg/utils/errutil"
	"github.com/sidebar-dev/sidebar/pkg/utils/logging"
)

// Text command names and their aliases. These admin commands predate the
// slash commands and are kept for parity with them.
var (
	setSupportChannelAliases = []string{"set_support_channel", "set-support-channel", "support-channel", "supchan"}
	setCommandPrefixAliases  = []string{"set_command_prefix", "set-command-prefix", "set_prefix", "set-prefix", "prefix"}
)

// handlePrefixCommand serves prefix-based text commands sent in guild
// channels. The per-guild prefix is re-read from the store on every
// message so prefix changes apply immediately.
func (c *Controller) handlePrefixCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	guildID, err := types.ParseGuildID(m.GuildID)
	if err != nil {
		logging.Default().Warn("malformed guild ID in message", "id", m.GuildID)
		return
	}

	async.Dispatch(context.Background(), func(ctx context.Context) error {
		prefix, err := c.uc.GetCommandPrefix(ctx, guildID)
		if err != nil {
			return errutil.Handle(ctx, err, "failed to resolve command prefix")
		}
		if prefix == "" {
			prefix = c.defaultPrefix
		}

		body, ok := strings.CutPrefix(m.Content, prefix)
		if !ok {
			return nil
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(body), " ")
		arg = strings.TrimSpace(arg)

		var handler func(ctx context.Context, guildID types.GuildID, arg string) string
		switch {
		case matchesAlias(name, setSupportChannelAliases):
			handler = c.textSetSupportChannel
		case matchesAlias(name, setCommandPrefixAliases):
			handler = c.textSetCommandPrefix
		default:
			return nil
		}

		// Both commands require the Manage Server permission
		perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
		if err != nil {
			return errutil.Handle(ctx, goerr.Wrap(err, "failed to check permissions"), "permission check failed")
		}
		if perms&discordgo.PermissionManageServer == 0 {
			logging.From(ctx).Debug("ignoring admin text command from non-admin",
				"command", name, "userID", m.Author.ID)
			return nil
		}

		reply := handler(ctx, guildID, arg)
		if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference(), discordgo.WithContext(ctx)); err != nil {
			return goerr.Wrap(err, "failed to reply to text command", goerr.V("command", name))
		}
		return nil
	})
}

func (c *Controller) textSetSupportChannel(ctx context.Context, guildID types.GuildID, arg string) string {
	channelID, err := parseChannelArg(arg)
	if err != nil {
		return "You must provide precisely one channel to the set_support_channel command"
	}

	if err := c.uc.SetSupportChannel(ctx, guildID, channelID); err != nil {
		_ = errutil.Handle(ctx, err, "failed to set support channel via text command")
		return msgGenericFailure
	}
	return fmt.Sprintf("Support channel has been updated to <#%s>", channelID)
}

func (c *Controller) textSetCommandPrefix(ctx context.Context, guildID types.GuildID, arg string) string {
	prefix := trimQuotes(arg)
	if prefix == "" || strings.ContainsAny(prefix, " \t\n") {
		return "You must provide precisely one prefix to the set_command_prefix command"
	}

	if err := c.uc.SetCommandPrefix(ctx, guildID, prefix); err != nil {
		_ = errutil.Handle(ctx, err, "failed to set command prefix via text command")
		return msgGenericFailure
	}
	return fmt.Sprintf("Updated my command prefix to %s", prefix)
}

func matchesAlias(name string, aliases []string) bool {
	for _, alias := range aliases {
		if name == alias {
			return true
		}
	}
	return false
}

// parseChannelArg accepts either a raw channel ID or a channel mention
// in the form <#123456789>
func parseChannelArg(arg string) (types.ChannelID, error) {
	arg = trimQuotes(arg)
	if inner, ok := strings.CutPrefix(arg, "<#"); ok {
		if inner, ok = strings.CutSuffix(inner, ">"); ok {
			arg = inner
		}
	}
	if arg == "" {
		return 0, goerr.New("empty channel argument")
	}
	return types.ParseChannelID(arg)
}

// trimQuotes removes one pair of surrounding quotes, if present
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
