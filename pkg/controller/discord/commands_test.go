package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/gt"
)

func TestApplicationCommands(t *testing.T) {
	commands := ApplicationCommands()
	gt.Array(t, commands).Length(3)

	byName := map[string]*discordgo.ApplicationCommand{}
	for _, cmd := range commands {
		byName[cmd.Name] = cmd
	}

	support := byName[cmdSupport]
	if support == nil {
		t.Fatal("support command missing")
	}
	gt.Array(t, support.Options).Length(1)
	gt.Value(t, support.Options[0].Name).Equal("title")
	gt.Value(t, support.Options[0].Type).Equal(discordgo.ApplicationCommandOptionString)
	gt.Bool(t, support.Options[0].Required).True()
	gt.Bool(t, support.DefaultMemberPermissions == nil).True()

	supportChannel := byName[cmdSupportChannel]
	if supportChannel == nil {
		t.Fatal("support_channel command missing")
	}
	gt.Array(t, supportChannel.Options).Length(1)
	gt.Value(t, supportChannel.Options[0].Type).Equal(discordgo.ApplicationCommandOptionChannel)
	gt.Bool(t, supportChannel.Options[0].Required).True()
	if supportChannel.DefaultMemberPermissions == nil {
		t.Fatal("support_channel must require Manage Server")
	}
	gt.Value(t, *supportChannel.DefaultMemberPermissions).Equal(int64(discordgo.PermissionManageServer))

	help := byName[cmdHelp]
	if help == nil {
		t.Fatal("help command missing")
	}
	gt.Array(t, help.Options).Length(0)
}

func TestHelpMessageMentionsCommands(t *testing.T) {
	msg := helpMessage()
	for _, want := range []string{"/support", "/support_channel", "set_support_channel", "set_command_prefix"} {
		if !strings.Contains(msg, want) {
			t.Errorf("help message does not mention %q", want)
		}
	}
}
