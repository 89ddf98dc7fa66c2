package config

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Discord holds CLI flags for the Discord bot credentials
type Discord struct {
	token string
	appID string
}

func (x *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Required:    true,
			Sources:     cli.EnvVars("SIDEBAR_DISCORD_TOKEN"),
			Destination: &x.token,
		},
		&cli.StringFlag{
			Name:        "discord-app-id",
			Usage:       "Discord application ID (the bot user's ID)",
			Category:    "Discord",
			Required:    true,
			Sources:     cli.EnvVars("SIDEBAR_DISCORD_APP_ID"),
			Destination: &x.appID,
		},
	}
}

func (x Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("app-id", x.appID),
	)
}

// AppID returns the Discord application ID
func (x *Discord) AppID() string {
	return x.appID
}

// NewSession builds a discordgo session with the gateway intents the bot
// needs: guild membership events, guild messages and direct messages.
// The session is not opened; REST-only callers can use it as is.
func (x *Discord) NewSession() (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + x.token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create discord session")
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return session, nil
}
