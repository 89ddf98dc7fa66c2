package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/sidebar-dev/sidebar/pkg/cli/config"
	ctrl "github.com/sidebar-dev/sidebar/pkg/controller/discord"
)

// Slash command management. Both commands unregister the existing set
// first so re-running after a definition change never leaves stale
// commands behind. An empty --target-guild-id operates on the global
// command set.

func targetGuildFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "target-guild-id",
		Usage:       "Operate on this guild's commands instead of the global set",
		Sources:     cli.EnvVars("SIDEBAR_TARGET_GUILD_ID"),
		Destination: dst,
	}
}

func cmdRegisterCommands() *cli.Command {
	var discordCfg config.Discord
	var targetGuildID string

	flags := append(discordCfg.Flags(), targetGuildFlag(&targetGuildID))

	return &cli.Command{
		Name:  "register-commands",
		Usage: "Register the bot's slash commands with Discord",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := discordCfg.NewSession()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Discord session")
			}

			if err := ctrl.UnregisterCommands(session, discordCfg.AppID(), targetGuildID); err != nil {
				return err
			}
			return ctrl.RegisterCommands(session, discordCfg.AppID(), targetGuildID)
		},
	}
}

func cmdUnregisterCommands() *cli.Command {
	var discordCfg config.Discord
	var targetGuildID string

	flags := append(discordCfg.Flags(), targetGuildFlag(&targetGuildID))

	return &cli.Command{
		Name:  "unregister-commands",
		Usage: "Remove the bot's slash commands from Discord",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := discordCfg.NewSession()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Discord session")
			}

			return ctrl.UnregisterCommands(session, discordCfg.AppID(), targetGuildID)
		},
	}
}
