package discord

import (
	"errors"
	"fmt"

	"github.com/sidebar-dev/sidebar/pkg/usecase"
)

// User-facing reply texts. Typed use case errors are rendered here, at
// the boundary; the core never formats messages for display.

const (
	msgThreadCreated = "Created your support thread!"

	msgGenericFailure = "Something went wrong on my end. Please try again in a moment."

	msgNoConfiguredGuilds = "None of your common servers has been configured. " +
		"Please advise someone with the Manage Server permission there to run the set_support_channel command."

	msgGuildIDHelp = "Since you are in multiple servers that use me, you must write as the first part " +
		"of your message the ID of the server in which you would like to open a support thread.\n" +
		"If you don't know how to find this ID, please consult this support article: " +
		"https://support.discord.com/hc/en-us/articles/206346498-Where-can-I-find-my-User-Server-Message-ID-\n" +
		"Usage example with this bot: `91238421834712347 my thread title`\n" +
		"Here are the IDs of servers you share with me that have been properly configured for its use:\n"
)

// userError unwraps err into its user-correctable variant text, if any
func userError(err error) (string, bool) {
	if errors.Is(err, usecase.ErrNoConfiguredGuilds) {
		return msgNoConfiguredGuilds, true
	}

	var unconfigured *usecase.UnconfiguredGuildError
	if errors.As(err, &unconfigured) {
		return fmt.Sprintf("Server with ID %s has not been configured. "+
			"Please advise someone with the Manage Server permission there to run the set_support_channel command.",
			unconfigured.GuildID), true
	}

	var wrongID *usecase.WrongGuildIDError
	if errors.As(err, &wrongID) {
		return fmt.Sprintf("Server with ID %s either does not use this bot, or is not one of your servers. "+
			"Please double check that this server ID is correct.", wrongID.GuildID), true
	}

	var unspecified *usecase.UnspecifiedGuildIDError
	if errors.As(err, &unspecified) {
		return msgGuildIDHelp + unspecified.FormattedGuildIDs(), true
	}

	var wrongChar *usecase.WrongCharInGuildIDError
	if errors.As(err, &wrongChar) {
		return fmt.Sprintf("The server ID you supplied contained a wrong character: `%c`", wrongChar.Char), true
	}

	return "", false
}

// renderError maps any error to reply text: user-correctable errors get
// their own message, everything else a generic failure line
func renderError(err error) string {
	if msg, ok := userError(err); ok {
		return msg
	}
	return msgGenericFailure
}
