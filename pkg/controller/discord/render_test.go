package discord

import (
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/sidebar-dev/sidebar/pkg/domain/types"
	"github.com/sidebar-dev/sidebar/pkg/usecase"
)

func TestUserError(t *testing.T) {
	t.Run("no configured guilds", func(t *testing.T) {
		err := goerr.Wrap(usecase.ErrNoConfiguredGuilds, "cannot discern guild")
		msg, ok := userError(err)
		gt.Bool(t, ok).True()
		gt.Value(t, msg).Equal(msgNoConfiguredGuilds)
	})

	t.Run("unconfigured guild names the ID", func(t *testing.T) {
		msg, ok := userError(&usecase.UnconfiguredGuildError{GuildID: 1234})
		gt.Bool(t, ok).True()
		gt.Bool(t, strings.Contains(msg, "1234")).True()
		gt.Bool(t, strings.Contains(msg, "set_support_channel")).True()
	})

	t.Run("wrong guild ID names the ID", func(t *testing.T) {
		msg, ok := userError(&usecase.WrongGuildIDError{GuildID: 4444})
		gt.Bool(t, ok).True()
		gt.Bool(t, strings.Contains(msg, "4444")).True()
	})

	t.Run("unspecified ID appends the options", func(t *testing.T) {
		msg, ok := userError(&usecase.UnspecifiedGuildIDError{ConfiguredGuildIDs: []types.GuildID{1234, 5678}})
		gt.Bool(t, ok).True()
		gt.Bool(t, strings.HasPrefix(msg, msgGuildIDHelp)).True()
		gt.Bool(t, strings.HasSuffix(msg, "1234\n5678")).True()
	})

	t.Run("wrong character shows the character", func(t *testing.T) {
		msg, ok := userError(&usecase.WrongCharInGuildIDError{Char: 'a'})
		gt.Bool(t, ok).True()
		gt.Bool(t, strings.Contains(msg, "`a`")).True()
	})

	t.Run("other errors are not user errors", func(t *testing.T) {
		_, ok := userError(goerr.New("firestore unavailable"))
		gt.Bool(t, ok).False()
	})
}

func TestRenderError(t *testing.T) {
	gt.Value(t, renderError(goerr.New("internal"))).Equal(msgGenericFailure)
	gt.Value(t, renderError(&usecase.WrongGuildIDError{GuildID: 1})).NotEqual(msgGenericFailure)
}
