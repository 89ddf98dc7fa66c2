package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
	"github.com/sidebar-dev/sidebar/pkg/repository/memory"
	"github.com/sidebar-dev/sidebar/pkg/usecase"
)

const testUserID types.UserID = 777

func testAuthor() model.User {
	return model.User{ID: testUserID, Tag: "alice#0042"}
}

// seedGuild records a guild in the repository and makes the test user a
// member of it. channelID zero leaves the guild unconfigured.
func seedGuild(t *testing.T, repo *memory.Memory, discord *fakeDiscord, guildID types.GuildID, channelID types.ChannelID) {
	t.Helper()
	ctx := context.Background()

	gt.NoError(t, repo.EnsureGuild(ctx, guildID)).Required()
	if channelID != 0 {
		gt.NoError(t, repo.PutSupportChannel(ctx, guildID, channelID)).Required()
	}
	discord.addMember(guildID, testUserID)
}

func TestDiscernGuildSingleConfigured(t *testing.T) {
	repo := memory.New()
	discord := newFakeDiscord()
	seedGuild(t, repo, discord, 1000, 2000)
	uc := usecase.New(repo, discord)

	// With one option, a digit-leading message is kept whole as the title
	guildID, channelID, remainder, err := uc.DiscernGuild(context.Background(), testAuthor(), "42 is my favorite number")
	gt.NoError(t, err).Required()
	gt.Value(t, guildID).Equal(types.GuildID(1000))
	gt.Value(t, channelID).Equal(types.ChannelID(2000))
	gt.Value(t, remainder).Equal("42 is my favorite number")
}

func TestDiscernGuildNoneConfigured(t *testing.T) {
	repo := memory.New()
	discord := newFakeDiscord()
	uc := usecase.New(repo, discord)

	t.Run("empty directory", func(t *testing.T) {
		_, _, _, err := uc.DiscernGuild(context.Background(), testAuthor(), "help me")
		gt.Bool(t, errors.Is(err, usecase.ErrNoConfiguredGuilds)).True()
	})

	t.Run("only unconfigured mutual guilds", func(t *testing.T) {
		seedGuild(t, repo, discord, 1000, 0)
		_, _, _, err := uc.DiscernGuild(context.Background(), testAuthor(), "help me")
		gt.Bool(t, errors.Is(err, usecase.ErrNoConfiguredGuilds)).True()
	})

	t.Run("configured guild the user is not in", func(t *testing.T) {
		gt.NoError(t, repo.PutSupportChannel(context.Background(), 3000, 3001)).Required()
		_, _, _, err := uc.DiscernGuild(context.Background(), testAuthor(), "help me")
		gt.Bool(t, errors.Is(err, usecase.ErrNoConfiguredGuilds)).True()
	})
}

func TestDiscernGuildMultipleConfigured(t *testing.T) {
	newUC := func(t *testing.T) *usecase.UseCases {
		repo := memory.New()
		discord := newFakeDiscord()
		seedGuild(t, repo, discord, 1234, 11)
		seedGuild(t, repo, discord, 5678, 22)
		seedGuild(t, repo, discord, 9999, 0)
		return usecase.New(repo, discord)
	}
	ctx := context.Background()

	t.Run("leading ID selects the guild", func(t *testing.T) {
		guildID, channelID, remainder, err := newUC(t).DiscernGuild(ctx, testAuthor(), "1234 printer is on fire")
		gt.NoError(t, err).Required()
		gt.Value(t, guildID).Equal(types.GuildID(1234))
		gt.Value(t, channelID).Equal(types.ChannelID(11))
		gt.Value(t, remainder).Equal("printer is on fire")
	})

	t.Run("only the first whitespace is consumed", func(t *testing.T) {
		_, _, remainder, err := newUC(t).DiscernGuild(ctx, testAuthor(), "5678  spaced  title")
		gt.NoError(t, err).Required()
		gt.Value(t, remainder).Equal(" spaced  title")
	})

	t.Run("bare ID leaves an empty title", func(t *testing.T) {
		guildID, _, remainder, err := newUC(t).DiscernGuild(ctx, testAuthor(), "5678")
		gt.NoError(t, err).Required()
		gt.Value(t, guildID).Equal(types.GuildID(5678))
		gt.Value(t, remainder).Equal("")
	})

	t.Run("unconfigured mutual guild", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "9999 help")
		var ucErr *usecase.UnconfiguredGuildError
		gt.Bool(t, errors.As(err, &ucErr)).True()
		gt.Value(t, ucErr.GuildID).Equal(types.GuildID(9999))
	})

	t.Run("unknown guild ID", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "4444 help")
		var wrongErr *usecase.WrongGuildIDError
		gt.Bool(t, errors.As(err, &wrongErr)).True()
		gt.Value(t, wrongErr.GuildID).Equal(types.GuildID(4444))
	})

	t.Run("non-digit inside the token", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "12a4 help")
		var charErr *usecase.WrongCharInGuildIDError
		gt.Bool(t, errors.As(err, &charErr)).True()
		gt.Value(t, charErr.Char).Equal('a')
	})

	t.Run("message without a leading ID lists the options", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "just help me")
		var unspecErr *usecase.UnspecifiedGuildIDError
		gt.Bool(t, errors.As(err, &unspecErr)).True()
		gt.Value(t, unspecErr.ConfiguredGuildIDs).Equal([]types.GuildID{1234, 5678})
		gt.Value(t, unspecErr.FormattedGuildIDs()).Equal("1234\n5678")
	})

	t.Run("empty message", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "")
		gt.Error(t, err)
	})

	t.Run("token overflowing uint64", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "99999999999999999999999 help")
		gt.Error(t, err)
		var charErr *usecase.WrongCharInGuildIDError
		gt.Bool(t, errors.As(err, &charErr)).False()
	})

	t.Run("emoji cluster before any digit", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "\U0001F44B 1234 help")
		var unspecErr *usecase.UnspecifiedGuildIDError
		gt.Bool(t, errors.As(err, &unspecErr)).True()
	})

	t.Run("multi-codepoint cluster after digits", func(t *testing.T) {
		_, _, _, err := newUC(t).DiscernGuild(ctx, testAuthor(), "12\U0001F469\u200D\U0001F4BB help")
		var charErr *usecase.WrongCharInGuildIDError
		gt.Bool(t, errors.As(err, &charErr)).True()
		gt.Value(t, charErr.Char).Equal('\U0001F469')
	})
}

// Discernment over a large directory must agree with a naive linear scan
// for every member guild and for IDs between them.
func TestDiscernGuildAgreesWithLinearScan(t *testing.T) {
	repo := memory.New()
	discord := newFakeDiscord()
	ctx := context.Background()

	entries := map[types.GuildID]types.ChannelID{}
	for i := 0; i < 50; i++ {
		guildID := types.GuildID(1000 + i*7)
		var channelID types.ChannelID
		if i%3 != 0 {
			channelID = types.ChannelID(2000 + i)
		}
		entries[guildID] = channelID
		seedGuild(t, repo, discord, guildID, channelID)
	}
	uc := usecase.New(repo, discord)

	for guildID, channelID := range entries {
		gotGuild, gotChannel, _, err := uc.DiscernGuild(ctx, testAuthor(), guildID.String()+" title")
		if channelID != 0 {
			gt.NoError(t, err).Required()
			gt.Value(t, gotGuild).Equal(guildID)
			gt.Value(t, gotChannel).Equal(channelID)
		} else {
			var ucErr *usecase.UnconfiguredGuildError
			gt.Bool(t, errors.As(err, &ucErr)).True()
			gt.Value(t, ucErr.GuildID).Equal(guildID)
		}

		// An ID between directory entries is mutual with no one
		between := guildID + 1
		if _, ok := entries[between]; !ok {
			_, _, _, err := uc.DiscernGuild(ctx, testAuthor(), between.String()+" title")
			var wrongErr *usecase.WrongGuildIDError
			gt.Bool(t, errors.As(err, &wrongErr)).True()
		}
	}
}

func TestDiscernGuildUnreachableGuildSkipped(t *testing.T) {
	repo := memory.New()
	discord := newFakeDiscord()
	seedGuild(t, repo, discord, 1234, 11)
	seedGuild(t, repo, discord, 5678, 22)
	discord.memberErrs[1234] = errPlatformDown
	uc := usecase.New(repo, discord)

	// The failing guild drops out, leaving a single option, so the
	// message is not parsed for an ID.
	guildID, channelID, remainder, err := uc.DiscernGuild(context.Background(), testAuthor(), "1234 should stay intact")
	gt.NoError(t, err).Required()
	gt.Value(t, guildID).Equal(types.GuildID(5678))
	gt.Value(t, channelID).Equal(types.ChannelID(22))
	gt.Value(t, remainder).Equal("1234 should stay intact")
}
