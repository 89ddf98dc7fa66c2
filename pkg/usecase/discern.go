package usecase

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rivo/uniseg"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
	"github.com/sidebar-dev/sidebar/pkg/utils/logging"
)

// DiscernGuild determines which single guild (and support channel) a
// direct message targets.
//
// If the author and the bot have exactly one configured mutual guild,
// it is that one and the whole message is kept as the thread title. With
// two or more, the message must begin with the numeric ID of the target
// guild; the token and its terminating whitespace are consumed and the
// rest of the message is returned as the remainder.
func (uc *UseCases) DiscernGuild(ctx context.Context, author model.User, text string) (types.GuildID, types.ChannelID, string, error) {
	logger := logging.From(ctx)

	directory, err := uc.repo.ListGuildChannels(ctx)
	if err != nil {
		return 0, 0, "", goerr.Wrap(err, "failed to list guild directory")
	}

	// Membership is checked one guild at a time, in ascending ID order,
	// so the partition keeps the directory's ordering for binary search.
	var mutual model.MutualGuilds
	for _, entry := range directory {
		ok, err := uc.discord.IsMember(ctx, entry.GuildID, author.ID)
		if err != nil {
			// Treated as non-membership so one unreachable guild cannot
			// block requests for the others. The guild just drops out of
			// the user's options for this message.
			logger.Warn("membership check failed, treating as non-member",
				"guildID", entry.GuildID, "userID", author.ID, "error", err.Error())
			continue
		}
		if ok {
			mutual.Add(entry)
		}
	}

	switch len(mutual.Configured) {
	case 0:
		return 0, 0, "", goerr.Wrap(ErrNoConfiguredGuilds, "cannot discern guild")
	case 1:
		// No token is consumed here, even if the message starts with
		// digits: with one option there is nothing to disambiguate.
		entry := mutual.Configured[0]
		return entry.GuildID, entry.SupportChannelID, text, nil
	}

	target, remainder, err := parseGuildIDToken(text, &mutual)
	if err != nil {
		return 0, 0, "", err
	}

	idx, found := slices.BinarySearchFunc(mutual.Configured, target,
		func(e model.GuildChannel, id types.GuildID) int {
			return cmp.Compare(e.GuildID, id)
		})
	if found {
		entry := mutual.Configured[idx]
		return entry.GuildID, entry.SupportChannelID, remainder, nil
	}

	if _, found := slices.BinarySearch(mutual.Unconfigured, target); found {
		return 0, 0, "", &UnconfiguredGuildError{GuildID: target}
	}
	return 0, 0, "", &WrongGuildIDError{GuildID: target}
}

// parseGuildIDToken reads a leading decimal guild ID off the message.
// The scan walks grapheme clusters, not bytes, because the remainder is
// reused as a grapheme-safe thread title.
//
// Each accepted cluster must be a single ASCII digit. A single-rune
// whitespace cluster completes the token and is discarded. Any other
// cluster fails the parse: with no digits accumulated yet the message
// simply lacks an ID (the user gets the list of valid ones), otherwise
// the offending character is reported. A multi-codepoint cluster is
// handled the same way, reporting its first rune.
func parseGuildIDToken(text string, mutual *model.MutualGuilds) (types.GuildID, string, error) {
	var digits []byte
	remainder := ""

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 1 {
			c := runes[0]
			if c >= '0' && c <= '9' {
				digits = append(digits, byte(c))
				continue
			}
			if len(digits) == 0 {
				return 0, "", unspecifiedGuildID(mutual)
			}
			if unicode.IsSpace(c) {
				_, to := g.Positions()
				remainder = text[to:]
				break
			}
			return 0, "", &WrongCharInGuildIDError{Char: c}
		}

		if len(digits) == 0 {
			return 0, "", unspecifiedGuildID(mutual)
		}
		return 0, "", &WrongCharInGuildIDError{Char: runes[0]}
	}

	// Overflow (or an empty message) surfaces as a plain parse failure
	v, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return 0, "", goerr.Wrap(err, "failed to parse guild ID token", goerr.V("token", string(digits)))
	}

	return types.GuildID(v), remainder, nil
}

func unspecifiedGuildID(mutual *model.MutualGuilds) error {
	ids := make([]types.GuildID, len(mutual.Configured))
	for i, entry := range mutual.Configured {
		ids[i] = entry.GuildID
	}
	return &UnspecifiedGuildIDError{ConfiguredGuildIDs: ids}
}
