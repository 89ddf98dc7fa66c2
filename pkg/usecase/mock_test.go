package usecase_test

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sidebar-dev/sidebar/pkg/domain/interfaces"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

type createdThread struct {
	ChannelID types.ChannelID
	Name      string
}

type postedMention struct {
	ThreadID types.ChannelID
	UserID   types.UserID
}

// fakeDiscord is a scriptable platform client. Membership and nicknames
// are keyed by guild; per-guild errors simulate an unreachable guild.
type fakeDiscord struct {
	members    map[types.GuildID]map[types.UserID]bool
	nicknames  map[types.GuildID]string
	memberErrs map[types.GuildID]error

	nextThreadID types.ChannelID
	threadErr    error
	mentionErr   error

	threads  []createdThread
	mentions []postedMention
}

var _ interfaces.Discord = &fakeDiscord{}

func newFakeDiscord() *fakeDiscord {
	return &fakeDiscord{
		members:      map[types.GuildID]map[types.UserID]bool{},
		nicknames:    map[types.GuildID]string{},
		memberErrs:   map[types.GuildID]error{},
		nextThreadID: 90001,
	}
}

func (f *fakeDiscord) addMember(guildID types.GuildID, userID types.UserID) {
	if f.members[guildID] == nil {
		f.members[guildID] = map[types.UserID]bool{}
	}
	f.members[guildID][userID] = true
}

func (f *fakeDiscord) IsMember(ctx context.Context, guildID types.GuildID, userID types.UserID) (bool, error) {
	if err := f.memberErrs[guildID]; err != nil {
		return false, err
	}
	return f.members[guildID][userID], nil
}

func (f *fakeDiscord) Nickname(ctx context.Context, guildID types.GuildID, userID types.UserID) (string, error) {
	return f.nicknames[guildID], nil
}

func (f *fakeDiscord) CreatePrivateThread(ctx context.Context, channelID types.ChannelID, name string) (types.ChannelID, error) {
	if f.threadErr != nil {
		return 0, f.threadErr
	}
	f.threads = append(f.threads, createdThread{ChannelID: channelID, Name: name})
	id := f.nextThreadID
	f.nextThreadID++
	return id, nil
}

func (f *fakeDiscord) PostMention(ctx context.Context, threadID types.ChannelID, userID types.UserID) error {
	if f.mentionErr != nil {
		return f.mentionErr
	}
	f.mentions = append(f.mentions, postedMention{ThreadID: threadID, UserID: userID})
	return nil
}

var errPlatformDown = goerr.New("platform unavailable")
