package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sidebar-dev/sidebar/pkg/domain/interfaces"
	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"

	"github.com/m-mizutani/goerr/v2"
)

// Memory is an in-memory guild configuration store for development and
// tests. It mirrors the Firestore backend's semantics, including upserts
// and the not-found sentinel.
type Memory struct {
	mu     sync.RWMutex
	guilds map[types.GuildID]*model.GuildConfig
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository
func New() *Memory {
	return &Memory{
		guilds: make(map[types.GuildID]*model.GuildConfig),
	}
}

func copyConfig(c *model.GuildConfig) *model.GuildConfig {
	copied := *c
	return &copied
}

func (m *Memory) ListGuildChannels(ctx context.Context) ([]model.GuildChannel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]model.GuildChannel, 0, len(m.guilds))
	for _, cfg := range m.guilds {
		entries = append(entries, model.GuildChannel{
			GuildID:          cfg.GuildID,
			SupportChannelID: cfg.SupportChannelID,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GuildID < entries[j].GuildID
	})
	return entries, nil
}

func (m *Memory) GetGuildConfig(ctx context.Context, guildID types.GuildID) (*model.GuildConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg, ok := m.guilds[guildID]
	if !ok {
		return nil, goerr.Wrap(model.ErrGuildNotFound, "no config record", goerr.V("guildID", guildID))
	}
	return copyConfig(cfg), nil
}

func (m *Memory) PutSupportChannel(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(guildID).SupportChannelID = channelID
	return nil
}

func (m *Memory) PutCommandPrefix(ctx context.Context, guildID types.GuildID, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(guildID).CommandPrefix = prefix
	return nil
}

func (m *Memory) EnsureGuild(ctx context.Context, guildID types.GuildID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(guildID)
	return nil
}

// ensure must be called with the write lock held
func (m *Memory) ensure(guildID types.GuildID) *model.GuildConfig {
	cfg, ok := m.guilds[guildID]
	if !ok {
		cfg = &model.GuildConfig{GuildID: guildID}
		m.guilds[guildID] = cfg
	}
	return cfg
}

func (m *Memory) Close() error {
	return nil
}
