package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
	"github.com/sidebar-dev/sidebar/pkg/usecase"
	"github.com/sidebar-dev/sidebar/pkg/utils/async"
	"github.com/sidebar-dev/sidebar/pkg/utils/errutil"
	"github.com/sidebar-dev/sidebar/pkg/utils/logging"
)

// DefaultCommandPrefix is used for guilds that have not set their own
// text-command prefix
const DefaultCommandPrefix = "!"

// DefaultActivity is the listening activity shown in the bot's presence
const DefaultActivity = "/help"

// Controller owns the gateway event surface: it validates incoming
// events, calls the use case layer, and renders outcomes (including
// user-correctable errors) into reply text. No business logic lives here.
type Controller struct {
	uc            *usecase.UseCases
	defaultPrefix string
	activity      string
}

type Option func(*Controller)

// WithDefaultPrefix overrides the fallback text-command prefix
func WithDefaultPrefix(prefix string) Option {
	return func(c *Controller) {
		c.defaultPrefix = prefix
	}
}

// WithActivity overrides the presence activity text
func WithActivity(activity string) Option {
	return func(c *Controller) {
		c.activity = activity
	}
}

// New creates a gateway controller
func New(uc *usecase.UseCases, opts ...Option) *Controller {
	c := &Controller{
		uc:            uc,
		defaultPrefix: DefaultCommandPrefix,
		activity:      DefaultActivity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register attaches all event handlers to the session. Must be called
// before the session is opened.
func (c *Controller) Register(s *discordgo.Session) {
	s.AddHandler(c.handleReady)
	s.AddHandler(c.handleGuildCreate)
	s.AddHandler(c.handleMessageCreate)
	s.AddHandler(c.handleInteractionCreate)
}

func (c *Controller) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	if err := s.UpdateListeningStatus(c.activity); err != nil {
		logging.Default().Warn("failed to set activity", "error", err.Error())
	}
	logging.Default().Info("connected to gateway", "user", r.User.Username)
}

// handleGuildCreate keeps the guild directory covering every guild the
// bot is a member of; the gateway replays one event per guild on connect
func (c *Controller) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	guildID, err := types.ParseGuildID(g.ID)
	if err != nil {
		logging.Default().Warn("malformed guild ID in guild create", "id", g.ID)
		return
	}

	async.Dispatch(context.Background(), func(ctx context.Context) error {
		return c.uc.RegisterGuild(ctx, guildID)
	})
}

func (c *Controller) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	// A message without a guild ID arrived over a direct message channel
	if m.GuildID == "" {
		c.handleDirectMessage(s, m)
		return
	}

	c.handlePrefixCommand(s, m)
}

// handleDirectMessage turns a DM into a support thread request
func (c *Controller) handleDirectMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	author, err := messageAuthor(m)
	if err != nil {
		logging.Default().Warn("malformed author in direct message", "error", err.Error())
		return
	}
	content := m.Content

	async.Dispatch(context.Background(), func(ctx context.Context) error {
		var reply string
		if err := c.uc.CreateFromDM(ctx, author, content); err != nil {
			reply = renderError(err)
			if _, ok := userError(err); !ok {
				_ = errutil.Handle(ctx, err, "failed to open support thread from DM")
			}
		} else {
			reply = msgThreadCreated
		}

		if _, err := s.ChannelMessageSend(m.ChannelID, reply, discordgo.WithContext(ctx)); err != nil {
			return goerr.Wrap(err, "failed to reply to DM", goerr.V("channelID", m.ChannelID))
		}
		return nil
	})
}

// messageAuthor converts a gateway message author into the core's user
// representation
func messageAuthor(m *discordgo.MessageCreate) (model.User, error) {
	id, err := types.ParseUserID(m.Author.ID)
	if err != nil {
		return model.User{}, goerr.Wrap(err, "malformed user ID", goerr.V("id", m.Author.ID))
	}
	return model.User{ID: id, Tag: m.Author.String()}, nil
}
