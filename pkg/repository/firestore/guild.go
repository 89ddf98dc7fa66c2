package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sidebar-dev/sidebar/pkg/domain/model"
	"github.com/sidebar-dev/sidebar/pkg/domain/types"
)

const guildsCollection = "guilds"

// guildDoc is the Firestore persistence model. IDs are stored as int64;
// Discord snowflakes never use the sign bit.
type guildDoc struct {
	ID               int64  `firestore:"id"`
	SupportChannelID int64  `firestore:"support_channel_id"`
	CommandPrefix    string `firestore:"command_prefix"`
}

func (d *guildDoc) toModel() *model.GuildConfig {
	return &model.GuildConfig{
		GuildID:          types.GuildID(d.ID),
		SupportChannelID: types.ChannelID(d.SupportChannelID),
		CommandPrefix:    d.CommandPrefix,
	}
}

func (f *Firestore) collection() *firestore.CollectionRef {
	if f.collectionPrefix != "" {
		return f.client.Collection(f.collectionPrefix + "_" + guildsCollection)
	}
	return f.client.Collection(guildsCollection)
}

func (f *Firestore) doc(guildID types.GuildID) *firestore.DocumentRef {
	return f.collection().Doc(guildID.String())
}

func (f *Firestore) ListGuildChannels(ctx context.Context) ([]model.GuildChannel, error) {
	iter := f.collection().OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var entries []model.GuildChannel
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate guilds")
		}

		var doc guildDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode guild doc", goerr.V("doc", snap.Ref.ID))
		}
		entries = append(entries, model.GuildChannel{
			GuildID:          types.GuildID(doc.ID),
			SupportChannelID: types.ChannelID(doc.SupportChannelID),
		})
	}

	return entries, nil
}

func (f *Firestore) GetGuildConfig(ctx context.Context, guildID types.GuildID) (*model.GuildConfig, error) {
	snap, err := f.doc(guildID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrGuildNotFound, "no config record", goerr.V("guildID", guildID))
		}
		return nil, goerr.Wrap(err, "failed to get guild config", goerr.V("guildID", guildID))
	}

	var doc guildDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode guild doc", goerr.V("guildID", guildID))
	}

	return doc.toModel(), nil
}

func (f *Firestore) PutSupportChannel(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) error {
	_, err := f.doc(guildID).Set(ctx, map[string]any{
		"id":                 int64(guildID),
		"support_channel_id": int64(channelID),
	}, firestore.MergeAll)
	if err != nil {
		return goerr.Wrap(err, "failed to set support channel",
			goerr.V("guildID", guildID), goerr.V("channelID", channelID))
	}
	return nil
}

func (f *Firestore) PutCommandPrefix(ctx context.Context, guildID types.GuildID, prefix string) error {
	_, err := f.doc(guildID).Set(ctx, map[string]any{
		"id":             int64(guildID),
		"command_prefix": prefix,
	}, firestore.MergeAll)
	if err != nil {
		return goerr.Wrap(err, "failed to set command prefix", goerr.V("guildID", guildID))
	}
	return nil
}

func (f *Firestore) EnsureGuild(ctx context.Context, guildID types.GuildID) error {
	_, err := f.doc(guildID).Create(ctx, &guildDoc{ID: int64(guildID)})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return goerr.Wrap(err, "failed to create guild record", goerr.V("guildID", guildID))
	}
	return nil
}
