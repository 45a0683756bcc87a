// Package mongo — реализация storage.Storage поверх MongoDB.
//
// mongo.go — подключение, коллекции и индексация.
// Файлы по сущностям (users.go, videos.go, ...) — CRUD и атомарные операции.
// cascade.go — каскадные удаления (worklist, дети раньше родителей).
// views.go — агрегационные read-модели (джойны владельцев, счётчики, выдачи).
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-video-hosting/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection         = "users"
	videosCollection        = "videos"
	tweetsCollection        = "tweets"
	commentsCollection      = "comments"
	likesCollection         = "likes"
	playlistsCollection     = "playlists"
	subscriptionsCollection = "subscriptions"

	defaultDBName = "videohosting"
)

// Mongo — адаптер подключения и коллекций MongoDB.
type Mongo struct {
	cfg    *config.Config
	client *mongodriver.Client
	db     *mongodriver.Database

	users         *mongodriver.Collection
	videos        *mongodriver.Collection
	tweets        *mongodriver.Collection
	comments      *mongodriver.Collection
	likes         *mongodriver.Collection
	playlists     *mongodriver.Collection
	subscriptions *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		cfg:           cfg,
		client:        cli,
		db:            db,
		users:         db.Collection(usersCollection),
		videos:        db.Collection(videosCollection),
		tweets:        db.Collection(tweetsCollection),
		comments:      db.Collection(commentsCollection),
		likes:         db.Collection(likesCollection),
		playlists:     db.Collection(playlistsCollection),
		subscriptions: db.Collection(subscriptionsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Close закрывает соединение с MongoDB.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые сервису.
//   - users: уникальные username/email (регистры сведены при записи);
//   - videos: листинг по владельцу, поиск по is_published + created_at;
//   - tweets/comments: обход деревьев по parent-полю;
//   - likes: частичные уникальные индексы (liked_by, цель) — защита от
//     дубликатов при гонке toggle; plus выдачи liked-* по liked_by;
//   - subscriptions: уникальная пара (subscriber, channel) + обратный индекс.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	specs := []struct {
		coll   *mongodriver.Collection
		models []mongodriver.IndexModel
	}{
		{m.users, []mongodriver.IndexModel{
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetName("uniq_username").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("uniq_email").SetUnique(true),
			},
		}},
		{m.videos, []mongodriver.IndexModel{
			{
				Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("owner_created_desc"),
			},
			{
				Keys:    bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("published_created_desc"),
			},
		}},
		{m.tweets, []mongodriver.IndexModel{
			{
				Keys:    bson.D{{Key: "parent_tweet", Value: 1}},
				Options: options.Index().SetName("parent_tweet"),
			},
			{
				Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("owner_created_desc"),
			},
		}},
		{m.comments, []mongodriver.IndexModel{
			{
				Keys:    bson.D{{Key: "video", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("video_created_desc"),
			},
			{
				Keys:    bson.D{{Key: "parent_comment", Value: 1}},
				Options: options.Index().SetName("parent_comment"),
			},
		}},
		{m.likes, []mongodriver.IndexModel{
			{
				Keys: bson.D{{Key: "liked_by", Value: 1}, {Key: "video", Value: 1}},
				Options: options.Index().SetName("uniq_like_video").SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}}}),
			},
			{
				Keys: bson.D{{Key: "liked_by", Value: 1}, {Key: "comment", Value: 1}},
				Options: options.Index().SetName("uniq_like_comment").SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "comment", Value: bson.D{{Key: "$exists", Value: true}}}}),
			},
			{
				Keys: bson.D{{Key: "liked_by", Value: 1}, {Key: "tweet", Value: 1}},
				Options: options.Index().SetName("uniq_like_tweet").SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "tweet", Value: bson.D{{Key: "$exists", Value: true}}}}),
			},
			{
				Keys:    bson.D{{Key: "video", Value: 1}},
				Options: options.Index().SetName("like_video"),
			},
			{
				Keys:    bson.D{{Key: "comment", Value: 1}},
				Options: options.Index().SetName("like_comment"),
			},
			{
				Keys:    bson.D{{Key: "tweet", Value: 1}},
				Options: options.Index().SetName("like_tweet"),
			},
		}},
		{m.playlists, []mongodriver.IndexModel{
			{
				Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("owner_created_desc"),
			},
			{
				Keys:    bson.D{{Key: "videos", Value: 1}},
				Options: options.Index().SetName("videos"),
			},
		}},
		{m.subscriptions, []mongodriver.IndexModel{
			{
				Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
				Options: options.Index().SetName("uniq_subscriber_channel").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "channel", Value: 1}},
				Options: options.Index().SetName("channel"),
			},
		}},
	}

	for _, s := range specs {
		if _, err := s.coll.Indexes().CreateMany(ctx, s.models); err != nil {
			return fmt.Errorf("mongo ensure indexes (%s): %w", s.coll.Name(), err)
		}
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся разбору, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}
