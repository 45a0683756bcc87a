package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// CreateTweet сохраняет твит (корневой или ответ).
// Если задан ParentID, родитель обязан существовать на момент вставки —
// проверяется повторно здесь, а не только валидатором выше.
func (m *Mongo) CreateTweet(ctx context.Context, tweet models.Tweet) (*models.Tweet, error) {
	const op = "storage/mongo/CreateTweet"

	if strings.TrimSpace(tweet.Content) == "" || tweet.OwnerID.IsZero() {
		return nil, fmt.Errorf("%s: %w: empty content or owner", op, storage.ErrInvalidArgument)
	}

	if !tweet.ParentID.IsZero() {
		err := m.tweets.FindOne(ctx, bson.D{{Key: "_id", Value: tweet.ParentID}}).Err()
		if err != nil {
			if errors.Is(err, mongodriver.ErrNoDocuments) {
				return nil, fmt.Errorf("%s: parent: %w", op, storage.ErrNotFound)
			}

			return nil, fmt.Errorf("%s: find parent: %w", op, err)
		}
	}

	now := nowUTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	res, err := m.tweets.InsertOne(ctx, tweet)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	tweet.ID = res.InsertedID.(primitive.ObjectID)

	return &tweet, nil
}

// TweetByID возвращает твит по идентификатору.
func (m *Mongo) TweetByID(ctx context.Context, id string) (*models.Tweet, error) {
	const op = "storage/mongo/TweetByID"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var tweet models.Tweet
	if err := m.tweets.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&tweet); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &tweet, nil
}

// TweetsByOwner возвращает твиты пользователя, новые первыми.
func (m *Mongo) TweetsByOwner(ctx context.Context, ownerID string, p models.ListParams) ([]models.Tweet, error) {
	const op = "storage/mongo/TweetsByOwner"

	oid, err := parseID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p = m.clampParams(p)

	cur, err := m.tweets.Find(ctx,
		bson.D{{Key: "owner", Value: oid}},
		findOptions(p).SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	tweets := make([]models.Tweet, 0, p.Limit)
	if err := cur.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return tweets, nil
}
