package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-video-hosting/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// ToggleSubscription атомарно переключает ребро «subscriber → channel».
// Та же дисциплина, что у ToggleLike: FindOneAndDelete для снятия,
// вставка под уникальным индексом пары для постановки. Самоподписку и
// существование канала проверяет вызывающий слой.
func (m *Mongo) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	const op = "storage/mongo/ToggleSubscription"

	sub, err := parseID(subscriberID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := parseID(channelID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	filter := bson.D{
		{Key: "subscriber", Value: sub},
		{Key: "channel", Value: ch},
	}

	err = m.subscriptions.FindOneAndDelete(ctx, filter).Err()
	switch {
	case err == nil:
		// Подписка существовала и снята.
		return false, nil
	case errors.Is(err, mongodriver.ErrNoDocuments):
		// Подписки не было — создаём ребро.
	default:
		return false, fmt.Errorf("%s: delete: %w", op, err)
	}

	now := nowUTC()
	edge := models.Subscription{
		Subscriber: sub,
		Channel:    ch,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := m.subscriptions.InsertOne(ctx, edge); err != nil {
		if isDuplicateKey(err) {
			return true, nil
		}

		return false, fmt.Errorf("%s: insert: %w", op, err)
	}

	return true, nil
}

// Subscribers возвращает рёбра, где пользователь выступает каналом.
func (m *Mongo) Subscribers(ctx context.Context, channelID string, p models.ListParams) ([]models.Subscription, error) {
	const op = "storage/mongo/Subscribers"

	ch, err := parseID(channelID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m.subscriptionEdges(ctx, op, bson.D{{Key: "channel", Value: ch}}, p)
}

// SubscribedChannels возвращает рёбра, где пользователь выступает подписчиком.
func (m *Mongo) SubscribedChannels(ctx context.Context, subscriberID string, p models.ListParams) ([]models.Subscription, error) {
	const op = "storage/mongo/SubscribedChannels"

	sub, err := parseID(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m.subscriptionEdges(ctx, op, bson.D{{Key: "subscriber", Value: sub}}, p)
}

func (m *Mongo) subscriptionEdges(ctx context.Context, op string, filter bson.D, p models.ListParams) ([]models.Subscription, error) {
	p = m.clampParams(p)

	cur, err := m.subscriptions.Find(ctx, filter,
		findOptions(p).SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	edges := make([]models.Subscription, 0, p.Limit)
	if err := cur.All(ctx, &edges); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return edges, nil
}
