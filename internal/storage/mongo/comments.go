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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateComment сохраняет комментарий к видео или ответ на комментарий.
// Инвариант «ровно одна цель» проверяется здесь повторно: слой storage —
// последний рубеж перед вставкой, сервисная проверка могла устареть.
// Цель обязана существовать на момент вставки.
func (m *Mongo) CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/CreateComment"

	if strings.TrimSpace(comment.Content) == "" || comment.OwnerID.IsZero() {
		return nil, fmt.Errorf("%s: %w: empty content or owner", op, storage.ErrInvalidArgument)
	}

	hasVideo := !comment.VideoID.IsZero()
	hasParent := !comment.ParentID.IsZero()
	if hasVideo == hasParent {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidAssociation)
	}

	if hasVideo {
		if err := m.videos.FindOne(ctx, bson.D{{Key: "_id", Value: comment.VideoID}}).Err(); err != nil {
			if errors.Is(err, mongodriver.ErrNoDocuments) {
				return nil, fmt.Errorf("%s: video: %w", op, storage.ErrNotFound)
			}

			return nil, fmt.Errorf("%s: find video: %w", op, err)
		}
	} else {
		if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: comment.ParentID}}).Err(); err != nil {
			if errors.Is(err, mongodriver.ErrNoDocuments) {
				return nil, fmt.Errorf("%s: parent: %w", op, storage.ErrNotFound)
			}

			return nil, fmt.Errorf("%s: find parent: %w", op, err)
		}
	}

	now := nowUTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := m.comments.InsertOne(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	comment.ID = res.InsertedID.(primitive.ObjectID)

	return &comment, nil
}

// CommentByID возвращает комментарий по идентификатору.
func (m *Mongo) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage/mongo/CommentByID"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var comment models.Comment
	if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&comment); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &comment, nil
}

// UpdateCommentContent заменяет текст комментария.
func (m *Mongo) UpdateCommentContent(ctx context.Context, id, content string) (*models.Comment, error) {
	const op = "storage/mongo/UpdateCommentContent"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%s: %w: empty content", op, storage.ErrInvalidArgument)
	}

	var comment models.Comment
	err = m.comments.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updated_at", Value: nowUTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &comment, nil
}
