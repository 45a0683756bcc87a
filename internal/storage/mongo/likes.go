package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// likeTargetField переводит kind цели в имя поля документа likes.
func likeTargetField(kind models.TargetKind) (string, bool) {
	switch kind {
	case models.TargetVideo:
		return "video", true
	case models.TargetComment:
		return "comment", true
	case models.TargetTweet:
		return "tweet", true
	}

	return "", false
}

// ToggleLike атомарно переключает лайк пользователя на цели.
// Снятие — FindOneAndDelete: при гонке двух toggle документ достаётся
// ровно одному, второй уходит в ветку вставки. Дубликат на вставке
// (конкурент успел поставить лайк первым) не ошибка: состояние «лайк
// стоит» уже достигнуто. Существование цели проверяет вызывающий слой.
func (m *Mongo) ToggleLike(ctx context.Context, actorID string, target models.LikeTarget) (bool, error) {
	const op = "storage/mongo/ToggleLike"

	if !target.Valid() {
		return false, fmt.Errorf("%s: %w", op, storage.ErrInvalidAssociation)
	}

	actor, err := parseID(actorID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	targetOID, err := parseID(target.ID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	field, ok := likeTargetField(target.Kind)
	if !ok {
		return false, fmt.Errorf("%s: %w", op, storage.ErrInvalidAssociation)
	}

	filter := bson.D{
		{Key: "liked_by", Value: actor},
		{Key: field, Value: targetOID},
	}

	err = m.likes.FindOneAndDelete(ctx, filter).Err()
	switch {
	case err == nil:
		// Лайк существовал и снят.
		return false, nil
	case errors.Is(err, mongodriver.ErrNoDocuments):
		// Лайка не было — ставим.
	default:
		return false, fmt.Errorf("%s: delete: %w", op, err)
	}

	now := nowUTC()
	like := models.Like{
		LikedBy:   actor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch target.Kind {
	case models.TargetVideo:
		like.VideoID = targetOID
	case models.TargetComment:
		like.CommentID = targetOID
	case models.TargetTweet:
		like.TweetID = targetOID
	}

	if _, err := m.likes.InsertOne(ctx, like); err != nil {
		if isDuplicateKey(err) {
			return true, nil
		}

		return false, fmt.Errorf("%s: insert: %w", op, err)
	}

	return true, nil
}
