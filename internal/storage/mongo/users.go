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

// CreateUser создаёт пользователя.
// Username/Email нормализуются (trim + нижний регистр); уникальность
// обеспечивают индексы коллекции — нарушение транслируется в ErrConflict.
func (m *Mongo) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage/mongo/CreateUser"

	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.Username == "" || user.Email == "" {
		return nil, fmt.Errorf("%s: %w: empty username or email", op, storage.ErrInvalidArgument)
	}

	now := nowUTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := m.users.InsertOne(ctx, user)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)

	return &user, nil
}

// UserByID возвращает пользователя по идентификатору.
func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage/mongo/UserByID"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var user models.User
	if err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&user); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &user, nil
}

// UpdateAccount обновляет full_name/email; пустое значение поля означает
// «не трогать». Email нормализуется, конфликт уникальности — ErrConflict.
func (m *Mongo) UpdateAccount(ctx context.Context, id, fullName, email string) (*models.User, error) {
	const op = "storage/mongo/UpdateAccount"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set := bson.D{{Key: "updated_at", Value: nowUTC()}}
	if v := strings.TrimSpace(fullName); v != "" {
		set = append(set, bson.E{Key: "full_name", Value: v})
	}
	if v := strings.ToLower(strings.TrimSpace(email)); v != "" {
		set = append(set, bson.E{Key: "email", Value: v})
	}

	var user models.User
	err = m.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &user, nil
}

// setUserField — общий путь SetAvatar/SetCoverImage: подмена одного URL-поля
// с возвратом обновлённого документа.
func (m *Mongo) setUserField(ctx context.Context, op, id, field, value string) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var user models.User
	err = m.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: field, Value: value},
			{Key: "updated_at", Value: nowUTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &user, nil
}

// SetAvatar заменяет URL аватара.
func (m *Mongo) SetAvatar(ctx context.Context, id, url string) (*models.User, error) {
	return m.setUserField(ctx, "storage/mongo/SetAvatar", id, "avatar", url)
}

// SetCoverImage заменяет URL обложки канала.
func (m *Mongo) SetCoverImage(ctx context.Context, id, url string) (*models.User, error) {
	return m.setUserField(ctx, "storage/mongo/SetCoverImage", id, "cover_image", url)
}

// SetPasswordHash заменяет хеш пароля.
func (m *Mongo) SetPasswordHash(ctx context.Context, id, hash string) error {
	const op = "storage/mongo/SetPasswordHash"

	oid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if hash == "" {
		return fmt.Errorf("%s: %w: empty hash", op, storage.ErrInvalidArgument)
	}

	res, err := m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "password_hash", Value: hash},
			{Key: "updated_at", Value: nowUTC()},
		}}},
	)
	if err != nil {
		return fmt.Errorf("%s: update: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetRefreshToken сохраняет refresh-токен; пустая строка снимает его ($unset).
func (m *Mongo) SetRefreshToken(ctx context.Context, id, token string) error {
	const op = "storage/mongo/SetRefreshToken"

	oid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "refresh_token", Value: token},
		{Key: "updated_at", Value: nowUTC()},
	}}}
	if token == "" {
		update = bson.D{
			{Key: "$unset", Value: bson.D{{Key: "refresh_token", Value: ""}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: nowUTC()}}},
		}
	}

	res, err := m.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("%s: update: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// AddToWatchHistory дописывает видео в историю просмотров.
// $addToSet: повторный просмотр не дублирует и не переставляет запись.
func (m *Mongo) AddToWatchHistory(ctx context.Context, userID, videoID string) error {
	const op = "storage/mongo/AddToWatchHistory"

	uid, err := parseID(userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	vid, err := parseID(videoID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: uid}},
		bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "watch_history", Value: vid}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: nowUTC()}}},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: update: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
