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

// CreatePlaylist сохраняет плейлист.
func (m *Mongo) CreatePlaylist(ctx context.Context, playlist models.Playlist) (*models.Playlist, error) {
	const op = "storage/mongo/CreatePlaylist"

	if strings.TrimSpace(playlist.Title) == "" || playlist.OwnerID.IsZero() {
		return nil, fmt.Errorf("%s: %w: empty title or owner", op, storage.ErrInvalidArgument)
	}

	now := nowUTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	res, err := m.playlists.InsertOne(ctx, playlist)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	playlist.ID = res.InsertedID.(primitive.ObjectID)

	return &playlist, nil
}

// PlaylistByID возвращает «сырой» плейлист без джойна видео.
func (m *Mongo) PlaylistByID(ctx context.Context, id string) (*models.Playlist, error) {
	const op = "storage/mongo/PlaylistByID"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var playlist models.Playlist
	if err := m.playlists.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&playlist); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &playlist, nil
}

// AddVideoToPlaylist дописывает ссылку на видео в конец списка.
// $push без дедупликации: одно видео может входить в плейлист многократно.
// Существование видео проверяется перед записью.
func (m *Mongo) AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) (*models.Playlist, error) {
	const op = "storage/mongo/AddVideoToPlaylist"

	pid, err := parseID(playlistID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vid, err := parseID(videoID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := m.videos.FindOne(ctx, bson.D{{Key: "_id", Value: vid}}).Err(); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: video: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find video: %w", op, err)
	}

	var playlist models.Playlist
	err = m.playlists.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: pid}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "videos", Value: vid}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: nowUTC()}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &playlist, nil
}

// RemoveVideoFromPlaylist убирает все вхождения ссылки из списка ($pull).
// Отсутствие ссылки в списке не ошибка.
func (m *Mongo) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) (*models.Playlist, error) {
	const op = "storage/mongo/RemoveVideoFromPlaylist"

	pid, err := parseID(playlistID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vid, err := parseID(videoID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var playlist models.Playlist
	err = m.playlists.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: pid}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "videos", Value: vid}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: nowUTC()}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &playlist, nil
}

// UpdatePlaylistDetails меняет whitelisted-поля плейлиста (nil = не трогать).
func (m *Mongo) UpdatePlaylistDetails(ctx context.Context, id string, upd storage.PlaylistUpdate) (*models.Playlist, error) {
	const op = "storage/mongo/UpdatePlaylistDetails"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set := bson.D{{Key: "updated_at", Value: nowUTC()}}
	if upd.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *upd.Title})
	}
	if upd.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *upd.Description})
	}

	var playlist models.Playlist
	err = m.playlists.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &playlist, nil
}

// DeletePlaylist удаляет плейлист. Видео не трогаются: плейлист хранит
// только ссылки. Удаление отсутствующего плейлиста — ErrNotFound.
func (m *Mongo) DeletePlaylist(ctx context.Context, id string) error {
	const op = "storage/mongo/DeletePlaylist"

	oid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.playlists.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: delete: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// PlaylistsByOwner возвращает плейлисты пользователя, новые первыми.
func (m *Mongo) PlaylistsByOwner(ctx context.Context, ownerID string) ([]models.Playlist, error) {
	const op = "storage/mongo/PlaylistsByOwner"

	oid, err := parseID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cur, err := m.playlists.Find(ctx,
		bson.D{{Key: "owner", Value: oid}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	playlists := make([]models.Playlist, 0)
	if err := cur.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return playlists, nil
}
