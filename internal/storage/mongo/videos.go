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

// CreateVideo сохраняет запись о ролике.
// Счётчик просмотров всегда начинается с нуля независимо от входа.
func (m *Mongo) CreateVideo(ctx context.Context, video models.Video) (*models.Video, error) {
	const op = "storage/mongo/CreateVideo"

	if strings.TrimSpace(video.Title) == "" || video.OwnerID.IsZero() {
		return nil, fmt.Errorf("%s: %w: empty title or owner", op, storage.ErrInvalidArgument)
	}

	now := nowUTC()
	video.Views = 0
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := m.videos.InsertOne(ctx, video)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	video.ID = res.InsertedID.(primitive.ObjectID)

	return &video, nil
}

// VideoByID возвращает видео по идентификатору (включая неопубликованные).
func (m *Mongo) VideoByID(ctx context.Context, id string) (*models.Video, error) {
	const op = "storage/mongo/VideoByID"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var video models.Video
	if err := m.videos.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&video); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &video, nil
}

// VideoByIDIncViews атомарно инкрементирует счётчик просмотров и возвращает
// обновлённую запись. Конкурентные просмотры не теряются: каждый
// проходит через отдельный $inc.
func (m *Mongo) VideoByIDIncViews(ctx context.Context, id string) (*models.Video, error) {
	const op = "storage/mongo/VideoByIDIncViews"

	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var video models.Video
	err = m.videos.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &video, nil
}

// UpdateVideoDetails меняет whitelisted-поля видео (nil = не трогать).
func (m *Mongo) UpdateVideoDetails(ctx context.Context, id string, upd storage.VideoUpdate) (*models.Video, error) {
	const op = "storage/mongo/UpdateVideoDetails"

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
	if upd.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *upd.Thumbnail})
	}

	var video models.Video
	err = m.videos.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &video, nil
}

// SetPublished выставляет флаг публикации.
func (m *Mongo) SetPublished(ctx context.Context, id string, published bool) error {
	const op = "storage/mongo/SetPublished"

	oid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.videos.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_published", Value: published},
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

// VideosByOwner возвращает видео канала с сортировкой по views/duration/
// created_at (по умолчанию — новые первыми). При publishedOnly черновики
// исключаются из выдачи.
func (m *Mongo) VideosByOwner(ctx context.Context, ownerID string, publishedOnly bool, p models.VideoListParams) ([]models.Video, error) {
	const op = "storage/mongo/VideosByOwner"

	oid, err := parseID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.ListParams = m.clampParams(p.ListParams)

	filter := bson.D{{Key: "owner", Value: oid}}
	if publishedOnly {
		filter = append(filter, bson.E{Key: "is_published", Value: true})
	}

	sortKey := string(models.SortByCreatedAt)
	if models.ValidVideoSortField(p.SortBy) {
		sortKey = string(p.SortBy)
	}

	dir := -1
	if p.Ascending {
		dir = 1
	}

	cur, err := m.videos.Find(ctx,
		filter,
		findOptions(p.ListParams).SetSort(bson.D{{Key: sortKey, Value: dir}, {Key: "_id", Value: dir}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	videos := make([]models.Video, 0, p.Limit)
	if err := cur.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return videos, nil
}
