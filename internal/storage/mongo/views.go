package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Агрегационные read-модели. Денормализация выполняется на время запроса:
// владелец подклеивается $lookup+$first, счётчики — $size, страницы —
// $skip/$limit поверх детерминированной сортировки.

// ownerLookupStages — стандартная пара стадий «подклеить владельца»:
// $lookup по полю owner в users с проекцией короткого профиля и
// $addFields-$first, превращающий массив из одного элемента в документ.
func ownerLookupStages(localField, asField string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: asField},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "full_name", Value: 1},
					{Key: "avatar", Value: 1},
				}}},
			}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: asField, Value: bson.D{{Key: "$first", Value: "$" + asField}}},
		}}},
	}
}

// aggregate выполняет конвейер и декодирует результат в out.
func aggregate(ctx context.Context, coll *mongodriver.Collection, pipeline []bson.D, out any) error {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// ListVideos — листинг/поиск по каталогу: только опубликованные видео,
// регистронезависимый подстрочный матч по title/description, явный ключ
// сортировки (views/duration/created_at) с тай-брейком по _id.
func (m *Mongo) ListVideos(ctx context.Context, p models.VideoListParams) ([]models.VideoView, error) {
	const op = "storage/mongo/ListVideos"

	p.ListParams = m.clampParams(p.ListParams)

	match := bson.D{{Key: "is_published", Value: true}}
	if q := strings.TrimSpace(p.Query); q != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		match = append(match, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "description", Value: re}},
		}})
	}

	sortKey := string(models.SortByCreatedAt)
	if models.ValidVideoSortField(p.SortBy) {
		sortKey = string(p.SortBy)
	}

	dir := -1
	if p.Ascending {
		dir = 1
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: sortKey, Value: dir}, {Key: "_id", Value: dir}}}},
	}
	pipeline = append(pipeline, pagingStages(p.ListParams)...)
	pipeline = append(pipeline, ownerLookupStages("owner", "owner")...)

	views := make([]models.VideoView, 0, p.Limit)
	if err := aggregate(ctx, m.videos, pipeline, &views); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

// videoViewsByIDs возвращает карточки видео с владельцами по списку
// идентификаторов, в порядке ids; отсутствующие (удалённые) пропускаются,
// дубликаты сохраняются.
func (m *Mongo) videoViewsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.VideoView, error) {
	if len(ids) == 0 {
		return []models.VideoView{}, nil
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}}},
	}
	pipeline = append(pipeline, ownerLookupStages("owner", "owner")...)

	var found []models.VideoView
	if err := aggregate(ctx, m.videos, pipeline, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.VideoView, len(found))
	for _, v := range found {
		byID[v.ID] = v
	}

	ordered := make([]models.VideoView, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}

	return ordered, nil
}

// WatchHistory возвращает историю просмотров пользователя в порядке
// первых просмотров; удалённые видео из выдачи выпадают.
func (m *Mongo) WatchHistory(ctx context.Context, userID string) ([]models.VideoView, error) {
	const op = "storage/mongo/WatchHistory"

	user, err := m.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views, err := m.videoViewsByIDs(ctx, user.WatchHistory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

// ChannelProfile собирает профиль канала по username: счётчики подписок
// через $lookup+$size и флаг is_subscribed через $in по рёбрам подписчиков.
// Пустой или некорректный viewerID трактуется как анонимный зритель:
// is_subscribed=false, ошибки нет.
func (m *Mongo) ChannelProfile(ctx context.Context, username, viewerID string) (*models.ChannelProfile, error) {
	const op = "storage/mongo/ChannelProfile"

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%s: %w: empty username", op, storage.ErrInvalidArgument)
	}

	viewer := primitive.NilObjectID
	if strings.TrimSpace(viewerID) != "" {
		viewer, _ = primitive.ObjectIDFromHex(viewerID)
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: subscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: subscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribed"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribers_count", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "subscribed_count", Value: bson.D{{Key: "$size", Value: "$subscribed"}}},
			{Key: "is_subscribed", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$subscribers.subscriber"}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "email", Value: 1},
			{Key: "full_name", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "cover_image", Value: 1},
			{Key: "subscribers_count", Value: 1},
			{Key: "subscribed_count", Value: 1},
			{Key: "is_subscribed", Value: 1},
		}}},
	}

	var profiles []models.ChannelProfile
	if err := aggregate(ctx, m.users, pipeline, &profiles); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &profiles[0], nil
}

// ChannelStats — сводка для дашборда владельца. Лайки считаются через
// владельца целевых документов: сперва собираются идентификаторы
// видео/твитов канала, затем считаются лайки по $in.
func (m *Mongo) ChannelStats(ctx context.Context, userID string) (*models.ChannelStats, error) {
	const op = "storage/mongo/ChannelStats"

	oid, err := parseID(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var owner models.Owner
	err = m.users.FindOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		options.FindOne().SetProjection(bson.D{
			{Key: "username", Value: 1},
			{Key: "full_name", Value: 1},
			{Key: "avatar", Value: 1},
		}),
	).Decode(&owner)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find owner: %w", op, err)
	}

	stats := models.ChannelStats{Owner: owner}

	ownerFilter := bson.D{{Key: "owner", Value: oid}}

	if stats.TotalVideos, err = m.videos.CountDocuments(ctx, ownerFilter); err != nil {
		return nil, fmt.Errorf("%s: count videos: %w", op, err)
	}

	if stats.TotalTweets, err = m.tweets.CountDocuments(ctx, ownerFilter); err != nil {
		return nil, fmt.Errorf("%s: count tweets: %w", op, err)
	}

	if stats.TotalSubscribers, err = m.subscriptions.CountDocuments(ctx, bson.D{{Key: "channel", Value: oid}}); err != nil {
		return nil, fmt.Errorf("%s: count subscribers: %w", op, err)
	}

	if stats.TotalSubscriptions, err = m.subscriptions.CountDocuments(ctx, bson.D{{Key: "subscriber", Value: oid}}); err != nil {
		return nil, fmt.Errorf("%s: count subscriptions: %w", op, err)
	}

	videoIDs, err := ownedIDs(ctx, m.videos, oid)
	if err != nil {
		return nil, fmt.Errorf("%s: video ids: %w", op, err)
	}

	tweetIDs, err := ownedIDs(ctx, m.tweets, oid)
	if err != nil {
		return nil, fmt.Errorf("%s: tweet ids: %w", op, err)
	}

	if len(videoIDs) > 0 {
		if stats.TotalVideoLikes, err = m.likes.CountDocuments(ctx,
			bson.D{{Key: "video", Value: bson.D{{Key: "$in", Value: videoIDs}}}},
		); err != nil {
			return nil, fmt.Errorf("%s: count video likes: %w", op, err)
		}
	}

	if len(tweetIDs) > 0 {
		if stats.TotalTweetLikes, err = m.likes.CountDocuments(ctx,
			bson.D{{Key: "tweet", Value: bson.D{{Key: "$in", Value: tweetIDs}}}},
		); err != nil {
			return nil, fmt.Errorf("%s: count tweet likes: %w", op, err)
		}
	}

	// Суммарные просмотры — только по опубликованным видео.
	var sums []struct {
		Total int64 `bson:"total"`
	}
	err = aggregate(ctx, m.videos, []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: oid}, {Key: "is_published", Value: true}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}, &sums)
	if err != nil {
		return nil, fmt.Errorf("%s: sum views: %w", op, err)
	}

	if len(sums) > 0 {
		stats.TotalViews = sums[0].Total
	}

	return &stats, nil
}

// ownedIDs возвращает _id всех документов коллекции с заданным владельцем.
func ownedIDs(ctx context.Context, coll *mongodriver.Collection, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	cur, err := coll.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	return ids, nil
}

// CommentsFor — страница комментариев, целью которых является заданный
// объект: прямые комментарии видео либо ответы на комментарий.
// Один идентификатор не может быть и видео, и комментарием, поэтому
// $or по обоим полям безопасен.
func (m *Mongo) CommentsFor(ctx context.Context, targetID string, p models.ListParams) ([]models.CommentView, error) {
	const op = "storage/mongo/CommentsFor"

	oid, err := parseID(targetID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p = m.clampParams(p)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "video", Value: oid}},
			bson.D{{Key: "parent_comment", Value: oid}},
		}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	pipeline = append(pipeline, pagingStages(p)...)
	pipeline = append(pipeline, ownerLookupStages("owner", "owner")...)

	views := make([]models.CommentView, 0, p.Limit)
	if err := aggregate(ctx, m.comments, pipeline, &views); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

// TweetReplies — страница ответов на твит с подклеенными владельцами.
func (m *Mongo) TweetReplies(ctx context.Context, tweetID string, p models.ListParams) ([]models.TweetView, error) {
	const op = "storage/mongo/TweetReplies"

	oid, err := parseID(tweetID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p = m.clampParams(p)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "parent_tweet", Value: oid}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	pipeline = append(pipeline, pagingStages(p)...)
	pipeline = append(pipeline, ownerLookupStages("owner", "owner")...)

	views := make([]models.TweetView, 0, p.Limit)
	if err := aggregate(ctx, m.tweets, pipeline, &views); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

// likedPipeline — общий конвейер выдач «что лайкнул пользователь»:
// лайки пользователя на цели нужного вида, свежие первыми, страница,
// $lookup цели с $unwind (лайки на удалённые цели выпадают из выдачи),
// затем владелец цели.
func likedPipeline(user primitive.ObjectID, field, fromColl string, p models.ListParams) []bson.D {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{
			{Key: "liked_by", Value: user},
			{Key: field, Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	pipeline = append(pipeline, pagingStages(p)...)
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: fromColl},
			{Key: "localField", Value: field},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: field},
		}}},
		bson.D{{Key: "$unwind", Value: "$" + field}},
	)
	pipeline = append(pipeline, ownerLookupStages(field+".owner", field+".owner")...)

	return pipeline
}

// LikedVideos — страница лайкнутых пользователем видео.
func (m *Mongo) LikedVideos(ctx context.Context, userID string, p models.ListParams) ([]models.LikedVideo, error) {
	const op = "storage/mongo/LikedVideos"

	user, err := parseID(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p = m.clampParams(p)

	out := make([]models.LikedVideo, 0, p.Limit)
	if err := aggregate(ctx, m.likes, likedPipeline(user, "video", videosCollection, p), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// LikedComments — страница лайкнутых пользователем комментариев.
func (m *Mongo) LikedComments(ctx context.Context, userID string, p models.ListParams) ([]models.LikedComment, error) {
	const op = "storage/mongo/LikedComments"

	user, err := parseID(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p = m.clampParams(p)

	out := make([]models.LikedComment, 0, p.Limit)
	if err := aggregate(ctx, m.likes, likedPipeline(user, "comment", commentsCollection, p), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// LikedTweets — страница лайкнутых пользователем твитов.
func (m *Mongo) LikedTweets(ctx context.Context, userID string, p models.ListParams) ([]models.LikedTweet, error) {
	const op = "storage/mongo/LikedTweets"

	user, err := parseID(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p = m.clampParams(p)

	out := make([]models.LikedTweet, 0, p.Limit)
	if err := aggregate(ctx, m.likes, likedPipeline(user, "tweet", tweetsCollection, p), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// PlaylistView — плейлист с подклеенными карточками видео.
// Страница накладывается на упорядоченный список ссылок плейлиста
// (порядок и дубликаты сохраняются), удалённые видео выпадают.
func (m *Mongo) PlaylistView(ctx context.Context, id string, p models.ListParams) (*models.PlaylistView, error) {
	const op = "storage/mongo/PlaylistView"

	playlist, err := m.PlaylistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p = m.clampParams(p)

	start := int(p.Page-1) * int(p.Limit)
	end := start + int(p.Limit)
	if start > len(playlist.Videos) {
		start = len(playlist.Videos)
	}
	if end > len(playlist.Videos) {
		end = len(playlist.Videos)
	}

	videos, err := m.videoViewsByIDs(ctx, playlist.Videos[start:end])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PlaylistView{
		ID:          playlist.ID,
		Title:       playlist.Title,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
		Videos:      videos,
		CreatedAt:   playlist.CreatedAt,
	}, nil
}
