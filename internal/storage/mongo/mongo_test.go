package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-video-hosting/internal/config"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/stretchr/testify/require"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Адрес контейнера прокидывается в ENV DATABASE_URL, а каждый тест
// создаёт свою БД с уникальным именем (см. newTestConfig).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	_ = os.Setenv("DATABASE_URL", uri)

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

func skipIfNoIntegration(t *testing.T) {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests disabled; set GO_TEST_INTEGRATION=1")
	}
}

// newTestConfig создаёт конфиг с отдельной тестовой БД.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	baseURL := os.Getenv("DATABASE_URL")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	dbName := "videohosting_test_" + uuid.New().String()
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL + dbName
	} else {
		baseURL = baseURL + "/" + dbName
	}

	return &config.Config{
		DB: config.DBConfig{
			URL: baseURL,
		},
		Limits: config.LimitsConfig{
			Default: 2,
			Max:     100,
		},
	}
}

// mustNewMongo создаёт подключение к тестовой БД и регистрирует очистку.
func mustNewMongo(t *testing.T, cfg *config.Config) *Mongo {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("cannot connect to MongoDB in container: %v (DATABASE_URL=%s)", err, cfg.DB.URL)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testCtx(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)

	return ctx
}

// seedUser создаёт пользователя с уникальным username/email.
func seedUser(t *testing.T, ctx context.Context, m *Mongo) *models.User {
	t.Helper()

	suffix := uuid.New().String()[:8]
	user, err := m.CreateUser(ctx, models.User{
		Username:     "user_" + suffix,
		Email:        "user_" + suffix + "@example.com",
		FullName:     "Test User " + suffix,
		PasswordHash: "opaque-hash",
	})
	require.NoError(t, err)

	return user
}

// seedVideo создаёт опубликованное видео владельца.
func seedVideo(t *testing.T, ctx context.Context, m *Mongo, owner primitive.ObjectID, title string) *models.Video {
	t.Helper()

	video, err := m.CreateVideo(ctx, models.Video{
		VideoFile:   "https://cdn.example.com/" + uuid.New().String() + ".mp4",
		Thumbnail:   "https://cdn.example.com/" + uuid.New().String() + ".png",
		Title:       title,
		Description: "description of " + title,
		Duration:    42.5,
		IsPublished: true,
		OwnerID:     owner,
	})
	require.NoError(t, err)

	return video
}

func TestCreateUser_NormalizesAndConflicts(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	created, err := m.CreateUser(ctx, models.User{
		Username:     "  MixedCase  ",
		Email:        "Mixed@Example.COM",
		FullName:     "Mixed Case",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.Equal(t, "mixedcase", created.Username)
	require.Equal(t, "mixed@example.com", created.Email)
	require.False(t, created.ID.IsZero())

	// Повтор username в другом регистре — конфликт уникальности.
	_, err = m.CreateUser(ctx, models.User{
		Username:     "MIXEDCASE",
		Email:        "other@example.com",
		PasswordHash: "hash",
	})
	require.ErrorIs(t, err, storage.ErrConflict)
}

func TestUserByID_NotFoundOnBadID(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	_, err := m.UserByID(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = m.UserByID(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestVideoByIDIncViews_Increments(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	owner := seedUser(t, ctx, m)
	video := seedVideo(t, ctx, m, owner.ID, "views test")

	for i := int64(1); i <= 3; i++ {
		got, err := m.VideoByIDIncViews(ctx, video.ID.Hex())
		require.NoError(t, err)
		require.Equal(t, i, got.Views)
	}

	// Обычное чтение счётчик не трогает.
	got, err := m.VideoByID(ctx, video.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, int64(3), got.Views)
}

func TestAddToWatchHistory_AddToSetSemantics(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)
	first := seedVideo(t, ctx, m, user.ID, "first")
	second := seedVideo(t, ctx, m, user.ID, "second")

	require.NoError(t, m.AddToWatchHistory(ctx, user.ID.Hex(), first.ID.Hex()))
	require.NoError(t, m.AddToWatchHistory(ctx, user.ID.Hex(), second.ID.Hex()))
	// Повторный просмотр не дублирует и не переставляет запись.
	require.NoError(t, m.AddToWatchHistory(ctx, user.ID.Hex(), first.ID.Hex()))

	history, err := m.WatchHistory(ctx, user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, first.ID, history[0].ID)
	require.Equal(t, second.ID, history[1].ID)
	require.Equal(t, user.Username, history[0].Owner.Username)
}

func TestCreateComment_ExactlyOneTarget(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)
	video := seedVideo(t, ctx, m, user.ID, "commented")

	// Ни одной цели.
	_, err := m.CreateComment(ctx, models.Comment{
		Content: "no target",
		OwnerID: user.ID,
	})
	require.ErrorIs(t, err, storage.ErrInvalidAssociation)

	// Корректный комментарий к видео.
	root, err := m.CreateComment(ctx, models.Comment{
		Content: "root",
		VideoID: video.ID,
		OwnerID: user.ID,
	})
	require.NoError(t, err)

	// Обе цели сразу.
	_, err = m.CreateComment(ctx, models.Comment{
		Content:  "both targets",
		VideoID:  video.ID,
		ParentID: root.ID,
		OwnerID:  user.ID,
	})
	require.ErrorIs(t, err, storage.ErrInvalidAssociation)

	// Несуществующий родитель.
	_, err = m.CreateComment(ctx, models.Comment{
		Content:  "orphan reply",
		ParentID: primitive.NewObjectID(),
		OwnerID:  user.ID,
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// seedCommentTree строит дерево: root -> reply -> deep, всё с лайками.
func seedCommentTree(t *testing.T, ctx context.Context, m *Mongo, user *models.User, video *models.Video) (root, reply, deep *models.Comment) {
	t.Helper()

	var err error
	root, err = m.CreateComment(ctx, models.Comment{Content: "root", VideoID: video.ID, OwnerID: user.ID})
	require.NoError(t, err)

	reply, err = m.CreateComment(ctx, models.Comment{Content: "reply", ParentID: root.ID, OwnerID: user.ID})
	require.NoError(t, err)

	deep, err = m.CreateComment(ctx, models.Comment{Content: "deep", ParentID: reply.ID, OwnerID: user.ID})
	require.NoError(t, err)

	for _, c := range []*models.Comment{root, reply, deep} {
		liked, err := m.ToggleLike(ctx, user.ID.Hex(), models.LikeTarget{Kind: models.TargetComment, ID: c.ID.Hex()})
		require.NoError(t, err)
		require.True(t, liked)
	}

	return root, reply, deep
}

func TestDeleteComment_CascadesSubtreeAndLikes(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)
	video := seedVideo(t, ctx, m, user.ID, "cascade")
	root, reply, deep := seedCommentTree(t, ctx, m, user, video)

	// Соседний комментарий того же видео каскад задевать не должен.
	sibling, err := m.CreateComment(ctx, models.Comment{Content: "sibling", VideoID: video.ID, OwnerID: user.ID})
	require.NoError(t, err)

	require.NoError(t, m.DeleteComment(ctx, root.ID.Hex()))

	for _, id := range []primitive.ObjectID{root.ID, reply.ID, deep.ID} {
		_, err := m.CommentByID(ctx, id.Hex())
		require.ErrorIs(t, err, storage.ErrNotFound)
	}

	_, err = m.CommentByID(ctx, sibling.ID.Hex())
	require.NoError(t, err)

	// Лайки удалённого поддерева исчезли.
	likes, err := m.likes.CountDocuments(ctx, bson.D{{Key: "comment", Value: bson.D{{Key: "$exists", Value: true}}}})
	require.NoError(t, err)
	require.Equal(t, int64(0), likes)

	// Повтор над отсутствующим корнем — no-op.
	require.NoError(t, m.DeleteComment(ctx, root.ID.Hex()))
	require.NoError(t, m.DeleteComment(ctx, "not-a-hex-id"))
}

func TestDeleteTweet_CascadesRepliesAndLikes(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)

	root, err := m.CreateTweet(ctx, models.Tweet{Content: "root", OwnerID: user.ID})
	require.NoError(t, err)

	reply, err := m.CreateTweet(ctx, models.Tweet{Content: "reply", ParentID: root.ID, OwnerID: user.ID})
	require.NoError(t, err)

	deep, err := m.CreateTweet(ctx, models.Tweet{Content: "deep", ParentID: reply.ID, OwnerID: user.ID})
	require.NoError(t, err)

	other, err := m.CreateTweet(ctx, models.Tweet{Content: "other root", OwnerID: user.ID})
	require.NoError(t, err)

	for _, tw := range []*models.Tweet{root, reply, deep} {
		liked, err := m.ToggleLike(ctx, user.ID.Hex(), models.LikeTarget{Kind: models.TargetTweet, ID: tw.ID.Hex()})
		require.NoError(t, err)
		require.True(t, liked)
	}

	require.NoError(t, m.DeleteTweet(ctx, root.ID.Hex()))

	for _, id := range []primitive.ObjectID{root.ID, reply.ID, deep.ID} {
		_, err := m.TweetByID(ctx, id.Hex())
		require.ErrorIs(t, err, storage.ErrNotFound)
	}

	_, err = m.TweetByID(ctx, other.ID.Hex())
	require.NoError(t, err)

	likes, err := m.likes.CountDocuments(ctx, bson.D{{Key: "tweet", Value: bson.D{{Key: "$exists", Value: true}}}})
	require.NoError(t, err)
	require.Equal(t, int64(0), likes)
}

func TestDeleteVideo_FullCascade(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)
	video := seedVideo(t, ctx, m, user.ID, "doomed")
	kept := seedVideo(t, ctx, m, user.ID, "kept")

	root, reply, deep := seedCommentTree(t, ctx, m, user, video)

	liked, err := m.ToggleLike(ctx, user.ID.Hex(), models.LikeTarget{Kind: models.TargetVideo, ID: video.ID.Hex()})
	require.NoError(t, err)
	require.True(t, liked)

	playlist, err := m.CreatePlaylist(ctx, models.Playlist{Title: "mixed", OwnerID: user.ID})
	require.NoError(t, err)

	_, err = m.AddVideoToPlaylist(ctx, playlist.ID.Hex(), video.ID.Hex())
	require.NoError(t, err)
	_, err = m.AddVideoToPlaylist(ctx, playlist.ID.Hex(), kept.ID.Hex())
	require.NoError(t, err)
	// Дубликат удаляемого видео: $pull обязан убрать все вхождения.
	_, err = m.AddVideoToPlaylist(ctx, playlist.ID.Hex(), video.ID.Hex())
	require.NoError(t, err)

	require.NoError(t, m.DeleteVideo(ctx, video.ID.Hex()))

	_, err = m.VideoByID(ctx, video.ID.Hex())
	require.ErrorIs(t, err, storage.ErrNotFound)

	for _, id := range []primitive.ObjectID{root.ID, reply.ID, deep.ID} {
		_, err := m.CommentByID(ctx, id.Hex())
		require.ErrorIs(t, err, storage.ErrNotFound)
	}

	likes, err := m.likes.CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	require.Equal(t, int64(0), likes)

	got, err := m.PlaylistByID(ctx, playlist.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{kept.ID}, got.Videos)

	// Соседнее видео не задето.
	_, err = m.VideoByID(ctx, kept.ID.Hex())
	require.NoError(t, err)

	// Идемпотентный повтор.
	require.NoError(t, m.DeleteVideo(ctx, video.ID.Hex()))
}

func TestToggleLike_FlipsState(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)
	video := seedVideo(t, ctx, m, user.ID, "toggled")

	target := models.LikeTarget{Kind: models.TargetVideo, ID: video.ID.Hex()}

	liked, err := m.ToggleLike(ctx, user.ID.Hex(), target)
	require.NoError(t, err)
	require.True(t, liked)

	liked, err = m.ToggleLike(ctx, user.ID.Hex(), target)
	require.NoError(t, err)
	require.False(t, liked)

	liked, err = m.ToggleLike(ctx, user.ID.Hex(), target)
	require.NoError(t, err)
	require.True(t, liked)

	count, err := m.likes.CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Некорректная цель.
	_, err = m.ToggleLike(ctx, user.ID.Hex(), models.LikeTarget{Kind: "news", ID: video.ID.Hex()})
	require.ErrorIs(t, err, storage.ErrInvalidAssociation)
}

func TestToggleSubscription_FlipsState(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	subscriber := seedUser(t, ctx, m)
	channel := seedUser(t, ctx, m)

	subscribed, err := m.ToggleSubscription(ctx, subscriber.ID.Hex(), channel.ID.Hex())
	require.NoError(t, err)
	require.True(t, subscribed)

	subs, err := m.Subscribers(ctx, channel.ID.Hex(), models.ListParams{})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, subscriber.ID, subs[0].Subscriber)

	channels, err := m.SubscribedChannels(ctx, subscriber.ID.Hex(), models.ListParams{})
	require.NoError(t, err)
	require.Len(t, channels, 1)
	require.Equal(t, channel.ID, channels[0].Channel)

	subscribed, err = m.ToggleSubscription(ctx, subscriber.ID.Hex(), channel.ID.Hex())
	require.NoError(t, err)
	require.False(t, subscribed)

	subs, err = m.Subscribers(ctx, channel.ID.Hex(), models.ListParams{})
	require.NoError(t, err)
	require.Empty(t, subs)
}

func TestListVideos_SearchSortPagination(t *testing.T) {
	skipIfNoIntegration(t)

	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)
	ctx := testCtx(t)

	owner := seedUser(t, ctx, m)

	golang := seedVideo(t, ctx, m, owner.ID, "Golang tutorial")
	cooking := seedVideo(t, ctx, m, owner.ID, "Cooking show")

	// Неопубликованное видео в листинг не попадает.
	draft := seedVideo(t, ctx, m, owner.ID, "Golang draft")
	require.NoError(t, m.SetPublished(ctx, draft.ID.Hex(), false))

	// Регистронезависимый подстрочный поиск.
	found, err := m.ListVideos(ctx, models.VideoListParams{Query: "gOlAnG"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, golang.ID, found[0].ID)
	require.Equal(t, owner.Username, found[0].Owner.Username)

	// Сортировка по просмотрам по убыванию.
	_, err = m.VideoByIDIncViews(ctx, cooking.ID.Hex())
	require.NoError(t, err)

	byViews, err := m.ListVideos(ctx, models.VideoListParams{SortBy: models.SortByViews})
	require.NoError(t, err)
	require.Len(t, byViews, 2)
	require.Equal(t, cooking.ID, byViews[0].ID)

	// Потолок страницы: запрошенный limit выше Max урезается.
	clamped, err := m.ListVideos(ctx, models.VideoListParams{
		ListParams: models.ListParams{Page: 1, Limit: cfg.Limits.Max + 50},
	})
	require.NoError(t, err)
	require.Len(t, clamped, 2)

	// Limit по умолчанию (2) и постраничная выборка.
	seedVideo(t, ctx, m, owner.ID, "Third video")

	page1, err := m.ListVideos(ctx, models.VideoListParams{})
	require.NoError(t, err)
	require.Len(t, page1, int(cfg.Limits.Default))

	page2, err := m.ListVideos(ctx, models.VideoListParams{ListParams: models.ListParams{Page: 2}})
	require.NoError(t, err)
	require.Len(t, page2, 1)

	// Страница за пределами выборки — пустой результат, не ошибка.
	beyond, err := m.ListVideos(ctx, models.VideoListParams{ListParams: models.ListParams{Page: 3}})
	require.NoError(t, err)
	require.Empty(t, beyond)
}

func TestVideosByOwner_PublishedFilterAndSort(t *testing.T) {
	skipIfNoIntegration(t)

	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)
	ctx := testCtx(t)

	owner := seedUser(t, ctx, m)

	older := seedVideo(t, ctx, m, owner.ID, "older")
	newer := seedVideo(t, ctx, m, owner.ID, "newer")

	draft := seedVideo(t, ctx, m, owner.ID, "draft")
	require.NoError(t, m.SetPublished(ctx, draft.ID.Hex(), false))

	// publishedOnly: черновик не попадает в выдачу.
	public, err := m.VideosByOwner(ctx, owner.ID.Hex(), true, models.VideoListParams{})
	require.NoError(t, err)
	require.Len(t, public, 2)
	for _, v := range public {
		require.True(t, v.IsPublished)
	}

	// Владельческая выдача включает черновик, новые первыми.
	all, err := m.VideosByOwner(ctx, owner.ID.Hex(), false, models.VideoListParams{
		ListParams: models.ListParams{Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, draft.ID, all[0].ID)

	// Сортировка по просмотрам по возрастанию.
	_, err = m.VideoByIDIncViews(ctx, older.ID.Hex())
	require.NoError(t, err)

	byViews, err := m.VideosByOwner(ctx, owner.ID.Hex(), true, models.VideoListParams{
		SortBy:    models.SortByViews,
		Ascending: true,
	})
	require.NoError(t, err)
	require.Len(t, byViews, 2)
	require.Equal(t, newer.ID, byViews[0].ID)
	require.Equal(t, older.ID, byViews[1].ID)
}

func TestCommentsFor_PagesAndJoinsOwner(t *testing.T) {
	skipIfNoIntegration(t)

	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)
	video := seedVideo(t, ctx, m, user.ID, "discussed")

	for i := 0; i < 3; i++ {
		_, err := m.CreateComment(ctx, models.Comment{
			Content: fmt.Sprintf("comment %d", i),
			VideoID: video.ID,
			OwnerID: user.ID,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	page1, err := m.CommentsFor(ctx, video.ID.Hex(), models.ListParams{})
	require.NoError(t, err)
	require.Len(t, page1, int(cfg.Limits.Default))
	require.Equal(t, "comment 2", page1[0].Content)
	require.Equal(t, user.Username, page1[0].Owner.Username)

	page2, err := m.CommentsFor(ctx, video.ID.Hex(), models.ListParams{Page: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	require.Equal(t, "comment 0", page2[0].Content)

	// Страница за пределами выборки — пустой результат, не ошибка.
	beyond, err := m.CommentsFor(ctx, video.ID.Hex(), models.ListParams{Page: 3})
	require.NoError(t, err)
	require.Empty(t, beyond)
}

func TestLikedVideos_DropsDeletedTargets(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)
	alive := seedVideo(t, ctx, m, user.ID, "alive")
	doomed := seedVideo(t, ctx, m, user.ID, "doomed")

	for _, v := range []*models.Video{alive, doomed} {
		liked, err := m.ToggleLike(ctx, user.ID.Hex(), models.LikeTarget{Kind: models.TargetVideo, ID: v.ID.Hex()})
		require.NoError(t, err)
		require.True(t, liked)
	}

	// Удаляем цель в обход каскада: осиротевший лайк не должен попасть в выдачу.
	_, err := m.videos.DeleteOne(ctx, bson.D{{Key: "_id", Value: doomed.ID}})
	require.NoError(t, err)

	likedVideos, err := m.LikedVideos(ctx, user.ID.Hex(), models.ListParams{})
	require.NoError(t, err)
	require.Len(t, likedVideos, 1)
	require.Equal(t, alive.ID, likedVideos[0].Video.ID)
	require.Equal(t, user.Username, likedVideos[0].Video.Owner.Username)
}

func TestChannelProfile_CountsAndIsSubscribed(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	channel := seedUser(t, ctx, m)
	fan := seedUser(t, ctx, m)

	subscribed, err := m.ToggleSubscription(ctx, fan.ID.Hex(), channel.ID.Hex())
	require.NoError(t, err)
	require.True(t, subscribed)

	// Канал сам на кого-то подписан.
	other := seedUser(t, ctx, m)
	_, err = m.ToggleSubscription(ctx, channel.ID.Hex(), other.ID.Hex())
	require.NoError(t, err)

	// Глазами подписчика (username в другом регистре).
	profile, err := m.ChannelProfile(ctx, "  "+channel.Username+"  ", fan.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, channel.ID, profile.ID)
	require.Equal(t, int64(1), profile.SubscribersCount)
	require.Equal(t, int64(1), profile.SubscribedCount)
	require.True(t, profile.IsSubscribed)

	// Анонимно.
	profile, err = m.ChannelProfile(ctx, channel.Username, "")
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)

	// Глазами стороннего пользователя.
	profile, err = m.ChannelProfile(ctx, channel.Username, other.ID.Hex())
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)

	// Некорректный viewerID трактуется как анонимный зритель.
	profile, err = m.ChannelProfile(ctx, channel.Username, "not-a-hex-id")
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)

	_, err = m.ChannelProfile(ctx, "ghost_channel", "")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestChannelStats_OwnerScopedCounters(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	owner := seedUser(t, ctx, m)
	fan := seedUser(t, ctx, m)

	video := seedVideo(t, ctx, m, owner.ID, "stats video")
	draft := seedVideo(t, ctx, m, owner.ID, "stats draft")
	require.NoError(t, m.SetPublished(ctx, draft.ID.Hex(), false))

	tweet, err := m.CreateTweet(ctx, models.Tweet{Content: "stats tweet", OwnerID: owner.ID})
	require.NoError(t, err)

	// Лайки от фаната: считаются по владельцу цели, а не по автору лайка.
	_, err = m.ToggleLike(ctx, fan.ID.Hex(), models.LikeTarget{Kind: models.TargetVideo, ID: video.ID.Hex()})
	require.NoError(t, err)
	_, err = m.ToggleLike(ctx, fan.ID.Hex(), models.LikeTarget{Kind: models.TargetTweet, ID: tweet.ID.Hex()})
	require.NoError(t, err)

	_, err = m.ToggleSubscription(ctx, fan.ID.Hex(), owner.ID.Hex())
	require.NoError(t, err)

	// Просмотры: два на опубликованном, один на черновике (в сумму не входит).
	for i := 0; i < 2; i++ {
		_, err = m.VideoByIDIncViews(ctx, video.ID.Hex())
		require.NoError(t, err)
	}
	_, err = m.VideoByIDIncViews(ctx, draft.ID.Hex())
	require.NoError(t, err)

	stats, err := m.ChannelStats(ctx, owner.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, owner.Username, stats.Owner.Username)
	require.Equal(t, int64(2), stats.TotalVideos)
	require.Equal(t, int64(1), stats.TotalTweets)
	require.Equal(t, int64(1), stats.TotalSubscribers)
	require.Equal(t, int64(0), stats.TotalSubscriptions)
	require.Equal(t, int64(1), stats.TotalVideoLikes)
	require.Equal(t, int64(1), stats.TotalTweetLikes)
	require.Equal(t, int64(2), stats.TotalViews)
}

func TestPlaylistView_OrderDuplicatesAndDeleted(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	owner := seedUser(t, ctx, m)
	first := seedVideo(t, ctx, m, owner.ID, "first")
	second := seedVideo(t, ctx, m, owner.ID, "second")

	playlist, err := m.CreatePlaylist(ctx, models.Playlist{Title: "ordered", OwnerID: owner.ID})
	require.NoError(t, err)

	// first, second, first — порядок и дубликаты сохраняются.
	for _, vid := range []primitive.ObjectID{first.ID, second.ID, first.ID} {
		_, err = m.AddVideoToPlaylist(ctx, playlist.ID.Hex(), vid.Hex())
		require.NoError(t, err)
	}

	view, err := m.PlaylistView(ctx, playlist.ID.Hex(), models.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, view.Videos, 3)
	require.Equal(t, first.ID, view.Videos[0].ID)
	require.Equal(t, second.ID, view.Videos[1].ID)
	require.Equal(t, first.ID, view.Videos[2].ID)

	// RemoveVideoFromPlaylist убирает все вхождения.
	updated, err := m.RemoveVideoFromPlaylist(ctx, playlist.ID.Hex(), first.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{second.ID}, updated.Videos)
}

func TestUpdateVideoDetails_PartialUpdate(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	owner := seedUser(t, ctx, m)
	video := seedVideo(t, ctx, m, owner.ID, "old title")

	title := "new title"
	got, err := m.UpdateVideoDetails(ctx, video.ID.Hex(), storage.VideoUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new title", got.Title)
	require.Equal(t, video.Description, got.Description)
	require.Equal(t, video.Thumbnail, got.Thumbnail)
}

func TestSetRefreshToken_SetAndUnset(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	user := seedUser(t, ctx, m)

	require.NoError(t, m.SetRefreshToken(ctx, user.ID.Hex(), "refresh-token"))

	got, err := m.UserByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "refresh-token", got.RefreshToken)

	require.NoError(t, m.SetRefreshToken(ctx, user.ID.Hex(), ""))

	got, err = m.UserByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	require.Empty(t, got.RefreshToken)

	err = m.SetRefreshToken(ctx, primitive.NewObjectID().Hex(), "token")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEnsureIndexes_Created(t *testing.T) {
	skipIfNoIntegration(t)

	m := mustNewMongo(t, newTestConfig(t))
	ctx := testCtx(t)

	cur, err := m.likes.Indexes().List(ctx)
	require.NoError(t, err)

	var names []string
	for cur.Next(ctx) {
		var idx struct {
			Name string `bson:"name"`
		}
		require.NoError(t, cur.Decode(&idx))
		names = append(names, idx.Name)
	}
	require.NoError(t, cur.Err())

	require.Contains(t, names, "uniq_like_video")
	require.Contains(t, names, "uniq_like_comment")
	require.Contains(t, names, "uniq_like_tweet")
}

func TestDatabaseFromURI(t *testing.T) {
	cases := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/videohosting", "videohosting"},
		{"mongodb://localhost:27017/custom_db?replicaSet=rs0", "custom_db"},
		{"mongodb://localhost:27017", defaultDBName},
		{"mongodb://localhost:27017/", defaultDBName},
		{"::bad::uri", defaultDBName},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, databaseFromURI(tc.uri), "uri=%s", tc.uri)
	}
}

func TestClampParams(t *testing.T) {
	m := &Mongo{cfg: &config.Config{Limits: config.LimitsConfig{Default: 20, Max: 50}}}

	got := m.clampParams(models.ListParams{})
	require.Equal(t, models.ListParams{Page: 1, Limit: 20}, got)

	got = m.clampParams(models.ListParams{Page: -3, Limit: 500})
	require.Equal(t, models.ListParams{Page: 1, Limit: 50}, got)

	got = m.clampParams(models.ListParams{Page: 4, Limit: 10})
	require.Equal(t, models.ListParams{Page: 4, Limit: 10}, got)
}
