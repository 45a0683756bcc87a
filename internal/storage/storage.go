// Package storage описывает контракт хранилища video-hosting и его ошибки.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-video-hosting/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище
	// (некорректный формат идентификатора трактуется так же).
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (username/email, повторный лайк и т.п.).
	ErrConflict = errors.New("conflict")
	// ErrInvalidAssociation — нарушен инвариант «ровно одна цель» у Comment/Like.
	ErrInvalidAssociation = errors.New("invalid association")
	// ErrInvalidArgument — прочие нарушения контракта записи (пустые обязательные поля).
	ErrInvalidArgument = errors.New("invalid argument")
)

// VideoUpdate — разрешённые к изменению поля видео (nil = не трогать).
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *string
}

// PlaylistUpdate — разрешённые к изменению поля плейлиста (nil = не трогать).
type PlaylistUpdate struct {
	Title       *string
	Description *string
}

// Storage описывает операции над графом контента.
//
// Все идентификаторы на входе/выходе — hex-строки ObjectID.
// Каскадные удаления (DeleteVideo/DeleteComment/DeleteTweet) обходят
// зависимые записи уровнями, дети раньше родителей; повтор упавшей
// операции идемпотентен (уже удалённые дети отсутствуют в следующем
// обходе). Каскад над уже отсутствующим корнем — no-op, не ошибка.
type Storage interface {
	// --- users ---

	// CreateUser создаёт пользователя. Username/Email нормализуются
	// (trim + нижний регистр); нарушение уникальности — ErrConflict.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// UserByID возвращает пользователя по идентификатору.
	UserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateAccount обновляет full_name/email (пустое значение = не трогать).
	UpdateAccount(ctx context.Context, id, fullName, email string) (*models.User, error)

	// SetAvatar/SetCoverImage заменяют URL соответствующего изображения
	// и возвращают обновлённого пользователя.
	SetAvatar(ctx context.Context, id, url string) (*models.User, error)
	SetCoverImage(ctx context.Context, id, url string) (*models.User, error)

	// SetPasswordHash заменяет хеш пароля (ротация выполняется внешним auth-провайдером).
	SetPasswordHash(ctx context.Context, id, hash string) error

	// SetRefreshToken сохраняет единственный refresh-токен пользователя;
	// пустая строка снимает токен ($unset).
	SetRefreshToken(ctx context.Context, id, token string) error

	// AddToWatchHistory дописывает видео в историю просмотров ($addToSet:
	// повторное добавление не дублирует и не переставляет запись).
	AddToWatchHistory(ctx context.Context, userID, videoID string) error

	// WatchHistory возвращает историю просмотров с подклеенными владельцами видео.
	WatchHistory(ctx context.Context, userID string) ([]models.VideoView, error)

	// ChannelProfile собирает профиль канала по username: счётчики подписок
	// и флаг «подписан ли viewer» (viewerID может быть пустым — флаг false).
	ChannelProfile(ctx context.Context, username, viewerID string) (*models.ChannelProfile, error)

	// ChannelStats — сводка по каналу: количества видео/твитов/подписок,
	// лайки на контент канала и суммарные просмотры опубликованных видео.
	ChannelStats(ctx context.Context, userID string) (*models.ChannelStats, error)

	// --- videos ---

	// CreateVideo сохраняет запись о ролике.
	CreateVideo(ctx context.Context, video models.Video) (*models.Video, error)

	// VideoByID возвращает видео по идентификатору (включая неопубликованные).
	VideoByID(ctx context.Context, id string) (*models.Video, error)

	// VideoByIDIncViews атомарно инкрементирует счётчик просмотров ($inc)
	// и возвращает обновлённую запись.
	VideoByIDIncViews(ctx context.Context, id string) (*models.Video, error)

	// UpdateVideoDetails меняет whitelisted-поля видео.
	UpdateVideoDetails(ctx context.Context, id string, upd VideoUpdate) (*models.Video, error)

	// SetPublished выставляет флаг публикации.
	SetPublished(ctx context.Context, id string, published bool) error

	// DeleteVideo удаляет видео каскадно: поддеревья комментариев с их
	// лайками, лайки самого видео, ссылки из плейлистов ($pull).
	// Блобы удаляет вызывающий слой (best-effort).
	DeleteVideo(ctx context.Context, id string) error

	// ListVideos — поиск/листинг только опубликованных видео:
	// регистронезависимый подстрочный матч по title/description,
	// сортировка по views/duration/created_at.
	ListVideos(ctx context.Context, p models.VideoListParams) ([]models.VideoView, error)

	// VideosByOwner возвращает видео канала с сортировкой по
	// views/duration/created_at. При publishedOnly неопубликованные
	// исключаются из выдачи.
	VideosByOwner(ctx context.Context, ownerID string, publishedOnly bool, p models.VideoListParams) ([]models.Video, error)

	// --- tweets ---

	// CreateTweet сохраняет твит; если задан ParentID, родитель обязан
	// существовать (иначе ErrNotFound).
	CreateTweet(ctx context.Context, tweet models.Tweet) (*models.Tweet, error)

	// TweetByID возвращает твит по идентификатору.
	TweetByID(ctx context.Context, id string) (*models.Tweet, error)

	// DeleteTweet каскадно удаляет твит, все поддерево ответов и лайки
	// каждого удалённого твита.
	DeleteTweet(ctx context.Context, id string) error

	// TweetsByOwner возвращает твиты пользователя.
	TweetsByOwner(ctx context.Context, ownerID string, p models.ListParams) ([]models.Tweet, error)

	// TweetReplies — страница ответов на твит с подклеенными владельцами.
	TweetReplies(ctx context.Context, tweetID string, p models.ListParams) ([]models.TweetView, error)

	// --- comments ---

	// CreateComment сохраняет комментарий. Перед вставкой повторно
	// проверяется инвариант «ровно одна цель» (ErrInvalidAssociation).
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)

	// CommentByID возвращает комментарий по идентификатору.
	CommentByID(ctx context.Context, id string) (*models.Comment, error)

	// UpdateCommentContent заменяет текст комментария.
	UpdateCommentContent(ctx context.Context, id, content string) (*models.Comment, error)

	// DeleteComment каскадно удаляет комментарий, все вложенные ответы
	// (дети раньше родителей) и лайки каждого удалённого комментария.
	DeleteComment(ctx context.Context, id string) error

	// CommentsFor — страница комментариев, целью которых является заданное
	// видео или заданный родительский комментарий.
	CommentsFor(ctx context.Context, targetID string, p models.ListParams) ([]models.CommentView, error)

	// --- likes ---

	// ToggleLike атомарно снимает лайк, если он есть (FindOneAndDelete),
	// иначе ставит новый. Возвращает true, если лайк теперь стоит.
	// Существование цели проверяет вызывающий слой.
	ToggleLike(ctx context.Context, actorID string, target models.LikeTarget) (bool, error)

	// LikedVideos/LikedComments/LikedTweets — выдачи лайкнутого пользователем;
	// записи с удалённой целью исключаются.
	LikedVideos(ctx context.Context, userID string, p models.ListParams) ([]models.LikedVideo, error)
	LikedComments(ctx context.Context, userID string, p models.ListParams) ([]models.LikedComment, error)
	LikedTweets(ctx context.Context, userID string, p models.ListParams) ([]models.LikedTweet, error)

	// --- playlists ---

	// CreatePlaylist сохраняет плейлист.
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (*models.Playlist, error)

	// PlaylistByID возвращает «сырой» плейлист (без джойна видео).
	PlaylistByID(ctx context.Context, id string) (*models.Playlist, error)

	// AddVideoToPlaylist дописывает ссылку в конец списка ($push, дубликаты допустимы).
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) (*models.Playlist, error)

	// RemoveVideoFromPlaylist убирает все вхождения ссылки ($pull).
	RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) (*models.Playlist, error)

	// UpdatePlaylistDetails меняет whitelisted-поля плейлиста.
	UpdatePlaylistDetails(ctx context.Context, id string, upd PlaylistUpdate) (*models.Playlist, error)

	// DeletePlaylist удаляет плейлист (видео не трогаются).
	DeletePlaylist(ctx context.Context, id string) error

	// PlaylistView — плейлист с подклеенными карточками видео (страница списка видео).
	PlaylistView(ctx context.Context, id string, p models.ListParams) (*models.PlaylistView, error)

	// PlaylistsByOwner возвращает плейлисты пользователя.
	PlaylistsByOwner(ctx context.Context, ownerID string) ([]models.Playlist, error)

	// --- subscriptions ---

	// ToggleSubscription атомарно снимает подписку, если она есть, иначе
	// создаёт ребро (subscriber, channel). Возвращает true, если подписка
	// теперь есть. Существование канала проверяет вызывающий слой.
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error)

	// Subscribers — рёбра, где пользователь выступает каналом.
	Subscribers(ctx context.Context, channelID string, p models.ListParams) ([]models.Subscription, error)

	// SubscribedChannels — рёбра, где пользователь выступает подписчиком.
	SubscribedChannels(ctx context.Context, subscriberID string, p models.ListParams) ([]models.Subscription, error)

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}
