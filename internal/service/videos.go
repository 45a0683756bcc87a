package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/pribylovaa/go-video-hosting/pkg/log"
)

// PublishVideoInput — публикация ролика после загрузки медиа.
// VideoKey/ThumbnailKey — ключи объектов, выданные presign-операциями;
// факт загрузки обоих подтверждается перед созданием записи.
type PublishVideoInput struct {
	OwnerID      string
	Title        string
	Description  string
	Duration     float64
	VideoKey     string
	ThumbnailKey string
}

// UpdateVideoDetailsInput — правка полей видео; nil означает «не трогать».
type UpdateVideoDetailsInput struct {
	VideoID     string
	ActorID     string
	Title       *string
	Description *string
}

// VideoUploadURL — presigned PUT для файла ролика.
func (s *Service) VideoUploadURL(ctx context.Context, ownerID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	return s.mediaUploadURL(ctx, "service/videos/VideoUploadURL", storage.MediaVideo, ownerID, contentType, contentLength)
}

// ThumbnailUploadURL — presigned PUT для обложки ролика.
func (s *Service) ThumbnailUploadURL(ctx context.Context, ownerID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	return s.mediaUploadURL(ctx, "service/videos/ThumbnailUploadURL", storage.MediaThumbnail, ownerID, contentType, contentLength)
}

// confirmBlob — подтверждение загрузки с трансляцией blob-ошибок.
func (s *Service) confirmBlob(ctx context.Context, op string, kind storage.MediaKind, ownerID, key string) (string, error) {
	lg := log.From(ctx).With("op", op, "owner_id", ownerID, "key", key)

	url, err := s.blobs.CheckMediaUpload(ctx, kind, ownerID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBlobNotFound):
			lg.Warn("uploaded object not found")
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrBlobInvalidArgument):
			lg.Warn("uploaded object violates limits")
			return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("blob storage error on CheckMediaUpload", "err", err)
			return "", fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return url, nil
}

// PublishVideo — бизнес-операция публикации ролика.
//
// Валидация: owner/title обязательны, duration > 0, оба ключа медиа заданы.
// Подтверждает загрузку файла и обложки, затем создаёт запись
// с is_published=true и нулевым счётчиком просмотров.
func (s *Service) PublishVideo(ctx context.Context, in PublishVideoInput) (*models.Video, error) {
	const op = "service/videos/PublishVideo"

	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.Title = strings.TrimSpace(in.Title)
	lg := log.From(ctx).With("op", op, "owner_id", in.OwnerID, "title", in.Title)

	if in.OwnerID == "" || in.Title == "" {
		lg.Warn("invalid argument: empty owner_id or title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Duration <= 0 || strings.TrimSpace(in.VideoKey) == "" || strings.TrimSpace(in.ThumbnailKey) == "" {
		lg.Warn("invalid argument: bad duration or media keys")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	videoURL, err := s.confirmBlob(ctx, op, storage.MediaVideo, in.OwnerID, in.VideoKey)
	if err != nil {
		return nil, err
	}

	thumbURL, err := s.confirmBlob(ctx, op, storage.MediaThumbnail, in.OwnerID, in.ThumbnailKey)
	if err != nil {
		return nil, err
	}

	ownerOID, err := parseActorID(in.OwnerID)
	if err != nil {
		lg.Warn("invalid argument: malformed owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	video, err := s.storage.CreateVideo(ctx, models.Video{
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Duration:    in.Duration,
		IsPublished: true,
		OwnerID:     ownerOID,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on CreateVideo", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return video, nil
}

// VideoByID — просмотр видео: атомарно инкрементирует счётчик и,
// для аутентифицированного зрителя, дописывает ролик в историю просмотров.
// Неопубликованное видео по прямому идентификатору остаётся доступным.
func (s *Service) VideoByID(ctx context.Context, videoID, viewerID string) (*models.Video, error) {
	const op = "service/videos/VideoByID"

	videoID = strings.TrimSpace(videoID)
	lg := log.From(ctx).With("op", op, "video_id", videoID)

	if videoID == "" {
		lg.Warn("invalid argument: empty video_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	video, err := s.storage.VideoByIDIncViews(ctx, videoID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("video not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on VideoByIDIncViews", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	// История просмотров — best-effort: её сбой не ломает просмотр.
	if viewer := strings.TrimSpace(viewerID); viewer != "" {
		if err := s.storage.AddToWatchHistory(ctx, viewer, videoID); err != nil {
			lg.Warn("failed to append watch history", "viewer_id", viewer, "err", err)
		}
	}

	return video, nil
}

// videoOwnedBy загружает видео и проверяет владение актором.
func (s *Service) videoOwnedBy(ctx context.Context, op, videoID, actorID string) (*models.Video, error) {
	lg := log.From(ctx).With("op", op, "video_id", videoID, "actor_id", actorID)

	video, err := s.storage.VideoByID(ctx, videoID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("video not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on VideoByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !Owns(video.OwnerID.Hex(), actorID) {
		lg.Warn("mutation attempted by non-owner")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return video, nil
}

// UpdateVideoDetails — правка title/description своего видео.
func (s *Service) UpdateVideoDetails(ctx context.Context, in UpdateVideoDetailsInput) (*models.Video, error) {
	const op = "service/videos/UpdateVideoDetails"

	in.VideoID = strings.TrimSpace(in.VideoID)
	lg := log.From(ctx).With("op", op, "video_id", in.VideoID)

	if in.VideoID == "" {
		lg.Warn("invalid argument: empty video_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Title == nil && in.Description == nil {
		lg.Warn("invalid argument: nothing to update")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.videoOwnedBy(ctx, op, in.VideoID, in.ActorID); err != nil {
		return nil, err
	}

	video, err := s.storage.UpdateVideoDetails(ctx, in.VideoID, storage.VideoUpdate{
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("video not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateVideoDetails", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return video, nil
}

// ConfirmThumbnail подтверждает загрузку новой обложки своего видео
// и best-effort удаляет прежнюю.
func (s *Service) ConfirmThumbnail(ctx context.Context, videoID, actorID, key string) (*models.Video, error) {
	const op = "service/videos/ConfirmThumbnail"

	videoID = strings.TrimSpace(videoID)
	lg := log.From(ctx).With("op", op, "video_id", videoID, "key", key)

	if videoID == "" || strings.TrimSpace(key) == "" {
		lg.Warn("invalid argument: empty video_id or key")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	current, err := s.videoOwnedBy(ctx, op, videoID, actorID)
	if err != nil {
		return nil, err
	}

	publicURL, err := s.confirmBlob(ctx, op, storage.MediaThumbnail, strings.TrimSpace(actorID), key)
	if err != nil {
		return nil, err
	}

	thumb := publicURL
	video, err := s.storage.UpdateVideoDetails(ctx, videoID, storage.VideoUpdate{Thumbnail: &thumb})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("video not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateVideoDetails", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if current.Thumbnail != "" && current.Thumbnail != publicURL {
		if err := s.blobs.DeleteByURL(ctx, current.Thumbnail); err != nil {
			lg.Warn("failed to delete previous thumbnail", "url", current.Thumbnail, "err", err)
		}
	}

	return video, nil
}

// TogglePublish переключает видимость своего видео в листингах.
// Возвращает новое значение флага.
func (s *Service) TogglePublish(ctx context.Context, videoID, actorID string) (bool, error) {
	const op = "service/videos/TogglePublish"

	videoID = strings.TrimSpace(videoID)
	lg := log.From(ctx).With("op", op, "video_id", videoID)

	if videoID == "" {
		lg.Warn("invalid argument: empty video_id")
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	video, err := s.videoOwnedBy(ctx, op, videoID, actorID)
	if err != nil {
		return false, err
	}

	next := !video.IsPublished
	if err := s.storage.SetPublished(ctx, videoID, next); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("video not found")
			return false, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SetPublished", "err", err)
			return false, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return next, nil
}

// DeleteVideo — каскадное удаление своего видео: записи БД (комментарии,
// лайки, ссылки плейлистов) удаляет сторадж, медиа-объекты добиваются
// best-effort после успешного каскада.
func (s *Service) DeleteVideo(ctx context.Context, videoID, actorID string) error {
	const op = "service/videos/DeleteVideo"

	videoID = strings.TrimSpace(videoID)
	lg := log.From(ctx).With("op", op, "video_id", videoID)

	if videoID == "" {
		lg.Warn("invalid argument: empty video_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	video, err := s.videoOwnedBy(ctx, op, videoID, actorID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteVideo(ctx, videoID); err != nil {
		lg.Error("storage error on DeleteVideo", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for _, url := range []string{video.VideoFile, video.Thumbnail} {
		if url == "" {
			continue
		}

		if err := s.blobs.DeleteByURL(ctx, url); err != nil {
			lg.Warn("failed to delete media object", "url", url, "err", err)
		}
	}

	return nil
}

// SearchVideos — каталог: только опубликованные, поиск и сортировка.
func (s *Service) SearchVideos(ctx context.Context, p models.VideoListParams) ([]models.VideoView, error) {
	const op = "service/videos/SearchVideos"

	lg := log.From(ctx).With("op", op, "query", p.Query)

	if p.SortBy != "" && !models.ValidVideoSortField(p.SortBy) {
		lg.Warn("invalid argument: unknown sort field", "sort_by", string(p.SortBy))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	views, err := s.storage.ListVideos(ctx, p)
	if err != nil {
		lg.Error("storage error on ListVideos", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return views, nil
}

// ChannelVideos — видео канала с сортировкой; черновики видит только
// сам владелец, остальным отдаются лишь опубликованные.
func (s *Service) ChannelVideos(ctx context.Context, ownerID, actorID string, p models.VideoListParams) ([]models.Video, error) {
	const op = "service/videos/ChannelVideos"

	ownerID = strings.TrimSpace(ownerID)
	lg := log.From(ctx).With("op", op, "owner_id", ownerID)

	if ownerID == "" {
		lg.Warn("invalid argument: empty owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if p.SortBy != "" && !models.ValidVideoSortField(p.SortBy) {
		lg.Warn("invalid argument: unknown sort field", "sort_by", string(p.SortBy))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	publishedOnly := !Owns(ownerID, actorID)

	videos, err := s.storage.VideosByOwner(ctx, ownerID, publishedOnly, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("owner not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on VideosByOwner", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return videos, nil
}
