package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
)

// limitsFor возвращает allow-list типов и потолок размера для вида медиа.
func (s *BlobStorage) limitsFor(kind storage.MediaKind) (allow []string, maxSize int64, ok bool) {
	switch kind {
	case storage.MediaVideo:
		return s.cfg.Media.VideoContentTypes, s.cfg.Media.MaxVideoSizeBytes, true
	case storage.MediaThumbnail, storage.MediaAvatar, storage.MediaCover:
		return s.cfg.Media.ImageContentTypes, s.cfg.Media.MaxImageSizeBytes, true
	}

	return nil, 0, false
}

// keyPrefix — префикс ключей объектов вида kind, принадлежащих владельцу.
func keyPrefix(kind storage.MediaKind, ownerID string) string {
	return string(kind) + "s/" + ownerID + "/"
}

// extByContentType подбирает расширение файла по типу содержимого.
func extByContentType(contentType string) string {
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}

	return ""
}

// MediaUploadURL генерирует presigned PUT URL для загрузки объекта.
// Валидирует contentType и contentLength по конфигу, формирует ключ вида
// "<kind>s/<ownerID>/<uuid>.<ext>" и возвращает набор заголовков, которые
// клиент должен передать при PUT (будут проверены при подтверждении).
func (s *BlobStorage) MediaUploadURL(ctx context.Context, kind storage.MediaKind, ownerID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/MediaUploadURL"

	allow, maxSize, ok := s.limitsFor(kind)
	if !ok || strings.TrimSpace(ownerID) == "" {
		return nil, storage.ErrBlobInvalidArgument
	}

	if contentLength <= 0 || contentLength > maxSize {
		return nil, storage.ErrBlobInvalidArgument
	}

	if !isAllowedContentType(allow, contentType) {
		return nil, storage.ErrBlobInvalidArgument
	}

	key := path.Join(string(kind)+"s", ownerID, uuid.NewString()+extByContentType(contentType))

	url, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := &storage.UploadInfo{
		UploadURL: url.String(),
		Key:       key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}

	return info, nil
}

// CheckMediaUpload подтверждает факт загрузки по key: объект существует,
// лежит под префиксом владельца и удовлетворяет ограничениям размера/типа.
// Возвращает публичный URL (если PublicBaseURL задан), иначе — пустую строку.
func (s *BlobStorage) CheckMediaUpload(ctx context.Context, kind storage.MediaKind, ownerID, key string) (publicURL string, err error) {
	const op = "storage/minio/CheckMediaUpload"

	allow, maxSize, ok := s.limitsFor(kind)
	if !ok {
		return "", storage.ErrBlobInvalidArgument
	}

	if !strings.HasPrefix(key, keyPrefix(kind, ownerID)) {
		return "", storage.ErrBlobInvalidArgument
	}

	objInfo, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return "", storage.ErrBlobNotFound
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if objInfo.Size <= 0 || objInfo.Size > maxSize {
		return "", storage.ErrBlobInvalidArgument
	}

	if ct := objInfo.ContentType; ct != "" && !isAllowedContentType(allow, ct) {
		return "", storage.ErrBlobInvalidArgument
	}

	if s.cfg.S3.PublicBaseURL == "" {
		return "", nil
	}

	base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/")

	return base + "/" + key, nil
}

// DeleteByURL удаляет объект по ранее выданному публичному URL.
// URL вне PublicBaseURL — no-op без ошибки: объект мог жить в другом
// бакете или остаться от старой схемы хранения.
func (s *BlobStorage) DeleteByURL(ctx context.Context, publicURL string) error {
	const op = "storage/minio/DeleteByURL"

	if publicURL == "" || s.cfg.S3.PublicBaseURL == "" {
		return nil
	}

	base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/") + "/"
	if !strings.HasPrefix(publicURL, base) {
		return nil
	}

	key := strings.TrimPrefix(publicURL, base)
	if key == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
