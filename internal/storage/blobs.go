package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrBlobNotFound — объект (ключ) отсутствует в бакете.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrBlobInvalidArgument — нарушены ограничения загрузки (тип/размер/ключ).
	ErrBlobInvalidArgument = errors.New("blob invalid argument")
)

// MediaKind — вид загружаемого объекта; определяет префикс ключа и лимиты.
type MediaKind string

const (
	MediaVideo     MediaKind = "video"
	MediaThumbnail MediaKind = "thumbnail"
	MediaAvatar    MediaKind = "avatar"
	MediaCover     MediaKind = "cover"
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечный URL для PUT-запроса.
//   - Key: ключ (путь) будущего объекта в бакете.
//   - Expires: время жизни подписи.
//   - RequiredHeader: заголовки, которые клиент ОБЯЗАН передать при PUT.
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Blobs — контракт блоб-хранилища медиа.
// Upload идёт по схеме presign/confirm; Delete — best-effort: ошибка
// удаления блоба логируется вызывающим слоем и не отменяет мутацию БД.
type Blobs interface {
	// MediaUploadURL генерирует presigned PUT для объекта вида kind.
	// Внутри — валидация contentType и contentLength по конфигурации.
	MediaUploadURL(ctx context.Context, kind MediaKind, ownerID, contentType string, contentLength int64) (*UploadInfo, error)

	// CheckMediaUpload подтверждает факт загрузки по key (наличие, тип, размер)
	// и возвращает публичный URL объекта.
	CheckMediaUpload(ctx context.Context, kind MediaKind, ownerID, key string) (publicURL string, err error)

	// DeleteByURL удаляет объект по ранее выданному публичному URL.
	// Незнакомый URL — no-op без ошибки (объект мог жить в другом бакете).
	DeleteByURL(ctx context.Context, publicURL string) error
}
