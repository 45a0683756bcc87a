// service содержит бизнес-логику video-hosting.
//
// Слой поверх storage.Storage (граф контента в MongoDB) и storage.Blobs
// (медиа-объекты в S3/MinIO): валидация входа, проверки владения и
// трансляция ошибок хранилища в сервисные sentinel-ошибки.
package service

import (
	"errors"
	"strings"

	"github.com/pribylovaa/go-video-hosting/internal/config"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (username/email).
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidTarget — некорректная полиморфная цель комментария/лайка.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrPermissionDenied — актор не владеет изменяемым ресурсом.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — бизнес-логика video-hosting.
type Service struct {
	storage storage.Storage
	blobs   storage.Blobs
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, blobs storage.Blobs, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		blobs:   blobs,
		cfg:     cfg,
	}
}

// parseActorID переводит hex-идентификатор с границы сервиса в ObjectID.
func parseActorID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(strings.TrimSpace(id))
}
