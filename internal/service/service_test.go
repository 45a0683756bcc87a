package service

// Тесты сервисного слоя.
//
// Проверяем:
//   - валидацию входов и предикат владения на мутирующих путях;
//   - маппинг ошибок storage -> service (NotFound / Conflict /
//     InvalidArgument / InvalidTarget / PermissionDenied / Internal);
//   - happy-path каждой операции.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки интерфейсов хранилищ:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/storage/blobs.go -destination=./mocks/blobs.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/mocks"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newServiceWithMocks поднимает сервис с моками графа контента и блобов.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockBlobs) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mb := mocks.NewMockBlobs(ctrl)

	return &Service{storage: ms, blobs: mb}, ms, mb
}

// mustUser — быстрый хелпер для сборки пользователя.
func mustUser(username string) *models.User {
	now := time.Now().UTC()

	return &models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Full " + username,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// mustVideo — быстрый хелпер для сборки видео.
func mustVideo(owner primitive.ObjectID, title string) *models.Video {
	now := time.Now().UTC()

	return &models.Video{
		ID:          primitive.NewObjectID(),
		VideoFile:   "https://cdn.example.com/v.mp4",
		Thumbnail:   "https://cdn.example.com/t.png",
		Title:       title,
		Duration:    10,
		IsPublished: true,
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
