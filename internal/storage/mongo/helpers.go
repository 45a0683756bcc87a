package mongo

import (
	"time"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/go-video-hosting/internal/storage"
)

// parseID переводит hex-идентификатор в ObjectID.
// Некорректный формат трактуется как отсутствие сущности (ErrNotFound) —
// такой идентификатор не может указывать ни на одну запись.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, storage.ErrNotFound
	}

	return oid, nil
}

// clampParams нормализует параметры страницы: страница не меньше первой,
// размер страницы — в пределах (0, Limits.Max] с дефолтом Limits.Default.
func (m *Mongo) clampParams(p models.ListParams) models.ListParams {
	if p.Page < 1 {
		p.Page = 1
	}

	if p.Limit <= 0 {
		p.Limit = m.cfg.Limits.Default
	}

	if p.Limit > m.cfg.Limits.Max {
		p.Limit = m.cfg.Limits.Max
	}

	return p
}

// findOptions переводит нормализованные параметры страницы в опции find.
func findOptions(p models.ListParams) *options.FindOptions {
	return options.Find().
		SetSkip(int64(p.Page-1) * int64(p.Limit)).
		SetLimit(int64(p.Limit))
}

// pagingStages — skip/limit-стадии агрегационного конвейера
// для нормализованных параметров страницы.
func pagingStages(p models.ListParams) []bson.D {
	return []bson.D{
		{{Key: "$skip", Value: int64(p.Page-1) * int64(p.Limit)}},
		{{Key: "$limit", Value: int64(p.Limit)}},
	}
}

// isDuplicateKey распознаёт нарушение уникального индекса.
func isDuplicateKey(err error) bool {
	return mongodriver.IsDuplicateKeyError(err)
}

// nowUTC — единая точка получения времени записи.
// MongoDB DateTime хранит миллисекунды, поэтому сразу усечём.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
