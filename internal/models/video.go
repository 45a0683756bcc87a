package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video — опубликованный или черновой ролик (коллекция videos).
// Views — монотонный счётчик; изменяется только атомарным $inc.
// IsPublished управляет видимостью в листингах/поиске; прямой доступ
// по ID остаётся возможным независимо от флага.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VideoFile   string             `bson:"video_file" json:"video_file"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"is_published" json:"is_published"`
	OwnerID     primitive.ObjectID `bson:"owner" json:"owner_id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// VideoSortField — допустимые ключи сортировки листинга видео.
// Любое иное значение приводится к сортировке по умолчанию (created_at).
type VideoSortField string

const (
	SortByViews     VideoSortField = "views"
	SortByDuration  VideoSortField = "duration"
	SortByCreatedAt VideoSortField = "created_at"
)

// ValidVideoSortField сообщает, допустим ли ключ сортировки.
func ValidVideoSortField(f VideoSortField) bool {
	switch f {
	case SortByViews, SortByDuration, SortByCreatedAt:
		return true
	}

	return false
}
