package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist — пользовательский плейлист (коллекция playlists).
// Videos — упорядоченный список ссылок на видео; порядок — порядок показа,
// дубликаты допустимы ($push без дедупликации).
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID     primitive.ObjectID   `bson:"owner" json:"owner_id"`
	Videos      []primitive.ObjectID `bson:"videos,omitempty" json:"video_ids,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}
