package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment — комментарий к видео или ответ на другой комментарий
// (коллекция comments).
// Инвариант полиморфной связи: заполнено РОВНО ОДНО из полей
// VideoID/ParentID. Проверяется валидатором на каждом пути создания
// и повторно слоем storage перед вставкой.
// Как и у твитов, parent-цепочка предполагается ацикличной.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content   string             `bson:"content" json:"content"`
	VideoID   primitive.ObjectID `bson:"video,omitempty" json:"video_id,omitempty"`
	ParentID  primitive.ObjectID `bson:"parent_comment,omitempty" json:"parent_id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"owner" json:"owner_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
