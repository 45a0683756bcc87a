package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet — короткая запись (коллекция tweets).
// ParentID задаёт дерево ответов: у корневого твита поле отсутствует.
// Инвариант данных: parent-цепочка всегда ведёт к корню (циклов нет);
// это свойство записи, а не то, что проверяется при каждом обходе.
type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content   string             `bson:"content" json:"content"`
	ParentID  primitive.ObjectID `bson:"parent_tweet,omitempty" json:"parent_id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"owner" json:"owner_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
