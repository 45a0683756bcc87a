package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription — ребро направленного графа «подписчик → канал»
// (коллекция subscriptions). Обе стороны — пользователи.
// Пара (Subscriber, Channel) уникальна (уникальный индекс).
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subscriber primitive.ObjectID `bson:"subscriber" json:"subscriber_id"`
	Channel    primitive.ObjectID `bson:"channel" json:"channel_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
