package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like — лайк видео, комментария или твита (коллекция likes).
// Инвариант полиморфной связи: заполнено РОВНО ОДНО из полей
// VideoID/CommentID/TweetID. Пара (LikedBy, цель) уникальна —
// это обеспечивают частичные уникальные индексы коллекции.
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VideoID   primitive.ObjectID `bson:"video,omitempty" json:"video_id,omitempty"`
	CommentID primitive.ObjectID `bson:"comment,omitempty" json:"comment_id,omitempty"`
	TweetID   primitive.ObjectID `bson:"tweet,omitempty" json:"tweet_id,omitempty"`
	LikedBy   primitive.ObjectID `bson:"liked_by" json:"liked_by"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
