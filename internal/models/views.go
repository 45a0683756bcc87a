package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Денормализованные read-модели. Собираются агрегациями стораджа
// на время запроса и наружу отдаются как есть.

// Owner — короткий профиль владельца, подклеиваемый в социальные объекты.
type Owner struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"full_name" json:"full_name"`
	Avatar   string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// CommentView — комментарий с подклеенным владельцем.
type CommentView struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Content   string             `bson:"content" json:"content"`
	VideoID   primitive.ObjectID `bson:"video,omitempty" json:"video_id,omitempty"`
	ParentID  primitive.ObjectID `bson:"parent_comment,omitempty" json:"parent_id,omitempty"`
	Owner     Owner              `bson:"owner" json:"owner"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// TweetView — твит с подклеенным владельцем.
type TweetView struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Content   string             `bson:"content" json:"content"`
	ParentID  primitive.ObjectID `bson:"parent_tweet,omitempty" json:"parent_id,omitempty"`
	Owner     Owner              `bson:"owner" json:"owner"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// VideoView — карточка видео с подклеенным владельцем.
type VideoView struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	Owner       Owner              `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// LikedVideo / LikedComment / LikedTweet — записи выдач «что лайкнул
// пользователь». Лайки, чья цель уже удалена, в выдачу не попадают.
type LikedVideo struct {
	LikeID  primitive.ObjectID `bson:"_id" json:"like_id"`
	Video   VideoView          `bson:"video" json:"video"`
	LikedAt time.Time          `bson:"created_at" json:"liked_at"`
}

type LikedComment struct {
	LikeID  primitive.ObjectID `bson:"_id" json:"like_id"`
	Comment CommentView        `bson:"comment" json:"comment"`
	LikedAt time.Time          `bson:"created_at" json:"liked_at"`
}

type LikedTweet struct {
	LikeID  primitive.ObjectID `bson:"_id" json:"like_id"`
	Tweet   TweetView          `bson:"tweet" json:"tweet"`
	LikedAt time.Time          `bson:"created_at" json:"liked_at"`
}

// ChannelProfile — профиль канала со счётчиками подписок и флагом
// «подписан ли запрашивающий».
type ChannelProfile struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	Username         string             `bson:"username" json:"username"`
	Email            string             `bson:"email" json:"email"`
	FullName         string             `bson:"full_name" json:"full_name"`
	Avatar           string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CoverImage       string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	SubscribersCount int64              `bson:"subscribers_count" json:"subscribers_count"`
	SubscribedCount  int64              `bson:"subscribed_count" json:"subscribed_count"`
	IsSubscribed     bool               `bson:"is_subscribed" json:"is_subscribed"`
}

// PlaylistView — плейлист с подклеенными карточками видео.
type PlaylistView struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID     primitive.ObjectID `bson:"owner" json:"owner_id"`
	Videos      []VideoView        `bson:"videos" json:"videos"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// ChannelStats — сводка по каналу для дашборда владельца.
type ChannelStats struct {
	Owner              Owner `json:"owner"`
	TotalVideos        int64 `json:"total_videos"`
	TotalTweets        int64 `json:"total_tweets"`
	TotalSubscribers   int64 `json:"total_subscribers"`
	TotalSubscriptions int64 `json:"total_subscriptions"`
	TotalVideoLikes    int64 `json:"total_video_likes"`
	TotalTweetLikes    int64 `json:"total_tweet_likes"`
	TotalViews         int64 `json:"total_views"`
}
